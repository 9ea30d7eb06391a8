package httpx

// Cookie names shared by the auth handlers and middleware.
const (
	sessionCookieName       = "session_id"
	oauthStateCookieName    = "oauth_state"
	oauthNonceCookieName    = "oauth_nonce"
	postLoginRedirectCookie = "post_login_redirect"
)

// oauthCookieMaxAge bounds how long the temporary OAuth cookies live, in seconds.
const oauthCookieMaxAge = 600
