package impl

import (
	"net/url"
	"strings"
)

// linkBuilder renders the links embedded in account emails.
type linkBuilder struct {
	baseURL string
}

func (b linkBuilder) confirmEmail(token string) string {
	return b.build("/auth/confirm-email", url.Values{"token": {token}})
}

func (b linkBuilder) passwordReset(email, token string) string {
	return b.build("/reset-password", url.Values{"email": {email}, "token": {token}})
}

func (b linkBuilder) build(path string, query url.Values) string {
	return strings.TrimSuffix(b.baseURL, "/") + path + "?" + query.Encode()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
