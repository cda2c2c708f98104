package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/marchocode/clash-merger/internal/logger"
)

const tokenURLParam = "token"

// auth rejects the request with 401 and a plain-text body unless the {token}
// path segment equals the configured token byte for byte. An empty
// configured token matches nothing.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := chi.URLParam(r, tokenURLParam)

		if !h.validToken(token) {
			logger.FromRequest(r).Warn().
				Str("remote_addr", r.RemoteAddr).
				Msg(ErrInvalidToken.Error())
			http.Error(w, ErrInvalidToken.Error(), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) validToken(token string) bool {
	if h.token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.token)) == 1
}
