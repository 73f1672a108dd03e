package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/peoplehub/hr-backend-go/internal/domain/auth"
)

// actorID resolves the acting user id from the verified JWT claims. Services
// receive this id explicitly; nothing downstream reads the request context.
func actorID(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	id, ok := claims["user_id"].(string)
	if !ok || id == "" {
		return "", auth.ErrInvalidToken
	}
	return id, nil
}
