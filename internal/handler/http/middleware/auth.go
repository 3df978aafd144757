package middleware

import (
	"net/http"

	"github.com/chiliososada/ems-backend-go/internal/domain/user"
	"github.com/chiliososada/ems-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests without a verified access token. It runs
// after jwtauth.Verifier, which parses the token into the request context.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.Unauthorized(w, user.ErrInvalidToken.Error())
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.Unauthorized(w, user.ErrInvalidToken.Error())
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.Unauthorized(w, user.ErrInvalidToken.Error())
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// Caller identifies the authenticated user behind a request.
type Caller struct {
	UserID string
	Role   user.Role
}

// CallerFromRequest reads the caller identity out of the verified token.
func CallerFromRequest(r *http.Request) (Caller, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return Caller{}, user.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Caller{}, user.ErrInvalidToken
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return Caller{}, user.ErrInvalidToken
	}
	role, ok := user.ParseRole(roleStr)
	if !ok {
		return Caller{}, user.ErrUnknownRole
	}

	return Caller{UserID: userID, Role: role}, nil
}
