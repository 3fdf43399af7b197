package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/artizaho/workshop-booking/internal/api/handlers"
)

const (
	// AdminRole значение claim role у администраторов площадки
	AdminRole = "admin"

	msgMissingToken = "отсутствует токен авторизации"
	msgInvalidToken = "некорректный токен авторизации"
	msgNotAdmin     = "требуются права администратора"
)

var (
	ErrMissingToken = errors.New("auth: missing bearer token")
	ErrInvalidToken = errors.New("auth: invalid token")
	ErrNotAdmin     = errors.New("auth: role is not admin")
)

// AdminClaims claims токена администратора
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AdminAuth пропускает только запросы с HS256 токеном, у которого role=admin
func AdminAuth(secret string, logger Logger) func(http.Handler) http.Handler {
	key := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := parseAdminToken(r.Header.Get("Authorization"), key)
			if err != nil {
				logger.Warn("%s %s - Admin auth failed: %v", r.Method, r.URL.Path, err)
				switch {
				case errors.Is(err, ErrMissingToken):
					handlers.RespondUnauthorized(w, msgMissingToken)
				case errors.Is(err, ErrNotAdmin):
					handlers.RespondForbidden(w, msgNotAdmin)
				default:
					handlers.RespondUnauthorized(w, msgInvalidToken)
				}
				return
			}

			subject, _ := claims.GetSubject()
			logger.Info("%s %s - Admin access granted: subject=%s", r.Method, r.URL.Path, subject)
			next.ServeHTTP(w, r)
		})
	}
}

func parseAdminToken(header string, key []byte) (*AdminClaims, error) {
	raw, found := strings.CutPrefix(header, "Bearer ")
	if !found || strings.TrimSpace(raw) == "" {
		return nil, ErrMissingToken
	}

	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(strings.TrimSpace(raw), claims, func(t *jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Role != AdminRole {
		return nil, ErrNotAdmin
	}

	return claims, nil
}
