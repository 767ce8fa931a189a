package casbinAuthorization

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/casbin/casbin"
	"github.com/cristalhq/jwt/v4"
	"github.com/sirupsen/logrus"

	"github.com/Warsame-Adam/skystream-api/domain"
)

// AnonymousRole is what unauthenticated requests enforce as.
const AnonymousRole = "anonymous"

var jwtKey = []byte(os.Getenv("SECRET_KEY"))

var verifier, _ = jwt.NewVerifierHS(jwt.HS256, jwtKey)

func parseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse([]byte(tokenString), verifier)
	if err != nil {
		return nil, err
	}
	return token, nil
}

// extractRoles reads the role names out of the bearer token. No header at
// all is the anonymous caller, a present but broken token is an error.
func extractRoles(r *http.Request) ([]string, error) {
	bearer := r.Header.Get("Authorization")
	if bearer == "" {
		return []string{AnonymousRole}, nil
	}

	bearerToken := strings.Split(bearer, "Bearer ")
	if len(bearerToken) != 2 {
		return nil, errors.New("invalid token format")
	}

	token, err := parseToken(bearerToken[1])
	if err != nil {
		return nil, err
	}

	var claims domain.Claims
	if err := json.Unmarshal(token.Claims(), &claims); err != nil {
		return nil, err
	}
	if len(claims.Roles) == 0 {
		return []string{AnonymousRole}, nil
	}
	return claims.Roles, nil
}

// CasbinMiddleware allows the request when any of the caller's roles passes
// the policy for the path and method.
func CasbinMiddleware(e *casbin.Enforcer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			roles, err := extractRoles(r)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			for _, role := range roles {
				res, err := e.EnforceSafe(role, r.URL.Path, r.Method)
				if err != nil {
					logrus.Errorln("enforce error:", err)
					http.Error(w, "unauthorized user", http.StatusUnauthorized)
					return
				}
				if res {
					next.ServeHTTP(w, r)
					return
				}
			}
			http.Error(w, "forbidden", http.StatusForbidden)
		}

		return http.HandlerFunc(fn)
	}
}
