package middleware

import (
	"errors"
	"net/http"
	"strings"

	"salesops/internal/domain/entities"
	"salesops/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const actorKey = "actor"

var (
	errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Not authorized, no valid token", http.StatusUnauthorized)
	errForbiddenRole   = pkg.NewDomainErrorSimple("FORBIDDEN", "Your role is not allowed to access this resource", http.StatusForbidden)
)

// ActorClaims are the claims read from access tokens issued by the identity
// service. Subject is accepted when id is absent.
type ActorClaims struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticate verifies an HS256 bearer token and stores the actor in the
// context. Browsers' EventSource cannot set headers, so the token may also
// come from the access_token query parameter.
func Authenticate(secret []byte) gin.HandlerFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			abort(c, errUnauthenticated)
			return
		}

		var claims ActorClaims
		_, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) { return secret, nil })
		if err != nil {
			abort(c, errUnauthenticated)
			return
		}

		actor, err := claims.actor()
		if err != nil {
			abort(c, errUnauthenticated)
			return
		}
		c.Set(actorKey, actor)
		c.Next()
	}
}

// RequireRoles rejects actors whose role is not listed.
func RequireRoles(roles ...entities.Role) gin.HandlerFunc {
	allowed := make(map[entities.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			abort(c, errUnauthenticated)
			return
		}
		if _, ok := allowed[actor.Role]; !ok {
			abort(c, errForbiddenRole)
			return
		}
		c.Next()
	}
}

// ActorFrom returns the authenticated actor of the request.
func ActorFrom(c *gin.Context) (entities.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return entities.Actor{}, false
	}
	actor, ok := v.(entities.Actor)
	return actor, ok && actor.ID != ""
}

// SetActor is used by tests and internal callers that authenticate by other
// means.
func SetActor(c *gin.Context, actor entities.Actor) {
	c.Set(actorKey, actor)
}

func (c ActorClaims) actor() (entities.Actor, error) {
	id := c.ID
	if id == "" {
		id = c.Subject
	}
	if id == "" {
		return entities.Actor{}, errors.New("token has no subject")
	}
	return entities.Actor{ID: id, Name: c.Name, Role: entities.Role(c.Role)}, nil
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if after, ok := strings.CutPrefix(h, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return strings.TrimSpace(c.Query("access_token"))
}

func abort(c *gin.Context, e *pkg.AppError) {
	c.AbortWithStatusJSON(e.HTTPStatus, e.ToHTTPError())
}
