package handlers

import (
	"errors"
	"net/http"

	"salesops/internal/adapter/http/middleware"
	"salesops/internal/domain/entities"
	"salesops/internal/usecase"
	"salesops/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload  = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Not authorized, no valid token", http.StatusUnauthorized)
)

// mapError translates usecase failures into API errors. The usecase message
// is kept since clients decide between correcting and blocking from it.
func mapError(err error) *pkg.AppError {
	var ue *usecase.Error
	if !errors.As(err, &ue) {
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
	switch ue.Kind {
	case usecase.KindValidation:
		return pkg.NewDomainError(ue.Code, ue.Message, err, http.StatusBadRequest)
	case usecase.KindNotFound:
		return pkg.NewDomainError(ue.Code, ue.Message, err, http.StatusNotFound)
	case usecase.KindConflict:
		return pkg.NewDomainError(ue.Code, ue.Message, err, http.StatusConflict)
	case usecase.KindState, usecase.KindAuthorization:
		return pkg.NewDomainError(ue.Code, ue.Message, err, http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	kind := string(usecase.KindOf(err))
	if kind == "" {
		kind = "internal"
		_ = c.Error(err)
	}
	middleware.SetErrorKind(c, kind)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// requireActor writes 401 and returns false when the request carries no
// authenticated actor.
func requireActor(c *gin.Context) (entities.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
		return entities.Actor{}, false
	}
	return actor, true
}
