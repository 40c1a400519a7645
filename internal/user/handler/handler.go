package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ousama-oujaber/SupplyChainX/internal/httpapi"
	"github.com/ousama-oujaber/SupplyChainX/internal/user/service"
)

// Handlers bundles the user administration and auth HTTP handlers.
type Handlers struct {
	User *UserHandler
	Auth *AuthHandler
}

func NewHandlers(users *service.UserService, auth *service.AuthService) *Handlers {
	return &Handlers{
		User: NewUserHandler(users),
		Auth: NewAuthHandler(auth),
	}
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		httpapi.NotFound(c, err.Error())
	case errors.Is(err, service.ErrEmailAlreadyExists):
		httpapi.Conflict(c, err.Error())
	case errors.Is(err, service.ErrInvalidRole):
		httpapi.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidToken):
		httpapi.Unauthorized(c, err.Error())
	default:
		httpapi.InternalError(c, err.Error())
	}
}
