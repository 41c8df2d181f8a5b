package v1

import (
	"github.com/arco-app/backend/internal/config"
	"github.com/arco-app/backend/internal/service"
	"github.com/arco-app/backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title Arco Backend API
// @version 1.0
// @description Registration, authentication, blog and team directory API

// @BasePath /api/v1

// @securityDefinitions.apikey UserAuth
// @in header
// @name Authorization

type Handler struct {
	services     *service.Services
	tokenManager auth.TokenManager
	config       *config.Config
}

func NewHandler(
	services *service.Services,
	tokenManager auth.TokenManager,
	config *config.Config,
) *Handler {
	return &Handler{
		services:     services,
		tokenManager: tokenManager,
		config:       config,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	v1 := api.Group("v1")

	h.initAuthRoutes(v1)
	h.initBlogRoutes(v1)
	h.initTeamRoutes(v1)
}
