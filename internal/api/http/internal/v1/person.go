package v1

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/arco-app/backend/internal/domain"
	"github.com/arco-app/backend/internal/service"
	"github.com/arco-app/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) initTeamRoutes(api *gin.RouterGroup) {
	team := api.Group("/team")

	team.GET("", h.getPersons)
	team.GET("/:slug", h.getPersonBySlug)
	team.POST("", h.createPerson)
}

// @Summary Get team members
// @Tags Team
// @Description Get all team directory entries
// @Produce json
// @Success 200 {object} []domain.Person
// @Router /team [get]
func (h *Handler) getPersons(c *gin.Context) {
	persons, err := h.services.Persons.GetAll(c.Request.Context())
	if err != nil {
		logger.Error("get persons failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, persons)
}

// @Summary Get a team member
// @Tags Team
// @Param slug path string true "Person slug"
// @Produce json
// @Success 200 {object} domain.Person
// @Failure 404
// @Router /team/{slug} [get]
func (h *Handler) getPersonBySlug(c *gin.Context) {
	person, err := h.services.Persons.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrPersonNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		logger.Error("get person failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, person)
}

type createPersonRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Title       string `json:"title" binding:"required"`
	LinkedinURL string `json:"linkedin_url"`
	GithubURL   string `json:"github_url"`
	TwitterURL  string `json:"twitter_url"`
	Image       string `json:"image"`
}

// @Summary Add a team member
// @Tags Team
// @Accept json
// @Produce json
// @Success 201 {object} domain.Person
// @Failure 400 {object} ValidationErrorStruct
// @Router /team [post]
func (h *Handler) createPerson(c *gin.Context) {
	var req createPersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	person := &domain.Person{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Title:       req.Title,
		LinkedinURL: nullString(req.LinkedinURL),
		GithubURL:   nullString(req.GithubURL),
		TwitterURL:  nullString(req.TwitterURL),
		Image:       req.Image,
	}

	if err := h.services.Persons.Create(c.Request.Context(), person); err != nil {
		if errors.Is(err, service.ErrPersonAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "person already exists"})
			return
		}
		logger.Error("create person failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, person)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
