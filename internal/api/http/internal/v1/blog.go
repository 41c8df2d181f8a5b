package v1

import (
	"net/http"

	"github.com/arco-app/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) initBlogRoutes(api *gin.RouterGroup) {
	blog := api.Group("/blog")

	blog.GET("", h.getBlogNews)
	// Legacy clients poll the feed with POST as well.
	blog.POST("", h.getBlogNews)
}

type blogNewsResponse struct {
	News []string `json:"news"`
} // @name BlogNewsResponse

// @Summary Get top news links
// @Tags Blog
// @Description Returns the cached top news links and schedules a background refresh
// @Produce json
// @Success 200 {object} blogNewsResponse
// @Router /blog [get]
func (h *Handler) getBlogNews(c *gin.Context) {
	news, err := h.services.News.TopNews(c.Request.Context())
	if err != nil {
		logger.Error("get top news failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if news == nil {
		news = []string{}
	}

	c.JSON(http.StatusOK, blogNewsResponse{News: news})
}
