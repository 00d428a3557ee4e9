package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Articles      *ArticleHandler
	Users         *UserHandler
	Organizations *OrganizationHandler
}

// NewRouter mounts every route on a fresh engine. Handlers must be fully
// populated.
func NewRouter(h Handlers, allowedOrigins string, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(CORS(allowedOrigins))
	router.Use(Logger(logger.With("component", "http")))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	articles := router.Group("/articles")
	{
		articles.POST("", h.Articles.Create)
		articles.GET("", h.Articles.List)
		articles.GET("/:id", h.Articles.Get)
		articles.DELETE("/:id", h.Articles.Delete)
		articles.GET("/:id/draft", h.Articles.GetDraft)
		articles.PATCH("/:id/draft", h.Articles.UpdateDraft)
		articles.POST("/:id/publish", h.Articles.Publish)
		articles.GET("/:id/published", h.Articles.ListPublished)
		articles.GET("/:id/published/latest", h.Articles.LatestPublished)
	}

	users := router.Group("/users")
	{
		users.POST("", h.Users.Create)
		users.GET("", h.Users.List)
		users.GET("/:id", h.Users.Get)
		users.PATCH("/:id", h.Users.Update)
		users.DELETE("/:id", h.Users.Delete)
	}

	organizations := router.Group("/organizations")
	{
		organizations.POST("", h.Organizations.Create)
		organizations.GET("", h.Organizations.List)
		organizations.GET("/slug/:slug", h.Organizations.GetBySlug)
		organizations.GET("/:id", h.Organizations.Get)
		organizations.PATCH("/:id", h.Organizations.Update)
		organizations.DELETE("/:id", h.Organizations.Delete)
	}

	return router
}
