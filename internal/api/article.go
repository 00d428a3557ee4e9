package api

import (
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"

	"article_cms/internal/domain"
	"article_cms/internal/pagination"
)

type ArticleHandler struct {
	articles ArticleService
	logger   *slog.Logger
}

func NewArticleHandler(articles ArticleService, logger *slog.Logger) *ArticleHandler {
	return &ArticleHandler{articles: articles, logger: logger}
}

// Create handles POST /articles.
func (h *ArticleHandler) Create(c *gin.Context) {
	var input domain.NewArticle
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	article, err := h.articles.Create(c.Request.Context(), input)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	created(c, article)
}

// List handles GET /articles. status narrows by derived publication state.
func (h *ArticleHandler) List(c *gin.Context) {
	q, err := pagination.ParseQuery(c.Request.URL.Path, c.Request.URL.Query())
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	status, err := domain.ParsePublishStatus(c.Query("status"))
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	page, err := h.articles.ListAll(c.Request.Context(), q, status)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	ok(c, page)
}

func (h *ArticleHandler) Get(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}

	article, err := h.articles.GetOne(c.Request.Context(), id)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	ok(c, article)
}

// Delete handles DELETE /articles/:id. A missing article reports zero
// affected rows rather than 404.
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}

	affected, err := h.articles.Remove(c.Request.Context(), id)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	ok(c, gin.H{"affected": affected})
}

func (h *ArticleHandler) GetDraft(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}

	draft, err := h.articles.GetDraft(c.Request.Context(), id)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	ok(c, draft)
}

func (h *ArticleHandler) UpdateDraft(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}

	var patch domain.DraftPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	draft, err := h.articles.UpdateDraft(c.Request.Context(), id, patch)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	ok(c, draft)
}

// Publish handles POST /articles/:id/publish and returns the new snapshot.
func (h *ArticleHandler) Publish(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}

	snapshot, err := h.articles.Publish(c.Request.Context(), id)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	created(c, snapshot)
}

func (h *ArticleHandler) ListPublished(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}

	versions, err := h.articles.GetPublishedVersions(c.Request.Context(), id)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	if versions == nil {
		versions = []domain.ArticlePublished{}
	}
	ok(c, versions)
}

func (h *ArticleHandler) LatestPublished(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}

	snapshot, err := h.articles.GetLatestPublished(c.Request.Context(), id)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	ok(c, snapshot)
}

// pathID parses the :id segment, answering 400 itself when it is not a
// positive integer.
func pathID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		badRequest(c, "invalid id "+strconv.Quote(raw))
		return 0, false
	}
	return id, true
}
