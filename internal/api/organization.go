package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"article_cms/internal/domain"
	"article_cms/internal/pagination"
)

type OrganizationHandler struct {
	organizations OrganizationService
	logger        *slog.Logger
}

func NewOrganizationHandler(organizations OrganizationService, logger *slog.Logger) *OrganizationHandler {
	return &OrganizationHandler{organizations: organizations, logger: logger}
}

func (h *OrganizationHandler) Create(c *gin.Context) {
	var input domain.NewOrganization
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	org, err := h.organizations.Create(c.Request.Context(), input)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	created(c, org)
}

func (h *OrganizationHandler) List(c *gin.Context) {
	q, err := pagination.ParseQuery(c.Request.URL.Path, c.Request.URL.Query())
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	page, err := h.organizations.FindAll(c.Request.Context(), q)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	ok(c, page)
}

func (h *OrganizationHandler) Get(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}

	org, err := h.organizations.FindOne(c.Request.Context(), id)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	ok(c, org)
}

// GetBySlug handles GET /organizations/slug/:slug.
func (h *OrganizationHandler) GetBySlug(c *gin.Context) {
	org, err := h.organizations.FindBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	ok(c, org)
}

func (h *OrganizationHandler) Update(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}

	var patch domain.OrganizationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	org, err := h.organizations.Update(c.Request.Context(), id, patch)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	ok(c, org)
}

func (h *OrganizationHandler) Delete(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}

	affected, err := h.organizations.Remove(c.Request.Context(), id)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	ok(c, gin.H{"affected": affected})
}
