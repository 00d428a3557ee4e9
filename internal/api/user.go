package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"article_cms/internal/domain"
	"article_cms/internal/pagination"
)

type UserHandler struct {
	users  UserService
	logger *slog.Logger
}

func NewUserHandler(users UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

func (h *UserHandler) Create(c *gin.Context) {
	var input domain.NewUser
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	user, err := h.users.Create(c.Request.Context(), input)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	created(c, user)
}

// List handles GET /users. The service insists on filter.organization.id.
func (h *UserHandler) List(c *gin.Context) {
	q, err := pagination.ParseQuery(c.Request.URL.Path, c.Request.URL.Query())
	if err != nil {
		fail(c, h.logger, err)
		return
	}

	page, err := h.users.FindAll(c.Request.Context(), q)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	ok(c, page)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}

	user, err := h.users.FindOne(c.Request.Context(), id)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	ok(c, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}

	var patch domain.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	user, err := h.users.Update(c.Request.Context(), id, patch)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	ok(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}

	affected, err := h.users.Remove(c.Request.Context(), id)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	ok(c, gin.H{"affected": affected})
}
