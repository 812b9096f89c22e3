package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookmarks-api/internal/domain"
	"bookmarks-api/internal/service"
)

func (h *Handler) getMe(c *gin.Context, user domain.PublicUser) {
	c.JSON(http.StatusOK, userToResponse(user))
}

func (h *Handler) editMe(c *gin.Context, user domain.PublicUser) {
	var req editUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	updated, err := h.users.Edit(c.Request.Context(), user.ID, service.EditUserInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, userToResponse(updated))
}

func (h *Handler) deleteMe(c *gin.Context, user domain.PublicUser) {
	if err := h.users.Delete(c.Request.Context(), user.ID); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
