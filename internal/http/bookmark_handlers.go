package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookmarks-api/internal/domain"
	"bookmarks-api/internal/service"
)

func (h *Handler) listBookmarks(c *gin.Context, user domain.PublicUser) {
	bookmarks, err := h.bookmarks.List(c.Request.Context(), user.ID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := make([]BookmarkResponse, len(bookmarks))
	for i := range bookmarks {
		resp[i] = bookmarkToResponse(bookmarks[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) createBookmark(c *gin.Context, user domain.PublicUser) {
	var req createBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	bookmark, err := h.bookmarks.Create(c.Request.Context(), user.ID, service.CreateBookmarkInput{
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bookmarkToResponse(*bookmark))
}

func (h *Handler) getBookmark(c *gin.Context, user domain.PublicUser) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	bookmark, err := h.bookmarks.Get(c.Request.Context(), user.ID, id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookmarkToResponse(*bookmark))
}

func (h *Handler) editBookmark(c *gin.Context, user domain.PublicUser) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req editBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	bookmark, err := h.bookmarks.Edit(c.Request.Context(), user.ID, id, service.EditBookmarkInput{
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookmarkToResponse(*bookmark))
}

func (h *Handler) deleteBookmark(c *gin.Context, user domain.PublicUser) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.bookmarks.Delete(c.Request.Context(), user.ID, id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
