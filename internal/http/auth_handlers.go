package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookmarks-api/internal/domain"
	"bookmarks-api/internal/service"
)

func (h *Handler) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	token, err := h.auth.Signup(c.Request.Context(), service.SignupInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, TokenResponse{AccessToken: token})
}

func (h *Handler) signin(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	token, err := h.auth.Signin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Bad credentials answer 403 here, not 401.
		if domain.KindOf(err) == domain.KindUnauthorized {
			h.writeErrorStatus(c, http.StatusForbidden, err)
			return
		}
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token})
}
