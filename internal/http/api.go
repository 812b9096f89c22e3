package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"bookmarks-api/internal/domain"
	"bookmarks-api/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	auth         service.AuthService
	users        service.UserService
	bookmarks    service.BookmarkService
	logger       *logrus.Logger
	allowOrigins []string
}

func NewHandler(auth service.AuthService, users service.UserService, bookmarks service.BookmarkService, logger *logrus.Logger, allowOrigins []string) *Handler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Handler{
		auth:         auth,
		users:        users,
		bookmarks:    bookmarks,
		logger:       logger,
		allowOrigins: allowOrigins,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(requestLogger(h.logger))
	router.Use(cors.New(corsConfig(h.allowOrigins)))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", h.signup)
		authGroup.POST("/signin", h.signin)
	}

	users := router.Group("/users")
	{
		users.GET("/me", h.guard(h.getMe))
		users.PATCH("", h.guard(h.editMe))
		users.DELETE("", h.guard(h.deleteMe))
	}

	bookmarks := router.Group("/bookmarks")
	{
		bookmarks.GET("", h.guard(h.listBookmarks))
		bookmarks.POST("", h.guard(h.createBookmark))
		bookmarks.GET("/:id", h.guard(h.getBookmark))
		bookmarks.PATCH("/:id", h.guard(h.editBookmark))
		bookmarks.DELETE("/:id", h.guard(h.deleteBookmark))
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", requestIDHeader}
	cfg.ExposeHeaders = []string{requestIDHeader}

	cleaned := make([]string, 0, len(origins))
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
		if o != "" {
			cleaned = append(cleaned, o)
		}
	}
	if len(cleaned) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = cleaned
	return cfg
}

// writeError maps a service error onto the response. Internal causes are
// logged and replaced by a generic message.
func (h *Handler) writeError(c *gin.Context, err error) {
	h.writeErrorStatus(c, statusFor(domain.KindOf(err)), err)
}

func (h *Handler) writeErrorStatus(c *gin.Context, status int, err error) {
	if status >= http.StatusInternalServerError {
		h.logger.WithError(err).
			WithField("request_id", requestID(c)).
			WithField("path", c.FullPath()).
			Error("request failed")
	}
	c.AbortWithStatusJSON(status, gin.H{"error": domain.MessageOf(err)})
}

func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindConflict:
		return http.StatusForbidden
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msg})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "invalid bookmark id")
		return 0, false
	}
	return id, true
}
