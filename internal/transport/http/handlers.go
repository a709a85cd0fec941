package http

import (
	"net/http"
	"strconv"

	"github.com/plateful/backend/internal/auth/dto"
	customErrors "github.com/plateful/backend/internal/auth/errors"
	authsvc "github.com/plateful/backend/internal/auth/service"
	menusvc "github.com/plateful/backend/internal/menu/service"
	"github.com/plateful/backend/internal/transport/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	auth authsvc.Service
	menu menusvc.Service
	log  *zap.Logger
}

func NewHandler(auth authsvc.Service, menu menusvc.Service, log *zap.Logger) *Handler {
	return &Handler{auth: auth, menu: menu, log: log}
}

func (h *Handler) signup(c *gin.Context) {
	var body dto.SignupDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	acc, err := h.auth.Signup(c.Request.Context(), body)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Signup successful! Please check your email to verify your account.",
		"created_at": acc.CreatedAt,
	})
}

func (h *Handler) verifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token query parameter is required"})
		return
	}

	if err := h.auth.VerifyEmail(c.Request.Context(), token); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email verification successful. You can now log in."})
}

func (h *Handler) login(c *gin.Context) {
	var body dto.LoginDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := h.auth.Login(c.Request.Context(), body)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"access_token": sess.AccessToken,
		"token_type":   sess.TokenType,
		"message":      "Login successful!",
	})
}

func (h *Handler) addMenuItem(c *gin.Context) {
	owner, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid token"})
		return
	}

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be a number"})
		return
	}

	in := menusvc.AddItemInput{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Price:       price,
	}

	if file, err := c.FormFile("image"); err == nil && file != nil {
		src, err := file.Open()
		if err != nil {
			h.handleError(c, customErrors.WrapInternal(err, "open upload"))
			return
		}
		defer src.Close()
		in.Image = &menusvc.ImageUpload{
			Filename:    file.Filename,
			ContentType: file.Header.Get("Content-Type"),
			Body:        src,
		}
	}

	item, err := h.menu.Add(c.Request.Context(), owner, in)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) listMenuItems(c *gin.Context) {
	owner, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid token"})
		return
	}

	views, err := h.menu.List(c.Request.Context(), owner)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *Handler) removeMenuItem(c *gin.Context) {
	owner, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid token"})
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu item id"})
		return
	}

	if err := h.menu.Remove(c.Request.Context(), owner, itemID); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case customErrors.IsInvalidArgument(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case customErrors.IsAlreadyExists(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered."})
	case customErrors.IsInvalidTokenPayload(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid token payload."})
	case customErrors.IsInvalidToken(err), customErrors.IsExpiredToken(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token."})
	case customErrors.IsInvalidCredentials(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials."})
	case customErrors.IsEmailNotVerified(err):
		c.JSON(http.StatusForbidden, gin.H{"error": "Email not verified. Please verify your email first."})
	case customErrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found."})
	default:
		h.log.Error("internal error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
