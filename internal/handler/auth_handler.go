package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inkwell/inkwell-backend/internal/common"
	"github.com/inkwell/inkwell-backend/internal/middleware"
	"github.com/inkwell/inkwell-backend/internal/service"
)

// AuthHandler handles the dashboard login surface
type AuthHandler struct {
	authService service.AuthService
	postService service.PostService
	sessionTTL  time.Duration
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService, postService service.PostService, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		postService: postService,
		sessionTTL:  sessionTTL,
	}
}

// loginRequest carries the dashboard login form fields
type loginRequest struct {
	Username string `form:"uname" json:"uname"`
	Password string `form:"pass" json:"pass"`
}

// Dashboard godoc
// @Summary      Admin dashboard
// @Description  With a valid session returns every post; a POST with credentials logs in first and sets the session cookie. Anything else is 401.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        uname  formData  string  false  "admin username"
// @Param        pass   formData  string  false  "admin password"
// @Success      200  {object}  common.APIResponse{data=[]domain.Post}
// @Failure      401  {object}  common.APIResponse
// @Router       /dashboard [post]
func (h *AuthHandler) Dashboard(c *gin.Context) {
	if middleware.IsAdmin(c) {
		h.renderDashboard(c)
		return
	}

	if c.Request.Method == http.MethodPost {
		var req loginRequest
		_ = c.ShouldBind(&req)

		token, err := h.authService.Login(req.Username, req.Password)
		if err == nil {
			c.SetCookie(middleware.SessionCookieName, token, int(h.sessionTTL.Seconds()), "/", "", false, true)
			h.renderDashboard(c)
			return
		}
	}

	common.ErrorResponse(c, http.StatusUnauthorized, "Login required", nil)
}

// Logout godoc
// @Summary      Clear the admin session
// @Description  Unconditional; a no-op when no session exists
// @Tags         auth
// @Produce      json
// @Success      200  {object}  common.APIResponse
// @Router       /logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	common.SuccessResponse(c, gin.H{"message": "Logged out"}, nil)
}

// renderDashboard answers with the full catalog for the admin view
func (h *AuthHandler) renderDashboard(c *gin.Context) {
	posts, err := h.postService.ListAllPosts()
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch posts", err)
		return
	}
	common.SuccessResponse(c, posts, nil)
}
