package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inkwell/inkwell-backend/internal/common"
	"github.com/inkwell/inkwell-backend/internal/config"
	"github.com/inkwell/inkwell-backend/internal/domain"
	"github.com/inkwell/inkwell-backend/internal/service"
)

// ContactHandler handles the visitor contact form
type ContactHandler struct {
	service service.ContactService
	cfg     *config.Config
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(service service.ContactService, cfg *config.Config) *ContactHandler {
	return &ContactHandler{service: service, cfg: cfg}
}

// Form godoc
// @Summary      Contact form data
// @Tags         contact
// @Produce      json
// @Success      200  {object}  common.APIResponse
// @Router       /contact [get]
func (h *ContactHandler) Form(c *gin.Context) {
	common.SuccessResponse(c, gin.H{
		"blog_name": h.cfg.Blog.Name,
		"fields":    []string{"name", "email", "Phone", "message"},
	}, nil)
}

// Submit godoc
// @Summary      Submit a contact message
// @Description  Stores the message, then notifies the admin mailbox; notification failure never fails the request
// @Tags         contact
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        name     formData  string  false  "visitor name"
// @Param        email    formData  string  false  "visitor email"
// @Param        Phone    formData  string  false  "visitor phone"
// @Param        message  formData  string  false  "message body"
// @Success      200  {object}  common.APIResponse{data=domain.ContactMessage}
// @Failure      500  {object}  common.APIResponse
// @Router       /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req domain.ContactRequest
	// No field validation: absent fields are stored empty
	_ = c.ShouldBind(&req)

	msg, err := h.service.Submit(&req)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to store message", err)
		return
	}

	common.SuccessResponse(c, msg, nil)
}
