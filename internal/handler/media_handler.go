package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inkwell/inkwell-backend/internal/common"
	"github.com/inkwell/inkwell-backend/internal/service"
)

// MediaHandler handles administrator file uploads
type MediaHandler struct {
	service service.MediaService
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(service service.MediaService) *MediaHandler {
	return &MediaHandler{service: service}
}

// Form godoc
// @Summary      Upload form data
// @Tags         media
// @Produce      json
// @Security     SessionCookie
// @Success      200  {object}  common.APIResponse
// @Router       /uploader [get]
func (h *MediaHandler) Form(c *gin.Context) {
	common.SuccessResponse(c, gin.H{"field": "file1"}, nil)
}

// Upload godoc
// @Summary      Store an uploaded file
// @Description  Writes the file into the upload directory under a sanitized name; an existing file with the same name is overwritten
// @Tags         media
// @Accept       multipart/form-data
// @Produce      json
// @Security     SessionCookie
// @Param        file1  formData  file  true  "file to store"
// @Success      200  {object}  common.APIResponse
// @Failure      400  {object}  common.APIResponse
// @Failure      401  {object}  common.APIResponse
// @Router       /uploader [post]
func (h *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file1")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "File is required", err)
		return
	}

	name, err := h.service.SaveUpload(file)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Failed to store file", err)
		return
	}

	common.SuccessResponse(c, gin.H{
		"file":    name,
		"message": "Uploaded successfully",
	}, nil)
}
