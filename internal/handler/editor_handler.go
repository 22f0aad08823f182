package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inkwell/inkwell-backend/internal/common"
	"github.com/inkwell/inkwell-backend/internal/domain"
	"github.com/inkwell/inkwell-backend/internal/service"
	"github.com/inkwell/inkwell-backend/pkg/ginutil"
)

// EditorHandler handles authenticated post create/edit/delete
type EditorHandler struct {
	service service.PostService
}

// NewEditorHandler creates a new EditorHandler
func NewEditorHandler(service service.PostService) *EditorHandler {
	return &EditorHandler{service: service}
}

// GetPostForEdit godoc
// @Summary      Editor view of a post
// @Description  Id 0 or an unknown id yields the empty create-form placeholder
// @Tags         editor
// @Produce      json
// @Security     SessionCookie
// @Param        id  path      int  true  "post id (0 = new post)"
// @Success      200  {object}  common.APIResponse{data=domain.Post}
// @Failure      400  {object}  common.APIResponse
// @Router       /edit/{id} [get]
func (h *EditorHandler) GetPostForEdit(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil || id < 0 {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid post ID", err)
		return
	}

	post, err := h.service.GetEditorPost(uint(id))
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch post", err)
		return
	}

	common.SuccessResponse(c, post, nil)
}

// SavePost godoc
// @Summary      Create or update a post
// @Description  Id 0 creates; the response's redirect field points at the assigned id so the editor can keep editing the record. Updating a missing id is 404.
// @Tags         editor
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Security     SessionCookie
// @Param        id         path      int     true   "post id (0 = new post)"
// @Param        title      formData  string  false  "title"
// @Param        sub_title  formData  string  false  "subtitle"
// @Param        slug       formData  string  false  "slug"
// @Param        content    formData  string  false  "body"
// @Param        img_file   formData  string  false  "uploaded image filename"
// @Success      200  {object}  common.APIResponse
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /edit/{id} [post]
func (h *EditorHandler) SavePost(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil || id < 0 {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid post ID", err)
		return
	}

	var req domain.EditPostRequest
	_ = c.ShouldBind(&req)

	post, err := h.service.SavePost(uint(id), &req)
	if errors.Is(err, common.ErrPostNotFound) {
		common.ErrorResponse(c, http.StatusNotFound, "Post not found", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to save post", err)
		return
	}

	common.SuccessResponse(c, gin.H{
		"post":     post,
		"redirect": fmt.Sprintf("/edit/%d", post.ID),
	}, nil)
}

// DeletePost godoc
// @Summary      Delete a post
// @Tags         editor
// @Produce      json
// @Security     SessionCookie
// @Param        id  path      int  true  "post id"
// @Success      200  {object}  common.APIResponse
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /delete/{id} [post]
func (h *EditorHandler) DeletePost(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil || id < 1 {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid post ID", err)
		return
	}

	err = h.service.DeletePost(uint(id))
	if errors.Is(err, common.ErrPostNotFound) {
		common.ErrorResponse(c, http.StatusNotFound, "Post not found", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete post", err)
		return
	}

	common.SuccessResponse(c, gin.H{"redirect": "/dashboard"}, nil)
}
