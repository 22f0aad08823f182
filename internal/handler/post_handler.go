package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inkwell/inkwell-backend/internal/common"
	"github.com/inkwell/inkwell-backend/internal/service"
	"github.com/inkwell/inkwell-backend/pkg/ginutil"
)

// PostHandler handles the public post surface
type PostHandler struct {
	service service.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(service service.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// Home godoc
// @Summary      Paginated post listing
// @Description  Lists published posts newest first; out-of-range pages clamp into the catalog
// @Tags         posts
// @Produce      json
// @Param        page  query     int  false  "page number (default 1)"  default(1)
// @Success      200  {object}  common.APIResponse{data=[]domain.Post}
// @Failure      500  {object}  common.APIResponse
// @Router       / [get]
func (h *PostHandler) Home(c *gin.Context) {
	page := ginutil.QueryInt(c, "page", 1)

	posts, meta, err := h.service.ListPosts(page)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch posts", err)
		return
	}

	common.SuccessResponse(c, posts, meta)
}

// GetPost godoc
// @Summary      Single post by slug
// @Tags         posts
// @Produce      json
// @Param        slug  path      string  true  "post slug"
// @Success      200  {object}  common.APIResponse{data=domain.Post}
// @Failure      404  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /post/{slug} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	slug := c.Param("slug")

	post, err := h.service.GetPostBySlug(slug)
	if errors.Is(err, common.ErrPostNotFound) {
		common.ErrorResponse(c, http.StatusNotFound, "Post not found", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch post", err)
		return
	}

	common.SuccessResponse(c, post, nil)
}
