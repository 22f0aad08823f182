package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/inkwell/inkwell-backend/internal/common"
	"github.com/inkwell/inkwell-backend/internal/config"
)

// SiteHandler serves static site views (about page data)
type SiteHandler struct {
	cfg *config.Config
}

// NewSiteHandler creates a new SiteHandler
func NewSiteHandler(cfg *config.Config) *SiteHandler {
	return &SiteHandler{cfg: cfg}
}

// About godoc
// @Summary      About page data
// @Tags         site
// @Produce      json
// @Success      200  {object}  common.APIResponse
// @Router       /about [get]
func (h *SiteHandler) About(c *gin.Context) {
	common.SuccessResponse(c, gin.H{
		"blog_name": h.cfg.Blog.Name,
		"tagline":   h.cfg.Blog.Tagline,
		"about":     h.cfg.Blog.About,
	}, nil)
}
