package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/inkwell/inkwell-backend/internal/handler"
	"github.com/inkwell/inkwell-backend/internal/middleware"
	"github.com/inkwell/inkwell-backend/pkg/jwt"
)

// Setup configures all routes. The URL surface mirrors the legacy
// blog: editor and uploader routes answer GET and POST alike.
func Setup(
	router *gin.Engine,
	postHandler *handler.PostHandler,
	siteHandler *handler.SiteHandler,
	contactHandler *handler.ContactHandler,
	authHandler *handler.AuthHandler,
	editorHandler *handler.EditorHandler,
	mediaHandler *handler.MediaHandler,
	jwtManager *jwt.Manager,
) {
	// Session cookie auth runs on every route; it never rejects,
	// it only attaches the admin marker when the cookie verifies.
	r := router.Group("", middleware.SessionAuth(jwtManager))

	// Public surface
	r.GET("/", postHandler.Home)
	r.GET("/post/:slug", postHandler.GetPost)
	r.GET("/about", siteHandler.About)
	r.GET("/contact", contactHandler.Form)
	r.POST("/contact", contactHandler.Submit)

	// Login + dashboard
	r.GET("/dashboard", authHandler.Dashboard)
	r.POST("/dashboard", authHandler.Dashboard)
	r.GET("/logout", authHandler.Logout)

	// Administrative mutations fail closed without the session marker
	admin := r.Group("", middleware.RequireAdmin())
	admin.GET("/edit/:id", editorHandler.GetPostForEdit)
	admin.POST("/edit/:id", editorHandler.SavePost)
	admin.GET("/delete/:id", editorHandler.DeletePost)
	admin.POST("/delete/:id", editorHandler.DeletePost)
	admin.GET("/uploader", mediaHandler.Form)
	admin.POST("/uploader", mediaHandler.Upload)
}
