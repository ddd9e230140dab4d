package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

// setupRoutes wires the public reading surface and the admin editing surface
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Get("/blogs", handlers.blogHandler.listPublished())
		r.Get("/blogs/{slug}", handlers.blogHandler.getPublishedDetail())
		r.Get("/highlight/styles.css", handlers.sectionHandler.stylesheet())

		// Contact form is the only public write, keep it rate limited
		r.With(httprate.LimitByIP(5, time.Minute)).
			Post("/contact", handlers.contactHandler.submitMessage())
	})

	// Admin routes
	r.Route("/admin", func(r chi.Router) {
		// Tag endpoints
		r.Get("/tags", handlers.tagHandler.getAllTags())
		r.Get("/tags/{tagID}", handlers.tagHandler.getTag())
		r.Post("/tags", handlers.tagHandler.createTag())
		r.Put("/tags/{tagID}", handlers.tagHandler.updateTag())
		r.Delete("/tags/{tagID}", handlers.tagHandler.deleteTag())

		// Section endpoints
		r.Get("/sections", handlers.sectionHandler.getAllSections())
		r.Get("/sections/{sectionID}", handlers.sectionHandler.getSection())
		r.Post("/sections", handlers.sectionHandler.createSection())
		r.Put("/sections/{sectionID}", handlers.sectionHandler.updateSection())
		r.Delete("/sections/{sectionID}", handlers.sectionHandler.deleteSection())
		r.Post("/sections/{sectionID}/image", handlers.sectionHandler.uploadImage())

		// Blog endpoints
		r.Get("/blogs", handlers.blogHandler.getAllBlogs())
		r.Get("/blogs/{blogID}", handlers.blogHandler.getBlog())
		r.Post("/blogs", handlers.blogHandler.createBlog())
		r.Put("/blogs/{blogID}", handlers.blogHandler.updateBlog())
		r.Delete("/blogs/{blogID}", handlers.blogHandler.deleteBlog())
		r.Post("/blogs/{blogID}/banner", handlers.blogHandler.uploadBanner())

		// Section membership and ordering
		r.Put("/blogs/{blogID}/sections/{sectionID}", handlers.blogHandler.attachSection())
		r.Delete("/blogs/{blogID}/sections/{sectionID}", handlers.blogHandler.detachSection())

		// Bulk status transitions
		r.Post("/blogs/publish", handlers.blogHandler.publishBlogs())
		r.Post("/blogs/archive", handlers.blogHandler.archiveBlogs())

		// Contact inbox
		r.Get("/messages", handlers.contactHandler.getAllMessages())
	})
}
