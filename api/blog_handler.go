package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jfalcomer/devblog-backend/database"
	"github.com/jfalcomer/devblog-backend/errs"
	"github.com/jfalcomer/devblog-backend/models"
	"github.com/jfalcomer/devblog-backend/services"
)

type blogHandler struct {
	responder       Responder
	logger          zerolog.Logger
	blogRepo        *database.BlogRepo
	blogSectionRepo *database.BlogSectionRepo
	tagRepo         *database.TagRepo
	storage         services.Storage
}

func newBlogHandler(blogRepo *database.BlogRepo, blogSectionRepo *database.BlogSectionRepo, tagRepo *database.TagRepo, storage services.Storage) blogHandler {
	logger := log.With().Str("handlerName", "blogHandler").Logger()

	return blogHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		blogRepo:        blogRepo,
		blogSectionRepo: blogSectionRepo,
		tagRepo:         tagRepo,
		storage:         storage,
	}
}

// listPublished returns one page of published blogs, newest publication
// first, optionally filtered by tag slug.
func (h blogHandler) listPublished() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tagSlug := r.URL.Query().Get("tag")

		page := 1
		if pageStr := r.URL.Query().Get("page"); pageStr != "" {
			parsed, err := strconv.Atoi(pageStr)
			if err != nil || parsed < 1 {
				h.responder.WriteError(w, errs.NewBadRequestError("invalid page"))
				return
			}
			page = parsed
		}

		blogPage, err := h.blogRepo.FindPublished(tagSlug, page)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find published blogs", "blog", err))
			return
		}

		h.responder.WriteJSON(w, blogPage)
	}
}

// getPublishedDetail resolves a published blog by slug and assembles its
// sections in display order with highlighted code.
func (h blogHandler) getPublishedDetail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		blog, err := h.blogRepo.FindPublishedBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find published blog", "blog", err))
			return
		}

		blogSections, err := h.blogSectionRepo.OrderedSections(blog.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog sections", "blog_section", err))
			return
		}

		sections := make([]sectionView, 0, len(blogSections))
		for _, bs := range blogSections {
			sections = append(sections, newSectionView(&bs.Section, bs.Position))
		}

		h.responder.WriteJSON(w, BlogDetail{
			Blog:     *blog,
			Sections: sections,
		})
	}
}

// getAllBlogs retrieves every blog regardless of status
func (h blogHandler) getAllBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogs, err := h.blogRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blogs", "blog", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"blogs": blogs,
			"total": len(blogs),
		})
	}
}

// getBlog retrieves a blog by ID with its ordered sections
func (h blogHandler) getBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, err := parseIDParam(r, "blogID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		blog, err := h.blogRepo.FindByID(blogID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog", "blog", err))
			return
		}

		blogSections, err := h.blogSectionRepo.OrderedSections(blog.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog sections", "blog_section", err))
			return
		}

		sections := make([]sectionView, 0, len(blogSections))
		for _, bs := range blogSections {
			sections = append(sections, newSectionView(&bs.Section, bs.Position))
		}

		h.responder.WriteJSON(w, BlogDetail{
			Blog:     *blog,
			Sections: sections,
		})
	}
}

// createBlog creates a new blog, optionally with an initial tag set
func (h blogHandler) createBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload blogRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		blog := models.Blog{
			Title:       payload.Title,
			Banner:      payload.Banner,
			Slug:        payload.Slug,
			Summary:     payload.Summary,
			Status:      payload.Status,
			PublishDate: payload.PublishDate,
		}

		if err := h.blogRepo.Create(&blog); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create blog", "blog", err))
			return
		}

		if len(payload.TagIDs) > 0 {
			if err := h.replaceTags(&blog, payload.TagIDs); err != nil {
				h.responder.WriteError(w, err)
				return
			}
		}

		created, err := h.blogRepo.FindByID(blog.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created blog", "blog", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// updateBlog updates an existing blog and, when tagIds is present,
// replaces its tag set.
func (h blogHandler) updateBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, err := parseIDParam(r, "blogID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.blogRepo.FindByID(blogID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog", "blog", err))
			return
		}

		var payload blogRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		existing.Title = payload.Title
		existing.Banner = payload.Banner
		existing.Slug = payload.Slug
		existing.Summary = payload.Summary
		if payload.Status != "" {
			existing.Status = payload.Status
		}
		if payload.PublishDate != nil {
			existing.PublishDate = payload.PublishDate
		}

		if err := h.blogRepo.Update(existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update blog", "blog", err))
			return
		}

		if payload.TagIDs != nil {
			if err := h.replaceTags(existing, payload.TagIDs); err != nil {
				h.responder.WriteError(w, err)
				return
			}
		}

		updated, err := h.blogRepo.FindByID(blogID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated blog", "blog", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteBlog deletes a blog and its association rows. Shared sections
// survive the delete.
func (h blogHandler) deleteBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, err := parseIDParam(r, "blogID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.blogRepo.FindByID(blogID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog", "blog", err))
			return
		}

		if err := h.blogRepo.Delete(blogID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete blog", "blog", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "blog deleted successfully",
		})
	}
}

// uploadBanner stores a banner image and points the blog at the stored URL
func (h blogHandler) uploadBanner() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, err := parseIDParam(r, "blogID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		blog, err := h.blogRepo.FindByID(blogID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog", "blog", err))
			return
		}

		if err := r.ParseMultipartForm(10 << 20); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart form"))
			return
		}

		file, header, err := r.FormFile("banner")
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("missing banner file"))
			return
		}
		defer file.Close()

		key, err := services.BlogBannerPath(blog.Title, header.Filename)
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("banner", err.Error()))
			return
		}

		url, err := h.storage.Store(r.Context(), key, file, services.ContentTypeForImage(header.Filename))
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to store banner", err))
			return
		}

		blog.Banner = url
		if err := h.blogRepo.Update(blog); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update blog", "blog", err))
			return
		}

		h.responder.WriteJSON(w, blog)
	}
}

// attachSection links a section into a blog at the given order. When the
// pair already exists the call just moves the section to the new order.
func (h blogHandler) attachSection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, err := parseIDParam(r, "blogID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		sectionID, err := parseIDParam(r, "sectionID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var payload attachSectionRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		blogSection, err := h.blogSectionRepo.Attach(blogID, sectionID, payload.Order)
		if err != nil {
			wrapped := wrapDatabaseError("attach section", "blog_section", err)
			if !errs.IsUniquenessViolation(wrapped) {
				h.responder.WriteError(w, wrapped)
				return
			}

			if err := h.blogSectionRepo.SetPosition(blogID, sectionID, payload.Order); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("reorder section", "blog_section", err))
				return
			}
			h.responder.WriteJSON(w, map[string]any{
				"status": "success",
				"order":  payload.Order,
			})
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, blogSection)
	}
}

// detachSection removes a section from a blog without deleting the section
func (h blogHandler) detachSection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, err := parseIDParam(r, "blogID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		sectionID, err := parseIDParam(r, "sectionID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.blogSectionRepo.Detach(blogID, sectionID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("detach section", "blog_section", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "section detached successfully",
		})
	}
}

// publishBlogs transitions the given blogs to published
func (h blogHandler) publishBlogs() http.HandlerFunc {
	return h.transitionBlogs("publish blogs", h.blogRepo.Publish)
}

// archiveBlogs transitions the given blogs to archived
func (h blogHandler) archiveBlogs() http.HandlerFunc {
	return h.transitionBlogs("archive blogs", h.blogRepo.Archive)
}

func (h blogHandler) transitionBlogs(operation string, transition func([]uuid.UUID) (int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload blogIDsRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if len(payload.IDs) == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("ids is required"))
			return
		}

		updated, err := transition(payload.IDs)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError(operation, "blog", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status":  "success",
			"updated": updated,
		})
	}
}

// replaceTags resolves every tag ID and swaps them in as the blog's tag set
func (h blogHandler) replaceTags(blog *models.Blog, tagIDs []uuid.UUID) error {
	tags := make([]*models.Tag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		tag, err := h.tagRepo.FindByID(tagID)
		if err != nil {
			return wrapDatabaseError("find tag", "tag", err)
		}
		tags = append(tags, tag)
	}

	if err := h.blogRepo.SetTags(blog, tags); err != nil {
		return wrapDatabaseError("set blog tags", "blog", err)
	}
	return nil
}

// parseIDParam reads a UUID route parameter
func parseIDParam(r *http.Request, name string) (uuid.UUID, error) {
	idStr := chi.URLParam(r, name)
	if idStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing " + name)
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid " + name)
	}
	return id, nil
}
