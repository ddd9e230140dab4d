package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jfalcomer/devblog-backend/database"
	"github.com/jfalcomer/devblog-backend/errs"
	"github.com/jfalcomer/devblog-backend/highlight"
	"github.com/jfalcomer/devblog-backend/models"
	"github.com/jfalcomer/devblog-backend/services"
)

type sectionHandler struct {
	responder   Responder
	logger      zerolog.Logger
	sectionRepo *database.SectionRepo
	storage     services.Storage
}

func newSectionHandler(sectionRepo *database.SectionRepo, storage services.Storage) sectionHandler {
	logger := log.With().Str("handlerName", "sectionHandler").Logger()

	return sectionHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		sectionRepo: sectionRepo,
		storage:     storage,
	}
}

// stylesheet serves the CSS that styles highlighted code blocks. The
// output is deterministic, so clients can cache it indefinitely.
func (h sectionHandler) stylesheet() http.HandlerFunc {
	css := highlight.Stylesheet()
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=86400")
		if _, err := w.Write([]byte(css)); err != nil {
			h.logger.Error().Err(err).Msg("error writing stylesheet")
		}
	}
}

// getAllSections retrieves every section in the shared library
func (h sectionHandler) getAllSections() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sections, err := h.sectionRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find sections", "section", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"sections": sections,
			"total":    len(sections),
		})
	}
}

// getSection retrieves a section by ID with its highlighted code
func (h sectionHandler) getSection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sectionID, err := parseIDParam(r, "sectionID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		section, err := h.sectionRepo.FindByID(sectionID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find section", "section", err))
			return
		}

		h.responder.WriteJSON(w, newSectionView(section, 0))
	}
}

// createSection creates a new reusable section
func (h sectionHandler) createSection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var section models.Section
		if err := json.NewDecoder(r.Body).Decode(&section); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode section request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.sectionRepo.Create(&section); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create section", "section", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, section)
	}
}

// updateSection updates an existing section
func (h sectionHandler) updateSection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sectionID, err := parseIDParam(r, "sectionID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.sectionRepo.FindByID(sectionID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find section", "section", err))
			return
		}

		var payload models.Section
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode section request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		existing.Title = payload.Title
		existing.Description = payload.Description
		existing.Image = payload.Image
		existing.CodeSnippet = payload.CodeSnippet
		existing.Language = payload.Language

		if err := h.sectionRepo.Update(existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update section", "section", err))
			return
		}

		h.responder.WriteJSON(w, existing)
	}
}

// deleteSection deletes a section and detaches it from every blog
func (h sectionHandler) deleteSection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sectionID, err := parseIDParam(r, "sectionID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.sectionRepo.FindByID(sectionID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find section", "section", err))
			return
		}

		if err := h.sectionRepo.Delete(sectionID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete section", "section", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "section deleted successfully",
		})
	}
}

// uploadImage stores a section image and points the section at the stored URL
func (h sectionHandler) uploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sectionID, err := parseIDParam(r, "sectionID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		section, err := h.sectionRepo.FindByID(sectionID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find section", "section", err))
			return
		}

		if err := r.ParseMultipartForm(10 << 20); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart form"))
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("missing image file"))
			return
		}
		defer file.Close()

		key, err := services.SectionImagePath(section.Title, header.Filename)
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("image", err.Error()))
			return
		}

		url, err := h.storage.Store(r.Context(), key, file, services.ContentTypeForImage(header.Filename))
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to store image", err))
			return
		}

		section.Image = url
		if err := h.sectionRepo.Update(section); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update section", "section", err))
			return
		}

		h.responder.WriteJSON(w, section)
	}
}
