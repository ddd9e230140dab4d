package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jfalcomer/devblog-backend/database"
	"github.com/jfalcomer/devblog-backend/errs"
	"github.com/jfalcomer/devblog-backend/models"
)

type tagHandler struct {
	responder Responder
	logger    zerolog.Logger
	tagRepo   *database.TagRepo
}

func newTagHandler(tagRepo *database.TagRepo) tagHandler {
	logger := log.With().Str("handlerName", "tagHandler").Logger()

	return tagHandler{
		responder: NewResponder(logger),
		logger:    logger,
		tagRepo:   tagRepo,
	}
}

// getAllTags retrieves every tag ordered by name
func (h tagHandler) getAllTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := h.tagRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find tags", "tag", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"tags":  tags,
			"total": len(tags),
		})
	}
}

// getTag retrieves a tag by ID
func (h tagHandler) getTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tagID, err := parseIDParam(r, "tagID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		tag, err := h.tagRepo.FindByID(tagID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find tag", "tag", err))
			return
		}

		h.responder.WriteJSON(w, tag)
	}
}

// createTag creates a new tag, deriving the slug from the name when absent
func (h tagHandler) createTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var tag models.Tag
		if err := json.NewDecoder(r.Body).Decode(&tag); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode tag request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.tagRepo.Create(&tag); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create tag", "tag", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, tag)
	}
}

// updateTag updates an existing tag
func (h tagHandler) updateTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tagID, err := parseIDParam(r, "tagID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.tagRepo.FindByID(tagID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find tag", "tag", err))
			return
		}

		var payload models.Tag
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode tag request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		existing.Name = payload.Name
		existing.Slug = payload.Slug

		if err := h.tagRepo.Update(existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update tag", "tag", err))
			return
		}

		h.responder.WriteJSON(w, existing)
	}
}

// deleteTag deletes a tag and unlinks it from every blog
func (h tagHandler) deleteTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tagID, err := parseIDParam(r, "tagID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.tagRepo.FindByID(tagID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find tag", "tag", err))
			return
		}

		if err := h.tagRepo.Delete(tagID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete tag", "tag", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "tag deleted successfully",
		})
	}
}
