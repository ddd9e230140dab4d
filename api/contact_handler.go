package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jfalcomer/devblog-backend/database"
	"github.com/jfalcomer/devblog-backend/errs"
	"github.com/jfalcomer/devblog-backend/models"
	"github.com/jfalcomer/devblog-backend/services"
)

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	messageRepo *database.MessageRepo
	notifier    *services.ContactNotifier
}

func newContactHandler(messageRepo *database.MessageRepo, notifier *services.ContactNotifier) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		messageRepo: messageRepo,
		notifier:    notifier,
	}
}

// submitMessage stores a contact form submission and notifies the site
// owner in the background. Notification failures never fail the request.
func (h contactHandler) submitMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var message models.Message
		if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.messageRepo.Create(&message); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create message", "message", err))
			return
		}

		if h.notifier != nil {
			go h.notifier.Notify(context.Background(), &message)
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "message received",
		})
	}
}

// getAllMessages lists contact submissions, newest first
func (h contactHandler) getAllMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.messageRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find messages", "message", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"messages": messages,
			"total":    len(messages),
		})
	}
}
