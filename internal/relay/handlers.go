package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	MsgSent          = "Email sent successfully!"
	MsgMissingFields = "Email and photo are required"
	MsgInvalidEmail  = "Invalid email address"
	MsgNotImage      = "Photo must be an image"
	MsgSendFailed    = "Failed to send email"

	RelayIDHeader = "X-Relay-ID"
)

type Handler struct {
	service       *Service
	maxUploadSize int64
}

func NewHandler(service *Service, maxUploadSize int64) *Handler {
	return &Handler{
		service:       service,
		maxUploadSize: maxUploadSize,
	}
}

// HandleSendEmail accepts the upload form and mails the photo back
func (h *Handler) HandleSendEmail(w http.ResponseWriter, r *http.Request) {
	relayID := uuid.NewString()
	w.Header().Set(RelayIDHeader, relayID)

	req, err := ParseUploadRequest(w, r, h.maxUploadSize)
	if err != nil {
		h.rejectRequest(w, relayID, err)
		return
	}

	// The send is not aborted when the client goes away mid-request.
	ctx := context.WithoutCancel(r.Context())

	if err := h.service.Send(ctx, req, relayID); err != nil {
		if isValidationError(err) {
			h.rejectRequest(w, relayID, err)
			return
		}

		// Log the provider error but don't send it to the client
		log.Error().
			Err(err).
			Str("relay_id", relayID).
			Str("provider", h.service.Provider()).
			Str("to", req.RecipientEmail).
			Str("filename", req.Photo.Filename).
			Str("size", humanize.Bytes(uint64(len(req.Photo.Bytes)))).
			Msg("Failed to send email")
		sendResult(w, http.StatusInternalServerError, SendResult{Error: MsgSendFailed})
		return
	}

	log.Info().
		Str("relay_id", relayID).
		Str("provider", h.service.Provider()).
		Str("to", req.RecipientEmail).
		Str("filename", req.Photo.Filename).
		Str("mime_type", req.Photo.MimeType).
		Str("size", humanize.Bytes(uint64(len(req.Photo.Bytes)))).
		Msg("Email sent successfully")

	sendResult(w, http.StatusOK, SendResult{Success: true, Message: MsgSent})
}

func (h *Handler) rejectRequest(w http.ResponseWriter, relayID string, err error) {
	status, message := http.StatusBadRequest, MsgMissingFields
	switch {
	case errors.Is(err, ErrPhotoTooLarge):
		status = http.StatusRequestEntityTooLarge
		message = fmt.Sprintf("Photo exceeds maximum size of %s", humanize.Bytes(uint64(h.maxUploadSize)))
	case errors.Is(err, ErrInvalidEmail):
		message = MsgInvalidEmail
	case errors.Is(err, ErrNotImage):
		message = MsgNotImage
	}

	log.Warn().
		Err(err).
		Str("relay_id", relayID).
		Int("status", status).
		Msg("Rejected upload")

	sendResult(w, status, SendResult{Error: message})
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrMissingFields) ||
		errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrNotImage) ||
		errors.Is(err, ErrPhotoTooLarge)
}

// sendResult handles JSON response formatting consistently
func sendResult(w http.ResponseWriter, status int, result SendResult) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Error().Err(err).Msg("Error encoding response")
	}
}
