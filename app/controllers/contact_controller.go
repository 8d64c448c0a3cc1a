package controllers

import (
	"errors"
	"net/http"

	"empirek/app/models"
	"empirek/app/notify"
	"empirek/app/services"
)

// ContactController handles HTTP requests for contact messages
type ContactController struct {
	contactService *services.ContactService
}

// NewContactController creates a new ContactController
func NewContactController(contactService *services.ContactService) *ContactController {
	return &ContactController{contactService: contactService}
}

// Create handles a visitor contact-form submission
func (cc *ContactController) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Message string `json:"message"`
	}
	if isJSON(r) {
		if err := decodeJSON(r, &req); err != nil {
			sendError(w, err)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			sendJSON(w, http.StatusBadRequest, map[string]string{"error": "failed to parse form: " + err.Error()})
			return
		}
		req.Name = r.FormValue("name")
		req.Email = r.FormValue("email")
		req.Phone = r.FormValue("phone")
		req.Message = r.FormValue("message")
	}

	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}

	reference, err := cc.contactService.SubmitMessage(msg)
	if err != nil {
		var dErr *notify.DispatchError
		if errors.As(err, &dErr) {
			// The record is queued and will be retried; give the visitor the
			// reference so a follow-up can quote it.
			sendJSON(w, http.StatusBadGateway, map[string]string{
				"error":     "notification could not be delivered, the message was saved",
				"reference": reference,
			})
			return
		}
		sendError(w, err)
		return
	}

	sendJSON(w, http.StatusAccepted, map[string]string{"reference": reference})
}

// AdminIndex handles listing outbox records for the operator
func (cc *ContactController) AdminIndex(w http.ResponseWriter, r *http.Request) {
	msgs, err := cc.contactService.ListMessages(r.URL.Query().Get("status"))
	if err != nil {
		sendError(w, err)
		return
	}
	if msgs == nil {
		msgs = []*models.ContactMessage{}
	}
	sendJSON(w, http.StatusOK, msgs)
}
