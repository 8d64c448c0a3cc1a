package controllers

import (
	"net/http"
	"strconv"

	"empirek/app/models"
	"empirek/app/services"

	"github.com/gorilla/mux"
)

// FaqController handles HTTP requests for FAQs
type FaqController struct {
	faqService *services.FaqService
}

// NewFaqController creates a new FaqController
func NewFaqController(faqService *services.FaqService) *FaqController {
	return &FaqController{faqService: faqService}
}

// Ask handles a visitor FAQ question submission
func (fc *FaqController) Ask(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question       string `json:"question"`
		SubmitterName  string `json:"submitterName"`
		SubmitterEmail string `json:"submitterEmail"`
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
		req.Question = r.FormValue("question")
		req.SubmitterName = r.FormValue("submitterName")
		req.SubmitterEmail = r.FormValue("submitterEmail")
	}

	faq, err := fc.faqService.SubmitQuestion(req.Question, req.SubmitterName, req.SubmitterEmail)
	if err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, http.StatusCreated, faq)
}

// Index handles listing published FAQs
func (fc *FaqController) Index(w http.ResponseWriter, r *http.Request) {
	faqs, err := fc.faqService.ListPublic(r.URL.Query().Get("category"))
	if err != nil {
		sendError(w, err)
		return
	}
	if faqs == nil {
		faqs = []*models.FAQ{}
	}
	sendJSON(w, http.StatusOK, faqs)
}

// Pending handles listing pending FAQs for moderation review
func (fc *FaqController) Pending(w http.ResponseWriter, r *http.Request) {
	faqs, err := fc.faqService.ListPending()
	if err != nil {
		sendError(w, err)
		return
	}
	if faqs == nil {
		faqs = []*models.FAQ{}
	}
	sendJSON(w, http.StatusOK, faqs)
}

// Answer handles the pending-to-answered moderation transition
func (fc *FaqController) Answer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid FAQ ID"})
		return
	}

	var req struct {
		Answer  string `json:"answer"`
		Version int    `json:"version"`
	}
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, err)
		return
	}

	faq, err := fc.faqService.Answer(id, req.Answer, req.Version)
	if err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, faq)
}

// Visibility handles toggling the publication flag of a FAQ
func (fc *FaqController) Visibility(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid FAQ ID"})
		return
	}

	var req struct {
		Version int `json:"version"`
	}
	// The body is optional; an absent version skips the conditional check.
	if r.Body != nil && r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			sendError(w, err)
			return
		}
	}

	isActive, err := fc.faqService.ToggleVisibility(id, req.Version)
	if err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, map[string]bool{"isActive": isActive})
}
