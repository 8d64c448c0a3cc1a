package controllers

import (
	"net/http"
	"strconv"

	"empirek/app/models"
	"empirek/app/services"

	"github.com/gorilla/mux"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

type commentRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Website  string `json:"website"`
	Message  string `json:"message"`
	ParentID *int   `json:"parentId"`
}

// Create handles a visitor comment submission
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	postID := vars["postId"]

	var req commentRequest
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
		req.Website = r.FormValue("website")
		req.Message = r.FormValue("message")
		if v := r.FormValue("parentId"); v != "" {
			id, err := strconv.Atoi(v)
			if err != nil {
				sendJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid parent id"})
				return
			}
			req.ParentID = &id
		}
	}

	comment := &models.Comment{
		PostID:   postID,
		ParentID: req.ParentID,
		Name:     req.Name,
		Email:    req.Email,
		Website:  req.Website,
		Message:  req.Message,
	}

	if err := cc.commentService.SubmitComment(comment); err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, http.StatusCreated, comment.Public())
}

// Index handles listing public comments for a post
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	postID := vars["postId"]

	comments, err := cc.commentService.ListPostComments(postID, r.URL.Query().Get("sort"))
	if err != nil {
		sendError(w, err)
		return
	}

	public := make([]*models.PublicComment, 0, len(comments))
	for _, comment := range comments {
		public = append(public, comment.Public())
	}
	sendJSON(w, http.StatusOK, public)
}

// AdminIndex handles listing all comments for moderation review
func (cc *CommentController) AdminIndex(w http.ResponseWriter, r *http.Request) {
	comments, err := cc.commentService.ListComments()
	if err != nil {
		sendError(w, err)
		return
	}
	if comments == nil {
		comments = []*models.Comment{}
	}
	sendJSON(w, http.StatusOK, comments)
}

// Delete handles deleting a comment
func (cc *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid comment ID"})
		return
	}

	if err := cc.commentService.DeleteComment(id); err != nil {
		sendError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
