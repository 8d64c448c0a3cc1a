package services

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"unicode/utf8"

	"empirek/app/models"
	"empirek/app/repositories"
)

// CommentService handles business logic for comments
type CommentService struct {
	commentRepo repositories.CommentRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

// SubmitComment validates and persists a visitor comment. The post id is a
// CMS document id and is taken on trust; the parent comment, when given, must
// exist and belong to the same post.
func (s *CommentService) SubmitComment(comment *models.Comment) error {
	if err := validateComment(comment); err != nil {
		return err
	}

	if comment.ParentID != nil {
		parent, err := s.commentRepo.GetByID(*comment.ParentID)
		if errors.Is(err, repositories.ErrNotFound) {
			return invalid("parentId", "parent comment not found")
		}
		if err != nil {
			return fmt.Errorf("verify parent comment: %v", err)
		}
		if parent.PostID != comment.PostID {
			return invalid("parentId", "parent comment belongs to a different post")
		}
	}

	return s.commentRepo.Create(comment)
}

// ListPostComments retrieves the public comments for a post, ordered by
// creation time. sortOrder is "asc" (default) or "desc".
func (s *CommentService) ListPostComments(postID, sortOrder string) ([]*models.Comment, error) {
	if sortOrder == "" {
		sortOrder = "asc"
	}
	if sortOrder != "asc" && sortOrder != "desc" {
		return nil, invalid("sort", "must be asc or desc")
	}

	comments, err := s.commentRepo.ListByPost(postID)
	if err != nil {
		return nil, err
	}

	sort.Slice(comments, func(i, j int) bool {
		a, b := comments[i], comments[j]
		if a.CreatedAt.Equal(b.CreatedAt) {
			if sortOrder == "desc" {
				return a.ID > b.ID
			}
			return a.ID < b.ID
		}
		if sortOrder == "desc" {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})

	return comments, nil
}

// ListComments retrieves all comments for moderation review, newest first
func (s *CommentService) ListComments() ([]*models.Comment, error) {
	comments, err := s.commentRepo.List()
	if err != nil {
		return nil, err
	}

	sort.Slice(comments, func(i, j int) bool {
		a, b := comments[i], comments[j]
		if a.CreatedAt.Equal(b.CreatedAt) {
			return a.ID > b.ID
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	return comments, nil
}

// DeleteComment permanently removes a comment. Deleting an id that is already
// gone reports ErrNotFound so the caller can tell "already deleted" from a
// store failure.
func (s *CommentService) DeleteComment(id int) error {
	return s.commentRepo.Delete(id)
}

// validateComment validates a comment's fields before any store interaction
func validateComment(comment *models.Comment) error {
	if comment.PostID == "" {
		return invalid("postId", "post id is required")
	}
	if comment.Name == "" {
		return invalid("name", "name is required")
	}
	if utf8.RuneCountInString(comment.Name) > 100 {
		return invalid("name", "name is too long (maximum 100 characters)")
	}
	if !models.ValidEmail(comment.Email) {
		return invalid("email", "invalid email address")
	}
	if comment.Website != "" {
		if u, err := url.Parse(comment.Website); err != nil || u.Scheme == "" || u.Host == "" {
			return invalid("website", "invalid website url")
		}
	}
	if utf8.RuneCountInString(comment.Message) < 10 {
		return invalid("message", "message is too short (minimum 10 characters)")
	}
	if utf8.RuneCountInString(comment.Message) > 1000 {
		return invalid("message", "message is too long (maximum 1000 characters)")
	}
	return nil
}
