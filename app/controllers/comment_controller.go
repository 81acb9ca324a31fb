package controllers

import (
	"encoding/json"
	"net/http"

	"inkwell/app/errs"
	"inkwell/app/models"
	"inkwell/app/services"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	postService    *services.PostService
	commentService *services.CommentService
	queryService   *services.QueryService
	needApproval   bool
}

// NewCommentController creates a new CommentController. needApproval is the
// moderation policy flag applied to newly created comments.
func NewCommentController(postService *services.PostService, commentService *services.CommentService, queryService *services.QueryService, needApproval bool) *CommentController {
	return &CommentController{
		postService:    postService,
		commentService: commentService,
		queryService:   queryService,
		needApproval:   needApproval,
	}
}

// Index lists a post's approved comments, newest first, paginated.
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		sendError(w, err)
		return
	}

	q := r.URL.Query()
	result, err := cc.queryService.ListComments(postID, intParam(q.Get("page"), 1), intParam(q.Get("per_page"), 0))
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, result)
}

// Create attaches a new comment to a post, gated by the moderation policy.
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		sendError(w, err)
		return
	}

	var input models.CommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendError(w, &errs.ValidationError{Fields: map[string]string{"body": "invalid JSON: " + err.Error()}})
		return
	}

	comment, err := cc.postService.AddComment(postID, &input, cc.needApproval)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, comment)
}

// Approve moves a pending comment into the visible stream.
func (cc *CommentController) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(w, err)
		return
	}

	comment, err := cc.commentService.Approve(id)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, comment)
}

// Delete removes a single comment.
func (cc *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(w, err)
		return
	}

	if err := cc.commentService.DeleteComment(id); err != nil {
		sendError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
