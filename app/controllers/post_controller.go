package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"inkwell/app/errs"
	"inkwell/app/models"
	"inkwell/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for posts
type PostController struct {
	postService  *services.PostService
	queryService *services.QueryService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService, queryService *services.QueryService) *PostController {
	return &PostController{postService: postService, queryService: queryService}
}

// Index handles the filtered, paginated post listing
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	criteria := services.SearchCriteria{
		TitleContains: q.Get("title"),
		Tag:           q.Get("tag"),
	}
	if statusStr := q.Get("status"); statusStr != "" {
		status, err := strconv.Atoi(statusStr)
		if err != nil {
			sendError(w, &errs.ValidationError{Fields: map[string]string{"status": "must be an integer"}})
			return
		}
		criteria.Status = models.PostStatus(status)
	}

	page := intParam(q.Get("page"), 1)
	perPage := intParam(q.Get("per_page"), 0)

	result, err := pc.queryService.SearchPosts(criteria, services.SortOrder(q.Get("sort")), page, perPage)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, result)
}

// Show handles displaying a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(w, err)
		return
	}

	post, err := pc.postService.GetPost(id)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	identity := actingIdentity(r)
	if identity == "" {
		sendError(w, &errs.ValidationError{Fields: map[string]string{"author": "acting identity is required"}})
		return
	}

	var input models.PostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendError(w, &errs.ValidationError{Fields: map[string]string{"body": "invalid JSON: " + err.Error()}})
		return
	}

	post, err := pc.postService.CreatePost(&input, identity)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, post)
}

// Update handles editing an existing post
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(w, err)
		return
	}

	var input models.PostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendError(w, &errs.ValidationError{Fields: map[string]string{"body": "invalid JSON: " + err.Error()}})
		return
	}

	post, err := pc.postService.UpdatePost(id, &input)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Delete handles deleting a post and everything it owns
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(w, err)
		return
	}

	if err := pc.postService.DeletePost(id); err != nil {
		sendError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil {
		return 0, &errs.ValidationError{Fields: map[string]string{name: "must be an integer"}}
	}
	return id, nil
}

func intParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	if v, err := strconv.Atoi(raw); err == nil && v > 0 {
		return v
	}
	return fallback
}
