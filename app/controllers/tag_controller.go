package controllers

import (
	"net/http"

	"inkwell/app/services"

	"github.com/gorilla/mux"
)

// TagController exposes the read-only tag frequency index for discovery
// rendering.
type TagController struct {
	tagService *services.TagService
}

// NewTagController creates a new TagController
func NewTagController(tagService *services.TagService) *TagController {
	return &TagController{tagService: tagService}
}

// Index returns the most frequent tags, count descending.
func (tc *TagController) Index(w http.ResponseWriter, r *http.Request) {
	limit := intParam(r.URL.Query().Get("limit"), 20)
	entries, err := tc.tagService.TopTags(limit)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]interface{}{"tags": entries})
}

// Show returns a single tag's frequency. Unknown tags report zero.
func (tc *TagController) Show(w http.ResponseWriter, r *http.Request) {
	tag := mux.Vars(r)["tag"]
	count, err := tc.tagService.FrequencyOf(tag)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]interface{}{"tag": tag, "count": count})
}
