package services

import (
	"fmt"
	"testing"
	"time"

	"inkwell/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchPosts(t *testing.T) {
	env := newTestEnv(t)

	seed := []struct {
		title  string
		status models.PostStatus
		tags   string
	}{
		{"Go generics deep dive", models.StatusPublished, "go, generics"},
		{"Badger internals", models.StatusPublished, "go, databases"},
		{"Draft thoughts", models.StatusDraft, "misc"},
		{"Archived golang notes", models.StatusArchived, "go"},
	}
	for _, s := range seed {
		_, err := env.posts.CreatePost(&models.PostInput{
			Title:   s.title,
			Content: "content",
			Status:  s.status,
			Tags:    s.tags,
		}, "author-1")
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	t.Run("no criteria returns everything with total count", func(t *testing.T) {
		page, err := env.queries.SearchPosts(SearchCriteria{}, SortDefault, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, 4, page.TotalCount)
		assert.Len(t, page.Items, 4)
	})

	t.Run("default sort is status ascending then updated descending", func(t *testing.T) {
		page, err := env.queries.SearchPosts(SearchCriteria{}, SortDefault, 1, 10)
		require.NoError(t, err)
		require.Len(t, page.Items, 4)
		assert.Equal(t, "Draft thoughts", page.Items[0].Title)
		// Both published posts: newer update first.
		assert.Equal(t, "Badger internals", page.Items[1].Title)
		assert.Equal(t, "Go generics deep dive", page.Items[2].Title)
		assert.Equal(t, "Archived golang notes", page.Items[3].Title)
	})

	t.Run("title match is a case-insensitive substring", func(t *testing.T) {
		page, err := env.queries.SearchPosts(SearchCriteria{TitleContains: "GOLANG"}, SortDefault, 1, 10)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Archived golang notes", page.Items[0].Title)
	})

	t.Run("status matches exactly", func(t *testing.T) {
		page, err := env.queries.SearchPosts(SearchCriteria{Status: models.StatusPublished}, SortDefault, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, 2, page.TotalCount)
	})

	t.Run("tag filter uses set membership", func(t *testing.T) {
		page, err := env.queries.SearchPosts(SearchCriteria{Tag: "go"}, SortDefault, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, 3, page.TotalCount)

		page, err = env.queries.SearchPosts(SearchCriteria{Tag: "gener"}, SortDefault, 1, 10)
		require.NoError(t, err)
		assert.Zero(t, page.TotalCount, "tag filter must not substring-match")
	})

	t.Run("combined criteria", func(t *testing.T) {
		page, err := env.queries.SearchPosts(SearchCriteria{
			TitleContains: "go",
			Status:        models.StatusPublished,
		}, SortDefault, 1, 10)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Go generics deep dive", page.Items[0].Title)
	})

	t.Run("no matches is a valid empty page", func(t *testing.T) {
		page, err := env.queries.SearchPosts(SearchCriteria{TitleContains: "nope"}, SortDefault, 1, 10)
		require.NoError(t, err)
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
		assert.Zero(t, page.TotalCount)
	})

	t.Run("title sort", func(t *testing.T) {
		page, err := env.queries.SearchPosts(SearchCriteria{}, SortTitleAsc, 1, 10)
		require.NoError(t, err)
		require.Len(t, page.Items, 4)
		assert.Equal(t, "Archived golang notes", page.Items[0].Title)
		assert.Equal(t, "Badger internals", page.Items[1].Title)
	})
}

func TestSearchPostsPagination(t *testing.T) {
	env := newTestEnv(t)

	for i := 1; i <= 5; i++ {
		_, err := env.posts.CreatePost(&models.PostInput{
			Title:   fmt.Sprintf("Post %02d", i),
			Content: "content",
			Status:  models.StatusPublished,
		}, "author-1")
		require.NoError(t, err)
	}

	t.Run("pages are 1-indexed", func(t *testing.T) {
		first, err := env.queries.SearchPosts(SearchCriteria{}, SortTitleAsc, 1, 3)
		require.NoError(t, err)
		assert.Len(t, first.Items, 3)
		assert.Equal(t, 5, first.TotalCount)
		assert.Equal(t, 1, first.Page)
		assert.Equal(t, 3, first.PageSize)
		assert.Equal(t, "Post 01", first.Items[0].Title)

		second, err := env.queries.SearchPosts(SearchCriteria{}, SortTitleAsc, 2, 3)
		require.NoError(t, err)
		assert.Len(t, second.Items, 2)
		assert.Equal(t, "Post 04", second.Items[0].Title)
	})

	t.Run("page past the end is empty, not an error", func(t *testing.T) {
		page, err := env.queries.SearchPosts(SearchCriteria{}, SortTitleAsc, 9, 3)
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, 5, page.TotalCount)
	})

	t.Run("defaults apply to bad page arguments", func(t *testing.T) {
		page, err := env.queries.SearchPosts(SearchCriteria{}, SortTitleAsc, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 10, page.PageSize)
		assert.Len(t, page.Items, 5)
	})
}

func TestListComments(t *testing.T) {
	env := newTestEnv(t)

	post, err := env.posts.CreatePost(&models.PostInput{
		Title:   "Post",
		Content: "content",
		Status:  models.StatusPublished,
	}, "author-1")
	require.NoError(t, err)

	for i := 1; i <= 4; i++ {
		_, err := env.posts.AddComment(post.ID, &models.CommentInput{
			Author:  "Ana",
			Email:   "ana@example.com",
			Content: fmt.Sprintf("comment %d", i),
		}, false)
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}
	// One pending comment that must stay invisible.
	_, err = env.posts.AddComment(post.ID, &models.CommentInput{
		Author:  "Ben",
		Email:   "ben@example.com",
		Content: "hidden",
	}, true)
	require.NoError(t, err)

	page, err := env.queries.ListComments(post.ID, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, page.TotalCount)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "comment 4", page.Items[0].Content)
	assert.Equal(t, "comment 2", page.Items[2].Content)

	second, err := env.queries.ListComments(post.ID, 2, 3)
	require.NoError(t, err)
	require.Len(t, second.Items, 1)
	assert.Equal(t, "comment 1", second.Items[0].Content)
}
