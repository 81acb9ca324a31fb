package models

import (
	"time"

	"inkwell/app/tags"
)

// PostStatus is the lifecycle state of a post. Any status may be set to any
// other via update; no transition graph is enforced.
type PostStatus int

const (
	StatusDraft     PostStatus = 1
	StatusPublished PostStatus = 2
	StatusArchived  PostStatus = 3
)

// CommentStatus is the moderation state of a comment.
type CommentStatus int

const (
	CommentPending  CommentStatus = 1
	CommentApproved CommentStatus = 2
	// CommentRejected is reserved for a future moderation UI; no operation
	// produces it.
	CommentRejected CommentStatus = 3
)

// Post is a published piece of content carrying a normalized tag string.
type Post struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Tags      string     `json:"tags"`
	Status    PostStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	AuthorID  string     `json:"author_id"`
}

// TagSet parses the stored tag string into its tag set.
func (p *Post) TagSet() []string {
	return tags.Parse(p.Tags)
}

// Comment belongs to a post and is visible once approved.
type Comment struct {
	ID        int           `json:"id"`
	PostID    int           `json:"post_id"`
	Author    string        `json:"author"`
	Email     string        `json:"email"`
	Content   string        `json:"content"`
	Status    CommentStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

// TagFrequency is one entry of the derived tag index: the number of posts
// whose current tag set contains the tag. Counts are never negative; an
// entry is removed once its count reaches zero.
type TagFrequency struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}
