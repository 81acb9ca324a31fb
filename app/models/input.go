package models

import (
	"fmt"

	"inkwell/app/errs"
	"inkwell/app/tags"
)

// PostInput carries the client-supplied fields of a post mutation.
// Identifier, timestamps and author are always assigned server-side.
type PostInput struct {
	Title   string     `json:"title" validate:"required,max=128"`
	Content string     `json:"content" validate:"required"`
	Status  PostStatus `json:"status" validate:"required,oneof=1 2 3"`
	Tags    string     `json:"tags"`
}

// Validate checks every field constraint and reports all violations at once.
func (in *PostInput) Validate() error {
	fields := structFields(validate.Struct(in))
	for _, tag := range tags.Parse(in.Tags) {
		if !tags.Valid(tag) {
			fields["tags"] = fmt.Sprintf("tag %q may only contain word characters and spaces", tag)
			break
		}
	}
	if len(fields) > 0 {
		return &errs.ValidationError{Fields: fields}
	}
	return nil
}

// CommentInput carries the client-supplied fields of a new comment.
type CommentInput struct {
	Author  string `json:"author" validate:"required,max=128"`
	Email   string `json:"email" validate:"required,email"`
	Content string `json:"content" validate:"required"`
}

// Validate checks every field constraint and reports all violations at once.
func (in *CommentInput) Validate() error {
	fields := structFields(validate.Struct(in))
	if len(fields) > 0 {
		return &errs.ValidationError{Fields: fields}
	}
	return nil
}
