// Package dto provides data transfer objects for blog HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/munchly/munchly/internal/validation"
)

// CreatePostRequest contains the parameters for publishing a post.
type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Validate checks if the create request is valid.
func (r *CreatePostRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Content,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}

// UpdatePostRequest contains the parameters for editing a post.
type UpdatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Validate checks if the update request is valid.
func (r *UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Content,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}
