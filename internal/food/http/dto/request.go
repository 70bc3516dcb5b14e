// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/munchly/munchly/internal/validation"
)

// AddFoodRequest contains the multipart form fields for adding a catalog item.
// The picture arrives as the "image" file part and is handled separately.
type AddFoodRequest struct {
	Name        string  `form:"name"`
	Description string  `form:"description"`
	Price       float64 `form:"price"`
	Category    string  `form:"category"`
}

// Validate checks if the add food request is valid.
func (r *AddFoodRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Description,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.Price,
			validation.Required,
			validation.Min(0.01),
		),
		validation.Field(&r.Category,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 100),
		),
	)
}

// RemoveFoodRequest contains the id of the catalog item to remove.
type RemoveFoodRequest struct {
	ID string `json:"id"`
}

// Validate checks if the remove food request is valid.
func (r *RemoveFoodRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ID,
			validation.Required,
			customValidation.ObjectIDHex,
		),
	)
}
