// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/munchly/munchly/internal/validation"
)

// CartItemRequest names the catalog item a cart mutation applies to.
type CartItemRequest struct {
	ItemID string `json:"itemId"`
}

// Validate checks if the cart item request is valid.
func (r *CartItemRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ItemID,
			validation.Required,
			customValidation.ObjectIDHex,
		),
	)
}
