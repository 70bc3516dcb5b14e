// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/munchly/munchly/internal/validation"
)

// PlaceOrderRequest contains the delivery address for a new order.
type PlaceOrderRequest struct {
	Address string `json:"address"`
}

// Validate checks if the place order request is valid.
func (r *PlaceOrderRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Address,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 500),
		),
	)
}

// VerifyOrderRequest carries the checkout redirect outcome.
// Success arrives as the string the frontend received in its query.
type VerifyOrderRequest struct {
	OrderID string `json:"orderId"`
	Success string `json:"success"`
}

// Validate checks if the verify order request is valid.
func (r *VerifyOrderRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.OrderID,
			validation.Required,
			customValidation.ObjectIDHex,
		),
		validation.Field(&r.Success,
			validation.Required,
			validation.In("true", "false"),
		),
	)
}

// UpdateOrderStatusRequest sets the fulfillment stage of an order.
type UpdateOrderStatusRequest struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// Validate checks if the update status request is valid.
func (r *UpdateOrderStatusRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.OrderID,
			validation.Required,
			customValidation.ObjectIDHex,
		),
		validation.Field(&r.Status,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}
