// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	orderDomain "github.com/munchly/munchly/internal/order/domain"
)

// OrderItemResponse represents one ordered line in API responses.
type OrderItemResponse struct {
	ItemID   string  `json:"itemId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// OrderResponse represents an order in API responses.
type OrderResponse struct {
	ID        string              `json:"id"`
	UserID    string              `json:"userId"`
	Items     []OrderItemResponse `json:"items"`
	Amount    float64             `json:"amount"`
	Address   string              `json:"address"`
	Status    string              `json:"status"`
	Payment   bool                `json:"payment"`
	CreatedAt time.Time           `json:"created_at"`
}

// MapOrderToResponse converts a domain order to an API response.
func MapOrderToResponse(order *orderDomain.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ItemID:   item.ItemID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	return OrderResponse{
		ID:        order.ID.Hex(),
		UserID:    order.UserID,
		Items:     items,
		Amount:    order.Amount,
		Address:   order.Address,
		Status:    string(order.Status),
		Payment:   order.Payment,
		CreatedAt: order.CreatedAt,
	}
}

// MapOrdersToResponse converts a slice of domain orders to API responses.
func MapOrdersToResponse(orders []*orderDomain.Order) []OrderResponse {
	orderResponses := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		orderResponses = append(orderResponses, MapOrderToResponse(order))
	}
	return orderResponses
}

// PlaceOrderResponse carries the checkout session URL for the placed order.
type PlaceOrderResponse struct {
	Order      OrderResponse `json:"order"`
	SessionURL string        `json:"session_url"`
}
