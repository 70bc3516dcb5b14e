// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	foodDomain "github.com/munchly/munchly/internal/food/domain"
)

// FoodResponse represents a catalog item in API responses.
type FoodResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

// MapFoodToResponse converts a domain food to an API response.
func MapFoodToResponse(food *foodDomain.Food) FoodResponse {
	return FoodResponse{
		ID:          food.ID.Hex(),
		Name:        food.Name,
		Description: food.Description,
		Price:       food.Price,
		Category:    food.Category,
		Image:       food.Image,
	}
}

// MapFoodsToResponse converts a slice of domain foods to API responses.
func MapFoodsToResponse(foods []*foodDomain.Food) []FoodResponse {
	foodResponses := make([]FoodResponse, 0, len(foods))
	for _, food := range foods {
		foodResponses = append(foodResponses, MapFoodToResponse(food))
	}
	return foodResponses
}
