package request_models

type ToggleGroceryRequest struct {
	GroceryID string `json:"grocery_id"`
}
