package domain

// CartLine is one distinct menu item in the cart. Display fields are copied
// from the menu item the first time it is added; Quantity is always >= 1.
type CartLine struct {
	ItemID         ID      `json:"id"`
	Name           string  `json:"name"`
	ImageURL       string  `json:"image,omitempty"`
	Description    string  `json:"description,omitempty"`
	UnitPrice      float64 `json:"price"`
	Quantity       int     `json:"quantity"`
	RestaurantID   ID      `json:"restaurantId,omitempty"`
	RestaurantName string  `json:"restaurantName,omitempty"`
}

// NewCartLine builds a quantity-1 line for item with the given provenance.
func NewCartLine(item MenuItem, restaurant RestaurantRef) CartLine {
	return CartLine{
		ItemID:         item.ID,
		Name:           item.Name,
		ImageURL:       item.Image,
		Description:    item.Description,
		UnitPrice:      item.Price,
		Quantity:       1,
		RestaurantID:   restaurant.ID,
		RestaurantName: restaurant.Name,
	}
}

type CartSnapshot struct {
	TotalItemCount int     `json:"totalItemCount"`
	Subtotal       float64 `json:"subtotal"`
}
