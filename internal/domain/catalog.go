package domain

type Restaurant struct {
	ID           ID       `json:"id"`
	Name         string   `json:"name"`
	Cuisines     []string `json:"cuisines"`
	Tags         []string `json:"tags"`
	Rating       float64  `json:"rating"`
	RatingCount  int      `json:"ratingCount"`
	DeliveryTime int      `json:"deliveryTime"`
	AveragePrice float64  `json:"averagePrice"`
	Location     string   `json:"location"`
	Offer        string   `json:"offer,omitempty"`
	Image        string   `json:"image,omitempty"`
}

// Ref is the restaurant context recorded on cart lines.
func (r Restaurant) Ref() RestaurantRef {
	return RestaurantRef{ID: r.ID, Name: r.Name}
}

// RestaurantRef is the provenance attached to a cart line at first add.
type RestaurantRef struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

type MenuItem struct {
	ID           ID      `json:"id"`
	RestaurantID ID      `json:"restaurantId"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	Image        string  `json:"image,omitempty"`
	Category     string  `json:"category,omitempty"`
}
