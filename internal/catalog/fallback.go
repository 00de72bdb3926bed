package catalog

import "github.com/Tyyuu55/Crave-Now/internal/domain"

// demoRestaurants are shown when the backend is unreachable or empty.
var demoRestaurants = []domain.Restaurant{
	{
		ID:           "f1",
		Name:         "Gully Grill Co. (offline demo)",
		Cuisines:     []string{"North Indian", "Tandoor", "Street Rolls"},
		Tags:         []string{"rolls", "bowls"},
		Rating:       4.6,
		RatingCount:  2300,
		DeliveryTime: 28,
		AveragePrice: 450,
		Location:     "Bandra West",
		Offer:        "20% OFF on smoky grills",
		Image:        "https://images.pexels.com/photos/3756523/pexels-photo-3756523.jpeg?auto=compress&cs=tinysrgb&w=800",
	},
	{
		ID:           "f2",
		Name:         "Bombay Bao & Bowls (offline demo)",
		Cuisines:     []string{"Asian", "Bao", "Rice Bowls"},
		Tags:         []string{"bowls", "burgers"},
		Rating:       4.5,
		RatingCount:  1800,
		DeliveryTime: 24,
		AveragePrice: 520,
		Location:     "Khar",
		Offer:        "Flat ₹120 OFF on combos",
		Image:        "https://images.pexels.com/photos/327158/pexels-photo-327158.jpeg?auto=compress&cs=tinysrgb&w=800",
	},
	{
		ID:           "f3",
		Name:         "Midnight Momo Cart (offline demo)",
		Cuisines:     []string{"Tibetan", "Fast Food"},
		Tags:         []string{"bowls", "quick"},
		Rating:       4.3,
		RatingCount:  950,
		DeliveryTime: 22,
		AveragePrice: 350,
		Location:     "Andheri",
		Offer:        "Buy 1 Get 1 Momos",
		Image:        "https://images.pexels.com/photos/1437267/pexels-photo-1437267.jpeg?auto=compress&cs=tinysrgb&w=800",
	},
}

func DemoRestaurants() []domain.Restaurant {
	out := make([]domain.Restaurant, len(demoRestaurants))
	copy(out, demoRestaurants)
	return out
}
