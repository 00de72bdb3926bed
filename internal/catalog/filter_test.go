package catalog

import (
	"testing"

	"github.com/Tyyuu55/Crave-Now/internal/domain"
	"github.com/stretchr/testify/assert"
)

func ids(list []domain.Restaurant) []domain.ID {
	out := make([]domain.ID, 0, len(list))
	for _, r := range list {
		out = append(out, r.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	list := DemoRestaurants()
	list = append(list, domain.Restaurant{ID: "slow", Name: "Slow Biryani House", Cuisines: []string{"Hyderabadi"}, Rating: 4.9, DeliveryTime: 55})

	tests := []struct {
		name string
		q    Query
		want []domain.ID
	}{
		{"no filters", Query{}, []domain.ID{"f1", "f2", "f3", "slow"}},
		{"search by name", Query{Search: "momo"}, []domain.ID{"f3"}},
		{"search by cuisine", Query{Search: "RICE bowls"}, []domain.ID{"f2"}},
		{"tag", Query{Tag: "burgers"}, []domain.ID{"f2"}},
		{"top rated", Query{Quick: QuickTop}, []domain.ID{"slow", "f1", "f2", "f3"}},
		{"fast", Query{Quick: QuickFast}, []domain.ID{"f1", "f2", "f3"}},
		{"offers", Query{Quick: QuickOffers}, []domain.ID{"f1", "f2", "f3"}},
		{"combined", Query{Tag: "bowls", Quick: QuickTop}, []domain.ID{"f1", "f2", "f3"}},
		{"nothing", Query{Search: "sushi"}, []domain.ID{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(list, tt.q)))
		})
	}
}

func TestFilter_DoesNotReorderInput(t *testing.T) {
	list := DemoRestaurants()
	list[0].Rating = 1

	Filter(list, Query{Quick: QuickTop})

	assert.Equal(t, domain.ID("f1"), list[0].ID)
}

func TestGroupByCategory_Empty(t *testing.T) {
	assert.Empty(t, GroupByCategory(nil))
}
