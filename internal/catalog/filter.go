package catalog

import (
	"slices"
	"sort"
	"strings"

	"github.com/Tyyuu55/Crave-Now/internal/domain"
)

type QuickFilter string

const (
	QuickNone   QuickFilter = ""
	QuickTop    QuickFilter = "top"
	QuickFast   QuickFilter = "fast"
	QuickOffers QuickFilter = "offers"
)

const fastDeliveryMinutes = 30

type Query struct {
	Search string
	Tag    string
	Quick  QuickFilter
}

// Filter narrows list the way the home page does. list is not modified.
func Filter(list []domain.Restaurant, q Query) []domain.Restaurant {
	out := make([]domain.Restaurant, 0, len(list))
	search := strings.ToLower(strings.TrimSpace(q.Search))

	for _, r := range list {
		if search != "" && !matchesSearch(r, search) {
			continue
		}
		if q.Tag != "" && !slices.Contains(r.Tags, q.Tag) {
			continue
		}
		switch q.Quick {
		case QuickFast:
			if r.DeliveryTime > fastDeliveryMinutes {
				continue
			}
		case QuickOffers:
			if r.Offer == "" {
				continue
			}
		}
		out = append(out, r)
	}

	if q.Quick == QuickTop {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	}
	return out
}

func matchesSearch(r domain.Restaurant, search string) bool {
	if strings.Contains(strings.ToLower(r.Name), search) {
		return true
	}
	for _, c := range r.Cuisines {
		if strings.Contains(strings.ToLower(c), search) {
			return true
		}
	}
	return false
}

// MenuCategory is one section of a restaurant menu.
type MenuCategory struct {
	Name  string            `json:"name"`
	Items []domain.MenuItem `json:"items"`
}

const defaultCategory = "Featured"

// GroupByCategory keeps categories in order of first appearance.
func GroupByCategory(items []domain.MenuItem) []MenuCategory {
	var groups []MenuCategory
	index := make(map[string]int)

	for _, item := range items {
		key := item.Category
		if key == "" {
			key = defaultCategory
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, MenuCategory{Name: key})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}
