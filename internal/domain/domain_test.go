package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalNumberAndString(t *testing.T) {
	var item MenuItem
	require.NoError(t, json.Unmarshal([]byte(`{"id": 12, "restaurantId": "r-1", "name": "Bao", "price": 180}`), &item))
	assert.Equal(t, ID("12"), item.ID)
	assert.Equal(t, ID("r-1"), item.RestaurantID)

	out, err := json.Marshal(item.ID)
	require.NoError(t, err)
	assert.Equal(t, `"12"`, string(out))
}

func TestID_UnmarshalInvalid(t *testing.T) {
	var id ID
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &id))
}

func TestNewCartLine_CopiesProvenance(t *testing.T) {
	line := NewCartLine(
		MenuItem{ID: "A", Name: "Paneer Roll", Price: 100, Image: "roll.jpg"},
		RestaurantRef{ID: "R1", Name: "Gully Grill"},
	)

	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, ID("A"), line.ItemID)
	assert.Equal(t, 100.0, line.UnitPrice)
	assert.Equal(t, ID("R1"), line.RestaurantID)
	assert.Equal(t, "Gully Grill", line.RestaurantName)
}

func TestCheckoutStatus_Transitions(t *testing.T) {
	assert.True(t, CheckoutStatusIdle.CanTransitionTo(CheckoutStatusBuilding))
	assert.True(t, CheckoutStatusBuilding.CanTransitionTo(CheckoutStatusFailed))
	assert.True(t, CheckoutStatusSubmitting.CanTransitionTo(CheckoutStatusSucceeded))
	assert.False(t, CheckoutStatusIdle.CanTransitionTo(CheckoutStatusSubmitting))
	assert.False(t, CheckoutStatusSucceeded.CanTransitionTo(CheckoutStatusBuilding))

	assert.True(t, CheckoutStatusFailed.IsTerminal())
	assert.False(t, CheckoutStatusSubmitting.IsTerminal())
}

func TestOrder_DecodesEchoedRequest(t *testing.T) {
	var order Order
	require.NoError(t, json.Unmarshal([]byte(`{"id": 7, "total": 659, "restaurantName": "Gully Grill"}`), &order))
	assert.Equal(t, ID("7"), order.ID)
	assert.Equal(t, 659.0, order.Total)
	assert.Equal(t, "Gully Grill", order.RestaurantName)
}
