package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPanel_TotalPrice(t *testing.T) {
	tests := []struct {
		name        string
		city        string
		floor       int
		isInsulated bool
		expected    int
	}{
		{
			name:        "Budapest low floor insulated stacks additively",
			city:        "Budapest",
			floor:       1,
			isInsulated: true,
			// 1.30 + 0.05 + 0.05 applied once to the base price
			expected: 140000,
		},
		{
			name:     "Ground floor gets low-floor bonus",
			city:     "Szeged",
			floor:    0,
			expected: 105000,
		},
		{
			name:     "Second floor still gets low-floor bonus",
			city:     "Szeged",
			floor:    2,
			expected: 105000,
		},
		{
			name:     "Mid floor has no adjustment",
			city:     "Szeged",
			floor:    5,
			expected: 100000,
		},
		{
			name:     "Tenth floor on Budapest nets 1.25",
			city:     "Budapest",
			floor:    10,
			expected: 125000,
		},
		{
			name:        "Tenth floor penalty cancels insulation bonus",
			city:        "Szeged",
			floor:       10,
			isInsulated: true,
			expected:    100000,
		},
		{
			name:     "Eleventh floor has no penalty",
			city:     "Szeged",
			floor:    11,
			expected: 100000,
		},
		{
			name:     "Negative floor gets no bonus",
			city:     "Szeged",
			floor:    -1,
			expected: 100000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			panel := NewPanel(tt.city, 1000, 100, 3, Condominium, tt.floor, tt.isInsulated)
			assert.Equal(t, tt.expected, panel.TotalPrice())
		})
	}
}

func TestPanel_HasSameTotalPriceAs(t *testing.T) {
	panel := NewPanel("Szeged", 100, 10, 2, Condominium, 5, false)
	samePrice := NewRealEstate("Pécs", 200, 5, 3, FamilyHouse)
	otherPrice := NewRealEstate("Pécs", 300, 5, 3, FamilyHouse)

	assert.True(t, panel.HasSameTotalPriceAs(samePrice))
	assert.False(t, panel.HasSameTotalPriceAs(otherPrice))
}

func TestPanel_PricePerRoom(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		area     int
		rooms    float64
		expected int
	}{
		{
			name:     "Whole division",
			price:    1000,
			area:     100,
			rooms:    4,
			expected: 25000,
		},
		{
			name:     "Fractional result is truncated",
			price:    1000,
			area:     100,
			rooms:    3,
			expected: 33333,
		},
		{
			name:     "Zero rooms degenerates to zero",
			price:    1000,
			area:     100,
			rooms:    0,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			panel := NewPanel("Szeged", tt.price, tt.area, tt.rooms, Condominium, 5, false)
			assert.Equal(t, tt.expected, panel.PricePerRoom())
		})
	}
}

func TestPanel_Setters(t *testing.T) {
	panel := NewPanel("Szeged", 1000, 100, 3, Condominium, 5, false)

	panel.SetFloor(1)
	panel.SetInsulated(true)

	assert.Equal(t, 1, panel.Floor())
	assert.True(t, panel.IsInsulated())
	// 1.00 + 0.05 + 0.05 after the mutations
	assert.Equal(t, 110000, panel.TotalPrice())
}

func TestPanel_String(t *testing.T) {
	panel := NewPanel("Debrecen", 120000, 35, 2, Condominium, 0, true)
	assert.Equal(t,
		"Panel - City: Debrecen, Price/sqm: 120000.00, Area: 35 sqm, Rooms: 2.0, Genre: CONDOMINIUM, Floor: 0, Insulated: yes, Total Price: 5460000, Avg sqm/room: 17.50",
		panel.String())

	panel.SetInsulated(false)
	assert.Contains(t, panel.String(), "Insulated: no")
}
