package models

import "fmt"

// Panel is a prefab-block property. It prices like a RealEstate but layers
// floor and insulation adjustments into the multiplier.
type Panel struct {
	RealEstate
	floor       int
	isInsulated bool
}

// NewPanel creates a panel property listing.
func NewPanel(city string, pricePerSqm float64, areaSqm int, numberOfRooms float64, genre Genre, floor int, isInsulated bool) *Panel {
	return &Panel{
		RealEstate: RealEstate{
			city:          city,
			pricePerSqm:   pricePerSqm,
			areaSqm:       areaSqm,
			numberOfRooms: numberOfRooms,
			genre:         genre,
		},
		floor:       floor,
		isInsulated: isInsulated,
	}
}

func (p *Panel) Floor() int        { return p.floor }
func (p *Panel) IsInsulated() bool { return p.isInsulated }

func (p *Panel) SetFloor(floor int)            { p.floor = floor }
func (p *Panel) SetInsulated(isInsulated bool) { p.isInsulated = isInsulated }

// TotalPrice builds one running multiplier (city, then floor, then
// insulation, all additive) and applies it once to the base price.
func (p *Panel) TotalPrice() int {
	basePrice := p.pricePerSqm * float64(p.areaSqm)
	multiplier := CityMultiplierFor(p.city)

	if p.floor >= 0 && p.floor <= 2 {
		multiplier += lowFloorBonus
	} else if p.floor == 10 {
		multiplier -= topFloorPenalty
	}

	if p.isInsulated {
		multiplier += insulationBonus
	}

	return int(basePrice * multiplier)
}

// HasSameTotalPriceAs reports whether the other property values to the same
// total price. Pure comparison, no side effects.
func (p *Panel) HasSameTotalPriceAs(other Property) bool {
	return p.TotalPrice() == other.TotalPrice()
}

// PricePerRoom is the undiscounted base price divided by the room count,
// truncated. A panel with zero rooms yields 0.
func (p *Panel) PricePerRoom() int {
	if p.numberOfRooms == 0 {
		return 0
	}
	return int(p.pricePerSqm * float64(p.areaSqm) / p.numberOfRooms)
}

func (p *Panel) String() string {
	insulated := "no"
	if p.isInsulated {
		insulated = "yes"
	}
	return fmt.Sprintf("Panel - City: %s, Price/sqm: %.2f, Area: %d sqm, Rooms: %.1f, Genre: %s, Floor: %d, Insulated: %s, Total Price: %d, Avg sqm/room: %.2f",
		p.city, p.pricePerSqm, p.areaSqm, p.numberOfRooms, p.genre, p.floor, insulated, p.TotalPrice(), p.AverageSqmPerRoom())
}
