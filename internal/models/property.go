package models

import (
	"errors"
	"fmt"
)

// ErrInvalidDiscount is returned when a discount percentage falls outside
// the [0, 100] range. The property is left untouched.
var ErrInvalidDiscount = errors.New("discount percentage must be between 0 and 100")

// Property is the capability set shared by all listed property kinds:
// priced, comparable by total price, and renderable for reports.
type Property interface {
	City() string
	Genre() Genre
	PricePerSqm() float64
	AreaSqm() int
	NumberOfRooms() float64

	// MakeDiscount lowers the price per square meter by the given
	// percentage. Out-of-range percentages are rejected with
	// ErrInvalidDiscount and leave the price unchanged.
	MakeDiscount(percentage int) error

	// TotalPrice derives the valuation from the current fields on every
	// call; it is never cached, so a discount is reflected immediately.
	TotalPrice() int

	// AverageSqmPerRoom returns area divided by room count, or 0 for a
	// property with zero rooms.
	AverageSqmPerRoom() float64

	fmt.Stringer
}

// RealEstate is a plain property listing.
type RealEstate struct {
	city          string
	pricePerSqm   float64
	areaSqm       int
	numberOfRooms float64
	genre         Genre
}

// NewRealEstate creates a property listing.
func NewRealEstate(city string, pricePerSqm float64, areaSqm int, numberOfRooms float64, genre Genre) *RealEstate {
	return &RealEstate{
		city:          city,
		pricePerSqm:   pricePerSqm,
		areaSqm:       areaSqm,
		numberOfRooms: numberOfRooms,
		genre:         genre,
	}
}

func (r *RealEstate) City() string           { return r.city }
func (r *RealEstate) Genre() Genre           { return r.genre }
func (r *RealEstate) PricePerSqm() float64   { return r.pricePerSqm }
func (r *RealEstate) AreaSqm() int           { return r.areaSqm }
func (r *RealEstate) NumberOfRooms() float64 { return r.numberOfRooms }

func (r *RealEstate) SetCity(city string)            { r.city = city }
func (r *RealEstate) SetPricePerSqm(price float64)   { r.pricePerSqm = price }
func (r *RealEstate) SetAreaSqm(area int)            { r.areaSqm = area }
func (r *RealEstate) SetNumberOfRooms(rooms float64) { r.numberOfRooms = rooms }
func (r *RealEstate) SetGenre(genre Genre)           { r.genre = genre }

// MakeDiscount lowers the price per square meter by percentage percent.
func (r *RealEstate) MakeDiscount(percentage int) error {
	if percentage < 0 || percentage > 100 {
		return fmt.Errorf("%w: got %d", ErrInvalidDiscount, percentage)
	}
	r.pricePerSqm = r.pricePerSqm * float64(100-percentage) / 100.0
	return nil
}

// TotalPrice values the property at pricePerSqm * areaSqm adjusted by the
// city multiplier, truncated to an integer.
func (r *RealEstate) TotalPrice() int {
	basePrice := r.pricePerSqm * float64(r.areaSqm)
	return int(basePrice * CityMultiplierFor(r.city))
}

// AverageSqmPerRoom returns 0 for a property with zero rooms rather than
// failing on the division.
func (r *RealEstate) AverageSqmPerRoom() float64 {
	if r.numberOfRooms == 0 {
		return 0
	}
	return float64(r.areaSqm) / r.numberOfRooms
}

func (r *RealEstate) String() string {
	return fmt.Sprintf("City: %s, Price/sqm: %.2f, Area: %d sqm, Rooms: %.1f, Genre: %s, Total Price: %d, Avg sqm/room: %.2f",
		r.city, r.pricePerSqm, r.areaSqm, r.numberOfRooms, r.genre, r.TotalPrice(), r.AverageSqmPerRoom())
}
