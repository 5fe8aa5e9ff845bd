package models

// CityMultiplier represents the location adjustment applied to a
// property's base price.
type CityMultiplier struct {
	Name       string
	Multiplier float64
}

// SupportedCityMultipliers lists the cities with a non-default location
// adjustment. Any city not listed here is priced at face value.
var SupportedCityMultipliers = []CityMultiplier{
	{Name: "Budapest", Multiplier: 1.30},
	{Name: "Debrecen", Multiplier: 1.20},
	{Name: "Nyíregyháza", Multiplier: 1.15},
}

// Panel-specific adjustments. These are added to the running multiplier,
// not compounded on top of it.
const (
	lowFloorBonus    = 0.05 // floors 0 through 2
	topFloorPenalty  = 0.05 // floor 10 exactly
	insulationBonus  = 0.05
	defaultCityPrice = 1.00
)

// CityMultiplierFor returns the multiplier for a city by exact name match,
// or the neutral 1.00 for anything unlisted.
func CityMultiplierFor(city string) float64 {
	for _, c := range SupportedCityMultipliers {
		if c.Name == city {
			return c.Multiplier
		}
	}
	return defaultCityPrice
}
