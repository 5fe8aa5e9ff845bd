package report

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"ingatlan/agent/internal/models"
	"ingatlan/agent/internal/registry"
)

// Aggregator computes statistics over a snapshot of the registry taken at
// construction time. Later registry mutations do not show up in an
// existing aggregator.
type Aggregator struct {
	properties []models.Property
	focusCity  string
	logger     *logrus.Logger
}

// NewAggregator snapshots the registry. focusCity selects the city used
// for the most-expensive-property statistic in the rendered report.
func NewAggregator(reg *registry.Registry, focusCity string, logger *logrus.Logger) *Aggregator {
	return &Aggregator{
		properties: reg.Ascending(),
		focusCity:  focusCity,
		logger:     logger,
	}
}

// AveragePricePerSqm returns the mean price per square meter, or 0 for an
// empty registry.
func (a *Aggregator) AveragePricePerSqm() float64 {
	if len(a.properties) == 0 {
		return 0
	}
	var sum float64
	for _, p := range a.properties {
		sum += p.PricePerSqm()
	}
	return sum / float64(len(a.properties))
}

// CheapestTotalPrice returns the lowest total price, or 0 for an empty
// registry.
func (a *Aggregator) CheapestTotalPrice() int {
	if len(a.properties) == 0 {
		return 0
	}
	// The snapshot is already in ascending total-price order.
	return a.properties[0].TotalPrice()
}

// MostExpensiveInCity returns the priciest property in the given city by
// exact name match, with ok=false when the city has no properties.
func (a *Aggregator) MostExpensiveInCity(city string) (models.Property, bool) {
	var found models.Property
	for _, p := range a.properties {
		if p.City() == city {
			found = p
		}
	}
	return found, found != nil
}

// SumOfTotalPrices totals every property's valuation. Accumulated as
// int64 so a realistic dataset cannot overflow.
func (a *Aggregator) SumOfTotalPrices() int64 {
	var sum int64
	for _, p := range a.properties {
		sum += int64(p.TotalPrice())
	}
	return sum
}

// AverageTotalPrice returns the mean total price, or 0 for an empty
// registry. This is the threshold for CondominiumsAtOrBelowAverage.
func (a *Aggregator) AverageTotalPrice() float64 {
	if len(a.properties) == 0 {
		return 0
	}
	return float64(a.SumOfTotalPrices()) / float64(len(a.properties))
}

// CondominiumsAtOrBelowAverage lists every condominium whose total price
// does not exceed the average, cheapest first.
func (a *Aggregator) CondominiumsAtOrBelowAverage() []models.Property {
	average := a.AverageTotalPrice()
	var out []models.Property
	for _, p := range a.properties {
		if p.Genre() == models.Condominium && float64(p.TotalPrice()) <= average {
			out = append(out, p)
		}
	}
	return out
}

// Render produces the report as ordered text lines: the statistics block
// followed by the below-average condominium list.
func (a *Aggregator) Render() []string {
	lines := []string{
		fmt.Sprintf("Average square meter price: %.2f", a.AveragePricePerSqm()),
		fmt.Sprintf("Cheapest property price: %d", a.CheapestTotalPrice()),
	}

	if priciest, ok := a.MostExpensiveInCity(a.focusCity); ok {
		lines = append(lines, fmt.Sprintf("Average sqm per room of most expensive %s property: %.2f",
			a.focusCity, priciest.AverageSqmPerRoom()))
	} else {
		a.logger.WithField("city", a.focusCity).Warn("No properties in focus city, skipping statistic")
	}

	lines = append(lines,
		fmt.Sprintf("Total price of all properties: %d", a.SumOfTotalPrices()),
		"",
		"Condominiums with price not exceeding average:",
	)

	for _, p := range a.CondominiumsAtOrBelowAverage() {
		lines = append(lines, p.String())
	}
	return lines
}

// Body joins report lines into the exact byte sequence that both the
// display and the report file must receive.
func Body(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}
