package registry

import (
	"sort"

	"github.com/sirupsen/logrus"

	"ingatlan/agent/internal/models"
)

// Registry stores properties sorted by total price, ascending. Its
// membership key is the derived total price: inserting a property whose
// total price matches an already-stored one drops the newcomer, so two
// economically distinct listings that happen to value identically collide
// and only the first survives. Maintainers eyeing that behavior: it is
// intentional here, and CollidesWith is the single place to change it.
//
// The registry has no internal locking. The whole pipeline runs on one
// goroutine; anyone exposing it to concurrent mutators must synchronize
// externally.
type Registry struct {
	properties []models.Property
	logger     *logrus.Logger
}

// NewRegistry creates an empty registry that reports dropped insertions to
// the logger.
func NewRegistry(logger *logrus.Logger) *Registry {
	return &Registry{logger: logger}
}

// CollidesWith reports whether two properties count as the same registry
// entry. Membership is keyed on total price alone.
func CollidesWith(a, b models.Property) bool {
	return a.TotalPrice() == b.TotalPrice()
}

// Insert adds a property in total-price order. It returns false when a
// stored property already has the same total price; the dropped insertion
// is logged, not an error.
func (r *Registry) Insert(property models.Property) bool {
	price := property.TotalPrice()
	idx := sort.Search(len(r.properties), func(i int) bool {
		return r.properties[i].TotalPrice() >= price
	})

	if idx < len(r.properties) && CollidesWith(r.properties[idx], property) {
		r.logger.WithField("total_price", price).Debug("Dropping property with colliding total price")
		return false
	}

	r.properties = append(r.properties, nil)
	copy(r.properties[idx+1:], r.properties[idx:])
	r.properties[idx] = property
	return true
}

// Size returns the number of stored properties.
func (r *Registry) Size() int {
	return len(r.properties)
}

// Ascending returns the stored properties in ascending total-price order.
// The slice is a copy and safe to re-iterate or filter further.
func (r *Registry) Ascending() []models.Property {
	out := make([]models.Property, len(r.properties))
	copy(out, r.properties)
	return out
}

// Filter returns the stored properties matching the predicate, preserving
// ascending total-price order.
func (r *Registry) Filter(predicate func(models.Property) bool) []models.Property {
	var out []models.Property
	for _, property := range r.properties {
		if predicate(property) {
			out = append(out, property)
		}
	}
	return out
}
