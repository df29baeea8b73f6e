package tract

import (
	"github.com/paulmach/orb"

	"foodmap/internal/synth"
)

// PointEntity is a store or service marker on the overlay layer. Entities
// are re-created wholesale on every refresh; their identity is the business
// key only.
type PointEntity struct {
	ResourceID string
	Name       string
	Address    string
	Hours      string
	Point      orb.Point
	TractID    string
	SNAP       bool
	Free       bool
	Pricing    synth.Pricing
}

// NewPointEntity classifies the raw record and resolves its price metadata.
func NewPointEntity(id, name, rawType, address string, pt orb.Point) PointEntity {
	return PointEntity{
		ResourceID: id,
		Name:       name,
		Address:    address,
		Point:      pt,
		Pricing:    synth.Enrich(rawType, name),
	}
}

// Tags lists the entity's badge strings for tooltip display.
func (e PointEntity) Tags() []string {
	var tags []string
	if e.SNAP {
		tags = append(tags, "SNAP")
	}
	if e.Free {
		tags = append(tags, "Free")
	}
	return tags
}

// TransitStop is a transit marker on the overlay layer; it drives the
// smaller transit tooltip variant.
type TransitStop struct {
	Name  string
	Lines []string
	Point orb.Point
}
