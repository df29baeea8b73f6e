// Package tract holds the polygon feature index and the point entity records
// rendered on top of it. The index is the single shared geometry resource:
// written only at data-load time, read by the surfaces every frame.
package tract

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"foodmap/internal/geom"
	"foodmap/internal/synth"
)

// Attributes is the flat attribute record of one tract polygon. All rate
// metrics are clamped to [0,1] at ingestion.
type Attributes struct {
	TractID       string
	Name          string
	Risk          float64
	Equity        float64
	Coverage      float64
	Insecurity    float64
	Poverty       float64
	SnapRate      float64
	Vulnerability float64
	Need          float64
	Supply        float64
	Population    int
	Income        float64 // median household income, 0 = unknown
	Desert        bool    // USDA low-income/low-access classification
	Synthesized   bool    // attributes derived from the key, not curated
}

// Feature pairs a stable renderer id with geometry and attributes. The id is
// what the feature-state store keys on; it never changes for a business key,
// and geometry never changes after creation.
type Feature struct {
	ID       int
	Attrs    Attributes
	Geometry orb.Geometry
	bound    orb.Bound
}

// Index is the polygon feature collection with id allocation and spatial
// query.
type Index struct {
	feats  []*Feature
	byID   map[int]*Feature
	ids    map[string]int // business key -> allocated id, never shrinks
	nextID int
}

func NewIndex() *Index {
	return &Index{
		byID:   make(map[int]*Feature),
		ids:    make(map[string]int),
		nextID: 1,
	}
}

// Apply supersedes the feature set in place. Known business keys keep their
// id and geometry and take fresh attributes; unknown keys allocate the next
// id; keys absent from the incoming collection are dropped. The returned
// slice holds the ids that no longer exist, so the caller can clear any
// interaction flags pointing at them.
func (ix *Index) Apply(fc *geojson.FeatureCollection) (removed []int) {
	if fc == nil {
		return nil
	}
	old := ix.byID
	ix.feats = ix.feats[:0]
	ix.byID = make(map[int]*Feature, len(fc.Features))
	for i, gf := range fc.Features {
		if gf == nil || gf.Geometry == nil {
			continue
		}
		key := gf.Properties.MustString("tract_id", "")
		if key == "" {
			if s, ok := gf.ID.(string); ok {
				key = s
			} else {
				key = fmt.Sprintf("feature-%d", i)
			}
		}
		id, known := ix.ids[key]
		if !known {
			id = ix.nextID
			ix.nextID++
			ix.ids[key] = id
		}
		f, existed := old[id]
		if !existed {
			f = &Feature{ID: id, Geometry: gf.Geometry, bound: gf.Geometry.Bound()}
		}
		f.Attrs = attributesFrom(key, gf.Properties)
		ix.feats = append(ix.feats, f)
		ix.byID[id] = f
	}
	for id := range old {
		if _, alive := ix.byID[id]; !alive {
			removed = append(removed, id)
		}
	}
	return removed
}

// attributesFrom parses the curated property record, or synthesizes a
// consistent one when no curated risk score is present.
func attributesFrom(key string, props geojson.Properties) Attributes {
	a := Attributes{
		TractID:    key,
		Name:       props.MustString("tract_name", "Tract "+key),
		Population: int(props.MustFloat64("population", 0)),
		Income:     props.MustFloat64("mhhinc", 0),
		Desert:     props.MustFloat64("lila_flag", 0) == 1,
	}
	if _, curated := props["food_risk_score"]; curated {
		a.Risk = geom.Clamp01(props.MustFloat64("food_risk_score", 0))
		a.Equity = geom.Clamp01(props.MustFloat64("equity_score", 0))
		a.Coverage = geom.Clamp01(props.MustFloat64("transit_coverage", 0))
		a.Insecurity = geom.Clamp01(props.MustFloat64("food_insecurity_rate", 0))
		a.Poverty = geom.Clamp01(props.MustFloat64("poverty_rate", 0))
		a.SnapRate = geom.Clamp01(props.MustFloat64("snap_rate", 0))
		a.Vulnerability = geom.Clamp01(props.MustFloat64("vulnerability_index", 0))
		a.Need = geom.Clamp01(props.MustFloat64("need_score", 0))
		a.Supply = geom.Clamp01(props.MustFloat64("supply_score", 0))
		return a
	}
	a.Risk = synth.Risk(key)
	m := synth.Derive(a.Risk)
	a.Equity = m.Equity
	a.Coverage = m.Coverage
	a.Insecurity = m.Insecurity
	a.Poverty = m.Poverty
	a.SnapRate = m.SnapRate
	a.Vulnerability = m.Vulnerability
	a.Need = m.Need
	a.Supply = m.Supply
	a.Synthesized = true
	return a
}

// At returns the topmost feature covering the point. Later features paint
// over earlier ones, so the scan runs in reverse draw order.
func (ix *Index) At(p orb.Point) (*Feature, bool) {
	for i := len(ix.feats) - 1; i >= 0; i-- {
		f := ix.feats[i]
		if !f.bound.Contains(p) {
			continue
		}
		if geom.ContainsPoint(f.Geometry, p) {
			return f, true
		}
	}
	return nil, false
}

// Get looks a feature up by renderer id.
func (ix *Index) Get(id int) (*Feature, bool) {
	f, ok := ix.byID[id]
	return f, ok
}

func (ix *Index) Len() int { return len(ix.feats) }

// Features returns the live feature slice in draw order.
func (ix *Index) Features() []*Feature { return ix.feats }

// Bound is the union of all feature bounds.
func (ix *Index) Bound() orb.Bound {
	var b orb.Bound
	for i, f := range ix.feats {
		if i == 0 {
			b = f.bound
		} else {
			b = b.Union(f.bound)
		}
	}
	return b
}
