package data

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"foodmap/internal/tract"
)

// Placeholder grid dimensions and cell size in degrees.
const (
	gridCols   = 6
	gridRows   = 5
	cellLonDeg = 0.012
	cellLatDeg = 0.009
)

// placeholderTracts builds a rectangular grid of synthetic tracts centered
// on the reference point. The tract ids carry distinct digit tails so the
// attribute synthesizer spreads them across the risk bands.
func placeholderTracts(ref orb.Point) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	originLon := ref[0] - cellLonDeg*gridCols/2
	originLat := ref[1] - cellLatDeg*gridRows/2
	for row := 0; row < gridRows; row++ {
		for col := 0; col < gridCols; col++ {
			lon := originLon + float64(col)*cellLonDeg
			lat := originLat + float64(row)*cellLatDeg
			f := geojson.NewFeature(orb.Polygon{{
				{lon, lat},
				{lon + cellLonDeg, lat},
				{lon + cellLonDeg, lat + cellLatDeg},
				{lon, lat + cellLatDeg},
				{lon, lat},
			}})
			f.Properties = geojson.Properties{
				"tract_id":   fmt.Sprintf("25025%02d%02d0", row+1, col+1),
				"tract_name": fmt.Sprintf("Tract %d-%d", row+1, col+1),
			}
			fc.Append(f)
		}
	}
	return fc
}

// placeholderResources scatters a representative store mix over the grid,
// one of each category plus a few chains with price overrides.
func placeholderResources(ref orb.Point) []tract.PointEntity {
	seed := []struct {
		name, typ  string
		dx, dy     float64
		snap, free bool
	}{
		{"Market Basket", "Supermarket", -0.020, 0.010, true, false},
		{"Whole Foods Market", "Supermarket", 0.015, 0.012, false, false},
		{"Star Market", "Supermarket", 0.024, -0.008, true, false},
		{"Daily Table", "Grocery Store", -0.008, -0.012, true, false},
		{"7-Eleven", "Convenience Store", 0.005, 0.002, false, false},
		{"Costco Wholesale", "Wholesale Club", -0.028, -0.016, false, false},
		{"Copley Square Farmers Market", "Farmers Market", 0.001, 0.016, true, false},
		{"Greater Boston Food Bank", "Pantry", 0.010, -0.015, false, true},
		{"Fresh Truck", "Mobile", -0.015, 0.004, true, true},
		{"Stop & Shop", "Supermarket", 0.026, 0.006, true, false},
	}
	entities := make([]tract.PointEntity, 0, len(seed))
	for i, s := range seed {
		e := tract.NewPointEntity(
			fmt.Sprintf("demo-%d", i+1), s.name, s.typ, "",
			orb.Point{ref[0] + s.dx, ref[1] + s.dy})
		e.SNAP = s.snap
		e.Free = s.free
		entities = append(entities, e)
	}
	return entities
}

// placeholderStops places a few rapid-transit stations around the
// reference.
func placeholderStops(ref orb.Point) []tract.TransitStop {
	seed := []struct {
		name   string
		line   string
		dx, dy float64
	}{
		{"Ruggles", "Orange", -0.012, -0.006},
		{"Andrew", "Red", 0.018, -0.010},
		{"Maverick", "Blue", 0.020, 0.014},
		{"Park Street", "Green", 0.000, 0.000},
		{"Forest Hills", "Orange", -0.024, -0.014},
	}
	stops := make([]tract.TransitStop, 0, len(seed))
	for _, s := range seed {
		stops = append(stops, tract.TransitStop{
			Name:  s.name,
			Lines: []string{s.line},
			Point: orb.Point{ref[0] + s.dx, ref[1] + s.dy},
		})
	}
	return stops
}
