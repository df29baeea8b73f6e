package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"

	"foodmap/internal/synth"
)

var boston = orb.Point{-71.0589, 42.3601}

func TestMissingFilesDegradeToPlaceholders(t *testing.T) {
	s := Source{Reference: boston}

	fc, synthetic, err := s.Tracts()
	if err != nil {
		t.Fatal(err)
	}
	if !synthetic || len(fc.Features) != gridCols*gridRows {
		t.Fatalf("synthetic=%v features=%d", synthetic, len(fc.Features))
	}
	for _, f := range fc.Features {
		if f.Properties.MustString("tract_id", "") == "" {
			t.Fatal("placeholder tract without an id")
		}
	}

	entities, synthetic, err := s.Resources()
	if err != nil {
		t.Fatal(err)
	}
	if !synthetic || len(entities) == 0 {
		t.Fatal("no placeholder resources")
	}
	categories := map[synth.Category]bool{}
	for _, e := range entities {
		categories[e.Pricing.Category] = true
	}
	if len(categories) != 7 {
		t.Fatalf("placeholder mix covers %d categories, want all 7", len(categories))
	}

	stops, err := s.Stops()
	if err != nil {
		t.Fatal(err)
	}
	if len(stops) == 0 {
		t.Fatal("no placeholder stops")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResourcesFromEnvelopeJSON(t *testing.T) {
	path := writeFile(t, "resources.json", `{
		"count": 2,
		"results": [
			{"resource_id": "r1", "name": "Daily Table", "type": "Grocery Store",
			 "address": "450 Washington St", "coordinates": [-71.07, 42.29],
			 "tract_id": "25025090700", "snap": true, "free": false, "hours": "9-9"},
			{"resource_id": "r2", "name": "Whole Foods Market", "type": "Supermarket",
			 "coordinates": [-71.05, 42.35], "snap": false, "free": false}
		]
	}`)
	entities, synthetic, err := Source{ResourcesPath: path, Reference: boston}.Resources()
	if err != nil {
		t.Fatal(err)
	}
	if synthetic {
		t.Fatal("file-backed load reported synthetic")
	}
	if len(entities) != 2 {
		t.Fatalf("entities = %d", len(entities))
	}
	e := entities[0]
	if e.ResourceID != "r1" || e.TractID != "25025090700" || !e.SNAP || e.Hours != "9-9" {
		t.Fatalf("record fields lost: %+v", e)
	}
	if e.Point[0] != -71.07 || e.Point[1] != 42.29 {
		t.Fatalf("coordinates not lng,lat: %v", e.Point)
	}
	if entities[1].Pricing.Score != 0.80 {
		t.Fatalf("chain override not applied on load: %v", entities[1].Pricing.Score)
	}
}

func TestResourcesFromEmptyEnvelope(t *testing.T) {
	path := writeFile(t, "resources.json", `{"count": 0, "results": []}`)
	entities, synthetic, err := Source{ResourcesPath: path, Reference: boston}.Resources()
	if err != nil {
		t.Fatalf("empty envelope rejected: %v", err)
	}
	if synthetic {
		t.Fatal("file-backed load reported synthetic")
	}
	if len(entities) != 0 {
		t.Fatalf("entities = %d, want none", len(entities))
	}
}

func TestResourcesFromBareArrayJSON(t *testing.T) {
	path := writeFile(t, "resources.json", `[
		{"resource_id": "r1", "name": "7-Eleven", "type": "Convenience Store",
		 "coordinates": [-71.06, 42.36]}
	]`)
	entities, _, err := Source{ResourcesPath: path}.Resources()
	if err != nil {
		t.Fatal(err)
	}
	if len(entities) != 1 || entities[0].Pricing.Category != synth.Convenience {
		t.Fatalf("entities = %+v", entities)
	}
}

func TestResourcesSkipRecordsWithoutCoordinates(t *testing.T) {
	path := writeFile(t, "resources.json", `[
		{"resource_id": "r1", "name": "No Address Pantry", "type": "Food Pantry"},
		{"resource_id": "r2", "name": "Daily Table", "type": "Grocery Store",
		 "coordinates": [-71.07, 42.29]}
	]`)
	entities, _, err := Source{ResourcesPath: path}.Resources()
	if err != nil {
		t.Fatal(err)
	}
	if len(entities) != 1 || entities[0].ResourceID != "r2" {
		t.Fatalf("entities = %+v", entities)
	}
}

func TestStopsFromJSON(t *testing.T) {
	path := writeFile(t, "stops.json", `[
		{"stop_id": "place-rugg", "name": "Ruggles", "lat": 42.3364, "lon": -71.0893,
		 "lines": ["Orange"]},
		{"stop_id": "1234", "name": "Washington St @ Mass Ave", "lat": 42.33, "lon": -71.08,
		 "vehicle_type": "bus"}
	]`)
	stops, err := Source{StopsPath: path}.Stops()
	if err != nil {
		t.Fatal(err)
	}
	if len(stops) != 2 {
		t.Fatalf("stops = %d", len(stops))
	}
	if stops[0].Name != "Ruggles" || stops[0].Lines[0] != "Orange" {
		t.Fatalf("stop fields: %+v", stops[0])
	}
	if stops[1].Lines[0] != "bus" {
		t.Fatalf("vehicle_type fallback: %+v", stops[1])
	}
	if stops[0].Point[0] != -71.0893 {
		t.Fatalf("stop point not lng,lat: %v", stops[0].Point)
	}
}

func TestTractsFromGeoJSON(t *testing.T) {
	path := writeFile(t, "tracts.geojson", `{
		"type": "FeatureCollection",
		"features": [{
			"type": "Feature",
			"properties": {"tract_id": "25025010101", "tract_name": "Roxbury 101"},
			"geometry": {"type": "Polygon",
				"coordinates": [[[-71.1,42.3],[-71.0,42.3],[-71.0,42.4],[-71.1,42.4],[-71.1,42.3]]]}
		}]
	}`)
	fc, synthetic, err := Source{TractsPath: path}.Tracts()
	if err != nil {
		t.Fatal(err)
	}
	if synthetic || len(fc.Features) != 1 {
		t.Fatalf("synthetic=%v features=%d", synthetic, len(fc.Features))
	}
}
