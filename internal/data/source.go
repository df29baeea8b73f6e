// Package data loads the map's datasets: tract polygons, food resources,
// and transit stops. Missing files degrade to generated placeholder data so
// the map is always operable offline.
package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"foodmap/internal/geom"
	"foodmap/internal/tract"
)

// Source names the dataset files and the reference location distances are
// measured from.
type Source struct {
	TractsPath    string
	ResourcesPath string
	StopsPath     string
	Reference     orb.Point
}

// Tracts loads the tract FeatureCollection. When the file is absent it
// returns a generated placeholder grid and reports synthetic=true.
func (s Source) Tracts() (fc *geojson.FeatureCollection, synthetic bool, err error) {
	if s.TractsPath == "" || !fileExists(s.TractsPath) {
		return placeholderTracts(s.Reference), true, nil
	}
	fc, err = geom.LoadFeatureCollection(s.TractsPath)
	if err != nil {
		return nil, false, fmt.Errorf("tracts: %w", err)
	}
	return fc, false, nil
}

// resourceRecord mirrors the wire shape of one food resource document.
type resourceRecord struct {
	ResourceID  string    `json:"resource_id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Address     string    `json:"address"`
	Coordinates []float64 `json:"coordinates"` // [lng, lat]
	TractID     string    `json:"tract_id"`
	SNAP        bool      `json:"snap"`
	Free        bool      `json:"free"`
	Hours       string    `json:"hours"`
}

// resourceList is the count/results envelope variant. Results is a pointer
// so an envelope with an empty list is still recognized as an envelope.
type resourceList struct {
	Count   int               `json:"count"`
	Results *[]resourceRecord `json:"results"`
}

// Resources loads the food resource list, from JSON (bare array or a
// count/results envelope) or from CSV with detected columns. A missing file
// yields placeholder markers.
func (s Source) Resources() (entities []tract.PointEntity, synthetic bool, err error) {
	if s.ResourcesPath == "" || !fileExists(s.ResourcesPath) {
		return placeholderResources(s.Reference), true, nil
	}
	if strings.EqualFold(filepath.Ext(s.ResourcesPath), ".csv") {
		pts, err := geom.LoadPointsCSV(s.ResourcesPath)
		if err != nil {
			return nil, false, fmt.Errorf("resources: %w", err)
		}
		for i, p := range pts {
			entities = append(entities, tract.NewPointEntity(
				fmt.Sprintf("csv-%d", i+1), p.Name, p.Type, "", p.Point))
		}
		return entities, false, nil
	}

	raw, err := os.ReadFile(s.ResourcesPath)
	if err != nil {
		return nil, false, fmt.Errorf("resources: %w", err)
	}
	records, err := decodeResources(raw)
	if err != nil {
		return nil, false, fmt.Errorf("resources: %w", err)
	}
	for _, rec := range records {
		if len(rec.Coordinates) != 2 {
			continue
		}
		e := tract.NewPointEntity(rec.ResourceID, rec.Name, rec.Type, rec.Address,
			orb.Point{rec.Coordinates[0], rec.Coordinates[1]})
		e.TractID = rec.TractID
		e.SNAP = rec.SNAP
		e.Free = rec.Free
		e.Hours = rec.Hours
		entities = append(entities, e)
	}
	return entities, false, nil
}

func decodeResources(raw []byte) ([]resourceRecord, error) {
	var list resourceList
	if err := json.Unmarshal(raw, &list); err == nil && list.Results != nil {
		return *list.Results, nil
	}
	var bare []resourceRecord
	if err := json.Unmarshal(raw, &bare); err != nil {
		return nil, err
	}
	return bare, nil
}

// stopRecord mirrors one transit stop document.
type stopRecord struct {
	StopID      string   `json:"stop_id"`
	Name        string   `json:"name"`
	Lat         float64  `json:"lat"`
	Lon         float64  `json:"lon"`
	VehicleType string   `json:"vehicle_type"`
	Lines       []string `json:"lines"`
}

// Stops loads the transit stop layer; a missing file yields placeholder
// stations.
func (s Source) Stops() ([]tract.TransitStop, error) {
	if s.StopsPath == "" || !fileExists(s.StopsPath) {
		return placeholderStops(s.Reference), nil
	}
	raw, err := os.ReadFile(s.StopsPath)
	if err != nil {
		return nil, fmt.Errorf("stops: %w", err)
	}
	var records []stopRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("stops: %w", err)
	}
	stops := make([]tract.TransitStop, 0, len(records))
	for _, rec := range records {
		lines := rec.Lines
		if len(lines) == 0 && rec.VehicleType != "" {
			lines = []string{rec.VehicleType}
		}
		stops = append(stops, tract.TransitStop{
			Name:  rec.Name,
			Lines: lines,
			Point: orb.Point{rec.Lon, rec.Lat},
		})
	}
	return stops, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
