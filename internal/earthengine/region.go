package earthengine

import (
	"encoding/json"
	"fmt"
	"os"
)

// Polygon is a GeoJSON-style polygon: rings of [lon, lat] positions, first
// ring is the shell.
type Polygon [][][]float64

// DefaultRegion is the SF Bay area box the exporter targets when no region
// file is given.
func DefaultRegion() Polygon {
	return Polygon{{
		{-122.55, 37.65},
		{-122.30, 37.65},
		{-122.30, 37.90},
		{-122.55, 37.90},
		{-122.55, 37.65},
	}}
}

func (p Polygon) coordinates() []any {
	rings := make([]any, len(p))
	for i, ring := range p {
		pts := make([]any, len(ring))
		for j, pos := range ring {
			coords := make([]any, len(pos))
			for k, v := range pos {
				coords[k] = v
			}
			pts[j] = coords
		}
		rings[i] = pts
	}
	return rings
}

// Validate checks ring shape: at least one ring, each ring closed with four or
// more positions of [lon, lat].
func (p Polygon) Validate() error {
	if len(p) == 0 {
		return fmt.Errorf("polygon has no rings")
	}
	for i, ring := range p {
		if len(ring) < 4 {
			return fmt.Errorf("ring %d has %d positions, need at least 4", i, len(ring))
		}
		for j, pos := range ring {
			if len(pos) != 2 {
				return fmt.Errorf("ring %d position %d has %d coordinates, need 2", i, j, len(pos))
			}
		}
		first, last := ring[0], ring[len(ring)-1]
		if first[0] != last[0] || first[1] != last[1] {
			return fmt.Errorf("ring %d is not closed", i)
		}
	}
	return nil
}

// LoadRegion reads a GeoJSON polygon from path. Both a bare geometry object
// and a Feature wrapper are accepted.
func LoadRegion(path string) (Polygon, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read region file: %w", err)
	}

	var doc struct {
		Type        string          `json:"type"`
		Coordinates Polygon         `json:"coordinates"`
		Geometry    json.RawMessage `json:"geometry"`
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse region file: %w", err)
	}
	if doc.Type == "Feature" && len(doc.Geometry) > 0 {
		if err := json.Unmarshal(doc.Geometry, &doc); err != nil {
			return nil, fmt.Errorf("parse feature geometry: %w", err)
		}
	}
	if doc.Type != "Polygon" {
		return nil, fmt.Errorf("unsupported geometry type %q, want Polygon", doc.Type)
	}

	p := doc.Coordinates
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("region %s: %w", path, err)
	}
	return p, nil
}
