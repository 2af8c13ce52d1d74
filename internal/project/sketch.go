package project

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/oceanplan/sizecard/schema"
)

// geoJSON is the part of a GeoJSON Feature or FeatureCollection that carries sketch properties.
type geoJSON struct {
	Type       string                   `json:"type"`
	Properties *schema.SketchProperties `json:"properties"`
	Features   []struct {
		Properties schema.SketchProperties `json:"properties"`
	} `json:"features"`
}

// LoadSketchProperties reads the properties of the sketch a card is rendered for.
// The file is either a plain properties object or a GeoJSON Feature/FeatureCollection;
// geometry is ignored. A FeatureCollection is a collection whose children are its features,
// unless its properties already list childProperties.
func LoadSketchProperties(path string) (schema.SketchProperties, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return schema.SketchProperties{}, err
	}
	return ParseSketchProperties(data)
}

// ParseSketchProperties is LoadSketchProperties for in-memory data.
func ParseSketchProperties(data []byte) (schema.SketchProperties, error) {
	var doc geoJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return schema.SketchProperties{}, fmt.Errorf("failed to parse sketch: %w", err)
	}

	var sp schema.SketchProperties
	switch doc.Type {
	case "Feature":
		if doc.Properties == nil {
			return sp, fmt.Errorf("sketch feature has no properties")
		}
		sp = *doc.Properties
	case "FeatureCollection":
		if doc.Properties == nil {
			return sp, fmt.Errorf("sketch collection has no properties")
		}
		sp = *doc.Properties
		sp.IsCollection = true
		if len(sp.ChildProperties) == 0 {
			for _, f := range doc.Features {
				sp.ChildProperties = append(sp.ChildProperties, f.Properties)
			}
		}
	default:
		if err := json.Unmarshal(data, &sp); err != nil {
			return sp, fmt.Errorf("failed to parse sketch properties: %w", err)
		}
	}

	if sp.ID == "" {
		return sp, fmt.Errorf("sketch has no id")
	}
	return sp, nil
}
