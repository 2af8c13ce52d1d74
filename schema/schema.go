// Package schema has models, descriptors and constants shared by all parts of sizecard.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Metric is a single precomputed measurement produced by a geoprocessing function.
// An empty SketchID marks an aggregate (top-level) row.
type Metric struct {
	MetricID    string         `json:"metricId"`
	Value       float64        `json:"value"`
	ClassID     string         `json:"classId,omitempty"`
	GroupID     string         `json:"groupId,omitempty"`
	GeographyID string         `json:"geographyId,omitempty"`
	SketchID    string         `json:"sketchId,omitempty"`
	Extra       map[string]any `json:"extra,omitempty"`
}

// DataClass is one boundary or category within a metric group.
type DataClass struct {
	ClassID      string `json:"classId"`
	Display      string `json:"display"`
	DatasourceID string `json:"datasourceId,omitempty"`
	ClassKey     string `json:"classKey,omitempty"`
	LayerID      string `json:"layerId,omitempty"`
	ObjectiveID  string `json:"objectiveId,omitempty"`
}

// MetricGroup describes a family of related metrics.
// The order of Classes is the canonical display order.
type MetricGroup struct {
	MetricID    string      `json:"metricId"`
	Type        string      `json:"type,omitempty"`
	Classes     []DataClass `json:"classes"`
	ObjectiveID string      `json:"objectiveId,omitempty"`
	LayerID     string      `json:"layerId,omitempty"`
}

// ClassIDs returns the class identifiers of the group in declared order.
func (mg MetricGroup) ClassIDs() []string {
	ids := make([]string, len(mg.Classes))
	for i, c := range mg.Classes {
		ids[i] = c.ClassID
	}
	return ids
}

// Class returns the class with the given id, if the group declares it.
func (mg MetricGroup) Class(classID string) (DataClass, bool) {
	for _, c := range mg.Classes {
		if c.ClassID == classID {
			return c, true
		}
	}
	return DataClass{}, false
}

// Objective is a planning target, expressed as a fraction (0.3 = 30%).
type Objective struct {
	ObjectiveID  string            `json:"objectiveId"`
	ShortDesc    string            `json:"shortDesc"`
	Target       float64           `json:"target"`
	CountsToward map[string]string `json:"countsToward,omitempty"`
}

// Geography is a named planning boundary that precalculated metrics are scoped to.
type Geography struct {
	GeographyID string   `json:"geographyId"`
	Display     string   `json:"display"`
	Groups      []string `json:"groups,omitempty"`
	Precalc     bool     `json:"precalc"`
}

// ProjectBasic holds project wide settings.
type ProjectBasic struct {
	Name             string   `json:"name"`
	PlanningAreaName string   `json:"planningAreaName"`
	PlanningAreaType string   `json:"planningAreaType,omitempty"`
	Languages        []string `json:"languages,omitempty"`
}

// SketchProperties identifies the plan (or sub-plan) a report is rendered for.
type SketchProperties struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	IsCollection    bool               `json:"isCollection"`
	SketchClassID   string             `json:"sketchClassId,omitempty"`
	UpdatedAt       string             `json:"updatedAt,omitempty"`
	UserAttributes  []UserAttribute    `json:"userAttributes,omitempty"`
	ChildProperties []SketchProperties `json:"childProperties,omitempty"`
}

// UserAttribute is a form value the plan author entered for a sketch.
type UserAttribute struct {
	ExportID   string `json:"exportId"`
	Label      string `json:"label"`
	FieldType  string `json:"fieldType,omitempty"`
	Value      any    `json:"value"`
	ValueLabel any    `json:"valueLabel,omitempty"`
}

// DisplayValue returns the value label when present, else the value as text.
// List values are joined with commas.
func (a UserAttribute) DisplayValue() string {
	v := a.Value
	if a.ValueLabel != nil && a.ValueLabel != "" {
		v = a.ValueLabel
	}
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(val)
	}
}

// ChildIDs returns the ids of the child sketches in order.
func (sp SketchProperties) ChildIDs() []string {
	ids := make([]string, len(sp.ChildProperties))
	for i, c := range sp.ChildProperties {
		ids[i] = c.ID
	}
	return ids
}

// ReportResult is the result object of a named geoprocessing function.
type ReportResult struct {
	Metrics []Metric `json:"metrics"`

	empty bool
}

// IsEmpty reports whether the result was decoded from an object without any keys.
func (r ReportResult) IsEmpty() bool {
	return r.empty
}

// EmptyReportResult returns the result a provider yields when nothing was found.
func EmptyReportResult() ReportResult {
	return ReportResult{empty: true}
}

// DecodeReportResult decodes a raw result object and keeps track of whether it was empty.
func DecodeReportResult(data []byte) (ReportResult, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return EmptyReportResult(), nil
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return ReportResult{}, fmt.Errorf("failed to decode result object: %w", err)
	}
	if len(keys) == 0 {
		return EmptyReportResult(), nil
	}

	var result ReportResult
	if err := json.Unmarshal(data, &result); err != nil {
		return ReportResult{}, fmt.Errorf("failed to decode result metrics: %w", err)
	}
	return result, nil
}

// NestedMetrics is a sketchId -> classId -> metricId lookup of metric records.
type NestedMetrics map[string]map[string]map[string][]Metric

// First returns the first record at the given path.
func (n NestedMetrics) First(sketchID, classID, metricID string) (Metric, bool) {
	list := n[sketchID][classID][metricID]
	if len(list) == 0 {
		return Metric{}, false
	}
	return list[0], true
}

// SketchMetrics is the ordered set of records for one subject, ready for a class table.
type SketchMetrics struct {
	SketchID string   `json:"sketch_id"`
	Metrics  []Metric `json:"metrics"`
	Missing  []string `json:"missing_baselines,omitempty"` // Class ids without a baseline
}

// NetworkMetrics is the pivoted set of records for the children of a collection.
type NetworkMetrics struct {
	SketchIDs []string      `json:"sketch_ids"` // Row order
	Nested    NestedMetrics `json:"nested"`
	Missing   []string      `json:"missing_baselines,omitempty"`
}
