// Package project reads the project configuration a card is rendered against:
// metric groups, precalculated baselines, geographies, objectives and translations.
package project

import (
	"fmt"
	"slices"

	"github.com/oceanplan/sizecard/schema"
)

// Client is a read-only view over a loaded project.
type Client struct {
	Basic        schema.ProjectBasic
	MetricGroups []schema.MetricGroup
	Precalc      []schema.Metric
	Geographies  []schema.Geography
	Objectives   []schema.Objective
}

// Load reads the project files in dir. basic and metrics are required;
// precalc, geographies and objectives may be absent.
func Load(dir string) (*Client, error) {
	c := &Client{}
	if err := decodeRequired(dir, "basic", &c.Basic); err != nil {
		return nil, fmt.Errorf("failed to load project basics: %w", err)
	}
	if err := decodeRequired(dir, "metrics", &c.MetricGroups); err != nil {
		return nil, fmt.Errorf("failed to load metric groups: %w", err)
	}
	if err := decodeOptional(dir, "precalc", &c.Precalc); err != nil {
		return nil, fmt.Errorf("failed to load precalc metrics: %w", err)
	}
	if err := decodeOptional(dir, "geographies", &c.Geographies); err != nil {
		return nil, fmt.Errorf("failed to load geographies: %w", err)
	}
	if err := decodeOptional(dir, "objectives", &c.Objectives); err != nil {
		return nil, fmt.Errorf("failed to load objectives: %w", err)
	}
	return c, nil
}

// GetMetricGroup returns the metric group with the given metric id.
func (c *Client) GetMetricGroup(metricID string) (schema.MetricGroup, error) {
	for _, mg := range c.MetricGroups {
		if mg.MetricID == metricID {
			return mg, nil
		}
	}
	return schema.MetricGroup{}, fmt.Errorf("unknown metric group %q", metricID)
}

// GetGeographyByID returns the geography with the given id. When id is empty or
// unknown, the first geography in fallbackGroup is returned instead.
func (c *Client) GetGeographyByID(id, fallbackGroup string) (schema.Geography, error) {
	if id != "" {
		for _, g := range c.Geographies {
			if g.GeographyID == id {
				return g, nil
			}
		}
	}
	for _, g := range c.Geographies {
		if slices.Contains(g.Groups, fallbackGroup) {
			return g, nil
		}
	}
	if id != "" {
		return schema.Geography{}, fmt.Errorf("unknown geography %q and no geography in group %q", id, fallbackGroup)
	}
	return schema.Geography{}, fmt.Errorf("no geography in group %q", fallbackGroup)
}

// GetPrecalcMetrics returns one baseline record per class of mg for the metric and
// geography. A precalc record matches a class by its classId, or by the
// "<datasourceId>-<classKey>" id the precalc step writes ("<datasourceId>-total"
// without a class key). The returned records carry the class id of the group.
// Classes without a match are left out so callers can report the missing baseline.
func (c *Client) GetPrecalcMetrics(mg schema.MetricGroup, metricID, geographyID string) []schema.Metric {
	var scoped []schema.Metric
	for _, m := range c.Precalc {
		if m.MetricID == metricID && m.GeographyID == geographyID {
			scoped = append(scoped, m)
		}
	}

	var out []schema.Metric
	for _, class := range mg.Classes {
		m, ok := findPrecalc(scoped, class)
		if !ok {
			continue
		}
		m.ClassID = class.ClassID
		out = append(out, m)
	}
	return out
}

func findPrecalc(metrics []schema.Metric, class schema.DataClass) (schema.Metric, bool) {
	ids := []string{class.ClassID}
	if class.DatasourceID != "" {
		key := class.ClassKey
		if key == "" {
			key = "total"
		}
		ids = append(ids, class.DatasourceID+"-"+key)
	}
	for _, id := range ids {
		for _, m := range metrics {
			if m.ClassID == id {
				return m, true
			}
		}
	}
	return schema.Metric{}, false
}

// GetObjectiveByID returns the objective with the given id.
func (c *Client) GetObjectiveByID(objectiveID string) (schema.Objective, bool) {
	for _, o := range c.Objectives {
		if o.ObjectiveID == objectiveID {
			return o, true
		}
	}
	return schema.Objective{}, false
}

// ObjectiveTarget returns the target ratio that applies to a class of mg.
// The class objective wins over the group objective.
func (c *Client) ObjectiveTarget(mg schema.MetricGroup, classID string) (float64, bool) {
	objectiveID := mg.ObjectiveID
	if class, ok := mg.Class(classID); ok && class.ObjectiveID != "" {
		objectiveID = class.ObjectiveID
	}
	if objectiveID == "" {
		return 0, false
	}
	o, ok := c.GetObjectiveByID(objectiveID)
	if !ok {
		return 0, false
	}
	return o.Target, true
}

// ClassTargets returns the objective target of every class of mg that has one.
func (c *Client) ClassTargets(mg schema.MetricGroup) map[string]float64 {
	targets := make(map[string]float64, len(mg.Classes))
	for _, class := range mg.Classes {
		if target, ok := c.ObjectiveTarget(mg, class.ClassID); ok {
			targets[class.ClassID] = target
		}
	}
	return targets
}
