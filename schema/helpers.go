package schema

// KeySketches indexes sketch properties by id.
func KeySketches(sketches []SketchProperties) map[string]SketchProperties {
	byID := make(map[string]SketchProperties, len(sketches))
	for _, s := range sketches {
		byID[s.ID] = s
	}
	return byID
}

// PercMetricID returns the derived percent metric id for a base metric id.
func PercMetricID(metricID string) string {
	return metricID + PercMetricSuffix
}
