package core

import (
	"strings"

	"github.com/oceanplan/sizecard/internal/contract"
	"github.com/oceanplan/sizecard/schema"
)

// Translation keys of the card.
const (
	keyTitle           = "Size"
	keyNotFound        = "Results not found"
	keyShowByMPA       = "Show by MPA"
	keyLearnMore       = "Learn more"
	keyAttributes      = "Attributes"
	keyGapNote         = "No baseline area for"
	keyAbsentNote      = "No result for"
	keyIntroduction    = "SizeCard - introduction"
	keyLearnMoreSource = "SizeCard - learn more source"
	keyLearnMoreText   = "SizeCard - learn more"
)

// SourceURL is where the boundary definitions of the card come from.
const SourceURL = "https://en.wikipedia.org/wiki/Territorial_waters"

const (
	defaultIntroduction = "national waters extend from the shoreline out to 200 nautical miles, " +
		"known as the Exclusive Economic Zone (EEZ). This report summarizes offshore plan overlap " +
		"with the EEZ and other boundaries within it, measuring progress towards achieving % " +
		"targets for each boundary."
	defaultLearnMoreSource = "Source: Wikipedia - Territorial Waters"
	defaultLearnMoreText   = "This report summarizes the size and proportion of this plan within " +
		"these boundaries.\nIf sketch boundaries within a plan overlap with each other, the overlap " +
		"is only counted once."
)

// tr translates a plain key, falling back to the key.
func tr(t contract.Translator, key string) string {
	return trDefault(t, key, key)
}

// trDefault translates key, falling back to def when the table has no entry.
func trDefault(t contract.Translator, key, def string) string {
	if t == nil {
		return def
	}
	if s := t.T(key); strings.TrimSpace(s) != "" && s != key {
		return s
	}
	return def
}

// introduction prefixes the introduction paragraph with the translated planning area name.
func introduction(basic schema.ProjectBasic, t contract.Translator) string {
	text := trDefault(t, keyIntroduction, defaultIntroduction)
	if basic.PlanningAreaName == "" {
		return text
	}
	return tr(t, basic.PlanningAreaName) + " " + text
}

func learnMore(t contract.Translator) []string {
	lines := []string{trDefault(t, keyLearnMoreSource, defaultLearnMoreSource) + " (" + SourceURL + ")"}
	for line := range strings.SplitSeq(trDefault(t, keyLearnMoreText, defaultLearnMoreText), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
