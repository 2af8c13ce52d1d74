// Package core builds the size card from project configuration and geoprocessing results.
package core

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/oceanplan/sizecard/core/agg"
	"github.com/oceanplan/sizecard/core/table"
	"github.com/oceanplan/sizecard/internal/contract"
	"github.com/oceanplan/sizecard/internal/project"
	"github.com/oceanplan/sizecard/schema"
)

// ErrResultsNotFound is matched by errors.Is when the result object of a card is empty.
var ErrResultsNotFound = errors.New("results not found")

// ResultsNotFoundError carries the translated message shown in place of the card.
type ResultsNotFoundError struct {
	Message string
}

func (e *ResultsNotFoundError) Error() string { return e.Message }

// Is makes errors.Is(err, ErrResultsNotFound) hold.
func (e *ResultsNotFoundError) Is(target error) bool { return target == ErrResultsNotFound }

// SizeCardDeps are the collaborators a card is built from.
type SizeCardDeps struct {
	Project    *project.Client
	Translator contract.Translator
	Provider   contract.ResultsProvider
	Sketch     schema.SketchProperties
}

// GetSizeCard builds the size card render model of deps.Sketch.
func GetSizeCard(ctx context.Context, cfg *contract.Config, deps SizeCardDeps) (*schema.SizeCardModel, error) {
	t := deps.Translator
	geography, err := deps.Project.GetGeographyByID(cfg.GeographyID, schema.DefaultBoundary)
	if err != nil {
		return nil, err
	}
	mg, err := deps.Project.GetMetricGroup(schema.SizeMetricGroupID)
	if err != nil {
		return nil, err
	}
	precalc := deps.Project.GetPrecalcMetrics(mg, schema.SizePrecalcMetricID, geography.GeographyID)

	result, err := fetchResult(ctx, deps.Provider, deps.Sketch.ID, t)
	if err != nil {
		return nil, err
	}

	priority := cfg.ClassPriority
	if len(priority) == 0 {
		priority = schema.DefaultClassPriority
	}
	f := table.NewFormatter(cfg.Locale)
	targets := deps.Project.ClassTargets(mg)

	sm := agg.SingleSketch(result.Metrics, deps.Sketch.ID, precalc, mg, priority)
	missing := sm.Missing

	card := &schema.SizeCardModel{
		Title:           tr(t, keyTitle),
		SketchID:        deps.Sketch.ID,
		SketchName:      deps.Sketch.Name,
		GeographyID:     geography.GeographyID,
		Introduction:    introduction(deps.Project.Basic, t),
		Single:          table.BuildClassTable(sm, mg, targets, t, f),
		GapNote:         tr(t, keyGapNote),
		AbsentNote:      tr(t, keyAbsentNote),
		LearnMoreTitle:  tr(t, keyLearnMore),
		LearnMore:       learnMore(t),
		AttributesTitle: tr(t, keyAttributes),
		Attributes:      deps.Sketch.UserAttributes,
	}

	if deps.Sketch.IsCollection && len(deps.Sketch.ChildProperties) > 0 {
		nm := agg.Network(result.Metrics, deps.Sketch.ChildIDs(), precalc, mg)
		network := table.BuildNetworkTable(nm, mg, deps.Sketch.ChildProperties, t, f)
		card.Network = &network
		card.NetworkTitle = tr(t, keyShowByMPA)
		missing = mergeIDs(missing, nm.Missing)
	}

	if len(missing) > 0 {
		contract.LogWarn(fmt.Sprintf("geography %s", geography.GeographyID), &agg.MissingBaselineError{ClassIDs: missing})
	}
	return card, nil
}

// GetSizeMetrics returns the raw metrics of the size result, unchanged, for downloads.
func GetSizeMetrics(ctx context.Context, provider contract.ResultsProvider, sketchID string, t contract.Translator) ([]schema.Metric, error) {
	result, err := fetchResult(ctx, provider, sketchID, t)
	if err != nil {
		return nil, err
	}
	return result.Metrics, nil
}

// fetchResult reads the size result and rejects an empty result object.
func fetchResult(ctx context.Context, provider contract.ResultsProvider, sketchID string, t contract.Translator) (schema.ReportResult, error) {
	result, err := provider.GetResult(ctx, schema.SizeFunctionName, sketchID)
	if err != nil {
		return schema.ReportResult{}, fmt.Errorf("failed to get %s results: %w", schema.SizeFunctionName, err)
	}
	if result.IsEmpty() {
		return schema.ReportResult{}, &ResultsNotFoundError{Message: tr(t, keyNotFound)}
	}
	return result, nil
}

func mergeIDs(a, b []string) []string {
	out := slices.Clone(a)
	for _, id := range b {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
