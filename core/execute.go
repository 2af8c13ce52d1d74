package core

import (
	"context"
	"fmt"

	"github.com/oceanplan/sizecard/internal/contract"
	"github.com/oceanplan/sizecard/internal/outwriter"
	"github.com/oceanplan/sizecard/internal/project"
	"github.com/oceanplan/sizecard/internal/results"
	"github.com/oceanplan/sizecard/schema"
)

// ExecutorFunc defines the function signature of the card commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.ResultsManager) error

// LoadDeps reads the project, translations and sketch named by cfg and opens the
// configured results provider.
func LoadDeps(ctx context.Context, cfg *contract.Config, mgr contract.ResultsManager) (SizeCardDeps, error) {
	client, err := project.Load(cfg.ProjectDir)
	if err != nil {
		return SizeCardDeps{}, err
	}
	translator, err := project.LoadTranslator(cfg.ProjectDir, cfg.Locale)
	if err != nil {
		return SizeCardDeps{}, err
	}
	if cfg.SketchPath == "" {
		return SizeCardDeps{}, fmt.Errorf("sketch path is required")
	}
	sketch, err := project.LoadSketchProperties(cfg.SketchPath)
	if err != nil {
		return SizeCardDeps{}, err
	}
	provider, err := results.NewProvider(ctx, cfg, mgr)
	if err != nil {
		return SizeCardDeps{}, err
	}
	return SizeCardDeps{
		Project:    client,
		Translator: translator,
		Provider:   provider,
		Sketch:     sketch,
	}, nil
}

// LoadSizeCard loads every collaborator and builds the size card.
func LoadSizeCard(ctx context.Context, cfg *contract.Config, mgr contract.ResultsManager) (*schema.SizeCardModel, error) {
	deps, err := LoadDeps(ctx, cfg, mgr)
	if err != nil {
		return nil, err
	}
	return GetSizeCard(ctx, cfg, deps)
}

// ExecuteSizeCard builds the size card and prints it in the configured output format.
func ExecuteSizeCard(ctx context.Context, cfg *contract.Config, mgr contract.ResultsManager) error {
	card, err := LoadSizeCard(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteSizeCard(card, cfg)
}

// ExecuteDownload exports the raw size metrics in the configured download format.
func ExecuteDownload(ctx context.Context, cfg *contract.Config, mgr contract.ResultsManager) error {
	deps, err := LoadDeps(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	metrics, err := GetSizeMetrics(ctx, deps.Provider, deps.Sketch.ID, deps.Translator)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteDownload(metrics, cfg)
}
