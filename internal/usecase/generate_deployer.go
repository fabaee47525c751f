package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/deployergen/internal/domain"
	"github.com/trebuchet-org/deployergen/internal/domain/config"
)

// GenerateDeployerParams contains parameters for generating a deployer library
type GenerateDeployerParams struct {
	Root       string
	Dev        bool
	Network    string
	Select     bool
	OutputPath string // optional, defaults to <base>/script/<root>/<output name>
	DryRun     bool   // render only, do not write
}

// GenerateDeployerResult contains the result of deployer generation
type GenerateDeployerResult struct {
	OutputPath string
	ConfigPath string
	Contracts  []string
	Content    string
	DryRun     bool
}

// GenerateDeployer is the use case for generating a deployer library
type GenerateDeployer struct {
	config     *config.RuntimeConfig
	planner    *PlanDeployer
	generator  DeployerGenerator
	fileWriter FileWriter
	progress   ProgressSink
	log        *slog.Logger
}

// NewGenerateDeployer creates a new GenerateDeployer use case
func NewGenerateDeployer(
	cfg *config.RuntimeConfig,
	planner *PlanDeployer,
	generator DeployerGenerator,
	fileWriter FileWriter,
	progress ProgressSink,
	log *slog.Logger,
) *GenerateDeployer {
	return &GenerateDeployer{
		config:     cfg,
		planner:    planner,
		generator:  generator,
		fileWriter: fileWriter,
		progress:   progress,
		log:        log.With("component", "GenerateDeployer"),
	}
}

// Run executes the generate deployer use case. The library is assembled in
// memory and written with a single write once every contract has rendered.
func (uc *GenerateDeployer) Run(ctx context.Context, params GenerateDeployerParams) (*GenerateDeployerResult, error) {
	plan, err := uc.planner.Run(ctx, PlanParams{
		Root:    params.Root,
		Dev:     params.Dev,
		Network: params.Network,
		Select:  params.Select,
	})
	if err != nil {
		return nil, err
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageRendering,
		Message: fmt.Sprintf("Rendering %d contracts", len(plan.Contracts)),
		Spinner: true,
	})

	fragments := make([]domain.Fragment, 0, len(plan.Contracts))
	for _, contract := range plan.Contracts {
		fragment, err := uc.generator.GenerateFragment(ctx, contract.Name, contract.Parameters, contract.Partition)
		if err != nil {
			return nil, uc.fail(ctx, fmt.Errorf("failed to render %s: %w", contract.Name, err))
		}
		fragments = append(fragments, fragment)
	}

	outputPath := uc.outputPath(plan, params.OutputPath)

	configImport, err := uc.configImport(outputPath)
	if err != nil {
		return nil, uc.fail(ctx, err)
	}

	gen := uc.config.Generator
	content, err := uc.generator.GenerateLibrary(ctx, &domain.DeployerLibrary{
		Name:          gen.LibraryName,
		Pragma:        gen.Pragma,
		Root:          plan.Root,
		ConfigImport:  configImport,
		ConfigLibrary: gen.ConfigLibrary,
		VMImport:      gen.VMImport,
		Fragments:     fragments,
	})
	if err != nil {
		return nil, uc.fail(ctx, fmt.Errorf("failed to render deployer library: %w", err))
	}

	result := &GenerateDeployerResult{
		OutputPath: outputPath,
		ConfigPath: plan.ConfigPath,
		Contracts:  lo.Map(fragments, func(f domain.Fragment, _ int) string { return f.Contract }),
		Content:    content,
		DryRun:     params.DryRun,
	}

	if params.DryRun {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
		return result, nil
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageWriting,
		Message: fmt.Sprintf("Writing %s", outputPath),
		Spinner: true,
	})

	if err := uc.fileWriter.EnsureDirectory(ctx, filepath.Dir(outputPath)); err != nil {
		return nil, uc.fail(ctx, fmt.Errorf("failed to create output directory: %w", err))
	}
	if err := uc.fileWriter.WriteFile(ctx, outputPath, content); err != nil {
		return nil, uc.fail(ctx, fmt.Errorf("failed to write deployer library: %w", err))
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
	uc.log.Debug("wrote deployer library", "path", outputPath, "contracts", len(fragments))

	return result, nil
}

// fail stops any running spinner before the error reaches the terminal
func (uc *GenerateDeployer) fail(ctx context.Context, err error) error {
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageFailed})
	return err
}

// outputPath determines where the generated library goes
func (uc *GenerateDeployer) outputPath(plan *DeployerPlan, customPath string) string {
	if customPath != "" {
		if filepath.IsAbs(customPath) {
			return customPath
		}
		return filepath.Join(uc.config.ProjectRoot, customPath)
	}

	name := uc.config.Generator.OutputName
	if name == "" {
		name = "Deployer.sol"
	}
	return filepath.Join(plan.BaseDir, "script", plan.Root, name)
}

// configImport returns the import path of the config helper as seen from
// the output file
func (uc *GenerateDeployer) configImport(outputPath string) (string, error) {
	source := uc.config.Generator.ConfigSource
	if !filepath.IsAbs(source) {
		source = filepath.Join(uc.config.ProjectRoot, source)
	}

	rel, err := filepath.Rel(filepath.Dir(outputPath), source)
	if err != nil {
		return "", fmt.Errorf("failed to resolve config import path: %w", err)
	}

	rel = filepath.ToSlash(rel)
	if !strings.HasPrefix(rel, "../") {
		rel = "./" + rel
	}
	return rel, nil
}
