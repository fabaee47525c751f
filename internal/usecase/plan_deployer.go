package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/trebuchet-org/deployergen/internal/domain"
	"github.com/trebuchet-org/deployergen/internal/domain/config"
)

// Stage names reported through the progress sink
const (
	StageLoadingConfig    = "loading-config"
	StageLoadingArtifacts = "loading-artifacts"
	StageRendering        = "rendering"
	StageWriting          = "writing"
	StageCompleted        = "completed"
	StageFailed           = "failed"
)

// PlanParams identifies which configuration to plan from
type PlanParams struct {
	Root    string // script namespace, e.g. "token"
	Dev     bool   // resolve everything under <project>/test
	Network string // optional config file name (chain id) under script/<root>/config
	Select  bool   // prompt for the config file when Network is empty
}

// ContractPlan is the resolved generation input for one contract
type ContractPlan struct {
	Name         string
	ArtifactPath string
	Parameters   []domain.ConstructorParameter
	Values       domain.FieldValues
	Partition    domain.Partition
	UnusedKeys   []string
}

// DeployerPlan is the fully resolved input for one generation run
type DeployerPlan struct {
	Root       string
	BaseDir    string
	ConfigPath string
	Contracts  []ContractPlan
}

// PlanDeployer loads the network configuration and every referenced
// artifact, and partitions each constructor. It performs no writes.
type PlanDeployer struct {
	config      *config.RuntimeConfig
	locator     ConfigLocator
	selector    ConfigSelector
	loader      ConfigLoader
	constructor ConstructorResolver
	progress    ProgressSink
	log         *slog.Logger
}

// NewPlanDeployer creates a new PlanDeployer use case
func NewPlanDeployer(
	cfg *config.RuntimeConfig,
	locator ConfigLocator,
	selector ConfigSelector,
	loader ConfigLoader,
	constructor ConstructorResolver,
	progress ProgressSink,
	log *slog.Logger,
) *PlanDeployer {
	return &PlanDeployer{
		config:      cfg,
		locator:     locator,
		selector:    selector,
		loader:      loader,
		constructor: constructor,
		progress:    progress,
		log:         log.With("component", "PlanDeployer"),
	}
}

// Run resolves the plan. Any failure aborts the whole run.
func (uc *PlanDeployer) Run(ctx context.Context, params PlanParams) (*DeployerPlan, error) {
	if params.Root == "" {
		return nil, fmt.Errorf("root namespace is required")
	}
	if err := domain.ValidateRoot(params.Root); err != nil {
		return nil, err
	}

	baseDir := uc.BaseDir(params.Dev)
	configDir := filepath.Join(baseDir, "script", params.Root, "config")

	// The picker owns the terminal, so the spinner starts only after it returns
	configPath, err := uc.resolveConfig(ctx, configDir, params)
	if err != nil {
		return nil, fmt.Errorf("failed to locate network config: %w", err)
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageLoadingConfig,
		Message: fmt.Sprintf("Loading %s config", params.Root),
		Spinner: true,
	})

	networkConfig, err := uc.loader.LoadNetworkConfig(ctx, configPath)
	if err != nil {
		return nil, uc.fail(ctx, fmt.Errorf("failed to load network config: %w", err))
	}
	uc.log.Debug("loaded network config", "path", configPath, "contracts", networkConfig.Names())

	plan := &DeployerPlan{
		Root:       params.Root,
		BaseDir:    baseDir,
		ConfigPath: configPath,
		Contracts:  make([]ContractPlan, 0, len(networkConfig.Contracts)),
	}

	total := len(networkConfig.Contracts)
	for i, contract := range networkConfig.Contracts {
		uc.progress.OnProgress(ctx, ProgressEvent{
			Stage:   StageLoadingArtifacts,
			Current: i + 1,
			Total:   total,
			Message: fmt.Sprintf("Loading %s artifact (%d/%d)", contract.Name, i+1, total),
			Spinner: true,
		})

		contractPlan, err := uc.planContract(ctx, baseDir, contract)
		if err != nil {
			return nil, uc.fail(ctx, err)
		}
		plan.Contracts = append(plan.Contracts, *contractPlan)
	}

	return plan, nil
}

// fail stops any running spinner before the error reaches the terminal
func (uc *PlanDeployer) fail(ctx context.Context, err error) error {
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageFailed})
	return err
}

// BaseDir returns the directory scripts and artifacts are resolved against
func (uc *PlanDeployer) BaseDir(dev bool) string {
	if dev {
		return filepath.Join(uc.config.ProjectRoot, "test")
	}
	return uc.config.ProjectRoot
}

// ArtifactPath returns the foundry artifact path for a contract
func (uc *PlanDeployer) ArtifactPath(baseDir, contract string) string {
	outDir := uc.config.ArtifactsDir
	if outDir == "" {
		outDir = "out"
	}
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(baseDir, outDir)
	}
	return filepath.Join(outDir, contract+".sol", contract+".json")
}

// resolveConfig picks the network config file, prompting only when asked to
// and there is more than one candidate
func (uc *PlanDeployer) resolveConfig(ctx context.Context, configDir string, params PlanParams) (string, error) {
	if !params.Select || params.Network != "" {
		return uc.locator.Locate(ctx, configDir, params.Network)
	}

	candidates, err := uc.locator.List(ctx, configDir)
	if err != nil {
		return "", err
	}
	switch len(candidates) {
	case 0:
		return "", fmt.Errorf("no JSON config in %s: %w", configDir, domain.ErrFileNotFound)
	case 1:
		return candidates[0], nil
	}

	return uc.selector.SelectConfig(ctx, candidates)
}

func (uc *PlanDeployer) planContract(ctx context.Context, baseDir string, contract domain.ContractConfig) (*ContractPlan, error) {
	if err := domain.ValidateIdentifier("contract", contract.Name); err != nil {
		return nil, err
	}

	artifactPath := uc.ArtifactPath(baseDir, contract.Name)

	artifact, err := uc.loader.LoadArtifact(ctx, artifactPath)
	if err != nil {
		return nil, &domain.ArtifactError{Contract: contract.Name, Path: artifactPath, Err: err}
	}

	params, err := uc.constructor.ResolveConstructor(ctx, artifact)
	if err != nil {
		return nil, &domain.ArtifactError{Contract: contract.Name, Path: artifactPath, Err: err}
	}

	partition := domain.PartitionParameters(params, contract.Values)
	unused := domain.UnusedKeys(params, contract.Values)
	if len(unused) > 0 {
		uc.progress.Info(fmt.Sprintf("%s: config keys %s match no constructor parameter",
			contract.Name, strings.Join(unused, ", ")))
	}

	uc.log.Debug("partitioned constructor",
		"contract", contract.Name,
		"static", len(partition.Static),
		"dynamic", len(partition.Dynamic),
	)

	return &ContractPlan{
		Name:         contract.Name,
		ArtifactPath: artifactPath,
		Parameters:   params,
		Values:       contract.Values,
		Partition:    partition,
		UnusedKeys:   unused,
	}, nil
}
