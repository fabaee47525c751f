package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/deployergen/internal/domain"
	"github.com/trebuchet-org/deployergen/internal/domain/config"
	"github.com/trebuchet-org/deployergen/internal/usecase"
)

const projectRoot = "/project"

type planFixture struct {
	cfg         *config.RuntimeConfig
	locator     *MockConfigLocator
	selector    *MockConfigSelector
	loader      *MockConfigLoader
	constructor *MockConstructorResolver
	progress    *MockProgressSink
}

func newPlanFixture() *planFixture {
	return &planFixture{
		cfg: &config.RuntimeConfig{
			ProjectRoot:  projectRoot,
			ArtifactsDir: "out",
			Generator: config.GeneratorConfig{
				LibraryName:   "Deployer",
				Pragma:        "^0.8.0",
				ConfigSource:  "src/Config.sol",
				ConfigLibrary: "Config",
				ConfigLookup:  "getChainConfig",
				DeployHelper:  "_deploy",
				NetworkID:     "block.chainid",
				VMImport:      "forge-std/Vm.sol",
				OutputName:    "Deployer.sol",
			},
		},
		locator:     new(MockConfigLocator),
		selector:    new(MockConfigSelector),
		loader:      new(MockConfigLoader),
		constructor: new(MockConstructorResolver),
		progress:    new(MockProgressSink),
	}
}

func (f *planFixture) planner() *usecase.PlanDeployer {
	return usecase.NewPlanDeployer(f.cfg, f.locator, f.selector, f.loader, f.constructor, f.progress, discardLogger())
}

// expectContract wires the loader and resolver mocks for one contract
func (f *planFixture) expectContract(baseDir, name string, params []domain.ConstructorParameter) {
	path := filepath.Join(baseDir, "out", name+".sol", name+".json")
	artifact := &domain.Artifact{Path: path, ABI: json.RawMessage(`[]`)}
	f.loader.On("LoadArtifact", mock.Anything, path).Return(artifact, nil).Once()
	f.constructor.On("ResolveConstructor", mock.Anything, artifact).Return(params, nil).Once()
}

func rawValues(kv ...string) domain.FieldValues {
	v := domain.FieldValues{}
	for i := 0; i+1 < len(kv); i += 2 {
		v[kv[i]] = json.RawMessage(kv[i+1])
	}
	return v
}

func TestPlanDeployer(t *testing.T) {
	ctx := context.Background()

	t.Run("plans contracts in document order", func(t *testing.T) {
		f := newPlanFixture()
		configDir := filepath.Join(projectRoot, "script", "token", "config")
		configPath := filepath.Join(configDir, "31337.json")

		f.locator.On("Locate", mock.Anything, configDir, "").Return(configPath, nil)
		f.loader.On("LoadNetworkConfig", mock.Anything, configPath).Return(&domain.NetworkConfig{
			Path: configPath,
			Contracts: []domain.ContractConfig{
				{Name: "Token", Values: rawValues("_token", `"0xABC"`, "_extra", `1`)},
				{Name: "Vault", Values: domain.FieldValues{}},
			},
		}, nil)

		f.expectContract(projectRoot, "Token", []domain.ConstructorParameter{
			{Name: "_x", Type: "uint256"},
			{Name: "_token", Type: "address"},
			{Name: "_y", Type: "uint256"},
		})
		f.expectContract(projectRoot, "Vault", []domain.ConstructorParameter{
			{Name: "_owner", Type: "address"},
		})

		plan, err := f.planner().Run(ctx, usecase.PlanParams{Root: "token"})
		require.NoError(t, err)

		assert.Equal(t, "token", plan.Root)
		assert.Equal(t, projectRoot, plan.BaseDir)
		assert.Equal(t, configPath, plan.ConfigPath)
		require.Len(t, plan.Contracts, 2)

		token := plan.Contracts[0]
		assert.Equal(t, "Token", token.Name)
		assert.Equal(t, filepath.Join(projectRoot, "out", "Token.sol", "Token.json"), token.ArtifactPath)
		assert.Equal(t, []domain.StaticParam{{Type: "address", Name: "_token"}}, token.Partition.Static)
		require.Len(t, token.Partition.Dynamic, 2)
		assert.Equal(t, "_x", token.Partition.Dynamic[0].Name)
		assert.Equal(t, "_y", token.Partition.Dynamic[1].Name)
		assert.Equal(t, []string{"_x", "_token", "_y"}, token.Partition.ArgNames)
		assert.Equal(t, []string{"_extra"}, token.UnusedKeys)
		assert.Equal(t, []string{"Token: config keys _extra match no constructor parameter"}, f.progress.infos)

		vault := plan.Contracts[1]
		assert.Equal(t, "Vault", vault.Name)
		assert.Empty(t, vault.Partition.Static)
		assert.Len(t, vault.Partition.Dynamic, 1)
		assert.Empty(t, vault.UnusedKeys)

		assert.Equal(t, []string{
			usecase.StageLoadingConfig,
			usecase.StageLoadingArtifacts,
			usecase.StageLoadingArtifacts,
		}, f.progress.stages())

		f.locator.AssertExpectations(t)
		f.loader.AssertExpectations(t)
		f.constructor.AssertExpectations(t)
	})

	t.Run("dev mode resolves under test directory", func(t *testing.T) {
		f := newPlanFixture()
		baseDir := filepath.Join(projectRoot, "test")
		configDir := filepath.Join(baseDir, "script", "token", "config")
		configPath := filepath.Join(configDir, "31337.json")

		f.locator.On("Locate", mock.Anything, configDir, "31337").Return(configPath, nil)
		f.loader.On("LoadNetworkConfig", mock.Anything, configPath).Return(&domain.NetworkConfig{
			Path:      configPath,
			Contracts: []domain.ContractConfig{{Name: "Token", Values: domain.FieldValues{}}},
		}, nil)
		f.expectContract(baseDir, "Token", []domain.ConstructorParameter{})

		plan, err := f.planner().Run(ctx, usecase.PlanParams{Root: "token", Dev: true, Network: "31337"})
		require.NoError(t, err)
		assert.Equal(t, baseDir, plan.BaseDir)
		assert.Equal(t, filepath.Join(baseDir, "out", "Token.sol", "Token.json"), plan.Contracts[0].ArtifactPath)
	})

	t.Run("root is required", func(t *testing.T) {
		f := newPlanFixture()

		_, err := f.planner().Run(ctx, usecase.PlanParams{})
		require.Error(t, err)
		f.locator.AssertNotCalled(t, "Locate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing config aborts", func(t *testing.T) {
		f := newPlanFixture()
		f.locator.On("Locate", mock.Anything, mock.Anything, "").
			Return("", fmt.Errorf("config directory: %w", domain.ErrFileNotFound))

		_, err := f.planner().Run(ctx, usecase.PlanParams{Root: "token"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrFileNotFound)
	})

	t.Run("malformed config aborts", func(t *testing.T) {
		f := newPlanFixture()
		f.locator.On("Locate", mock.Anything, mock.Anything, "").Return("/project/script/token/config/1.json", nil)
		f.loader.On("LoadNetworkConfig", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("1.json: %w", domain.ErrJSONParse))

		_, err := f.planner().Run(ctx, usecase.PlanParams{Root: "token"})
		assert.ErrorIs(t, err, domain.ErrJSONParse)
		assert.Equal(t, usecase.StageFailed, f.progress.stages()[len(f.progress.events)-1])
		assert.False(t, f.progress.spinning())
	})

	t.Run("root must be usable as a string literal", func(t *testing.T) {
		for _, root := range []string{`to"ken`, `to\ken`, "../token", "to ken"} {
			f := newPlanFixture()

			_, err := f.planner().Run(ctx, usecase.PlanParams{Root: root})
			require.Error(t, err, root)
			assert.ErrorIs(t, err, domain.ErrInvalidName)
			f.locator.AssertNotCalled(t, "Locate", mock.Anything, mock.Anything, mock.Anything)
			assert.Empty(t, f.progress.events)
		}
	})

	t.Run("contract name must be an identifier", func(t *testing.T) {
		f := newPlanFixture()
		configPath := "/project/script/token/config/1.json"
		f.locator.On("Locate", mock.Anything, mock.Anything, "").Return(configPath, nil)
		f.loader.On("LoadNetworkConfig", mock.Anything, configPath).Return(&domain.NetworkConfig{
			Contracts: []domain.ContractConfig{{Name: `To"ken`, Values: domain.FieldValues{}}},
		}, nil)

		_, err := f.planner().Run(ctx, usecase.PlanParams{Root: "token"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidName)
		assert.Contains(t, err.Error(), `"To\"ken"`)
		f.loader.AssertNotCalled(t, "LoadArtifact", mock.Anything, mock.Anything)
		assert.False(t, f.progress.spinning())
	})

	t.Run("missing artifact aborts the whole run", func(t *testing.T) {
		f := newPlanFixture()
		configPath := "/project/script/token/config/1.json"
		f.locator.On("Locate", mock.Anything, mock.Anything, "").Return(configPath, nil)
		f.loader.On("LoadNetworkConfig", mock.Anything, configPath).Return(&domain.NetworkConfig{
			Contracts: []domain.ContractConfig{
				{Name: "Missing", Values: domain.FieldValues{}},
				{Name: "Token", Values: domain.FieldValues{}},
			},
		}, nil)
		missingPath := filepath.Join(projectRoot, "out", "Missing.sol", "Missing.json")
		f.loader.On("LoadArtifact", mock.Anything, missingPath).
			Return(nil, fmt.Errorf("%s: %w", missingPath, domain.ErrFileNotFound))

		_, err := f.planner().Run(ctx, usecase.PlanParams{Root: "token"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrFileNotFound)

		var artifactErr *domain.ArtifactError
		require.True(t, errors.As(err, &artifactErr))
		assert.Equal(t, "Missing", artifactErr.Contract)
		assert.Equal(t, missingPath, artifactErr.Path)

		f.loader.AssertNotCalled(t, "LoadArtifact", mock.Anything, filepath.Join(projectRoot, "out", "Token.sol", "Token.json"))
	})

	t.Run("missing constructor aborts", func(t *testing.T) {
		f := newPlanFixture()
		configPath := "/project/script/token/config/1.json"
		f.locator.On("Locate", mock.Anything, mock.Anything, "").Return(configPath, nil)
		f.loader.On("LoadNetworkConfig", mock.Anything, configPath).Return(&domain.NetworkConfig{
			Contracts: []domain.ContractConfig{{Name: "Lib", Values: domain.FieldValues{}}},
		}, nil)
		artifact := &domain.Artifact{ABI: json.RawMessage(`[]`)}
		f.loader.On("LoadArtifact", mock.Anything, mock.Anything).Return(artifact, nil)
		f.constructor.On("ResolveConstructor", mock.Anything, artifact).Return(nil, domain.ErrMissingConstructor)

		_, err := f.planner().Run(ctx, usecase.PlanParams{Root: "token"})
		assert.ErrorIs(t, err, domain.ErrMissingConstructor)
	})
}

func TestPlanDeployerSelectConfig(t *testing.T) {
	ctx := context.Background()
	configDir := filepath.Join(projectRoot, "script", "token", "config")
	candidates := []string{
		filepath.Join(configDir, "1.json"),
		filepath.Join(configDir, "31337.json"),
	}
	emptyConfig := &domain.NetworkConfig{Contracts: []domain.ContractConfig{}}

	t.Run("prompts between candidates", func(t *testing.T) {
		f := newPlanFixture()
		f.locator.On("List", mock.Anything, configDir).Return(candidates, nil)
		f.selector.On("SelectConfig", mock.Anything, candidates).Return(candidates[1], nil)
		f.loader.On("LoadNetworkConfig", mock.Anything, candidates[1]).Return(emptyConfig, nil)

		plan, err := f.planner().Run(ctx, usecase.PlanParams{Root: "token", Select: true})
		require.NoError(t, err)
		assert.Equal(t, candidates[1], plan.ConfigPath)
		f.locator.AssertNotCalled(t, "Locate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("picker runs before any spinner starts", func(t *testing.T) {
		f := newPlanFixture()
		f.locator.On("List", mock.Anything, configDir).Return(candidates, nil)
		f.selector.On("SelectConfig", mock.Anything, candidates).
			Run(func(mock.Arguments) {
				assert.False(t, f.progress.spinning(), "spinner active while the picker owns the terminal")
				assert.Empty(t, f.progress.events)
			}).
			Return(candidates[0], nil)
		f.loader.On("LoadNetworkConfig", mock.Anything, candidates[0]).Return(emptyConfig, nil)

		_, err := f.planner().Run(ctx, usecase.PlanParams{Root: "token", Select: true})
		require.NoError(t, err)
		f.selector.AssertExpectations(t)
		assert.Equal(t, []string{usecase.StageLoadingConfig}, f.progress.stages())
	})

	t.Run("single candidate needs no prompt", func(t *testing.T) {
		f := newPlanFixture()
		f.locator.On("List", mock.Anything, configDir).Return(candidates[:1], nil)
		f.loader.On("LoadNetworkConfig", mock.Anything, candidates[0]).Return(emptyConfig, nil)

		plan, err := f.planner().Run(ctx, usecase.PlanParams{Root: "token", Select: true})
		require.NoError(t, err)
		assert.Equal(t, candidates[0], plan.ConfigPath)
		f.selector.AssertNotCalled(t, "SelectConfig", mock.Anything, mock.Anything)
	})

	t.Run("no candidates", func(t *testing.T) {
		f := newPlanFixture()
		f.locator.On("List", mock.Anything, configDir).Return([]string{}, nil)

		_, err := f.planner().Run(ctx, usecase.PlanParams{Root: "token", Select: true})
		assert.ErrorIs(t, err, domain.ErrFileNotFound)
	})

	t.Run("explicit network wins over select", func(t *testing.T) {
		f := newPlanFixture()
		f.locator.On("Locate", mock.Anything, configDir, "1").Return(candidates[0], nil)
		f.loader.On("LoadNetworkConfig", mock.Anything, candidates[0]).Return(emptyConfig, nil)

		_, err := f.planner().Run(ctx, usecase.PlanParams{Root: "token", Network: "1", Select: true})
		require.NoError(t, err)
		f.locator.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("cancelled selection aborts", func(t *testing.T) {
		f := newPlanFixture()
		f.locator.On("List", mock.Anything, configDir).Return(candidates, nil)
		f.selector.On("SelectConfig", mock.Anything, candidates).Return("", errors.New("selection cancelled"))

		_, err := f.planner().Run(ctx, usecase.PlanParams{Root: "token", Select: true})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "selection cancelled")
		assert.Empty(t, f.progress.events)
	})
}

func TestPlanDeployerArtifactPath(t *testing.T) {
	f := newPlanFixture()

	assert.Equal(t, "/project/out/Token.sol/Token.json", filepath.ToSlash(f.planner().ArtifactPath(projectRoot, "Token")))

	f.cfg.ArtifactsDir = "/abs/artifacts"
	assert.Equal(t, "/abs/artifacts/Token.sol/Token.json", filepath.ToSlash(f.planner().ArtifactPath(projectRoot, "Token")))

	f.cfg.ArtifactsDir = ""
	assert.Equal(t, "/project/test/out/Token.sol/Token.json", filepath.ToSlash(f.planner().ArtifactPath("/project/test", "Token")))
}
