package usecase

import (
	"context"

	"github.com/trebuchet-org/deployergen/internal/domain"
)

// ConfigLocator resolves the network configuration file for a root namespace
type ConfigLocator interface {
	Locate(ctx context.Context, dir string, network string) (string, error)
	List(ctx context.Context, dir string) ([]string, error)
}

// ConfigSelector lets the user pick one network configuration
type ConfigSelector interface {
	SelectConfig(ctx context.Context, paths []string) (string, error)
}

// ConfigLoader reads JSON inputs from disk
type ConfigLoader interface {
	LoadNetworkConfig(ctx context.Context, path string) (*domain.NetworkConfig, error)
	LoadArtifact(ctx context.Context, path string) (*domain.Artifact, error)
}

// ConstructorResolver extracts constructor parameters from an artifact's ABI
type ConstructorResolver interface {
	ResolveConstructor(ctx context.Context, artifact *domain.Artifact) ([]domain.ConstructorParameter, error)
}

// DeployerGenerator renders deployer library source
type DeployerGenerator interface {
	GenerateFragment(ctx context.Context, contract string, params []domain.ConstructorParameter, partition domain.Partition) (domain.Fragment, error)
	GenerateLibrary(ctx context.Context, lib *domain.DeployerLibrary) (string, error)
}

// FileWriter handles file system operations for generated sources
type FileWriter interface {
	WriteFile(ctx context.Context, path string, content string) error
	EnsureDirectory(ctx context.Context, path string) error
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events. An event with Spinner unset stops
// any running spinner. Info prints a line without garbling the spinner.
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
}
