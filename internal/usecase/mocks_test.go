package usecase_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/deployergen/internal/domain"
	"github.com/trebuchet-org/deployergen/internal/usecase"
)

// MockConfigLocator is a mock implementation of ConfigLocator
type MockConfigLocator struct {
	mock.Mock
}

func (m *MockConfigLocator) Locate(ctx context.Context, dir string, network string) (string, error) {
	args := m.Called(ctx, dir, network)
	return args.String(0), args.Error(1)
}

func (m *MockConfigLocator) List(ctx context.Context, dir string) ([]string, error) {
	args := m.Called(ctx, dir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockConfigSelector is a mock implementation of ConfigSelector
type MockConfigSelector struct {
	mock.Mock
}

func (m *MockConfigSelector) SelectConfig(ctx context.Context, paths []string) (string, error) {
	args := m.Called(ctx, paths)
	return args.String(0), args.Error(1)
}

// MockConfigLoader is a mock implementation of ConfigLoader
type MockConfigLoader struct {
	mock.Mock
}

func (m *MockConfigLoader) LoadNetworkConfig(ctx context.Context, path string) (*domain.NetworkConfig, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NetworkConfig), args.Error(1)
}

func (m *MockConfigLoader) LoadArtifact(ctx context.Context, path string) (*domain.Artifact, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artifact), args.Error(1)
}

// MockConstructorResolver is a mock implementation of ConstructorResolver
type MockConstructorResolver struct {
	mock.Mock
}

func (m *MockConstructorResolver) ResolveConstructor(ctx context.Context, artifact *domain.Artifact) ([]domain.ConstructorParameter, error) {
	args := m.Called(ctx, artifact)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConstructorParameter), args.Error(1)
}

// MockFileWriter is a mock implementation of FileWriter
type MockFileWriter struct {
	mock.Mock
}

func (m *MockFileWriter) WriteFile(ctx context.Context, path string, content string) error {
	args := m.Called(ctx, path, content)
	return args.Error(0)
}

func (m *MockFileWriter) EnsureDirectory(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

// MockProgressSink records progress events and info lines
type MockProgressSink struct {
	events []usecase.ProgressEvent
	infos  []string
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(message string) {
	m.infos = append(m.infos, message)
}

// spinning reports whether the last event left a spinner running
func (m *MockProgressSink) spinning() bool {
	if len(m.events) == 0 {
		return false
	}
	last := m.events[len(m.events)-1]
	return last.Spinner && last.Stage != usecase.StageCompleted
}

func (m *MockProgressSink) stages() []string {
	stages := make([]string, 0, len(m.events))
	for _, e := range m.events {
		stages = append(stages, e.Stage)
	}
	return stages
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
