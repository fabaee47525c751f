package adapters

import (
	"io"
	"os"

	"github.com/google/wire"
	"github.com/trebuchet-org/deployergen/internal/adapters/abi"
	"github.com/trebuchet-org/deployergen/internal/adapters/fs"
	"github.com/trebuchet-org/deployergen/internal/adapters/interactive"
	"github.com/trebuchet-org/deployergen/internal/adapters/progress"
	"github.com/trebuchet-org/deployergen/internal/adapters/template"
	"github.com/trebuchet-org/deployergen/internal/domain/config"
	"github.com/trebuchet-org/deployergen/internal/usecase"
)

// ProvideProgressSink picks the spinner for interactive runs and plain lines otherwise
func ProvideProgressSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.NonInteractive {
		return progress.NewLineSink(os.Stderr)
	}
	return progress.NewSpinnerSink(os.Stderr)
}

// ProvideOutput provides the writer results are rendered to
func ProvideOutput() io.Writer {
	return os.Stdout
}

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewConfigLocatorAdapter,
	wire.Bind(new(usecase.ConfigLocator), new(*fs.ConfigLocatorAdapter)),

	fs.NewConfigLoaderAdapter,
	wire.Bind(new(usecase.ConfigLoader), new(*fs.ConfigLoaderAdapter)),

	fs.NewFileWriterAdapter,
	wire.Bind(new(usecase.FileWriter), new(*fs.FileWriterAdapter)),
)

// ABISet provides ABI-based implementations
var ABISet = wire.NewSet(
	abi.NewConstructorResolverAdapter,
	wire.Bind(new(usecase.ConstructorResolver), new(*abi.ConstructorResolverAdapter)),
)

// TemplateSet provides template-based implementations
var TemplateSet = wire.NewSet(
	template.NewDeployerGeneratorAdapter,
	wire.Bind(new(usecase.DeployerGenerator), new(*template.DeployerGeneratorAdapter)),
)

// InteractiveSet provides prompt-based implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.ConfigSelector), new(*interactive.SelectorAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	ProvideProgressSink,
	ProvideOutput,

	FSSet,
	ABISet,
	TemplateSet,
	InteractiveSet,
)
