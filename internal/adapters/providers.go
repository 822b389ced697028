package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/scilla-check/internal/adapters/blockchain"
	"github.com/trebuchet-org/scilla-check/internal/adapters/fs"
	"github.com/trebuchet-org/scilla-check/internal/adapters/progress"
	"github.com/trebuchet-org/scilla-check/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewSuiteLoaderAdapter,
	wire.Bind(new(usecase.SuiteLoader), new(*fs.SuiteLoaderAdapter)),

	fs.NewReceiptReaderAdapter,
	wire.Bind(new(usecase.ReceiptReader), new(*fs.ReceiptReaderAdapter)),

	fs.NewArgsLoaderAdapter,
	wire.Bind(new(usecase.ArgsLoader), new(*fs.ArgsLoaderAdapter)),

	fs.NewFixtureLoaderAdapter,
	wire.Bind(new(usecase.FixtureLoader), new(*fs.FixtureLoaderAdapter)),

	fs.NewParamsWriterAdapter,
	wire.Bind(new(usecase.ParamsWriter), new(*fs.ParamsWriterAdapter)),

	fs.NewLocalConfigStoreAdapter,
	wire.Bind(new(usecase.LocalConfigStore), new(*fs.LocalConfigStoreAdapter)),
)

// BlockchainSet provides the node client
var BlockchainSet = wire.NewSet(
	blockchain.NewNodeAdapter,
	wire.Bind(new(usecase.ReceiptSource), new(*blockchain.NodeAdapter)),
	wire.Bind(new(usecase.BlockClient), new(*blockchain.NodeAdapter)),

	blockchain.NewProber,
	wire.Bind(new(usecase.NetworkProber), new(*blockchain.Prober)),
)

// ProgressSet provides the progress sink
var ProgressSet = wire.NewSet(
	progress.NewSink,
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	BlockchainSet,
	ProgressSet,
)
