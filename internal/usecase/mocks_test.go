package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/scilla-check/internal/domain/config"
	"github.com/trebuchet-org/scilla-check/internal/domain/models"
	"github.com/trebuchet-org/scilla-check/internal/domain/scilla"
	"github.com/trebuchet-org/scilla-check/internal/usecase"
)

// MockSuiteLoader is a mock implementation of SuiteLoader
type MockSuiteLoader struct {
	mock.Mock
}

func (m *MockSuiteLoader) LoadSuite(ctx context.Context, path string) (*models.Suite, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Suite), args.Error(1)
}

func (m *MockSuiteLoader) FindSuites(ctx context.Context, dir string) ([]string, error) {
	args := m.Called(ctx, dir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockFixtureLoader is a mock implementation of FixtureLoader
type MockFixtureLoader struct {
	mock.Mock
}

func (m *MockFixtureLoader) LoadFixture(ctx context.Context, path string) (*models.Fixture, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Fixture), args.Error(1)
}

// MockReceiptSource is a mock implementation of ReceiptSource
type MockReceiptSource struct {
	mock.Mock
}

func (m *MockReceiptSource) GetReceipt(ctx context.Context, txID string) (*models.Receipt, error) {
	args := m.Called(ctx, txID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Receipt), args.Error(1)
}

// MockReceiptReader is a mock implementation of ReceiptReader
type MockReceiptReader struct {
	mock.Mock
}

func (m *MockReceiptReader) ReadReceipt(ctx context.Context, path string) (*models.Receipt, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Receipt), args.Error(1)
}

// MockArgsLoader is a mock implementation of ArgsLoader
type MockArgsLoader struct {
	mock.Mock
}

func (m *MockArgsLoader) LoadArgs(ctx context.Context, path string) (scilla.Args, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(scilla.Args), args.Error(1)
}

// MockBlockClient is a mock implementation of BlockClient
type MockBlockClient struct {
	mock.Mock
}

func (m *MockBlockClient) BlockNumber(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockBlockClient) IncreaseBlockNumber(ctx context.Context, delta uint64) error {
	args := m.Called(ctx, delta)
	return args.Error(0)
}

// MockParamsWriter is a mock implementation of ParamsWriter
type MockParamsWriter struct {
	mock.Mock
}

func (m *MockParamsWriter) WriteParams(ctx context.Context, path string, params []scilla.Param) error {
	args := m.Called(ctx, path, params)
	return args.Error(0)
}

// MockLocalConfigStore is a mock implementation of LocalConfigStore
type MockLocalConfigStore struct {
	mock.Mock
}

func (m *MockLocalConfigStore) Exists() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockLocalConfigStore) Load(ctx context.Context) (*config.LocalConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*config.LocalConfig), args.Error(1)
}

func (m *MockLocalConfigStore) Save(ctx context.Context, cfg *config.LocalConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

func (m *MockLocalConfigStore) GetPath() string {
	args := m.Called()
	return args.String(0)
}

// MockNetworkResolver is a mock implementation of NetworkResolver
type MockNetworkResolver struct {
	mock.Mock
}

func (m *MockNetworkResolver) Names() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockNetworkResolver) Resolve(name string) (*config.Network, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*config.Network), args.Error(1)
}

// MockNetworkProber is a mock implementation of NetworkProber
type MockNetworkProber struct {
	mock.Mock
}

func (m *MockNetworkProber) Probe(ctx context.Context, network *config.Network) (uint64, error) {
	args := m.Called(ctx, network)
	return args.Get(0).(uint64), args.Error(1)
}

// MockProgressSink records progress events and messages
type MockProgressSink struct {
	events []usecase.ProgressEvent
	infos  []string
	errors []string
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(message string)  { m.infos = append(m.infos, message) }
func (m *MockProgressSink) Error(message string) { m.errors = append(m.errors, message) }
