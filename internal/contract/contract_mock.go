package contract

import (
	"context"

	"github.com/huangsam/repulse/schema"
	"github.com/stretchr/testify/mock"
)

// MockSeriesLoader is a mock implementation of SeriesLoader for testing.
type MockSeriesLoader struct {
	mock.Mock
}

var _ SeriesLoader = &MockSeriesLoader{} // Compile-time check

// LoadSeries implements the SeriesLoader interface.
func (m *MockSeriesLoader) LoadSeries(ctx context.Context) (schema.TrafficSeries, error) {
	args := m.Called(ctx)
	series, _ := args.Get(0).(schema.TrafficSeries)
	return series, args.Error(1)
}

// GetStatus implements the SeriesLoader interface.
func (m *MockSeriesLoader) GetStatus(ctx context.Context) (schema.SeriesStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).(schema.SeriesStatus), args.Error(1)
}

// Close implements the SeriesLoader interface.
func (m *MockSeriesLoader) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockChartRenderer is a mock implementation of ChartRenderer for testing.
type MockChartRenderer struct {
	mock.Mock
}

var _ ChartRenderer = &MockChartRenderer{} // Compile-time check

// Render implements the ChartRenderer interface.
func (m *MockChartRenderer) Render(plan schema.ChartPlan, path string) error {
	args := m.Called(plan, path)
	return args.Error(0)
}

// MockCompositor is a mock implementation of Compositor for testing.
type MockCompositor struct {
	mock.Mock
}

var _ Compositor = &MockCompositor{} // Compile-time check

// Compose implements the Compositor interface.
func (m *MockCompositor) Compose(paths []string, outPath string) (schema.CompositeLayout, error) {
	args := m.Called(paths, outPath)
	return args.Get(0).(schema.CompositeLayout), args.Error(1)
}
