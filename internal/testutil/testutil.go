// Package testutil provides testing utilities and helpers for service tests.
package testutil

import (
	"context"
	"testing"

	"github.com/GriffinCanCode/uncertain/internal/shared/types"
	"github.com/stretchr/testify/mock"
)

// MockServiceProvider is a mock implementation of service.Provider for testing.
type MockServiceProvider struct {
	mock.Mock
}

// Definition mocks the Definition method.
func (m *MockServiceProvider) Definition() types.Service {
	args := m.Called()
	return args.Get(0).(types.Service)
}

// Execute mocks the Execute method.
func (m *MockServiceProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	args := m.Called(ctx, toolID, params, appCtx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Result), args.Error(1)
}

// NewMockServiceProvider creates a new mock service provider with default behaviors.
func NewMockServiceProvider(t *testing.T, serviceID string) *MockServiceProvider {
	t.Helper()
	m := new(MockServiceProvider)

	m.On("Definition").Return(CreateTestService(t, serviceID, types.CategoryMath)).Maybe()

	return m
}

// CreateTestService creates a test service definition.
func CreateTestService(t *testing.T, id string, category types.Category) types.Service {
	t.Helper()

	return types.Service{
		ID:           id,
		Name:         "Test Service",
		Description:  "A test service for unit testing",
		Category:     category,
		Capabilities: []string{"test"},
		Tools: []types.Tool{
			{
				ID:          id + ".test",
				Name:        "test",
				Description: "Test tool",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
		},
	}
}

// AssertSuccess is a helper to assert a successful result.
func AssertSuccess(t *testing.T, result *types.Result) {
	t.Helper()
	if result == nil {
		t.Fatal("Result is nil")
	}
	if !result.Success {
		msg := "<nil>"
		if result.Error != nil {
			msg = *result.Error
		}
		t.Fatalf("Expected success, got error: %s", msg)
	}
}

// AssertError is a helper to assert an error result.
func AssertError(t *testing.T, result *types.Result) {
	t.Helper()
	if result == nil {
		t.Fatal("Result is nil")
	}
	if result.Success {
		t.Fatal("Expected error, got success")
	}
	if result.Error == nil {
		t.Fatal("Expected error message, got nil")
	}
}

// AssertQuantity asserts a successful result carrying value and uncertainty within delta.
func AssertQuantity(t *testing.T, result *types.Result, value, unc, delta float64) {
	t.Helper()
	AssertSuccess(t, result)

	gotValue, ok := result.Data["value"].(float64)
	if !ok {
		t.Fatalf("value missing from result data: %v", result.Data)
	}
	gotUnc, ok := result.Data["uncertainty"].(float64)
	if !ok {
		t.Fatalf("uncertainty missing from result data: %v", result.Data)
	}
	if diff := gotValue - value; diff > delta || diff < -delta {
		t.Fatalf("value: expected %v, got %v", value, gotValue)
	}
	if diff := gotUnc - unc; diff > delta || diff < -delta {
		t.Fatalf("uncertainty: expected %v, got %v", unc, gotUnc)
	}
}
