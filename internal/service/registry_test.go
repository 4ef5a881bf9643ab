package service

import (
	"context"
	"testing"

	"github.com/GriffinCanCode/uncertain/internal/shared/types"
	"github.com/GriffinCanCode/uncertain/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	r := NewRegistry()
	p := testutil.NewMockServiceProvider(t, "test")

	require.NoError(t, r.Register(p))

	_, ok := r.Get("test")
	assert.True(t, ok, "service should be registered")

	assert.Error(t, r.Register(p), "duplicate registration should fail")
}

func TestRegisterEmptyID(t *testing.T) {
	r := NewRegistry()
	p := testutil.NewMockServiceProvider(t, "")

	assert.Error(t, r.Register(p))
}

func TestList(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(testutil.NewMockServiceProvider(t, "b")))
	require.NoError(t, r.Register(testutil.NewMockServiceProvider(t, "a")))

	services := r.List(nil)
	require.Len(t, services, 2)
	assert.Equal(t, "a", services[0].ID)
	assert.Equal(t, "b", services[1].ID)

	cat := types.CategoryMath
	assert.Len(t, r.List(&cat), 2)

	other := types.CategoryUncertainty
	assert.Empty(t, r.List(&other))
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	p := testutil.NewMockServiceProvider(t, "test")
	p.On("Execute", mock.Anything, "test.test", mock.Anything, mock.Anything).
		Return(&types.Result{Success: true, Data: map[string]interface{}{"result": "success"}}, nil)
	require.NoError(t, r.Register(p))

	ctx := context.Background()
	result, err := r.Execute(ctx, "test.test", map[string]interface{}{}, nil)
	require.NoError(t, err)
	testutil.AssertSuccess(t, result)
	p.AssertExpectations(t)
}

func TestExecuteUnknown(t *testing.T) {
	r := NewRegistry()
	ctx := context.Background()

	result, err := r.Execute(ctx, "missing.tool", nil, nil)
	assert.Error(t, err)
	testutil.AssertError(t, result)

	result, err = r.Execute(ctx, "notool", nil, nil)
	assert.Error(t, err)
	testutil.AssertError(t, result)
}

func TestStats(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(testutil.NewMockServiceProvider(t, "test1")))
	require.NoError(t, r.Register(testutil.NewMockServiceProvider(t, "test2")))

	stats := r.Stats()
	assert.Equal(t, 2, stats["total_services"])
	assert.Equal(t, 2, stats["total_tools"])
}
