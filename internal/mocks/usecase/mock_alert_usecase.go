package usecase

import (
	context "context"
	mock "github.com/stretchr/testify/mock"
	entity "restops/internal/domain/entity"
	usecase "restops/internal/usecase"
)

// MockAlertUsecase is an autogenerated mock type for the AlertUsecase type
type MockAlertUsecase struct {
	mock.Mock
}

type MockAlertUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAlertUsecase) EXPECT() *MockAlertUsecase_Expecter {
	return &MockAlertUsecase_Expecter{mock: &_m.Mock}
}

// EmergencyAlert provides a mock function with given fields: ctx, sender, input
func (_m *MockAlertUsecase) EmergencyAlert(ctx context.Context, sender entity.Principal, input usecase.EmergencyAlertInput) (int, error) {
	ret := _m.Called(ctx, sender, input)

	if len(ret) == 0 {
		panic("no return value specified for EmergencyAlert")
	}

	var r0 int
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, usecase.EmergencyAlertInput) (int, error)); ok {
		return rf(ctx, sender, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, usecase.EmergencyAlertInput) int); ok {
		r0 = rf(ctx, sender, input)
	} else {
		r0 = ret.Get(0).(int)
	}

	if rf, ok := ret.Get(1).(func(context.Context, entity.Principal, usecase.EmergencyAlertInput) error); ok {
		r1 = rf(ctx, sender, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAlertUsecase_EmergencyAlert_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'EmergencyAlert'
type MockAlertUsecase_EmergencyAlert_Call struct {
	*mock.Call
}

// EmergencyAlert is a helper method to define mock.On call
//   - ctx context.Context
//   - sender entity.Principal
//   - input usecase.EmergencyAlertInput
func (_e *MockAlertUsecase_Expecter) EmergencyAlert(ctx interface{}, sender interface{}, input interface{}) *MockAlertUsecase_EmergencyAlert_Call {
	return &MockAlertUsecase_EmergencyAlert_Call{Call: _e.mock.On("EmergencyAlert", ctx, sender, input)}
}

func (_c *MockAlertUsecase_EmergencyAlert_Call) Run(run func(ctx context.Context, sender entity.Principal, input usecase.EmergencyAlertInput)) *MockAlertUsecase_EmergencyAlert_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.Principal), args[2].(usecase.EmergencyAlertInput))
	})
	return _c
}

func (_c *MockAlertUsecase_EmergencyAlert_Call) Return(_a0 int, _a1 error) *MockAlertUsecase_EmergencyAlert_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAlertUsecase_EmergencyAlert_Call) RunAndReturn(run func(context.Context, entity.Principal, usecase.EmergencyAlertInput) (int, error)) *MockAlertUsecase_EmergencyAlert_Call {
	_c.Call.Return(run)
	return _c
}

// InventoryAlert provides a mock function with given fields: ctx, sender, input
func (_m *MockAlertUsecase) InventoryAlert(ctx context.Context, sender entity.Principal, input usecase.InventoryAlertInput) (int, error) {
	ret := _m.Called(ctx, sender, input)

	if len(ret) == 0 {
		panic("no return value specified for InventoryAlert")
	}

	var r0 int
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, usecase.InventoryAlertInput) (int, error)); ok {
		return rf(ctx, sender, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, usecase.InventoryAlertInput) int); ok {
		r0 = rf(ctx, sender, input)
	} else {
		r0 = ret.Get(0).(int)
	}

	if rf, ok := ret.Get(1).(func(context.Context, entity.Principal, usecase.InventoryAlertInput) error); ok {
		r1 = rf(ctx, sender, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAlertUsecase_InventoryAlert_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'InventoryAlert'
type MockAlertUsecase_InventoryAlert_Call struct {
	*mock.Call
}

// InventoryAlert is a helper method to define mock.On call
//   - ctx context.Context
//   - sender entity.Principal
//   - input usecase.InventoryAlertInput
func (_e *MockAlertUsecase_Expecter) InventoryAlert(ctx interface{}, sender interface{}, input interface{}) *MockAlertUsecase_InventoryAlert_Call {
	return &MockAlertUsecase_InventoryAlert_Call{Call: _e.mock.On("InventoryAlert", ctx, sender, input)}
}

func (_c *MockAlertUsecase_InventoryAlert_Call) Run(run func(ctx context.Context, sender entity.Principal, input usecase.InventoryAlertInput)) *MockAlertUsecase_InventoryAlert_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.Principal), args[2].(usecase.InventoryAlertInput))
	})
	return _c
}

func (_c *MockAlertUsecase_InventoryAlert_Call) Return(_a0 int, _a1 error) *MockAlertUsecase_InventoryAlert_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAlertUsecase_InventoryAlert_Call) RunAndReturn(run func(context.Context, entity.Principal, usecase.InventoryAlertInput) (int, error)) *MockAlertUsecase_InventoryAlert_Call {
	_c.Call.Return(run)
	return _c
}

// OrderStatusChanged provides a mock function with given fields: ctx, sender, input
func (_m *MockAlertUsecase) OrderStatusChanged(ctx context.Context, sender entity.Principal, input usecase.OrderStatusInput) (int, error) {
	ret := _m.Called(ctx, sender, input)

	if len(ret) == 0 {
		panic("no return value specified for OrderStatusChanged")
	}

	var r0 int
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, usecase.OrderStatusInput) (int, error)); ok {
		return rf(ctx, sender, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, usecase.OrderStatusInput) int); ok {
		r0 = rf(ctx, sender, input)
	} else {
		r0 = ret.Get(0).(int)
	}

	if rf, ok := ret.Get(1).(func(context.Context, entity.Principal, usecase.OrderStatusInput) error); ok {
		r1 = rf(ctx, sender, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAlertUsecase_OrderStatusChanged_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'OrderStatusChanged'
type MockAlertUsecase_OrderStatusChanged_Call struct {
	*mock.Call
}

// OrderStatusChanged is a helper method to define mock.On call
//   - ctx context.Context
//   - sender entity.Principal
//   - input usecase.OrderStatusInput
func (_e *MockAlertUsecase_Expecter) OrderStatusChanged(ctx interface{}, sender interface{}, input interface{}) *MockAlertUsecase_OrderStatusChanged_Call {
	return &MockAlertUsecase_OrderStatusChanged_Call{Call: _e.mock.On("OrderStatusChanged", ctx, sender, input)}
}

func (_c *MockAlertUsecase_OrderStatusChanged_Call) Run(run func(ctx context.Context, sender entity.Principal, input usecase.OrderStatusInput)) *MockAlertUsecase_OrderStatusChanged_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.Principal), args[2].(usecase.OrderStatusInput))
	})
	return _c
}

func (_c *MockAlertUsecase_OrderStatusChanged_Call) Return(_a0 int, _a1 error) *MockAlertUsecase_OrderStatusChanged_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAlertUsecase_OrderStatusChanged_Call) RunAndReturn(run func(context.Context, entity.Principal, usecase.OrderStatusInput) (int, error)) *MockAlertUsecase_OrderStatusChanged_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockAlertUsecase creates a new instance of MockAlertUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAlertUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAlertUsecase {
	mock := &MockAlertUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
