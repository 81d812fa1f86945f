package usecase

import (
	context "context"
	mock "github.com/stretchr/testify/mock"
	entity "restops/internal/domain/entity"
	usecase "restops/internal/usecase"
)

// MockDispatchUsecase is an autogenerated mock type for the DispatchUsecase type
type MockDispatchUsecase struct {
	mock.Mock
}

type MockDispatchUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockDispatchUsecase) EXPECT() *MockDispatchUsecase_Expecter {
	return &MockDispatchUsecase_Expecter{mock: &_m.Mock}
}

// SendBroadcast provides a mock function with given fields: ctx, sender, input
func (_m *MockDispatchUsecase) SendBroadcast(ctx context.Context, sender entity.Principal, input usecase.BroadcastInput) (*usecase.SendResult, error) {
	ret := _m.Called(ctx, sender, input)

	if len(ret) == 0 {
		panic("no return value specified for SendBroadcast")
	}

	var r0 *usecase.SendResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, usecase.BroadcastInput) (*usecase.SendResult, error)); ok {
		return rf(ctx, sender, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, usecase.BroadcastInput) *usecase.SendResult); ok {
		r0 = rf(ctx, sender, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*usecase.SendResult)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, entity.Principal, usecase.BroadcastInput) error); ok {
		r1 = rf(ctx, sender, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockDispatchUsecase_SendBroadcast_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SendBroadcast'
type MockDispatchUsecase_SendBroadcast_Call struct {
	*mock.Call
}

// SendBroadcast is a helper method to define mock.On call
//   - ctx context.Context
//   - sender entity.Principal
//   - input usecase.BroadcastInput
func (_e *MockDispatchUsecase_Expecter) SendBroadcast(ctx interface{}, sender interface{}, input interface{}) *MockDispatchUsecase_SendBroadcast_Call {
	return &MockDispatchUsecase_SendBroadcast_Call{Call: _e.mock.On("SendBroadcast", ctx, sender, input)}
}

func (_c *MockDispatchUsecase_SendBroadcast_Call) Run(run func(ctx context.Context, sender entity.Principal, input usecase.BroadcastInput)) *MockDispatchUsecase_SendBroadcast_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.Principal), args[2].(usecase.BroadcastInput))
	})
	return _c
}

func (_c *MockDispatchUsecase_SendBroadcast_Call) Return(_a0 *usecase.SendResult, _a1 error) *MockDispatchUsecase_SendBroadcast_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockDispatchUsecase_SendBroadcast_Call) RunAndReturn(run func(context.Context, entity.Principal, usecase.BroadcastInput) (*usecase.SendResult, error)) *MockDispatchUsecase_SendBroadcast_Call {
	_c.Call.Return(run)
	return _c
}

// SendDirect provides a mock function with given fields: ctx, sender, input
func (_m *MockDispatchUsecase) SendDirect(ctx context.Context, sender entity.Principal, input usecase.DirectMessageInput) (*usecase.SendResult, error) {
	ret := _m.Called(ctx, sender, input)

	if len(ret) == 0 {
		panic("no return value specified for SendDirect")
	}

	var r0 *usecase.SendResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, usecase.DirectMessageInput) (*usecase.SendResult, error)); ok {
		return rf(ctx, sender, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, usecase.DirectMessageInput) *usecase.SendResult); ok {
		r0 = rf(ctx, sender, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*usecase.SendResult)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, entity.Principal, usecase.DirectMessageInput) error); ok {
		r1 = rf(ctx, sender, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockDispatchUsecase_SendDirect_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SendDirect'
type MockDispatchUsecase_SendDirect_Call struct {
	*mock.Call
}

// SendDirect is a helper method to define mock.On call
//   - ctx context.Context
//   - sender entity.Principal
//   - input usecase.DirectMessageInput
func (_e *MockDispatchUsecase_Expecter) SendDirect(ctx interface{}, sender interface{}, input interface{}) *MockDispatchUsecase_SendDirect_Call {
	return &MockDispatchUsecase_SendDirect_Call{Call: _e.mock.On("SendDirect", ctx, sender, input)}
}

func (_c *MockDispatchUsecase_SendDirect_Call) Run(run func(ctx context.Context, sender entity.Principal, input usecase.DirectMessageInput)) *MockDispatchUsecase_SendDirect_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.Principal), args[2].(usecase.DirectMessageInput))
	})
	return _c
}

func (_c *MockDispatchUsecase_SendDirect_Call) Return(_a0 *usecase.SendResult, _a1 error) *MockDispatchUsecase_SendDirect_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockDispatchUsecase_SendDirect_Call) RunAndReturn(run func(context.Context, entity.Principal, usecase.DirectMessageInput) (*usecase.SendResult, error)) *MockDispatchUsecase_SendDirect_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockDispatchUsecase creates a new instance of MockDispatchUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockDispatchUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDispatchUsecase {
	mock := &MockDispatchUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
