package service

import (
	mock "github.com/stretchr/testify/mock"
)

// MockConnection is an autogenerated mock type for the Connection type
type MockConnection struct {
	mock.Mock
}

type MockConnection_Expecter struct {
	mock *mock.Mock
}

func (_m *MockConnection) EXPECT() *MockConnection_Expecter {
	return &MockConnection_Expecter{mock: &_m.Mock}
}

// Close provides a mock function with given fields: reason
func (_m *MockConnection) Close(reason string) {
	_m.Called(reason)
}

// MockConnection_Close_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Close'
type MockConnection_Close_Call struct {
	*mock.Call
}

// Close is a helper method to define mock.On call
//   - reason string
func (_e *MockConnection_Expecter) Close(reason interface{}) *MockConnection_Close_Call {
	return &MockConnection_Close_Call{Call: _e.mock.On("Close", reason)}
}

func (_c *MockConnection_Close_Call) Run(run func(reason string)) *MockConnection_Close_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})
	return _c
}

func (_c *MockConnection_Close_Call) Return() *MockConnection_Close_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockConnection_Close_Call) RunAndReturn(run func(string)) *MockConnection_Close_Call {
	_c.Run(run)
	return _c
}

// ID provides a mock function with given fields: 
func (_m *MockConnection) ID() string {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for ID")
	}

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// MockConnection_ID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ID'
type MockConnection_ID_Call struct {
	*mock.Call
}

// ID is a helper method to define mock.On call
func (_e *MockConnection_Expecter) ID() *MockConnection_ID_Call {
	return &MockConnection_ID_Call{Call: _e.mock.On("ID")}
}

func (_c *MockConnection_ID_Call) Run(run func()) *MockConnection_ID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockConnection_ID_Call) Return(_a0 string) *MockConnection_ID_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockConnection_ID_Call) RunAndReturn(run func() string) *MockConnection_ID_Call {
	_c.Call.Return(run)
	return _c
}

// Send provides a mock function with given fields: event, payload
func (_m *MockConnection) Send(event string, payload any) error {
	ret := _m.Called(event, payload)

	if len(ret) == 0 {
		panic("no return value specified for Send")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(string, any) error); ok {
		r0 = rf(event, payload)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockConnection_Send_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Send'
type MockConnection_Send_Call struct {
	*mock.Call
}

// Send is a helper method to define mock.On call
//   - event string
//   - payload any
func (_e *MockConnection_Expecter) Send(event interface{}, payload interface{}) *MockConnection_Send_Call {
	return &MockConnection_Send_Call{Call: _e.mock.On("Send", event, payload)}
}

func (_c *MockConnection_Send_Call) Run(run func(event string, payload any)) *MockConnection_Send_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string), args[1].(any))
	})
	return _c
}

func (_c *MockConnection_Send_Call) Return(_a0 error) *MockConnection_Send_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockConnection_Send_Call) RunAndReturn(run func(string, any) error) *MockConnection_Send_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockConnection creates a new instance of MockConnection. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockConnection(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockConnection {
	mock := &MockConnection{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
