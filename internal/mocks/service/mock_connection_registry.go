package service

import (
	uuid "github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"
	entity "restops/internal/domain/entity"
	service "restops/internal/domain/service"
)

// MockConnectionRegistry is an autogenerated mock type for the ConnectionRegistry type
type MockConnectionRegistry struct {
	mock.Mock
}

type MockConnectionRegistry_Expecter struct {
	mock *mock.Mock
}

func (_m *MockConnectionRegistry) EXPECT() *MockConnectionRegistry_Expecter {
	return &MockConnectionRegistry_Expecter{mock: &_m.Mock}
}

// CountOnline provides a mock function with given fields: shopID
func (_m *MockConnectionRegistry) CountOnline(shopID uuid.UUID) entity.OnlineCounts {
	ret := _m.Called(shopID)

	if len(ret) == 0 {
		panic("no return value specified for CountOnline")
	}

	var r0 entity.OnlineCounts
	if rf, ok := ret.Get(0).(func(uuid.UUID) entity.OnlineCounts); ok {
		r0 = rf(shopID)
	} else {
		r0 = ret.Get(0).(entity.OnlineCounts)
	}

	return r0
}

// MockConnectionRegistry_CountOnline_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CountOnline'
type MockConnectionRegistry_CountOnline_Call struct {
	*mock.Call
}

// CountOnline is a helper method to define mock.On call
//   - shopID uuid.UUID
func (_e *MockConnectionRegistry_Expecter) CountOnline(shopID interface{}) *MockConnectionRegistry_CountOnline_Call {
	return &MockConnectionRegistry_CountOnline_Call{Call: _e.mock.On("CountOnline", shopID)}
}

func (_c *MockConnectionRegistry_CountOnline_Call) Run(run func(shopID uuid.UUID)) *MockConnectionRegistry_CountOnline_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(uuid.UUID))
	})
	return _c
}

func (_c *MockConnectionRegistry_CountOnline_Call) Return(_a0 entity.OnlineCounts) *MockConnectionRegistry_CountOnline_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockConnectionRegistry_CountOnline_Call) RunAndReturn(run func(uuid.UUID) entity.OnlineCounts) *MockConnectionRegistry_CountOnline_Call {
	_c.Call.Return(run)
	return _c
}

// Lookup provides a mock function with given fields: key
func (_m *MockConnectionRegistry) Lookup(key entity.IdentityKey) (service.Connection, bool) {
	ret := _m.Called(key)

	if len(ret) == 0 {
		panic("no return value specified for Lookup")
	}

	var r0 service.Connection
	var r1 bool
	if rf, ok := ret.Get(0).(func(entity.IdentityKey) (service.Connection, bool)); ok {
		return rf(key)
	}
	if rf, ok := ret.Get(0).(func(entity.IdentityKey) service.Connection); ok {
		r0 = rf(key)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(service.Connection)
		}
	}

	if rf, ok := ret.Get(1).(func(entity.IdentityKey) bool); ok {
		r1 = rf(key)
	} else {
		r1 = ret.Get(1).(bool)
	}

	return r0, r1
}

// MockConnectionRegistry_Lookup_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Lookup'
type MockConnectionRegistry_Lookup_Call struct {
	*mock.Call
}

// Lookup is a helper method to define mock.On call
//   - key entity.IdentityKey
func (_e *MockConnectionRegistry_Expecter) Lookup(key interface{}) *MockConnectionRegistry_Lookup_Call {
	return &MockConnectionRegistry_Lookup_Call{Call: _e.mock.On("Lookup", key)}
}

func (_c *MockConnectionRegistry_Lookup_Call) Run(run func(key entity.IdentityKey)) *MockConnectionRegistry_Lookup_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(entity.IdentityKey))
	})
	return _c
}

func (_c *MockConnectionRegistry_Lookup_Call) Return(_a0 service.Connection, _a1 bool) *MockConnectionRegistry_Lookup_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockConnectionRegistry_Lookup_Call) RunAndReturn(run func(entity.IdentityKey) (service.Connection, bool)) *MockConnectionRegistry_Lookup_Call {
	_c.Call.Return(run)
	return _c
}

// Register provides a mock function with given fields: key, conn
func (_m *MockConnectionRegistry) Register(key entity.IdentityKey, conn service.Connection) service.Connection {
	ret := _m.Called(key, conn)

	if len(ret) == 0 {
		panic("no return value specified for Register")
	}

	var r0 service.Connection
	if rf, ok := ret.Get(0).(func(entity.IdentityKey, service.Connection) service.Connection); ok {
		r0 = rf(key, conn)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(service.Connection)
		}
	}

	return r0
}

// MockConnectionRegistry_Register_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Register'
type MockConnectionRegistry_Register_Call struct {
	*mock.Call
}

// Register is a helper method to define mock.On call
//   - key entity.IdentityKey
//   - conn service.Connection
func (_e *MockConnectionRegistry_Expecter) Register(key interface{}, conn interface{}) *MockConnectionRegistry_Register_Call {
	return &MockConnectionRegistry_Register_Call{Call: _e.mock.On("Register", key, conn)}
}

func (_c *MockConnectionRegistry_Register_Call) Run(run func(key entity.IdentityKey, conn service.Connection)) *MockConnectionRegistry_Register_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(entity.IdentityKey), args[1].(service.Connection))
	})
	return _c
}

func (_c *MockConnectionRegistry_Register_Call) Return(_a0 service.Connection) *MockConnectionRegistry_Register_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockConnectionRegistry_Register_Call) RunAndReturn(run func(entity.IdentityKey, service.Connection) service.Connection) *MockConnectionRegistry_Register_Call {
	_c.Call.Return(run)
	return _c
}

// RemoveByConnection provides a mock function with given fields: conn
func (_m *MockConnectionRegistry) RemoveByConnection(conn service.Connection) []entity.IdentityKey {
	ret := _m.Called(conn)

	if len(ret) == 0 {
		panic("no return value specified for RemoveByConnection")
	}

	var r0 []entity.IdentityKey
	if rf, ok := ret.Get(0).(func(service.Connection) []entity.IdentityKey); ok {
		r0 = rf(conn)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]entity.IdentityKey)
		}
	}

	return r0
}

// MockConnectionRegistry_RemoveByConnection_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RemoveByConnection'
type MockConnectionRegistry_RemoveByConnection_Call struct {
	*mock.Call
}

// RemoveByConnection is a helper method to define mock.On call
//   - conn service.Connection
func (_e *MockConnectionRegistry_Expecter) RemoveByConnection(conn interface{}) *MockConnectionRegistry_RemoveByConnection_Call {
	return &MockConnectionRegistry_RemoveByConnection_Call{Call: _e.mock.On("RemoveByConnection", conn)}
}

func (_c *MockConnectionRegistry_RemoveByConnection_Call) Run(run func(conn service.Connection)) *MockConnectionRegistry_RemoveByConnection_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(service.Connection))
	})
	return _c
}

func (_c *MockConnectionRegistry_RemoveByConnection_Call) Return(_a0 []entity.IdentityKey) *MockConnectionRegistry_RemoveByConnection_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockConnectionRegistry_RemoveByConnection_Call) RunAndReturn(run func(service.Connection) []entity.IdentityKey) *MockConnectionRegistry_RemoveByConnection_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockConnectionRegistry creates a new instance of MockConnectionRegistry. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockConnectionRegistry(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockConnectionRegistry {
	mock := &MockConnectionRegistry{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
