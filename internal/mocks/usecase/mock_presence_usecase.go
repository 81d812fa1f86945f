package usecase

import (
	uuid "github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"
	entity "restops/internal/domain/entity"
)

// MockPresenceUsecase is an autogenerated mock type for the PresenceUsecase type
type MockPresenceUsecase struct {
	mock.Mock
}

type MockPresenceUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPresenceUsecase) EXPECT() *MockPresenceUsecase_Expecter {
	return &MockPresenceUsecase_Expecter{mock: &_m.Mock}
}

// IsOnline provides a mock function with given fields: key
func (_m *MockPresenceUsecase) IsOnline(key entity.IdentityKey) bool {
	ret := _m.Called(key)

	if len(ret) == 0 {
		panic("no return value specified for IsOnline")
	}

	var r0 bool
	if rf, ok := ret.Get(0).(func(entity.IdentityKey) bool); ok {
		r0 = rf(key)
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}

// MockPresenceUsecase_IsOnline_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'IsOnline'
type MockPresenceUsecase_IsOnline_Call struct {
	*mock.Call
}

// IsOnline is a helper method to define mock.On call
//   - key entity.IdentityKey
func (_e *MockPresenceUsecase_Expecter) IsOnline(key interface{}) *MockPresenceUsecase_IsOnline_Call {
	return &MockPresenceUsecase_IsOnline_Call{Call: _e.mock.On("IsOnline", key)}
}

func (_c *MockPresenceUsecase_IsOnline_Call) Run(run func(key entity.IdentityKey)) *MockPresenceUsecase_IsOnline_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(entity.IdentityKey))
	})
	return _c
}

func (_c *MockPresenceUsecase_IsOnline_Call) Return(_a0 bool) *MockPresenceUsecase_IsOnline_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockPresenceUsecase_IsOnline_Call) RunAndReturn(run func(entity.IdentityKey) bool) *MockPresenceUsecase_IsOnline_Call {
	_c.Call.Return(run)
	return _c
}

// OnlineCounts provides a mock function with given fields: shopID
func (_m *MockPresenceUsecase) OnlineCounts(shopID uuid.UUID) entity.OnlineCounts {
	ret := _m.Called(shopID)

	if len(ret) == 0 {
		panic("no return value specified for OnlineCounts")
	}

	var r0 entity.OnlineCounts
	if rf, ok := ret.Get(0).(func(uuid.UUID) entity.OnlineCounts); ok {
		r0 = rf(shopID)
	} else {
		r0 = ret.Get(0).(entity.OnlineCounts)
	}

	return r0
}

// MockPresenceUsecase_OnlineCounts_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'OnlineCounts'
type MockPresenceUsecase_OnlineCounts_Call struct {
	*mock.Call
}

// OnlineCounts is a helper method to define mock.On call
//   - shopID uuid.UUID
func (_e *MockPresenceUsecase_Expecter) OnlineCounts(shopID interface{}) *MockPresenceUsecase_OnlineCounts_Call {
	return &MockPresenceUsecase_OnlineCounts_Call{Call: _e.mock.On("OnlineCounts", shopID)}
}

func (_c *MockPresenceUsecase_OnlineCounts_Call) Run(run func(shopID uuid.UUID)) *MockPresenceUsecase_OnlineCounts_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(uuid.UUID))
	})
	return _c
}

func (_c *MockPresenceUsecase_OnlineCounts_Call) Return(_a0 entity.OnlineCounts) *MockPresenceUsecase_OnlineCounts_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockPresenceUsecase_OnlineCounts_Call) RunAndReturn(run func(uuid.UUID) entity.OnlineCounts) *MockPresenceUsecase_OnlineCounts_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockPresenceUsecase creates a new instance of MockPresenceUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockPresenceUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPresenceUsecase {
	mock := &MockPresenceUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
