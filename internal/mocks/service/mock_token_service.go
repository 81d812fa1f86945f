package service

import (
	mock "github.com/stretchr/testify/mock"
	entity "restops/internal/domain/entity"
	time "time"
)

// MockTokenService is an autogenerated mock type for the TokenService type
type MockTokenService struct {
	mock.Mock
}

type MockTokenService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenService) EXPECT() *MockTokenService_Expecter {
	return &MockTokenService_Expecter{mock: &_m.Mock}
}

// IssueAccessToken provides a mock function with given fields: principal, ttl
func (_m *MockTokenService) IssueAccessToken(principal entity.Principal, ttl time.Duration) (string, error) {
	ret := _m.Called(principal, ttl)

	if len(ret) == 0 {
		panic("no return value specified for IssueAccessToken")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(entity.Principal, time.Duration) (string, error)); ok {
		return rf(principal, ttl)
	}
	if rf, ok := ret.Get(0).(func(entity.Principal, time.Duration) string); ok {
		r0 = rf(principal, ttl)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(entity.Principal, time.Duration) error); ok {
		r1 = rf(principal, ttl)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTokenService_IssueAccessToken_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'IssueAccessToken'
type MockTokenService_IssueAccessToken_Call struct {
	*mock.Call
}

// IssueAccessToken is a helper method to define mock.On call
//   - principal entity.Principal
//   - ttl time.Duration
func (_e *MockTokenService_Expecter) IssueAccessToken(principal interface{}, ttl interface{}) *MockTokenService_IssueAccessToken_Call {
	return &MockTokenService_IssueAccessToken_Call{Call: _e.mock.On("IssueAccessToken", principal, ttl)}
}

func (_c *MockTokenService_IssueAccessToken_Call) Run(run func(principal entity.Principal, ttl time.Duration)) *MockTokenService_IssueAccessToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(entity.Principal), args[1].(time.Duration))
	})
	return _c
}

func (_c *MockTokenService_IssueAccessToken_Call) Return(_a0 string, _a1 error) *MockTokenService_IssueAccessToken_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTokenService_IssueAccessToken_Call) RunAndReturn(run func(entity.Principal, time.Duration) (string, error)) *MockTokenService_IssueAccessToken_Call {
	_c.Call.Return(run)
	return _c
}

// ValidateToken provides a mock function with given fields: tokenString
func (_m *MockTokenService) ValidateToken(tokenString string) (*entity.Principal, error) {
	ret := _m.Called(tokenString)

	if len(ret) == 0 {
		panic("no return value specified for ValidateToken")
	}

	var r0 *entity.Principal
	var r1 error
	if rf, ok := ret.Get(0).(func(string) (*entity.Principal, error)); ok {
		return rf(tokenString)
	}
	if rf, ok := ret.Get(0).(func(string) *entity.Principal); ok {
		r0 = rf(tokenString)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Principal)
		}
	}

	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(tokenString)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTokenService_ValidateToken_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ValidateToken'
type MockTokenService_ValidateToken_Call struct {
	*mock.Call
}

// ValidateToken is a helper method to define mock.On call
//   - tokenString string
func (_e *MockTokenService_Expecter) ValidateToken(tokenString interface{}) *MockTokenService_ValidateToken_Call {
	return &MockTokenService_ValidateToken_Call{Call: _e.mock.On("ValidateToken", tokenString)}
}

func (_c *MockTokenService_ValidateToken_Call) Run(run func(tokenString string)) *MockTokenService_ValidateToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})
	return _c
}

func (_c *MockTokenService_ValidateToken_Call) Return(_a0 *entity.Principal, _a1 error) *MockTokenService_ValidateToken_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTokenService_ValidateToken_Call) RunAndReturn(run func(string) (*entity.Principal, error)) *MockTokenService_ValidateToken_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockTokenService creates a new instance of MockTokenService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	mock := &MockTokenService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
