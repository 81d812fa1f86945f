package repository

import (
	mock "github.com/stretchr/testify/mock"
	repository "restops/internal/domain/repository"
)

// MockRepositoryFactory is an autogenerated mock type for the RepositoryFactory type
type MockRepositoryFactory struct {
	mock.Mock
}

type MockRepositoryFactory_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRepositoryFactory) EXPECT() *MockRepositoryFactory_Expecter {
	return &MockRepositoryFactory_Expecter{mock: &_m.Mock}
}

// NewMessageRepository provides a mock function with given fields: 
func (_m *MockRepositoryFactory) NewMessageRepository() repository.MessageRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for NewMessageRepository")
	}

	var r0 repository.MessageRepository
	if rf, ok := ret.Get(0).(func() repository.MessageRepository); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(repository.MessageRepository)
		}
	}

	return r0
}

// MockRepositoryFactory_NewMessageRepository_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'NewMessageRepository'
type MockRepositoryFactory_NewMessageRepository_Call struct {
	*mock.Call
}

// NewMessageRepository is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) NewMessageRepository() *MockRepositoryFactory_NewMessageRepository_Call {
	return &MockRepositoryFactory_NewMessageRepository_Call{Call: _e.mock.On("NewMessageRepository")}
}

func (_c *MockRepositoryFactory_NewMessageRepository_Call) Run(run func()) *MockRepositoryFactory_NewMessageRepository_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_NewMessageRepository_Call) Return(_a0 repository.MessageRepository) *MockRepositoryFactory_NewMessageRepository_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepositoryFactory_NewMessageRepository_Call) RunAndReturn(run func() repository.MessageRepository) *MockRepositoryFactory_NewMessageRepository_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockRepositoryFactory creates a new instance of MockRepositoryFactory. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	mock := &MockRepositoryFactory{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
