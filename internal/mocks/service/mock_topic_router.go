package service

import (
	context "context"
	mock "github.com/stretchr/testify/mock"
	entity "restops/internal/domain/entity"
	service "restops/internal/domain/service"
)

// MockTopicRouter is an autogenerated mock type for the TopicRouter type
type MockTopicRouter struct {
	mock.Mock
}

type MockTopicRouter_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTopicRouter) EXPECT() *MockTopicRouter_Expecter {
	return &MockTopicRouter_Expecter{mock: &_m.Mock}
}

// JoinTopics provides a mock function with given fields: conn, key
func (_m *MockTopicRouter) JoinTopics(conn service.Connection, key entity.IdentityKey) {
	_m.Called(conn, key)
}

// MockTopicRouter_JoinTopics_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'JoinTopics'
type MockTopicRouter_JoinTopics_Call struct {
	*mock.Call
}

// JoinTopics is a helper method to define mock.On call
//   - conn service.Connection
//   - key entity.IdentityKey
func (_e *MockTopicRouter_Expecter) JoinTopics(conn interface{}, key interface{}) *MockTopicRouter_JoinTopics_Call {
	return &MockTopicRouter_JoinTopics_Call{Call: _e.mock.On("JoinTopics", conn, key)}
}

func (_c *MockTopicRouter_JoinTopics_Call) Run(run func(conn service.Connection, key entity.IdentityKey)) *MockTopicRouter_JoinTopics_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(service.Connection), args[1].(entity.IdentityKey))
	})
	return _c
}

func (_c *MockTopicRouter_JoinTopics_Call) Return() *MockTopicRouter_JoinTopics_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockTopicRouter_JoinTopics_Call) RunAndReturn(run func(service.Connection, entity.IdentityKey)) *MockTopicRouter_JoinTopics_Call {
	_c.Run(run)
	return _c
}

// Leave provides a mock function with given fields: conn
func (_m *MockTopicRouter) Leave(conn service.Connection) {
	_m.Called(conn)
}

// MockTopicRouter_Leave_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Leave'
type MockTopicRouter_Leave_Call struct {
	*mock.Call
}

// Leave is a helper method to define mock.On call
//   - conn service.Connection
func (_e *MockTopicRouter_Expecter) Leave(conn interface{}) *MockTopicRouter_Leave_Call {
	return &MockTopicRouter_Leave_Call{Call: _e.mock.On("Leave", conn)}
}

func (_c *MockTopicRouter_Leave_Call) Run(run func(conn service.Connection)) *MockTopicRouter_Leave_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(service.Connection))
	})
	return _c
}

func (_c *MockTopicRouter_Leave_Call) Return() *MockTopicRouter_Leave_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockTopicRouter_Leave_Call) RunAndReturn(run func(service.Connection)) *MockTopicRouter_Leave_Call {
	_c.Run(run)
	return _c
}

// Publish provides a mock function with given fields: ctx, topic, event, payload
func (_m *MockTopicRouter) Publish(ctx context.Context, topic entity.Topic, event string, payload any) int {
	ret := _m.Called(ctx, topic, event, payload)

	if len(ret) == 0 {
		panic("no return value specified for Publish")
	}

	var r0 int
	if rf, ok := ret.Get(0).(func(context.Context, entity.Topic, string, any) int); ok {
		r0 = rf(ctx, topic, event, payload)
	} else {
		r0 = ret.Get(0).(int)
	}

	return r0
}

// MockTopicRouter_Publish_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Publish'
type MockTopicRouter_Publish_Call struct {
	*mock.Call
}

// Publish is a helper method to define mock.On call
//   - ctx context.Context
//   - topic entity.Topic
//   - event string
//   - payload any
func (_e *MockTopicRouter_Expecter) Publish(ctx interface{}, topic interface{}, event interface{}, payload interface{}) *MockTopicRouter_Publish_Call {
	return &MockTopicRouter_Publish_Call{Call: _e.mock.On("Publish", ctx, topic, event, payload)}
}

func (_c *MockTopicRouter_Publish_Call) Run(run func(ctx context.Context, topic entity.Topic, event string, payload any)) *MockTopicRouter_Publish_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.Topic), args[2].(string), args[3].(any))
	})
	return _c
}

func (_c *MockTopicRouter_Publish_Call) Return(_a0 int) *MockTopicRouter_Publish_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockTopicRouter_Publish_Call) RunAndReturn(run func(context.Context, entity.Topic, string, any) int) *MockTopicRouter_Publish_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockTopicRouter creates a new instance of MockTopicRouter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockTopicRouter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTopicRouter {
	mock := &MockTopicRouter{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
