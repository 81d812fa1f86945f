package repository

import (
	context "context"
	uuid "github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"
	entity "restops/internal/domain/entity"
	repository "restops/internal/domain/repository"
	time "time"
)

// MockMessageRepository is an autogenerated mock type for the MessageRepository type
type MockMessageRepository struct {
	mock.Mock
}

type MockMessageRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockMessageRepository) EXPECT() *MockMessageRepository_Expecter {
	return &MockMessageRepository_Expecter{mock: &_m.Mock}
}

// AdvanceStatus provides a mock function with given fields: ctx, id, to, at
func (_m *MockMessageRepository) AdvanceStatus(ctx context.Context, id uuid.UUID, to entity.MessageStatus, at time.Time) (bool, error) {
	ret := _m.Called(ctx, id, to, at)

	if len(ret) == 0 {
		panic("no return value specified for AdvanceStatus")
	}

	var r0 bool
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, entity.MessageStatus, time.Time) (bool, error)); ok {
		return rf(ctx, id, to, at)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, entity.MessageStatus, time.Time) bool); ok {
		r0 = rf(ctx, id, to, at)
	} else {
		r0 = ret.Get(0).(bool)
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, entity.MessageStatus, time.Time) error); ok {
		r1 = rf(ctx, id, to, at)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockMessageRepository_AdvanceStatus_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'AdvanceStatus'
type MockMessageRepository_AdvanceStatus_Call struct {
	*mock.Call
}

// AdvanceStatus is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
//   - to entity.MessageStatus
//   - at time.Time
func (_e *MockMessageRepository_Expecter) AdvanceStatus(ctx interface{}, id interface{}, to interface{}, at interface{}) *MockMessageRepository_AdvanceStatus_Call {
	return &MockMessageRepository_AdvanceStatus_Call{Call: _e.mock.On("AdvanceStatus", ctx, id, to, at)}
}

func (_c *MockMessageRepository_AdvanceStatus_Call) Run(run func(ctx context.Context, id uuid.UUID, to entity.MessageStatus, at time.Time)) *MockMessageRepository_AdvanceStatus_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(entity.MessageStatus), args[3].(time.Time))
	})
	return _c
}

func (_c *MockMessageRepository_AdvanceStatus_Call) Return(_a0 bool, _a1 error) *MockMessageRepository_AdvanceStatus_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockMessageRepository_AdvanceStatus_Call) RunAndReturn(run func(context.Context, uuid.UUID, entity.MessageStatus, time.Time) (bool, error)) *MockMessageRepository_AdvanceStatus_Call {
	_c.Call.Return(run)
	return _c
}

// CountUnread provides a mock function with given fields: ctx, recipientID, role, shopID
func (_m *MockMessageRepository) CountUnread(ctx context.Context, recipientID uuid.UUID, role entity.Role, shopID uuid.UUID) (int64, error) {
	ret := _m.Called(ctx, recipientID, role, shopID)

	if len(ret) == 0 {
		panic("no return value specified for CountUnread")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, entity.Role, uuid.UUID) (int64, error)); ok {
		return rf(ctx, recipientID, role, shopID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, entity.Role, uuid.UUID) int64); ok {
		r0 = rf(ctx, recipientID, role, shopID)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, entity.Role, uuid.UUID) error); ok {
		r1 = rf(ctx, recipientID, role, shopID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockMessageRepository_CountUnread_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CountUnread'
type MockMessageRepository_CountUnread_Call struct {
	*mock.Call
}

// CountUnread is a helper method to define mock.On call
//   - ctx context.Context
//   - recipientID uuid.UUID
//   - role entity.Role
//   - shopID uuid.UUID
func (_e *MockMessageRepository_Expecter) CountUnread(ctx interface{}, recipientID interface{}, role interface{}, shopID interface{}) *MockMessageRepository_CountUnread_Call {
	return &MockMessageRepository_CountUnread_Call{Call: _e.mock.On("CountUnread", ctx, recipientID, role, shopID)}
}

func (_c *MockMessageRepository_CountUnread_Call) Run(run func(ctx context.Context, recipientID uuid.UUID, role entity.Role, shopID uuid.UUID)) *MockMessageRepository_CountUnread_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(entity.Role), args[3].(uuid.UUID))
	})
	return _c
}

func (_c *MockMessageRepository_CountUnread_Call) Return(_a0 int64, _a1 error) *MockMessageRepository_CountUnread_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockMessageRepository_CountUnread_Call) RunAndReturn(run func(context.Context, uuid.UUID, entity.Role, uuid.UUID) (int64, error)) *MockMessageRepository_CountUnread_Call {
	_c.Call.Return(run)
	return _c
}

// Create provides a mock function with given fields: ctx, message
func (_m *MockMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	ret := _m.Called(ctx, message)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Message) error); ok {
		r0 = rf(ctx, message)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockMessageRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockMessageRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - message *entity.Message
func (_e *MockMessageRepository_Expecter) Create(ctx interface{}, message interface{}) *MockMessageRepository_Create_Call {
	return &MockMessageRepository_Create_Call{Call: _e.mock.On("Create", ctx, message)}
}

func (_c *MockMessageRepository_Create_Call) Run(run func(ctx context.Context, message *entity.Message)) *MockMessageRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Message))
	})
	return _c
}

func (_c *MockMessageRepository_Create_Call) Return(_a0 error) *MockMessageRepository_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockMessageRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.Message) error) *MockMessageRepository_Create_Call {
	_c.Call.Return(run)
	return _c
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockMessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockMessageRepository_Delete_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Delete'
type MockMessageRepository_Delete_Call struct {
	*mock.Call
}

// Delete is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockMessageRepository_Expecter) Delete(ctx interface{}, id interface{}) *MockMessageRepository_Delete_Call {
	return &MockMessageRepository_Delete_Call{Call: _e.mock.On("Delete", ctx, id)}
}

func (_c *MockMessageRepository_Delete_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockMessageRepository_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockMessageRepository_Delete_Call) Return(_a0 error) *MockMessageRepository_Delete_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockMessageRepository_Delete_Call) RunAndReturn(run func(context.Context, uuid.UUID) error) *MockMessageRepository_Delete_Call {
	_c.Call.Return(run)
	return _c
}

// FindBroadcasts provides a mock function with given fields: ctx, query
func (_m *MockMessageRepository) FindBroadcasts(ctx context.Context, query repository.BroadcastQuery) ([]*entity.Message, int64, error) {
	ret := _m.Called(ctx, query)

	if len(ret) == 0 {
		panic("no return value specified for FindBroadcasts")
	}

	var r0 []*entity.Message
	var r1 int64
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context, repository.BroadcastQuery) ([]*entity.Message, int64, error)); ok {
		return rf(ctx, query)
	}
	if rf, ok := ret.Get(0).(func(context.Context, repository.BroadcastQuery) []*entity.Message); ok {
		r0 = rf(ctx, query)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Message)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, repository.BroadcastQuery) int64); ok {
		r1 = rf(ctx, query)
	} else {
		r1 = ret.Get(1).(int64)
	}

	if rf, ok := ret.Get(2).(func(context.Context, repository.BroadcastQuery) error); ok {
		r2 = rf(ctx, query)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// MockMessageRepository_FindBroadcasts_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindBroadcasts'
type MockMessageRepository_FindBroadcasts_Call struct {
	*mock.Call
}

// FindBroadcasts is a helper method to define mock.On call
//   - ctx context.Context
//   - query repository.BroadcastQuery
func (_e *MockMessageRepository_Expecter) FindBroadcasts(ctx interface{}, query interface{}) *MockMessageRepository_FindBroadcasts_Call {
	return &MockMessageRepository_FindBroadcasts_Call{Call: _e.mock.On("FindBroadcasts", ctx, query)}
}

func (_c *MockMessageRepository_FindBroadcasts_Call) Run(run func(ctx context.Context, query repository.BroadcastQuery)) *MockMessageRepository_FindBroadcasts_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(repository.BroadcastQuery))
	})
	return _c
}

func (_c *MockMessageRepository_FindBroadcasts_Call) Return(_a0 []*entity.Message, _a1 int64, _a2 error) *MockMessageRepository_FindBroadcasts_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_c *MockMessageRepository_FindBroadcasts_Call) RunAndReturn(run func(context.Context, repository.BroadcastQuery) ([]*entity.Message, int64, error)) *MockMessageRepository_FindBroadcasts_Call {
	_c.Call.Return(run)
	return _c
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *MockMessageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}

	var r0 *entity.Message
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.Message, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *entity.Message); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Message)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockMessageRepository_FindByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByID'
type MockMessageRepository_FindByID_Call struct {
	*mock.Call
}

// FindByID is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockMessageRepository_Expecter) FindByID(ctx interface{}, id interface{}) *MockMessageRepository_FindByID_Call {
	return &MockMessageRepository_FindByID_Call{Call: _e.mock.On("FindByID", ctx, id)}
}

func (_c *MockMessageRepository_FindByID_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockMessageRepository_FindByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockMessageRepository_FindByID_Call) Return(_a0 *entity.Message, _a1 error) *MockMessageRepository_FindByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockMessageRepository_FindByID_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.Message, error)) *MockMessageRepository_FindByID_Call {
	_c.Call.Return(run)
	return _c
}

// FindConversation provides a mock function with given fields: ctx, query
func (_m *MockMessageRepository) FindConversation(ctx context.Context, query repository.ConversationQuery) ([]*entity.Message, int64, error) {
	ret := _m.Called(ctx, query)

	if len(ret) == 0 {
		panic("no return value specified for FindConversation")
	}

	var r0 []*entity.Message
	var r1 int64
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context, repository.ConversationQuery) ([]*entity.Message, int64, error)); ok {
		return rf(ctx, query)
	}
	if rf, ok := ret.Get(0).(func(context.Context, repository.ConversationQuery) []*entity.Message); ok {
		r0 = rf(ctx, query)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Message)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, repository.ConversationQuery) int64); ok {
		r1 = rf(ctx, query)
	} else {
		r1 = ret.Get(1).(int64)
	}

	if rf, ok := ret.Get(2).(func(context.Context, repository.ConversationQuery) error); ok {
		r2 = rf(ctx, query)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// MockMessageRepository_FindConversation_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindConversation'
type MockMessageRepository_FindConversation_Call struct {
	*mock.Call
}

// FindConversation is a helper method to define mock.On call
//   - ctx context.Context
//   - query repository.ConversationQuery
func (_e *MockMessageRepository_Expecter) FindConversation(ctx interface{}, query interface{}) *MockMessageRepository_FindConversation_Call {
	return &MockMessageRepository_FindConversation_Call{Call: _e.mock.On("FindConversation", ctx, query)}
}

func (_c *MockMessageRepository_FindConversation_Call) Run(run func(ctx context.Context, query repository.ConversationQuery)) *MockMessageRepository_FindConversation_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(repository.ConversationQuery))
	})
	return _c
}

func (_c *MockMessageRepository_FindConversation_Call) Return(_a0 []*entity.Message, _a1 int64, _a2 error) *MockMessageRepository_FindConversation_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_c *MockMessageRepository_FindConversation_Call) RunAndReturn(run func(context.Context, repository.ConversationQuery) ([]*entity.Message, int64, error)) *MockMessageRepository_FindConversation_Call {
	_c.Call.Return(run)
	return _c
}

// FindForIdentity provides a mock function with given fields: ctx, query
func (_m *MockMessageRepository) FindForIdentity(ctx context.Context, query repository.IdentityMessageQuery) ([]*entity.Message, int64, error) {
	ret := _m.Called(ctx, query)

	if len(ret) == 0 {
		panic("no return value specified for FindForIdentity")
	}

	var r0 []*entity.Message
	var r1 int64
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context, repository.IdentityMessageQuery) ([]*entity.Message, int64, error)); ok {
		return rf(ctx, query)
	}
	if rf, ok := ret.Get(0).(func(context.Context, repository.IdentityMessageQuery) []*entity.Message); ok {
		r0 = rf(ctx, query)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Message)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, repository.IdentityMessageQuery) int64); ok {
		r1 = rf(ctx, query)
	} else {
		r1 = ret.Get(1).(int64)
	}

	if rf, ok := ret.Get(2).(func(context.Context, repository.IdentityMessageQuery) error); ok {
		r2 = rf(ctx, query)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// MockMessageRepository_FindForIdentity_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindForIdentity'
type MockMessageRepository_FindForIdentity_Call struct {
	*mock.Call
}

// FindForIdentity is a helper method to define mock.On call
//   - ctx context.Context
//   - query repository.IdentityMessageQuery
func (_e *MockMessageRepository_Expecter) FindForIdentity(ctx interface{}, query interface{}) *MockMessageRepository_FindForIdentity_Call {
	return &MockMessageRepository_FindForIdentity_Call{Call: _e.mock.On("FindForIdentity", ctx, query)}
}

func (_c *MockMessageRepository_FindForIdentity_Call) Run(run func(ctx context.Context, query repository.IdentityMessageQuery)) *MockMessageRepository_FindForIdentity_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(repository.IdentityMessageQuery))
	})
	return _c
}

func (_c *MockMessageRepository_FindForIdentity_Call) Return(_a0 []*entity.Message, _a1 int64, _a2 error) *MockMessageRepository_FindForIdentity_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_c *MockMessageRepository_FindForIdentity_Call) RunAndReturn(run func(context.Context, repository.IdentityMessageQuery) ([]*entity.Message, int64, error)) *MockMessageRepository_FindForIdentity_Call {
	_c.Call.Return(run)
	return _c
}

// LockByID provides a mock function with given fields: ctx, id
func (_m *MockMessageRepository) LockByID(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for LockByID")
	}

	var r0 *entity.Message
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.Message, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *entity.Message); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Message)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockMessageRepository_LockByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'LockByID'
type MockMessageRepository_LockByID_Call struct {
	*mock.Call
}

// LockByID is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockMessageRepository_Expecter) LockByID(ctx interface{}, id interface{}) *MockMessageRepository_LockByID_Call {
	return &MockMessageRepository_LockByID_Call{Call: _e.mock.On("LockByID", ctx, id)}
}

func (_c *MockMessageRepository_LockByID_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockMessageRepository_LockByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockMessageRepository_LockByID_Call) Return(_a0 *entity.Message, _a1 error) *MockMessageRepository_LockByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockMessageRepository_LockByID_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.Message, error)) *MockMessageRepository_LockByID_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateDeletionFlags provides a mock function with given fields: ctx, message
func (_m *MockMessageRepository) UpdateDeletionFlags(ctx context.Context, message *entity.Message) error {
	ret := _m.Called(ctx, message)

	if len(ret) == 0 {
		panic("no return value specified for UpdateDeletionFlags")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Message) error); ok {
		r0 = rf(ctx, message)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockMessageRepository_UpdateDeletionFlags_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateDeletionFlags'
type MockMessageRepository_UpdateDeletionFlags_Call struct {
	*mock.Call
}

// UpdateDeletionFlags is a helper method to define mock.On call
//   - ctx context.Context
//   - message *entity.Message
func (_e *MockMessageRepository_Expecter) UpdateDeletionFlags(ctx interface{}, message interface{}) *MockMessageRepository_UpdateDeletionFlags_Call {
	return &MockMessageRepository_UpdateDeletionFlags_Call{Call: _e.mock.On("UpdateDeletionFlags", ctx, message)}
}

func (_c *MockMessageRepository_UpdateDeletionFlags_Call) Run(run func(ctx context.Context, message *entity.Message)) *MockMessageRepository_UpdateDeletionFlags_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Message))
	})
	return _c
}

func (_c *MockMessageRepository_UpdateDeletionFlags_Call) Return(_a0 error) *MockMessageRepository_UpdateDeletionFlags_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockMessageRepository_UpdateDeletionFlags_Call) RunAndReturn(run func(context.Context, *entity.Message) error) *MockMessageRepository_UpdateDeletionFlags_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockMessageRepository creates a new instance of MockMessageRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockMessageRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMessageRepository {
	mock := &MockMessageRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
