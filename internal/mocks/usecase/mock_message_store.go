package usecase

import (
	context "context"
	uuid "github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"
	entity "restops/internal/domain/entity"
)

// MockMessageStore is an autogenerated mock type for the MessageStore type
type MockMessageStore struct {
	mock.Mock
}

type MockMessageStore_Expecter struct {
	mock *mock.Mock
}

func (_m *MockMessageStore) EXPECT() *MockMessageStore_Expecter {
	return &MockMessageStore_Expecter{mock: &_m.Mock}
}

// Conversation provides a mock function with given fields: ctx, requester, otherID, otherRole, page
func (_m *MockMessageStore) Conversation(ctx context.Context, requester entity.Principal, otherID uuid.UUID, otherRole entity.Role, page entity.Page) (*entity.MessagePage, error) {
	ret := _m.Called(ctx, requester, otherID, otherRole, page)

	if len(ret) == 0 {
		panic("no return value specified for Conversation")
	}

	var r0 *entity.MessagePage
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, uuid.UUID, entity.Role, entity.Page) (*entity.MessagePage, error)); ok {
		return rf(ctx, requester, otherID, otherRole, page)
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, uuid.UUID, entity.Role, entity.Page) *entity.MessagePage); ok {
		r0 = rf(ctx, requester, otherID, otherRole, page)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.MessagePage)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, entity.Principal, uuid.UUID, entity.Role, entity.Page) error); ok {
		r1 = rf(ctx, requester, otherID, otherRole, page)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockMessageStore_Conversation_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Conversation'
type MockMessageStore_Conversation_Call struct {
	*mock.Call
}

// Conversation is a helper method to define mock.On call
//   - ctx context.Context
//   - requester entity.Principal
//   - otherID uuid.UUID
//   - otherRole entity.Role
//   - page entity.Page
func (_e *MockMessageStore_Expecter) Conversation(ctx interface{}, requester interface{}, otherID interface{}, otherRole interface{}, page interface{}) *MockMessageStore_Conversation_Call {
	return &MockMessageStore_Conversation_Call{Call: _e.mock.On("Conversation", ctx, requester, otherID, otherRole, page)}
}

func (_c *MockMessageStore_Conversation_Call) Run(run func(ctx context.Context, requester entity.Principal, otherID uuid.UUID, otherRole entity.Role, page entity.Page)) *MockMessageStore_Conversation_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.Principal), args[2].(uuid.UUID), args[3].(entity.Role), args[4].(entity.Page))
	})
	return _c
}

func (_c *MockMessageStore_Conversation_Call) Return(_a0 *entity.MessagePage, _a1 error) *MockMessageStore_Conversation_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockMessageStore_Conversation_Call) RunAndReturn(run func(context.Context, entity.Principal, uuid.UUID, entity.Role, entity.Page) (*entity.MessagePage, error)) *MockMessageStore_Conversation_Call {
	_c.Call.Return(run)
	return _c
}

// CountUnread provides a mock function with given fields: ctx, requester
func (_m *MockMessageStore) CountUnread(ctx context.Context, requester entity.Principal) (int64, error) {
	ret := _m.Called(ctx, requester)

	if len(ret) == 0 {
		panic("no return value specified for CountUnread")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal) (int64, error)); ok {
		return rf(ctx, requester)
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal) int64); ok {
		r0 = rf(ctx, requester)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, entity.Principal) error); ok {
		r1 = rf(ctx, requester)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockMessageStore_CountUnread_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CountUnread'
type MockMessageStore_CountUnread_Call struct {
	*mock.Call
}

// CountUnread is a helper method to define mock.On call
//   - ctx context.Context
//   - requester entity.Principal
func (_e *MockMessageStore_Expecter) CountUnread(ctx interface{}, requester interface{}) *MockMessageStore_CountUnread_Call {
	return &MockMessageStore_CountUnread_Call{Call: _e.mock.On("CountUnread", ctx, requester)}
}

func (_c *MockMessageStore_CountUnread_Call) Run(run func(ctx context.Context, requester entity.Principal)) *MockMessageStore_CountUnread_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.Principal))
	})
	return _c
}

func (_c *MockMessageStore_CountUnread_Call) Return(_a0 int64, _a1 error) *MockMessageStore_CountUnread_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockMessageStore_CountUnread_Call) RunAndReturn(run func(context.Context, entity.Principal) (int64, error)) *MockMessageStore_CountUnread_Call {
	_c.Call.Return(run)
	return _c
}

// Create provides a mock function with given fields: ctx, draft
func (_m *MockMessageStore) Create(ctx context.Context, draft entity.MessageDraft) (*entity.Message, error) {
	ret := _m.Called(ctx, draft)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 *entity.Message
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.MessageDraft) (*entity.Message, error)); ok {
		return rf(ctx, draft)
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.MessageDraft) *entity.Message); ok {
		r0 = rf(ctx, draft)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Message)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, entity.MessageDraft) error); ok {
		r1 = rf(ctx, draft)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockMessageStore_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockMessageStore_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - draft entity.MessageDraft
func (_e *MockMessageStore_Expecter) Create(ctx interface{}, draft interface{}) *MockMessageStore_Create_Call {
	return &MockMessageStore_Create_Call{Call: _e.mock.On("Create", ctx, draft)}
}

func (_c *MockMessageStore_Create_Call) Run(run func(ctx context.Context, draft entity.MessageDraft)) *MockMessageStore_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.MessageDraft))
	})
	return _c
}

func (_c *MockMessageStore_Create_Call) Return(_a0 *entity.Message, _a1 error) *MockMessageStore_Create_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockMessageStore_Create_Call) RunAndReturn(run func(context.Context, entity.MessageDraft) (*entity.Message, error)) *MockMessageStore_Create_Call {
	_c.Call.Return(run)
	return _c
}

// ListBranchBroadcasts provides a mock function with given fields: ctx, requester, branchID, page
func (_m *MockMessageStore) ListBranchBroadcasts(ctx context.Context, requester entity.Principal, branchID uuid.UUID, page entity.Page) (*entity.MessagePage, error) {
	ret := _m.Called(ctx, requester, branchID, page)

	if len(ret) == 0 {
		panic("no return value specified for ListBranchBroadcasts")
	}

	var r0 *entity.MessagePage
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, uuid.UUID, entity.Page) (*entity.MessagePage, error)); ok {
		return rf(ctx, requester, branchID, page)
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, uuid.UUID, entity.Page) *entity.MessagePage); ok {
		r0 = rf(ctx, requester, branchID, page)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.MessagePage)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, entity.Principal, uuid.UUID, entity.Page) error); ok {
		r1 = rf(ctx, requester, branchID, page)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockMessageStore_ListBranchBroadcasts_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListBranchBroadcasts'
type MockMessageStore_ListBranchBroadcasts_Call struct {
	*mock.Call
}

// ListBranchBroadcasts is a helper method to define mock.On call
//   - ctx context.Context
//   - requester entity.Principal
//   - branchID uuid.UUID
//   - page entity.Page
func (_e *MockMessageStore_Expecter) ListBranchBroadcasts(ctx interface{}, requester interface{}, branchID interface{}, page interface{}) *MockMessageStore_ListBranchBroadcasts_Call {
	return &MockMessageStore_ListBranchBroadcasts_Call{Call: _e.mock.On("ListBranchBroadcasts", ctx, requester, branchID, page)}
}

func (_c *MockMessageStore_ListBranchBroadcasts_Call) Run(run func(ctx context.Context, requester entity.Principal, branchID uuid.UUID, page entity.Page)) *MockMessageStore_ListBranchBroadcasts_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.Principal), args[2].(uuid.UUID), args[3].(entity.Page))
	})
	return _c
}

func (_c *MockMessageStore_ListBranchBroadcasts_Call) Return(_a0 *entity.MessagePage, _a1 error) *MockMessageStore_ListBranchBroadcasts_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockMessageStore_ListBranchBroadcasts_Call) RunAndReturn(run func(context.Context, entity.Principal, uuid.UUID, entity.Page) (*entity.MessagePage, error)) *MockMessageStore_ListBranchBroadcasts_Call {
	_c.Call.Return(run)
	return _c
}

// ListForIdentity provides a mock function with given fields: ctx, requester, filter
func (_m *MockMessageStore) ListForIdentity(ctx context.Context, requester entity.Principal, filter entity.MessageFilter) (*entity.MessagePage, error) {
	ret := _m.Called(ctx, requester, filter)

	if len(ret) == 0 {
		panic("no return value specified for ListForIdentity")
	}

	var r0 *entity.MessagePage
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, entity.MessageFilter) (*entity.MessagePage, error)); ok {
		return rf(ctx, requester, filter)
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, entity.MessageFilter) *entity.MessagePage); ok {
		r0 = rf(ctx, requester, filter)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.MessagePage)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, entity.Principal, entity.MessageFilter) error); ok {
		r1 = rf(ctx, requester, filter)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockMessageStore_ListForIdentity_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListForIdentity'
type MockMessageStore_ListForIdentity_Call struct {
	*mock.Call
}

// ListForIdentity is a helper method to define mock.On call
//   - ctx context.Context
//   - requester entity.Principal
//   - filter entity.MessageFilter
func (_e *MockMessageStore_Expecter) ListForIdentity(ctx interface{}, requester interface{}, filter interface{}) *MockMessageStore_ListForIdentity_Call {
	return &MockMessageStore_ListForIdentity_Call{Call: _e.mock.On("ListForIdentity", ctx, requester, filter)}
}

func (_c *MockMessageStore_ListForIdentity_Call) Run(run func(ctx context.Context, requester entity.Principal, filter entity.MessageFilter)) *MockMessageStore_ListForIdentity_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.Principal), args[2].(entity.MessageFilter))
	})
	return _c
}

func (_c *MockMessageStore_ListForIdentity_Call) Return(_a0 *entity.MessagePage, _a1 error) *MockMessageStore_ListForIdentity_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockMessageStore_ListForIdentity_Call) RunAndReturn(run func(context.Context, entity.Principal, entity.MessageFilter) (*entity.MessagePage, error)) *MockMessageStore_ListForIdentity_Call {
	_c.Call.Return(run)
	return _c
}

// ListShopBroadcasts provides a mock function with given fields: ctx, requester, page
func (_m *MockMessageStore) ListShopBroadcasts(ctx context.Context, requester entity.Principal, page entity.Page) (*entity.MessagePage, error) {
	ret := _m.Called(ctx, requester, page)

	if len(ret) == 0 {
		panic("no return value specified for ListShopBroadcasts")
	}

	var r0 *entity.MessagePage
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, entity.Page) (*entity.MessagePage, error)); ok {
		return rf(ctx, requester, page)
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, entity.Page) *entity.MessagePage); ok {
		r0 = rf(ctx, requester, page)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.MessagePage)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, entity.Principal, entity.Page) error); ok {
		r1 = rf(ctx, requester, page)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockMessageStore_ListShopBroadcasts_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListShopBroadcasts'
type MockMessageStore_ListShopBroadcasts_Call struct {
	*mock.Call
}

// ListShopBroadcasts is a helper method to define mock.On call
//   - ctx context.Context
//   - requester entity.Principal
//   - page entity.Page
func (_e *MockMessageStore_Expecter) ListShopBroadcasts(ctx interface{}, requester interface{}, page interface{}) *MockMessageStore_ListShopBroadcasts_Call {
	return &MockMessageStore_ListShopBroadcasts_Call{Call: _e.mock.On("ListShopBroadcasts", ctx, requester, page)}
}

func (_c *MockMessageStore_ListShopBroadcasts_Call) Run(run func(ctx context.Context, requester entity.Principal, page entity.Page)) *MockMessageStore_ListShopBroadcasts_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.Principal), args[2].(entity.Page))
	})
	return _c
}

func (_c *MockMessageStore_ListShopBroadcasts_Call) Return(_a0 *entity.MessagePage, _a1 error) *MockMessageStore_ListShopBroadcasts_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockMessageStore_ListShopBroadcasts_Call) RunAndReturn(run func(context.Context, entity.Principal, entity.Page) (*entity.MessagePage, error)) *MockMessageStore_ListShopBroadcasts_Call {
	_c.Call.Return(run)
	return _c
}

// MarkDelivered provides a mock function with given fields: ctx, message
func (_m *MockMessageStore) MarkDelivered(ctx context.Context, message *entity.Message) error {
	ret := _m.Called(ctx, message)

	if len(ret) == 0 {
		panic("no return value specified for MarkDelivered")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Message) error); ok {
		r0 = rf(ctx, message)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockMessageStore_MarkDelivered_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'MarkDelivered'
type MockMessageStore_MarkDelivered_Call struct {
	*mock.Call
}

// MarkDelivered is a helper method to define mock.On call
//   - ctx context.Context
//   - message *entity.Message
func (_e *MockMessageStore_Expecter) MarkDelivered(ctx interface{}, message interface{}) *MockMessageStore_MarkDelivered_Call {
	return &MockMessageStore_MarkDelivered_Call{Call: _e.mock.On("MarkDelivered", ctx, message)}
}

func (_c *MockMessageStore_MarkDelivered_Call) Run(run func(ctx context.Context, message *entity.Message)) *MockMessageStore_MarkDelivered_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Message))
	})
	return _c
}

func (_c *MockMessageStore_MarkDelivered_Call) Return(_a0 error) *MockMessageStore_MarkDelivered_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockMessageStore_MarkDelivered_Call) RunAndReturn(run func(context.Context, *entity.Message) error) *MockMessageStore_MarkDelivered_Call {
	_c.Call.Return(run)
	return _c
}

// MarkRead provides a mock function with given fields: ctx, messageID, requester
func (_m *MockMessageStore) MarkRead(ctx context.Context, messageID uuid.UUID, requester entity.Principal) (*entity.Message, error) {
	ret := _m.Called(ctx, messageID, requester)

	if len(ret) == 0 {
		panic("no return value specified for MarkRead")
	}

	var r0 *entity.Message
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, entity.Principal) (*entity.Message, error)); ok {
		return rf(ctx, messageID, requester)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, entity.Principal) *entity.Message); ok {
		r0 = rf(ctx, messageID, requester)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Message)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, entity.Principal) error); ok {
		r1 = rf(ctx, messageID, requester)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockMessageStore_MarkRead_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'MarkRead'
type MockMessageStore_MarkRead_Call struct {
	*mock.Call
}

// MarkRead is a helper method to define mock.On call
//   - ctx context.Context
//   - messageID uuid.UUID
//   - requester entity.Principal
func (_e *MockMessageStore_Expecter) MarkRead(ctx interface{}, messageID interface{}, requester interface{}) *MockMessageStore_MarkRead_Call {
	return &MockMessageStore_MarkRead_Call{Call: _e.mock.On("MarkRead", ctx, messageID, requester)}
}

func (_c *MockMessageStore_MarkRead_Call) Run(run func(ctx context.Context, messageID uuid.UUID, requester entity.Principal)) *MockMessageStore_MarkRead_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(entity.Principal))
	})
	return _c
}

func (_c *MockMessageStore_MarkRead_Call) Return(_a0 *entity.Message, _a1 error) *MockMessageStore_MarkRead_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockMessageStore_MarkRead_Call) RunAndReturn(run func(context.Context, uuid.UUID, entity.Principal) (*entity.Message, error)) *MockMessageStore_MarkRead_Call {
	_c.Call.Return(run)
	return _c
}

// SoftDelete provides a mock function with given fields: ctx, messageID, requester
func (_m *MockMessageStore) SoftDelete(ctx context.Context, messageID uuid.UUID, requester entity.Principal) (bool, error) {
	ret := _m.Called(ctx, messageID, requester)

	if len(ret) == 0 {
		panic("no return value specified for SoftDelete")
	}

	var r0 bool
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, entity.Principal) (bool, error)); ok {
		return rf(ctx, messageID, requester)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, entity.Principal) bool); ok {
		r0 = rf(ctx, messageID, requester)
	} else {
		r0 = ret.Get(0).(bool)
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, entity.Principal) error); ok {
		r1 = rf(ctx, messageID, requester)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockMessageStore_SoftDelete_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SoftDelete'
type MockMessageStore_SoftDelete_Call struct {
	*mock.Call
}

// SoftDelete is a helper method to define mock.On call
//   - ctx context.Context
//   - messageID uuid.UUID
//   - requester entity.Principal
func (_e *MockMessageStore_Expecter) SoftDelete(ctx interface{}, messageID interface{}, requester interface{}) *MockMessageStore_SoftDelete_Call {
	return &MockMessageStore_SoftDelete_Call{Call: _e.mock.On("SoftDelete", ctx, messageID, requester)}
}

func (_c *MockMessageStore_SoftDelete_Call) Run(run func(ctx context.Context, messageID uuid.UUID, requester entity.Principal)) *MockMessageStore_SoftDelete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(entity.Principal))
	})
	return _c
}

func (_c *MockMessageStore_SoftDelete_Call) Return(_a0 bool, _a1 error) *MockMessageStore_SoftDelete_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockMessageStore_SoftDelete_Call) RunAndReturn(run func(context.Context, uuid.UUID, entity.Principal) (bool, error)) *MockMessageStore_SoftDelete_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockMessageStore creates a new instance of MockMessageStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockMessageStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMessageStore {
	mock := &MockMessageStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
