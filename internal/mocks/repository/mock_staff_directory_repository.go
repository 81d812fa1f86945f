package repository

import (
	context "context"
	uuid "github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"
	entity "restops/internal/domain/entity"
)

// MockStaffDirectoryRepository is an autogenerated mock type for the StaffDirectoryRepository type
type MockStaffDirectoryRepository struct {
	mock.Mock
}

type MockStaffDirectoryRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockStaffDirectoryRepository) EXPECT() *MockStaffDirectoryRepository_Expecter {
	return &MockStaffDirectoryRepository_Expecter{mock: &_m.Mock}
}

// FindBranch provides a mock function with given fields: ctx, shopID, branchID
func (_m *MockStaffDirectoryRepository) FindBranch(ctx context.Context, shopID uuid.UUID, branchID uuid.UUID) (*entity.Branch, error) {
	ret := _m.Called(ctx, shopID, branchID)

	if len(ret) == 0 {
		panic("no return value specified for FindBranch")
	}

	var r0 *entity.Branch
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) (*entity.Branch, error)); ok {
		return rf(ctx, shopID, branchID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) *entity.Branch); ok {
		r0 = rf(ctx, shopID, branchID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Branch)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r1 = rf(ctx, shopID, branchID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockStaffDirectoryRepository_FindBranch_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindBranch'
type MockStaffDirectoryRepository_FindBranch_Call struct {
	*mock.Call
}

// FindBranch is a helper method to define mock.On call
//   - ctx context.Context
//   - shopID uuid.UUID
//   - branchID uuid.UUID
func (_e *MockStaffDirectoryRepository_Expecter) FindBranch(ctx interface{}, shopID interface{}, branchID interface{}) *MockStaffDirectoryRepository_FindBranch_Call {
	return &MockStaffDirectoryRepository_FindBranch_Call{Call: _e.mock.On("FindBranch", ctx, shopID, branchID)}
}

func (_c *MockStaffDirectoryRepository_FindBranch_Call) Run(run func(ctx context.Context, shopID uuid.UUID, branchID uuid.UUID)) *MockStaffDirectoryRepository_FindBranch_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(uuid.UUID))
	})
	return _c
}

func (_c *MockStaffDirectoryRepository_FindBranch_Call) Return(_a0 *entity.Branch, _a1 error) *MockStaffDirectoryRepository_FindBranch_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockStaffDirectoryRepository_FindBranch_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID) (*entity.Branch, error)) *MockStaffDirectoryRepository_FindBranch_Call {
	_c.Call.Return(run)
	return _c
}

// FindStaff provides a mock function with given fields: ctx, role, id
func (_m *MockStaffDirectoryRepository) FindStaff(ctx context.Context, role entity.Role, id uuid.UUID) (*entity.StaffMember, error) {
	ret := _m.Called(ctx, role, id)

	if len(ret) == 0 {
		panic("no return value specified for FindStaff")
	}

	var r0 *entity.StaffMember
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.Role, uuid.UUID) (*entity.StaffMember, error)); ok {
		return rf(ctx, role, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.Role, uuid.UUID) *entity.StaffMember); ok {
		r0 = rf(ctx, role, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.StaffMember)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, entity.Role, uuid.UUID) error); ok {
		r1 = rf(ctx, role, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockStaffDirectoryRepository_FindStaff_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindStaff'
type MockStaffDirectoryRepository_FindStaff_Call struct {
	*mock.Call
}

// FindStaff is a helper method to define mock.On call
//   - ctx context.Context
//   - role entity.Role
//   - id uuid.UUID
func (_e *MockStaffDirectoryRepository_Expecter) FindStaff(ctx interface{}, role interface{}, id interface{}) *MockStaffDirectoryRepository_FindStaff_Call {
	return &MockStaffDirectoryRepository_FindStaff_Call{Call: _e.mock.On("FindStaff", ctx, role, id)}
}

func (_c *MockStaffDirectoryRepository_FindStaff_Call) Run(run func(ctx context.Context, role entity.Role, id uuid.UUID)) *MockStaffDirectoryRepository_FindStaff_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.Role), args[2].(uuid.UUID))
	})
	return _c
}

func (_c *MockStaffDirectoryRepository_FindStaff_Call) Return(_a0 *entity.StaffMember, _a1 error) *MockStaffDirectoryRepository_FindStaff_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockStaffDirectoryRepository_FindStaff_Call) RunAndReturn(run func(context.Context, entity.Role, uuid.UUID) (*entity.StaffMember, error)) *MockStaffDirectoryRepository_FindStaff_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockStaffDirectoryRepository creates a new instance of MockStaffDirectoryRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockStaffDirectoryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockStaffDirectoryRepository {
	mock := &MockStaffDirectoryRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
