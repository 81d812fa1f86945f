package repository

import (
	"context"

	"restops/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrStaffNotFound is returned when no directory entry matches a (role, id) pair.
	ErrStaffNotFound = errors.New("staff member not found")
	// ErrBranchNotFound is returned when a branch does not exist within a shop.
	ErrBranchNotFound = errors.New("branch not found")
)

// StaffDirectoryRepository reads the shop, branch, manager and cashier directories.
// The messaging core never writes to them.
type StaffDirectoryRepository interface {
	// FindStaff resolves a staff member. Admin lookups resolve the shop itself.
	FindStaff(ctx context.Context, role entity.Role, id uuid.UUID) (*entity.StaffMember, error)

	// FindBranch retrieves a branch within a shop.
	FindBranch(ctx context.Context, shopID, branchID uuid.UUID) (*entity.Branch, error)
}
