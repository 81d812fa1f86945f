package postgres

import (
	"context"

	"restops/internal/domain/entity"
	"restops/internal/domain/repository"
	"restops/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// staffDirectoryRepository implements repository.StaffDirectoryRepository
// over the shops, branches, managers and cashiers tables.
type staffDirectoryRepository struct {
	db *gorm.DB
}

// NewStaffDirectoryRepository is the constructor for staffDirectoryRepository.
func NewStaffDirectoryRepository(db *gorm.DB) repository.StaffDirectoryRepository {
	return &staffDirectoryRepository{
		db: db,
	}
}

// FindStaff resolves (role, id) against the matching directory table.
func (repo *staffDirectoryRepository) FindStaff(ctx context.Context, role entity.Role, id uuid.UUID) (*entity.StaffMember, error) {
	db := repo.db.WithContext(ctx)

	switch role {
	case entity.RoleAdmin:
		var shopM model.ShopModel
		if err := db.Where("id = ?", id).First(&shopM).Error; err != nil {
			return nil, staffLookupError(err, "failed to find shop")
		}

		return &entity.StaffMember{ID: shopM.ID, Role: role, ShopID: shopM.ID, Name: shopM.Name}, nil

	case entity.RoleManager:
		var managerM model.ManagerModel
		if err := db.Where("id = ?", id).First(&managerM).Error; err != nil {
			return nil, staffLookupError(err, "failed to find manager")
		}

		return &entity.StaffMember{ID: managerM.ID, Role: role, ShopID: managerM.ShopID, BranchID: managerM.BranchID, Name: managerM.Name}, nil

	case entity.RoleCashier:
		var cashierM model.CashierModel
		if err := db.Where("id = ?", id).First(&cashierM).Error; err != nil {
			return nil, staffLookupError(err, "failed to find cashier")
		}

		return &entity.StaffMember{ID: cashierM.ID, Role: role, ShopID: cashierM.ShopID, BranchID: cashierM.BranchID, Name: cashierM.Name}, nil

	default:
		return nil, repository.ErrStaffNotFound
	}
}

// FindBranch retrieves a branch within a shop.
func (repo *staffDirectoryRepository) FindBranch(ctx context.Context, shopID, branchID uuid.UUID) (*entity.Branch, error) {
	var branchM model.BranchModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND shop_id = ?", branchID, shopID).
		First(&branchM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBranchNotFound
		}

		return nil, errors.Wrap(err, "failed to find branch")
	}

	return &entity.Branch{ID: branchM.ID, ShopID: branchM.ShopID, Name: branchM.Name}, nil
}

func staffLookupError(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrStaffNotFound
	}

	return errors.Wrap(err, message)
}
