package photo

import (
	"context"
	"database/sql"

	"go-hotel/internal/shared/connection"
	"go-hotel/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=photo_repo.go -destination=mock/photo_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, photo *Photo) error
	FindByOwner(ctx context.Context, companyID, ownerType, ownerID string) ([]Photo, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Photo, error)
	FindFirstByOwner(ctx context.Context, companyID, ownerType, ownerID string) (*Photo, error)
	CountByOwner(ctx context.Context, companyID, ownerType, ownerID string) (int64, error)
	ClearPrimary(ctx context.Context, companyID, ownerType, ownerID string) error
	MarkPrimary(ctx context.Context, id string) error
	Delete(ctx context.Context, companyID, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, photo *Photo) error {
	return connection.Conn(ctx, r.db, r.tx).Create(photo).Error
}

func (r *repository) owner(ctx context.Context, companyID, ownerType, ownerID string) *gorm.DB {
	return connection.Conn(ctx, r.db, r.tx).
		Model(&Photo{}).
		Scopes(tenant.Scope(companyID)).
		Where("owner_type = ? AND owner_id = ?", ownerType, ownerID)
}

func (r *repository) FindByOwner(ctx context.Context, companyID, ownerType, ownerID string) ([]Photo, error) {
	var photos []Photo
	err := r.owner(ctx, companyID, ownerType, ownerID).
		Order("is_primary DESC, sort_order ASC, created_at ASC").
		Find(&photos).Error
	return photos, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Photo, error) {
	var photo Photo
	err := connection.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		First(&photo, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

// FindFirstByOwner returns the lowest sorted photo of an owner, used to pick a
// new primary.
func (r *repository) FindFirstByOwner(ctx context.Context, companyID, ownerType, ownerID string) (*Photo, error) {
	var photo Photo
	err := r.owner(ctx, companyID, ownerType, ownerID).
		Order("sort_order ASC, created_at ASC").
		First(&photo).Error
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *repository) CountByOwner(ctx context.Context, companyID, ownerType, ownerID string) (int64, error) {
	var total int64
	err := r.owner(ctx, companyID, ownerType, ownerID).Count(&total).Error
	return total, err
}

func (r *repository) ClearPrimary(ctx context.Context, companyID, ownerType, ownerID string) error {
	return r.owner(ctx, companyID, ownerType, ownerID).
		Where("is_primary = ?", true).
		Update("is_primary", false).Error
}

func (r *repository) MarkPrimary(ctx context.Context, id string) error {
	result := connection.Conn(ctx, r.db, r.tx).
		Model(&Photo{}).
		Where("id = ?", id).
		Update("is_primary", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	result := connection.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Photo{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
