package amenity

import (
	"context"
	"database/sql"

	"go-hotel/internal/shared/connection"
	"go-hotel/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=amenity_repo.go -destination=mock/amenity_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, amenity *Amenity) error
	FindAllByCompany(ctx context.Context, companyID string) ([]Amenity, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Amenity, error)
	CountByIDs(ctx context.Context, companyID string, ids []string) (int64, error)
	CountAssignments(ctx context.Context, id string) (int64, error)
	Update(ctx context.Context, amenity *Amenity) error
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

func (r *repository) Create(ctx context.Context, amenity *Amenity) error {
	return connection.Conn(ctx, r.db, r.tx).Create(amenity).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Amenity, error) {
	var amenities []Amenity
	err := connection.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Order("category ASC, name ASC").
		Find(&amenities).Error
	return amenities, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Amenity, error) {
	var amenity Amenity
	err := connection.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		First(&amenity, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &amenity, nil
}

func (r *repository) CountByIDs(ctx context.Context, companyID string, ids []string) (int64, error) {
	var count int64
	err := connection.Conn(ctx, r.db, r.tx).
		Model(&Amenity{}).
		Scopes(tenant.Scope(companyID)).
		Where("id IN ?", ids).
		Count(&count).Error
	return count, err
}

func (r *repository) CountAssignments(ctx context.Context, id string) (int64, error) {
	var count int64
	err := connection.Conn(ctx, r.db, r.tx).
		Table("room_type_amenities").
		Where("amenity_id = ?", id).
		Count(&count).Error
	return count, err
}

func (r *repository) Update(ctx context.Context, amenity *Amenity) error {
	return connection.Conn(ctx, r.db, r.tx).Save(amenity).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	result := connection.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Amenity{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
