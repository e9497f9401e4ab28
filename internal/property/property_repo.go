package property

import (
	"context"
	"database/sql"

	"go-hotel/internal/shared/connection"
	"go-hotel/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=property_repo.go -destination=mock/property_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, property *Property) error
	FindAllByCompany(ctx context.Context, companyID string) ([]Property, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Property, error)
	CountChildren(ctx context.Context, id string) (int64, error)
	Update(ctx context.Context, property *Property) error
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

func (r *repository) Create(ctx context.Context, property *Property) error {
	return connection.Conn(ctx, r.db, r.tx).Create(property).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Property, error) {
	var properties []Property
	err := connection.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Order("name ASC").
		Find(&properties).Error
	return properties, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Property, error) {
	var property Property
	err := connection.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		First(&property, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// CountChildren counts live rooms and room types attached to the property.
func (r *repository) CountChildren(ctx context.Context, id string) (int64, error) {
	var count int64
	err := connection.Conn(ctx, r.db, r.tx).Raw(`
		SELECT
			(SELECT count(*) FROM rooms WHERE property_id = ? AND deleted_at IS NULL) +
			(SELECT count(*) FROM room_types WHERE property_id = ? AND deleted_at IS NULL)
	`, id, id).Scan(&count).Error
	return count, err
}

func (r *repository) Update(ctx context.Context, property *Property) error {
	return connection.Conn(ctx, r.db, r.tx).Save(property).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	result := connection.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Property{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
