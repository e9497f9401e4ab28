package room

import (
	"context"
	"database/sql"

	"go-hotel/internal/shared/connection"
	"go-hotel/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=room_repo.go -destination=mock/room_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, room *Room) error
	FindAll(ctx context.Context, companyID string, filter ListFilter) ([]Room, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Room, error)
	FindForUpdate(ctx context.Context, companyID, id string) (*Room, error)
	Update(ctx context.Context, room *Room) error
	Delete(ctx context.Context, companyID, id string) error
	CreateHistory(ctx context.Context, history *StatusHistory) error
	FindHistory(ctx context.Context, companyID, roomID string) ([]StatusHistory, error)
	CountByStatus(ctx context.Context, companyID, propertyID string) ([]StatusCount, error)
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

func (r *repository) Create(ctx context.Context, room *Room) error {
	return connection.Conn(ctx, r.db, r.tx).Create(room).Error
}

func (r *repository) FindAll(ctx context.Context, companyID string, filter ListFilter) ([]Room, error) {
	var rooms []Room
	q := connection.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID), tenant.PropertyScope(filter.PropertyID))
	if filter.RoomTypeID != "" {
		q = q.Where("room_type_id = ?", filter.RoomTypeID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Floor != nil {
		q = q.Where("floor = ?", *filter.Floor)
	}
	err := q.Order("floor ASC, room_number ASC").Find(&rooms).Error
	return rooms, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Room, error) {
	var room Room
	err := connection.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		First(&room, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// FindForUpdate locks the room row until the surrounding transaction ends.
func (r *repository) FindForUpdate(ctx context.Context, companyID, id string) (*Room, error) {
	var room Room
	err := connection.Conn(ctx, r.db, r.tx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		First(&room, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *repository) Update(ctx context.Context, room *Room) error {
	return connection.Conn(ctx, r.db, r.tx).Save(room).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	result := connection.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Room{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CreateHistory(ctx context.Context, history *StatusHistory) error {
	return connection.Conn(ctx, r.db, r.tx).Create(history).Error
}

func (r *repository) FindHistory(ctx context.Context, companyID, roomID string) ([]StatusHistory, error) {
	var history []StatusHistory
	err := connection.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Where("room_id = ?", roomID).
		Order("changed_at DESC").
		Find(&history).Error
	return history, err
}

func (r *repository) CountByStatus(ctx context.Context, companyID, propertyID string) ([]StatusCount, error) {
	var counts []StatusCount
	q := connection.Conn(ctx, r.db, r.tx).
		Model(&Room{}).
		Select("status, count(*) AS total").
		Scopes(tenant.Scope(companyID), tenant.PropertyScope(propertyID))
	err := q.Group("status").Scan(&counts).Error
	return counts, err
}
