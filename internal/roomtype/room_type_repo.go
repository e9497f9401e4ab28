package roomtype

import (
	"context"
	"database/sql"

	"go-hotel/internal/shared/connection"
	"go-hotel/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=room_type_repo.go -destination=mock/room_type_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, roomType *RoomType) error
	FindAll(ctx context.Context, companyID string, filter ListFilter) ([]RoomType, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*RoomType, error)
	Update(ctx context.Context, roomType *RoomType) error
	ReplaceAmenities(ctx context.Context, roomTypeID uuid.UUID, amenityIDs []uuid.UUID) error
	CountRooms(ctx context.Context, id string) (int64, error)
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

func (r *repository) Create(ctx context.Context, roomType *RoomType) error {
	return connection.Conn(ctx, r.db, r.tx).Omit("Amenities").Create(roomType).Error
}

func (r *repository) FindAll(ctx context.Context, companyID string, filter ListFilter) ([]RoomType, error) {
	var roomTypes []RoomType
	err := connection.Conn(ctx, r.db, r.tx).
		Preload("Amenities").
		Scopes(tenant.Scope(companyID), tenant.PropertyScope(filter.PropertyID)).
		Order("base_rate ASC, name ASC").
		Find(&roomTypes).Error
	return roomTypes, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*RoomType, error) {
	var roomType RoomType
	err := connection.Conn(ctx, r.db, r.tx).
		Preload("Amenities").
		Scopes(tenant.Scope(companyID)).
		First(&roomType, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &roomType, nil
}

func (r *repository) Update(ctx context.Context, roomType *RoomType) error {
	return connection.Conn(ctx, r.db, r.tx).Omit("Amenities").Save(roomType).Error
}

// ReplaceAmenities swaps the full amenity set of a room type.
func (r *repository) ReplaceAmenities(ctx context.Context, roomTypeID uuid.UUID, amenityIDs []uuid.UUID) error {
	conn := connection.Conn(ctx, r.db, r.tx)
	if err := conn.Where("room_type_id = ?", roomTypeID).Delete(&RoomTypeAmenity{}).Error; err != nil {
		return err
	}
	if len(amenityIDs) == 0 {
		return nil
	}
	rows := make([]RoomTypeAmenity, len(amenityIDs))
	for i, id := range amenityIDs {
		rows[i] = RoomTypeAmenity{RoomTypeID: roomTypeID, AmenityID: id}
	}
	return conn.Create(&rows).Error
}

func (r *repository) CountRooms(ctx context.Context, id string) (int64, error) {
	var count int64
	err := connection.Conn(ctx, r.db, r.tx).
		Table("rooms").
		Where("room_type_id = ? AND deleted_at IS NULL", id).
		Count(&count).Error
	return count, err
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	result := connection.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Delete(&RoomType{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
