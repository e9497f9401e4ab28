package roomtype

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	roomtypeerrors "go-hotel/internal/roomtype/errors"
	"go-hotel/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultCurrency = "IDR"
	timeLayout      = time.RFC3339
)

// PropertyLookup confirms a property belongs to the company.
type PropertyLookup interface {
	Exists(ctx context.Context, companyID, id string) (bool, error)
}

// AmenityChecker confirms every amenity id belongs to the company.
type AmenityChecker interface {
	ExistAll(ctx context.Context, companyID string, ids []string) (bool, error)
}

//go:generate mockgen -source=room_type_service.go -destination=mock/room_type_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateRoomTypeRequest) (RoomTypeResponse, error)
	GetAll(ctx context.Context, companyID string, filter ListFilter) ([]RoomTypeResponse, error)
	GetByID(ctx context.Context, companyID, id string) (RoomTypeResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateRoomTypeRequest) (RoomTypeResponse, error)
	SetAmenities(ctx context.Context, companyID, id string, req SetAmenitiesRequest) (RoomTypeResponse, error)
	Delete(ctx context.Context, companyID, id string) error
	BelongsToProperty(ctx context.Context, companyID, id, propertyID string) (bool, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	properties PropertyLookup
	amenities  AmenityChecker
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	properties PropertyLookup,
	amenities AmenityChecker,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("roomtype.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("roomtype.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		properties: properties,
		amenities:  amenities,
		logger:     l,
	}
}

func (s *service) Create(
	ctx context.Context,
	companyID string,
	req CreateRoomTypeRequest,
) (RoomTypeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return RoomTypeResponse{}, roomtypeerrors.ErrInvalidCompanyID
	}
	propertyUUID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		return RoomTypeResponse{}, roomtypeerrors.ErrInvalidPropertyID
	}
	if !req.BaseRate.IsPositive() {
		return RoomTypeResponse{}, roomtypeerrors.ErrInvalidBaseRate
	}

	ok, err := s.properties.Exists(ctx, companyID, req.PropertyID)
	if err != nil {
		log.Error("create room type property lookup failed", zap.Error(err))
		return RoomTypeResponse{}, err
	}
	if !ok {
		return RoomTypeResponse{}, roomtypeerrors.ErrPropertyNotFound
	}

	amenityIDs, err := s.checkAmenities(ctx, companyID, req.AmenityIDs)
	if err != nil {
		return RoomTypeResponse{}, err
	}

	roomType := &RoomType{
		ID:           uuid.New(),
		CompanyID:    companyUUID,
		PropertyID:   propertyUUID,
		Code:         strings.ToUpper(strings.TrimSpace(req.Code)),
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		BaseRate:     req.BaseRate.Round(2),
		Currency:     currencyOrDefault(req.Currency),
		MaxOccupancy: req.MaxOccupancy,
		BedType:      req.BedType,
		SizeSqm:      req.SizeSqm,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create room type begin tx failed", zap.Error(err))
		return RoomTypeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Create(ctx, roomType); err != nil {
		log.Warn("create room type persist failed", zap.String("code", roomType.Code), zap.Error(err))
		return RoomTypeResponse{}, mapRepositoryError(err)
	}
	if err := qtx.ReplaceAmenities(ctx, roomType.ID, amenityIDs); err != nil {
		log.Error("create room type amenities failed", zap.Error(err))
		return RoomTypeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("create room type commit failed", zap.Error(err))
		return RoomTypeResponse{}, err
	}

	roomType.Amenities = joinRows(roomType.ID, amenityIDs)
	log.Info("room type created",
		zap.String("room_type_id", roomType.ID.String()),
		zap.String("property_id", req.PropertyID),
	)
	return mapToResponse(*roomType), nil
}

func (s *service) GetAll(
	ctx context.Context,
	companyID string,
	filter ListFilter,
) ([]RoomTypeResponse, error) {
	roomTypes, err := s.repo.FindAll(ctx, companyID, filter)
	if err != nil {
		s.logger.Error("list room types failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(roomTypes), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (RoomTypeResponse, error) {
	roomType, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return RoomTypeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*roomType), nil
}

func (s *service) Update(
	ctx context.Context,
	companyID, id string,
	req UpdateRoomTypeRequest,
) (RoomTypeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if !req.BaseRate.IsPositive() {
		return RoomTypeResponse{}, roomtypeerrors.ErrInvalidBaseRate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update room type begin tx failed", zap.Error(err))
		return RoomTypeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	roomType, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return RoomTypeResponse{}, mapRepositoryError(err)
	}

	previousRate := roomType.BaseRate
	roomType.Name = strings.TrimSpace(req.Name)
	roomType.Description = req.Description
	roomType.BaseRate = req.BaseRate.Round(2)
	roomType.Currency = currencyOrDefault(req.Currency)
	roomType.MaxOccupancy = req.MaxOccupancy
	roomType.BedType = req.BedType
	roomType.SizeSqm = req.SizeSqm

	if err := qtx.Update(ctx, roomType); err != nil {
		log.Error("update room type persist failed", zap.String("room_type_id", id), zap.Error(err))
		return RoomTypeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("update room type commit failed", zap.Error(err))
		return RoomTypeResponse{}, err
	}

	if !previousRate.Equal(roomType.BaseRate) {
		log.Info("room type rate changed",
			zap.String("room_type_id", id),
			zap.String("from", previousRate.StringFixed(2)),
			zap.String("to", roomType.BaseRate.StringFixed(2)),
		)
	}
	return mapToResponse(*roomType), nil
}

// SetAmenities replaces the amenity set of a room type. An empty list clears it.
func (s *service) SetAmenities(
	ctx context.Context,
	companyID, id string,
	req SetAmenitiesRequest,
) (RoomTypeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	amenityIDs, err := s.checkAmenities(ctx, companyID, req.AmenityIDs)
	if err != nil {
		return RoomTypeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("set amenities begin tx failed", zap.Error(err))
		return RoomTypeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	roomType, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return RoomTypeResponse{}, mapRepositoryError(err)
	}

	if err := qtx.ReplaceAmenities(ctx, roomType.ID, amenityIDs); err != nil {
		log.Error("set amenities persist failed", zap.String("room_type_id", id), zap.Error(err))
		return RoomTypeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("set amenities commit failed", zap.Error(err))
		return RoomTypeResponse{}, err
	}

	roomType.Amenities = joinRows(roomType.ID, amenityIDs)
	log.Info("room type amenities replaced",
		zap.String("room_type_id", id),
		zap.Int("count", len(amenityIDs)),
	)
	return mapToResponse(*roomType), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("delete room type begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rooms, err := qtx.CountRooms(ctx, id)
	if err != nil {
		return err
	}
	if rooms > 0 {
		return roomtypeerrors.ErrRoomTypeHasRooms
	}

	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("delete room type commit failed", zap.Error(err))
		return err
	}

	log.Info("room type deleted", zap.String("room_type_id", id))
	return nil
}

func (s *service) BelongsToProperty(ctx context.Context, companyID, id, propertyID string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}
	roomType, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return roomType.PropertyID.String() == propertyID, nil
}

// checkAmenities de-duplicates the ids and verifies them against the catalogue.
func (s *service) checkAmenities(ctx context.Context, companyID string, ids []string) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	parsed := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, roomtypeerrors.ErrUnknownAmenity
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id.String())
		parsed = append(parsed, id)
	}
	if len(parsed) == 0 {
		return parsed, nil
	}

	ok, err := s.amenities.ExistAll(ctx, companyID, unique)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, roomtypeerrors.ErrUnknownAmenity
	}
	return parsed, nil
}

func joinRows(roomTypeID uuid.UUID, amenityIDs []uuid.UUID) []RoomTypeAmenity {
	rows := make([]RoomTypeAmenity, len(amenityIDs))
	for i, id := range amenityIDs {
		rows[i] = RoomTypeAmenity{RoomTypeID: roomTypeID, AmenityID: id}
	}
	return rows
}

func currencyOrDefault(c string) string {
	if c == "" {
		return defaultCurrency
	}
	return strings.ToUpper(c)
}

func mapToResponse(rt RoomType) RoomTypeResponse {
	return RoomTypeResponse{
		ID:           rt.ID.String(),
		CompanyID:    rt.CompanyID.String(),
		PropertyID:   rt.PropertyID.String(),
		Code:         rt.Code,
		Name:         rt.Name,
		Description:  rt.Description,
		BaseRate:     rt.BaseRate,
		Currency:     rt.Currency,
		MaxOccupancy: rt.MaxOccupancy,
		BedType:      rt.BedType,
		SizeSqm:      rt.SizeSqm,
		AmenityIDs:   rt.amenityIDs(),
		CreatedAt:    rt.CreatedAt.UTC().Format(timeLayout),
		UpdatedAt:    rt.UpdatedAt.UTC().Format(timeLayout),
	}
}

func mapToListResponse(roomTypes []RoomType) []RoomTypeResponse {
	res := make([]RoomTypeResponse, len(roomTypes))
	for i, rt := range roomTypes {
		res[i] = mapToResponse(rt)
	}
	return res
}
