package property

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
	_ "time/tzdata"

	propertyerrors "go-hotel/internal/property/errors"
	"go-hotel/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const timeLayout = time.RFC3339

//go:generate mockgen -source=property_service.go -destination=mock/property_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreatePropertyRequest) (PropertyResponse, error)
	GetAll(ctx context.Context, companyID string) ([]PropertyResponse, error)
	GetByID(ctx context.Context, companyID, id string) (PropertyResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdatePropertyRequest) (PropertyResponse, error)
	Delete(ctx context.Context, companyID, id string) error
	Exists(ctx context.Context, companyID, id string) (bool, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("property.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("property.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	companyID string,
	req CreatePropertyRequest,
) (PropertyResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return PropertyResponse{}, propertyerrors.ErrInvalidCompanyID
	}
	propertyType, err := normalizeType(req.PropertyType)
	if err != nil {
		return PropertyResponse{}, err
	}
	timezone, err := normalizeTimezone(req.Timezone)
	if err != nil {
		return PropertyResponse{}, err
	}

	property := &Property{
		ID:           uuid.New(),
		CompanyID:    companyUUID,
		Code:         strings.ToUpper(strings.TrimSpace(req.Code)),
		Name:         strings.TrimSpace(req.Name),
		PropertyType: propertyType,
		StarRating:   req.StarRating,
		Address:      strings.TrimSpace(req.Address),
		City:         strings.TrimSpace(req.City),
		Country:      strings.ToUpper(req.Country),
		Phone:        req.Phone,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		CheckInTime:  orDefault(req.CheckInTime, defaultCheckInTime),
		CheckOutTime: orDefault(req.CheckOutTime, defaultCheckOutTime),
		Timezone:     timezone,
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, property); err != nil {
		log.Warn("create property failed", zap.String("code", property.Code), zap.Error(err))
		return PropertyResponse{}, mapRepositoryError(err)
	}

	log.Info("property created",
		zap.String("property_id", property.ID.String()),
		zap.String("code", property.Code),
	)
	return mapToResponse(*property), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]PropertyResponse, error) {
	properties, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("list properties failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(properties), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (PropertyResponse, error) {
	property, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PropertyResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*property), nil
}

func (s *service) Update(
	ctx context.Context,
	companyID, id string,
	req UpdatePropertyRequest,
) (PropertyResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	propertyType, err := normalizeType(req.PropertyType)
	if err != nil {
		return PropertyResponse{}, err
	}
	timezone, err := normalizeTimezone(req.Timezone)
	if err != nil {
		return PropertyResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update property begin tx failed", zap.Error(err))
		return PropertyResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	property, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PropertyResponse{}, mapRepositoryError(err)
	}

	property.Name = strings.TrimSpace(req.Name)
	property.PropertyType = propertyType
	property.StarRating = req.StarRating
	property.Address = strings.TrimSpace(req.Address)
	property.City = strings.TrimSpace(req.City)
	property.Country = strings.ToUpper(req.Country)
	property.Phone = req.Phone
	property.Email = strings.ToLower(strings.TrimSpace(req.Email))
	property.CheckInTime = req.CheckInTime
	property.CheckOutTime = req.CheckOutTime
	property.Timezone = timezone
	if req.IsActive != nil {
		property.IsActive = *req.IsActive
	}

	if err := qtx.Update(ctx, property); err != nil {
		log.Error("update property persist failed", zap.String("property_id", id), zap.Error(err))
		return PropertyResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("update property commit failed", zap.Error(err))
		return PropertyResponse{}, err
	}

	log.Info("property updated", zap.String("property_id", id))
	return mapToResponse(*property), nil
}

// Delete soft deletes a property once it no longer holds rooms or room types.
func (s *service) Delete(ctx context.Context, companyID, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("delete property begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	children, err := qtx.CountChildren(ctx, id)
	if err != nil {
		return err
	}
	if children > 0 {
		return propertyerrors.ErrPropertyHasRooms
	}

	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("delete property commit failed", zap.Error(err))
		return err
	}

	log.Info("property deleted", zap.String("property_id", id))
	return nil
}

func (s *service) Exists(ctx context.Context, companyID, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}
	_, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func normalizeType(t string) (string, error) {
	t = strings.ToUpper(strings.TrimSpace(t))
	if t == "" {
		return TypeHotel, nil
	}
	if !isKnownType(t) {
		return "", propertyerrors.ErrInvalidPropertyType
	}
	return t, nil
}

func normalizeTimezone(tz string) (string, error) {
	tz = strings.TrimSpace(tz)
	if tz == "" {
		return defaultTimezone, nil
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return "", propertyerrors.ErrInvalidTimezone
	}
	return tz, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func mapToResponse(p Property) PropertyResponse {
	return PropertyResponse{
		ID:           p.ID.String(),
		CompanyID:    p.CompanyID.String(),
		Code:         p.Code,
		Name:         p.Name,
		PropertyType: p.PropertyType,
		StarRating:   p.StarRating,
		Address:      p.Address,
		City:         p.City,
		Country:      p.Country,
		Phone:        p.Phone,
		Email:        p.Email,
		CheckInTime:  p.CheckInTime,
		CheckOutTime: p.CheckOutTime,
		Timezone:     p.Timezone,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt.UTC().Format(timeLayout),
		UpdatedAt:    p.UpdatedAt.UTC().Format(timeLayout),
	}
}

func mapToListResponse(properties []Property) []PropertyResponse {
	res := make([]PropertyResponse, len(properties))
	for i, p := range properties {
		res[i] = mapToResponse(p)
	}
	return res
}
