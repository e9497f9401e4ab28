package amenity

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	amenityerrors "go-hotel/internal/amenity/errors"
	"go-hotel/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	AmenityListKeyPrefix = "amenities:list:"
	amenityListTTL       = 6 * time.Hour
	timeLayout           = time.RFC3339
)

func GetAmenityListKey(companyID string) string {
	return AmenityListKeyPrefix + companyID
}

//go:generate mockgen -source=amenity_service.go -destination=mock/amenity_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateAmenityRequest) (AmenityResponse, error)
	GetAll(ctx context.Context, companyID string) ([]AmenityResponse, error)
	GetByID(ctx context.Context, companyID, id string) (AmenityResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateAmenityRequest) (AmenityResponse, error)
	Delete(ctx context.Context, companyID, id string) error
	ExistAll(ctx context.Context, companyID string, ids []string) (bool, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("amenity.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("amenity.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	companyID string,
	req CreateAmenityRequest,
) (AmenityResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return AmenityResponse{}, amenityerrors.ErrInvalidCompanyID
	}
	category, err := normalizeCategory(req.Category)
	if err != nil {
		return AmenityResponse{}, err
	}

	amenity := &Amenity{
		ID:          uuid.New(),
		CompanyID:   companyUUID,
		Name:        strings.TrimSpace(req.Name),
		Category:    category,
		Icon:        req.Icon,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, amenity); err != nil {
		log.Warn("create amenity failed", zap.String("name", amenity.Name), zap.Error(err))
		return AmenityResponse{}, mapRepositoryError(err)
	}

	s.invalidateList(ctx, companyID)
	log.Info("amenity created", zap.String("amenity_id", amenity.ID.String()))

	return mapToResponse(*amenity), nil
}

// GetAll serves the amenity catalogue from redis when possible. Cache errors
// fall through to the database.
func (s *service) GetAll(ctx context.Context, companyID string) ([]AmenityResponse, error) {
	cacheKey := GetAmenityListKey(companyID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []AmenityResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	amenities, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("list amenities failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	resp := mapToListResponse(amenities)

	if s.rdb != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, cacheKey, data, amenityListTTL).Err(); err != nil {
				s.logger.Warn("cache amenity list failed", zap.Error(err))
			}
		}
	}

	return resp, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (AmenityResponse, error) {
	amenity, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return AmenityResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*amenity), nil
}

func (s *service) Update(
	ctx context.Context,
	companyID, id string,
	req UpdateAmenityRequest,
) (AmenityResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	category, err := normalizeCategory(req.Category)
	if err != nil {
		return AmenityResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update amenity begin tx failed", zap.Error(err))
		return AmenityResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	amenity, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return AmenityResponse{}, mapRepositoryError(err)
	}

	amenity.Name = strings.TrimSpace(req.Name)
	amenity.Category = category
	amenity.Icon = req.Icon
	amenity.Description = req.Description

	if err := qtx.Update(ctx, amenity); err != nil {
		log.Warn("update amenity failed", zap.String("amenity_id", id), zap.Error(err))
		return AmenityResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("update amenity commit failed", zap.Error(err))
		return AmenityResponse{}, err
	}

	s.invalidateList(ctx, companyID)
	return mapToResponse(*amenity), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("delete amenity begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	assigned, err := qtx.CountAssignments(ctx, id)
	if err != nil {
		return err
	}
	if assigned > 0 {
		return amenityerrors.ErrAmenityInUse
	}

	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("delete amenity commit failed", zap.Error(err))
		return err
	}

	s.invalidateList(ctx, companyID)
	log.Info("amenity deleted", zap.String("amenity_id", id))
	return nil
}

// ExistAll reports whether every id names an amenity of the company.
func (s *service) ExistAll(ctx context.Context, companyID string, ids []string) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			return false, nil
		}
	}

	count, err := s.repo.CountByIDs(ctx, companyID, ids)
	if err != nil {
		return false, err
	}
	return count == int64(len(ids)), nil
}

func (s *service) invalidateList(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetAmenityListKey(companyID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate amenity cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func normalizeCategory(c string) (string, error) {
	c = strings.ToUpper(strings.TrimSpace(c))
	if c == "" {
		return CategoryRoom, nil
	}
	if !isKnownCategory(c) {
		return "", amenityerrors.ErrInvalidCategory
	}
	return c, nil
}

func mapToResponse(a Amenity) AmenityResponse {
	return AmenityResponse{
		ID:          a.ID.String(),
		CompanyID:   a.CompanyID.String(),
		Name:        a.Name,
		Category:    a.Category,
		Icon:        a.Icon,
		Description: a.Description,
		CreatedAt:   a.CreatedAt.UTC().Format(timeLayout),
		UpdatedAt:   a.UpdatedAt.UTC().Format(timeLayout),
	}
}

func mapToListResponse(amenities []Amenity) []AmenityResponse {
	res := make([]AmenityResponse, len(amenities))
	for i, a := range amenities {
		res[i] = mapToResponse(a)
	}
	return res
}
