package amenity_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"go-hotel/internal/amenity"
	amenityerrors "go-hotel/internal/amenity/errors"
	amenityMock "go-hotel/internal/amenity/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   amenity.Service
	repo      *amenityMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()

	ctrl := gomock.NewController(t)
	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	rdb, redisMock := redismock.NewClientMock()
	repo := amenityMock.NewMockRepository(ctrl)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   amenity.NewService(db, repo, rdb),
		repo:      repo,
		redismock: redisMock,
	}
}

func TestAmenityService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("defaults category and invalidates cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, a *amenity.Amenity) error {
				assert.Equal(t, "Wi-Fi", a.Name)
				assert.Equal(t, amenity.CategoryRoom, a.Category)
				return nil
			})
		deps.redismock.ExpectDel(amenity.GetAmenityListKey(companyID)).SetVal(1)

		resp, err := deps.service.Create(ctx, companyID, amenity.CreateAmenityRequest{Name: "  Wi-Fi "})

		assert.NoError(t, err)
		assert.Equal(t, amenity.CategoryRoom, resp.Category)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("unknown category", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, companyID, amenity.CreateAmenityRequest{Name: "Spa", Category: "wellness"})

		assert.ErrorIs(t, err, amenityerrors.ErrInvalidCategory)
	})

	t.Run("duplicate name", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_amenity_name"})

		_, err := deps.service.Create(ctx, companyID, amenity.CreateAmenityRequest{Name: "Pool", Category: "property"})

		assert.ErrorIs(t, err, amenityerrors.ErrAmenityAlreadyExists)
	})
}

func TestAmenityService_GetAll(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	cacheKey := amenity.GetAmenityListKey(companyID)

	t.Run("cache hit", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		cached, _ := json.Marshal([]amenity.AmenityResponse{{ID: "a1", Name: "Minibar"}})
		deps.redismock.ExpectGet(cacheKey).SetVal(string(cached))

		resp, err := deps.service.GetAll(ctx, companyID)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Minibar", resp[0].Name)
	})

	t.Run("cache miss fills cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		rows := []amenity.Amenity{{ID: uuid.New(), CompanyID: uuid.MustParse(companyID), Name: "Safe", Category: amenity.CategoryRoom}}
		expected, _ := json.Marshal([]amenity.AmenityResponse{
			{
				ID:        rows[0].ID.String(),
				CompanyID: companyID,
				Name:      "Safe",
				Category:  amenity.CategoryRoom,
				CreatedAt: time.Time{}.Format(time.RFC3339),
				UpdatedAt: time.Time{}.Format(time.RFC3339),
			},
		})

		deps.redismock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().FindAllByCompany(ctx, companyID).Return(rows, nil)
		deps.redismock.ExpectSet(cacheKey, expected, 6*time.Hour).SetVal("OK")

		resp, err := deps.service.GetAll(ctx, companyID)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})
}

func TestAmenityService_Delete(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	id := uuid.New().String()

	t.Run("unassigned", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().CountAssignments(ctx, id).Return(int64(0), nil)
		deps.repo.EXPECT().Delete(ctx, companyID, id).Return(nil)
		deps.redismock.ExpectDel(amenity.GetAmenityListKey(companyID)).SetVal(1)

		assert.NoError(t, deps.service.Delete(ctx, companyID, id))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("still assigned", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().CountAssignments(ctx, id).Return(int64(2), nil)

		assert.ErrorIs(t, deps.service.Delete(ctx, companyID, id), amenityerrors.ErrAmenityInUse)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().CountAssignments(ctx, id).Return(int64(0), nil)
		deps.repo.EXPECT().Delete(ctx, companyID, id).Return(gorm.ErrRecordNotFound)

		assert.ErrorIs(t, deps.service.Delete(ctx, companyID, id), amenityerrors.ErrAmenityNotFound)
	})
}

func TestAmenityService_ExistAll(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	ids := []string{uuid.New().String(), uuid.New().String()}

	deps := setupServiceTest(t)
	defer deps.db.Close()

	ok, err := deps.service.ExistAll(ctx, companyID, nil)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = deps.service.ExistAll(ctx, companyID, []string{"not-a-uuid"})
	assert.NoError(t, err)
	assert.False(t, ok)

	deps.repo.EXPECT().CountByIDs(ctx, companyID, ids).Return(int64(1), nil)
	ok, err = deps.service.ExistAll(ctx, companyID, ids)
	assert.NoError(t, err)
	assert.False(t, ok)

	deps.repo.EXPECT().CountByIDs(ctx, companyID, ids).Return(int64(2), nil)
	ok, err = deps.service.ExistAll(ctx, companyID, ids)
	assert.NoError(t, err)
	assert.True(t, ok)
}
