package photo

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	photoerrors "go-hotel/internal/photo/errors"
	"go-hotel/internal/shared/contextutil"
	"go-hotel/internal/shared/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"
	"gorm.io/gorm"
)

const (
	DefaultMaxBytes int64 = 5 << 20
	timeLayout            = time.RFC3339
)

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// OwnerChecker reports whether an owner record exists inside a company.
type OwnerChecker interface {
	Exists(ctx context.Context, companyID, id string) (bool, error)
}

type OwnerCheckFunc func(ctx context.Context, companyID, id string) (bool, error)

func (f OwnerCheckFunc) Exists(ctx context.Context, companyID, id string) (bool, error) {
	return f(ctx, companyID, id)
}

// Owners maps an owner type to the lookup used to validate uploads.
type Owners map[string]OwnerChecker

//go:generate mockgen -source=photo_service.go -destination=mock/photo_service_mock.go -package=mock
type Service interface {
	Upload(ctx context.Context, companyID, actorID string, req UploadPhotoRequest, file FileInput) (PhotoResponse, error)
	List(ctx context.Context, companyID string, filter ListFilter) ([]PhotoResponse, error)
	GetByID(ctx context.Context, companyID, id string) (PhotoResponse, error)
	Open(ctx context.Context, companyID, id string) (io.ReadCloser, PhotoResponse, error)
	SetPrimary(ctx context.Context, companyID, id string) (PhotoResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	store    storage.FileStorage
	owners   Owners
	maxBytes int64
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	store storage.FileStorage,
	owners Owners,
	maxBytes int64,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("photo.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("photo.service")
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &service{
		db:       db,
		repo:     repo,
		store:    store,
		owners:   owners,
		maxBytes: maxBytes,
		logger:   l,
	}
}

func (s *service) ownerChecker(ownerType string) (string, OwnerChecker, error) {
	t := strings.ToUpper(strings.TrimSpace(ownerType))
	if !isKnownOwnerType(t) {
		return "", nil, photoerrors.ErrInvalidOwnerType
	}
	checker, ok := s.owners[t]
	if !ok {
		return "", nil, photoerrors.ErrInvalidOwnerType
	}
	return t, checker, nil
}

// Upload stores the image first and then records it. The first photo of an
// owner becomes primary even when not requested.
func (s *service) Upload(
	ctx context.Context,
	companyID, actorID string,
	req UploadPhotoRequest,
	file FileInput,
) (PhotoResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	ownerType, checker, err := s.ownerChecker(req.OwnerType)
	if err != nil {
		return PhotoResponse{}, err
	}
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return PhotoResponse{}, photoerrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return PhotoResponse{}, photoerrors.ErrInvalidActorID
	}
	ownerUUID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		return PhotoResponse{}, photoerrors.ErrOwnerNotFound
	}
	if file.Reader == nil || file.Size == 0 {
		return PhotoResponse{}, photoerrors.ErrFileRequired
	}
	if file.Size > s.maxBytes {
		return PhotoResponse{}, photoerrors.ErrFileTooLarge
	}

	ok, err := checker.Exists(ctx, companyID, req.OwnerID)
	if err != nil {
		log.Error("photo owner lookup failed", zap.String("owner_type", ownerType), zap.Error(err))
		return PhotoResponse{}, err
	}
	if !ok {
		return PhotoResponse{}, photoerrors.ErrOwnerNotFound
	}

	content, err := io.ReadAll(io.LimitReader(file.Reader, s.maxBytes+1))
	if err != nil {
		return PhotoResponse{}, fmt.Errorf("read photo upload: %w", err)
	}
	if int64(len(content)) > s.maxBytes {
		return PhotoResponse{}, photoerrors.ErrFileTooLarge
	}

	contentType := http.DetectContentType(content)
	ext, ok := extensions[contentType]
	if !ok {
		return PhotoResponse{}, photoerrors.ErrUnsupportedFormat
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(content))
	if err != nil {
		log.Warn("photo decode failed", zap.String("content_type", contentType), zap.Error(err))
		return PhotoResponse{}, photoerrors.ErrUnsupportedFormat
	}

	photoID := uuid.New()
	path := fmt.Sprintf("photos/%s/%s/%s/%s%s",
		companyID, strings.ToLower(ownerType), req.OwnerID, photoID, ext)

	key, err := s.store.Upload(ctx, bytes.NewReader(content), path, contentType)
	if err != nil {
		log.Error("photo store failed", zap.String("path", path), zap.Error(err))
		return PhotoResponse{}, err
	}

	photo := &Photo{
		ID:          photoID,
		CompanyID:   companyUUID,
		OwnerType:   ownerType,
		OwnerID:     ownerUUID,
		StorageKey:  key,
		FileName:    filepath.Base(strings.TrimSpace(file.Name)),
		ContentType: contentType,
		SizeBytes:   int64(len(content)),
		Width:       cfg.Width,
		Height:      cfg.Height,
		Caption:     strings.TrimSpace(req.Caption),
		UploadedBy:  actorUUID,
	}

	if err := s.record(ctx, photo, req.IsPrimary); err != nil {
		if rmErr := s.store.Delete(ctx, key); rmErr != nil {
			log.Warn("orphan photo cleanup failed", zap.String("key", key), zap.Error(rmErr))
		}
		log.Error("photo record failed", zap.String("owner_id", req.OwnerID), zap.Error(err))
		return PhotoResponse{}, mapRepositoryError(err)
	}

	log.Info("photo uploaded",
		zap.String("photo_id", photo.ID.String()),
		zap.String("owner_type", ownerType),
		zap.String("owner_id", req.OwnerID),
		zap.Int64("size_bytes", photo.SizeBytes),
	)
	return s.mapToResponse(*photo), nil
}

func (s *service) record(ctx context.Context, photo *Photo, wantPrimary bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	companyID := photo.CompanyID.String()
	ownerID := photo.OwnerID.String()

	count, err := qtx.CountByOwner(ctx, companyID, photo.OwnerType, ownerID)
	if err != nil {
		return err
	}

	photo.SortOrder = int(count)
	photo.IsPrimary = wantPrimary || count == 0
	if photo.IsPrimary && count > 0 {
		if err := qtx.ClearPrimary(ctx, companyID, photo.OwnerType, ownerID); err != nil {
			return err
		}
	}

	if err := qtx.Create(ctx, photo); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *service) List(ctx context.Context, companyID string, filter ListFilter) ([]PhotoResponse, error) {
	ownerType, _, err := s.ownerChecker(filter.OwnerType)
	if err != nil {
		return nil, err
	}

	photos, err := s.repo.FindByOwner(ctx, companyID, ownerType, filter.OwnerID)
	if err != nil {
		s.logger.Error("list photos failed", zap.String("owner_id", filter.OwnerID), zap.Error(err))
		return nil, err
	}

	res := make([]PhotoResponse, len(photos))
	for i, p := range photos {
		res[i] = s.mapToResponse(p)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (PhotoResponse, error) {
	photo, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PhotoResponse{}, mapRepositoryError(err)
	}
	return s.mapToResponse(*photo), nil
}

// Open returns the stored image. The caller closes the reader.
func (s *service) Open(ctx context.Context, companyID, id string) (io.ReadCloser, PhotoResponse, error) {
	photo, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return nil, PhotoResponse{}, mapRepositoryError(err)
	}

	rc, err := s.store.Download(ctx, photo.StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			contextutil.GetLogger(ctx, s.logger).Warn("photo file missing", zap.String("key", photo.StorageKey))
			return nil, PhotoResponse{}, photoerrors.ErrPhotoNotFound
		}
		return nil, PhotoResponse{}, err
	}
	return rc, s.mapToResponse(*photo), nil
}

func (s *service) SetPrimary(ctx context.Context, companyID, id string) (PhotoResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("set primary begin tx failed", zap.Error(err))
		return PhotoResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	photo, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PhotoResponse{}, mapRepositoryError(err)
	}
	if photo.IsPrimary {
		return s.mapToResponse(*photo), nil
	}

	if err := qtx.ClearPrimary(ctx, companyID, photo.OwnerType, photo.OwnerID.String()); err != nil {
		log.Error("clear primary failed", zap.String("photo_id", id), zap.Error(err))
		return PhotoResponse{}, err
	}
	if err := qtx.MarkPrimary(ctx, id); err != nil {
		return PhotoResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		log.Error("set primary commit failed", zap.Error(err))
		return PhotoResponse{}, mapRepositoryError(err)
	}

	photo.IsPrimary = true
	log.Info("primary photo changed",
		zap.String("photo_id", id),
		zap.String("owner_id", photo.OwnerID.String()),
	)
	return s.mapToResponse(*photo), nil
}

// Delete removes the record and then the stored file. When the primary photo
// is removed the next photo of the owner is promoted.
func (s *service) Delete(ctx context.Context, companyID, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("delete photo begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	photo, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}

	if photo.IsPrimary {
		next, err := qtx.FindFirstByOwner(ctx, companyID, photo.OwnerType, photo.OwnerID.String())
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
		case err != nil:
			return err
		default:
			if err := qtx.MarkPrimary(ctx, next.ID.String()); err != nil {
				return mapRepositoryError(err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("delete photo commit failed", zap.Error(err))
		return err
	}

	if err := s.store.Delete(ctx, photo.StorageKey); err != nil {
		log.Warn("photo file delete failed", zap.String("key", photo.StorageKey), zap.Error(err))
	}

	log.Info("photo deleted", zap.String("photo_id", id))
	return nil
}

func (s *service) mapToResponse(p Photo) PhotoResponse {
	return PhotoResponse{
		ID:          p.ID.String(),
		OwnerType:   p.OwnerType,
		OwnerID:     p.OwnerID.String(),
		URL:         s.store.URL(p.StorageKey),
		FileName:    p.FileName,
		ContentType: p.ContentType,
		SizeBytes:   p.SizeBytes,
		Width:       p.Width,
		Height:      p.Height,
		Caption:     p.Caption,
		IsPrimary:   p.IsPrimary,
		SortOrder:   p.SortOrder,
		UploadedBy:  p.UploadedBy.String(),
		CreatedAt:   p.CreatedAt.UTC().Format(timeLayout),
	}
}
