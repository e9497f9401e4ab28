package photo_test

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"image"
	"image/png"
	"io/fs"
	"path/filepath"
	"testing"

	"go-hotel/internal/photo"
	photoerrors "go-hotel/internal/photo/errors"
	photoMock "go-hotel/internal/photo/mock"
	"go-hotel/internal/shared/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service photo.Service
	repo    *photoMock.MockRepository
	root    string
	store   storage.FileStorage
}

func setupServiceTest(t *testing.T, ownerExists bool, maxBytes int64) *serviceDeps {
	t.Helper()

	ctrl := gomock.NewController(t)
	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	repo := photoMock.NewMockRepository(ctrl)

	root := t.TempDir()
	store, err := storage.NewLocalStorage(root, "http://localhost/media")
	assert.NoError(t, err)

	check := photo.OwnerCheckFunc(func(context.Context, string, string) (bool, error) {
		return ownerExists, nil
	})
	owners := photo.Owners{
		photo.OwnerProperty: check,
		photo.OwnerRoomType: check,
		photo.OwnerRoom:     check,
	}

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: photo.NewService(db, repo, store, owners, maxBytes),
		repo:    repo,
		root:    root,
		store:   store,
	}
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	assert.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func countFiles(t *testing.T, root string) int {
	t.Helper()
	n := 0
	err := filepath.WalkDir(root, func(_ string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			n++
		}
		return err
	})
	assert.NoError(t, err)
	return n
}

func TestPhotoService_Upload(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	actorID := uuid.New().String()
	ownerID := uuid.New().String()

	t.Run("first photo becomes primary", func(t *testing.T) {
		deps := setupServiceTest(t, true, 0)
		defer deps.db.Close()

		content := pngBytes(t, 4, 3)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().CountByOwner(ctx, companyID, photo.OwnerRoom, ownerID).Return(int64(0), nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p *photo.Photo) error {
				assert.True(t, p.IsPrimary)
				assert.Equal(t, 0, p.SortOrder)
				assert.Equal(t, "image/png", p.ContentType)
				assert.Equal(t, 4, p.Width)
				assert.Equal(t, 3, p.Height)
				assert.Equal(t, "lobby.png", p.FileName)
				return nil
			})

		resp, err := deps.service.Upload(ctx, companyID, actorID,
			photo.UploadPhotoRequest{OwnerType: "room", OwnerID: ownerID},
			photo.FileInput{Name: "../lobby.png", Size: int64(len(content)), Reader: bytes.NewReader(content)},
		)

		assert.NoError(t, err)
		assert.True(t, resp.IsPrimary)
		assert.Contains(t, resp.URL, "http://localhost/media/photos/"+companyID+"/room/"+ownerID+"/")
		assert.Equal(t, 1, countFiles(t, deps.root))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("requested primary clears the previous one", func(t *testing.T) {
		deps := setupServiceTest(t, true, 0)
		defer deps.db.Close()

		content := pngBytes(t, 2, 2)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().CountByOwner(ctx, companyID, photo.OwnerProperty, ownerID).Return(int64(3), nil)
		deps.repo.EXPECT().ClearPrimary(ctx, companyID, photo.OwnerProperty, ownerID).Return(nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p *photo.Photo) error {
				assert.True(t, p.IsPrimary)
				assert.Equal(t, 3, p.SortOrder)
				return nil
			})

		_, err := deps.service.Upload(ctx, companyID, actorID,
			photo.UploadPhotoRequest{OwnerType: photo.OwnerProperty, OwnerID: ownerID, IsPrimary: true},
			photo.FileInput{Name: "front.png", Size: int64(len(content)), Reader: bytes.NewReader(content)},
		)

		assert.NoError(t, err)
	})

	t.Run("not an image", func(t *testing.T) {
		deps := setupServiceTest(t, true, 0)
		defer deps.db.Close()

		content := []byte("plain text pretending to be a photo")

		_, err := deps.service.Upload(ctx, companyID, actorID,
			photo.UploadPhotoRequest{OwnerType: photo.OwnerRoom, OwnerID: ownerID},
			photo.FileInput{Name: "x.jpg", Size: int64(len(content)), Reader: bytes.NewReader(content)},
		)

		assert.ErrorIs(t, err, photoerrors.ErrUnsupportedFormat)
		assert.Equal(t, 0, countFiles(t, deps.root))
	})

	t.Run("declared size above limit", func(t *testing.T) {
		deps := setupServiceTest(t, true, 16)
		defer deps.db.Close()

		content := pngBytes(t, 10, 10)

		_, err := deps.service.Upload(ctx, companyID, actorID,
			photo.UploadPhotoRequest{OwnerType: photo.OwnerRoom, OwnerID: ownerID},
			photo.FileInput{Name: "big.png", Size: int64(len(content)), Reader: bytes.NewReader(content)},
		)

		assert.ErrorIs(t, err, photoerrors.ErrFileTooLarge)
	})

	t.Run("body larger than declared size", func(t *testing.T) {
		deps := setupServiceTest(t, true, 16)
		defer deps.db.Close()

		content := pngBytes(t, 10, 10)

		_, err := deps.service.Upload(ctx, companyID, actorID,
			photo.UploadPhotoRequest{OwnerType: photo.OwnerRoom, OwnerID: ownerID},
			photo.FileInput{Name: "big.png", Size: 1, Reader: bytes.NewReader(content)},
		)

		assert.ErrorIs(t, err, photoerrors.ErrFileTooLarge)
	})

	t.Run("unknown owner type", func(t *testing.T) {
		deps := setupServiceTest(t, true, 0)
		defer deps.db.Close()

		_, err := deps.service.Upload(ctx, companyID, actorID,
			photo.UploadPhotoRequest{OwnerType: "EMPLOYEE", OwnerID: ownerID},
			photo.FileInput{Name: "a.png", Size: 1, Reader: bytes.NewReader([]byte{1})},
		)

		assert.ErrorIs(t, err, photoerrors.ErrInvalidOwnerType)
	})

	t.Run("owner of another company", func(t *testing.T) {
		deps := setupServiceTest(t, false, 0)
		defer deps.db.Close()

		content := pngBytes(t, 1, 1)

		_, err := deps.service.Upload(ctx, companyID, actorID,
			photo.UploadPhotoRequest{OwnerType: photo.OwnerRoomType, OwnerID: ownerID},
			photo.FileInput{Name: "a.png", Size: int64(len(content)), Reader: bytes.NewReader(content)},
		)

		assert.ErrorIs(t, err, photoerrors.ErrOwnerNotFound)
	})

	t.Run("stored file removed when record fails", func(t *testing.T) {
		deps := setupServiceTest(t, true, 0)
		defer deps.db.Close()

		content := pngBytes(t, 2, 2)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().CountByOwner(ctx, companyID, photo.OwnerRoom, ownerID).Return(int64(1), nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db down"))

		_, err := deps.service.Upload(ctx, companyID, actorID,
			photo.UploadPhotoRequest{OwnerType: photo.OwnerRoom, OwnerID: ownerID},
			photo.FileInput{Name: "a.png", Size: int64(len(content)), Reader: bytes.NewReader(content)},
		)

		assert.Error(t, err)
		assert.Equal(t, 0, countFiles(t, deps.root))
	})
}

func TestPhotoService_SetPrimary(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	existing := &photo.Photo{
		ID:        uuid.New(),
		OwnerType: photo.OwnerProperty,
		OwnerID:   uuid.New(),
	}

	t.Run("switches primary", func(t *testing.T) {
		deps := setupServiceTest(t, true, 0)
		defer deps.db.Close()

		p := *existing
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, p.ID.String()).Return(&p, nil)
		deps.repo.EXPECT().ClearPrimary(ctx, companyID, photo.OwnerProperty, p.OwnerID.String()).Return(nil)
		deps.repo.EXPECT().MarkPrimary(ctx, p.ID.String()).Return(nil)

		resp, err := deps.service.SetPrimary(ctx, companyID, p.ID.String())

		assert.NoError(t, err)
		assert.True(t, resp.IsPrimary)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("already primary", func(t *testing.T) {
		deps := setupServiceTest(t, true, 0)
		defer deps.db.Close()

		p := *existing
		p.IsPrimary = true
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, p.ID.String()).Return(&p, nil)

		resp, err := deps.service.SetPrimary(ctx, companyID, p.ID.String())

		assert.NoError(t, err)
		assert.True(t, resp.IsPrimary)
	})
}

func TestPhotoService_Delete(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	ownerID := uuid.New()

	t.Run("primary promotes next", func(t *testing.T) {
		deps := setupServiceTest(t, true, 0)
		defer deps.db.Close()

		key, err := deps.store.Upload(ctx, bytes.NewReader(pngBytes(t, 1, 1)), "photos/x/room/y/a.png", "image/png")
		assert.NoError(t, err)

		target := &photo.Photo{ID: uuid.New(), OwnerType: photo.OwnerRoom, OwnerID: ownerID, IsPrimary: true, StorageKey: key}
		next := &photo.Photo{ID: uuid.New(), OwnerType: photo.OwnerRoom, OwnerID: ownerID}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, target.ID.String()).Return(target, nil)
		deps.repo.EXPECT().Delete(ctx, companyID, target.ID.String()).Return(nil)
		deps.repo.EXPECT().FindFirstByOwner(ctx, companyID, photo.OwnerRoom, ownerID.String()).Return(next, nil)
		deps.repo.EXPECT().MarkPrimary(ctx, next.ID.String()).Return(nil)

		assert.NoError(t, deps.service.Delete(ctx, companyID, target.ID.String()))
		assert.Equal(t, 0, countFiles(t, deps.root))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("last photo", func(t *testing.T) {
		deps := setupServiceTest(t, true, 0)
		defer deps.db.Close()

		target := &photo.Photo{ID: uuid.New(), OwnerType: photo.OwnerRoom, OwnerID: ownerID, IsPrimary: true, StorageKey: "photos/gone.png"}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, target.ID.String()).Return(target, nil)
		deps.repo.EXPECT().Delete(ctx, companyID, target.ID.String()).Return(nil)
		deps.repo.EXPECT().FindFirstByOwner(ctx, companyID, photo.OwnerRoom, ownerID.String()).Return(nil, gorm.ErrRecordNotFound)

		assert.NoError(t, deps.service.Delete(ctx, companyID, target.ID.String()))
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t, true, 0)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, "missing").Return(nil, gorm.ErrRecordNotFound)

		assert.ErrorIs(t, deps.service.Delete(ctx, companyID, "missing"), photoerrors.ErrPhotoNotFound)
	})
}

func TestPhotoService_Open(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	deps := setupServiceTest(t, true, 0)
	defer deps.db.Close()

	missing := &photo.Photo{ID: uuid.New(), StorageKey: "photos/never-written.png"}
	deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, missing.ID.String()).Return(missing, nil)

	_, _, err := deps.service.Open(ctx, companyID, missing.ID.String())

	assert.ErrorIs(t, err, photoerrors.ErrPhotoNotFound)
}
