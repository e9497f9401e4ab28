package kafka

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"testing"

	"go-hotel/internal/shared/contextutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newOutboxRepo(t *testing.T) (OutboxRepository, *sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	assert.NoError(t, err)
	return NewOutboxRepository(db), sqlDB, mock
}

func TestNewOutboxEvent(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "req-42")

	event, err := NewOutboxEvent(ctx, "hotel.room.status.v1", "room_status_changed", "room", "room-1", map[string]string{"to": "cleaning"})

	assert.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "req-42", event.RequestID)
	assert.Equal(t, OutboxStatusPending, event.Status)
	assert.NoError(t, ValidateOutboxEvent(event))

	var payload map[string]string
	assert.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, "cleaning", payload["to"])
}

func TestOutboxRepository_CreateWithinTx(t *testing.T) {
	repo, sqlDB, mock := newOutboxRepo(t)
	event, _ := NewOutboxEvent(context.Background(), "topic", "evt", "agg", "agg-1", struct{}{})

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "outbox_events"`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := sqlDB.Begin()
	assert.NoError(t, err)

	assert.NoError(t, repo.WithTx(tx).Create(context.Background(), event))
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_CreateRejectsInvalid(t *testing.T) {
	repo, _, _ := newOutboxRepo(t)

	err := repo.Create(context.Background(), OutboxEvent{ID: "x", Status: OutboxStatusPending})
	assert.EqualError(t, err, "outbox topic is required")
}

func TestOutboxRepository_MarkFailedTruncatesReason(t *testing.T) {
	repo, _, mock := newOutboxRepo(t)
	long := strings.Repeat("x", 800)

	mock.ExpectExec(`UPDATE "outbox_events" SET .*retry_count.*WHERE id = \$`).
		WithArgs(strings.Repeat("x", maxErrorMessageLen), OutboxStatusFailed, sqlmock.AnyArg(), "evt-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkFailed(context.Background(), "evt-1", long))
	assert.NoError(t, mock.ExpectationsWereMet())
}
