package producer

import (
	"context"
	"errors"
	"testing"

	"go-hotel/internal/messaging/kafka"
	"go-hotel/internal/messaging/kafka/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	failTopic string
	written   []kafkago.Message
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if m.Topic == w.failTopic {
			return errors.New("broker unavailable")
		}
		w.written = append(w.written, m)
	}
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockOutboxRepository(ctrl)
	writer := &fakeWriter{failTopic: "broken.topic"}
	ctx := context.Background()

	pending := []kafka.OutboxEvent{
		{ID: "evt-1", RequestID: "req-1", AggregateType: "room", AggregateID: "room-1", EventType: "room_status_changed", Topic: "hotel.room.status.v1", Payload: []byte(`{}`)},
		{ID: "evt-2", AggregateType: "payroll", AggregateID: "pay-1", EventType: "payroll_payslip_requested", Topic: "broken.topic", Payload: []byte(`{}`)},
	}

	repo.EXPECT().ListPending(ctx, 10).Return(pending, nil)
	repo.EXPECT().MarkSent(ctx, "evt-1").Return(nil)
	repo.EXPECT().MarkFailed(ctx, "evt-2", "broker unavailable").Return(nil)

	sent, err := processPendingEvents(ctx, repo, writer, zap.NewNop(), 10)

	assert.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Len(t, writer.written, 1)

	msg := writer.written[0]
	assert.Equal(t, []byte("room-1"), msg.Key)
	assert.Len(t, msg.Headers, 3)
	assert.Equal(t, "request_id", msg.Headers[2].Key)
}

func TestProcessPendingEvents_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockOutboxRepository(ctrl)
	repo.EXPECT().ListPending(gomock.Any(), 50).Return(nil, errors.New("db down"))

	sent, err := processPendingEvents(context.Background(), repo, &fakeWriter{}, zap.NewNop(), 50)

	assert.Error(t, err)
	assert.Zero(t, sent)
}
