package consumer

import (
	"context"
	"errors"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader a consumer loop needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// HandlerFunc processes one message. Returning a Permanent error commits the
// message anyway; any other error leaves it uncommitted for redelivery.
type HandlerFunc func(ctx context.Context, msg kafkago.Message) error

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks err as not worth retrying (bad payload, duplicate event).
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

func IsPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}

const retryDelay = time.Second

// Run fetches and handles messages until ctx is cancelled.
func Run(ctx context.Context, name string, reader MessageReader, handle HandlerFunc, logger *zap.Logger) {
	log := logger.Named("kafka.consumer." + name)
	log.Info("consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("consumer stopped")
				return
			}
			log.Error("fetch message failed", zap.Error(err))
			continue
		}

		if err := handle(ctx, msg); err != nil {
			if !IsPermanent(err) {
				log.Error("handle message failed, will retry",
					zap.Int64("offset", msg.Offset),
					zap.Error(err),
				)
				select {
				case <-ctx.Done():
					log.Info("consumer stopped")
					return
				case <-time.After(retryDelay):
				}
				continue
			}
			log.Warn("skipping message",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit message failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		}
	}
}

func NewReader(broker, groupID, topic string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{broker},
		Topic:          topic,
		GroupID:        groupID + "." + topic,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
}
