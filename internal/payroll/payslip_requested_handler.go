package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-hotel/internal/events"
	"go-hotel/internal/messaging/kafka/consumer"
	"go-hotel/internal/shared/apperror"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// NewPayslipRequestedHandler renders the payslip of a processed payroll.
// Client-side failures such as a payroll deleted or cancelled since the event
// was queued are committed; everything else is retried.
func NewPayslipRequestedHandler(service Service, logger ...*zap.Logger) consumer.HandlerFunc {
	l := zap.L().Named("payroll.consumer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.consumer")
	}

	return func(ctx context.Context, msg kafkago.Message) error {
		var event events.PayrollPayslipRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return consumer.Permanent(err)
		}
		if event.PayrollID == "" || event.CompanyID == "" {
			return consumer.Permanent(errors.New("payslip event missing payroll or company id"))
		}

		if _, err := service.GeneratePayslip(ctx, event.CompanyID, event.PayrollID); err != nil {
			var appErr *apperror.AppError
			if errors.As(err, &appErr) && appErr.HTTPStatus < 500 {
				l.Warn("payslip event skipped",
					zap.String("payroll_id", event.PayrollID),
					zap.String("reason", appErr.Message),
				)
				return consumer.Permanent(err)
			}
			return err
		}

		l.Info("payslip generated from event",
			zap.String("payroll_id", event.PayrollID),
			zap.String("company_id", event.CompanyID),
			zap.String("employee_id", event.EmployeeID),
			zap.String("period", fmt.Sprintf("%04d-%02d", event.Year, event.Month)),
		)
		return nil
	}
}
