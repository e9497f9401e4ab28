package employeesalary

import (
	"context"
	"encoding/json"
	"errors"

	employeesalaryerrors "go-hotel/internal/employeesalary/errors"
	"go-hotel/internal/events"
	"go-hotel/internal/messaging/kafka/consumer"
	"go-hotel/internal/shared/apperror"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// NewEmployeeCreatedHandler records the starting salary of a newly hired
// employee, effective from the hire date. Redelivered events hit the unique
// (employee, effective date) index and are skipped.
func NewEmployeeCreatedHandler(service Service, logger ...*zap.Logger) consumer.HandlerFunc {
	l := zap.L().Named("employeesalary.consumer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employeesalary.consumer")
	}

	return func(ctx context.Context, msg kafkago.Message) error {
		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return consumer.Permanent(err)
		}

		_, err := service.Create(ctx, event.CompanyID, CreateEmployeeSalaryRequest{
			EmployeeID:    event.EmployeeID,
			BaseSalary:    event.StartingSalary,
			EffectiveDate: event.HireDate,
		})
		if err != nil {
			if errors.Is(err, employeesalaryerrors.ErrSalaryEffectiveDateAlreadyExists) {
				l.Warn("employee salary already exists for event, skipping",
					zap.String("employee_id", event.EmployeeID),
					zap.String("company_id", event.CompanyID),
				)
				return consumer.Permanent(err)
			}

			var appErr *apperror.AppError
			if errors.As(err, &appErr) && appErr.HTTPStatus < 500 {
				return consumer.Permanent(err)
			}
			return err
		}

		l.Info("employee salary created from employee_created event",
			zap.String("employee_id", event.EmployeeID),
			zap.String("company_id", event.CompanyID),
		)
		return nil
	}
}
