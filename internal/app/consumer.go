package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-hotel/internal/attendance"
	"go-hotel/internal/config"
	"go-hotel/internal/employeesalary"
	"go-hotel/internal/events"
	"go-hotel/internal/messaging/kafka/consumer"
	"go-hotel/internal/payroll"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RunConsumer reads the employee lifecycle and payslip topics until SIGINT or
// SIGTERM. Each topic has its own reader and consumer group.
func RunConsumer(cfg config.Config, logger *zap.Logger) error {
	logger = logger.Named("app.consumer")

	infra, err := connect(cfg, false)
	if err != nil {
		return err
	}
	defer infra.Close()

	salaryService := employeesalary.NewService(infra.sqlDB, employeesalary.NewRepository(infra.gormDB), logger)
	attendanceService := attendance.NewService(infra.sqlDB, attendance.NewRepository(infra.gormDB), logger)
	payrollService, err := newPayrollService(cfg, infra, salaryService, attendanceService, logger)
	if err != nil {
		return err
	}

	employeeReader := consumer.NewReader(cfg.Kafka.Broker, cfg.Kafka.GroupID, events.EmployeeCreatedTopic)
	defer employeeReader.Close()
	payslipReader := consumer.NewReader(cfg.Kafka.Broker, cfg.Kafka.GroupID, events.PayrollPayslipRequestedTopic)
	defer payslipReader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		consumer.Run(ctx, "employee_created", employeeReader,
			employeesalary.NewEmployeeCreatedHandler(salaryService, logger), logger)
		return nil
	})
	g.Go(func() error {
		consumer.Run(ctx, "payroll_payslip_requested", payslipReader,
			payroll.NewPayslipRequestedHandler(payrollService, logger), logger)
		return nil
	})

	err = g.Wait()
	logger.Info("consumer shut down")
	return err
}
