package app

import (
	"context"
	"errors"
	"path"
	"path/filepath"
	"strings"

	"go-hotel/internal/amenity"
	"go-hotel/internal/attendance"
	"go-hotel/internal/config"
	"go-hotel/internal/employee"
	"go-hotel/internal/employeesalary"
	"go-hotel/internal/evaluation"
	"go-hotel/internal/messaging/kafka"
	"go-hotel/internal/middleware"
	"go-hotel/internal/payroll"
	"go-hotel/internal/photo"
	"go-hotel/internal/property"
	"go-hotel/internal/rbac"
	rbacinfra "go-hotel/internal/rbac/infra"
	"go-hotel/internal/room"
	roomerrors "go-hotel/internal/room/errors"
	"go-hotel/internal/roomtype"
	roomtypeerrors "go-hotel/internal/roomtype/errors"
	"go-hotel/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newPayrollService(
	cfg config.Config,
	infra *infrastructure,
	salaries payroll.SalaryLookup,
	workingDays payroll.WorkingDaysCounter,
	logger *zap.Logger,
) (payroll.Service, error) {
	policy, err := payroll.LoadPolicy(cfg.Payroll.PolicyFile)
	if err != nil {
		return nil, err
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	return payroll.NewService(payroll.ServiceDeps{
		DB:         infra.sqlDB,
		Repo:       payroll.NewRepository(infra.gormDB),
		Calculator: payroll.NewCalculator(policy),
		Salaries:   salaries,
		Attendance: workingDays,
		Outbox:     kafka.NewOutboxRepository(infra.gormDB),
		Storage:    infra.store,
		Workers:    cfg.Payroll.BatchWorkers,
		Logger:     logger,
	}), nil
}

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	infra *infrastructure,
	logger *zap.Logger,
) error {
	db, gormDB, rdb := infra.sqlDB, infra.gormDB, infra.rdb

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	employeeSalaryRepo := employeesalary.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	evaluationRepo := evaluation.NewRepository(gormDB)
	propertyRepo := property.NewRepository(gormDB)
	amenityRepo := amenity.NewRepository(gormDB)
	roomTypeRepo := roomtype.NewRepository(gormDB)
	roomRepo := room.NewRepository(gormDB)
	photoRepo := photo.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := rbacinfra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)
	if err := rbacService.SyncCatalog(); err != nil {
		return err
	}

	// --- Services ---
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, rdb, logger)
	employeeSalaryService := employeesalary.NewService(db, employeeSalaryRepo, logger)
	attendanceService := attendance.NewService(db, attendanceRepo, logger)
	evaluationService := evaluation.NewService(db, evaluationRepo, logger)
	payrollService, err := newPayrollService(cfg, infra, employeeSalaryService, attendanceService, logger)
	if err != nil {
		return err
	}

	propertyService := property.NewService(db, propertyRepo, logger)
	amenityService := amenity.NewService(db, amenityRepo, rdb, logger)
	roomTypeService := roomtype.NewService(db, roomTypeRepo, propertyService, amenityService, logger)
	roomService := room.NewService(db, roomRepo, propertyService, roomTypeService, outboxRepo, logger)
	photoService := photo.NewService(db, photoRepo, infra.store, photo.Owners{
		photo.OwnerProperty: propertyService,
		photo.OwnerRoomType: photo.OwnerCheckFunc(func(ctx context.Context, companyID, id string) (bool, error) {
			_, err := roomTypeService.GetByID(ctx, companyID, id)
			if errors.Is(err, roomtypeerrors.ErrRoomTypeNotFound) {
				return false, nil
			}
			return err == nil, err
		}),
		photo.OwnerRoom: photo.OwnerCheckFunc(func(ctx context.Context, companyID, id string) (bool, error) {
			_, err := roomService.GetByID(ctx, companyID, id)
			if errors.Is(err, roomerrors.ErrRoomNotFound) {
				return false, nil
			}
			return err == nil, err
		}),
	}, cfg.Storage.MaxPhotoBytes, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)
	employeeSalaryHandler := employeesalary.NewHandler(employeeSalaryService, logger)
	attendanceHandler := attendance.NewHandler(attendanceService, rbacService, logger)
	evaluationHandler := evaluation.NewHandler(evaluationService, logger)
	payrollHandler := payroll.NewHandler(payrollService, logger)
	propertyHandler := property.NewHandler(propertyService, logger)
	amenityHandler := amenity.NewHandler(amenityService, logger)
	roomTypeHandler := roomtype.NewHandler(roomTypeService, logger)
	roomHandler := room.NewHandler(roomService, logger)
	photoHandler := photo.NewHandler(photoService, logger)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Middleware ---
	router.Use(
		middleware.RequestID(),
		middleware.CORS(cfg.Web.AllowedOrigins),
	)
	// Only photos are public; payslips stay behind the payroll endpoints.
	if strings.HasPrefix(cfg.Storage.BaseURL, "/") {
		public := router.Group(path.Join(cfg.Storage.BaseURL, "photos"), middleware.RateLimitByIP(20, 50))
		public.Static("/", filepath.Join(cfg.Storage.BasePath, "photos"))
	}

	api := router.Group("/api/v1")
	api.Use(
		middleware.AuthMiddleware(cfg.JWT.Secret),
		middleware.RequireTenant(),
		middleware.ContextLogger(logger),
		middleware.Idempotency(rdb),
	)

	// --- Routes Registration ---
	{
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		employeesalary.RegisterRoutes(api, employeeSalaryHandler, rbacService)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		evaluation.RegisterRoutes(api, evaluationHandler, rbacService)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb)

		property.RegisterRoutes(api, propertyHandler, rbacService)
		amenity.RegisterRoutes(api, amenityHandler, rbacService)
		roomtype.RegisterRoutes(api, roomTypeHandler, rbacService)
		room.RegisterRoutes(api, roomHandler, rbacService)
		photo.RegisterRoutes(api, photoHandler, rbacService)

		rbac.RegisterRoutes(api, rbacHandler, rbacService)
	}

	return nil
}
