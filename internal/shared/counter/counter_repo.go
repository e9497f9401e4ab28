package counter

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go-hotel/internal/shared/connection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TypeEmployeeCode numbers employees within a company.
const TypeEmployeeCode = "employee_code"

// Counter is one monotonically increasing sequence per company and type.
type Counter struct {
	CompanyID   string    `gorm:"type:uuid;primaryKey"`
	CounterType string    `gorm:"type:varchar(50);primaryKey"`
	LastValue   int64     `gorm:"not null;default:0"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (Counter) TableName() string { return "company_counters" }

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	GetNextValue(ctx context.Context, companyID string, counterType string) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// GetNextValue increments in a single upsert so two transactions never read
// the same value; the row lock is held until the caller commits.
func (r *repository) GetNextValue(ctx context.Context, companyID string, counterType string) (int64, error) {
	row := Counter{
		CompanyID:   companyID,
		CounterType: counterType,
		LastValue:   1,
		UpdatedAt:   time.Now(),
	}

	err := connection.Conn(ctx, r.db, r.tx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "company_id"}, {Name: "counter_type"}},
				DoUpdates: clause.Assignments(map[string]any{
					"last_value": gorm.Expr("company_counters.last_value + 1"),
					"updated_at": gorm.Expr("now()"),
				}),
			},
			clause.Returning{Columns: []clause.Column{{Name: "last_value"}}},
		).
		Create(&row).Error
	if err != nil {
		return 0, fmt.Errorf("next %s: %w", counterType, err)
	}

	return row.LastValue, nil
}

// FormatCode renders a counter value as a zero padded business code, e.g. EMP-000042.
func FormatCode(prefix string, value int64) string {
	return fmt.Sprintf("%s-%06d", prefix, value)
}
