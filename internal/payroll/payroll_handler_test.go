package payroll_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hotel/internal/payroll"
	payrollerrors "go-hotel/internal/payroll/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakePayrollService struct {
	createFn          func(ctx context.Context, companyID, actorID string, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error)
	createBatchFn     func(ctx context.Context, companyID, actorID string, req payroll.BatchPayrollRequest) (payroll.BatchPayrollResponse, error)
	calculateFn       func(ctx context.Context, req payroll.CalculateRequest) (payroll.Breakdown, error)
	getAllFn          func(ctx context.Context, companyID string, filter payroll.ListFilter) ([]payroll.PayrollResponse, error)
	getByIDFn         func(ctx context.Context, companyID, id string) (payroll.PayrollResponse, error)
	getBreakdownFn    func(ctx context.Context, companyID, id string) (payroll.Breakdown, error)
	recalculateFn     func(ctx context.Context, companyID, id string, req payroll.RecalculatePayrollRequest) (payroll.PayrollResponse, error)
	processFn         func(ctx context.Context, companyID, actorID, id string) (payroll.PayrollResponse, error)
	markPaidFn        func(ctx context.Context, companyID, id string) (payroll.PayrollResponse, error)
	cancelFn          func(ctx context.Context, companyID, id string) (payroll.PayrollResponse, error)
	deleteFn          func(ctx context.Context, companyID, id string) error
	exportFn          func(ctx context.Context, companyID string, filter payroll.ListFilter) ([]byte, error)
	generatePayslipFn func(ctx context.Context, companyID, id string) (payroll.PayrollResponse, error)
	downloadFn        func(ctx context.Context, companyID, id string) (payroll.Payslip, error)
}

func (f *fakePayrollService) Create(ctx context.Context, companyID, actorID string, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
	return f.createFn(ctx, companyID, actorID, req)
}
func (f *fakePayrollService) CreateBatch(ctx context.Context, companyID, actorID string, req payroll.BatchPayrollRequest) (payroll.BatchPayrollResponse, error) {
	return f.createBatchFn(ctx, companyID, actorID, req)
}
func (f *fakePayrollService) Calculate(ctx context.Context, req payroll.CalculateRequest) (payroll.Breakdown, error) {
	return f.calculateFn(ctx, req)
}
func (f *fakePayrollService) GetAll(ctx context.Context, companyID string, filter payroll.ListFilter) ([]payroll.PayrollResponse, error) {
	return f.getAllFn(ctx, companyID, filter)
}
func (f *fakePayrollService) GetByID(ctx context.Context, companyID, id string) (payroll.PayrollResponse, error) {
	return f.getByIDFn(ctx, companyID, id)
}
func (f *fakePayrollService) GetBreakdown(ctx context.Context, companyID, id string) (payroll.Breakdown, error) {
	return f.getBreakdownFn(ctx, companyID, id)
}
func (f *fakePayrollService) Recalculate(ctx context.Context, companyID, id string, req payroll.RecalculatePayrollRequest) (payroll.PayrollResponse, error) {
	return f.recalculateFn(ctx, companyID, id, req)
}
func (f *fakePayrollService) Process(ctx context.Context, companyID, actorID, id string) (payroll.PayrollResponse, error) {
	return f.processFn(ctx, companyID, actorID, id)
}
func (f *fakePayrollService) MarkPaid(ctx context.Context, companyID, id string) (payroll.PayrollResponse, error) {
	return f.markPaidFn(ctx, companyID, id)
}
func (f *fakePayrollService) Cancel(ctx context.Context, companyID, id string) (payroll.PayrollResponse, error) {
	return f.cancelFn(ctx, companyID, id)
}
func (f *fakePayrollService) Delete(ctx context.Context, companyID, id string) error {
	return f.deleteFn(ctx, companyID, id)
}
func (f *fakePayrollService) Export(ctx context.Context, companyID string, filter payroll.ListFilter) ([]byte, error) {
	return f.exportFn(ctx, companyID, filter)
}
func (f *fakePayrollService) GeneratePayslip(ctx context.Context, companyID, id string) (payroll.PayrollResponse, error) {
	return f.generatePayslipFn(ctx, companyID, id)
}
func (f *fakePayrollService) DownloadPayslip(ctx context.Context, companyID, id string) (payroll.Payslip, error) {
	return f.downloadFn(ctx, companyID, id)
}

func newPayrollContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func TestPayrollHandler_Create(t *testing.T) {
	companyID := uuid.New().String()
	actorID := uuid.New().String()
	employeeID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		svc := &fakePayrollService{
			createFn: func(ctx context.Context, cid, aid string, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
				assert.Equal(t, companyID, cid)
				assert.Equal(t, actorID, aid)
				assert.Equal(t, 3, req.Month)
				assert.NotNil(t, req.BasicSalary)
				assert.True(t, req.BasicSalary.Equal(decimal.NewFromInt(9_000_000)))
				assert.Nil(t, req.WorkingDays)
				return payroll.PayrollResponse{ID: uuid.New().String(), EmployeeID: req.EmployeeID, Status: payroll.StatusDraft}, nil
			},
		}

		c, w := newPayrollContext(http.MethodPost, "/payrolls",
			`{"employee_id":"`+employeeID+`","month":3,"year":2026,"basic_salary":9000000}`)
		c.Set("company_id", companyID)
		c.Set("employee_id", actorID)

		payroll.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"DRAFT"`)
	})

	t.Run("month out of range", func(t *testing.T) {
		c, w := newPayrollContext(http.MethodPost, "/payrolls",
			`{"employee_id":"`+employeeID+`","month":13,"year":2026}`)

		payroll.NewHandler(&fakePayrollService{}).Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("duplicate period", func(t *testing.T) {
		svc := &fakePayrollService{
			createFn: func(context.Context, string, string, payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
				return payroll.PayrollResponse{}, payrollerrors.ErrPayrollAlreadyExists
			},
		}

		c, w := newPayrollContext(http.MethodPost, "/payrolls",
			`{"employee_id":"`+employeeID+`","month":3,"year":2026}`)

		payroll.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("internal error is not leaked", func(t *testing.T) {
		svc := &fakePayrollService{
			createFn: func(context.Context, string, string, payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
				return payroll.PayrollResponse{}, errors.New("pq: connection reset")
			},
		}

		c, w := newPayrollContext(http.MethodPost, "/payrolls",
			`{"employee_id":"`+employeeID+`","month":3,"year":2026}`)

		payroll.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection reset")
	})
}

func TestPayrollHandler_CreateBatch_PartialFailure(t *testing.T) {
	svc := &fakePayrollService{
		createBatchFn: func(_ context.Context, _, _ string, req payroll.BatchPayrollRequest) (payroll.BatchPayrollResponse, error) {
			assert.Equal(t, 4, req.Month)
			return payroll.BatchPayrollResponse{
				Created: []payroll.PayrollResponse{{ID: "p-1"}},
				Failed:  []payroll.BatchFailure{{EmployeeID: "e-2", Code: "CONFLICT"}},
			}, nil
		},
	}

	c, w := newPayrollContext(http.MethodPost, "/payrolls/batch", `{"month":4,"year":2026}`)
	c.Set("company_id", uuid.New().String())

	payroll.NewHandler(svc).CreateBatch(c)

	assert.Equal(t, http.StatusMultiStatus, w.Code)
	assert.Contains(t, w.Body.String(), `"e-2"`)
}

func TestPayrollHandler_Calculate(t *testing.T) {
	calc := payroll.NewCalculator(payroll.DefaultPolicy())
	svc := &fakePayrollService{
		calculateFn: func(_ context.Context, req payroll.CalculateRequest) (payroll.Breakdown, error) {
			return calc.Calculate(payroll.Input{
				BasicSalary:   req.BasicSalary,
				OvertimeHours: req.OvertimeHours,
				WorkingDays:   req.WorkingDays,
				Allowances:    req.Allowances,
				Deductions:    req.Deductions,
			})
		},
	}

	c, w := newPayrollContext(http.MethodPost, "/payrolls/calculate",
		`{"basic_salary":"11000000","working_days":22,"overtime_hours":"0","allowances":"0","deductions":"0"}`)

	payroll.NewHandler(svc).Calculate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"net_pay":"9295000"`)
	assert.Contains(t, w.Body.String(), `"tax_mode":"flat"`)
}

func TestPayrollHandler_GetAll(t *testing.T) {
	t.Run("binds filters and paginates", func(t *testing.T) {
		svc := &fakePayrollService{
			getAllFn: func(_ context.Context, _ string, filter payroll.ListFilter) ([]payroll.PayrollResponse, error) {
				assert.Equal(t, payroll.ListFilter{Month: 3, Year: 2026, Status: payroll.StatusPaid}, filter)
				return []payroll.PayrollResponse{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil
			},
		}

		c, w := newPayrollContext(http.MethodGet, "/payrolls?month=3&year=2026&status=PAID&page=2&page_size=2", "")

		payroll.NewHandler(svc).GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"c"`)
		assert.NotContains(t, w.Body.String(), `"id":"a"`)
	})

	t.Run("unknown status", func(t *testing.T) {
		svc := &fakePayrollService{
			getAllFn: func(context.Context, string, payroll.ListFilter) ([]payroll.PayrollResponse, error) {
				return nil, payrollerrors.ErrInvalidStatusFilter
			},
		}

		c, w := newPayrollContext(http.MethodGet, "/payrolls?status=NOPE", "")

		payroll.NewHandler(svc).GetAll(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPayrollHandler_Transitions(t *testing.T) {
	id := uuid.New().String()

	t.Run("process passes the actor", func(t *testing.T) {
		actorID := uuid.New().String()
		svc := &fakePayrollService{
			processFn: func(_ context.Context, _, aid, pid string) (payroll.PayrollResponse, error) {
				assert.Equal(t, actorID, aid)
				assert.Equal(t, id, pid)
				return payroll.PayrollResponse{ID: pid, Status: payroll.StatusProcessed}, nil
			},
		}

		c, w := newPayrollContext(http.MethodPost, "/payrolls/"+id+"/process", "")
		c.Params = gin.Params{{Key: "id", Value: id}}
		c.Set("employee_id", actorID)

		payroll.NewHandler(svc).Process(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), payroll.StatusProcessed)
	})

	t.Run("rejected transition", func(t *testing.T) {
		svc := &fakePayrollService{
			markPaidFn: func(context.Context, string, string) (payroll.PayrollResponse, error) {
				return payroll.PayrollResponse{}, payrollerrors.ErrInvalidStatusTransition
			},
		}

		c, w := newPayrollContext(http.MethodPost, "/payrolls/"+id+"/mark-paid", "")
		c.Params = gin.Params{{Key: "id", Value: id}}

		payroll.NewHandler(svc).MarkPaid(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_STATE")
	})

	t.Run("cancel", func(t *testing.T) {
		svc := &fakePayrollService{
			cancelFn: func(_ context.Context, _, pid string) (payroll.PayrollResponse, error) {
				return payroll.PayrollResponse{ID: pid, Status: payroll.StatusCancelled}, nil
			},
		}

		c, w := newPayrollContext(http.MethodPost, "/payrolls/"+id+"/cancel", "")
		c.Params = gin.Params{{Key: "id", Value: id}}

		payroll.NewHandler(svc).Cancel(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestPayrollHandler_Recalculate(t *testing.T) {
	id := uuid.New().String()
	svc := &fakePayrollService{
		recalculateFn: func(_ context.Context, _, pid string, req payroll.RecalculatePayrollRequest) (payroll.PayrollResponse, error) {
			assert.NotNil(t, req.WorkingDays)
			assert.Equal(t, 20, *req.WorkingDays)
			assert.Nil(t, req.BasicSalary)
			return payroll.PayrollResponse{ID: pid}, nil
		},
	}

	c, w := newPayrollContext(http.MethodPost, "/payrolls/"+id+"/recalculate", `{"working_days":20}`)
	c.Params = gin.Params{{Key: "id", Value: id}}

	payroll.NewHandler(svc).Recalculate(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPayrollHandler_Delete(t *testing.T) {
	id := uuid.New().String()

	t.Run("draft", func(t *testing.T) {
		svc := &fakePayrollService{deleteFn: func(context.Context, string, string) error { return nil }}
		c, w := newPayrollContext(http.MethodDelete, "/payrolls/"+id, "")
		c.Params = gin.Params{{Key: "id", Value: id}}

		payroll.NewHandler(svc).Delete(c)
		c.Writer.WriteHeaderNow()

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("not draft", func(t *testing.T) {
		svc := &fakePayrollService{deleteFn: func(context.Context, string, string) error {
			return payrollerrors.ErrDeleteOnlyDraft
		}}
		c, w := newPayrollContext(http.MethodDelete, "/payrolls/"+id, "")
		c.Params = gin.Params{{Key: "id", Value: id}}

		payroll.NewHandler(svc).Delete(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestPayrollHandler_Documents(t *testing.T) {
	t.Run("export sets xlsx headers", func(t *testing.T) {
		svc := &fakePayrollService{
			exportFn: func(_ context.Context, _ string, filter payroll.ListFilter) ([]byte, error) {
				assert.Equal(t, 3, filter.Month)
				return []byte("PK"), nil
			},
		}

		c, w := newPayrollContext(http.MethodGet, "/payrolls/export?month=3&year=2026", "")

		payroll.NewHandler(svc).Export(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
		assert.Contains(t, w.Header().Get("Content-Disposition"), "payroll-2026-03.xlsx")
	})

	t.Run("payslip download", func(t *testing.T) {
		id := uuid.New().String()
		svc := &fakePayrollService{
			downloadFn: func(_ context.Context, _, pid string) (payroll.Payslip, error) {
				return payroll.Payslip{Filename: "payslip-EMP-000001-2026-03.pdf", Content: []byte("%PDF-1.3")}, nil
			},
		}

		c, w := newPayrollContext(http.MethodGet, "/payrolls/"+id+"/payslip", "")
		c.Params = gin.Params{{Key: "id", Value: id}}

		payroll.NewHandler(svc).DownloadPayslip(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "payslip-EMP-000001-2026-03.pdf")
	})

	t.Run("payslip for draft", func(t *testing.T) {
		svc := &fakePayrollService{
			downloadFn: func(context.Context, string, string) (payroll.Payslip, error) {
				return payroll.Payslip{}, payrollerrors.ErrPayslipNotAvailable
			},
		}

		c, w := newPayrollContext(http.MethodGet, "/payrolls/x/payslip", "")

		payroll.NewHandler(svc).DownloadPayslip(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
