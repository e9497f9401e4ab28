package evaluation

import (
	"context"
	"database/sql"
	"regexp"
	"strings"
	"time"

	evaluationerrors "go-hotel/internal/evaluation/errors"
	"go-hotel/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const timeLayout = time.RFC3339

// periodPattern accepts a year, a month, a quarter or a half: 2026, 2026-03,
// 2026-Q1, 2026-H2.
var periodPattern = regexp.MustCompile(`^\d{4}(-(0[1-9]|1[0-2]|Q[1-4]|H[12]))?$`)

// nextStatus maps each workflow step to the only status it may start from.
var nextStatus = map[string]string{
	StatusCompleted: StatusDraft,
	StatusReviewed:  StatusCompleted,
	StatusApproved:  StatusReviewed,
}

//go:generate mockgen -source=evaluation_service.go -destination=mock/evaluation_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID, actorID string, req CreateEvaluationRequest) (EvaluationResponse, error)
	GetAll(ctx context.Context, companyID string, filter ListFilter) ([]EvaluationResponse, error)
	GetByID(ctx context.Context, companyID, id string) (EvaluationResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateEvaluationRequest) (EvaluationResponse, error)
	Complete(ctx context.Context, companyID, actorID, id string) (EvaluationResponse, error)
	Review(ctx context.Context, companyID, actorID, id string) (EvaluationResponse, error)
	Approve(ctx context.Context, companyID, actorID, id string) (EvaluationResponse, error)
	Acknowledge(ctx context.Context, companyID, actorID, id string, req AcknowledgeEvaluationRequest) (EvaluationResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("evaluation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("evaluation.service")
	}
	return &service{db: db, repo: repo, logger: l, now: time.Now}
}

func (s *service) Create(
	ctx context.Context,
	companyID, actorID string,
	req CreateEvaluationRequest,
) (EvaluationResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return EvaluationResponse{}, evaluationerrors.ErrInvalidCompanyID
	}
	evaluatorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return EvaluationResponse{}, evaluationerrors.ErrInvalidActorID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return EvaluationResponse{}, evaluationerrors.ErrInvalidEmployeeID
	}
	if employeeUUID == evaluatorUUID {
		return EvaluationResponse{}, evaluationerrors.ErrSelfEvaluation
	}
	period := strings.ToUpper(strings.TrimSpace(req.Period))
	if !periodPattern.MatchString(period) {
		return EvaluationResponse{}, evaluationerrors.ErrInvalidPeriod
	}

	scores := Scores{
		WorkQuality:     deref(req.WorkQualityScore),
		Productivity:    deref(req.ProductivityScore),
		Communication:   deref(req.CommunicationScore),
		Teamwork:        deref(req.TeamworkScore),
		Punctuality:     deref(req.PunctualityScore),
		Initiative:      deref(req.InitiativeScore),
		CustomerService: deref(req.CustomerServiceScore),
	}
	overall, err := Score(scores)
	if err != nil {
		return EvaluationResponse{}, mapScoreError(err)
	}

	belongs, err := s.repo.EmployeeBelongsToCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		log.Error("create evaluation employee lookup failed", zap.Error(err))
		return EvaluationResponse{}, err
	}
	if !belongs {
		return EvaluationResponse{}, evaluationerrors.ErrEmployeeNotInCompany
	}

	evaluation := &Evaluation{
		ID:                     uuid.New(),
		CompanyID:              companyUUID,
		EmployeeID:             employeeUUID,
		EvaluatorID:            evaluatorUUID,
		Period:                 period,
		WorkQualityComment:     req.WorkQualityComment,
		ProductivityComment:    req.ProductivityComment,
		CommunicationComment:   req.CommunicationComment,
		TeamworkComment:        req.TeamworkComment,
		PunctualityComment:     req.PunctualityComment,
		InitiativeComment:      req.InitiativeComment,
		CustomerServiceComment: req.CustomerServiceComment,
		OverallScore:           overall,
		OverallComment:         req.OverallComment,
		Status:                 StatusDraft,
	}
	evaluation.setScores(scores)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create evaluation begin tx failed", zap.Error(err))
		return EvaluationResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, evaluation); err != nil {
		log.Warn("create evaluation persist failed",
			zap.String("employee_id", req.EmployeeID),
			zap.String("period", period),
			zap.Error(err),
		)
		return EvaluationResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("create evaluation commit failed", zap.Error(err))
		return EvaluationResponse{}, err
	}

	log.Info("evaluation created",
		zap.String("evaluation_id", evaluation.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.String("overall_score", overall.StringFixed(2)),
	)

	return mapToResponse(*evaluation), nil
}

func (s *service) GetAll(
	ctx context.Context,
	companyID string,
	filter ListFilter,
) ([]EvaluationResponse, error) {
	if filter.Status != "" && !isKnownStatus(filter.Status) {
		return nil, evaluationerrors.ErrInvalidStatusFilter
	}
	filter.Period = strings.ToUpper(filter.Period)

	evaluations, err := s.repo.FindAll(ctx, companyID, filter)
	if err != nil {
		s.logger.Error("list evaluations failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(evaluations), nil
}

func (s *service) GetByID(
	ctx context.Context,
	companyID, id string,
) (EvaluationResponse, error) {
	evaluation, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return EvaluationResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*evaluation), nil
}

// Update applies a partial update. The overall score is recomputed whenever a
// category score is part of the request.
func (s *service) Update(
	ctx context.Context,
	companyID, id string,
	req UpdateEvaluationRequest,
) (EvaluationResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update evaluation begin tx failed", zap.Error(err))
		return EvaluationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	evaluation, err := qtx.FindByIDAndCompanyForUpdate(ctx, companyID, id)
	if err != nil {
		return EvaluationResponse{}, mapRepositoryError(err)
	}
	if evaluation.Status == StatusReviewed || evaluation.Status == StatusApproved {
		return EvaluationResponse{}, evaluationerrors.ErrEvaluationLocked
	}

	scores := evaluation.scores()
	touched := false
	for _, f := range []struct {
		in  *float64
		out *float64
	}{
		{req.WorkQualityScore, &scores.WorkQuality},
		{req.ProductivityScore, &scores.Productivity},
		{req.CommunicationScore, &scores.Communication},
		{req.TeamworkScore, &scores.Teamwork},
		{req.PunctualityScore, &scores.Punctuality},
		{req.InitiativeScore, &scores.Initiative},
		{req.CustomerServiceScore, &scores.CustomerService},
	} {
		if f.in != nil {
			*f.out = *f.in
			touched = true
		}
	}

	if touched {
		overall, err := Score(scores)
		if err != nil {
			return EvaluationResponse{}, mapScoreError(err)
		}
		evaluation.setScores(scores)
		evaluation.OverallScore = overall
	}

	for _, c := range []struct {
		in  *string
		out **string
	}{
		{req.WorkQualityComment, &evaluation.WorkQualityComment},
		{req.ProductivityComment, &evaluation.ProductivityComment},
		{req.CommunicationComment, &evaluation.CommunicationComment},
		{req.TeamworkComment, &evaluation.TeamworkComment},
		{req.PunctualityComment, &evaluation.PunctualityComment},
		{req.InitiativeComment, &evaluation.InitiativeComment},
		{req.CustomerServiceComment, &evaluation.CustomerServiceComment},
		{req.OverallComment, &evaluation.OverallComment},
	} {
		if c.in != nil {
			*c.out = c.in
		}
	}

	if err := qtx.Update(ctx, evaluation); err != nil {
		log.Error("update evaluation persist failed", zap.String("evaluation_id", id), zap.Error(err))
		return EvaluationResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("update evaluation commit failed", zap.Error(err))
		return EvaluationResponse{}, err
	}

	log.Info("evaluation updated",
		zap.String("evaluation_id", id),
		zap.Bool("rescored", touched),
		zap.String("overall_score", evaluation.OverallScore.StringFixed(2)),
	)

	return mapToResponse(*evaluation), nil
}

func (s *service) Complete(ctx context.Context, companyID, actorID, id string) (EvaluationResponse, error) {
	return s.advance(ctx, companyID, actorID, id, StatusCompleted)
}

func (s *service) Review(ctx context.Context, companyID, actorID, id string) (EvaluationResponse, error) {
	return s.advance(ctx, companyID, actorID, id, StatusReviewed)
}

func (s *service) Approve(ctx context.Context, companyID, actorID, id string) (EvaluationResponse, error) {
	return s.advance(ctx, companyID, actorID, id, StatusApproved)
}

func (s *service) advance(
	ctx context.Context,
	companyID, actorID, id string,
	to string,
) (EvaluationResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return EvaluationResponse{}, evaluationerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("evaluation transition begin tx failed", zap.Error(err))
		return EvaluationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	evaluation, err := qtx.FindByIDAndCompanyForUpdate(ctx, companyID, id)
	if err != nil {
		return EvaluationResponse{}, mapRepositoryError(err)
	}

	from := evaluation.Status
	if nextStatus[to] != from {
		log.Warn("evaluation transition rejected",
			zap.String("evaluation_id", id),
			zap.String("from", from),
			zap.String("to", to),
		)
		return EvaluationResponse{}, evaluationerrors.ErrInvalidStatusTransition
	}

	now := s.now().UTC()
	evaluation.Status = to
	switch to {
	case StatusCompleted:
		evaluation.CompletedAt = &now
	case StatusReviewed:
		evaluation.ReviewedAt = &now
		evaluation.ReviewedBy = &actorUUID
	case StatusApproved:
		evaluation.ApprovedAt = &now
		evaluation.ApprovedBy = &actorUUID
	}

	if err := qtx.Update(ctx, evaluation); err != nil {
		log.Error("evaluation transition persist failed", zap.String("evaluation_id", id), zap.Error(err))
		return EvaluationResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("evaluation transition commit failed", zap.Error(err))
		return EvaluationResponse{}, err
	}

	log.Info("evaluation status changed",
		zap.String("evaluation_id", id),
		zap.String("from", from),
		zap.String("to", to),
	)

	return mapToResponse(*evaluation), nil
}

// Acknowledge records that the evaluated employee has seen the evaluation.
// It is independent of the review workflow and can only happen once.
func (s *service) Acknowledge(
	ctx context.Context,
	companyID, actorID, id string,
	req AcknowledgeEvaluationRequest,
) (EvaluationResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("acknowledge evaluation begin tx failed", zap.Error(err))
		return EvaluationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	evaluation, err := qtx.FindByIDAndCompanyForUpdate(ctx, companyID, id)
	if err != nil {
		return EvaluationResponse{}, mapRepositoryError(err)
	}
	if evaluation.EmployeeID.String() != actorID {
		return EvaluationResponse{}, evaluationerrors.ErrNotEvaluatedEmployee
	}
	if evaluation.AcknowledgedAt != nil {
		return EvaluationResponse{}, evaluationerrors.ErrAlreadyAcknowledged
	}

	now := s.now().UTC()
	evaluation.AcknowledgedAt = &now
	if req.EmployeeComment != nil {
		evaluation.EmployeeComment = req.EmployeeComment
	}

	if err := qtx.Update(ctx, evaluation); err != nil {
		log.Error("acknowledge evaluation persist failed", zap.String("evaluation_id", id), zap.Error(err))
		return EvaluationResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("acknowledge evaluation commit failed", zap.Error(err))
		return EvaluationResponse{}, err
	}

	log.Info("evaluation acknowledged", zap.String("evaluation_id", id))
	return mapToResponse(*evaluation), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)

	evaluation, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if evaluation.Status != StatusDraft {
		return evaluationerrors.ErrDeleteOnlyDraft
	}

	if err := s.repo.Delete(ctx, companyID, id); err != nil {
		log.Error("delete evaluation failed", zap.String("evaluation_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	log.Info("evaluation deleted", zap.String("evaluation_id", id))
	return nil
}

func isKnownStatus(status string) bool {
	switch status {
	case StatusDraft, StatusCompleted, StatusReviewed, StatusApproved:
		return true
	}
	return false
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.UTC().Format(timeLayout)
	return &v
}

func formatUUID(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	v := id.String()
	return &v
}

func mapToResponse(e Evaluation) EvaluationResponse {
	resp := EvaluationResponse{
		ID:          e.ID.String(),
		CompanyID:   e.CompanyID.String(),
		EmployeeID:  e.EmployeeID.String(),
		EvaluatorID: e.EvaluatorID.String(),
		Period:      e.Period,
		Categories: map[string]CategoryResponse{
			"work_quality":     {Score: e.WorkQualityScore, Comment: e.WorkQualityComment},
			"productivity":     {Score: e.ProductivityScore, Comment: e.ProductivityComment},
			"communication":    {Score: e.CommunicationScore, Comment: e.CommunicationComment},
			"teamwork":         {Score: e.TeamworkScore, Comment: e.TeamworkComment},
			"punctuality":      {Score: e.PunctualityScore, Comment: e.PunctualityComment},
			"initiative":       {Score: e.InitiativeScore, Comment: e.InitiativeComment},
			"customer_service": {Score: e.CustomerServiceScore, Comment: e.CustomerServiceComment},
		},
		OverallScore:    e.OverallScore,
		OverallComment:  e.OverallComment,
		EmployeeComment: e.EmployeeComment,
		Status:          e.Status,
		ReviewedBy:      formatUUID(e.ReviewedBy),
		ApprovedBy:      formatUUID(e.ApprovedBy),
		CompletedAt:     formatTime(e.CompletedAt),
		ReviewedAt:      formatTime(e.ReviewedAt),
		ApprovedAt:      formatTime(e.ApprovedAt),
		AcknowledgedAt:  formatTime(e.AcknowledgedAt),
		CreatedAt:       e.CreatedAt.UTC().Format(timeLayout),
	}
	if e.Employee != nil {
		resp.EmployeeName = e.Employee.FullName
	}
	if e.Evaluator != nil {
		resp.EvaluatorName = e.Evaluator.FullName
	}
	return resp
}

func mapToListResponse(evaluations []Evaluation) []EvaluationResponse {
	res := make([]EvaluationResponse, len(evaluations))
	for i, e := range evaluations {
		res[i] = mapToResponse(e)
	}
	return res
}
