package room

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"go-hotel/internal/events"
	"go-hotel/internal/messaging/kafka"
	roomerrors "go-hotel/internal/room/errors"
	"go-hotel/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const timeLayout = time.RFC3339

// allowedTransitions lists, for each status, the statuses a room may move to.
var allowedTransitions = map[string][]string{
	StatusAvailable:   {StatusOccupied, StatusCleaning, StatusMaintenance, StatusOutOfOrder},
	StatusOccupied:    {StatusCleaning},
	StatusCleaning:    {StatusAvailable, StatusMaintenance},
	StatusMaintenance: {StatusAvailable, StatusCleaning, StatusOutOfOrder},
	StatusOutOfOrder:  {StatusMaintenance},
}

// CanTransition reports whether a room may move from one status to another.
func CanTransition(from, to string) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

type PropertyLookup interface {
	Exists(ctx context.Context, companyID, id string) (bool, error)
}

type RoomTypeLookup interface {
	BelongsToProperty(ctx context.Context, companyID, id, propertyID string) (bool, error)
}

//go:generate mockgen -source=room_service.go -destination=mock/room_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateRoomRequest) (RoomResponse, error)
	GetAll(ctx context.Context, companyID string, filter ListFilter) ([]RoomResponse, error)
	GetByID(ctx context.Context, companyID, id string) (RoomResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateRoomRequest) (RoomResponse, error)
	ChangeStatus(ctx context.Context, companyID, actorID, id string, req ChangeStatusRequest) (RoomResponse, error)
	GetStatusHistory(ctx context.Context, companyID, id string) ([]StatusHistoryResponse, error)
	GetStatusSummary(ctx context.Context, companyID, propertyID string) (StatusSummaryResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db         *sql.DB
	repo       Repository
	properties PropertyLookup
	roomTypes  RoomTypeLookup
	outbox     kafka.OutboxRepository
	logger     *zap.Logger
	now        func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	properties PropertyLookup,
	roomTypes RoomTypeLookup,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("room.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("room.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		properties: properties,
		roomTypes:  roomTypes,
		outbox:     outbox,
		logger:     l,
		now:        time.Now,
	}
}

func (s *service) Create(
	ctx context.Context,
	companyID string,
	req CreateRoomRequest,
) (RoomResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return RoomResponse{}, roomerrors.ErrInvalidCompanyID
	}
	propertyUUID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		return RoomResponse{}, roomerrors.ErrInvalidPropertyID
	}
	roomTypeUUID, err := uuid.Parse(req.RoomTypeID)
	if err != nil {
		return RoomResponse{}, roomerrors.ErrInvalidRoomTypeID
	}

	ok, err := s.properties.Exists(ctx, companyID, req.PropertyID)
	if err != nil {
		log.Error("create room property lookup failed", zap.Error(err))
		return RoomResponse{}, err
	}
	if !ok {
		return RoomResponse{}, roomerrors.ErrPropertyNotFound
	}
	if err := s.checkRoomType(ctx, companyID, req.RoomTypeID, req.PropertyID); err != nil {
		return RoomResponse{}, err
	}

	room := &Room{
		ID:         uuid.New(),
		CompanyID:  companyUUID,
		PropertyID: propertyUUID,
		RoomTypeID: roomTypeUUID,
		RoomNumber: strings.ToUpper(strings.TrimSpace(req.RoomNumber)),
		Floor:      *req.Floor,
		Status:     StatusAvailable,
		IsSmoking:  req.IsSmoking,
		Notes:      req.Notes,
	}

	if err := s.repo.Create(ctx, room); err != nil {
		log.Warn("create room failed",
			zap.String("property_id", req.PropertyID),
			zap.String("room_number", room.RoomNumber),
			zap.Error(err),
		)
		return RoomResponse{}, mapRepositoryError(err)
	}

	log.Info("room created",
		zap.String("room_id", room.ID.String()),
		zap.String("room_number", room.RoomNumber),
	)
	return mapToResponse(*room), nil
}

func (s *service) GetAll(ctx context.Context, companyID string, filter ListFilter) ([]RoomResponse, error) {
	if filter.Status != "" {
		filter.Status = strings.ToUpper(filter.Status)
		if _, ok := allowedTransitions[filter.Status]; !ok {
			return nil, roomerrors.ErrInvalidStatus
		}
	}

	rooms, err := s.repo.FindAll(ctx, companyID, filter)
	if err != nil {
		s.logger.Error("list rooms failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rooms), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (RoomResponse, error) {
	room, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return RoomResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*room), nil
}

// Update edits the descriptive fields of a room. Status only changes through
// ChangeStatus so every change is recorded.
func (s *service) Update(
	ctx context.Context,
	companyID, id string,
	req UpdateRoomRequest,
) (RoomResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	roomTypeUUID, err := uuid.Parse(req.RoomTypeID)
	if err != nil {
		return RoomResponse{}, roomerrors.ErrInvalidRoomTypeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update room begin tx failed", zap.Error(err))
		return RoomResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	room, err := qtx.FindForUpdate(ctx, companyID, id)
	if err != nil {
		return RoomResponse{}, mapRepositoryError(err)
	}

	if roomTypeUUID != room.RoomTypeID {
		if err := s.checkRoomType(ctx, companyID, req.RoomTypeID, room.PropertyID.String()); err != nil {
			return RoomResponse{}, err
		}
		room.RoomTypeID = roomTypeUUID
	}
	room.RoomNumber = strings.ToUpper(strings.TrimSpace(req.RoomNumber))
	room.Floor = *req.Floor
	room.IsSmoking = req.IsSmoking
	room.Notes = req.Notes

	if err := qtx.Update(ctx, room); err != nil {
		log.Warn("update room persist failed", zap.String("room_id", id), zap.Error(err))
		return RoomResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("update room commit failed", zap.Error(err))
		return RoomResponse{}, err
	}

	log.Info("room updated", zap.String("room_id", id))
	return mapToResponse(*room), nil
}

// ChangeStatus moves a room through the housekeeping workflow. The status
// change, its history row and the outbox event commit together.
func (s *service) ChangeStatus(
	ctx context.Context,
	companyID, actorID, id string,
	req ChangeStatusRequest,
) (RoomResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return RoomResponse{}, roomerrors.ErrInvalidActorID
	}
	to := strings.ToUpper(strings.TrimSpace(req.Status))
	if _, ok := allowedTransitions[to]; !ok {
		return RoomResponse{}, roomerrors.ErrInvalidStatus
	}
	reason := strings.TrimSpace(req.Reason)
	if (to == StatusMaintenance || to == StatusOutOfOrder) && reason == "" {
		return RoomResponse{}, roomerrors.ErrReasonRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("room status begin tx failed", zap.Error(err))
		return RoomResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	room, err := qtx.FindForUpdate(ctx, companyID, id)
	if err != nil {
		return RoomResponse{}, mapRepositoryError(err)
	}

	from := room.Status
	if !CanTransition(from, to) {
		log.Warn("room status transition rejected",
			zap.String("room_id", id),
			zap.String("from", from),
			zap.String("to", to),
		)
		return RoomResponse{}, roomerrors.ErrInvalidStatusTransition
	}

	now := s.now().UTC()
	room.Status = to
	room.StatusChangedAt = &now

	if err := qtx.Update(ctx, room); err != nil {
		log.Error("room status persist failed", zap.String("room_id", id), zap.Error(err))
		return RoomResponse{}, mapRepositoryError(err)
	}

	history := &StatusHistory{
		ID:         uuid.New(),
		CompanyID:  room.CompanyID,
		RoomID:     room.ID,
		FromStatus: from,
		ToStatus:   to,
		Reason:     reason,
		ChangedBy:  actorUUID,
		ChangedAt:  now,
	}
	if err := qtx.CreateHistory(ctx, history); err != nil {
		log.Error("room status history persist failed", zap.String("room_id", id), zap.Error(err))
		return RoomResponse{}, err
	}

	if s.outbox != nil {
		event, err := kafka.NewOutboxEvent(ctx,
			events.RoomStatusChangedTopic,
			events.RoomStatusChangedEventType,
			"room",
			room.ID.String(),
			events.RoomStatusChangedEvent{
				EventType:  events.RoomStatusChangedEventType,
				RoomID:     room.ID.String(),
				PropertyID: room.PropertyID.String(),
				CompanyID:  companyID,
				FromStatus: from,
				ToStatus:   to,
				ChangedBy:  actorID,
				Reason:     reason,
				OccurredAt: now,
			},
		)
		if err != nil {
			return RoomResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			log.Error("room status outbox persist failed", zap.String("room_id", id), zap.Error(err))
			return RoomResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("room status commit failed", zap.Error(err))
		return RoomResponse{}, err
	}

	log.Info("room status changed",
		zap.String("room_id", id),
		zap.String("from", from),
		zap.String("to", to),
	)
	return mapToResponse(*room), nil
}

func (s *service) GetStatusHistory(ctx context.Context, companyID, id string) ([]StatusHistoryResponse, error) {
	if _, err := s.repo.FindByIDAndCompany(ctx, companyID, id); err != nil {
		return nil, mapRepositoryError(err)
	}

	history, err := s.repo.FindHistory(ctx, companyID, id)
	if err != nil {
		s.logger.Error("list room status history failed", zap.String("room_id", id), zap.Error(err))
		return nil, err
	}

	res := make([]StatusHistoryResponse, len(history))
	for i, h := range history {
		res[i] = StatusHistoryResponse{
			ID:         h.ID.String(),
			RoomID:     h.RoomID.String(),
			FromStatus: h.FromStatus,
			ToStatus:   h.ToStatus,
			Reason:     h.Reason,
			ChangedBy:  h.ChangedBy.String(),
			ChangedAt:  h.ChangedAt.UTC().Format(timeLayout),
		}
	}
	return res, nil
}

// GetStatusSummary counts rooms per status. Every known status is present in
// the result, zero when no room has it.
func (s *service) GetStatusSummary(ctx context.Context, companyID, propertyID string) (StatusSummaryResponse, error) {
	counts, err := s.repo.CountByStatus(ctx, companyID, propertyID)
	if err != nil {
		s.logger.Error("room status summary failed", zap.Error(err))
		return StatusSummaryResponse{}, err
	}

	resp := StatusSummaryResponse{
		PropertyID: propertyID,
		ByStatus:   make(map[string]int64, len(allowedTransitions)),
	}
	for status := range allowedTransitions {
		resp.ByStatus[status] = 0
	}
	for _, c := range counts {
		resp.ByStatus[c.Status] = c.Total
		resp.Total += c.Total
	}
	return resp, nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)

	room, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if room.Status == StatusOccupied {
		return roomerrors.ErrRoomOccupied
	}

	if err := s.repo.Delete(ctx, companyID, id); err != nil {
		log.Error("delete room failed", zap.String("room_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	log.Info("room deleted", zap.String("room_id", id))
	return nil
}

func (s *service) checkRoomType(ctx context.Context, companyID, roomTypeID, propertyID string) error {
	ok, err := s.roomTypes.BelongsToProperty(ctx, companyID, roomTypeID, propertyID)
	if err != nil {
		s.logger.Error("room type lookup failed", zap.Error(err))
		return err
	}
	if !ok {
		return roomerrors.ErrRoomTypeMismatch
	}
	return nil
}

func mapToResponse(r Room) RoomResponse {
	resp := RoomResponse{
		ID:         r.ID.String(),
		CompanyID:  r.CompanyID.String(),
		PropertyID: r.PropertyID.String(),
		RoomTypeID: r.RoomTypeID.String(),
		RoomNumber: r.RoomNumber,
		Floor:      r.Floor,
		Status:     r.Status,
		IsSmoking:  r.IsSmoking,
		Notes:      r.Notes,
		CreatedAt:  r.CreatedAt.UTC().Format(timeLayout),
		UpdatedAt:  r.UpdatedAt.UTC().Format(timeLayout),
	}
	if r.StatusChangedAt != nil {
		v := r.StatusChangedAt.UTC().Format(timeLayout)
		resp.StatusChangedAt = &v
	}
	return resp
}

func mapToListResponse(rooms []Room) []RoomResponse {
	res := make([]RoomResponse, len(rooms))
	for i, r := range rooms {
		res[i] = mapToResponse(r)
	}
	return res
}
