package leave

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"office-attendance/internal/events"
	leaveerrors "office-attendance/internal/leave/errors"
	"office-attendance/internal/messaging/kafka"
	"office-attendance/internal/shared/apperror"
	"office-attendance/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Submit(ctx context.Context, employeeID uint, date, reason string, today time.Time) (LeaveResponse, error)
	Decide(ctx context.Context, leaveID uint, decision string) (LeaveResponse, error)
	ListPending(ctx context.Context) ([]LeaveResponse, error)
	History(ctx context.Context, employeeID uint) ([]LeaveResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(nil, repo, nil, logger...)
}

func NewServiceWithOutbox(db *gorm.DB, repo Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

// Submit files a Pending request for date. today is compared by calendar day
// only, so a request for today itself is accepted.
func (s *service) Submit(ctx context.Context, employeeID uint, date, reason string, today time.Time) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("submit leave requested",
		zap.Uint("employee_id", employeeID),
		zap.String("date", date),
	)

	date = strings.TrimSpace(date)
	reason = strings.TrimSpace(reason)
	if employeeID == 0 {
		log.Warn("submit leave rejected, missing employee id")
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	if date == "" || reason == "" {
		log.Warn("submit leave rejected, missing fields", zap.Uint("employee_id", employeeID))
		return LeaveResponse{}, leaveerrors.ErrMissingFields
	}

	day, err := time.Parse(dateLayout, date)
	if err != nil {
		log.Warn("submit leave rejected, bad date", zap.String("date", date))
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	if day.Before(calendarDay(today)) {
		log.Warn("submit leave rejected, past date",
			zap.String("date", date),
			zap.String("today", today.Format(dateLayout)),
		)
		return LeaveResponse{}, leaveerrors.ErrPastDate
	}

	l := &Leave{
		EmployeeID: employeeID,
		Date:       day.Format(dateLayout),
		Reason:     reason,
		Status:     StatusPending,
	}
	if err := s.repo.Create(ctx, l); err != nil {
		log.Error("submit leave persist failed", zap.Error(err))
		return LeaveResponse{}, apperror.Storage(err)
	}

	log.Info("leave submitted",
		zap.Uint("leave_id", l.ID),
		zap.Uint("employee_id", employeeID),
	)
	return mapToResponse(*l), nil
}

// Decide sets the status to decision whatever the current status is, so a
// decided request can be decided again.
func (s *service) Decide(ctx context.Context, leaveID uint, decision string) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("decide leave requested",
		zap.Uint("leave_id", leaveID),
		zap.String("decision", decision),
	)

	if decision != StatusApproved && decision != StatusRejected {
		log.Warn("decide leave rejected, unknown decision", zap.String("decision", decision))
		return LeaveResponse{}, leaveerrors.ErrInvalidDecision
	}
	if leaveID == 0 {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	var decided Leave
	err := s.write(ctx, func(repo Repository, outbox kafka.OutboxRepository) error {
		l, err := repo.FindByID(ctx, leaveID)
		if err != nil {
			return err
		}
		if err := repo.UpdateStatus(ctx, leaveID, decision); err != nil {
			return err
		}
		l.Status = decision
		decided = *l

		if outbox == nil {
			return nil
		}
		event, err := kafka.NewOutboxEvent(rid, "leave", strconv.FormatUint(uint64(l.ID), 10),
			events.LeaveDecidedType, events.LeaveDecidedTopic,
			events.LeaveDecidedEvent{
				EventType:  events.LeaveDecidedType,
				RequestID:  rid,
				LeaveID:    l.ID,
				EmployeeID: l.EmployeeID,
				Date:       l.Date,
				Status:     decision,
				OccurredAt: time.Now().UTC(),
			})
		if err != nil {
			return err
		}
		return outbox.Create(ctx, event)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("decide leave not found", zap.Uint("leave_id", leaveID))
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		log.Error("decide leave persist failed", zap.Uint("leave_id", leaveID), zap.Error(err))
		return LeaveResponse{}, apperror.Storage(err)
	}

	log.Info("leave decided",
		zap.Uint("leave_id", leaveID),
		zap.String("status", decision),
	)
	return mapToResponse(decided), nil
}

func (s *service) ListPending(ctx context.Context) ([]LeaveResponse, error) {
	rows, err := s.repo.FindPendingWithEmployee(ctx)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list pending leaves failed", zap.Error(err))
		return nil, apperror.Storage(err)
	}

	resp := make([]LeaveResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, LeaveResponse{
			ID:           r.ID,
			EmployeeID:   r.EmployeeID,
			EmployeeName: r.EmployeeName,
			Date:         r.Date,
			Reason:       r.Reason,
			Status:       r.Status,
		})
	}
	return resp, nil
}

func (s *service) History(ctx context.Context, employeeID uint) ([]LeaveResponse, error) {
	if employeeID == 0 {
		return nil, leaveerrors.ErrInvalidEmployeeID
	}

	rows, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("leave history failed",
			zap.Uint("employee_id", employeeID),
			zap.Error(err),
		)
		return nil, apperror.Storage(err)
	}

	resp := make([]LeaveResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, mapToResponse(r))
	}
	return resp, nil
}

func (s *service) write(ctx context.Context, fn func(repo Repository, outbox kafka.OutboxRepository) error) error {
	if s.db == nil || s.outbox == nil {
		return fn(s.repo, nil)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(s.repo.WithTx(tx), s.outbox.WithTx(tx))
	})
}

func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func mapToResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		ID:         l.ID,
		EmployeeID: l.EmployeeID,
		Date:       l.Date,
		Reason:     l.Reason,
		Status:     l.Status,
	}
}
