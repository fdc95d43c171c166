package employee

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	employeeerrors "office-attendance/internal/employee/errors"
	"office-attendance/internal/events"
	"office-attendance/internal/messaging/kafka"
	"office-attendance/internal/shared/apperror"
	"office-attendance/internal/shared/contextutil"
	"office-attendance/internal/shared/validation"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	EmployeeListKey = "employees:list"
	employeeListTTL = time.Hour
)

type Service interface {
	Add(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id uint) (EmployeeResponse, error)
	FindByEmail(ctx context.Context, email string) (EmployeeResponse, error)
}

type service struct {
	db       *gorm.DB
	repo     Repository
	outbox   kafka.OutboxRepository
	rdb      *redis.Client
	sf       *singleflight.Group
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(nil, repo, nil, rdb, logger...)
}

// NewServiceWithOutbox queues lifecycle events in the same transaction as
// the directory write. db and outboxRepo must both be set for that to happen.
func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		outbox:   outboxRepo,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		validate: validation.New(),
		logger:   l,
	}
}

func (s *service) Add(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("add employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	req = normalizeRequest(req)
	if err := s.validate.Struct(req); err != nil {
		mapped := mapValidationError(err)
		log.Warn("add employee validation failed",
			zap.String("email", req.Email),
			zap.Error(mapped),
		)
		return EmployeeResponse{}, mapped
	}

	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		log.Error("add employee email lookup failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if exists {
		log.Warn("add employee duplicate email", zap.String("email", req.Email))
		return EmployeeResponse{}, employeeerrors.ErrEmailAlreadyExists
	}

	empl := &Employee{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Gender: req.Gender,
		Role:   req.Role,
	}

	err = s.write(ctx, func(repo Repository, outbox kafka.OutboxRepository) error {
		if err := repo.Create(ctx, empl); err != nil {
			return err
		}
		if outbox == nil {
			return nil
		}
		event, err := kafka.NewOutboxEvent(rid, "employee", strconv.FormatUint(uint64(empl.ID), 10),
			events.EmployeeCreatedType, events.EmployeeLifecycleTopic,
			events.EmployeeCreatedEvent{
				EventType:  events.EmployeeCreatedType,
				RequestID:  rid,
				EmployeeID: empl.ID,
				Email:      empl.Email,
				Role:       empl.Role,
				OccurredAt: time.Now().UTC(),
			})
		if err != nil {
			return err
		}
		return outbox.Create(ctx, event)
	})
	if err != nil {
		log.Error("add employee persist failed", zap.String("email", req.Email), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateList(ctx)

	log.Info("add employee success",
		zap.String("request_id", rid),
		zap.Uint("employee_id", empl.ID),
	)
	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("delete employee requested", zap.Uint("employee_id", id))

	err := s.write(ctx, func(repo Repository, outbox kafka.OutboxRepository) error {
		if err := repo.Delete(ctx, id); err != nil {
			return err
		}
		if outbox == nil {
			return nil
		}
		event, err := kafka.NewOutboxEvent(rid, "employee", strconv.FormatUint(uint64(id), 10),
			events.EmployeeDeletedType, events.EmployeeLifecycleTopic,
			events.EmployeeDeletedEvent{
				EventType:  events.EmployeeDeletedType,
				RequestID:  rid,
				EmployeeID: id,
				OccurredAt: time.Now().UTC(),
			})
		if err != nil {
			return err
		}
		return outbox.Create(ctx, event)
	})
	if err != nil {
		mapped := mapRepositoryError(err)
		if apperror.HasCode(mapped, apperror.CodeNotFound) {
			log.Warn("delete employee not found", zap.Uint("employee_id", id))
		} else {
			log.Error("delete employee failed", zap.Uint("employee_id", id), zap.Error(err))
		}
		return mapped
	}

	s.invalidateList(ctx)

	log.Info("delete employee success", zap.Uint("employee_id", id))
	return nil
}

func (s *service) List(ctx context.Context) ([]EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeListKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(EmployeeListKey, func() (interface{}, error) {
		empls, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(empls)

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, EmployeeListKey, data, employeeListTTL).Err(); err != nil {
					log.Warn("cache employee list failed", zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		log.Error("list employees failed", zap.Error(err))
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Debug("get employee failed",
			zap.Uint("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) FindByEmail(ctx context.Context, email string) (EmployeeResponse, error) {
	empl, err := s.repo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

// write runs fn inside a transaction when an outbox is configured, and
// directly against the repository otherwise.
func (s *service) write(ctx context.Context, fn func(repo Repository, outbox kafka.OutboxRepository) error) error {
	if s.db == nil || s.outbox == nil {
		return fn(s.repo, nil)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(s.repo.WithTx(tx), s.outbox.WithTx(tx))
	})
}

func (s *service) invalidateList(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeListKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee list cache",
			zap.Error(err),
			zap.String("key", EmployeeListKey),
		)
	}
}

func normalizeRequest(req CreateEmployeeRequest) CreateEmployeeRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Gender = strings.TrimSpace(req.Gender)
	req.Role = strings.TrimSpace(req.Role)
	return req
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:     empl.ID,
		Name:   empl.Name,
		Email:  empl.Email,
		Phone:  empl.Phone,
		Gender: empl.Gender,
		Role:   empl.Role,
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, 0, len(empls))
	for _, e := range empls {
		resp = append(resp, mapToResponse(e))
	}
	return resp
}
