package attendance

import (
	"context"
	"errors"
	"time"

	attendanceerrors "office-attendance/internal/attendance/errors"
	"office-attendance/internal/shared/apperror"
	"office-attendance/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	MarkAttendance(ctx context.Context, employeeID uint, now time.Time) (MarkAttendanceResponse, error)
	QueryHistory(ctx context.Context, employeeID uint, month, year string) (HistoryResponse, error)
	ExportHistory(ctx context.Context, employeeID uint, month, year string) ([]byte, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{repo: repo, logger: l}
}

// MarkAttendance records presence for the calendar day of now. The lookup and
// the insert are separate statements, so two concurrent calls for the same
// employee and day can both insert.
func (s *service) MarkAttendance(ctx context.Context, employeeID uint, now time.Time) (MarkAttendanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if employeeID == 0 {
		log.Warn("mark attendance rejected, missing employee id")
		return MarkAttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	date := now.Format(dateLayout)
	clock := now.Format(timeLayout)
	log.Debug("mark attendance requested",
		zap.Uint("employee_id", employeeID),
		zap.String("date", date),
	)

	existing, err := s.repo.FindByEmployeeAndDate(ctx, employeeID, date)
	switch {
	case err == nil:
		log.Info("attendance already marked",
			zap.Uint("employee_id", employeeID),
			zap.String("date", date),
		)
		return MarkAttendanceResponse{
			Result: MarkResultAlreadyMarked,
			Date:   existing.Date,
			Time:   existing.Time,
		}, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		log.Error("mark attendance lookup failed", zap.Error(err))
		return MarkAttendanceResponse{}, apperror.Storage(err)
	}

	row := &Attendance{
		EmployeeID: employeeID,
		Date:       date,
		Time:       clock,
		Status:     StatusPresent,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		log.Error("mark attendance persist failed", zap.Error(err))
		return MarkAttendanceResponse{}, apperror.Storage(err)
	}

	log.Info("attendance marked",
		zap.Uint("employee_id", employeeID),
		zap.String("date", date),
		zap.String("time", clock),
	)
	return MarkAttendanceResponse{Result: MarkResultMarked, Date: date, Time: clock}, nil
}

func (s *service) QueryHistory(ctx context.Context, employeeID uint, month, year string) (HistoryResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("attendance history requested",
		zap.Uint("employee_id", employeeID),
		zap.String("month", month),
		zap.String("year", year),
	)

	records, err := s.history(ctx, employeeID, month, year)
	if err != nil {
		return HistoryResponse{}, err
	}

	return HistoryResponse{
		Records:    records,
		Statistics: ComputeStatistics(records),
	}, nil
}

func (s *service) ExportHistory(ctx context.Context, employeeID uint, month, year string) ([]byte, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	records, err := s.history(ctx, employeeID, month, year)
	if err != nil {
		return nil, err
	}

	data, err := RenderWorkbook(records, ComputeStatistics(records))
	if err != nil {
		log.Error("render attendance workbook failed", zap.Error(err))
		return nil, apperror.Wrap(err, attendanceerrors.ErrExportFailed.Code,
			attendanceerrors.ErrExportFailed.Message, attendanceerrors.ErrExportFailed.HTTPStatus)
	}

	log.Info("attendance export rendered",
		zap.Uint("employee_id", employeeID),
		zap.Int("rows", len(records)),
	)
	return data, nil
}

func (s *service) history(ctx context.Context, employeeID uint, month, year string) ([]HistoryRecord, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if employeeID == 0 {
		return nil, attendanceerrors.ErrInvalidEmployeeID
	}

	filter, err := ParseHistoryFilter(month, year)
	if err != nil {
		log.Warn("attendance history filter rejected",
			zap.String("month", month),
			zap.String("year", year),
			zap.Error(err),
		)
		return nil, err
	}

	rows, err := s.repo.FindHistory(ctx, employeeID, filter)
	if err != nil {
		log.Error("attendance history query failed", zap.Error(err))
		return nil, apperror.Storage(err)
	}
	return DecorateAll(rows), nil
}
