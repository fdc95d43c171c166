package attendance_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"office-attendance/internal/attendance"
	attendanceerrors "office-attendance/internal/attendance/errors"
	attendanceMock "office-attendance/internal/attendance/mock"
	"office-attendance/internal/schema/schematest"
	"office-attendance/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func seedEmployee(t *testing.T, db *gorm.DB, email string) uint {
	t.Helper()
	require.NoError(t, db.Exec(
		`INSERT INTO employees (name, email, phone, gender, role) VALUES (?, ?, '+15551234567', 'Female', 'Developer')`,
		"Alice", email,
	).Error)
	var id uint
	require.NoError(t, db.Raw(`SELECT id FROM employees WHERE email = ?`, email).Scan(&id).Error)
	return id
}

func TestService_MarkAttendance_OncePerDay(t *testing.T) {
	ctx := context.Background()
	db := schematest.NewDB(t)
	svc := attendance.NewService(attendance.NewRepository(db))
	empID := seedEmployee(t, db, "alice@corp.com")

	morning := time.Date(2024, 6, 1, 9, 5, 30, 0, time.Local)
	first, err := svc.MarkAttendance(ctx, empID, morning)
	require.NoError(t, err)
	assert.Equal(t, attendance.MarkResultMarked, first.Result)
	assert.Equal(t, "2024-06-01", first.Date)
	assert.Equal(t, "09:05:30", first.Time)

	second, err := svc.MarkAttendance(ctx, empID, morning.Add(4*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, attendance.MarkResultAlreadyMarked, second.Result)
	assert.Equal(t, "09:05:30", second.Time)

	assert.Equal(t, int64(1), schematest.Count(t, db, "attendance"))

	nextDay, err := svc.MarkAttendance(ctx, empID, morning.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, attendance.MarkResultMarked, nextDay.Result)
	assert.Equal(t, int64(2), schematest.Count(t, db, "attendance"))
}

func TestService_QueryHistory_JuneScenario(t *testing.T) {
	ctx := context.Background()
	db := schematest.NewDB(t)
	svc := attendance.NewService(attendance.NewRepository(db))
	empID := seedEmployee(t, db, "alice@corp.com")

	_, err := svc.MarkAttendance(ctx, empID, time.Date(2024, 6, 1, 8, 30, 0, 0, time.Local))
	require.NoError(t, err)
	_, err = svc.MarkAttendance(ctx, empID, time.Date(2024, 7, 2, 8, 30, 0, 0, time.Local))
	require.NoError(t, err)

	res, err := svc.QueryHistory(ctx, empID, "June", "2024")
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "Saturday", res.Records[0].Weekday)
	assert.Equal(t, "01-06-2024", res.Records[0].DisplayDate)
	assert.Equal(t, "Present", res.Records[0].Status)
	assert.Equal(t, attendance.Statistics{Present: 1, Absent: 0, Total: 1}, res.Statistics)

	all, err := svc.QueryHistory(ctx, empID, "All", "All")
	require.NoError(t, err)
	require.Len(t, all.Records, 2)
	assert.Equal(t, "2024-07-02", all.Records[0].Date)
	assert.Equal(t, "2024-06-01", all.Records[1].Date)

	none, err := svc.QueryHistory(ctx, empID, "June", "2023")
	require.NoError(t, err)
	assert.Empty(t, none.Records)
	assert.Equal(t, 0, none.Statistics.Total)
}

func TestService_QueryHistory_InvalidFilters(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := attendanceMock.NewMockRepository(ctrl)
	svc := attendance.NewService(repo)

	_, err := svc.QueryHistory(ctx, 1, "Juneish", "2024")
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidMonth)

	_, err = svc.QueryHistory(ctx, 1, "June", "24")
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidYear)

	_, err = svc.QueryHistory(ctx, 0, "All", "All")
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidEmployeeID)
}

func TestService_MarkAttendance_StorageErrors(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.Local)

	t.Run("lookup failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := attendanceMock.NewMockRepository(ctrl)
		svc := attendance.NewService(repo)

		repo.EXPECT().FindByEmployeeAndDate(ctx, uint(1), "2024-06-01").Return(nil, errors.New("database is locked"))

		_, err := svc.MarkAttendance(ctx, 1, now)
		assert.True(t, apperror.HasCode(err, apperror.CodeStorageError))
	})

	t.Run("insert failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := attendanceMock.NewMockRepository(ctrl)
		svc := attendance.NewService(repo)

		repo.EXPECT().FindByEmployeeAndDate(ctx, uint(1), "2024-06-01").Return(nil, gorm.ErrRecordNotFound)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("disk full"))

		_, err := svc.MarkAttendance(ctx, 1, now)
		assert.True(t, apperror.HasCode(err, apperror.CodeStorageError))
	})

	t.Run("zero employee id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := attendance.NewService(attendanceMock.NewMockRepository(ctrl))

		_, err := svc.MarkAttendance(ctx, 0, now)
		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidEmployeeID)
	})
}

func TestService_ExportHistory(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := attendanceMock.NewMockRepository(ctrl)
	svc := attendance.NewService(repo)

	repo.EXPECT().
		FindHistory(ctx, uint(4), attendance.HistoryFilter{Year: "2024", Month: "06"}).
		Return([]attendance.Attendance{{ID: 1, EmployeeID: 4, Date: "2024-06-01", Time: "09:00:00", Status: "Present"}}, nil)

	data, err := svc.ExportHistory(ctx, 4, "June", "2024")

	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
