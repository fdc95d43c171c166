package attendance_test

import (
	"context"
	"testing"

	"office-attendance/internal/attendance"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newPostgresMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestRepository_FindHistory_SlicesStoredDate(t *testing.T) {
	db, mock := newPostgresMock(t)
	repo := attendance.NewRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "attendance" WHERE employee_id = \$1 AND SUBSTR\(date, 1, 4\) = \$2 AND SUBSTR\(date, 6, 2\) = \$3 ORDER BY date DESC`).
		WithArgs(7, "2024", "06").
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "date", "time", "status"}).
			AddRow(1, 7, "2024-06-01", "09:00:00", "Present"))

	rows, err := repo.FindHistory(context.Background(), 7, attendance.HistoryFilter{Year: "2024", Month: "06"})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2024-06-01", rows[0].Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindHistory_NoFilter(t *testing.T) {
	db, mock := newPostgresMock(t)
	repo := attendance.NewRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "attendance" WHERE employee_id = \$1 ORDER BY date DESC`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "date", "time", "status"}))

	rows, err := repo.FindHistory(context.Background(), 7, attendance.HistoryFilter{})

	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
