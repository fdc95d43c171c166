package schema_test

import (
	"context"
	"testing"

	"office-attendance/internal/schema"
	"office-attendance/internal/schema/schematest"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSetup_SeedsAdminOnce(t *testing.T) {
	db := schematest.NewDB(t)
	ctx := context.Background()

	assert.NoError(t, schema.Setup(ctx, db, schema.Options{ResetAttendance: true}, zap.NewNop()))
	assert.Equal(t, int64(1), schematest.Count(t, db, "admins"))

	var row struct {
		Username string
		Password string
	}
	assert.NoError(t, db.Raw("SELECT username, password FROM admins").Scan(&row).Error)
	assert.Equal(t, schema.SeedAdminUsername, row.Username)
	assert.Equal(t, schema.SeedAdminPassword, row.Password)
}

func TestSetup_ResetsAttendanceButKeepsOtherTables(t *testing.T) {
	db := schematest.NewDB(t)
	ctx := context.Background()

	assert.NoError(t, db.Exec(`INSERT INTO employees (name, email, phone, gender, role) VALUES ('Bob', 'bob@x.com', '+11234567890', 'Male', 'HR')`).Error)
	assert.NoError(t, db.Exec(`INSERT INTO leaves (employee_id, date, reason) VALUES (1, '2030-01-01', 'trip')`).Error)
	assert.NoError(t, db.Exec(`INSERT INTO attendance (employee_id, date, time, status) VALUES (1, '2024-06-01', '09:00:00', 'Present')`).Error)

	assert.NoError(t, schema.Setup(ctx, db, schema.Options{ResetAttendance: true}, zap.NewNop()))

	assert.Equal(t, int64(1), schematest.Count(t, db, "employees"))
	assert.Equal(t, int64(1), schematest.Count(t, db, "leaves"))
	assert.Equal(t, int64(0), schematest.Count(t, db, "attendance"))
}

func TestSetup_KeepsAttendanceWhenResetDisabled(t *testing.T) {
	db := schematest.NewDB(t)
	ctx := context.Background()

	assert.NoError(t, db.Exec(`INSERT INTO attendance (employee_id, date, time, status) VALUES (1, '2024-06-01', '09:00:00', 'Present')`).Error)
	assert.NoError(t, schema.Setup(ctx, db, schema.Options{ResetAttendance: false}, zap.NewNop()))
	assert.Equal(t, int64(1), schematest.Count(t, db, "attendance"))
}

func TestSetup_LeaveStatusDefaultsToPending(t *testing.T) {
	db := schematest.NewDB(t)

	assert.NoError(t, db.Exec(`INSERT INTO leaves (employee_id, date, reason) VALUES (1, '2030-01-01', 'trip')`).Error)
	var status string
	assert.NoError(t, db.Raw(`SELECT status FROM leaves WHERE id = 1`).Scan(&status).Error)
	assert.Equal(t, "Pending", status)
}
