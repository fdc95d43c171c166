// Package schema creates the four application tables and the event outbox,
// and seeds the default administrator.
//
// The attendance table is dropped and recreated on every run unless
// Options.ResetAttendance is false, so every setup starts with an empty
// attendance history. References from leaves and attendance to employees are
// declared on SQLite (where they are not enforced) and omitted on PostgreSQL,
// so deleting an employee never cascades and never fails on dependents.
package schema

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	SeedAdminUsername = "admin"
	SeedAdminPassword = "admin123"
)

type Options struct {
	ResetAttendance bool
}

type dialectDDL struct {
	admins     string
	employees  string
	leaves     string
	attendance string
	outbox     string
	seedAdmin  string
}

var sqliteDDL = dialectDDL{
	admins: `
		CREATE TABLE IF NOT EXISTS admins (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL
		)`,
	employees: `
		CREATE TABLE IF NOT EXISTS employees (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			phone TEXT NOT NULL,
			gender TEXT NOT NULL,
			role TEXT NOT NULL
		)`,
	leaves: `
		CREATE TABLE IF NOT EXISTS leaves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			employee_id INTEGER NOT NULL,
			date TEXT NOT NULL,
			reason TEXT NOT NULL,
			status TEXT DEFAULT 'Pending',
			FOREIGN KEY (employee_id) REFERENCES employees(id)
		)`,
	attendance: `
		CREATE TABLE IF NOT EXISTS attendance (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			employee_id INTEGER NOT NULL,
			date TEXT NOT NULL,
			time TEXT NOT NULL,
			status TEXT NOT NULL,
			FOREIGN KEY (employee_id) REFERENCES employees(id)
		)`,
	outbox: `
		CREATE TABLE IF NOT EXISTS outbox_events (
			id TEXT PRIMARY KEY,
			request_id TEXT,
			aggregate_type TEXT NOT NULL,
			aggregate_id TEXT NOT NULL,
			event_type TEXT NOT NULL,
			topic TEXT NOT NULL,
			payload BLOB NOT NULL,
			status TEXT NOT NULL,
			retry_count INTEGER NOT NULL DEFAULT 0,
			error_message TEXT,
			next_retry_at DATETIME,
			processed_at DATETIME,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
	seedAdmin: `INSERT OR IGNORE INTO admins (username, password) VALUES (?, ?)`,
}

var postgresDDL = dialectDDL{
	admins: `
		CREATE TABLE IF NOT EXISTS admins (
			id BIGSERIAL PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL
		)`,
	employees: `
		CREATE TABLE IF NOT EXISTS employees (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			gender TEXT NOT NULL,
			role TEXT NOT NULL,
			CONSTRAINT uq_employee_email UNIQUE (email)
		)`,
	leaves: `
		CREATE TABLE IF NOT EXISTS leaves (
			id BIGSERIAL PRIMARY KEY,
			employee_id BIGINT NOT NULL,
			date TEXT NOT NULL,
			reason TEXT NOT NULL,
			status TEXT DEFAULT 'Pending'
		)`,
	attendance: `
		CREATE TABLE IF NOT EXISTS attendance (
			id BIGSERIAL PRIMARY KEY,
			employee_id BIGINT NOT NULL,
			date TEXT NOT NULL,
			time TEXT NOT NULL,
			status TEXT NOT NULL
		)`,
	outbox: `
		CREATE TABLE IF NOT EXISTS outbox_events (
			id UUID PRIMARY KEY,
			request_id TEXT,
			aggregate_type TEXT NOT NULL,
			aggregate_id TEXT NOT NULL,
			event_type TEXT NOT NULL,
			topic TEXT NOT NULL,
			payload BYTEA NOT NULL,
			status TEXT NOT NULL,
			retry_count INTEGER NOT NULL DEFAULT 0,
			error_message TEXT,
			next_retry_at TIMESTAMPTZ,
			processed_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
	seedAdmin: `INSERT INTO admins (username, password) VALUES (?, ?) ON CONFLICT (username) DO NOTHING`,
}

type step struct {
	name string
	sql  string
}

func ddlFor(db *gorm.DB) (dialectDDL, error) {
	switch name := db.Dialector.Name(); name {
	case "sqlite":
		return sqliteDDL, nil
	case "postgres":
		return postgresDDL, nil
	default:
		return dialectDDL{}, fmt.Errorf("schema: unsupported dialect %q", name)
	}
}

// Setup is safe to run repeatedly apart from the attendance reset.
func Setup(ctx context.Context, db *gorm.DB, opts Options, logger *zap.Logger) error {
	log := logger.Named("schema")
	ddl, err := ddlFor(db)
	if err != nil {
		return err
	}

	tx := db.WithContext(ctx)
	steps := []step{
		{"create admins", ddl.admins},
		{"create employees", ddl.employees},
		{"create leaves", ddl.leaves},
	}
	if opts.ResetAttendance {
		steps = append(steps, step{"drop attendance", "DROP TABLE IF EXISTS attendance"})
	}
	steps = append(steps,
		step{"create attendance", ddl.attendance},
		step{"create outbox_events", ddl.outbox},
	)

	for _, st := range steps {
		if err := tx.Exec(st.sql).Error; err != nil {
			log.Error("schema step failed", zap.String("step", st.name), zap.Error(err))
			return fmt.Errorf("schema: %s: %w", st.name, err)
		}
	}
	if opts.ResetAttendance {
		log.Warn("attendance table recreated, previous attendance history discarded")
	}

	if err := tx.Exec(ddl.seedAdmin, SeedAdminUsername, SeedAdminPassword).Error; err != nil {
		log.Error("seed administrator failed", zap.Error(err))
		return fmt.Errorf("schema: seed admin: %w", err)
	}

	log.Info("database tables created successfully")
	return nil
}
