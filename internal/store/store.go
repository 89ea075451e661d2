// Package store owns the relational schema shared by every entity repository.
package store

import (
	"context"
	"fmt"

	"go-enlacerb/internal/attendance"
	"go-enlacerb/internal/document"
	"go-enlacerb/internal/employee"
	"go-enlacerb/internal/evaluation"
	"go-enlacerb/internal/hrrequest"
	"go-enlacerb/internal/role"
	"go-enlacerb/internal/user"

	"gorm.io/gorm"
)

// Models lists every persisted entity in foreign-key dependency order.
func Models() []any {
	return []any{
		&role.Role{},
		&user.User{},
		&employee.Employee{},
		&document.Document{},
		&hrrequest.Request{},
		&attendance.Attendance{},
		&evaluation.Evaluation{},
	}
}

// EnsureSchema creates missing tables, columns and indexes. It never drops anything
// and is safe to run on every start.
func EnsureSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// Ping checks the underlying connection pool.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
