// Package storetest opens throwaway sqlite stores for repository tests.
package storetest

import (
	"path/filepath"
	"testing"

	"go-enlacerb/internal/employee"
	"go-enlacerb/internal/role"
	"go-enlacerb/internal/shared/connection"
	"go-enlacerb/internal/store"
	"go-enlacerb/internal/user"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// New returns a migrated sqlite store in t's temp dir with foreign keys enforced.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := connection.SQLiteDSN(filepath.Join(t.TempDir(), "enlacerb_test.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: connection.Now,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, store.EnsureSchema(db))
	return db
}

// Fixture is a role, a user holding it and the user's employee profile.
type Fixture struct {
	RoleID     uint
	UserID     uint
	EmployeeID uint
}

// Seed inserts a Fixture whose user has the given email.
func Seed(t *testing.T, db *gorm.DB, email string) Fixture {
	t.Helper()

	r := role.Role{Name: "rol-" + email}
	require.NoError(t, db.Create(&r).Error)

	u := user.User{Name: "Usuario " + email, Email: email, PasswordHash: "x", RoleID: r.ID}
	require.NoError(t, db.Omit(clause.Associations).Create(&u).Error)

	e := employee.Employee{UserID: u.ID}
	require.NoError(t, db.Omit(clause.Associations).Create(&e).Error)

	return Fixture{RoleID: r.ID, UserID: u.ID, EmployeeID: e.ID}
}
