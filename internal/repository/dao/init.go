package dao

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Seller{},
		&Buyer{},
		&Price{},
		&Stock{},
	)
}

// isUniqueViolation recognizes a uniqueness rejection from either backend:
// postgres reports a typed pgconn error, sqlite only an error string.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return true
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
