package repositories

import (
	"errors"
	"fmt"

	"inkwell/app/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Open connects to the database for the given dialect ("sqlite3" or
// "postgres") and DSN. SQLite needs foreign keys switched on per connection.
func Open(dialect, dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(dialect, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	if dialect == "sqlite3" {
		// An in-memory SQLite database exists per connection, so the pool
		// must stay at a single connection. The pragma applies per
		// connection as well.
		db.DB().SetMaxOpenConns(1)
		db.Exec("PRAGMA foreign_keys = ON")
	}

	return db, nil
}

// Migrate creates or updates the schema for all models. On postgres the
// comment -> post foreign key is installed with ON DELETE CASCADE; sqlite
// gets the same behavior from the transactional delete in PostRepository.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Post{}, &models.Comment{}, &models.AdminUser{}).Error; err != nil {
		return fmt.Errorf("failed to migrate schema: %v", err)
	}

	if db.Dialect().GetName() == "postgres" {
		if err := db.Model(&models.Comment{}).AddForeignKey("post_id", "posts(id)", "CASCADE", "CASCADE").Error; err != nil {
			return fmt.Errorf("failed to add comment foreign key: %v", err)
		}
	}

	return nil
}
