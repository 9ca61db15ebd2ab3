package repositories

import (
	"testing"
	"time"

	"inkwell/app/models"

	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database and migrates the schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Open("sqlite3", ":memory:")
	require.NoError(t, err, "Failed to connect to in-memory SQLite")

	db.LogMode(false)

	require.NoError(t, Migrate(db), "Failed to migrate database schema")

	t.Cleanup(func() { db.Close() })
	return db
}

// createTestPost inserts a post with an explicit creation time so ordering
// assertions are deterministic.
func createTestPost(t *testing.T, db *gorm.DB, title string, createdAt time.Time) *models.Post {
	t.Helper()

	post := &models.Post{
		Title:     title,
		Content:   "Content of " + title,
		Author:    "Test Author",
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, db.Create(post).Error, "Failed to create test post")
	return post
}

// createTestComment inserts a comment bound to the given post.
func createTestComment(t *testing.T, db *gorm.DB, postID uint, content string, createdAt time.Time) *models.Comment {
	t.Helper()

	comment := &models.Comment{
		PostID:    postID,
		Content:   content,
		Author:    "Test Commenter",
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, db.Create(comment).Error, "Failed to create test comment")
	return comment
}
