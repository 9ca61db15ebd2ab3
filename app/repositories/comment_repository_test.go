package repositories

import (
	"testing"
	"time"

	"inkwell/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormCommentRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCommentRepository(db)

	post := createTestPost(t, db, "Test Post", time.Now())

	now := time.Now()
	comment := &models.Comment{
		PostID:    post.ID,
		Content:   "A comment",
		Author:    "Commenter",
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := repo.Create(comment)
	assert.NoError(t, err)
	assert.NotZero(t, comment.ID)
}

func TestGormCommentRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCommentRepository(db)

	post := createTestPost(t, db, "Test Post", time.Now())
	created := createTestComment(t, db, post.ID, "A comment", time.Now())

	t.Run("existing comment", func(t *testing.T) {
		comment, err := repo.GetByID(created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, comment.ID)
		assert.Equal(t, post.ID, comment.PostID)
		assert.Equal(t, "A comment", comment.Content)
	})

	t.Run("missing comment", func(t *testing.T) {
		_, err := repo.GetByID(9999)
		assert.Equal(t, ErrNotFound, err)
	})
}

func TestGormCommentRepository_ListByPost(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCommentRepository(db)

	post := createTestPost(t, db, "Test Post", time.Now())
	other := createTestPost(t, db, "Other Post", time.Now())

	base := time.Now().Add(-time.Hour)
	createTestComment(t, db, post.ID, "second", base.Add(time.Minute))
	createTestComment(t, db, post.ID, "first", base)
	createTestComment(t, db, other.ID, "elsewhere", base)

	t.Run("orders oldest first and filters by post", func(t *testing.T) {
		comments, err := repo.ListByPost(post.ID)
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, "first", comments[0].Content)
		assert.Equal(t, "second", comments[1].Content)
	})

	t.Run("post without comments yields empty list", func(t *testing.T) {
		empty := createTestPost(t, db, "Quiet Post", time.Now())
		comments, err := repo.ListByPost(empty.ID)
		require.NoError(t, err)
		assert.NotNil(t, comments)
		assert.Empty(t, comments)
	})
}

func TestGormCommentRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCommentRepository(db)

	post := createTestPost(t, db, "Test Post", time.Now())
	comment := createTestComment(t, db, post.ID, "A comment", time.Now())

	t.Run("existing comment", func(t *testing.T) {
		require.NoError(t, repo.Delete(comment.ID))

		_, err := repo.GetByID(comment.ID)
		assert.Equal(t, ErrNotFound, err)
	})

	t.Run("missing comment", func(t *testing.T) {
		err := repo.Delete(9999)
		assert.Equal(t, ErrNotFound, err)
	})
}
