package seed

import (
	"fmt"
	"log"
	"time"

	"inkwell/app/config"
	"inkwell/app/models"

	"github.com/jinzhu/gorm"
	"golang.org/x/crypto/bcrypt"
)

// Run loads the development fixtures: one admin account, a handful of posts
// and their comments. It is idempotent; records that already exist are left
// alone, so it is safe to run repeatedly. Intended for non-production setup
// only.
func Run(db *gorm.DB, cfg *config.Config) error {
	if err := createAdmin(db, cfg); err != nil {
		return err
	}

	posts, err := createPosts(db)
	if err != nil {
		return err
	}

	return createComments(db, posts)
}

func createAdmin(db *gorm.DB, cfg *config.Config) error {
	var existing models.AdminUser
	err := db.Where("username = ?", cfg.AdminUsername).First(&existing).Error
	if err == nil {
		log.Printf("admin user %q already exists", cfg.AdminUsername)
		return nil
	}
	if !gorm.IsRecordNotFoundError(err) {
		return fmt.Errorf("failed to look up admin user: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %v", err)
	}

	admin := models.AdminUser{
		Username:     cfg.AdminUsername,
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %v", err)
	}

	log.Printf("created admin user %q", admin.Username)
	return nil
}

type postFixture struct {
	title   string
	content string
	author  string
}

type commentFixture struct {
	postIndex int
	content   string
	author    string
}

var postFixtures = []postFixture{
	{
		title: "Getting Started with Go Web Services",
		content: "Go ships with almost everything needed to put a web service into production: a solid HTTP " +
			"server, a capable standard library and a toolchain that produces a single static binary. In this " +
			"post we walk through structuring a small REST backend, from routing and handlers down to the " +
			"persistence layer, and look at where third-party packages genuinely earn their place.",
		author: "Jane Developer",
	},
	{
		title: "Designing Clean REST APIs",
		content: "A good REST API is predictable: resources map to paths, verbs map to operations and status " +
			"codes mean what the RFC says they mean. We cover pagination envelopes, nested sub-resources and " +
			"why a comment should only ever be addressable through the post that owns it.",
		author: "John Coder",
	},
	{
		title: "Best Practices for Data Modeling",
		content: "Your models are the single source of truth about the data you store. Pick descriptive field " +
			"names, set sensible length limits, use foreign keys for relationships and let the database enforce " +
			"the invariants it is good at enforcing, starting with cascading deletes.",
		author: "Sarah Tech",
	},
	{
		title: "Testing Strategies That Scale",
		content: "Good tests are fast, isolated, repeatable and self-validating. An in-memory database per test, " +
			"httptest for the handler layer and small hand-written fakes for the service layer cover most of a " +
			"CRUD backend without a single external dependency.",
		author: "Mike Tester",
	},
	{
		title: "Deploying Small Services",
		content: "Deployment is mostly configuration discipline: credentials come from the environment, the " +
			"database DSN is never hard-coded and the process speaks plain HTTP behind a reverse proxy. Keep " +
			"DEBUG conveniences out of production and back the data store up before you need to.",
		author: "Alex DevOps",
	},
}

var commentFixtures = []commentFixture{
	{0, "Great introduction! I'm new to Go and this was very helpful.", "Beginner Dev"},
	{0, "Thanks for sharing. Could you show more of the persistence layer?", "Curious Coder"},
	{1, "The nested sub-resource section is a game-changer for our API design.", "API Enthusiast"},
	{1, "We adopted the pagination envelope last year. No regrets.", "Experienced Dev"},
	{2, "These practices are spot on. I wish I knew them when I started!", "Learning Dev"},
	{2, "Don't forget to index the columns you filter on!", "Performance Guru"},
	{3, "Testing is so important. Thanks for emphasizing this!", "Quality Advocate"},
	{3, "In-memory SQLite per test made our suite ten times faster.", "Pytest Fan"},
	{4, "Deployment can be tricky. This covers all the important points!", "Deployment Newbie"},
	{4, "Running behind a reverse proxy simplified our TLS story a lot.", "Railway User"},
	{4, "Also set up monitoring and error tracking before launch, not after!", "Ops Expert"},
}

func createPosts(db *gorm.DB) ([]models.Post, error) {
	posts := make([]models.Post, 0, len(postFixtures))
	for _, f := range postFixtures {
		now := time.Now()
		post := models.Post{}
		err := db.Where(models.Post{Title: f.title}).
			Attrs(models.Post{
				Content:   f.content,
				Author:    f.author,
				CreatedAt: now,
				UpdatedAt: now,
			}).
			FirstOrCreate(&post).Error
		if err != nil {
			return nil, fmt.Errorf("failed to seed post %q: %v", f.title, err)
		}
		posts = append(posts, post)
	}
	log.Printf("seeded %d posts", len(posts))
	return posts, nil
}

func createComments(db *gorm.DB, posts []models.Post) error {
	created := 0
	for _, f := range commentFixtures {
		post := posts[f.postIndex]

		var existing models.Comment
		err := db.Where("post_id = ? AND content = ? AND author = ?", post.ID, f.content, f.author).
			First(&existing).Error
		if err == nil {
			continue
		}
		if !gorm.IsRecordNotFoundError(err) {
			return fmt.Errorf("failed to look up comment on %q: %v", post.Title, err)
		}

		now := time.Now()
		comment := models.Comment{
			PostID:    post.ID,
			Content:   f.content,
			Author:    f.author,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := db.Create(&comment).Error; err != nil {
			return fmt.Errorf("failed to seed comment on %q: %v", post.Title, err)
		}
		created++
	}
	log.Printf("seeded %d comments", created)
	return nil
}
