package database

import (
	"fmt"

	"dev-portfolio/internal/model"
	"dev-portfolio/pkg/config"
	"dev-portfolio/pkg/logger"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewSQLiteDB opens (or creates) the portfolio database file, migrates the
// schema and seeds sample content into empty tables.
func NewSQLiteDB(cfg *config.Config, log *logger.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", cfg.DBPath, err)
	}

	if err := db.AutoMigrate(
		&model.PostModel{},
		&model.CommentModel{},
		&model.ProjectModel{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := seed(db, log); err != nil {
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	return db, nil
}

// seed inserts the sample projects and posts, once per table: a table that
// already holds rows is left untouched, so restarts never duplicate them.
func seed(db *gorm.DB, log *logger.Logger) error {
	var projectCount int64
	if err := db.Model(&model.ProjectModel{}).Count(&projectCount).Error; err != nil {
		return err
	}

	if projectCount == 0 {
		projects := []model.ProjectModel{
			{
				Title:       "AI Image Generator",
				Description: "A full-stack application that uses Gemini to generate high-quality images from text prompts.",
				Category:    "AI/ML",
				ImageURL:    "https://picsum.photos/seed/ai/800/600",
				LiveURL:     "#",
				RepoURL:     "#",
			},
			{
				Title:       "Crypto Dashboard",
				Description: "Real-time cryptocurrency tracking dashboard with interactive charts and price alerts.",
				Category:    "Fintech",
				ImageURL:    "https://picsum.photos/seed/crypto/800/600",
				LiveURL:     "#",
				RepoURL:     "#",
			},
			{
				Title:       "E-commerce Platform",
				Description: "A scalable e-commerce solution with integrated Stripe payments and inventory management.",
				Category:    "E-commerce",
				ImageURL:    "https://picsum.photos/seed/shop/800/600",
				LiveURL:     "#",
				RepoURL:     "#",
			},
		}
		if err := db.Create(&projects).Error; err != nil {
			return err
		}
		log.Info("Seeded %d sample projects", len(projects))
	}

	var postCount int64
	if err := db.Model(&model.PostModel{}).Count(&postCount).Error; err != nil {
		return err
	}

	if postCount == 0 {
		posts := []model.PostModel{
			{
				Title:   "The Future of Web Development",
				Content: "Web development is evolving faster than ever. From AI-driven coding assistants to the rise of edge computing, the landscape is shifting. In this post, we explore the key trends that will define the next decade of the web.",
			},
			{
				Title:   "Mastering React 19",
				Content: "React 19 brings a host of new features and improvements. We dive deep into the new hooks, the compiler, and how to optimize your applications for the best user experience.",
			},
			{
				Title:   "Building Scalable APIs with Express",
				Content: "Express remains the go-to framework for Node.js developers. Learn how to structure your projects for scale, implement robust middleware, and handle complex database interactions.",
			},
		}
		if err := db.Create(&posts).Error; err != nil {
			return err
		}
		log.Info("Seeded %d sample posts", len(posts))
	}

	return nil
}
