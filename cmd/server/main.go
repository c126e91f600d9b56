package main

import (
	"fmt"

	"dev-portfolio/internal/app"
	"dev-portfolio/pkg/config"
	"dev-portfolio/pkg/database"
	"dev-portfolio/pkg/logger"
)

// @title           Portfolio API
// @version         1.0
// @description     Backend for a personal portfolio site: blog posts with comments, project showcase, and Stripe checkout sessions.
// @BasePath        /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()

	db, err := database.NewSQLiteDB(cfg, log)
	if err != nil {
		log.Error("Failed to initialize database: %v", err)
		panic(err)
	}

	app.Run(cfg, log, db)
}
