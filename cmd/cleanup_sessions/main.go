package main

import (
	"context"
	"log"
	"os"

	"hongling-sanctuary-be/internal/repository/unitofwork"
	"hongling-sanctuary-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// Removes expired user sessions. Intended to run from cron; the REST API
// exposes the same operation under /api/admin/v1/sessions/cleanup.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	deleted, err := uow.UserSessionRepository().DeleteExpired(ctx)
	if err != nil {
		color.Red("Cleanup failed: %v", err)
		os.Exit(1)
	}

	color.Green("✅ Cleaned up %d expired sessions", deleted)
}
