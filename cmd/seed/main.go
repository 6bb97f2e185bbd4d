package main

import (
	"context"
	"log"
	"os"
	"time"

	"hongling-sanctuary-be/internal/entity"
	"hongling-sanctuary-be/internal/repository"
	"hongling-sanctuary-be/internal/repository/unitofwork"
	"hongling-sanctuary-be/pkg/apiclient"
	"hongling-sanctuary-be/pkg/bazi"
	"hongling-sanctuary-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Seeds one demo chart with narratives in every tone, so a fresh
// database has something to show.
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

	if err := repository.EnsureSchema(db); err != nil {
		color.Red("Schema setup failed: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	input := bazi.BirthInput{Year: 1984, Month: 10, Day: 6, Hour: 20, UserName: "示範使用者"}
	demo := apiclient.DemoAnalysis(input, bazi.ToneDefault)
	userId := "seed-user"

	chart := entity.BaziChart{
		Id:           uuid.New(),
		UserId:       &userId,
		BirthDate:    input,
		Pillars:      demo.Chart.Pillars,
		FiveElements: demo.Chart.FiveElements,
		YinYang:      demo.Chart.YinYang,
		CreatedAt:    time.Now(),
	}
	if err := uow.BaziChartRepository().Create(ctx, &chart); err != nil {
		color.Red("Failed to seed chart: %v", err)
		os.Exit(1)
	}
	color.Green("✅ Seeded chart %s", chart.Id)

	tones := []bazi.Tone{bazi.ToneDefault, bazi.ToneMilitary, bazi.ToneHealing, bazi.TonePoetic, bazi.ToneMythic}
	for _, tone := range tones {
		analysis := apiclient.DemoAnalysis(input, tone)
		report := entity.NarrativeReport{
			Id:        uuid.New(),
			ChartId:   chart.Id,
			Tone:      tone,
			Narrative: analysis.Narrative,
			CreatedAt: time.Now(),
		}
		if err := uow.NarrativeReportRepository().Create(ctx, &report); err != nil {
			color.Red("Failed to seed narrative (%s): %v", tone, err)
			os.Exit(1)
		}
		color.Green("✅ Seeded %s narrative %s", tone, report.Id)
	}
}
