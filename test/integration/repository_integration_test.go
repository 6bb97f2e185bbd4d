package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"hongling-sanctuary-be/internal/entity"
	"hongling-sanctuary-be/internal/repository"
	"hongling-sanctuary-be/internal/repository/specification"
	"hongling-sanctuary-be/internal/repository/unitofwork"
	"hongling-sanctuary-be/pkg/bazi"
	"hongling-sanctuary-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}
	require.NoError(t, repository.EnsureSchema(gormDB))
	return gormDB
}

func TestChartRoundTrip(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	userId := "integration-user"
	chart := entity.BaziChart{
		UserId:    &userId,
		BirthDate: bazi.BirthInput{Year: 1984, Month: 10, Day: 6, Hour: 20},
		Pillars: map[bazi.Position]bazi.Pillar{
			bazi.PositionYear:  {Gan: "庚", Zhi: "午", Pillar: "庚午"},
			bazi.PositionMonth: {Gan: "辛", Zhi: "巳", Pillar: "辛巳"},
			bazi.PositionDay:   {Gan: "甲", Zhi: "子", Pillar: "甲子"},
			bazi.PositionHour:  {Gan: "丙", Zhi: "午", Pillar: "丙午"},
		},
		FiveElements: map[string]int{"金": 2, "木": 1, "水": 1, "火": 3, "土": 1},
		YinYang:      map[string]int{"陰": 3, "陽": 5},
		TenGods:      []string{"正財", "偏官", "正印", "食神"},
	}
	require.NoError(t, uow.BaziChartRepository().Create(ctx, &chart))
	t.Logf("Created chart %s", chart.Id)

	found, err := uow.BaziChartRepository().FindOne(ctx, specification.ByID{ID: chart.Id})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "庚午", found.Pillars[bazi.PositionYear].Pillar)
	assert.Equal(t, 3, found.FiveElements["火"])
	assert.Equal(t, []string{"正財", "偏官", "正印", "食神"}, found.TenGods)

	// JSONB round trip keeps the birth input intact
	assert.Equal(t, 1984, found.BirthDate.Year)

	report := entity.NarrativeReport{
		ChartId: chart.Id,
		Tone:    bazi.ToneMilitary,
		Narrative: bazi.NarrativeReport{
			bazi.PositionYear: {Commander: "金馬將軍", NaYin: "路旁土", Story: "integration story"},
		},
	}
	require.NoError(t, uow.NarrativeReportRepository().Create(ctx, &report))

	narratives, err := uow.NarrativeReportRepository().FindAll(ctx, specification.ByChartID{ChartID: chart.Id})
	require.NoError(t, err)
	require.Len(t, narratives, 1)
	assert.Equal(t, "integration story", narratives[0].Narrative[bazi.PositionYear].Story)
}

func TestSessionUpsertAndCleanup(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)
	repo := uow.UserSessionRepository()

	sessionId := "integration-session"
	session := entity.UserSession{
		SessionId: sessionId,
		UserData:  map[string]interface{}{"tone": "military"},
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Upsert(ctx, &session))

	// same session_id replaces the payload instead of erroring
	replacement := entity.UserSession{
		SessionId: sessionId,
		UserData:  map[string]interface{}{"tone": "poetic"},
		ExpiresAt: time.Now().Add(2 * time.Hour),
	}
	require.NoError(t, repo.Upsert(ctx, &replacement))

	found, err := repo.FindOne(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.ActiveAt{At: time.Now()},
	)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "poetic", found.UserData["tone"])

	// expire it, then cleanup must remove it and report the count
	expired := entity.UserSession{
		SessionId: sessionId,
		UserData:  found.UserData,
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, repo.Upsert(ctx, &expired))

	deleted, err := repo.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, deleted, int64(1))

	gone, err := repo.FindOne(ctx, specification.BySessionID{SessionID: sessionId})
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestStatisticsQueries(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	totalCharts, err := uow.BaziChartRepository().Count(ctx)
	require.NoError(t, err)
	t.Logf("Chart count: %d", totalCharts)

	uniqueUsers, err := uow.BaziChartRepository().CountDistinctUsers(ctx)
	require.NoError(t, err)
	assert.LessOrEqual(t, uniqueUsers, totalCharts)

	active, err := uow.UserSessionRepository().Count(ctx, specification.ActiveAt{At: time.Now()})
	require.NoError(t, err)
	t.Logf("Active sessions: %d", active)
}
