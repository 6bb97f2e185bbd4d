package service

import (
	"context"
	"testing"
	"time"

	"hongling-sanctuary-be/internal/dto"
	"hongling-sanctuary-be/internal/entity"
	"hongling-sanctuary-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionUpsertAndGet(t *testing.T) {
	factory := memory.NewFactory()
	svc := NewSessionService(factory, time.Hour, nil)
	ctx := context.Background()

	res, err := svc.Upsert(ctx, "sess-1", &dto.UpsertSessionRequest{
		UserData: map[string]interface{}{"name": "測試者"},
	})
	require.NoError(t, err)
	assert.Equal(t, "sess-1", res.SessionId)
	assert.True(t, res.ExpiresAt.After(time.Now()))

	got, err := svc.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "測試者", got.UserData["name"])
}

func TestSessionUpsertReplacesExistingData(t *testing.T) {
	factory := memory.NewFactory()
	svc := NewSessionService(factory, time.Hour, nil)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, "sess-1", &dto.UpsertSessionRequest{
		UserData: map[string]interface{}{"tone": "military"},
	})
	require.NoError(t, err)

	_, err = svc.Upsert(ctx, "sess-1", &dto.UpsertSessionRequest{
		UserData: map[string]interface{}{"tone": "poetic"},
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "poetic", got.UserData["tone"])
}

func TestExpiredSessionLooksMissing(t *testing.T) {
	factory := memory.NewFactory()
	svc := NewSessionService(factory, time.Hour, nil)
	ctx := context.Background()

	// write an already-expired session directly
	uow := factory.NewUnitOfWork(ctx)
	err := uow.UserSessionRepository().Upsert(ctx, &entity.UserSession{
		SessionId: "expired",
		UserData:  map[string]interface{}{"name": "ghost"},
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, "expired")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCleanupCountsDeletedSessions(t *testing.T) {
	factory := memory.NewFactory()
	svc := NewSessionService(factory, time.Hour, nil)
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)

	for _, s := range []entity.UserSession{
		{SessionId: "old-1", ExpiresAt: time.Now().Add(-time.Hour)},
		{SessionId: "old-2", ExpiresAt: time.Now().Add(-time.Minute)},
		{SessionId: "live", ExpiresAt: time.Now().Add(time.Hour)},
	} {
		session := s
		require.NoError(t, uow.UserSessionRepository().Upsert(ctx, &session))
	}

	res, err := svc.Cleanup(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.DeletedCount)

	live, err := svc.Get(ctx, "live")
	require.NoError(t, err)
	assert.NotNil(t, live)
}
