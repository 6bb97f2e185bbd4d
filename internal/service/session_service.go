package service

import (
	"context"
	"time"

	"hongling-sanctuary-be/internal/dto"
	"hongling-sanctuary-be/internal/entity"
	"hongling-sanctuary-be/internal/pkg/logger"
	"hongling-sanctuary-be/internal/repository/specification"
	"hongling-sanctuary-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ISessionService interface {
	Upsert(ctx context.Context, sessionId string, req *dto.UpsertSessionRequest) (*dto.SessionResponse, error)
	Get(ctx context.Context, sessionId string) (*dto.SessionResponse, error)
	Cleanup(ctx context.Context) (*dto.CleanupSessionsResponse, error)
}

type sessionService struct {
	uowFactory unitofwork.RepositoryFactory
	defaultTTL time.Duration
	log        logger.ILogger
}

func NewSessionService(uowFactory unitofwork.RepositoryFactory, defaultTTL time.Duration, log logger.ILogger) ISessionService {
	if defaultTTL <= 0 {
		defaultTTL = 24 * time.Hour
	}
	return &sessionService{
		uowFactory: uowFactory,
		defaultTTL: defaultTTL,
		log:        log,
	}
}

func (s *sessionService) Upsert(ctx context.Context, sessionId string, req *dto.UpsertSessionRequest) (*dto.SessionResponse, error) {
	ttl := s.defaultTTL
	if req.TTLSeconds > 0 {
		ttl = time.Duration(req.TTLSeconds) * time.Second
	}

	session := entity.UserSession{
		Id:        uuid.New(),
		SessionId: sessionId,
		UserData:  req.UserData,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(ttl),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.UserSessionRepository().Upsert(ctx, &session); err != nil {
		return nil, err
	}

	return &dto.SessionResponse{
		SessionId: session.SessionId,
		UserData:  session.UserData,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// Get returns the session only while it is still active; an expired
// session is indistinguishable from a missing one.
func (s *sessionService) Get(ctx context.Context, sessionId string) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.UserSessionRepository().FindOne(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.ActiveAt{At: time.Now()},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil // Not found or expired
	}

	return &dto.SessionResponse{
		SessionId: session.SessionId,
		UserData:  session.UserData,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *sessionService) Cleanup(ctx context.Context) (*dto.CleanupSessionsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	deleted, err := uow.UserSessionRepository().DeleteExpired(ctx)
	if err != nil {
		return nil, err
	}

	if s.log != nil {
		s.log.Info("session", "expired sessions cleaned up", map[string]interface{}{
			"deleted": deleted,
		})
	}
	return &dto.CleanupSessionsResponse{DeletedCount: deleted}, nil
}
