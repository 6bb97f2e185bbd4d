package contract

import (
	"context"

	"hongling-sanctuary-be/internal/entity"
	"hongling-sanctuary-be/internal/repository/specification"
)

type UserSessionRepository interface {
	// Upsert inserts the session or, when the session_id already exists,
	// replaces its user data and expiry.
	Upsert(ctx context.Context, session *entity.UserSession) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserSession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// DeleteExpired removes sessions expired at the given instant and
	// returns how many rows were removed.
	DeleteExpired(ctx context.Context) (int64, error)
}
