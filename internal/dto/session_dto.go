package dto

import "time"

type UpsertSessionRequest struct {
	UserData   map[string]interface{} `json:"userData" validate:"required"`
	TTLSeconds int                    `json:"ttlSeconds" validate:"gte=0"`
}

type SessionResponse struct {
	SessionId string                 `json:"sessionId"`
	UserData  map[string]interface{} `json:"userData"`
	ExpiresAt time.Time              `json:"expiresAt"`
}

type CleanupSessionsResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}
