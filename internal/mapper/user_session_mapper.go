package mapper

import (
	"hongling-sanctuary-be/internal/entity"
	"hongling-sanctuary-be/internal/model"

	"github.com/goccy/go-json"
	"gorm.io/datatypes"
)

type UserSessionMapper struct{}

func NewUserSessionMapper() *UserSessionMapper {
	return &UserSessionMapper{}
}

func (m *UserSessionMapper) ToEntity(s *model.UserSession) (*entity.UserSession, error) {
	if s == nil {
		return nil, nil
	}

	var userData map[string]interface{}
	if len(s.UserData) > 0 {
		if err := json.Unmarshal(s.UserData, &userData); err != nil {
			return nil, err
		}
	}

	return &entity.UserSession{
		Id:        s.Id,
		SessionId: s.SessionId,
		UserData:  userData,
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
	}, nil
}

func (m *UserSessionMapper) ToModel(s *entity.UserSession) (*model.UserSession, error) {
	if s == nil {
		return nil, nil
	}

	userData, err := json.Marshal(s.UserData)
	if err != nil {
		return nil, err
	}

	return &model.UserSession{
		Id:        s.Id,
		SessionId: s.SessionId,
		UserData:  datatypes.JSON(userData),
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
	}, nil
}
