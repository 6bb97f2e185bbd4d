package dto

import "hongling-sanctuary-be/internal/entity"

type StatisticsResponse struct {
	Statistics entity.Statistics `json:"statistics"`
}
