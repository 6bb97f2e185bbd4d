package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"hongling-sanctuary-be/internal/entity"
	"hongling-sanctuary-be/internal/repository/specification"

	"github.com/google/uuid"
)

type BaziChartRepository struct {
	mu     sync.RWMutex
	charts map[uuid.UUID]*entity.BaziChart
}

func NewBaziChartRepository() *BaziChartRepository {
	return &BaziChartRepository{
		charts: make(map[uuid.UUID]*entity.BaziChart),
	}
}

func (r *BaziChartRepository) Create(ctx context.Context, chart *entity.BaziChart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if chart.Id == uuid.Nil {
		chart.Id = uuid.New()
	}
	if chart.CreatedAt.IsZero() {
		chart.CreatedAt = time.Now()
	}
	stored := *chart
	r.charts[chart.Id] = &stored
	return nil
}

func (r *BaziChartRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BaziChart, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r *BaziChartRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BaziChart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.BaziChart
	for _, c := range r.charts {
		if matchChart(c, specs) {
			copied := *c
			out = append(out, &copied)
		}
	}
	applyChartOrdering(out, specs)
	return applyChartPagination(out, specs), nil
}

func (r *BaziChartRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(all)), nil
}

func (r *BaziChartRepository) CountDistinctUsers(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make(map[string]struct{})
	for _, c := range r.charts {
		if c.UserId != nil {
			users[*c.UserId] = struct{}{}
		}
	}
	return int64(len(users)), nil
}

func matchChart(c *entity.BaziChart, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if c.Id != s.ID {
				return false
			}
		case specification.ByUserID:
			if c.UserId == nil || *c.UserId != s.UserID {
				return false
			}
		}
	}
	return true
}

func applyChartPagination(charts []*entity.BaziChart, specs []specification.Specification) []*entity.BaziChart {
	for _, spec := range specs {
		s, ok := spec.(specification.Pagination)
		if !ok {
			continue
		}
		if s.Offset >= len(charts) {
			return nil
		}
		charts = charts[s.Offset:]
		if s.Limit > 0 && s.Limit < len(charts) {
			charts = charts[:s.Limit]
		}
	}
	return charts
}

func applyChartOrdering(charts []*entity.BaziChart, specs []specification.Specification) {
	for _, spec := range specs {
		if s, ok := spec.(specification.OrderBy); ok && s.Field == "created_at" {
			sort.Slice(charts, func(i, j int) bool {
				if s.Desc {
					return charts[i].CreatedAt.After(charts[j].CreatedAt)
				}
				return charts[i].CreatedAt.Before(charts[j].CreatedAt)
			})
		}
	}
}
