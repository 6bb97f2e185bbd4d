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

type NarrativeReportRepository struct {
	mu      sync.RWMutex
	reports map[uuid.UUID]*entity.NarrativeReport
}

func NewNarrativeReportRepository() *NarrativeReportRepository {
	return &NarrativeReportRepository{
		reports: make(map[uuid.UUID]*entity.NarrativeReport),
	}
}

func (r *NarrativeReportRepository) Create(ctx context.Context, report *entity.NarrativeReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if report.Id == uuid.Nil {
		report.Id = uuid.New()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now()
	}
	stored := *report
	r.reports[report.Id] = &stored
	return nil
}

func (r *NarrativeReportRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NarrativeReport, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r *NarrativeReportRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NarrativeReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.NarrativeReport
	for _, report := range r.reports {
		if matchNarrative(report, specs) {
			copied := *report
			out = append(out, &copied)
		}
	}
	applyNarrativeOrdering(out, specs)
	return out, nil
}

func (r *NarrativeReportRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(all)), nil
}

func matchNarrative(report *entity.NarrativeReport, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if report.Id != s.ID {
				return false
			}
		case specification.ByChartID:
			if report.ChartId != s.ChartID {
				return false
			}
		case specification.ByTone:
			if string(report.Tone) != s.Tone {
				return false
			}
		}
	}
	return true
}

func applyNarrativeOrdering(reports []*entity.NarrativeReport, specs []specification.Specification) {
	for _, spec := range specs {
		if s, ok := spec.(specification.OrderBy); ok && s.Field == "created_at" {
			sort.Slice(reports, func(i, j int) bool {
				if s.Desc {
					return reports[i].CreatedAt.After(reports[j].CreatedAt)
				}
				return reports[i].CreatedAt.Before(reports[j].CreatedAt)
			})
		}
	}
}
