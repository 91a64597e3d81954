package usecase

import (
	"context"

	sessionin "tempo/internal/modules/session/port/in"
	"tempo/internal/modules/stats/domain"
	"tempo/internal/modules/stats/dto"
	statsin "tempo/internal/modules/stats/port/in"
	"tempo/internal/platform/clock"
)

type Interactor struct {
	sessions sessionin.Usecase
	clock    clock.Clock
}

func NewInteractor(sessions sessionin.Usecase, clk clock.Clock) statsin.Usecase {
	return &Interactor{sessions: sessions, clock: clk}
}

func (i *Interactor) Overview(ctx context.Context) (dto.Overview, error) {
	records, err := i.sessions.List(ctx)
	if err != nil {
		return dto.Overview{}, err
	}

	entries := make([]domain.Entry, 0, len(records))
	for _, r := range records {
		entries = append(entries, domain.Entry{Timestamp: r.Timestamp, DurationSec: r.Duration})
	}

	now := i.clock.Now()
	out := dto.Overview{
		Week:        period(domain.ForPeriod(entries, domain.PeriodWeek, now)),
		Month:       period(domain.ForPeriod(entries, domain.PeriodMonth, now)),
		Year:        period(domain.ForPeriod(entries, domain.PeriodYear, now)),
		Overall:     period(domain.Overall(entries)),
		WeekDaily:   points(domain.WeekDaily(entries, now)),
		MonthDaily:  points(domain.MonthDaily(entries, now)),
		YearMonthly: points(domain.YearMonthly(entries, now)),
	}
	if latest, ok := domain.LatestOf(entries, now); ok {
		out.Latest = &dto.LatestOutput{
			DaysAgo:     latest.DaysAgo,
			DisplayDate: latest.DisplayDate,
			TimeOfDay:   latest.TimeOfDay,
			DurationSec: latest.DurationSec,
			Phrase:      latest.Phrase,
		}
	}
	return out, nil
}

func period(s domain.PeriodStats) dto.PeriodOutput {
	return dto.PeriodOutput{Count: s.Count, TotalSeconds: s.TotalSeconds, AvgMinutes: s.AvgMinutes}
}

func points(series []domain.SeriesPoint) []dto.PointOutput {
	out := make([]dto.PointOutput, len(series))
	for i, p := range series {
		out[i] = dto.PointOutput{Label: p.Label, Minutes: p.Minutes}
	}
	return out
}
