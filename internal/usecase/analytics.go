package usecase

import (
	"context"
	"time"

	"salon-booking-api/internal/pkg/clock"
	"salon-booking-api/internal/pkg/errs"
	"salon-booking-api/internal/usecase/readmodel"
)

const (
	defaultWindowDays  = 30
	popularServicesTop = 5
)

type AnalyticsRepository interface {
	DashboardStats(ctx context.Context, now time.Time) (*readmodel.DashboardStatsRM, error)
	Revenue(ctx context.Context, since time.Time) ([]*readmodel.RevenuePointRM, error)
	Trends(ctx context.Context, since time.Time) ([]*readmodel.TrendPointRM, error)
	PopularServices(ctx context.Context, limit int) ([]*readmodel.ServiceStatsRM, error)
	ArtistPerformance(ctx context.Context) ([]*readmodel.ArtistPerformanceRM, error)
}

type AnalyticsUseCase interface {
	GetDashboardStats(ctx context.Context) (*readmodel.DashboardStatsRM, error)
	GetRevenue(ctx context.Context, days int) ([]*readmodel.RevenuePointRM, error)
	GetTrends(ctx context.Context, days int) ([]*readmodel.TrendPointRM, error)
	GetPopularServices(ctx context.Context) ([]*readmodel.ServiceStatsRM, error)
	GetArtistPerformance(ctx context.Context) ([]*readmodel.ArtistPerformanceRM, error)
}

type analyticsUseCaseImpl struct {
	analyticsRepo AnalyticsRepository
	clock         clock.Clock
}

func NewAnalyticsUseCase(analyticsRepo AnalyticsRepository, clock clock.Clock) AnalyticsUseCase {
	return &analyticsUseCaseImpl{
		analyticsRepo: analyticsRepo,
		clock:         clock,
	}
}

func (u *analyticsUseCaseImpl) GetDashboardStats(ctx context.Context) (*readmodel.DashboardStatsRM, error) {
	stats, err := u.analyticsRepo.DashboardStats(ctx, u.clock.Now())
	if err != nil {
		return nil, errs.Wrap(err, "failed to build dashboard stats")
	}
	return stats, nil
}

func (u *analyticsUseCaseImpl) GetRevenue(ctx context.Context, days int) ([]*readmodel.RevenuePointRM, error) {
	since := u.windowStart(days)
	points, err := u.analyticsRepo.Revenue(ctx, since)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build revenue series")
	}

	byDate := make(map[string]*readmodel.RevenuePointRM, len(points))
	for _, p := range points {
		byDate[p.Date] = p
	}

	// Days without bookings still appear in the chart, at zero.
	filled := make([]*readmodel.RevenuePointRM, 0, len(points))
	for _, date := range u.windowDates(since) {
		if p, ok := byDate[date]; ok {
			filled = append(filled, p)
			continue
		}
		filled = append(filled, &readmodel.RevenuePointRM{Date: date})
	}
	return filled, nil
}

func (u *analyticsUseCaseImpl) GetTrends(ctx context.Context, days int) ([]*readmodel.TrendPointRM, error) {
	since := u.windowStart(days)
	points, err := u.analyticsRepo.Trends(ctx, since)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build trend series")
	}

	byDate := make(map[string]*readmodel.TrendPointRM, len(points))
	for _, p := range points {
		byDate[p.Date] = p
	}

	filled := make([]*readmodel.TrendPointRM, 0, len(points))
	for _, date := range u.windowDates(since) {
		if p, ok := byDate[date]; ok {
			filled = append(filled, p)
			continue
		}
		filled = append(filled, &readmodel.TrendPointRM{Date: date})
	}
	return filled, nil
}

func (u *analyticsUseCaseImpl) GetPopularServices(ctx context.Context) ([]*readmodel.ServiceStatsRM, error) {
	stats, err := u.analyticsRepo.PopularServices(ctx, popularServicesTop)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build popular services")
	}
	return stats, nil
}

func (u *analyticsUseCaseImpl) GetArtistPerformance(ctx context.Context) ([]*readmodel.ArtistPerformanceRM, error) {
	stats, err := u.analyticsRepo.ArtistPerformance(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build artist performance")
	}
	return stats, nil
}

func (u *analyticsUseCaseImpl) windowStart(days int) time.Time {
	if days <= 0 {
		days = defaultWindowDays
	}
	now := u.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	// A days-long window ends today, so the chart has exactly `days` points.
	return today.AddDate(0, 0, -(days - 1))
}

// windowDates lists every date from since through today, inclusive.
func (u *analyticsUseCaseImpl) windowDates(since time.Time) []string {
	now := u.clock.Now()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var dates []string
	for d := since; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format("2006-01-02"))
	}
	return dates
}
