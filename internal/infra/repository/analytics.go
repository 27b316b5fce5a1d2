package repository

import (
	"context"
	"time"

	"salon-booking-api/internal/infra"
	"salon-booking-api/internal/infra/db"
	"salon-booking-api/internal/usecase/readmodel"
)

// AnalyticsRepository runs the admin dashboard aggregations directly in SQL.
// Revenue figures count Confirmed bookings only.
type AnalyticsRepository struct {
	db db.DBTX
}

func NewAnalyticsRepository(db db.DBTX) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) DashboardStats(ctx context.Context, now time.Time) (*readmodel.DashboardStatsRM, error) {
	var rm readmodel.DashboardStatsRM

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevMonthStart := monthStart.AddDate(0, -1, 0)

	err := r.db.QueryRow(ctx, `
		SELECT
			count(*),
			count(*) FILTER (WHERE status = 'Pending'),
			count(*) FILTER (WHERE status = 'Confirmed'),
			count(*) FILTER (WHERE status = 'Cancelled'),
			count(*) FILTER (WHERE date = $1),
			COALESCE(sum(service_price_cents) FILTER (WHERE status = 'Confirmed'), 0)
		FROM bookings`,
		today,
	).Scan(
		&rm.TotalAppointments, &rm.PendingAppointments, &rm.ConfirmedAppointments,
		&rm.CancelledAppointments, &rm.TodayAppointments, &rm.TotalRevenueCents,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate booking stats", err)
	}

	var prevMonthRevenue int64
	err = r.db.QueryRow(ctx, `
		SELECT
			COALESCE(sum(service_price_cents) FILTER (WHERE created_at >= $1), 0),
			COALESCE(sum(service_price_cents) FILTER (WHERE created_at >= $2 AND created_at < $1), 0)
		FROM bookings WHERE status = 'Confirmed'`,
		monthStart, prevMonthStart,
	).Scan(&rm.MonthlyRevenueCents, &prevMonthRevenue)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate monthly revenue", err)
	}

	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&rm.TotalUsers); err != nil {
		return nil, infra.WrapRepoErr("failed to count users", err)
	}
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM artists`).Scan(&rm.TotalArtists); err != nil {
		return nil, infra.WrapRepoErr("failed to count artists", err)
	}

	if prevMonthRevenue > 0 {
		rm.RevenueGrowth = float64(rm.MonthlyRevenueCents-prevMonthRevenue) / float64(prevMonthRevenue) * 100
	}
	if rm.ConfirmedAppointments > 0 {
		rm.AverageBookingCents = rm.TotalRevenueCents / rm.ConfirmedAppointments
	}
	if rm.TotalAppointments > 0 {
		rm.CancellationRate = float64(rm.CancelledAppointments) / float64(rm.TotalAppointments) * 100
	}

	return &rm, nil
}

// Revenue returns per-day Confirmed revenue for the trailing window.
func (r *AnalyticsRepository) Revenue(ctx context.Context, since time.Time) ([]*readmodel.RevenuePointRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT to_char(date, 'YYYY-MM-DD'), COALESCE(sum(service_price_cents), 0)
		FROM bookings
		WHERE status = 'Confirmed' AND date >= $1
		GROUP BY date ORDER BY date`,
		since,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate revenue", err)
	}
	defer rows.Close()

	var result []*readmodel.RevenuePointRM
	for rows.Next() {
		var rm readmodel.RevenuePointRM
		if err := rows.Scan(&rm.Date, &rm.AmountCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan revenue row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate revenue rows", err)
	}
	return result, nil
}

func (r *AnalyticsRepository) Trends(ctx context.Context, since time.Time) ([]*readmodel.TrendPointRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			to_char(date, 'YYYY-MM-DD'),
			count(*),
			count(*) FILTER (WHERE status = 'Confirmed'),
			count(*) FILTER (WHERE status = 'Cancelled'),
			count(*) FILTER (WHERE status = 'Pending')
		FROM bookings
		WHERE date >= $1
		GROUP BY date ORDER BY date`,
		since,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate booking trends", err)
	}
	defer rows.Close()

	var result []*readmodel.TrendPointRM
	for rows.Next() {
		var rm readmodel.TrendPointRM
		if err := rows.Scan(&rm.Date, &rm.Appointments, &rm.Confirmed, &rm.Cancelled, &rm.Pending); err != nil {
			return nil, infra.WrapRepoErr("failed to scan trend row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate trend rows", err)
	}
	return result, nil
}

func (r *AnalyticsRepository) PopularServices(ctx context.Context, limit int) ([]*readmodel.ServiceStatsRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			service_name,
			count(*),
			COALESCE(sum(service_price_cents) FILTER (WHERE status = 'Confirmed'), 0)
		FROM bookings
		WHERE status <> 'Cancelled'
		GROUP BY service_name
		ORDER BY count(*) DESC
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate popular services", err)
	}
	defer rows.Close()

	var result []*readmodel.ServiceStatsRM
	for rows.Next() {
		var rm readmodel.ServiceStatsRM
		if err := rows.Scan(&rm.Name, &rm.Bookings, &rm.RevenueCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service stats row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate service stats rows", err)
	}
	return result, nil
}

func (r *AnalyticsRepository) ArtistPerformance(ctx context.Context) ([]*readmodel.ArtistPerformanceRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			artist_id::text,
			artist_name,
			count(*),
			COALESCE(sum(service_price_cents) FILTER (WHERE status = 'Confirmed'), 0)
		FROM bookings
		WHERE status <> 'Cancelled'
		GROUP BY artist_id, artist_name
		ORDER BY count(*) DESC`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate artist performance", err)
	}
	defer rows.Close()

	var result []*readmodel.ArtistPerformanceRM
	for rows.Next() {
		var rm readmodel.ArtistPerformanceRM
		if err := rows.Scan(&rm.ArtistID, &rm.ArtistName, &rm.Bookings, &rm.RevenueCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan artist performance row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate artist performance rows", err)
	}
	return result, nil
}
