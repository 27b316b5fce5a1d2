package readmodel

// DashboardStatsRM mirrors the admin dashboard card layout: totals first,
// then derived rates. Revenue counts Confirmed bookings only.
type DashboardStatsRM struct {
	TotalAppointments     int64   `json:"totalAppointments"`
	TotalUsers            int64   `json:"totalUsers"`
	TotalArtists          int64   `json:"totalArtists"`
	TotalRevenueCents     int64   `json:"totalRevenueCents"`
	PendingAppointments   int64   `json:"pendingAppointments"`
	ConfirmedAppointments int64   `json:"confirmedAppointments"`
	CancelledAppointments int64   `json:"cancelledAppointments"`
	TodayAppointments     int64   `json:"todayAppointments"`
	MonthlyRevenueCents   int64   `json:"monthlyRevenueCents"`
	RevenueGrowth         float64 `json:"revenueGrowth"`
	AverageBookingCents   int64   `json:"averageBookingValueCents"`
	CancellationRate      float64 `json:"cancellationRate"`
}

type RevenuePointRM struct {
	Date        string `json:"date"`
	AmountCents int64  `json:"amountCents"`
}

type TrendPointRM struct {
	Date         string `json:"date"`
	Appointments int64  `json:"appointments"`
	Confirmed    int64  `json:"confirmed"`
	Cancelled    int64  `json:"cancelled"`
	Pending      int64  `json:"pending"`
}

type ServiceStatsRM struct {
	Name         string `json:"name"`
	Bookings     int64  `json:"bookings"`
	RevenueCents int64  `json:"revenueCents"`
}

type ArtistPerformanceRM struct {
	ArtistID     string `json:"artistId"`
	ArtistName   string `json:"artistName"`
	Bookings     int64  `json:"bookings"`
	RevenueCents int64  `json:"revenueCents"`
}
