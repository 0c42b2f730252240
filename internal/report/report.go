package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// Report is the rendered performance report for one barber over one window.
// It is recomputed from scratch on every request and never persisted.
type Report struct {
	Range       RangeKey
	Start       time.Time
	End         time.Time
	GeneratedAt time.Time
	TimedOut    bool

	Earnings     Earnings
	Appointments AppointmentCounts
	Clients      ClientBreakdown
	Services     ServiceBreakdown
	Trends       Trends
}

type Earnings struct {
	Total      decimal.Decimal
	Services   decimal.Decimal
	Products   decimal.Decimal
	Tips       decimal.Decimal
	Commission decimal.Decimal
}

type AppointmentCounts struct {
	Total     int
	Completed int
	Cancelled int
	NoShow    int
}

type ClientBreakdown struct {
	Total      int
	New        int
	Returning  int
	TopClients []ClientStat
}

type ClientStat struct {
	CustomerID int64
	Visits     int
}

// ServiceStat carries one service bucket; the handler renders it in both
// the popularity and the revenue list shapes.
type ServiceStat struct {
	Name     string
	Count    int
	Revenue  decimal.Decimal
	AvgPrice decimal.Decimal
}

type ServiceBreakdown struct {
	Popular []ServiceStat
	Revenue []ServiceStat
}

type Trends struct {
	Daily  []DailyPoint
	Hourly []HourlyPoint
}

type DailyPoint struct {
	Date         string
	Appointments int
	Revenue      decimal.Decimal
}

type HourlyPoint struct {
	Hour     int
	Bookings int
}

// Empty returns an all-zero report for the window, used both as the
// zero-data rendering and as the degraded result after a timeout.
func Empty(key RangeKey, start, end, generatedAt time.Time) Report {
	return Report{
		Range:       key,
		Start:       start,
		End:         end,
		GeneratedAt: generatedAt,
		Clients:     ClientBreakdown{TopClients: []ClientStat{}},
		Services:    ServiceBreakdown{Popular: []ServiceStat{}, Revenue: []ServiceStat{}},
		Trends:      Trends{Daily: []DailyPoint{}, Hourly: []HourlyPoint{}},
	}
}
