package report

import (
	"sort"
	"time"

	"barberlink-backend/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// Clients whose earliest fetched booking is within this many days of
	// report generation time count as new.
	newClientWindowDays = 30

	topServices = 5
	topClients  = 5

	dailyKeyLayout = "Mon Jan 2"
)

// Aggregate builds the full report from raw rows. It is total over its
// input domain: any combination of rows, including none, yields a report
// with zero values rather than an error.
func Aggregate(key RangeKey, start, end, now time.Time, appts []domain.Appointment, txs []domain.Transaction) Report {
	rep := Empty(key, start, end, now)
	rep.Earnings = aggregateEarnings(txs)
	rep.Appointments = countStatuses(appts)
	rep.Clients = segmentClients(now, appts)
	rep.Services = rankServices(appts, txs)
	rep.Trends = buildTrends(appts, txs)
	return rep
}

func aggregateEarnings(txs []domain.Transaction) Earnings {
	var e Earnings
	for _, t := range txs {
		e.Total = e.Total.Add(t.TotalAmount.Or(t.Amount).Amount)
		switch t.Type {
		case domain.TransactionService:
			e.Services = e.Services.Add(t.Amount.Amount)
		case domain.TransactionProduct:
			e.Products = e.Products.Add(t.Amount.Amount)
		}
		e.Tips = e.Tips.Add(t.TipAmount.Amount)
		e.Commission = e.Commission.Add(t.Commission.Amount)
	}
	return e
}

func countStatuses(appts []domain.Appointment) AppointmentCounts {
	var c AppointmentCounts
	c.Total = len(appts)
	for _, a := range appts {
		switch a.Status {
		case domain.AppointmentCompleted:
			c.Completed++
		case domain.AppointmentCancelled:
			c.Cancelled++
		case domain.AppointmentNoShow:
			c.NoShow++
		}
	}
	return c
}

// segmentClients partitions the distinct customers seen in the window into
// new and returning. A customer is new when their earliest booking in the
// fetched window falls within the last newClientWindowDays before now.
// The earliest booking is evaluated over the fetched window only, so it may
// not be the customer's true first-ever booking; that approximation is part
// of the documented behavior.
func segmentClients(now time.Time, appts []domain.Appointment) ClientBreakdown {
	first := make(map[int64]time.Time)
	visits := make(map[int64]int)
	var order []int64
	for _, a := range appts {
		if a.CustomerID == nil {
			continue
		}
		id := *a.CustomerID
		if seen, ok := first[id]; !ok {
			first[id] = a.CreatedAt
			order = append(order, id)
		} else if a.CreatedAt.Before(seen) {
			first[id] = a.CreatedAt
		}
		visits[id]++
	}

	b := ClientBreakdown{Total: len(first), TopClients: []ClientStat{}}
	threshold := now.AddDate(0, 0, -newClientWindowDays)
	for _, ts := range first {
		if !ts.Before(threshold) {
			b.New++
		}
	}
	b.Returning = b.Total - b.New

	top := make([]ClientStat, 0, len(order))
	for _, id := range order {
		top = append(top, ClientStat{CustomerID: id, Visits: visits[id]})
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].Visits > top[j].Visits })
	if len(top) > topClients {
		top = top[:topClients]
	}
	b.TopClients = top
	return b
}

func rankServices(appts []domain.Appointment, txs []domain.Transaction) ServiceBreakdown {
	// First transaction per appointment link wins, matching the lookup
	// semantics of the original report.
	txByAppt := make(map[int64]domain.Transaction)
	for _, t := range txs {
		if t.AppointmentID == nil {
			continue
		}
		if _, ok := txByAppt[*t.AppointmentID]; !ok {
			txByAppt[*t.AppointmentID] = t
		}
	}

	type bucket struct {
		name    string
		count   int
		revenue decimal.Decimal
	}
	index := make(map[string]*bucket)
	var order []*bucket
	for _, a := range appts {
		name := a.ServiceName
		if name == "" {
			name = "Unknown"
		}
		b, ok := index[name]
		if !ok {
			b = &bucket{name: name}
			index[name] = b
			order = append(order, b)
		}
		b.count++
		if t, ok := txByAppt[a.ID]; ok {
			b.revenue = b.revenue.Add(t.Amount.Or(t.TotalAmount).Amount)
		}
	}

	sort.SliceStable(order, func(i, j int) bool { return order[i].count > order[j].count })
	if len(order) > topServices {
		order = order[:topServices]
	}

	out := ServiceBreakdown{Popular: make([]ServiceStat, 0, len(order)), Revenue: make([]ServiceStat, 0, len(order))}
	for _, b := range order {
		avg := decimal.Zero
		if b.count > 0 {
			avg = b.revenue.Div(decimal.NewFromInt(int64(b.count)))
		}
		stat := ServiceStat{Name: b.name, Count: b.count, Revenue: b.revenue, AvgPrice: avg}
		out.Popular = append(out.Popular, stat)
		out.Revenue = append(out.Revenue, stat)
	}
	return out
}

func buildTrends(appts []domain.Appointment, txs []domain.Transaction) Trends {
	type day struct {
		key   string
		date  time.Time
		count int
		rev   decimal.Decimal
	}
	days := make(map[string]*day)
	var order []*day
	for _, a := range appts {
		key := a.CreatedAt.Local().Format(dailyKeyLayout)
		d, ok := days[key]
		if !ok {
			d = &day{key: key, date: a.CreatedAt}
			days[key] = d
			order = append(order, d)
		}
		d.count++
	}
	// Revenue only lands in days that already have an appointment bucket;
	// a transaction on a day with no appointments is dropped.
	for _, t := range txs {
		key := t.CreatedAt.Local().Format(dailyKeyLayout)
		if d, ok := days[key]; ok {
			d.rev = d.rev.Add(t.TotalAmount.Amount)
		}
	}
	// Emitted chronologically; the original kept first-encounter order,
	// see DESIGN.md.
	sort.SliceStable(order, func(i, j int) bool { return order[i].date.Before(order[j].date) })

	tr := Trends{Daily: make([]DailyPoint, 0, len(order)), Hourly: []HourlyPoint{}}
	for _, d := range order {
		tr.Daily = append(tr.Daily, DailyPoint{Date: d.key, Appointments: d.count, Revenue: d.rev})
	}

	var hours [24]int
	for _, a := range appts {
		hours[a.CreatedAt.Local().Hour()]++
	}
	for h, n := range hours {
		if n > 0 {
			tr.Hourly = append(tr.Hourly, HourlyPoint{Hour: h, Bookings: n})
		}
	}
	return tr
}
