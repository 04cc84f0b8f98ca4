package report

import (
	"sort"
	"time"

	"github.com/pagovia/settlements/internal/domain"
)

// settlementDate returns the calendar day a transaction settles on. The
// processor closes its business day at 23:00, so anything from 23:00 to
// 23:59 belongs to the next calendar date. Both the daily and the weekly
// views use this function, keeping the two consistent.
func settlementDate(ts time.Time) time.Time {
	if ts.Hour() >= 23 {
		ts = ts.AddDate(0, 0, 1)
	}
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())
}

// weekStart returns the Monday beginning the week that contains d.
func weekStart(d time.Time) time.Time {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// AggregateByDay buckets transactions by settlement date and fills every
// calendar day between the earliest and latest observed date, so the series
// has no gaps: a day without sales shows up as an explicit zero entry.
// Transactions whose date failed to parse carry no settlement date and are
// left out of the series.
func AggregateByDay(txns []domain.Transaction) []domain.DaySummary {
	byDate := make(map[time.Time]domain.DaySummary)
	var first, last time.Time

	for _, t := range txns {
		if !t.HasDate() {
			continue
		}
		d := settlementDate(t.Timestamp)
		ds := byDate[d]
		ds.Date = d
		ds.Sales = ds.Sales.Add(t.Total)
		ds.Payout = ds.Payout.Add(t.ClientPayout)
		byDate[d] = ds

		if first.IsZero() || d.Before(first) {
			first = d
		}
		if last.IsZero() || d.After(last) {
			last = d
		}
	}

	if first.IsZero() {
		return nil
	}

	var days []domain.DaySummary
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		if ds, ok := byDate[d]; ok {
			days = append(days, ds)
		} else {
			days = append(days, domain.DaySummary{Date: d})
		}
	}

	return days
}

// AggregateByWeek buckets transactions into Monday-anchored weeks by their
// settlement date and computes a full summary over each subset. Buckets come
// back sorted chronologically.
func AggregateByWeek(txns []domain.Transaction, dist domain.RevenueDistribution, promoters []domain.PromoterShare) []domain.WeekBucket {
	byWeek := make(map[time.Time][]domain.Transaction)

	for _, t := range txns {
		if !t.HasDate() {
			continue
		}
		w := weekStart(settlementDate(t.Timestamp))
		byWeek[w] = append(byWeek[w], t)
	}

	weeks := make([]domain.WeekBucket, 0, len(byWeek))
	for w, subset := range byWeek {
		weeks = append(weeks, domain.WeekBucket{
			WeekStart:    w,
			Transactions: subset,
			Summary:      Summarize(subset, dist, promoters),
		})
	}

	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].WeekStart.Before(weeks[j].WeekStart)
	})

	return weeks
}
