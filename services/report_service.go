package services

import (
	"sort"
	"strings"
	"time"

	"github.com/Renison-Gohel/food-orderly/entity"
	"github.com/Renison-Gohel/food-orderly/repository"
)

type DailyStat struct {
	Date         string `json:"date"` // YYYY-MM-DD
	TotalRevenue int64  `json:"totalRevenue"`
	OrderCount   int    `json:"orderCount"`
}

type MonthlyStat struct {
	Month        string `json:"month"` // YYYY-MM
	TotalRevenue int64  `json:"totalRevenue"`
	OrderCount   int    `json:"orderCount"`
}

// AggregateByDay buckets paid-order revenue into the trailing windowDays
// calendar days ending at now, inclusive. Days with no paid orders still
// appear with zero revenue. Ascending by date.
func AggregateByDay(orders []entity.Order, windowDays int, now time.Time) []DailyStat {
	if windowDays < 1 {
		return nil
	}
	byDate := make(map[string]*DailyStat, windowDays)
	stats := make([]DailyStat, 0, windowDays)
	for i := windowDays - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		stats = append(stats, DailyStat{Date: date})
	}
	for i := range stats {
		byDate[stats[i].Date] = &stats[i]
	}
	for _, o := range orders {
		if o.Status != entity.StatusPaid {
			continue
		}
		day, ok := byDate[o.CreatedAt.Format("2006-01-02")]
		if !ok {
			continue
		}
		day.TotalRevenue += o.TotalAmount
		day.OrderCount++
	}
	return stats
}

// AggregateByMonth groups paid orders by the calendar month of creation,
// ascending by month.
func AggregateByMonth(orders []entity.Order) []MonthlyStat {
	byMonth := make(map[string]*MonthlyStat)
	for _, o := range orders {
		if o.Status != entity.StatusPaid {
			continue
		}
		month := o.CreatedAt.Format("2006-01")
		m, ok := byMonth[month]
		if !ok {
			m = &MonthlyStat{Month: month}
			byMonth[month] = m
		}
		m.TotalRevenue += o.TotalAmount
		m.OrderCount++
	}
	stats := make([]MonthlyStat, 0, len(byMonth))
	for _, m := range byMonth {
		stats = append(stats, *m)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Month < stats[j].Month })
	return stats
}

func FilterByOutlet(orders []entity.Order, outletID uint) []entity.Order {
	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if o.OutletID != nil && *o.OutletID == outletID {
			out = append(out, o)
		}
	}
	return out
}

// FilterByDateAndSearch keeps orders created on the same calendar day as
// date whose id, customer name, phone or table number matches the query
// (case-insensitive substring). An empty query matches everything that day.
func FilterByDateAndSearch(orders []entity.Order, date time.Time, query string) []entity.Order {
	q := strings.ToLower(strings.TrimSpace(query))
	y, m, d := date.Date()
	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		oy, om, od := o.CreatedAt.Date()
		if oy != y || om != m || od != d {
			continue
		}
		if q != "" && !orderMatches(&o, q) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func orderMatches(o *entity.Order, q string) bool {
	return strings.Contains(strings.ToLower(o.ID), q) ||
		strings.Contains(strings.ToLower(o.Customer.Name), q) ||
		strings.Contains(strings.ToLower(o.Customer.Phone), q) ||
		strings.Contains(strings.ToLower(o.Customer.TableNumber), q)
}

// ----- Repo-backed reporting -----

type ReportService struct {
	Repo *repository.OrderRepository
}

func NewReportService(repo *repository.OrderRepository) *ReportService {
	return &ReportService{Repo: repo}
}

// Daily reports revenue for the trailing windowDays days, optionally scoped
// to one outlet.
func (s *ReportService) Daily(windowDays int, outletID *uint) ([]DailyStat, error) {
	if windowDays < 1 {
		windowDays = 7
	}
	orders, err := s.Repo.ListOrders(outletID)
	if err != nil {
		return nil, err
	}
	return AggregateByDay(orders, windowDays, time.Now()), nil
}

func (s *ReportService) Monthly(outletID *uint) ([]MonthlyStat, error) {
	orders, err := s.Repo.ListOrders(outletID)
	if err != nil {
		return nil, err
	}
	return AggregateByMonth(orders), nil
}

type OutletStats struct {
	Days         []DailyStat `json:"days"`
	TotalOrders  int         `json:"totalOrders"`
	TotalRevenue int64       `json:"totalRevenue"`
}

// OutletStatistics is the admin dashboard view: the outlet's paid orders over
// the last 30 days, bucketed per day, plus overall totals.
func (s *ReportService) OutletStatistics(outletID uint) (*OutletStats, error) {
	now := time.Now()
	since := now.AddDate(0, 0, -30)
	orders, err := s.Repo.ListPaidSince(outletID, since)
	if err != nil {
		return nil, err
	}
	stats := &OutletStats{Days: AggregateByDay(orders, 30, now)}
	for _, d := range stats.Days {
		stats.TotalOrders += d.OrderCount
		stats.TotalRevenue += d.TotalRevenue
	}
	return stats, nil
}
