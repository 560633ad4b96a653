package handlers

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/asalzp/ExpenseEase/config"
	"github.com/asalzp/ExpenseEase/models"
)

// categoryTotal is one row of a category breakdown.
type categoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// periodTotal is one datum of a spending trend.
type periodTotal struct {
	Period string  `json:"period"`
	Total  float64 `json:"total"`
}

// SummaryHandler reports the authenticated user's overall spend and a
// per-category breakdown sorted by total descending. Ties keep the order
// categories were first seen in.
func SummaryHandler(c *gin.Context) {
	userID := currentUserID(c)

	var totalSpent float64
	err := config.DB.Model(&models.Expense{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalSpent).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not compute summary"})
		return
	}

	var expenses []models.Expense
	if err := config.DB.Where("user_id = ?", userID).Find(&expenses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not compute summary"})
		return
	}

	breakdown := groupByCategory(expenses)
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Total > breakdown[j].Total
	})

	c.JSON(http.StatusOK, gin.H{
		"total_spent":        totalSpent,
		"category_breakdown": breakdown,
	})
}

// CategoryBreakdownHandler reports totals per category for the current
// month or ISO week, across every user's expenses. A period that has no
// expenses yet falls back to the immediately preceding one, so the first
// day of a month still shows last month's numbers instead of an empty
// dashboard.
func CategoryBreakdownHandler(c *gin.Context) {
	now := nowFunc()

	var start, previous time.Time
	switch c.Param("period") {
	case "month":
		start = monthStart(now)
		previous = start.AddDate(0, -1, 0)
	case "week":
		start = weekStart(now)
		previous = start.AddDate(0, 0, -7)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period. Use 'month' or 'week'."})
		return
	}

	expenses, err := allExpenses()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch expenses"})
		return
	}

	matched := expensesSince(expenses, start)
	if len(matched) == 0 {
		start = previous
		matched = expensesSince(expenses, start)
	}
	if len(matched) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"category_breakdown": make([]categoryTotal, 0),
			"message":            "No expenses found for this period",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category_breakdown": groupByCategory(matched),
		"start_date":         start.Format("2006-01-02"),
	})
}

// SpendingTrendsHandler reports time-bucketed totals across every user's
// expenses: period=month groups by the Monday of each ISO week, period=week
// by calendar day. Buckets are keyed by their start date, ascending.
func SpendingTrendsHandler(c *gin.Context) {
	var bucket func(time.Time) time.Time
	switch c.Param("period") {
	case "month":
		bucket = weekStart
	case "week":
		bucket = dayStart
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period. Use 'month' or 'week'."})
		return
	}

	expenses, err := allExpenses()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch expenses"})
		return
	}

	totals := make(map[time.Time]float64)
	for _, expense := range expenses {
		totals[bucket(expense.Date.Time)] += expense.Amount
	}

	starts := make([]time.Time, 0, len(totals))
	for start := range totals {
		starts = append(starts, start)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	trends := make([]periodTotal, 0, len(starts))
	for _, start := range starts {
		trends = append(trends, periodTotal{Period: start.Format("2006-01-02"), Total: totals[start]})
	}
	c.JSON(http.StatusOK, trends)
}

func allExpenses() ([]models.Expense, error) {
	var expenses []models.Expense
	err := config.DB.Find(&expenses).Error
	return expenses, err
}

func expensesSince(expenses []models.Expense, start time.Time) []models.Expense {
	var matched []models.Expense
	for _, expense := range expenses {
		if !expense.Date.Before(start) {
			matched = append(matched, expense)
		}
	}
	return matched
}

// groupByCategory sums amounts per category, preserving first-seen order.
func groupByCategory(expenses []models.Expense) []categoryTotal {
	index := make(map[string]int)
	breakdown := make([]categoryTotal, 0)
	for _, expense := range expenses {
		i, ok := index[expense.Category]
		if !ok {
			i = len(breakdown)
			index[expense.Category] = i
			breakdown = append(breakdown, categoryTotal{Category: expense.Category})
		}
		breakdown[i].Total += expense.Amount
	}
	return breakdown
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// weekStart returns the Monday of the ISO week containing t.
func weekStart(t time.Time) time.Time {
	day := dayStart(t)
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return day.AddDate(0, 0, 1-weekday)
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
