package dto

import (
	"time"

	"github.com/bdpay/dashboard-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// monthLabels are the chart x-axis labels, index 0 = January.
var monthLabels = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// ChartParams defines the money-flow chart query parameters.
type ChartParams struct {
	Year int `form:"year"`
}

// StatisticsParams defines the statistics panel query parameters.
type StatisticsParams struct {
	Period string `form:"period,default=current"`
}

// ChartResponse is the money-flow chart payload: always exactly 12 buckets
// per series, zero-filled for months with no settled activity.
type ChartResponse struct {
	Income  []decimal.Decimal `json:"income"`
	Expense []decimal.Decimal `json:"expense"`
	Months  []string          `json:"months"`
}

// ToChartResponse converts a materialized domain.MonthlyFlow.
func ToChartResponse(flow *domain.MonthlyFlow) ChartResponse {
	return ChartResponse{
		Income:  flow.Income[:],
		Expense: flow.Expense[:],
		Months:  monthLabels[:],
	}
}

// CategorySpendResponse is one row of the statistics panel.
type CategorySpendResponse struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// StatisticsResponse is the statistics panel payload.
type StatisticsResponse struct {
	Categories []CategorySpendResponse `json:"categories"`
	Total      decimal.Decimal         `json:"total"`
	Period     string                  `json:"period"`
	StartDate  time.Time               `json:"startDate"`
	EndDate    time.Time               `json:"endDate"`
}

// ToStatisticsResponse converts a resolved domain.SpendingStatistics.
func ToStatisticsResponse(stats *domain.SpendingStatistics) StatisticsResponse {
	categories := make([]CategorySpendResponse, len(stats.Categories))
	for i, c := range stats.Categories {
		categories[i] = CategorySpendResponse{Category: c.Category, Amount: c.Total}
	}
	return StatisticsResponse{
		Categories: categories,
		Total:      stats.Total,
		Period:     stats.Period,
		StartDate:  stats.StartDate,
		EndDate:    stats.EndDate,
	}
}
