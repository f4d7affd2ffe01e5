package domain

import "time"

const MonthLayout = "2006-01"

type SalesRecord struct {
	ID               int64     `json:"id,omitempty"`
	Model            string    `json:"model"`
	Month            string    `json:"month"`
	UnitsSold        int       `json:"units_sold"`
	Revenue          float64   `json:"revenue"`
	Promotions       bool      `json:"promotions"`
	CompetitorLaunch bool      `json:"competitor_launch"`
	CreatedAt        time.Time `json:"created_at,omitempty"`
}

// SalesHistoryRow é um registro de vendas junto da especificação do produto
type SalesHistoryRow struct {
	Sales   SalesRecord
	Product Product
}

// HistoryVersion identifica o estado do histórico de vendas
type HistoryVersion struct {
	Rows         int
	LastInserted time.Time
}

type SalesSummary struct {
	TotalSales   float64 `json:"total_sales"`
	AvgSales     float64 `json:"avg_sales"`
	TotalRevenue float64 `json:"total_revenue"`
}

// MonthlySales é o total vendido no mês, de todos os modelos
type MonthlySales struct {
	Month     string  `json:"month"`
	UnitsSold int     `json:"units_sold"`
	Revenue   float64 `json:"revenue"`
}

type ImportResult struct {
	Imported int              `json:"imported"`
	Skipped  int              `json:"skipped"`
	Errors   []ImportRowError `json:"errors,omitempty"`
}

type ImportRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}
