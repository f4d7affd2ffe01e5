package utils

import (
	"fmt"
	"strings"
	"time"
)

const monthLayout = "2006-01"

// ParseMonth aceita meses no formato YYYY-MM
func ParseMonth(month string) (time.Time, error) {
	parsed, err := time.Parse(monthLayout, strings.TrimSpace(month))
	if err != nil {
		return time.Time{}, fmt.Errorf("mês inválido %q, esperado YYYY-MM", month)
	}
	return parsed, nil
}

// NextMonths devolve os n meses seguintes a partir de last
func NextMonths(last string, n int) ([]string, error) {
	start, err := ParseMonth(last)
	if err != nil {
		return nil, err
	}

	months := make([]string, n)
	for i := range months {
		months[i] = start.AddDate(0, i+1, 0).Format(monthLayout)
	}
	return months, nil
}

// MonthsBack devolve n meses consecutivos terminando no mês de ref
func MonthsBack(ref time.Time, n int) []string {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(n - 1), 0)

	months := make([]string, n)
	for i := range months {
		months[i] = first.AddDate(0, i, 0).Format(monthLayout)
	}
	return months
}
