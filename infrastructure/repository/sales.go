package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Hemanth1845/sales-forecasting/infrastructure/database/postgres"
	"github.com/Hemanth1845/sales-forecasting/internal/domain"
	"github.com/Masterminds/squirrel"
)

const salesTable = "sales_data sd"

var salesColumns = []string{
	"sd.id", "sd.model", "sd.month", "sd.units_sold", "sd.revenue", "sd.promotions", "sd.competitor_launch", "sd.created_at",
}

type SalesRepository interface {
	Create(ctx context.Context, record *domain.SalesRecord) error
	CreateMany(ctx context.Context, records []*domain.SalesRecord) (int, error)
	ListByModel(ctx context.Context, model string) ([]*domain.SalesRecord, error)
	ListHistory(ctx context.Context) ([]*domain.SalesHistoryRow, error)
	MonthlyTotals(ctx context.Context) ([]domain.MonthlySales, error)
	Summary(ctx context.Context) (*domain.SalesSummary, error)
	HistoryVersion(ctx context.Context) (*domain.HistoryVersion, error)
}

type salesRepository struct {
	conn *postgres.Connection
}

func NewSalesRepository(conn *postgres.Connection) SalesRepository {
	return &salesRepository{
		conn: conn,
	}
}

func (r *salesRepository) Create(ctx context.Context, record *domain.SalesRecord) error {
	return insertSales(ctx, r.conn, record)
}

// CreateMany insere todos os registros ou nenhum
func (r *salesRepository) CreateMany(ctx context.Context, records []*domain.SalesRecord) (int, error) {
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, record := range records {
			if err := insertSales(ctx, tx, record); err != nil {
				return fmt.Errorf("modelo %s, mês %s: %w", record.Model, record.Month, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(records), nil
}

func (r *salesRepository) ListByModel(ctx context.Context, model string) ([]*domain.SalesRecord, error) {
	query, args, err := squirrel.
		Select(salesColumns...).
		From(salesTable).
		Where(squirrel.Eq{"sd.model": model}).
		OrderBy("sd.month ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendas do modelo %s: %w", model, err)
	}
	defer rows.Close()

	var records []*domain.SalesRecord
	for rows.Next() {
		var s domain.SalesRecord
		if err := rows.Scan(salesDest(&s)...); err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		records = append(records, &s)
	}

	return records, rows.Err()
}

// ListHistory devolve todas as vendas junto da especificação do produto, em ordem de mês
func (r *salesRepository) ListHistory(ctx context.Context) ([]*domain.SalesHistoryRow, error) {
	columns := append(append([]string{}, salesColumns...),
		"s.id", "s.brand", "s.model", "s.price", "s.ram", "s.storage", "s.battery", "s.camera_mp", "s.os", "s.launch_date", "s.created_at",
	)

	query, args, err := squirrel.
		Select(columns...).
		From(salesTable).
		Join("smartphones s ON s.model = sd.model").
		OrderBy("sd.month ASC", "sd.model ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar histórico de vendas: %w", err)
	}
	defer rows.Close()

	var history []*domain.SalesHistoryRow
	for rows.Next() {
		var h domain.SalesHistoryRow
		dest := append(salesDest(&h.Sales),
			&h.Product.ID,
			&h.Product.Brand,
			&h.Product.Model,
			&h.Product.Price,
			&h.Product.RAM,
			&h.Product.Storage,
			&h.Product.Battery,
			&h.Product.CameraMP,
			&h.Product.OS,
			&h.Product.LaunchDate,
			&h.Product.CreatedAt,
		)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("erro ao escanear histórico: %w", err)
		}
		history = append(history, &h)
	}

	return history, rows.Err()
}

func (r *salesRepository) MonthlyTotals(ctx context.Context) ([]domain.MonthlySales, error) {
	query, args, err := squirrel.
		Select("sd.month", "COALESCE(SUM(sd.units_sold), 0)", "COALESCE(SUM(sd.revenue), 0)").
		From(salesTable).
		GroupBy("sd.month").
		OrderBy("sd.month ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar vendas por mês: %w", err)
	}
	defer rows.Close()

	var totals []domain.MonthlySales
	for rows.Next() {
		var m domain.MonthlySales
		if err := rows.Scan(&m.Month, &m.UnitsSold, &m.Revenue); err != nil {
			return nil, fmt.Errorf("erro ao escanear total mensal: %w", err)
		}
		totals = append(totals, m)
	}

	return totals, rows.Err()
}

func (r *salesRepository) Summary(ctx context.Context) (*domain.SalesSummary, error) {
	query, args, err := squirrel.
		Select(
			"COALESCE(SUM(sd.units_sold), 0)",
			"COALESCE(AVG(sd.units_sold), 0)",
			"COALESCE(SUM(sd.revenue), 0)",
		).
		From(salesTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var summary domain.SalesSummary
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&summary.TotalSales, &summary.AvgSales, &summary.TotalRevenue)
	if err != nil {
		return nil, fmt.Errorf("erro ao resumir vendas: %w", err)
	}

	return &summary, nil
}

// HistoryVersion muda sempre que uma venda é inserida
func (r *salesRepository) HistoryVersion(ctx context.Context) (*domain.HistoryVersion, error) {
	query, args, err := squirrel.
		Select("COUNT(*)", "COALESCE(MAX(sd.created_at), 'epoch'::timestamptz)").
		From(salesTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var version domain.HistoryVersion
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&version.Rows, &version.LastInserted); err != nil {
		return nil, fmt.Errorf("erro ao obter versão do histórico: %w", err)
	}

	return &version, nil
}

func insertSales(ctx context.Context, q postgres.Queryer, s *domain.SalesRecord) error {
	query, args, err := squirrel.
		Insert("sales_data").
		Columns("model", "month", "units_sold", "revenue", "promotions", "competitor_launch").
		Values(s.Model, s.Month, s.UnitsSold, s.Revenue, s.Promotions, s.CompetitorLaunch).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := q.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.CreatedAt); err != nil {
		return wrapExecError(err)
	}
	return nil
}

func salesDest(s *domain.SalesRecord) []any {
	return []any{&s.ID, &s.Model, &s.Month, &s.UnitsSold, &s.Revenue, &s.Promotions, &s.CompetitorLaunch, &s.CreatedAt}
}
