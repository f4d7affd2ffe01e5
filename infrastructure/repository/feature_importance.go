package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Hemanth1845/sales-forecasting/infrastructure/database/postgres"
	"github.com/Hemanth1845/sales-forecasting/internal/domain"
	"github.com/Masterminds/squirrel"
)

const featureImportanceTable = "feature_importance"

type FeatureImportanceRepository interface {
	ReplaceForModel(ctx context.Context, model string, entries []domain.FeatureImportanceEntry) error
	ListByModel(ctx context.Context, model string) ([]domain.FeatureImportanceEntry, error)
	ListLatestRanking(ctx context.Context, limit int) ([]domain.FeatureImportanceEntry, error)
}

type featureImportanceRepository struct {
	conn *postgres.Connection
}

func NewFeatureImportanceRepository(conn *postgres.Connection) FeatureImportanceRepository {
	return &featureImportanceRepository{
		conn: conn,
	}
}

// ReplaceForModel substitui o snapshot de importância do modelo
func (r *featureImportanceRepository) ReplaceForModel(ctx context.Context, model string, entries []domain.FeatureImportanceEntry) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		deleteSQL, deleteArgs, err := squirrel.
			Delete(featureImportanceTable).
			Where(squirrel.Eq{"model": model}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
			return wrapExecError(err)
		}

		if len(entries) == 0 {
			return nil
		}

		insert := squirrel.
			Insert(featureImportanceTable).
			Columns("model", "feature", "importance", "rank", "computed_at").
			PlaceholderFormat(squirrel.Dollar)
		for _, e := range entries {
			insert = insert.Values(model, e.Feature, e.Importance, e.Rank, e.ComputedAt)
		}

		insertSQL, insertArgs, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
			return wrapExecError(err)
		}
		return nil
	})
}

func (r *featureImportanceRepository) ListByModel(ctx context.Context, model string) ([]domain.FeatureImportanceEntry, error) {
	return r.list(ctx, squirrel.
		Select("model", "feature", "importance", "rank", "computed_at").
		From(featureImportanceTable).
		Where(squirrel.Eq{"model": model}).
		OrderBy("rank ASC"))
}

// ListLatestRanking devolve o ranking do snapshot calculado mais recentemente
func (r *featureImportanceRepository) ListLatestRanking(ctx context.Context, limit int) ([]domain.FeatureImportanceEntry, error) {
	latest := squirrel.
		Select("model").
		From(featureImportanceTable).
		OrderBy("computed_at DESC").
		Limit(1)

	return r.list(ctx, squirrel.
		Select("model", "feature", "importance", "rank", "computed_at").
		From(featureImportanceTable).
		Where(latest.Prefix("model = (").Suffix(")")).
		OrderBy("rank ASC").
		Limit(uint64(limit)))
}

func (r *featureImportanceRepository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]domain.FeatureImportanceEntry, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar importância dos atributos: %w", err)
	}
	defer rows.Close()

	var entries []domain.FeatureImportanceEntry
	for rows.Next() {
		var e domain.FeatureImportanceEntry
		if err := rows.Scan(&e.Model, &e.Feature, &e.Importance, &e.Rank, &e.ComputedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear importância: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
