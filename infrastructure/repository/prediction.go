package repository

import (
	"context"
	"fmt"

	"github.com/Hemanth1845/sales-forecasting/infrastructure/database/postgres"
	"github.com/Hemanth1845/sales-forecasting/internal/domain"
	"github.com/Masterminds/squirrel"
)

const predictionsTable = "predictions"

type PredictionRepository interface {
	Create(ctx context.Context, prediction *domain.PredictionRecord) error
	ListLatest(ctx context.Context, limit int) ([]*domain.PredictionRecord, error)
}

type predictionRepository struct {
	conn *postgres.Connection
}

func NewPredictionRepository(conn *postgres.Connection) PredictionRepository {
	return &predictionRepository{
		conn: conn,
	}
}

// Create grava a previsão; registros de previsão nunca são alterados
func (r *predictionRepository) Create(ctx context.Context, p *domain.PredictionRecord) error {
	query, args, err := squirrel.
		Insert(predictionsTable).
		Columns("id", "model", "predicted_sales", "confidence_score", "created_at").
		Values(p.ID, p.Model, p.PredictedSales, p.ConfidenceScore, p.CreatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return wrapExecError(err)
	}
	return nil
}

func (r *predictionRepository) ListLatest(ctx context.Context, limit int) ([]*domain.PredictionRecord, error) {
	query, args, err := squirrel.
		Select("id", "model", "predicted_sales", "confidence_score", "created_at").
		From(predictionsTable).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar previsões: %w", err)
	}
	defer rows.Close()

	var predictions []*domain.PredictionRecord
	for rows.Next() {
		var p domain.PredictionRecord
		if err := rows.Scan(&p.ID, &p.Model, &p.PredictedSales, &p.ConfidenceScore, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear previsão: %w", err)
		}
		predictions = append(predictions, &p)
	}

	return predictions, rows.Err()
}
