package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
)

// schema cria as tabelas e índices do serviço; todas as instruções são idempotentes
var schema = []string{
	`CREATE TABLE IF NOT EXISTS smartphones (
		id          BIGSERIAL PRIMARY KEY,
		brand       TEXT NOT NULL,
		model       TEXT NOT NULL,
		price       DOUBLE PRECISION NOT NULL,
		ram         INTEGER NOT NULL,
		storage     INTEGER NOT NULL,
		battery     INTEGER NOT NULL,
		camera_mp   INTEGER NOT NULL,
		os          TEXT NOT NULL DEFAULT '',
		launch_date TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS smartphones_model_idx ON smartphones (model)`,
	`CREATE TABLE IF NOT EXISTS sales_data (
		id                BIGSERIAL PRIMARY KEY,
		model             TEXT NOT NULL REFERENCES smartphones (model),
		month             TEXT NOT NULL,
		units_sold        INTEGER NOT NULL,
		revenue           DOUBLE PRECISION NOT NULL,
		promotions        BOOLEAN NOT NULL DEFAULT FALSE,
		competitor_launch BOOLEAN NOT NULL DEFAULT FALSE,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS sales_data_model_month_idx ON sales_data (model, month)`,
	`CREATE TABLE IF NOT EXISTS predictions (
		id               TEXT PRIMARY KEY,
		model            TEXT NOT NULL,
		predicted_sales  DOUBLE PRECISION NOT NULL,
		confidence_score DOUBLE PRECISION NOT NULL,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS predictions_created_at_idx ON predictions (created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS feature_importance (
		model       TEXT NOT NULL,
		feature     TEXT NOT NULL,
		importance  DOUBLE PRECISION NOT NULL,
		rank        INTEGER NOT NULL,
		computed_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (model, feature)
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            SERIAL PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		active        BOOLEAN NOT NULL DEFAULT TRUE,
		role_id       INTEGER NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Migrate aplica o schema dentro de uma transação
func (c *Connection) Migrate(ctx context.Context) error {
	return c.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("erro ao aplicar instrução %d do schema: %w", i, err)
			}
		}
		logrus.WithField("statements", len(schema)).Info("Schema do banco de dados aplicado")
		return nil
	})
}
