// Package app monta as dependências compartilhadas pela API e pelo salesctl.
package app

import (
	"context"

	"github.com/Hemanth1845/sales-forecasting/infrastructure/database/postgres"
	"github.com/Hemanth1845/sales-forecasting/infrastructure/integrator/gemini"
	"github.com/Hemanth1845/sales-forecasting/infrastructure/integrator/gemini/geminiclient"
	"github.com/Hemanth1845/sales-forecasting/infrastructure/repository"
	"github.com/Hemanth1845/sales-forecasting/internal/config"
	"github.com/Hemanth1845/sales-forecasting/internal/metrics"
	"github.com/Hemanth1845/sales-forecasting/internal/usecases/advising"
	"github.com/Hemanth1845/sales-forecasting/internal/usecases/authenticating"
	"github.com/Hemanth1845/sales-forecasting/internal/usecases/cataloging"
	"github.com/Hemanth1845/sales-forecasting/internal/usecases/predicting"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type App struct {
	Config  *config.Config
	Conn    *postgres.Connection
	Metrics *metrics.Metrics

	Authenticator authenticating.Authenticator
	Catalog       cataloging.Cataloger
	Predictor     predicting.SalesPredictor
	Advisor       advising.Advisor
}

// New conecta ao PostgreSQL e instancia repositórios e casos de uso
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao conectar ao PostgreSQL")
	}
	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")

	m := metrics.New()

	productRepo := repository.NewProductRepository(conn)
	salesRepo := repository.NewSalesRepository(conn)
	predictionRepo := repository.NewPredictionRepository(conn)
	importanceRepo := repository.NewFeatureImportanceRepository(conn)
	userRepo := repository.NewUserRepository(conn)

	geminiIntegrator := gemini.New(geminiclient.NewClient(cfg))

	return &App{
		Config:        cfg,
		Conn:          conn,
		Metrics:       m,
		Authenticator: authenticating.NewService(userRepo, cfg),
		Catalog:       cataloging.NewService(productRepo, salesRepo, predictionRepo),
		Predictor:     predicting.NewService(cfg, productRepo, salesRepo, predictionRepo, importanceRepo, m),
		Advisor:       advising.NewService(productRepo, salesRepo, importanceRepo, geminiIntegrator, m),
	}, nil
}

// Prepare aplica o schema, carrega o catálogo de exemplo e cria o administrador, conforme a configuração
func (a *App) Prepare(ctx context.Context) error {
	if a.Config.Database.AutoMigrate {
		if err := a.Conn.Migrate(ctx); err != nil {
			return errors.Wrap(err, "erro ao aplicar schema")
		}
		logrus.Info("Schema do banco de dados aplicado")
	}

	if a.Config.Database.SeedSampleData {
		if _, err := a.Catalog.SeedSampleCatalog(ctx, a.Config.Database.SeedSalesMonths); err != nil {
			return errors.Wrap(err, "erro ao carregar catálogo de exemplo")
		}
	}

	if _, err := a.Authenticator.EnsureAdmin(ctx); err != nil {
		return errors.Wrap(err, "erro ao criar usuário administrador")
	}

	return nil
}

func (a *App) Close() error {
	return a.Conn.Close()
}
