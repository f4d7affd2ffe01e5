package main

import (
	"context"
	"time"

	"github.com/Hemanth1845/sales-forecasting/internal/api"
	"github.com/Hemanth1845/sales-forecasting/internal/api/handler"
	"github.com/Hemanth1845/sales-forecasting/internal/app"
	"github.com/Hemanth1845/sales-forecasting/internal/config"
	"github.com/Hemanth1845/sales-forecasting/internal/scheduler"
	"github.com/Hemanth1845/sales-forecasting/pkg/log"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.Environment, cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.New(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar a aplicação")
	}
	defer application.Close()

	if err := application.Prepare(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar o banco de dados")
	}

	modelRetrainSyncService := scheduler.NewModelRetrainSyncService(application.Predictor, cfg)
	if err := modelRetrainSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de retreino do catálogo")
	} else {
		logrus.Info("Agendador de retreino do catálogo iniciado com sucesso")
	}

	server, err := api.New(cfg, application.Metrics, api.Services{
		Authenticator: application.Authenticator,
		Catalog:       application.Catalog,
		Predictor:     application.Predictor,
		Advisor:       application.Advisor,
		CronJobs: handler.CronJobServices{
			ModelRetrainSyncService: modelRetrainSyncService,
		},
		Database: application.Conn,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
