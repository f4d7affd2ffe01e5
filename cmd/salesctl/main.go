package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/Hemanth1845/sales-forecasting/internal/app"
	"github.com/Hemanth1845/sales-forecasting/internal/config"
	"github.com/Hemanth1845/sales-forecasting/internal/domain"
	"github.com/Hemanth1845/sales-forecasting/internal/usecases/predicting"
	"github.com/Hemanth1845/sales-forecasting/pkg/log"
	"github.com/Hemanth1845/sales-forecasting/pkg/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	jsonOutput bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "salesctl",
		Short: "Ferramenta de linha de comando do serviço de previsão de vendas",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "warn"
			if verbose {
				level = "debug"
			}
			log.Setup("development", level)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Logs detalhados")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Imprime o resultado em JSON")

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(trainCmd())
	rootCmd.AddCommand(forecastCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
}

// withApp carrega a configuração, conecta ao banco e executa fn
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("erro ao carregar configuração: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar conexão")
		}
	}()

	return fn(ctx, a)
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Cria tabelas e índices (idempotente)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.Conn.Migrate(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Schema aplicado")
				return nil
			})
		},
	}
}

func seedCmd() *cobra.Command {
	var (
		withSales bool
		months    int
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Carrega o catálogo de exemplo quando o banco está vazio",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !withSales {
				months = 0
			}

			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				result, err := a.Catalog.SeedSampleCatalog(ctx, months)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Produtos inseridos: %d\nVendas inseridas: %d\n", result.Products, result.Sales)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&withSales, "with-sales", false, "Gera também um histórico sintético de vendas")
	cmd.Flags().IntVar(&months, "months", 12, "Meses de histórico sintético")

	return cmd
}

func trainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "train",
		Short: "Retreina o ensemble e grava as previsões de todo o catálogo",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				summary, err := a.Predictor.RetrainCatalog(ctx)
				if err != nil {
					return err
				}
				if jsonOutput {
					return printJSON(cmd.OutOrStdout(), summary)
				}
				return printRetrainSummary(cmd.OutOrStdout(), summary)
			})
		},
	}
}

func forecastCmd() *cobra.Command {
	var (
		model   string
		periods int
	)

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Projeta as vendas mensais de um modelo",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				forecast, err := a.Predictor.ForecastSales(ctx, model, periods)
				if err != nil {
					return err
				}
				if jsonOutput {
					return printJSON(cmd.OutOrStdout(), forecast)
				}
				return printForecast(cmd.OutOrStdout(), forecast)
			})
		},
	}

	cmd.Flags().StringVar(&model, "model", "", "Nome do modelo (ex: \"Galaxy S23\")")
	cmd.Flags().IntVar(&periods, "periods", predicting.DefaultPeriods, "Meses projetados")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}

func printJSON(out io.Writer, v any) error {
	_, err := fmt.Fprintln(out, utils.PrettyJson(v))
	return err
}

func printRetrainSummary(out io.Writer, summary *domain.RetrainSummary) error {
	fmt.Fprintf(out, "Linhas de treino: %d (validação: %d)\n", summary.TrainRows, summary.Metrics.ValidationRows)
	fmt.Fprintf(out, "Modelos previstos: %d, ignorados: %d\n\n", summary.ModelsPredicted, summary.ModelsSkipped)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MODELO\tMAE\tRMSE\tR2")
	for _, row := range []struct {
		name string
		m    domain.RegressionMetrics
	}{
		{"gradient_boosting", summary.Metrics.GradientBoosting},
		{"random_forest", summary.Metrics.RandomForest},
	} {
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.4f\n", row.name, row.m.MAE, row.m.RMSE, row.m.R2)
	}
	return tw.Flush()
}

func printForecast(out io.Writer, forecast *domain.SalesForecast) error {
	fmt.Fprintf(out, "Projeção de %s (%d meses)\n", forecast.Model, forecast.Periods)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MÊS\tUNIDADES")
	for _, point := range forecast.Forecast {
		fmt.Fprintf(tw, "%s\t%.0f\n", point.Month, point.UnitsSold)
	}
	return tw.Flush()
}
