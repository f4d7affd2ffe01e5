package domain

import "time"

type PredictionRecord struct {
	ID              string    `json:"id"`
	Model           string    `json:"model_name"`
	PredictedSales  float64   `json:"predicted_sales"`
	ConfidenceScore float64   `json:"confidence_score"`
	CreatedAt       time.Time `json:"created_at"`
}

type FeatureImportanceEntry struct {
	Model      string    `json:"model_name"`
	Feature    string    `json:"feature"`
	Importance float64   `json:"importance"`
	Rank       int       `json:"rank"`
	ComputedAt time.Time `json:"computed_at"`
}

type RegressionMetrics struct {
	MAE  float64 `json:"mae"`
	RMSE float64 `json:"rmse"`
	R2   float64 `json:"r2"`
}

type ModelMetrics struct {
	GradientBoosting RegressionMetrics `json:"gradient_boosting"`
	RandomForest     RegressionMetrics `json:"random_forest"`
	TrainRows        int               `json:"train_rows"`
	ValidationRows   int               `json:"validation_rows"`
}

type PredictionOutcome struct {
	Model             string                   `json:"model_name"`
	PredictedSales    float64                  `json:"predicted_sales"`
	RegressionValue   float64                  `json:"regression_value"`
	ConfidenceScore   float64                  `json:"confidence_score"`
	Metrics           ModelMetrics             `json:"metrics"`
	FeatureImportance []FeatureImportanceEntry `json:"feature_importance"`
	PredictionID      string                   `json:"prediction_id"`
}

type SimulationRequest struct {
	ModelName string `json:"model_name"`
	SpecOverrides
}

type SimulationResult struct {
	OriginalSales  float64 `json:"original_sales"`
	SimulatedSales float64 `json:"simulated_sales"`
	PercentChange  float64 `json:"percent_change"`
	RevenueImpact  float64 `json:"revenue_impact"`
}

type ForecastPoint struct {
	Month     string  `json:"month"`
	UnitsSold float64 `json:"units_sold"`
}

type SalesForecast struct {
	Model    string          `json:"model_name"`
	Periods  int             `json:"periods"`
	Forecast []ForecastPoint `json:"forecast"`
}

type FeatureContribution struct {
	Feature string  `json:"feature"`
	Value   float64 `json:"shap_value"`
}

type Waterfall struct {
	BaseValue    float64   `json:"base_value"`
	Values       []float64 `json:"values"`
	FeatureNames []string  `json:"feature_names"`
	Fallback     bool      `json:"fallback"`
}

type FeatureImpactReport struct {
	Model         string                `json:"model_name"`
	Contributions []FeatureContribution `json:"contributions"`
	Fallback      bool                  `json:"fallback"`
	Waterfall     Waterfall             `json:"waterfall"`
}

// RetrainSummary resume uma execução de retreino do catálogo
type RetrainSummary struct {
	TrainRows       int          `json:"train_rows"`
	ModelsPredicted int          `json:"models_predicted"`
	ModelsSkipped   int          `json:"models_skipped"`
	Metrics         ModelMetrics `json:"metrics"`
	StartedAt       time.Time    `json:"started_at"`
	CompletedAt     time.Time    `json:"completed_at"`
}

type DashboardData struct {
	TotalSales        float64             `json:"total_sales"`
	TotalRevenue      float64             `json:"total_revenue"`
	LatestPredictions []*PredictionRecord `json:"predictions"`
	SalesTrend        []MonthlySales      `json:"sales_trend"`
}
