package geminiclient

import (
	"context"
	"net/http"

	geminidomain "github.com/Hemanth1845/sales-forecasting/infrastructure/integrator/gemini/domain"
	"github.com/Hemanth1845/sales-forecasting/internal/config"
)

type Client interface {
	GenerateContent(ctx context.Context, request geminidomain.GenerateContentRequest) (*geminidomain.GenerateContentResponse, error)
}

type GeminiClient struct {
	httpClient *http.Client
	config     config.Gemini
}

func NewClient(cfg *config.Config) Client {
	return &GeminiClient{
		httpClient: &http.Client{
			Timeout: cfg.Gemini.Timeout,
		},
		config: cfg.Gemini,
	}
}
