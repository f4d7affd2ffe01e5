package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	geminidomain "github.com/Hemanth1845/sales-forecasting/infrastructure/integrator/gemini/domain"
	"github.com/Hemanth1845/sales-forecasting/infrastructure/integrator/gemini/geminiclient"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrEmptyResponse = errors.New("resposta vazia do modelo")

const businessQuestionPrompt = `You are an AI business analyst for a smartphone company.
Use the following data context to answer the business question:

Context:
%s

Business Question: %s

Provide a professional, data-driven answer with specific insights and recommendations.`

const trendAnalysisPrompt = `Based on this data, provide a comprehensive business analysis:
Sales Data: %s
Feature Importance: %s

Analyze the sales trend and provide insights on:
1. Key factors affecting sales
2. Recommendations for improvement
3. Market opportunities`

type GeminiIntegrator interface {
	GenerateResponse(ctx context.Context, query string, dataContext any) (string, error)
	AnalyzeSalesTrend(ctx context.Context, salesData any, featureImportance any) (string, error)
}

type GeminiService struct {
	Client geminiclient.Client
}

func New(client geminiclient.Client) GeminiIntegrator {
	return &GeminiService{
		Client: client,
	}
}

func (s *GeminiService) GenerateResponse(ctx context.Context, query string, dataContext any) (string, error) {
	serialized, err := render(dataContext)
	if err != nil {
		return "", err
	}

	return s.generate(ctx, fmt.Sprintf(businessQuestionPrompt, serialized, query))
}

func (s *GeminiService) AnalyzeSalesTrend(ctx context.Context, salesData any, featureImportance any) (string, error) {
	sales, err := render(salesData)
	if err != nil {
		return "", err
	}

	features, err := render(featureImportance)
	if err != nil {
		return "", err
	}

	return s.generate(ctx, fmt.Sprintf(trendAnalysisPrompt, sales, features))
}

func (s *GeminiService) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := s.Client.GenerateContent(ctx, geminidomain.GenerateContentRequest{
		Contents: []geminidomain.Content{
			{
				Role:  "user",
				Parts: []geminidomain.Part{{Text: prompt}},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("erro ao gerar conteúdo: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}

// render serializa o contexto em JSON; strings passam sem alteração
func render(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "{}", nil
	case string:
		return v, nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar o contexto: %w", err)
	}
	return string(data), nil
}
