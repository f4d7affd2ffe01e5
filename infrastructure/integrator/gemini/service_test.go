package gemini

import (
	"context"
	"errors"
	"testing"

	geminidomain "github.com/Hemanth1845/sales-forecasting/infrastructure/integrator/gemini/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clientFunc func(ctx context.Context, request geminidomain.GenerateContentRequest) (*geminidomain.GenerateContentResponse, error)

func (f clientFunc) GenerateContent(ctx context.Context, request geminidomain.GenerateContentRequest) (*geminidomain.GenerateContentResponse, error) {
	return f(ctx, request)
}

func textResponse(text string) *geminidomain.GenerateContentResponse {
	return &geminidomain.GenerateContentResponse{
		Candidates: []geminidomain.Candidate{
			{Content: geminidomain.Content{Parts: []geminidomain.Part{{Text: text}}}},
		},
	}
}

func TestGeminiService_GenerateResponse(t *testing.T) {
	var prompt string
	service := New(clientFunc(func(ctx context.Context, request geminidomain.GenerateContentRequest) (*geminidomain.GenerateContentResponse, error) {
		prompt = request.Contents[0].Parts[0].Text
		return textResponse("  Reduza o preço.  "), nil
	}))

	answer, err := service.GenerateResponse(context.Background(), "Como aumentar as vendas?", map[string]int{"total_sales": 1200})
	require.NoError(t, err)

	assert.Equal(t, "Reduza o preço.", answer)
	assert.Contains(t, prompt, "AI business analyst for a smartphone company")
	assert.Contains(t, prompt, `{"total_sales":1200}`)
	assert.Contains(t, prompt, "Business Question: Como aumentar as vendas?")
}

func TestGeminiService_AnalyzeSalesTrend(t *testing.T) {
	var prompt string
	service := New(clientFunc(func(ctx context.Context, request geminidomain.GenerateContentRequest) (*geminidomain.GenerateContentResponse, error) {
		prompt = request.Contents[0].Parts[0].Text
		return textResponse("Tendência positiva"), nil
	}))

	answer, err := service.AnalyzeSalesTrend(context.Background(), "jan: 100, fev: 120", nil)
	require.NoError(t, err)

	assert.Equal(t, "Tendência positiva", answer)
	assert.Contains(t, prompt, "Sales Data: jan: 100, fev: 120")
	assert.Contains(t, prompt, "Feature Importance: {}")
	assert.Contains(t, prompt, "Market opportunities")
}

func TestGeminiService_Errors(t *testing.T) {
	tests := []struct {
		name     string
		client   clientFunc
		validate func(t *testing.T, err error)
	}{
		{
			name: "Erro do cliente - deve ser propagado",
			client: func(ctx context.Context, request geminidomain.GenerateContentRequest) (*geminidomain.GenerateContentResponse, error) {
				return nil, errors.New("timeout")
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "timeout")
			},
		},
		{
			name: "Sem candidatos - deve retornar resposta vazia",
			client: func(ctx context.Context, request geminidomain.GenerateContentRequest) (*geminidomain.GenerateContentResponse, error) {
				return &geminidomain.GenerateContentResponse{}, nil
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrEmptyResponse)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.client).GenerateResponse(context.Background(), "pergunta", "contexto")
			tt.validate(t, err)
		})
	}
}
