package predicting

import (
	"errors"
	"fmt"

	"github.com/Hemanth1845/sales-forecasting/internal/ml"
	"github.com/Hemanth1845/sales-forecasting/pkg/apiErrors"
)

var (
	ErrProductNotFound     = errors.New("produto não encontrado")
	ErrSalesNotFound       = errors.New("histórico de vendas não encontrado")
	ErrMissingModelName    = errors.New("nome do modelo é obrigatório")
	ErrUnknownModelVariant = errors.New("variante de modelo desconhecida")
	ErrDatabaseOperation   = errors.New("erro ao realizar operação no banco de dados")
)

// PredictionError carrega o código de API associado à falha
type PredictionError struct {
	Err     error
	Code    string
	Details string
}

func (e *PredictionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *PredictionError) Unwrap() error {
	return e.Err
}

func NewPredictionError(baseErr error, code string, details string) *PredictionError {
	return &PredictionError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// fromModelError traduz os erros do pacote ml para códigos de API
func fromModelError(err error, details string) *PredictionError {
	switch {
	case errors.Is(err, ml.ErrInvalidSpec):
		return NewPredictionError(err, apiErrors.ErrInvalidSpec, details)
	case errors.Is(err, ml.ErrInsufficientData):
		return NewPredictionError(err, apiErrors.ErrInsufficientData, details)
	case errors.Is(err, ml.ErrDivisionUndefined):
		return NewPredictionError(err, apiErrors.ErrDivisionUndefined, details)
	case errors.Is(err, ml.ErrUntrainedModel):
		return NewPredictionError(err, apiErrors.ErrUntrainedModel, details)
	case errors.Is(err, ml.ErrInvalidHorizon):
		return NewPredictionError(err, apiErrors.ErrInvalidHorizon, details)
	}
	return NewPredictionError(err, apiErrors.ErrInternalServer, details)
}

func databaseError(err error, details string) *PredictionError {
	return NewPredictionError(fmt.Errorf("%w: %w", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, details)
}
