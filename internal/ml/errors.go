package ml

import "errors"

var (
	ErrInvalidSpec       = errors.New("especificação de produto inválida")
	ErrInsufficientData  = errors.New("histórico insuficiente para treino e validação")
	ErrDivisionUndefined = errors.New("variação percentual indefinida para previsão base igual a zero")
	ErrUntrainedModel    = errors.New("modelo não treinado")
	ErrInvalidHorizon    = errors.New("horizonte de previsão deve ser positivo")
)

// ErrExplainerUnavailable indica que a estratégia de atribuição não está habilitada
var ErrExplainerUnavailable = errors.New("mecanismo de explicação indisponível")
