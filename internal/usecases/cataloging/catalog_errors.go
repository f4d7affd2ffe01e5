package cataloging

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound     = errors.New("produto não encontrado")
	ErrProductExists       = errors.New("modelo já cadastrado")
	ErrDuplicateSales      = errors.New("venda já registrada para o mês")
	ErrInvalidMonth        = errors.New("mês deve estar no formato YYYY-MM")
	ErrInvalidSales        = errors.New("dados de venda inválidos")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrUnsupportedFile     = errors.New("formato de arquivo não suportado, envie .xlsx ou .csv")
	ErrEmptyFile           = errors.New("o arquivo precisa de cabeçalho e ao menos uma linha")
	ErrDatabaseOperation   = errors.New("erro ao realizar operação no banco de dados")
)

// CatalogError carrega o código de API associado à falha
type CatalogError struct {
	Err     error
	Code    string
	Details string
}

func (e *CatalogError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

func NewCatalogError(baseErr error, code string, details string) *CatalogError {
	return &CatalogError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
