package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{name: "Produto não encontrado", code: ErrProductNotFound, wantStatus: http.StatusNotFound},
		{name: "Divisão indefinida", code: ErrDivisionUndefined, wantStatus: http.StatusUnprocessableEntity},
		{name: "Limite de requisições", code: ErrTooManyRequests, wantStatus: http.StatusTooManyRequests},
		{name: "Serviço externo", code: ErrExternalService, wantStatus: http.StatusBadGateway},
		{name: "Código desconhecido", code: "XYZ_999", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			WriteError(recorder, tt.code, "mensagem", map[string]string{"model": "Pixel 8"})

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"code":"`+tt.code+`","message":"mensagem","details":{"model":"Pixel 8"}}`, recorder.Body.String())
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrInvalidSpec).Code)

	apiErr := FromError(errors.New("preço ausente"), ErrInvalidSpec)
	assert.Equal(t, ErrInvalidSpec, apiErr.Code)
	assert.Equal(t, "preço ausente", apiErr.Message)
}
