package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCorrelationID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		validate func(t *testing.T, id string)
	}{
		{
			name:     "Sem id do cliente - deve gerar uuid",
			incoming: "",
			validate: func(t *testing.T, id string) {
				_, err := uuid.Parse(id)
				assert.NoError(t, err)
			},
		},
		{
			name:     "Com id do cliente - deve reaproveitar",
			incoming: " req-123 ",
			validate: func(t *testing.T, id string) {
				assert.Equal(t, "req-123", id)
			},
		},
		{
			name:     "Id muito longo - deve ser substituído",
			incoming: string(bytes.Repeat([]byte("a"), 65)),
			validate: func(t *testing.T, id string) {
				assert.Len(t, id, 36)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, id := WithCorrelationID(context.Background(), tt.incoming)

			tt.validate(t, id)
			assert.Equal(t, id, GetCorrelationID(ctx))
		})
	}
}

func TestForContext(t *testing.T) {
	var buf bytes.Buffer
	SetupTestLogger(&buf)

	ctx, id := WithCorrelationID(context.Background(), "abc")
	ForContext(ctx).WithField("model_name", "Galaxy S23").Info("previsão concluída")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, `"correlation_id":"`+id+`"`)
	assert.Contains(t, out, `"model_name":"Galaxy S23"`)
	assert.Contains(t, out, "previsão concluída")
}

func TestLogger_DevFilter(t *testing.T) {
	var buf bytes.Buffer
	SetupTestLogger(&buf)
	l := L.(*logger)
	dev := &logger{entry: l.entry, dev: true}

	dev.WithFields(Fields{"query": "x=1", "user_id": 7, "path": "/v1/predict"}).Info("ok")

	out := buf.String()
	assert.NotContains(t, out, "query")
	assert.Contains(t, out, `"user_id":7`)
	assert.Contains(t, out, `"path":"/v1/predict"`)
}
