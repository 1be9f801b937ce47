package utils

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 5.5, RoundWithTwoDecimalPlace(5.4999999))
	assert.Equal(t, 6.01, RoundWithTwoDecimalPlace(6.0089))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.True(t, math.IsNaN(RoundWithTwoDecimalPlace(math.NaN())))
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{name: "Data ISO", input: "2024-01-15", expected: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{name: "Data e hora ISO", input: "2024-01-15 10:30:00", expected: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)},
		{name: "Data no padrão brasileiro", input: "15/01/2024", expected: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{name: "Espaços ao redor", input: "  2024-02-29 ", expected: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{name: "Vazio retorna data zero", input: "", expected: time.Time{}},
		{name: "Texto inválido", input: "ontem", wantErr: true},
		{name: "Dia inexistente", input: "31/02/2024", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(date), "esperado %s, obtido %s", tt.expected, date)
		})
	}
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 10)
}

func TestPrettyJson(t *testing.T) {
	out, err := PrettyJson(map[string]int{"b": 2, "a": 1})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1,\n  \"b\": 2\n}", out)

	out, err = PrettyJson([]byte(`{"x":[1,2]}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":[1,2]}`, out)
	assert.Contains(t, out, "\n  ")
}
