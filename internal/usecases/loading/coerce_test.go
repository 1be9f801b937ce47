package loading

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		wantErr  bool
	}{
		{name: "Decimal com ponto", input: "1234.56", expected: 1234.56},
		{name: "Padrão brasileiro", input: "1.234,56", expected: 1234.56},
		{name: "Vírgula decimal", input: "660,5", expected: 660.5},
		{name: "Com símbolo de moeda", input: "R$ 1.200,00", expected: 1200},
		{name: "Milhar com vírgula", input: "1,234.5", expected: 1234.5},
		{name: "Milhares com pontos", input: "1.234.567", expected: 1234567},
		{name: "Negativo", input: "-15,5", expected: -15.5},
		{name: "Vazio", input: "  ", wantErr: true},
		{name: "Texto", input: "caro", wantErr: true},
		{name: "NaN", input: "NaN", wantErr: true},
		{name: "Infinito", input: "Inf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := parseNumber(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, value, 1e-9)
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "Número serial do Excel", input: "45306", expected: "2024-01-15"},
		{name: "Serial com fração de dia", input: "45306.5", expected: "2024-01-15"},
		{name: "Texto ISO", input: "2024-03-18", expected: "2024-03-18"},
		{name: "Texto brasileiro", input: "18/03/2024", expected: "2024-03-18"},
		{name: "Vazio", input: "", expected: "0001-01-01"},
		{name: "Serial negativo", input: "-1", wantErr: true},
		{name: "Texto inválido", input: "março", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := parseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, date.Format(time.DateOnly))
		})
	}
}
