package domain

import (
	"math"
	"strconv"
)

// Float é um float64 que serializa NaN e infinitos como null no JSON
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

// Missing é o valor guardado para uma célula numérica vazia na planilha
func Missing() float64 {
	return math.NaN()
}

// IsMissing indica um valor numérico ausente. Agregações ignoram esses valores
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}

// Defined indica se o valor é finito
func (f Float) Defined() bool {
	v := float64(f)
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
