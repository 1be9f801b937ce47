package domain

import (
	"slices"
	"strconv"
)

// AvailablePeriods representa os períodos presentes na aba de vendas
type AvailablePeriods struct {
	Periods []string `json:"periods"` // Lista de períodos no formato yyyy-mm
	Years   []string `json:"years"`   // Lista de anos únicos disponíveis
	Months  []string `json:"months"`  // Lista de meses únicos (mm) disponíveis
}

// NewAvailablePeriods monta os períodos a partir dos totais mensais já ordenados
func NewAvailablePeriods(months []MonthlyTotal) AvailablePeriods {
	periods := AvailablePeriods{
		Periods: make([]string, 0, len(months)),
		Years:   make([]string, 0),
		Months:  make([]string, 0),
	}

	for _, month := range months {
		periods.Periods = append(periods.Periods, month.Month)

		year := strconv.Itoa(month.Year)
		if !slices.Contains(periods.Years, year) {
			periods.Years = append(periods.Years, year)
		}

		if len(month.Month) == len(MonthLayout) {
			mm := month.Month[5:]
			if !slices.Contains(periods.Months, mm) {
				periods.Months = append(periods.Months, mm)
			}
		}
	}

	slices.Sort(periods.Months)
	return periods
}
