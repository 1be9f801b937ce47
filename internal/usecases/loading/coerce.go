package loading

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/dashboard-entregas-vendas/pkg/utils"
)

var numberCleaner = strings.NewReplacer("R$", "", " ", "", "\u00a0", "")

// parseNumber aceita "1234.56", "1.234,56", "1234,56" e o prefixo "R$"
func parseNumber(cell string) (float64, error) {
	text := numberCleaner.Replace(strings.TrimSpace(cell))
	if text == "" {
		return 0, fmt.Errorf("valor vazio")
	}

	lastComma := strings.LastIndex(text, ",")
	lastDot := strings.LastIndex(text, ".")

	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			text = strings.ReplaceAll(text, ".", "")
			text = strings.Replace(text, ",", ".", 1)
		} else {
			text = strings.ReplaceAll(text, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(text, ",") == 1 {
			text = strings.Replace(text, ",", ".", 1)
		} else {
			text = strings.ReplaceAll(text, ",", "")
		}
	case strings.Count(text, ".") > 1:
		text = strings.ReplaceAll(text, ".", "")
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("valor não finito")
	}

	return value, nil
}

// parseDate converte o número serial do Excel ou um texto de data. Vazio retorna data zero
func parseDate(cell string) (time.Time, error) {
	text := strings.TrimSpace(cell)
	if text == "" {
		return time.Time{}, nil
	}

	if serial, err := strconv.ParseFloat(text, 64); err == nil {
		if math.IsNaN(serial) || math.IsInf(serial, 0) || serial <= 0 {
			return time.Time{}, fmt.Errorf("número serial inválido: %s", text)
		}
		return excelize.ExcelDateToTime(serial, false)
	}

	return utils.ParseDate(text)
}
