package utils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayouts são os formatos textuais aceitos para colunas de data, em ordem de tentativa
var DateLayouts = []string{
	time.DateOnly,
	time.DateTime,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"02/01/2006",
	"02/01/2006 15:04",
	"02/01/2006 15:04:05",
}

// ParseDate converte texto em data usando DateLayouts. Texto vazio retorna data zero
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, nil
	}

	for _, layout := range DateLayouts {
		if date, err := time.Parse(layout, dateStr); err == nil {
			return date, nil
		}
	}

	return time.Time{}, fmt.Errorf("formato de data não reconhecido: %q", dateStr)
}
