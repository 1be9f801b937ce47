package config

import "fmt"

const (
	LocaleEnglish    = "en"
	LocalePortuguese = "pt-BR"
)

// DeliveryColumns mapeia a aba de entregas para os nomes de coluna da planilha
type DeliveryColumns struct {
	Sheet            string `validate:"required"`
	Route            string `validate:"required"`
	DistanceKm       string `validate:"required"`
	FreightCost      string `validate:"required"`
	DeliveryTimeDays string `validate:"required"`
	OrderDate        string `validate:"required"`
}

// SalesColumns mapeia a aba de vendas para os nomes de coluna da planilha
type SalesColumns struct {
	Sheet           string `validate:"required"`
	CustomerSegment string `validate:"required"`
	Product         string `validate:"required"`
	Value           string `validate:"required"`
	Date            string `validate:"required"`
	Region          string `validate:"required"`
}

// Schema externaliza nomes de abas e colunas para permitir planilhas em outros idiomas
type Schema struct {
	Deliveries DeliveryColumns
	Sales      SalesColumns
}

func EnglishSchema() Schema {
	return Schema{
		Deliveries: DeliveryColumns{
			Sheet:            "Deliveries",
			Route:            "Route",
			DistanceKm:       "Distance (km)",
			FreightCost:      "FreightCost",
			DeliveryTimeDays: "DeliveryTime (days)",
			OrderDate:        "OrderDate",
		},
		Sales: SalesColumns{
			Sheet:           "Sales",
			CustomerSegment: "CustomerSegment",
			Product:         "Product",
			Value:           "Value",
			Date:            "Date",
			Region:          "Region",
		},
	}
}

// PortugueseSchema corresponde à planilha original do exercício
func PortugueseSchema() Schema {
	return Schema{
		Deliveries: DeliveryColumns{
			Sheet:            "Entregas",
			Route:            "Rota",
			DistanceKm:       "Distância (km)",
			FreightCost:      "Custo Frete (R$)",
			DeliveryTimeDays: "Tempo de Entrega (dias)",
			OrderDate:        "Data Pedido",
		},
		Sales: SalesColumns{
			Sheet:           "Base Vendas",
			CustomerSegment: "Segmento do cliente",
			Product:         "Produto",
			Value:           "Valor",
			Date:            "Data",
			Region:          "Estado/País",
		},
	}
}

func SchemaForLocale(locale string) (Schema, error) {
	switch locale {
	case "", LocaleEnglish:
		return EnglishSchema(), nil
	case LocalePortuguese:
		return PortugueseSchema(), nil
	default:
		return Schema{}, fmt.Errorf("config: idioma de schema não suportado: %s", locale)
	}
}

// WithSheetNames sobrescreve os nomes das abas quando informados
func (s Schema) WithSheetNames(deliveries, sales string) Schema {
	if deliveries != "" {
		s.Deliveries.Sheet = deliveries
	}
	if sales != "" {
		s.Sales.Sheet = sales
	}
	return s
}
