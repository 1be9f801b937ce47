package domain

// SegmentProductMean é o valor médio de um produto dentro de um segmento de cliente
type SegmentProductMean struct {
	Segment   string  `json:"segment"`
	Product   string  `json:"product"`
	MeanValue float64 `json:"mean_value"`
	Sales     int     `json:"sales"`
}

// ValueDistribution descreve o boxplot dos valores de um produto em um segmento
type ValueDistribution struct {
	Segment      string    `json:"segment"`
	Count        int       `json:"count"`
	Min          float64   `json:"min"`
	Q1           float64   `json:"q1"`
	Median       float64   `json:"median"`
	Q3           float64   `json:"q3"`
	Max          float64   `json:"max"`
	LowerFence   float64   `json:"lower_fence"`
	UpperFence   float64   `json:"upper_fence"`
	LowerWhisker float64   `json:"lower_whisker"`
	UpperWhisker float64   `json:"upper_whisker"`
	Outliers     []float64 `json:"outliers"`
}

// IQR é a amplitude interquartil
func (d ValueDistribution) IQR() float64 {
	return d.Q3 - d.Q1
}

type ProductDistribution struct {
	Product  string              `json:"product"`
	Segments []ValueDistribution `json:"segments"`
}

// MonthlyTotal é o total vendido em um mês (Month no formato 2006-01)
type MonthlyTotal struct {
	Year  int     `json:"year"`
	Month string  `json:"month"`
	Total float64 `json:"total"`
	Sales int     `json:"sales"`
}

type YearlyTotal struct {
	Year  int     `json:"year"`
	Total float64 `json:"total"`
	Sales int     `json:"sales"`
}

// MonthlySales agrupa a evolução mensal com os totais anuais e os períodos disponíveis
type MonthlySales struct {
	Months  []MonthlyTotal   `json:"months"`
	Years   []YearlyTotal    `json:"years"`
	Periods AvailablePeriods `json:"periods"`
}

// RegionTotal é o total vendido em uma região. Position começa em 1 (mais rentável)
type RegionTotal struct {
	Position int     `json:"position"`
	Region   string  `json:"region"`
	Total    float64 `json:"total"`
	Sales    int     `json:"sales"`
}
