package domain

import "time"

// Dataset agrupa as duas abas carregadas de uma mesma fonte
type Dataset struct {
	ID         string
	SourceID   string
	LoadedAt   time.Time
	Deliveries *DeliveryTable
	Sales      *SalesTable
}
