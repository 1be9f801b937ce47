// Package loading carrega e memoriza o conjunto de dados de uma fonte
package loading

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/vfg2006/dashboard-entregas-vendas/infrastructure/spreadsheet"
	"github.com/vfg2006/dashboard-entregas-vendas/internal/config"
	"github.com/vfg2006/dashboard-entregas-vendas/internal/domain"
	"github.com/vfg2006/dashboard-entregas-vendas/pkg/utils"
)

//go:generate mockgen -source=loader.go -destination=mocks/loader.go -package=mocks

type DatasetLoader interface {
	Load(ctx context.Context, source spreadsheet.Source) (*domain.Dataset, error)
}

// Loader lê cada fonte no máximo uma vez por processo.
// Chamadas concorrentes para a mesma fonte compartilham a mesma leitura
type Loader struct {
	schema config.Schema
	group  singleflight.Group

	mu       sync.RWMutex
	datasets map[string]*domain.Dataset
}

func New(schema config.Schema) *Loader {
	return &Loader{
		schema:   schema,
		datasets: make(map[string]*domain.Dataset),
	}
}

// Load retorna o conjunto de dados da fonte. Cargas com erro não ficam em cache
func (l *Loader) Load(ctx context.Context, source spreadsheet.Source) (*domain.Dataset, error) {
	id := source.ID()
	if dataset, ok := l.cached(id); ok {
		return dataset, nil
	}

	// A carga é compartilhada entre chamadas concorrentes e não deve cair com o cancelamento de quem a iniciou
	shared := context.WithoutCancel(ctx)

	result, err, _ := l.group.Do(id, func() (any, error) {
		if dataset, ok := l.cached(id); ok {
			return dataset, nil
		}

		dataset, err := l.load(shared, source)
		if err != nil {
			return nil, err
		}

		l.mu.Lock()
		l.datasets[id] = dataset
		l.mu.Unlock()

		return dataset, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*domain.Dataset), nil
}

func (l *Loader) cached(id string) (*domain.Dataset, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	dataset, ok := l.datasets[id]
	return dataset, ok
}

func (l *Loader) load(ctx context.Context, source spreadsheet.Source) (*domain.Dataset, error) {
	start := time.Now()

	reader, err := source.Open(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "loading: erro ao abrir a fonte %s", source.ID())
	}
	defer func() {
		if err := reader.Close(); err != nil {
			logrus.WithError(err).Warn("loading: erro ao fechar a fonte")
		}
	}()

	rawDeliveries, err := reader.ReadTable(ctx, l.schema.Deliveries.Sheet)
	if err != nil {
		return nil, errors.Wrap(err, "loading: erro ao ler a aba de entregas")
	}

	rawSales, err := reader.ReadTable(ctx, l.schema.Sales.Sheet)
	if err != nil {
		return nil, errors.Wrap(err, "loading: erro ao ler a aba de vendas")
	}

	deliveries, err := buildDeliveries(rawDeliveries, l.schema.Deliveries)
	if err != nil {
		return nil, err
	}

	sales, err := buildSales(rawSales, l.schema.Sales)
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "loading: erro ao gerar o id do conjunto de dados")
	}

	dataset := &domain.Dataset{
		ID:         id,
		SourceID:   source.ID(),
		LoadedAt:   time.Now(),
		Deliveries: deliveries,
		Sales:      sales,
	}

	logrus.WithFields(logrus.Fields{
		"dataset_id": dataset.ID,
		"source":     dataset.SourceID,
		"deliveries": deliveries.Len(),
		"sales":      sales.Len(),
		"duration":   time.Since(start).String(),
	}).Info("loading: conjunto de dados carregado")

	return dataset, nil
}
