package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/dashboard-entregas-vendas/infrastructure/repository"
	"github.com/vfg2006/dashboard-entregas-vendas/infrastructure/spreadsheet"
	"github.com/vfg2006/dashboard-entregas-vendas/internal/api"
	"github.com/vfg2006/dashboard-entregas-vendas/internal/config"
	"github.com/vfg2006/dashboard-entregas-vendas/internal/scheduler"
	"github.com/vfg2006/dashboard-entregas-vendas/internal/usecases/dashboard"
	"github.com/vfg2006/dashboard-entregas-vendas/internal/usecases/loading"
	"github.com/vfg2006/dashboard-entregas-vendas/internal/usecases/logistics"
	"github.com/vfg2006/dashboard-entregas-vendas/internal/usecases/sales"
	"github.com/vfg2006/dashboard-entregas-vendas/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source := newSource(cfg)
	loader := loading.New(cfg.Schema)

	// Pré-carrega a planilha para falhar cedo se a fonte estiver inválida
	dataset, err := loader.Load(ctx, source)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o conjunto de dados")
	}
	logrus.WithField("dataset_id", dataset.ID).Info("Conjunto de dados carregado com sucesso")

	dashboardService := dashboard.NewService(
		loader,
		source,
		logistics.NewService(cfg.Alerts),
		sales.NewService(),
	)

	digestService := scheduler.NewDigestService(dashboardService, cfg.Digest)
	if err := digestService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do resumo")
	}

	server := api.New(cfg, dashboardService, digestService)
	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// newSource escolhe a origem da planilha conforme SOURCE_KIND
func newSource(cfg *config.Config) spreadsheet.Source {
	if cfg.Source.Kind == config.SourceKindPostgres {
		logrus.Info("Lendo abas a partir de tabelas do PostgreSQL")
		return repository.NewSheetTableSource(cfg.Database)
	}

	logrus.Infof("Lendo planilha %s", cfg.Source.Path)
	return spreadsheet.NewWorkbook(cfg.Source.Path)
}
