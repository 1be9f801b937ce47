// Comando report imprime as visões do dashboard em JSON, sem subir o servidor HTTP
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/vfg2006/dashboard-entregas-vendas/infrastructure/repository"
	"github.com/vfg2006/dashboard-entregas-vendas/infrastructure/spreadsheet"
	"github.com/vfg2006/dashboard-entregas-vendas/internal/config"
	"github.com/vfg2006/dashboard-entregas-vendas/internal/domain"
	"github.com/vfg2006/dashboard-entregas-vendas/internal/usecases/dashboard"
	"github.com/vfg2006/dashboard-entregas-vendas/internal/usecases/loading"
	"github.com/vfg2006/dashboard-entregas-vendas/internal/usecases/logistics"
	"github.com/vfg2006/dashboard-entregas-vendas/internal/usecases/sales"
	"github.com/vfg2006/dashboard-entregas-vendas/pkg/log"
	"github.com/vfg2006/dashboard-entregas-vendas/pkg/utils"
)

func main() {
	view := pflag.StringP("view", "v", "", "visão a imprimir (deliveries ou sales). Vazio imprime as duas")
	path := pflag.StringP("file", "f", "", "caminho da planilha .xlsx, sobrescreve SOURCE_PATH")
	pflag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)

	if *path != "" {
		cfg.Source.Kind = config.SourceKindXLSX
		cfg.Source.Path = *path
	}

	var source spreadsheet.Source = spreadsheet.NewWorkbook(cfg.Source.Path)
	if cfg.Source.Kind == config.SourceKindPostgres {
		source = repository.NewSheetTableSource(cfg.Database)
	}

	service := dashboard.NewService(
		loading.New(cfg.Schema),
		source,
		logistics.NewService(cfg.Alerts),
		sales.NewService(),
	)

	report, err := buildReport(context.Background(), service, *view)
	if err != nil {
		logrus.WithError(err).Error("Erro ao montar o relatório")
		os.Exit(1)
	}

	out, err := utils.PrettyJson(report)
	if err != nil {
		logrus.WithError(err).Error("Erro ao serializar o relatório")
		os.Exit(1)
	}
	fmt.Println(out)
}

func buildReport(ctx context.Context, service dashboard.Dashboard, view string) (any, error) {
	switch view {
	case domain.ViewDeliveries:
		return service.DeliveriesView(ctx)
	case domain.ViewSales:
		return service.SalesView(ctx)
	case "":
		deliveries, err := service.DeliveriesView(ctx)
		if err != nil {
			return nil, err
		}
		salesView, err := service.SalesView(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			domain.ViewDeliveries: deliveries,
			domain.ViewSales:      salesView,
		}, nil
	default:
		return nil, fmt.Errorf("visão desconhecida: %q", view)
	}
}
