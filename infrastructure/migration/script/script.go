// Script de importação: copia as abas de entregas e vendas do .xlsx configurado
// para tabelas do PostgreSQL, com os mesmos nomes das abas
package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/vfg2006/dashboard-entregas-vendas/infrastructure/database/postgres"
	"github.com/vfg2006/dashboard-entregas-vendas/infrastructure/migration"
	"github.com/vfg2006/dashboard-entregas-vendas/infrastructure/spreadsheet"
	"github.com/vfg2006/dashboard-entregas-vendas/internal/config"
	"github.com/vfg2006/dashboard-entregas-vendas/pkg/log"
)

func main() {
	path := pflag.StringP("file", "f", "", "caminho da planilha .xlsx, sobrescreve SOURCE_PATH")
	pflag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)
	logrus.Info("Iniciando script de importação...")

	if *path != "" {
		cfg.Source.Path = *path
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	reader, err := spreadsheet.NewWorkbook(cfg.Source.Path).Open(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir a planilha")
	}
	defer reader.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao iniciar transação")
	}

	for _, sheet := range []string{cfg.Schema.Deliveries.Sheet, cfg.Schema.Sales.Sheet} {
		table, err := reader.ReadTable(ctx, sheet)
		if err != nil {
			_ = tx.Rollback()
			logrus.WithError(err).Fatalf("Erro ao ler a aba %q", sheet)
		}

		if _, err := migration.ImportTable(ctx, tx, table); err != nil {
			_ = tx.Rollback()
			logrus.WithError(err).Fatal("Erro na importação, transação desfeita")
		}
	}

	if err := tx.Commit(); err != nil {
		logrus.WithError(err).Fatal("Erro ao confirmar a transação")
	}

	logrus.Info("Importação concluída com sucesso")
}
