package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/muramets/Believe/infrastructure/statement"
	"github.com/muramets/Believe/internal/api"
	"github.com/muramets/Believe/internal/config"
	"github.com/muramets/Believe/internal/scheduler"
	"github.com/muramets/Believe/internal/usecases/charting"
	"github.com/muramets/Believe/internal/usecases/ingesting"
	"github.com/muramets/Believe/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	statementRepo := statement.NewMemoryRepository(
		time.Duration(cfg.Statements.TTLMinutes) * time.Minute,
	)

	ingestService := ingesting.NewService()
	reportService := reporting.NewService(cfg)
	chartService := charting.NewService()

	// Janitor de extratos expirados
	cleanupService := scheduler.NewStatementCleanupService(statementRepo, cfg)
	if err := cleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de extratos")
	} else {
		logrus.Info("Agendador de limpeza de extratos iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		ingestService,
		reportService,
		chartService,
		statementRepo,
		cleanupService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
