package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/booker-targets-api/infrastructure/database/migrations"
	"github.com/vfg2006/booker-targets-api/infrastructure/database/postgres"
	"github.com/vfg2006/booker-targets-api/infrastructure/integrator/ledger"
	"github.com/vfg2006/booker-targets-api/infrastructure/integrator/ledger/ledgerclient"
	"github.com/vfg2006/booker-targets-api/infrastructure/repository"
	"github.com/vfg2006/booker-targets-api/internal/api"
	"github.com/vfg2006/booker-targets-api/internal/config"
	"github.com/vfg2006/booker-targets-api/internal/scheduler"
	"github.com/vfg2006/booker-targets-api/internal/usecases/achievement"
	"github.com/vfg2006/booker-targets-api/internal/usecases/authenticating"
	"github.com/vfg2006/booker-targets-api/internal/usecases/dashboard"
	"github.com/vfg2006/booker-targets-api/internal/usecases/targeting"
	"github.com/vfg2006/booker-targets-api/pkg/log"
	"github.com/vfg2006/booker-targets-api/pkg/metrics"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	if cfg.Auth.Secret == "" {
		logrus.Fatal("AUTH_SECRET não configurado")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.AutoMigrate {
		if err := migrations.Up(pgConn.DB); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	metrics.Init()

	targetRepo := repository.NewMonthlyTargetRepository(pgConn)
	dashboardRepo := repository.NewDashboardConfigRepository(pgConn)

	validator := authenticating.NewService(cfg)

	targetService := targeting.NewService(targetRepo, cfg)
	achievementService := achievement.NewService(targetRepo)
	dashboardService := dashboard.NewService(dashboard.NewConfigStore(dashboardRepo), achievementService)

	ledgerClient := ledgerclient.NewClient(cfg)
	ledgerIntegrator := ledger.New(ledgerClient)

	reconciliationSync := scheduler.NewTargetReconciliationSyncService(targetService, ledgerIntegrator, cfg)

	if err := reconciliationSync.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reconciliação de metas")
	} else {
		logrus.Info("Agendador de reconciliação de metas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		targetService,
		achievementService,
		dashboardService,
		validator,
		reconciliationSync,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger posiciona o processo no diretório do binário para achar o .env
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	log.Setup("info")
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
