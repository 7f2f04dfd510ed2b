package main

import (
	"context"
	"errors"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/booker-targets-api/infrastructure/database/migrations"
	"github.com/vfg2006/booker-targets-api/infrastructure/database/postgres"
	"github.com/vfg2006/booker-targets-api/internal/config"
	"github.com/vfg2006/booker-targets-api/pkg/log"
)

const usage = "uso: migrate [up|down|version]"

func main() {
	log.Setup("info")

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	conn, err := postgres.NewConnection(context.Background(), cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	m, err := migrations.New(conn.DB)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar migrações")
	}

	switch command {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	case "version":
		version, dirty, verr := m.Version()
		if errors.Is(verr, migrate.ErrNilVersion) {
			logrus.Info("Nenhuma migração aplicada")
			return
		}
		if verr != nil {
			logrus.WithError(verr).Fatal("Erro ao ler versão do schema")
		}
		logrus.WithFields(logrus.Fields{"version": version, "dirty": dirty}).Info("Versão do schema")
		return
	default:
		logrus.Fatal(usage)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		logrus.Info("Nenhuma alteração de schema")
		return
	}
	if err != nil {
		logrus.WithError(err).Fatalf("Erro ao executar migração %s", command)
	}

	logrus.Infof("Migração %s concluída", command)
}
