package main

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/api"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/config"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/logging"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/operator"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/service"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/storage"
)

func main() {
	// Missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	logger := logging.SetupLogging()
	logrus.Info("accounting-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)
	svc := service.NewService(dbStorage)

	delegator := operator.NewOperatorDelegator(dbStorage, 4)
	delegator.Start()
	defer delegator.Stop()

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:   logger,
			Port:     envConfig.HTTPPort,
			Storage:  dbStorage,
			Service:  svc,
			Operator: delegator,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
