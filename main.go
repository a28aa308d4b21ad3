package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/linesmerrill/firearm-tracker-api/api/handlers"

	"go.uber.org/zap"

	"github.com/linesmerrill/firearm-tracker-api/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil { //initialize database, scheduler and router
		log.Fatal(err)
	}

	// the persisted schedule is a derived cache, rebuild it on every boot
	a.Scheduler.Start()
	go func() {
		ctx := context.Background()
		if err := a.Scheduler.RescheduleAll(ctx); err != nil {
			zap.S().Errorw("startup firearm reminder rebuild failed", "error", err)
		}
		if err := a.Scheduler.ScheduleApplications(ctx); err != nil {
			zap.S().Errorw("startup application reminder rebuild failed", "error", err)
		}
	}()

	port := os.Getenv("PORT")
	baseURL := os.Getenv("BASE_URL")
	zap.S().Infow("firearm-tracker-api is up and running",
		"port", port,
		"url", baseURL,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", port), a.Router))
}
