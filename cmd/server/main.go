package main

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/BeeeliB/waistless-app/internal/config"
	"github.com/BeeeliB/waistless-app/internal/repository/memory"
	"github.com/BeeeliB/waistless-app/internal/repository/mongodb"
	"github.com/BeeeliB/waistless-app/internal/repository/sheets"
	"github.com/BeeeliB/waistless-app/internal/scheduler"
	"github.com/BeeeliB/waistless-app/internal/server/handlers"
	"github.com/BeeeliB/waistless-app/internal/server/router"
	inventorysvc "github.com/BeeeliB/waistless-app/internal/service/inventory"
	ratingsvc "github.com/BeeeliB/waistless-app/internal/service/ratings"
	recipesvc "github.com/BeeeliB/waistless-app/internal/service/recipes"
	reportingsvc "github.com/BeeeliB/waistless-app/internal/service/reporting"
	scoringsvc "github.com/BeeeliB/waistless-app/internal/service/scoring"
	"github.com/BeeeliB/waistless-app/pkg/clients/mealdb"
	"github.com/BeeeliB/waistless-app/pkg/clients/scorer"
	"github.com/BeeeliB/waistless-app/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	store := memory.NewLedgerStore()
	roster := memory.NewRoster(cfg.Household.Roommates)

	var reportArchive mongodb.Repository
	if cfg.MongoDB.URI != "" {
		mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		reportArchive = mongoRepo
		baseLogger.Info("household report archive enabled")
	} else {
		baseLogger.Warn("mongodb uri missing, report archiving disabled")
	}

	var ledgerExporter sheets.Exporter
	if cfg.Sheets.SpreadsheetID != "" {
		ledgerExporter, err = sheets.NewGoogleSheetExporter(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets exporter", zap.Error(err))
		}
		baseLogger.Info("ledger sheet export enabled")
	} else {
		baseLogger.Warn("ledger sheet id missing, spreadsheet export disabled")
	}

	var scorerClient scorer.Client
	if cfg.Scorer.BaseURL != "" {
		client, err := scorer.NewClient(cfg.Scorer)
		if err != nil {
			baseLogger.Fatal("failed to init scorer client", zap.Error(err))
		}
		scorerClient = client
		baseLogger.Info("recipe scorer enabled")
	} else {
		baseLogger.Warn("scorer url missing, preference recommendations disabled")
	}

	mealClient := mealdb.NewClient(cfg.MealDB)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	inventorySvc := inventorysvc.NewService(store, roster, baseLogger.Named("svc.inventory"))
	recipesSvc := recipesvc.NewService(mealClient, rng, baseLogger.Named("svc.recipes"))
	ratingsSvc := ratingsvc.NewService(roster, baseLogger.Named("svc.ratings"))
	scoringSvc := scoringsvc.NewService(scorerClient, baseLogger.Named("svc.scoring"))
	reportingSvc := reportingsvc.NewService(store, roster, reportArchive, baseLogger.Named("svc.reporting"))

	ledgerHandler := handlers.NewLedgerHandler(inventorySvc, store, roster, ledgerExporter, baseLogger.Named("handlers.ledger"))
	recipeHandler := handlers.NewRecipeHandler(recipesSvc, scoringSvc, ratingsSvc, store, baseLogger.Named("handlers.recipes"))
	engine := router.New(ledgerHandler, recipeHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Reporting, reportingSvc, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
