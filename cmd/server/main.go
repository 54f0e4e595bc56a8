package main

import (
	"context"
	"database/sql"
	"net/http"

	"fixitplus-be/internal/api"
	"fixitplus-be/internal/classify"
	"fixitplus-be/internal/config"
	"fixitplus-be/internal/db"
	"fixitplus-be/internal/issue"
	"fixitplus-be/internal/logger"
	"fixitplus-be/internal/order"
	"fixitplus-be/internal/product"
	"fixitplus-be/internal/user"

	"go.uber.org/zap"
)

// Indirections for testing.
var (
	initDBFunc      = db.InitDB
	startServerFunc = http.ListenAndServe
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	srv := newServer(cfg, database)

	logger.L().Info("FixIt+ API listening", zap.String("port", cfg.AppPort))
	return startServerFunc(":"+cfg.AppPort, srv.Handler())
}

func newServer(cfg *config.Config, database *sql.DB) *api.Server {
	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	issueRepo := issue.NewRepository(database)
	issueSvc := issue.NewService(issueRepo)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, productRepo)

	suggester := classify.NewSuggester(newClassifier(cfg))

	return api.NewServer(cfg, userSvc, issueSvc, productSvc, orderSvc, suggester)
}

// newClassifier degrades to the disabled classifier when Gemini is not
// configured; suggestions then always come back as the fallback category.
func newClassifier(cfg *config.Config) classify.Classifier {
	if cfg.GeminiAPIKey == "" {
		logger.L().Warn("GEMINI_API_KEY not set, category suggestions disabled")
		return classify.Disabled()
	}

	c, err := classify.NewGeminiClassifier(context.Background(), cfg.GeminiAPIKey)
	if err != nil {
		logger.L().Warn("gemini client unavailable, category suggestions disabled", zap.Error(err))
		return classify.Disabled()
	}

	return c
}
