package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/divo662/transactlab-payment-sandbox-sub004/internal/config"
	sandboxHttp "github.com/divo662/transactlab-payment-sandbox-sub004/internal/http"
	authHandler "github.com/divo662/transactlab-payment-sandbox-sub004/internal/http/auth"
	txHandler "github.com/divo662/transactlab-payment-sandbox-sub004/internal/http/transactions"
	"github.com/divo662/transactlab-payment-sandbox-sub004/internal/sandbox"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	store := sandbox.NewStore(cfg.Server.DatasetSize, cfg.Server.Seed)

	var (
		authH = authHandler.NewHandler(cfg.Auth.Secret, cfg.Auth.TokenTTL)
		txH   = txHandler.NewHandler(store)
	)

	router := sandboxHttp.New(authH, txH)

	port := fmt.Sprintf(":%d", cfg.Server.Port)
	slog.Info("starting sandbox server", "port", port, "records", store.Len())

	server := &http.Server{
		Addr:         port,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
