package main

import (
	"context"
	"log/slog"
	"os"

	"storefront-service/handlers"
	"storefront-service/internal/bookings"
	"storefront-service/internal/contact"
	"storefront-service/internal/faqs"
	"storefront-service/internal/orders"
	"storefront-service/internal/payments"
	"storefront-service/internal/products"
	"storefront-service/internal/stores/mongodb"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		slog.Error("startup failed", slog.String("ERROR", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, relying on environment")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx := context.Background()

	uri := os.Getenv("DATABASE_URL")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("DATABASE_NAME")
	if dbName == "" {
		dbName = "storefront"
	}

	store, err := mongodb.Open(ctx, uri, dbName)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(ctx); err != nil {
			slog.Error("failed to close store", slog.String("ERROR", err.Error()))
		}
	}()
	slog.Info("connected to database", slog.String("Database", store.Name()))

	p, err := products.NewConf(store)
	if err != nil {
		return err
	}
	o, err := orders.NewConf(store)
	if err != nil {
		return err
	}
	b, err := bookings.NewConf(store)
	if err != nil {
		return err
	}
	f, err := faqs.NewConf(store)
	if err != nil {
		return err
	}
	cm, err := contact.NewConf(store)
	if err != nil {
		return err
	}
	pay := payments.NewConf(os.Getenv("STRIPE_SECRET_KEY"), os.Getenv("PAYSTACK_SECRET_KEY"))

	r := handlers.API(store, p, o, b, f, cm, pay)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	slog.Info("starting api server", slog.String("Port", port))
	return r.Run(":" + port)
}
