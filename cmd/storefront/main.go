package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Debabrata909/modern-ecommerce/internal/cart"
	"github.com/Debabrata909/modern-ecommerce/internal/catalog"
	"github.com/Debabrata909/modern-ecommerce/internal/config"
	"github.com/Debabrata909/modern-ecommerce/internal/events"
	httpserver "github.com/Debabrata909/modern-ecommerce/internal/http"
	"github.com/Debabrata909/modern-ecommerce/internal/metrics"
	"github.com/Debabrata909/modern-ecommerce/internal/order"
	"github.com/Debabrata909/modern-ecommerce/internal/pricing"
	"github.com/Debabrata909/modern-ecommerce/internal/tracking"
)

type closablePublisher interface {
	order.EventPublisher
	Close() error
}

func main() {
	cfg := config.Load()

	logger := log.New(os.Stdout, "[storefront] ", log.LstdFlags|log.Lshortfile)

	catalogStore := catalog.NewSeededStore()
	cartStore := cart.NewStore()

	calc := pricing.Calculator{
		ShippingThreshold: cfg.ShippingThreshold,
		ShippingFlatFee:   cfg.ShippingFlatFee,
		TaxRate:           cfg.TaxRate,
	}

	var publisher closablePublisher = events.NopPublisher{}
	if cfg.RabbitURL != "" {
		conn := events.MustDial(cfg.RabbitURL)
		defer conn.Close()

		p, err := events.NewRabbitPublisher(conn)
		if err != nil {
			logger.Fatalf("failed to create event publisher: %v", err)
		}
		publisher = p
	}

	orderRepo := order.NewSeededRepository()
	orderSvc := order.NewService(cartStore, calc, orderRepo, publisher)
	tracker := tracking.NewTracker(tracking.ResolverFromRepository(orderRepo))

	m := metrics.NewServerMetrics()

	mux := httpserver.NewRouter(httpserver.Deps{
		Logger:  logger,
		Cfg:     cfg,
		Catalog: catalogStore,
		Carts:   cartStore,
		Calc:    calc,
		Orders:  orderSvc,
		Tracker: tracker,
		Metrics: m,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("storefront listening on :%s (catalog: %d products)", cfg.Port, catalogStore.Len())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Printf("shutdown signal received")
	case err := <-errCh:
		logger.Fatalf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown error: %v", err)
	}
	if err := publisher.Close(); err != nil {
		logger.Printf("publisher close error: %v", err)
	}
}
