package routesclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"shiftservice/internal/pkg/config"
	"shiftservice/pkg/logger"
	retrierconfig "shiftservice/pkg/retrier"
	"shiftservice/pkg/retrier/backoff_adapter"
)

const (
	maxIdleConns        = 32
	maxIdleConnsPerHost = 32
	idleConnTimeout     = 90 * time.Second

	initialInterval = 1 * time.Second
	maxInterval     = 30 * time.Second
	maxElapsedTime  = 2 * time.Minute
	randomization   = 0.5
	multiplier      = 2
)

// NewClient собирает http клиент каталога маршрутов и на старте проверяет
// что каталог вообще отвечает, иначе сервис нет смысла поднимать.
func NewClient(ctx context.Context, log logger.Logger, cfg *config.RoutesCatalog) (*http.Client, error) {
	client := &http.Client{
		Timeout: cfg.RequestTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        maxIdleConns,
			MaxIdleConnsPerHost: maxIdleConnsPerHost,
			IdleConnTimeout:     idleConnTimeout,
		},
	}

	routesLog := log.With(
		logger.NewField("component", "routes-client"),
		logger.NewField("base_url", cfg.BaseURL),
	)

	err := pingRoutesCatalog(ctx, routesLog, client, cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("routes catalog connection: %w", err)
	}

	return client, nil
}

func pingRoutesCatalog(ctx context.Context, log logger.Logger, client *http.Client, baseURL string) error {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil, // все ошибки ретраим
	}

	retrier := backoff_adapter.New(retryConfig)

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("attempting routes catalog connection")

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/ping", nil)
		if err != nil {
			return err
		}

		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("routes catalog ping responded %d", resp.StatusCode)
		}
		return nil
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("routes catalog connection failed after retries")
		return fmt.Errorf("failed to establish routes catalog connection: %w", err)
	}

	log.With(logger.NewField(
		"attempts", attempt),
	).Info("routes catalog connection established")
	return nil
}
