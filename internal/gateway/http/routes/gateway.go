package routes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"shiftservice/internal/entities"
	"shiftservice/internal/service/shift"
	retrierconfig "shiftservice/pkg/retrier"
	"shiftservice/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "routes-catalog"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type httpStatusError struct {
	code int
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("routes catalog responded %d", e.code)
}

type RoutesGateway struct {
	client  httpDoer
	baseURL string
	retrier retrier
}

func New(client httpDoer, baseURL string) *RoutesGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableError,
	}

	return &RoutesGateway{
		client:  client,
		baseURL: baseURL,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *RoutesGateway) GetRouteByID(ctx context.Context, routeID int64) (*entities.Route, error) {
	var routeResp routeResponse

	err := g.executeWithMetrics(ctx, "GetRouteById", func(ctx context.Context) error {
		return g.getRoute(ctx, routeID, &routeResp)
	})
	if err != nil {
		if errors.Is(err, shift.ErrRouteNotFound) {
			return nil, shift.ErrRouteNotFound
		}
		return nil, fmt.Errorf("%w: route %d: %v", shift.ErrRouteUnavailable, routeID, err)
	}

	return toDomain(&routeResp), nil
}

func (g *RoutesGateway) getRoute(ctx context.Context, routeID int64, out *routeResponse) error {
	url := g.baseURL + "/route/" + strconv.FormatInt(routeID, 10)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		err = json.NewDecoder(resp.Body).Decode(out)
		if err != nil {
			return fmt.Errorf("decode route response: %w", err)
		}
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return shift.ErrRouteNotFound
	default:
		return &httpStatusError{code: resp.StatusCode}
	}
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, shift.ErrRouteNotFound) {
		return false
	}

	var statusErr *httpStatusError
	if errors.As(err, &statusErr) {
		// 429 и 5xx временные, остальное нет
		return statusErr.code == http.StatusTooManyRequests || statusErr.code >= http.StatusInternalServerError
	}

	// сетевые ошибки считаем временными
	return true
}

func (g *RoutesGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	httpCode := getHTTPCode(err)
	// Метрики Prometheus
	GatewayRequestDuration.WithLabelValues(serviceName, method, httpCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		// Метрики Prometheus
		GatewayRetriesTotal.WithLabelValues(serviceName, method, httpCode).Inc()
	}

	return err
}

func getHTTPCode(err error) string {
	if err == nil {
		return "200"
	}

	if errors.Is(err, shift.ErrRouteNotFound) {
		return "404"
	}

	var statusErr *httpStatusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.code)
	}

	return "network_error"
}
