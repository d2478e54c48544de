package cap_alerts

import (
	"context"
	"time"

	"shiftservice/pkg/logger"
)

type Service interface {
	PublishCapAlerts(ctx context.Context) (int64, error)
}

type CapAlerts struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewCapAlerts(log logger.Logger, service Service, interval time.Duration) *CapAlerts {
	return &CapAlerts{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (c *CapAlerts) TTL() time.Duration {
	return c.interval
}

func (c *CapAlerts) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.interval)
	defer cancel()

	alertsPublished, err := c.service.PublishCapAlerts(ctxWithTimeout)

	if alertsPublished > 0 {
		c.log.With(
			logger.NewField("alerts_published", alertsPublished),
		).Info("cap alerts publish")
	}

	return err
}

func (c *CapAlerts) Info() string {
	return "cap alerts publish"
}
