package ekart

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	baseError "github.com/go-tron/base-error"
	expressTrace "github.com/go-tron/ekart-trace"
	"github.com/go-tron/ekart-trace/internal/config"
	"github.com/go-tron/ekart-trace/pkg/logger"
	"go.uber.org/zap"
)

var (
	ErrorParam    = baseError.SystemFactory("3011", "tracking request invalid:{}")
	ErrorRequest  = baseError.SystemFactory("3012", "tracking service connection failed:{}")
	ErrorResponse = baseError.SystemFactory("3013", "tracking service response invalid:{}")
	ErrorStatus   = baseError.SystemFactory("3014", "tracking service returned {}")
	ErrorEmpty    = baseError.New("3015", "tracking service returned no data")
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

type Ekart struct {
	Url     string
	Timeout time.Duration //zero waits indefinitely
	client  *resty.Client
}

func NewWithConfig(c *config.Config) *Ekart {
	return New(&Ekart{
		Url:     c.Ekart.Url,
		Timeout: c.Ekart.Timeout,
	})
}

func New(c *Ekart) *Ekart {
	if c == nil {
		panic("config must be set")
	}
	if c.Url == "" {
		panic("Url must be set")
	}
	if c.Timeout < 0 {
		panic("Timeout must not be negative")
	}
	c.client = resty.New()
	if c.Timeout > 0 {
		c.client.SetTimeout(c.Timeout)
	}
	return c
}

// Track makes exactly one request. Failures are logged here; callers only
// need to report that the lookup failed. ErrorEmpty is returned without a log
// line when the service answers with an empty document.
func (c *Ekart) Track(ctx context.Context, req *expressTrace.TrackReq) (*expressTrace.ShipmentDetails, error) {
	if err := validate.Struct(req); err != nil {
		return nil, ErrorParam(err)
	}

	logCtx := logger.WithFields(ctx, zap.String("trackingId", req.TrackingId))

	response, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(c.Url)
	if err != nil {
		if ctx.Err() == nil {
			logger.Error(logCtx, "An error occurred", zap.Error(err))
		}
		return nil, ErrorRequest(err)
	}

	if !response.IsSuccess() {
		logger.Error(logCtx, "HTTP error occurred",
			zap.String("status", response.Status()),
			zap.String("url", c.Url),
		)
		return nil, ErrorStatus(response.Status())
	}

	res, err := expressTrace.DecodeShipmentDetails(response.Body())
	if err != nil {
		logger.Error(logCtx, "An error occurred", zap.Error(err))
		return nil, ErrorResponse(err)
	}
	if res == nil {
		return nil, ErrorEmpty
	}

	logger.Debug(logCtx, "tracking details received",
		zap.Int("events", len(res.ShipmentTrackingDetails)),
		zap.Duration("took", response.Time()),
	)
	return res, nil
}

var _ expressTrace.ExpressTrace = (*Ekart)(nil)
