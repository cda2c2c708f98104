package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/marchocode/clash-merger/internal/config"
	"github.com/marchocode/clash-merger/internal/logger"
	"github.com/marchocode/clash-merger/internal/utils"
)

type httpSubscriptionAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPSubscriptionAdapter constructs the resty-backed [SubscriptionAdapter].
// Every request carries cfg.UserAgent and is bounded by cfg.RequestTimeout.
func NewHTTPSubscriptionAdapter(cfg config.Subscription, logger *logger.Logger) SubscriptionAdapter {
	logger.Info().
		Str("user_agent", cfg.UserAgent).
		Dur("timeout", cfg.RequestTimeout).
		Msg("subscription adapter created")

	return &httpSubscriptionAdapter{
		client: utils.NewHTTPClient(cfg.RequestTimeout, cfg.UserAgent),
		logger: logger,
	}
}

// FetchSubscription implements [SubscriptionAdapter].
func (h *httpSubscriptionAdapter) FetchSubscription(ctx context.Context, rawURL string) ([]byte, error) {
	target, err := validateURL(rawURL)
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	resp, err := h.client.R().
		SetContext(ctx).
		Get(target)
	if err != nil {
		return nil, fmt.Errorf("subscription request: %w", err)
	}

	log.Debug().
		Str("host", resp.Request.RawRequest.URL.Host).
		Int("status", resp.StatusCode()).
		Int("size", len(resp.Body())).
		Dur("duration", resp.Time()).
		Msg("subscription fetched")

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

func validateURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidURL)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: address must include http(s) scheme and host", ErrInvalidURL)
	}

	return u.String(), nil
}
