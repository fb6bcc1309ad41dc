package monitoring

import (
	"context"
	"fmt"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// Config holds New Relic configuration
type Config struct {
	LicenseKey string
	AppName    string
	Enabled    bool
	LogLevel   string
}

// NewRelicApp wraps the New Relic application
type NewRelicApp struct {
	*newrelic.Application
	enabled bool
}

// New creates a new New Relic application
func New(cfg Config) (*NewRelicApp, error) {
	if !cfg.Enabled || cfg.LicenseKey == "" {
		// Return disabled app
		return &NewRelicApp{nil, false}, nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.AppName),
		newrelic.ConfigLicense(cfg.LicenseKey),
		newrelic.ConfigAppLogForwardingEnabled(true),
		newrelic.ConfigDistributedTracerEnabled(true),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create New Relic application: %w", err)
	}

	return &NewRelicApp{app, true}, nil
}

// RecordCustomEvent records a custom event
func (nr *NewRelicApp) RecordCustomEvent(eventType string, params map[string]interface{}) {
	if !nr.enabled || nr.Application == nil {
		return
	}
	nr.Application.RecordCustomEvent(eventType, params)
}

// RecordCustomMetric records a custom metric
func (nr *NewRelicApp) RecordCustomMetric(name string, value float64) {
	if !nr.enabled || nr.Application == nil {
		return
	}
	nr.Application.RecordCustomMetric(name, value)
}

// Shutdown gracefully shuts down the New Relic application
func (nr *NewRelicApp) Shutdown(timeout time.Duration) {
	if !nr.enabled || nr.Application == nil {
		return
	}
	nr.Application.Shutdown(timeout)
}

// IsEnabled returns whether New Relic is enabled
func (nr *NewRelicApp) IsEnabled() bool {
	return nr.enabled
}

// Custom metric helpers

// RecordLanguageChanged records a switch of the display language
func (nr *NewRelicApp) RecordLanguageChanged(lang string) {
	nr.RecordCustomEvent("LanguageChanged", map[string]interface{}{
		"language":  lang,
		"timestamp": time.Now().Unix(),
	})
}

// RecordWithdrawalRequested records a wallet withdrawal request
func (nr *NewRelicApp) RecordWithdrawalRequested(amount float64) {
	nr.RecordCustomEvent("WithdrawalRequested", map[string]interface{}{
		"amount": amount,
	})
}

// RecordPoolStats records every numeric entry of a storage backend's pool
// statistics under custom/storage/<backend>/.
func (nr *NewRelicApp) RecordPoolStats(backend string, stats map[string]interface{}) {
	for name, v := range stats {
		if f, ok := toFloat(v); ok {
			nr.RecordCustomMetric(fmt.Sprintf("custom/storage/%s/%s", backend, name), f)
		}
	}
}

// PoolStatser is implemented by storage backends with a connection pool
type PoolStatser interface {
	PoolStats() map[string]interface{}
}

// ReportPoolStats records src's pool statistics every interval until ctx ends
func (nr *NewRelicApp) ReportPoolStats(ctx context.Context, backend string, src PoolStatser, interval time.Duration) {
	if !nr.enabled || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			nr.RecordPoolStats(backend, src.PoolStats())
		case <-ctx.Done():
			return
		}
	}
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
