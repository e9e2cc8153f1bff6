package bootstrap

import (
	"log/slog"

	"github.com/osse101/ChoreWheel_Go/internal/config"
	"github.com/osse101/ChoreWheel_Go/internal/entitlement"
	"github.com/osse101/ChoreWheel_Go/internal/event"
	"github.com/osse101/ChoreWheel_Go/internal/wheel"
)

// Services are the application services handed to the HTTP server
type Services struct {
	Entitlement entitlement.Service
	Wheel       wheel.Service
	Config      wheel.ConfigService
}

// InitializeServices wires the spin orchestrator and the wheel admin service.
// Both share one config cache so admin writes invalidate what spins read.
func InitializeServices(cfg *config.Config, repos *Repositories, bus event.Bus) *Services {
	entitlementSvc := entitlement.NewService(repos.Subscription)
	configStore := wheel.NewConfigStore(repos.WheelConfig, wheel.DefaultConfigCacheSize, cfg.ConfigCacheTTL)
	quota := wheel.NewQuotaTracker(repos.Spin, nil, cfg.Location())
	selector := wheel.NewSelector(nil)

	services := &Services{
		Entitlement: entitlementSvc,
		Wheel:       wheel.NewService(entitlementSvc, configStore, repos.Spin, repos.Profile, quota, selector, bus),
		Config:      wheel.NewConfigService(repos.WheelConfig, configStore, repos.Profile, bus),
	}

	slog.Info(LogMsgServicesInitialized,
		"timezone", cfg.Location().String(),
		"config_cache_ttl", cfg.ConfigCacheTTL)

	return services
}
