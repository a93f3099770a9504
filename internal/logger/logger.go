// Package logger holds the process-wide zap logger. Handlers and services
// log through Get() rather than threading a logger through every
// constructor.
package logger

import (
	"sync"

	"go.uber.org/zap"
)

// serviceName tags every production log line so aggregated logs stay
// attributable to this service.
const serviceName = "equivest-api"

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init builds the global logger for the given environment. "production"
// emits JSON with the service name on every entry; anything else emits a
// human-readable console format for local development.
func Init(env string) {
	once.Do(func() {
		var base *zap.Logger
		var err error

		if env == "production" {
			base, err = zap.NewProduction(zap.Fields(zap.String("service", serviceName)))
		} else {
			base, err = zap.NewDevelopment()
		}

		if err != nil {
			// Fallback to nop logger if initialization fails.
			base = zap.NewNop()
		}

		sugar = base.Sugar()
	})
}

// Get returns the global sugared logger, initializing a development logger
// on first use if Init was never called.
func Get() *zap.SugaredLogger {
	if sugar == nil {
		Init("development")
	}
	return sugar
}

// Sync flushes any buffered log entries. Call this before application exit.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
