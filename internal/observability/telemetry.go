package observability

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/survivor-pool/internal/config"
	"github.com/riskibarqy/survivor-pool/internal/platform/logging"
)

// Telemetry holds whichever of tracing, continuous profiling and the pprof
// listener the config turned on.
type Telemetry struct {
	logger *logging.Logger
	stops  []namedStop
}

type namedStop struct {
	name string
	stop func(context.Context) error
}

// Start brings up telemetry in order: tracing, profiler, pprof. If one fails,
// what already started is shut down before the error is returned.
func Start(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Telemetry, error) {
	if logger == nil {
		logger = logging.Default()
	}
	t := &Telemetry{logger: logger.With("component", "telemetry")}

	starters := []struct {
		name  string
		start func(config.Config, *logging.Logger) (func(context.Context) error, error)
	}{
		{"uptrace", startUptrace},
		{"pyroscope", startPyroscope},
		{"pprof", startPprof},
	}
	for _, s := range starters {
		stop, err := s.start(cfg, t.logger)
		if err != nil {
			_ = t.Shutdown(ctx)
			return nil, fmt.Errorf("start %s: %w", s.name, err)
		}
		if stop != nil {
			t.stops = append(t.stops, namedStop{name: s.name, stop: stop})
		}
	}

	return t, nil
}

// Enabled reports which components are running, in start order.
func (t *Telemetry) Enabled() []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0, len(t.stops))
	for _, s := range t.stops {
		out = append(out, s.name)
	}
	return out
}

// Shutdown stops components in reverse start order and joins their errors.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}

	var errs []error
	for i := len(t.stops) - 1; i >= 0; i-- {
		s := t.stops[i]
		if err := s.stop(ctx); err != nil {
			errs = append(errs, fmt.Errorf("stop %s: %w", s.name, err))
			continue
		}
		t.logger.Info("telemetry stopped", "name", s.name)
	}
	t.stops = nil

	return errors.Join(errs...)
}
