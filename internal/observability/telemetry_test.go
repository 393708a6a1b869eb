package observability

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/riskibarqy/survivor-pool/internal/config"
	"github.com/riskibarqy/survivor-pool/internal/platform/logging"
)

func TestStart_AllDisabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: true,
		UptraceDSN:     "  ",
		ServiceName:    "survivor-pool-api",
		AppEnv:         config.EnvDev,
	}

	tel, err := Start(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("start telemetry: %v", err)
	}
	if got := tel.Enabled(); len(got) != 0 {
		t.Fatalf("expected nothing enabled, got %v", got)
	}
	if err := tel.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestStart_PprofEnabled(t *testing.T) {
	cfg := config.Config{PprofEnabled: true, PprofAddr: "127.0.0.1:0"}

	tel, err := Start(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("start telemetry: %v", err)
	}
	t.Cleanup(func() { _ = tel.Shutdown(context.Background()) })

	if got := tel.Enabled(); len(got) != 1 || got[0] != "pprof" {
		t.Fatalf("unexpected enabled set: %v", got)
	}
}

func TestStart_PprofBadAddrFails(t *testing.T) {
	cfg := config.Config{PprofEnabled: true, PprofAddr: "not-an-addr"}

	if _, err := Start(context.Background(), cfg, logging.NewNop()); err == nil || !strings.Contains(err.Error(), "start pprof") {
		t.Fatalf("expected pprof start error, got %v", err)
	}
}

func TestShutdown_ReverseOrderJoinsErrors(t *testing.T) {
	var order []string
	stop := func(name string, err error) namedStop {
		return namedStop{name: name, stop: func(context.Context) error {
			order = append(order, name)
			return err
		}}
	}
	tel := &Telemetry{
		logger: logging.NewNop(),
		stops:  []namedStop{stop("uptrace", nil), stop("pyroscope", errors.New("upload pending")), stop("pprof", nil)},
	}

	err := tel.Shutdown(context.Background())
	if err == nil || !strings.Contains(err.Error(), "upload pending") {
		t.Fatalf("expected joined error, got %v", err)
	}
	if fmt.Sprint(order) != "[pprof pyroscope uptrace]" {
		t.Fatalf("unexpected stop order: %v", order)
	}
	if len(tel.Enabled()) != 0 {
		t.Fatalf("expected stops cleared")
	}
}

func TestPprofMux_RoutesIndex(t *testing.T) {
	_, pattern := pprofMux().Handler(mustRequest(t, "/debug/pprof/heap"))
	if pattern != "GET /debug/pprof/" {
		t.Fatalf("unexpected pattern: %q", pattern)
	}
}

func mustRequest(t *testing.T, path string) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	return req
}
