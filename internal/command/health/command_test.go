package health

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bornholm/backlog/internal/core/service"
	"github.com/bornholm/backlog/internal/http/handler/api"
	"github.com/bornholm/backlog/pkg/client"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func TestHealthCommand(t *testing.T) {
	var maintenance atomic.Bool

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/health", func(w http.ResponseWriter, r *http.Request) {
		if maintenance.Load() {
			api.HandleError(w, r, service.ErrMaintenance)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(api.HealthResponse{
			Uptime:  12,
			Message: "OK",
			Date:    time.Now(),
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	output, err := runCommand(context.Background(), "--server", server.URL)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	var health api.HealthResponse
	if err := json.Unmarshal(output, &health); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "OK", health.Message; e != g {
		t.Errorf("health.Message: expected %v, got %v", e, g)
	}

	maintenance.Store(true)

	output, err = runCommand(context.Background(), "--server", server.URL)
	if err == nil {
		t.Fatalf("command should fail while the server is in maintenance")
	}

	if e, g := http.StatusServiceUnavailable, client.StatusCode(err); e != g {
		t.Errorf("client.StatusCode(err): expected %v, got %v", e, g)
	}

	if e, g := 0, len(output); e != g {
		t.Errorf("len(output): expected %v, got %v", e, g)
	}
}

func runCommand(ctx context.Context, args ...string) ([]byte, error) {
	var output bytes.Buffer

	app := &cli.App{
		Writer:         &output,
		Commands:       []*cli.Command{Command()},
		ExitErrHandler: func(ctx *cli.Context, err error) {},
	}

	err := app.RunContext(ctx, append([]string{"backlog", "health"}, args...))

	return output.Bytes(), err
}
