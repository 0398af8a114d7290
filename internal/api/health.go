// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/bookshelf/internal/platform/constants"
	"github.com/taibuivan/bookshelf/internal/platform/respond"
)

// probeTimeout bounds each dependency check on /ready.
const probeTimeout = 3 * time.Second

// HealthDependencies lists what /ready probes. A nil check is skipped, so a
// server running without Redis is still ready.
type HealthDependencies struct {
	CheckDatabase func(ctx context.Context) error
	CheckCache    func(ctx context.Context) error
}

type probe struct {
	name  string
	check func(ctx context.Context) error
}

type probeResult struct {
	Name  string `json:"name"`
	IsOK  bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type healthHandler struct {
	probes []probe
	logger *slog.Logger
}

// NewHealthHandlers returns the /health and /ready handlers.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{logger: logger}
	for _, candidate := range []probe{
		{name: "postgres", check: deps.CheckDatabase},
		{name: "redis", check: deps.CheckCache},
	} {
		if candidate.check != nil {
			handler.probes = append(handler.probes, candidate)
		}
	}
	return handler.liveness, handler.readiness
}

func (handler *healthHandler) liveness(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, map[string]string{
		constants.FieldStatus:  "ok",
		constants.FieldApp:     constants.AppName,
		constants.FieldVersion: constants.AppVersion,
	})
}

// readiness runs every probe in parallel. Results keep registration order.
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	results := make([]probeResult, len(handler.probes))

	var group errgroup.Group
	for index, dependency := range handler.probes {
		group.Go(func() error {
			probeCtx, cancel := context.WithTimeout(request.Context(), probeTimeout)
			defer cancel()

			results[index] = probeResult{Name: dependency.name, IsOK: true}
			if err := dependency.check(probeCtx); err != nil {
				results[index].IsOK = false
				results[index].Error = err.Error()
				handler.logger.Error("readiness_check_failed", slog.String("dependency", dependency.name), slog.Any("error", err))
			}
			return nil
		})
	}
	_ = group.Wait()

	status, code := "ready", http.StatusOK
	for _, result := range results {
		if !result.IsOK {
			status, code = "degraded", http.StatusServiceUnavailable
			break
		}
	}

	respond.JSON(writer, code, respond.SuccessEnvelope{Data: map[string]any{
		constants.FieldStatus: status,
		constants.FieldChecks: results,
	}})
}
