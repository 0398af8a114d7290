// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package middleware provides the cross-cutting HTTP processing chain.

Standard Stack:

  - Trace: RequestID generation for log correlation.
  - Log: Structured access logging (slog) and a request-scoped logger.
  - Guard: Per-IP token bucket rate limiting.
  - Safe: Panic recovery.

Failures produced by the chain itself (rate limiting, panics) are written by
an [ErrorWriter]. The server passes the page renderer so a browser sees the
regular error page; a nil writer falls back to a small JSON body.
*/
package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"net"
	"net/http"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/taibuivan/bookshelf/internal/platform/apperr"
	"github.com/taibuivan/bookshelf/internal/platform/constants"
	"github.com/taibuivan/bookshelf/internal/platform/ctxutil"
)

// ErrorWriter renders an error produced by the middleware chain.
type ErrorWriter func(writer http.ResponseWriter, request *http.Request, err error)

// # Request Tracing

// RequestID attaches a correlation ID to every request. A client-supplied
// X-Request-ID is kept; otherwise a time-ordered UUIDv7 is generated.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requestID := request.Header.Get(constants.HeaderXRequestID)
			if requestID == "" {
				requestID = newRequestID()
			}

			writer.Header().Set(constants.HeaderXRequestID, requestID)
			next.ServeHTTP(writer, request.WithContext(ctxutil.WithRequestID(request.Context(), requestID)))
		})
	}
}

func newRequestID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// # Access Logging

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (recorder *statusRecorder) WriteHeader(code int) {
	recorder.status = code
	recorder.ResponseWriter.WriteHeader(code)
}

// StructuredLogger injects a request-scoped logger and writes one
// http_request_finished entry per request.
//
// Static assets and health probes are logged at debug level; everything else
// at info, warn (4xx) or error (5xx).
func StructuredLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			startTime := time.Now()

			requestLogger := logger.With(
				slog.String("request_id", ctxutil.GetRequestID(request.Context())),
				slog.String("method", request.Method),
				slog.String("path", request.URL.Path),
				slog.String("ip", RealIP(request)),
			)

			ctx := ctxutil.WithLogger(request.Context(), requestLogger)
			recorder := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}

			next.ServeHTTP(recorder, request.WithContext(ctx))

			requestLogger.Log(ctx, accessLevel(request.URL.Path, recorder.status), "http_request_finished",
				slog.Int("status", recorder.status),
				slog.Int64("latency_ms", time.Since(startTime).Milliseconds()),
				slog.String("user_agent", request.UserAgent()),
			)
		})
	}
}

func accessLevel(path string, status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	case strings.HasPrefix(path, "/static/"), path == "/health", path == "/ready":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// # Rate Limiting

// visitors tracks one token bucket per client IP.
type visitors struct {
	mu      sync.Mutex
	rps     rate.Limit
	burst   int
	clients map[string]*visitor
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func (v *visitors) allow(ip string, now time.Time) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	client, found := v.clients[ip]
	if !found {
		client = &visitor{limiter: rate.NewLimiter(v.rps, v.burst)}
		v.clients[ip] = client
	}
	client.lastSeen = now
	return client.limiter.AllowN(now, 1)
}

// sweep forgets clients idle for longer than ttl.
func (v *visitors) sweep(now time.Time, ttl time.Duration) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for ip, client := range v.clients {
		if now.Sub(client.lastSeen) > ttl {
			delete(v.clients, ip)
		}
	}
}

// RateLimit limits requests per client IP with a token bucket of rps tokens
// per second and the given burst. Rejected requests get 429 and Retry-After.
//
// The idle-client sweeper stops when ctx is cancelled.
func RateLimit(ctx context.Context, rps float64, burst int, onError ErrorWriter) func(http.Handler) http.Handler {
	clients := &visitors{rps: rate.Limit(rps), burst: burst, clients: make(map[string]*visitor)}
	retryAfter := int(math.Ceil(1 / math.Max(rps, 0.001)))
	onError = orJSON(onError)

	go func() {
		ticker := time.NewTicker(constants.RateLimitCleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case now := <-ticker.C:
				clients.sweep(now, constants.RateLimitClientTTL)
			case <-ctx.Done():
				return
			}
		}
	}()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if !clients.allow(RealIP(request), time.Now()) {
				writer.Header().Set(constants.HeaderRetryAfter, strconv.Itoa(retryAfter))
				onError(writer, request, apperr.RateLimited(retryAfter))
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}

// # Panic Recovery

// PanicRecovery turns a panicking handler into a logged 500 response.
// [http.ErrAbortHandler] is re-raised so net/http can abort the connection.
func PanicRecovery(logger *slog.Logger, onError ErrorWriter) func(http.Handler) http.Handler {
	onError = orJSON(onError)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}

				stack := make([]byte, 4096)
				stack = stack[:runtime.Stack(stack, false)]

				fallback := logger
				if fallback == nil {
					fallback = slog.Default()
				}
				ctxutil.LoggerOr(request.Context(), fallback).ErrorContext(request.Context(), "panic_recovered",
					slog.Any("error", recovered),
					slog.String("stack", string(stack)),
				)

				onError(writer, request, apperr.Internal(nil))
			}()

			next.ServeHTTP(writer, request)
		})
	}
}

// # Helpers

// RealIP extracts the client IP, preferring X-Real-IP, then the first
// X-Forwarded-For entry, then the connection's remote address.
func RealIP(request *http.Request) string {
	if ip := request.Header.Get(constants.HeaderXRealIP); ip != "" {
		return ip
	}
	if forwarded := request.Header.Get(constants.HeaderXForwardedFor); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}

	host, _, err := net.SplitHostPort(request.RemoteAddr)
	if err != nil {
		return request.RemoteAddr
	}
	return host
}

func orJSON(onError ErrorWriter) ErrorWriter {
	if onError != nil {
		return onError
	}
	return writeJSONError
}

// writeJSONError is the fallback [ErrorWriter].
func writeJSONError(writer http.ResponseWriter, _ *http.Request, err error) {
	appErr := apperr.From(err)
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(appErr.HTTPStatus)
	_ = json.NewEncoder(writer).Encode(map[string]string{
		constants.FieldCode:  appErr.Code,
		constants.FieldError: appErr.Message,
	})
}
