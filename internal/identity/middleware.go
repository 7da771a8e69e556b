// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"net/http"

	"github.com/shutterdesk/inspection-service/internal/logging"
	"github.com/shutterdesk/inspection-service/internal/monitoring"
	"github.com/shutterdesk/inspection-service/internal/tracing"
)

const (
	// HeaderName carries the authenticated company id, terminated upstream.
	HeaderName = "X-Authenticated-Company-Id"
)

type contextKey struct{}

var companyIDContextKey contextKey

type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HTTPMiddleware stores the caller's company id from the identity header
// into the request context. Handlers reject requests without one.
func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		companyID := r.Header.Get(HeaderName)

		ctx = context.WithValue(ctx, companyIDContextKey, companyID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CompanyIDFromContext returns the authenticated company id, empty when
// the request carried no identity.
func CompanyIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(companyIDContextKey).(string); ok {
		return id
	}
	return ""
}

// ContextWithCompanyID mirrors what HTTPMiddleware does, for tests and
// internal callers.
func ContextWithCompanyID(ctx context.Context, companyID string) context.Context {
	return context.WithValue(ctx, companyIDContextKey, companyID)
}
