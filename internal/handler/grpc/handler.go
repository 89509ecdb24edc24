package grpc

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-pass-envelope/internal/logger"
	"github.com/MKhiriev/go-pass-envelope/internal/service"
	"github.com/MKhiriev/go-pass-envelope/internal/store"
)

// EnvelopeServiceName is the health-check service name reported for the
// envelope document store.
const EnvelopeServiceName = "passenv.EnvelopeDocuments"

// probeAccountID is looked up on every health probe. A not-found answer
// still proves the backend is reachable.
const probeAccountID = "__health_probe__"

// Handler is the gRPC side of the envelope server. It serves the standard
// grpc.health.v1 protocol; the overall status ("") follows the store.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Probe reads a sentinel envelope and flips the serving status accordingly.
func (h *Handler) Probe(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING

	_, err := h.services.EnvelopeDocumentService.GetEnvelope(ctx, probeAccountID)
	if err != nil && !errors.Is(err, store.ErrEnvelopeNotFound) {
		h.logger.Warn().Err(err).Msg("envelope store probe failed")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(EnvelopeServiceName, status)
	return status
}

// Watch probes every interval until ctx is done.
func (h *Handler) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	h.Probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Probe(ctx)
		}
	}
}

// Shutdown marks every service NOT_SERVING so clients drain before the
// listener closes.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// UnaryLogging logs every unary call with its code and duration.
func (h *Handler) UnaryLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := next(ctx, req)

	h.logger.Info().
		Str("method", info.FullMethod).
		Dur("duration", time.Since(start)).
		Err(err).
		Msg("grpc call")

	return resp, err
}
