package server

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-pass-envelope/internal/config"
	myGRPC "github.com/MKhiriev/go-pass-envelope/internal/handler/grpc"
	"github.com/MKhiriev/go-pass-envelope/internal/logger"
)

const healthProbeInterval = 15 * time.Second

type grpcServer struct {
	handler *myGRPC.Handler
	address string

	server          *grpc.Server
	gRPCNetListener net.Listener
	probeCtx        context.Context
	stopProbes      context.CancelFunc

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	srv := grpc.NewServer(grpc.UnaryInterceptor(handler.UnaryLogging))
	handler.Register(srv)

	probeCtx, stopProbes := context.WithCancel(context.Background())

	return &grpcServer{
		handler:    handler,
		address:    cfg.GRPCAddress,
		server:     srv,
		probeCtx:   probeCtx,
		stopProbes: stopProbes,
		logger:     logger,
	}
}

func (g *grpcServer) listen() error {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		return err
	}
	g.gRPCNetListener = lis
	return nil
}

func (g *grpcServer) RunServer() {
	go g.handler.Watch(g.probeCtx, healthProbeInterval)

	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Error().Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.stopProbes()
	g.handler.Shutdown()
	g.server.GracefulStop()
}
