package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/Domenick1991/airlines/config"
	waysapi "github.com/Domenick1991/airlines/internal/api/ways_service_api"
	"google.golang.org/grpc"
)

const shutdownTimeout = 5 * time.Second

type Servers struct {
	grpcServer *grpc.Server
	httpServer *http.Server
}

func NewServers(cfg *config.Config, handler http.Handler, ways waysapi.WaysServiceServer) *Servers {
	grpcSrv := grpc.NewServer(grpc.ChainUnaryInterceptor(loggingInterceptor))
	waysapi.RegisterWaysServiceServer(grpcSrv, ways)

	return &Servers{
		grpcServer: grpcSrv,
		httpServer: &http.Server{
			Addr:              cfg.HTTP.Address,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Run starts the gRPC and HTTP servers and blocks until ctx is canceled or a server fails.
func (s *Servers) Run(ctx context.Context, grpcAddress string) error {
	lis, err := net.Listen("tcp", grpcAddress)
	if err != nil {
		return fmt.Errorf("listen gRPC %s: %w", grpcAddress, err)
	}
	return s.serve(ctx, lis)
}

func (s *Servers) serve(ctx context.Context, lis net.Listener) error {
	errCh := make(chan error, 2)

	go func() {
		slog.Info("grpc server listening", "address", lis.Addr().String())
		errCh <- s.grpcServer.Serve(lis)
	}()
	go func() {
		slog.Info("http server listening", "address", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.grpcServer.Stop()
		_ = s.httpServer.Close()
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.grpcServer.GracefulStop()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	started := time.Now()
	resp, err := handler(ctx, req)
	if err != nil {
		slog.WarnContext(ctx, "grpc request failed", "method", info.FullMethod, "duration", time.Since(started), "error", err)
		return resp, err
	}
	slog.InfoContext(ctx, "grpc request", "method", info.FullMethod, "duration", time.Since(started))
	return resp, nil
}
