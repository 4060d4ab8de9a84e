package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/handler"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
)

// transport is one listener managed by [server].
type transport interface {
	name() string
	serve() error
	Shutdown()
}

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Str("http", cfg.HTTPAddress).Str("grpc", cfg.GRPCAddress).Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		gRPCServer, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.gRPCServer = gRPCServer
	}

	if len(servers.transports()) == 0 {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives or one of the
// transports fails, then shuts every transport down.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	for _, t := range s.transports() {
		t.Shutdown()
	}
}

func (s *server) transports() []transport {
	var out []transport
	if s.httpServer != nil {
		out = append(out, s.httpServer)
	}
	if s.gRPCServer != nil {
		out = append(out, s.gRPCServer)
	}
	return out
}

// run returns the first serve error, or nil when ctx ended the run.
func (s *server) run(ctx context.Context) error {
	transports := s.transports()
	if len(transports) == 0 {
		return errNoServersAreCreated
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	for _, t := range transports {
		wg.Add(1)
		go func() {
			defer wg.Done()

			s.logger.Info().Str("transport", t.name()).Msg("launching server")
			if err := t.serve(); err != nil {
				once.Do(func() { firstErr = err })
				cancel()
			}
		}()
	}

	<-ctx.Done()
	s.Shutdown()
	wg.Wait()

	if firstErr == nil {
		s.logger.Info().Msg("server Shutdown gracefully")
	}
	return firstErr
}
