// gstindex gRPC server
// Provides remote access to the generalized suffix tree index
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/nainya/gstindex/internal/logger"
	"github.com/nainya/gstindex/internal/metrics"
	"github.com/nainya/gstindex/internal/server"
	pb "github.com/nainya/gstindex/proto"
)

var (
	port        = flag.Int("port", 50051, "The gRPC server port")
	metricsPort = flag.Int("metrics-port", 9090, "The observability HTTP port")
	normalize   = flag.Bool("normalize", true, "Lowercase and strip non-alphanumerics before indexing")
	logLevel    = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	pretty      = flag.Bool("pretty", false, "Pretty-print logs for development")
)

func main() {
	flag.Parse()

	log := logger.New(logger.Config{
		Level:  *logLevel,
		Pretty: *pretty,
	})
	log.Lifecycle("server_start").
		Int("port", *port).
		Bool("normalize", *normalize).
		Msg("gstindex server starting")

	m := metrics.NewMetrics()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", *port))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to listen")
	}

	indexServer := server.NewServer(*normalize, log, m)

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(server.UnaryInterceptor(m, log)),
	)

	pb.RegisterSuffixTreeServiceServer(grpcServer, indexServer)

	// Register reflection service for grpcurl/grpcui
	reflection.Register(grpcServer)

	obs := server.NewObservabilityServer(*metricsPort, indexServer.Engine(), log)
	go func() {
		if err := obs.Start(); err != nil {
			log.Error().Err(err).Msg("observability server stopped")
		}
	}()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Lifecycle("server_shutdown").Msg("gstindex server shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		obs.Shutdown(ctx)

		grpcServer.GracefulStop()
	}()

	log.Lifecycle("server_ready").
		Int("port", *port).
		Msg("gstindex server ready to accept connections")
	if err := grpcServer.Serve(lis); err != nil {
		log.Fatal().Err(err).Msg("failed to serve")
	}
}
