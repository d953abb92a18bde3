package main

import (
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/ausungroup/propcast-backend/internal/adapter/grpc"
	propcastv1 "github.com/ausungroup/propcast-backend/internal/adapter/grpc/propcast/v1"
	"github.com/ausungroup/propcast-backend/internal/usecase/comparison"
	"github.com/ausungroup/propcast-backend/internal/usecase/presets"
	"github.com/ausungroup/propcast-backend/internal/usecase/projection"
)

const (
	defaultAPIToken = "dev-token"
	defaultGRPCPort = ":8080"
)

func main() {
	// 1. Initialize the projection core and services. The engine is pure
	// and stateless, so one instance serves every request.
	engine := projection.NewEngine()
	comparisonService := comparison.NewService(engine)
	presetProvider := presets.NewProvider()

	// 2. Resolve configuration from the environment
	apiToken := os.Getenv("API_TOKEN")
	if apiToken == "" {
		apiToken = defaultAPIToken
	}

	grpcPort := os.Getenv("GRPC_PORT")
	if grpcPort == "" {
		grpcPort = defaultGRPCPort
	}

	// 3. Start gRPC server with AuthInterceptor
	grpcServer := grpclib.NewServer(
		grpclib.UnaryInterceptor(grpcadapter.AuthInterceptor(apiToken)),
	)

	grpcAdapter := grpcadapter.NewServer(engine, comparisonService, presetProvider)
	propcastv1.RegisterPropCastServiceServer(grpcServer, grpcAdapter)

	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", grpcPort)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", grpcPort, err)
	}

	go func() {
		log.Printf("gRPC server listening on %s", grpcPort)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC server: %v", err)
		}
	}()

	waitForShutdown(grpcServer)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(grpcServer *grpclib.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Printf("Received signal: %v. Shutting down gracefully...", sig)

	grpcServer.GracefulStop()
	log.Println("gRPC server stopped")
}
