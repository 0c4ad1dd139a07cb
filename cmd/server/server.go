package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/waaagh-api/internal/catalogue"
	"github.com/KirkDiggler/waaagh-api/internal/errors"
	httpv1 "github.com/KirkDiggler/waaagh-api/internal/handlers/http/v1"
	armyorchestrator "github.com/KirkDiggler/waaagh-api/internal/orchestrators/army"
	"github.com/KirkDiggler/waaagh-api/internal/pkg/clock"
	"github.com/KirkDiggler/waaagh-api/internal/pkg/idgen"
	"github.com/KirkDiggler/waaagh-api/internal/redis"
	armylistrepo "github.com/KirkDiggler/waaagh-api/internal/repositories/army_list"
	"github.com/KirkDiggler/waaagh-api/internal/version"
)

// healthService is the name the army API reports under in grpc.health.v1
const healthService = "waaagh.api.v1.ArmyService"

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP API and gRPC health servers",
	Long:  `Start the army builder HTTP API together with a gRPC health endpoint.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().Int("http-port", 8080, "HTTP API port")
	serverCmd.Flags().Int("grpc-port", 50051, "gRPC health server port")
	serverCmd.Flags().String("store", StoreMemory, "Army store: memory, redis or sqlite")
	serverCmd.Flags().String("redis-addr", "localhost:6379", "Redis address for the redis store")
	serverCmd.Flags().String("sqlite-path", "waaagh.db", "Database file for the sqlite store")
	serverCmd.Flags().String("catalogue", "", "Catalogue file (JSON or YAML); empty uses the built-in Orks catalogue")

	for key, flag := range map[string]string{
		"http-port":         "http-port",
		"grpc-port":         "grpc-port",
		"store.driver":      "store",
		"store.redis-addr":  "redis-addr",
		"store.sqlite-path": "sqlite-path",
		"catalogue.path":    "catalogue",
	} {
		_ = viper.BindPFlag(key, serverCmd.Flags().Lookup(flag)) // nolint:errcheck // flags defined above
	}
}

// armyStore is the selected repository plus its lifecycle hooks
type armyStore struct {
	repo  armylistrepo.Repository
	ping  func(ctx context.Context) error
	close func() error
}

func openStore(cfg StoreConfig) (*armyStore, error) {
	switch cfg.Driver {
	case StoreMemory:
		return &armyStore{
			repo:  armylistrepo.NewInMemory(),
			ping:  func(context.Context) error { return nil },
			close: func() error { return nil },
		}, nil

	case StoreRedis:
		client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
			PoolSize:     10,
			MinIdleConns: 2,
			MaxRetries:   3,
		})
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to create redis client")
		}
		repo, err := armylistrepo.NewRedis(&armylistrepo.RedisConfig{Client: client})
		if err != nil {
			_ = client.Close() // nolint:errcheck // already failing
			return nil, err
		}
		return &armyStore{
			repo:  repo,
			ping:  func(ctx context.Context) error { return client.Ping(ctx).Err() },
			close: client.Close,
		}, nil

	case StoreSQLite:
		repo, err := armylistrepo.NewSQLite(&armylistrepo.SQLiteConfig{Path: cfg.SQLitePath})
		if err != nil {
			return nil, err
		}
		return &armyStore{
			repo:  repo,
			ping:  repo.Ping,
			close: repo.Close,
		}, nil
	}

	return nil, errors.InvalidArgumentf("unknown store driver %q", cfg.Driver)
}

func loadCatalogue(path string) (catalogue.Catalogue, error) {
	if path == "" {
		return catalogue.Default()
	}
	return catalogue.LoadFile(path)
}

func runServer(_ *cobra.Command, _ []string) error {
	cfg := loadServerConfig(viper.GetViper())
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid server config")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	cat, err := loadCatalogue(cfg.CataloguePath)
	if err != nil {
		return errors.Wrap(err, "failed to load catalogue")
	}

	store, err := openStore(cfg.Store)
	if err != nil {
		return errors.Wrap(err, "failed to open army store")
	}
	defer func() {
		if err := store.close(); err != nil {
			slog.Error("Failed to close army store", "error", err)
		}
	}()

	orchestrator, err := armyorchestrator.New(&armyorchestrator.Config{
		ArmyRepo:                      store.repo,
		Catalogue:                     cat,
		ArmyIDGen:                     idgen.NewUUID("army"),
		UnitIDGen:                     idgen.NewUUID("unit"),
		Clock:                         clock.New(),
		EnforceEnhancementExclusivity: cfg.EnforceEnhancementExclusivity,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create army orchestrator")
	}

	handler, err := httpv1.NewHandler(&httpv1.HandlerConfig{
		ArmyService: orchestrator,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create HTTP handler")
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	go watchStore(ctx, store, healthServer)

	errChan := make(chan error, 2)
	go func() {
		log.Printf("gRPC health server starting on port %d...", cfg.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve gRPC: %w", err)
		}
	}()
	go func() {
		log.Printf("HTTP API %s starting on port %d (store: %s, faction: %s)...",
			version.Core(), cfg.HTTPPort, cfg.Store.Driver, cat.Faction())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve HTTP: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutting down servers...")
	case err := <-errChan:
		shutdown(httpServer, grpcServer, healthServer)
		return err
	}

	shutdown(httpServer, grpcServer, healthServer)
	return nil
}

// watchStore reports SERVING while the store answers pings
func watchStore(ctx context.Context, store *armyStore, healthServer *health.Server) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		status := grpc_health_v1.HealthCheckResponse_SERVING
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := store.ping(pingCtx); err != nil {
			slog.Warn("Army store is not answering", "error", err)
			status = grpc_health_v1.HealthCheckResponse_NOT_SERVING
		}
		cancel()

		healthServer.SetServingStatus("", status)
		healthServer.SetServingStatus(healthService, status)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func shutdown(httpServer *http.Server, grpcServer *grpc.Server, healthServer *health.Server) {
	healthServer.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP shutdown error: %v", err)
	}

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		log.Println("Graceful shutdown timeout exceeded, forcing stop")
		grpcServer.Stop()
	case <-stopped:
		log.Println("Servers stopped gracefully")
	}
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
