package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	assetv1 "github.com/MarkoPoloResearchLab/reservel/api/asset/v1"
	reservationv1 "github.com/MarkoPoloResearchLab/reservel/api/reservation/v1"
	"github.com/MarkoPoloResearchLab/reservel/internal/asset"
	"github.com/MarkoPoloResearchLab/reservel/internal/auth"
	"github.com/MarkoPoloResearchLab/reservel/internal/grpcserver"
	"github.com/MarkoPoloResearchLab/reservel/internal/metrics"
	"github.com/MarkoPoloResearchLab/reservel/internal/oplog"
	"github.com/MarkoPoloResearchLab/reservel/pkg/escrow"
	"github.com/MarkoPoloResearchLab/reservel/pkg/reservation"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "reservationd: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := &runtimeConfig{}
	cmd := &cobra.Command{
		Use:           "reservationd",
		Short:         "Reservation ledger gRPC server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			v, err := newViper(cmd)
			if err != nil {
				return err
			}
			return loadServerConfig(v, cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, cfg)
		},
	}
	bindServerFlags(cmd)
	cmd.AddCommand(newInitCommand())
	return cmd
}

func newInitCommand() *cobra.Command {
	cfg := &runtimeConfig{}
	var (
		owner       reservation.Principal
		rewardAsset reservation.AssetID
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Record the ledger owner and reward asset",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			v, err := newViper(cmd)
			if err != nil {
				return err
			}
			if err := loadStoreConfig(v, cfg); err != nil {
				return err
			}
			owner, err = reservation.NewPrincipal(v.GetString(flagOwner))
			if err != nil {
				return fmt.Errorf("%s: %w", flagOwner, err)
			}
			rewardAsset, err = reservation.NewAssetID(v.GetString(flagRewardAsset))
			if err != nil {
				return fmt.Errorf("%s: %w", flagRewardAsset, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInitialize(cmd.Context(), cfg, owner, rewardAsset)
		},
	}
	cmd.Flags().String(flagOwner, "", "principal that funds loyalty rewards (required)")
	cmd.Flags().String(flagRewardAsset, "", "asset id of the loyalty reward (required)")
	return cmd
}

// runInitialize writes the configuration directly to the store. The operator
// running it acts as the owner.
func runInitialize(ctx context.Context, cfg *runtimeConfig, owner reservation.Principal, rewardAsset reservation.AssetID) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("logger init: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	store, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("database open: %w", err)
	}
	defer func() { _ = cleanup() }()

	coordinator, err := escrow.NewCoordinator(escrow.NewRegistry(), escrow.WithLogger(logger))
	if err != nil {
		return err
	}
	service, err := reservation.NewService(store, auth.ContextAuthorizer{}, coordinator, unixClock,
		reservation.WithOperationLogger(oplog.New(logger)),
		reservation.WithRewardPolicy(cfg.RewardPolicy),
	)
	if err != nil {
		return fmt.Errorf("reservation service init: %w", err)
	}
	return service.Initialize(auth.WithPrincipals(ctx, owner), owner, rewardAsset)
}

func runServer(ctx context.Context, cfg *runtimeConfig) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("logger init: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	store, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("database open: %w", err)
	}
	defer func() { _ = cleanup() }()

	registry := prometheus.NewRegistry()
	serviceMetrics, err := metrics.New(registry)
	if err != nil {
		return fmt.Errorf("metrics init: %w", err)
	}

	assets, localAssets, closeAssets, err := buildAssets(cfg, logger)
	if err != nil {
		return err
	}
	defer closeAssets()

	coordinator, err := escrow.NewCoordinator(assets,
		escrow.WithLogger(logger),
		escrow.WithTransferObserver(serviceMetrics),
	)
	if err != nil {
		return fmt.Errorf("coordinator init: %w", err)
	}
	service, err := reservation.NewService(store, auth.ContextAuthorizer{}, coordinator, unixClock,
		reservation.WithOperationLogger(reservation.OperationLoggers{oplog.New(logger), serviceMetrics}),
		reservation.WithRewardPolicy(cfg.RewardPolicy),
		reservation.WithAssetCatalog(coordinator),
	)
	if err != nil {
		return fmt.Errorf("reservation service init: %w", err)
	}

	verifier, err := auth.NewVerifier([]byte(cfg.SigningKey), cfg.TokenIssuer)
	if err != nil {
		return err
	}
	lis, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(auth.UnaryServerInterceptor(verifier)))
	reservationv1.RegisterReservationServiceServer(grpcServer, grpcserver.NewReservationServiceServer(service))
	if len(localAssets) > 0 {
		assetServer, err := asset.NewServer(logger, localAssets...)
		if err != nil {
			return err
		}
		assetv1.RegisterAssetServiceServer(grpcServer, assetServer)
	}

	metricsServer := startMetricsServer(cfg.MetricsAddr, registry, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("gRPC server starting",
			zap.String("listen_addr", cfg.ListenAddr),
			zap.Int("local_assets", len(localAssets)),
			zap.Int("remote_assets", len(cfg.RemoteAssets)),
		)
		errCh <- grpcServer.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
		shutdownMetrics(metricsServer, logger)
		grpcServer.GracefulStop()
		if serveErr := <-errCh; serveErr != nil && serveErr != grpc.ErrServerStopped {
			return serveErr
		}
		return nil
	case serveErr := <-errCh:
		shutdownMetrics(metricsServer, logger)
		if serveErr == grpc.ErrServerStopped {
			return nil
		}
		return serveErr
	}
}

// buildAssets registers in-process assets, seeds their balances and dials the
// remote ones.
func buildAssets(cfg *runtimeConfig, logger *zap.Logger) (*escrow.Registry, []*asset.MemoryAsset, func(), error) {
	registry := escrow.NewRegistry()
	localAssets := make([]*asset.MemoryAsset, 0, len(cfg.LocalAssets))
	byID := make(map[reservation.AssetID]*asset.MemoryAsset, len(cfg.LocalAssets))
	for _, assetID := range cfg.LocalAssets {
		memory, err := asset.NewMemoryAsset(assetID, auth.ContextAuthorizer{})
		if err != nil {
			return nil, nil, nil, err
		}
		if err := registry.Register(assetID, memory); err != nil {
			return nil, nil, nil, err
		}
		localAssets = append(localAssets, memory)
		byID[assetID] = memory
	}
	for _, mint := range cfg.Mints {
		if err := byID[mint.Asset].Mint(mint.Holder, mint.Amount); err != nil {
			return nil, nil, nil, fmt.Errorf("mint %s to %s: %w", mint.Asset, mint.Holder, err)
		}
	}

	conns := make([]*grpc.ClientConn, 0, len(cfg.RemoteAssets))
	closeAll := func() {
		for _, conn := range conns {
			_ = conn.Close()
		}
	}
	for assetID, address := range cfg.RemoteAssets {
		conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			closeAll()
			return nil, nil, nil, fmt.Errorf("connect asset %s: %w", assetID, err)
		}
		conns = append(conns, conn)
		remote, err := asset.NewRemoteAsset(assetID, conn,
			asset.WithCallTimeout(cfg.AssetTimeout),
			asset.WithRemoteLogger(logger),
		)
		if err != nil {
			closeAll()
			return nil, nil, nil, err
		}
		if err := registry.Register(assetID, remote); err != nil {
			closeAll()
			return nil, nil, nil, err
		}
	}
	return registry, localAssets, closeAll, nil
}

func startMetricsServer(addr string, gatherer prometheus.Gatherer, logger *zap.Logger) *http.Server {
	if addr == "" {
		return nil
	}
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	server := &http.Server{Addr: addr, Handler: router}
	go func() {
		logger.Info("metrics server starting", zap.String("listen_addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("metrics server stopped", zap.Error(err))
		}
	}()
	return server
}

func shutdownMetrics(server *http.Server, logger *zap.Logger) {
	if server == nil {
		return
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("metrics server shutdown error", zap.Error(err))
	}
}

func unixClock() int64 {
	return time.Now().UTC().Unix()
}
