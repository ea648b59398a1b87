package asset

import (
	"context"
	"errors"
	"fmt"

	assetv1 "github.com/MarkoPoloResearchLab/reservel/api/asset/v1"
	"github.com/MarkoPoloResearchLab/reservel/pkg/reservation"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	errorCodeInvalidArgument     = "invalid_argument"
	errorCodeUnknownAsset        = "unknown_asset"
	errorCodeUnauthorized        = "unauthorized"
	errorCodeInsufficientBalance = "insufficient_balance"
	errorCodeAssetPaused         = "asset_paused"
	errorCodeInternal            = "internal_error"
)

// Server exposes a set of MemoryAssets as asset.v1.AssetService.
type Server struct {
	assetv1.UnimplementedAssetServiceServer
	assets map[string]*MemoryAsset
	logger *zap.Logger
}

// NewServer serves the given assets.
func NewServer(logger *zap.Logger, assets ...*MemoryAsset) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	byID := make(map[string]*MemoryAsset, len(assets))
	for _, asset := range assets {
		if asset == nil {
			return nil, fmt.Errorf("%w: asset is nil", reservation.ErrInvalidServiceConfig)
		}
		if _, exists := byID[asset.ID().String()]; exists {
			return nil, fmt.Errorf("%w: asset %s registered twice", reservation.ErrInvalidServiceConfig, asset.ID())
		}
		byID[asset.ID().String()] = asset
	}
	return &Server{assets: byID, logger: logger}, nil
}

func (server *Server) Transfer(ctx context.Context, request *assetv1.TransferRequest) (*assetv1.TransferResponse, error) {
	asset, ok := server.assets[request.GetAsset()]
	if !ok {
		return nil, status.Error(codes.NotFound, errorCodeUnknownAsset)
	}
	from, err := reservation.NewPrincipal(request.GetFrom())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, errorCodeInvalidArgument)
	}
	to, err := reservation.NewPrincipal(request.GetTo())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, errorCodeInvalidArgument)
	}
	amount, err := reservation.NewAmount(request.GetAmount())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, errorCodeInvalidArgument)
	}
	transferID, err := asset.Transfer(ctx, from, to, amount)
	if err != nil {
		server.logger.Info("asset transfer rejected",
			zap.String("asset", request.GetAsset()),
			zap.String("from", request.GetFrom()),
			zap.String("to", request.GetTo()),
			zap.Int64("amount", request.GetAmount()),
			zap.Error(err),
		)
		return nil, mapToGRPCError(err)
	}
	return &assetv1.TransferResponse{TransferId: transferID}, nil
}

func (server *Server) Balance(ctx context.Context, request *assetv1.BalanceRequest) (*assetv1.BalanceResponse, error) {
	asset, ok := server.assets[request.GetAsset()]
	if !ok {
		return nil, status.Error(codes.NotFound, errorCodeUnknownAsset)
	}
	holder, err := reservation.NewPrincipal(request.GetHolder())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, errorCodeInvalidArgument)
	}
	balance, err := asset.Balance(ctx, holder)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	return &assetv1.BalanceResponse{Amount: balance.Int64()}, nil
}

func mapToGRPCError(err error) error {
	switch {
	case errors.Is(err, reservation.ErrUnauthorized):
		return status.Error(codes.PermissionDenied, errorCodeUnauthorized)
	case errors.Is(err, ErrInsufficientBalance):
		return status.Error(codes.FailedPrecondition, errorCodeInsufficientBalance)
	case errors.Is(err, ErrAssetPaused):
		return status.Error(codes.FailedPrecondition, errorCodeAssetPaused)
	case errors.Is(err, reservation.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, errorCodeInvalidArgument)
	default:
		return status.Error(codes.Internal, errorCodeInternal)
	}
}
