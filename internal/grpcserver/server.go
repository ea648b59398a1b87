package grpcserver

import (
	"context"
	"errors"

	reservationv1 "github.com/MarkoPoloResearchLab/reservel/api/reservation/v1"
	"github.com/MarkoPoloResearchLab/reservel/pkg/reservation"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	errorAlreadyInitialized = "already_initialized"
	errorNotInitialized     = "not_initialized"
	errorNotFound           = "reservation_not_found"
	errorUnauthorized       = "unauthorized"
	errorInvalidState       = "invalid_state"
	errorInvalidTransition  = "invalid_transition"
	errorTransferFailed     = "transfer_failed"
	errorInvalidInput       = "invalid_argument"
	errorInternal           = "internal_error"

	errorInfoDomain = "reservel"
)

// ReservationServiceServer exposes the reservation ledger over gRPC.
type ReservationServiceServer struct {
	reservationv1.UnimplementedReservationServiceServer
	reservationService *reservation.Service
}

// NewReservationServiceServer constructs a gRPC server for the reservation service.
func NewReservationServiceServer(reservationService *reservation.Service) *ReservationServiceServer {
	return &ReservationServiceServer{reservationService: reservationService}
}

func (server *ReservationServiceServer) Initialize(ctx context.Context, request *reservationv1.InitializeRequest) (*reservationv1.Empty, error) {
	owner, err := reservation.NewPrincipal(request.GetOwner())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	rewardAsset, err := reservation.NewAssetID(request.GetRewardAsset())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	if err := server.reservationService.Initialize(ctx, owner, rewardAsset); err != nil {
		return nil, mapToGRPCError(err)
	}
	return &reservationv1.Empty{}, nil
}

func (server *ReservationServiceServer) CreateReservation(ctx context.Context, request *reservationv1.CreateReservationRequest) (*reservationv1.CreateReservationResponse, error) {
	business, err := reservation.NewPrincipal(request.GetBusiness())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	partySize, err := reservation.NewPartySize(request.GetPartySize())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	paymentAmount, err := reservation.NewAmount(request.GetPaymentAmount())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	paymentAsset, err := reservation.NewAssetID(request.GetPaymentAsset())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	metadata, err := reservation.NewMetadataJSON(request.GetMetadataJson())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	reservationID, err := server.reservationService.CreateReservation(ctx, business, request.GetScheduledUnixUtc(), partySize, paymentAmount, paymentAsset, metadata)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	return &reservationv1.CreateReservationResponse{ReservationId: reservationID.Uint64()}, nil
}

func (server *ReservationServiceServer) ConfirmReservation(ctx context.Context, request *reservationv1.ConfirmReservationRequest) (*reservationv1.Empty, error) {
	customer, err := reservation.NewPrincipal(request.GetCustomer())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	reservationID := reservation.ReservationID(request.GetReservationId())
	if err := server.reservationService.ConfirmReservation(ctx, reservationID, customer); err != nil {
		return nil, mapToGRPCError(err)
	}
	return &reservationv1.Empty{}, nil
}

func (server *ReservationServiceServer) ResolveReservation(ctx context.Context, request *reservationv1.ResolveReservationRequest) (*reservationv1.Empty, error) {
	outcome, err := reservation.ParseReservationStatus(request.GetOutcome())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	reservationID := reservation.ReservationID(request.GetReservationId())
	if err := server.reservationService.ResolveReservation(ctx, reservationID, outcome); err != nil {
		return nil, mapToGRPCError(err)
	}
	return &reservationv1.Empty{}, nil
}

func (server *ReservationServiceServer) UpdateReservationMetadata(ctx context.Context, request *reservationv1.UpdateReservationMetadataRequest) (*reservationv1.Empty, error) {
	metadata, err := reservation.NewMetadataJSON(request.GetMetadataJson())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	reservationID := reservation.ReservationID(request.GetReservationId())
	if err := server.reservationService.UpdateReservationMetadata(ctx, reservationID, metadata); err != nil {
		return nil, mapToGRPCError(err)
	}
	return &reservationv1.Empty{}, nil
}

func (server *ReservationServiceServer) GetReservation(ctx context.Context, request *reservationv1.GetReservationRequest) (*reservationv1.GetReservationResponse, error) {
	record, found, err := server.reservationService.GetReservation(ctx, reservation.ReservationID(request.GetReservationId()))
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	if !found {
		return &reservationv1.GetReservationResponse{Found: false}, nil
	}
	return &reservationv1.GetReservationResponse{Found: true, Reservation: toWireReservation(record)}, nil
}

func (server *ReservationServiceServer) GetConfiguration(ctx context.Context, _ *reservationv1.GetConfigurationRequest) (*reservationv1.Configuration, error) {
	configuration, err := server.reservationService.GetConfiguration(ctx)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	return &reservationv1.Configuration{
		Owner:        configuration.Owner.String(),
		RewardAsset:  configuration.RewardAsset.String(),
		RewardAmount: server.reservationService.RewardAmount().Int64(),
	}, nil
}

func toWireReservation(record reservation.Reservation) *reservationv1.Reservation {
	flat := record.Record()
	return &reservationv1.Reservation{
		ReservationId:     flat.ID.Uint64(),
		Business:          flat.Business,
		Customer:          flat.Customer,
		ScheduledUnixUtc:  flat.ScheduledUnixUTC,
		PartySize:         flat.PartySize,
		PaymentAmount:     flat.PaymentAmount,
		PaymentAsset:      flat.PaymentAsset,
		Status:            flat.Status,
		RewardIssued:      flat.RewardIssued,
		MetadataJson:      flat.MetadataJSON,
		PaymentTransferId: flat.PaymentTransferID,
		RewardTransferId:  flat.RewardTransferID,
	}
}

// mapToGRPCError translates service errors into status codes. The snake_case
// reason is both the status message and the ErrorInfo reason.
func mapToGRPCError(source error) error {
	code, reason := classify(source)
	grpcStatus := status.New(code, reason)
	info := &errdetails.ErrorInfo{Reason: reason, Domain: errorInfoDomain}
	var operationError reservation.OperationError
	if errors.As(source, &operationError) {
		info.Metadata = map[string]string{
			"operation": operationError.Operation(),
			"subject":   operationError.Subject(),
			"code":      operationError.Code(),
		}
	}
	var transferError *reservation.TransferError
	if errors.As(source, &transferError) {
		if info.Metadata == nil {
			info.Metadata = map[string]string{}
		}
		info.Metadata["transfer_kind"] = string(transferError.Transfer.Kind)
		info.Metadata["transfer_asset"] = transferError.Transfer.Asset.String()
	}
	detailed, err := grpcStatus.WithDetails(info)
	if err != nil {
		return grpcStatus.Err()
	}
	return detailed.Err()
}

func classify(source error) (codes.Code, string) {
	switch {
	case errors.Is(source, reservation.ErrAlreadyInitialized):
		return codes.AlreadyExists, errorAlreadyInitialized
	case errors.Is(source, reservation.ErrNotInitialized):
		return codes.FailedPrecondition, errorNotInitialized
	case errors.Is(source, reservation.ErrNotFound):
		return codes.NotFound, errorNotFound
	case errors.Is(source, reservation.ErrTransferFailed):
		return codes.Aborted, errorTransferFailed
	case errors.Is(source, reservation.ErrUnauthorized):
		return codes.PermissionDenied, errorUnauthorized
	case errors.Is(source, reservation.ErrInvalidState):
		return codes.FailedPrecondition, errorInvalidState
	case errors.Is(source, reservation.ErrInvalidTransition):
		return codes.FailedPrecondition, errorInvalidTransition
	case errors.Is(source, reservation.ErrInvalidInput):
		return codes.InvalidArgument, errorInvalidInput
	default:
		return codes.Internal, errorInternal
	}
}
