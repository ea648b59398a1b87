// Package httpapi is the browser-facing gateway: it authenticates tauth
// sessions and calls reservationd over gRPC on the session user's behalf.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	reservationv1 "github.com/MarkoPoloResearchLab/reservel/api/reservation/v1"
	"github.com/MarkoPoloResearchLab/reservel/internal/auth"
	"github.com/MarkoPoloResearchLab/reservel/pkg/reservation"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tyemirov/tauth/pkg/sessionvalidator"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

const (
	claimsContextKey = "auth_claims"
	// HeaderRequestID correlates gateway logs with a client request.
	HeaderRequestID = "X-Request-ID"
	requestIDKey    = "request_id"
	// HeaderOwnerAuthorization carries the owner's bearer token when a
	// completion must be co-signed.
	HeaderOwnerAuthorization = "X-Owner-Authorization"
	shutdownTimeout          = 5 * time.Second
)

// Run boots the HTTP gateway using the supplied configuration.
func Run(ctx context.Context, cfg Config) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("zap init: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	var dialOptions []grpc.DialOption
	if cfg.ReservationInsecure {
		dialOptions = append(dialOptions, grpc.WithTransportCredentials(insecure.NewCredentials()))
	} else {
		dialOptions = append(dialOptions, grpc.WithTransportCredentials(credentials.NewClientTLSFromCert(nil, "")))
	}
	conn, err := grpc.NewClient(cfg.ReservationAddress, dialOptions...)
	if err != nil {
		return fmt.Errorf("connect reservationd: %w", err)
	}
	conn.Connect()
	if err := waitForClientReady(ctx, conn); err != nil {
		_ = conn.Close()
		return fmt.Errorf("connect reservationd: %w", err)
	}
	defer conn.Close()

	sessionValidator, err := sessionvalidator.New(sessionvalidator.Config{
		SigningKey: []byte(cfg.SessionSigningKey),
		Issuer:     cfg.SessionIssuer,
		CookieName: cfg.SessionCookieName,
	})
	if err != nil {
		return fmt.Errorf("session validator: %w", err)
	}
	issuer, err := auth.NewIssuer([]byte(cfg.ServiceSigningKey), cfg.ServiceIssuer)
	if err != nil {
		return fmt.Errorf("service token issuer: %w", err)
	}

	registry := prometheus.NewRegistry()
	handler, err := newHTTPHandler(logger, reservationv1.NewReservationServiceClient(conn), issuer, cfg, registry)
	if err != nil {
		return err
	}
	router := setupRouter(cfg, handler, sessionValidator, registry)

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("reservation gateway listening", zap.String("addr", cfg.ListenAddr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
			logger.Warn("server shutdown error", zap.Error(shutdownErr))
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func setupRouter(cfg Config, handler *httpHandler, validator *sessionvalidator.Validator, gatherer prometheus.Gatherer) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(assignRequestID)
	router.Use(handler.countRequests)
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Origin", "Accept", HeaderOwnerAuthorization, HeaderRequestID},
		ExposeHeaders:    []string{HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := router.Group("/api")
	api.Use(validator.GinMiddleware(claimsContextKey))

	api.GET("/configuration", handler.handleConfiguration)
	api.POST("/reservations", handler.handleCreate)
	api.GET("/reservations/:id", handler.handleGet)
	api.POST("/reservations/:id/confirm", handler.handleConfirm)
	api.POST("/reservations/:id/resolve", handler.handleResolve)
	api.PUT("/reservations/:id/metadata", handler.handleUpdateMetadata)

	return router
}

type httpHandler struct {
	logger            *zap.Logger
	reservationClient reservationv1.ReservationServiceClient
	issuer            *auth.Issuer
	cfg               Config
	requests          *prometheus.CounterVec
}

func newHTTPHandler(logger *zap.Logger, client reservationv1.ReservationServiceClient, issuer *auth.Issuer, cfg Config, registerer prometheus.Registerer) (*httpHandler, error) {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "reservel",
		Subsystem: "gateway",
		Name:      "http_requests_total",
		Help:      "HTTP requests served by the gateway, by route and status code.",
	}, []string{"route", "code"})
	if err := registerer.Register(requests); err != nil {
		return nil, fmt.Errorf("register gateway metrics: %w", err)
	}
	return &httpHandler{
		logger:            logger,
		reservationClient: client,
		issuer:            issuer,
		cfg:               cfg,
		requests:          requests,
	}, nil
}

func assignRequestID(ctx *gin.Context) {
	requestID := strings.TrimSpace(ctx.GetHeader(HeaderRequestID))
	if requestID == "" {
		requestID = uuid.NewString()
	}
	ctx.Set(requestIDKey, requestID)
	ctx.Header(HeaderRequestID, requestID)
	ctx.Next()
}

func (handler *httpHandler) countRequests(ctx *gin.Context) {
	ctx.Next()
	route := ctx.FullPath()
	if route == "" {
		route = "unmatched"
	}
	handler.requests.WithLabelValues(route, strconv.Itoa(ctx.Writer.Status())).Inc()
}

func (handler *httpHandler) handleConfiguration(ctx *gin.Context) {
	requestCtx, cancel := context.WithTimeout(ctx.Request.Context(), handler.cfg.ReservationTimeout)
	defer cancel()
	configuration, err := handler.reservationClient.GetConfiguration(requestCtx, &reservationv1.GetConfigurationRequest{})
	if err != nil {
		handler.respondGRPCError(ctx, "get configuration", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"configuration": configurationPayload{
		Owner:        configuration.GetOwner(),
		RewardAsset:  configuration.GetRewardAsset(),
		RewardAmount: configuration.GetRewardAmount(),
	}})
}

func (handler *httpHandler) handleCreate(ctx *gin.Context) {
	principal, ok := handler.sessionPrincipal(ctx)
	if !ok {
		return
	}
	var request createRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse("invalid_payload", "expected JSON body"))
		return
	}
	metadata := "{}"
	if len(request.Metadata) > 0 {
		metadata = string(request.Metadata)
	}
	requestCtx, cancel, err := handler.outgoingContext(ctx, principal)
	if err != nil {
		handler.respondTokenError(ctx, err)
		return
	}
	defer cancel()
	response, err := handler.reservationClient.CreateReservation(requestCtx, &reservationv1.CreateReservationRequest{
		Business:         principal.String(),
		ScheduledUnixUtc: request.ScheduledUnixUTC,
		PartySize:        request.PartySize,
		PaymentAmount:    request.PaymentAmount,
		PaymentAsset:     request.PaymentAsset,
		MetadataJson:     metadata,
	})
	if err != nil {
		handler.respondGRPCError(ctx, "create reservation", err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"reservation_id": response.GetReservationId()})
}

func (handler *httpHandler) handleGet(ctx *gin.Context) {
	reservationID, ok := parseReservationID(ctx)
	if !ok {
		return
	}
	handler.respondWithReservation(ctx, reservationID)
}

func (handler *httpHandler) handleConfirm(ctx *gin.Context) {
	principal, ok := handler.sessionPrincipal(ctx)
	if !ok {
		return
	}
	reservationID, ok := parseReservationID(ctx)
	if !ok {
		return
	}
	requestCtx, cancel, err := handler.outgoingContext(ctx, principal)
	if err != nil {
		handler.respondTokenError(ctx, err)
		return
	}
	defer cancel()
	_, err = handler.reservationClient.ConfirmReservation(requestCtx, &reservationv1.ConfirmReservationRequest{
		ReservationId: reservationID.Uint64(),
		Customer:      principal.String(),
	})
	if err != nil {
		handler.respondGRPCError(ctx, "confirm reservation", err)
		return
	}
	handler.respondWithReservation(ctx, reservationID)
}

func (handler *httpHandler) handleResolve(ctx *gin.Context) {
	principal, ok := handler.sessionPrincipal(ctx)
	if !ok {
		return
	}
	reservationID, ok := parseReservationID(ctx)
	if !ok {
		return
	}
	var request resolveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse("invalid_payload", "expected JSON body"))
		return
	}
	var ownerTokens []string
	if rawOwner := strings.TrimSpace(ctx.GetHeader(HeaderOwnerAuthorization)); rawOwner != "" {
		ownerToken, err := auth.ParseBearer(rawOwner)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, errorResponse("invalid_owner_authorization", "expected bearer token"))
			return
		}
		ownerTokens = append(ownerTokens, ownerToken)
	}
	requestCtx, cancel, err := handler.outgoingContext(ctx, principal, ownerTokens...)
	if err != nil {
		handler.respondTokenError(ctx, err)
		return
	}
	defer cancel()
	_, err = handler.reservationClient.ResolveReservation(requestCtx, &reservationv1.ResolveReservationRequest{
		ReservationId: reservationID.Uint64(),
		Outcome:       request.Outcome,
	})
	if err != nil {
		handler.respondGRPCError(ctx, "resolve reservation", err)
		return
	}
	handler.respondWithReservation(ctx, reservationID)
}

func (handler *httpHandler) handleUpdateMetadata(ctx *gin.Context) {
	principal, ok := handler.sessionPrincipal(ctx)
	if !ok {
		return
	}
	reservationID, ok := parseReservationID(ctx)
	if !ok {
		return
	}
	var request metadataRequest
	if err := ctx.ShouldBindJSON(&request); err != nil || len(request.Metadata) == 0 {
		ctx.JSON(http.StatusBadRequest, errorResponse("invalid_payload", "expected JSON body with metadata"))
		return
	}
	requestCtx, cancel, err := handler.outgoingContext(ctx, principal)
	if err != nil {
		handler.respondTokenError(ctx, err)
		return
	}
	defer cancel()
	_, err = handler.reservationClient.UpdateReservationMetadata(requestCtx, &reservationv1.UpdateReservationMetadataRequest{
		ReservationId: reservationID.Uint64(),
		MetadataJson:  string(request.Metadata),
	})
	if err != nil {
		handler.respondGRPCError(ctx, "update reservation metadata", err)
		return
	}
	handler.respondWithReservation(ctx, reservationID)
}

func (handler *httpHandler) respondWithReservation(ctx *gin.Context, reservationID reservation.ReservationID) {
	requestCtx, cancel := context.WithTimeout(ctx.Request.Context(), handler.cfg.ReservationTimeout)
	defer cancel()
	response, err := handler.reservationClient.GetReservation(requestCtx, &reservationv1.GetReservationRequest{ReservationId: reservationID.Uint64()})
	if err != nil {
		handler.respondGRPCError(ctx, "get reservation", err)
		return
	}
	if !response.GetFound() || response.GetReservation() == nil {
		ctx.JSON(http.StatusNotFound, errorResponse("reservation_not_found", "reservation does not exist"))
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"reservation": toPayload(response.GetReservation())})
}

// outgoingContext mints a short-lived service token for the session user and
// attaches it, with any co-signer tokens, to the gRPC call.
func (handler *httpHandler) outgoingContext(ctx *gin.Context, principal reservation.Principal, cosignerTokens ...string) (context.Context, context.CancelFunc, error) {
	token, err := handler.issuer.Issue(principal)
	if err != nil {
		return nil, nil, err
	}
	requestCtx, cancel := context.WithTimeout(ctx.Request.Context(), handler.cfg.ReservationTimeout)
	return auth.OutgoingContext(requestCtx, token, cosignerTokens...), cancel, nil
}

func (handler *httpHandler) sessionPrincipal(ctx *gin.Context) (reservation.Principal, bool) {
	claims := getClaims(ctx)
	if claims == nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse("unauthorized", "missing session"))
		return reservation.Principal{}, false
	}
	principal, err := reservation.NewPrincipal(claims.GetUserID())
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse("unauthorized", "session has no user"))
		return reservation.Principal{}, false
	}
	return principal, true
}

func (handler *httpHandler) respondTokenError(ctx *gin.Context, err error) {
	handler.logger.Error("service token issue failed", zap.Error(err))
	ctx.JSON(http.StatusInternalServerError, errorResponse("internal_error", "could not authorize request"))
}

func (handler *httpHandler) respondGRPCError(ctx *gin.Context, action string, err error) {
	statusInfo, ok := status.FromError(err)
	if !ok {
		handler.logger.Error(action+" failed", zap.String(requestIDKey, ctx.GetString(requestIDKey)), zap.Error(err))
		ctx.JSON(http.StatusBadGateway, errorResponse("reservation_service_error", action+" failed"))
		return
	}
	httpStatus := httpStatusFor(statusInfo.Code())
	if httpStatus >= http.StatusInternalServerError {
		handler.logger.Error(action+" failed", zap.String(requestIDKey, ctx.GetString(requestIDKey)), zap.Error(err))
	}
	ctx.JSON(httpStatus, errorResponse(statusInfo.Message(), action+" failed"))
}

func httpStatusFor(code codes.Code) int {
	switch code {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists, codes.FailedPrecondition:
		return http.StatusConflict
	case codes.Aborted:
		return http.StatusUnprocessableEntity
	case codes.Unavailable, codes.DeadlineExceeded:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

func parseReservationID(ctx *gin.Context) (reservation.ReservationID, bool) {
	reservationID, err := reservation.ParseReservationID(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse("invalid_reservation_id", "reservation id must be a non-negative integer"))
		return 0, false
	}
	return reservationID, true
}

func getClaims(ctx *gin.Context) *sessionvalidator.Claims {
	claimsValue, ok := ctx.Get(claimsContextKey)
	if !ok {
		return nil
	}
	claims, _ := claimsValue.(*sessionvalidator.Claims)
	return claims
}

func errorResponse(code string, message string) gin.H {
	return gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	}
}

func toPayload(wire *reservationv1.Reservation) reservationPayload {
	metadata := json.RawMessage(wire.MetadataJson)
	if !json.Valid(metadata) {
		metadata = json.RawMessage("{}")
	}
	return reservationPayload{
		ReservationID:     wire.ReservationId,
		Business:          wire.Business,
		Customer:          wire.Customer,
		ScheduledUnixUTC:  wire.ScheduledUnixUtc,
		PartySize:         wire.PartySize,
		PaymentAmount:     wire.PaymentAmount,
		PaymentAsset:      wire.PaymentAsset,
		Status:            wire.Status,
		RewardIssued:      wire.RewardIssued,
		Metadata:          metadata,
		PaymentTransferID: wire.PaymentTransferId,
		RewardTransferID:  wire.RewardTransferId,
	}
}

type createRequest struct {
	ScheduledUnixUTC int64           `json:"scheduled_unix_utc"`
	PartySize        int64           `json:"party_size"`
	PaymentAmount    int64           `json:"payment_amount"`
	PaymentAsset     string          `json:"payment_asset"`
	Metadata         json.RawMessage `json:"metadata"`
}

type resolveRequest struct {
	Outcome string `json:"outcome"`
}

type metadataRequest struct {
	Metadata json.RawMessage `json:"metadata"`
}

type configurationPayload struct {
	Owner        string `json:"owner"`
	RewardAsset  string `json:"reward_asset"`
	RewardAmount int64  `json:"reward_amount"`
}

type reservationPayload struct {
	ReservationID     uint64          `json:"reservation_id"`
	Business          string          `json:"business"`
	Customer          string          `json:"customer,omitempty"`
	ScheduledUnixUTC  int64           `json:"scheduled_unix_utc"`
	PartySize         int64           `json:"party_size"`
	PaymentAmount     int64           `json:"payment_amount"`
	PaymentAsset      string          `json:"payment_asset"`
	Status            string          `json:"status"`
	RewardIssued      bool            `json:"reward_issued"`
	Metadata          json.RawMessage `json:"metadata"`
	PaymentTransferID string          `json:"payment_transfer_id,omitempty"`
	RewardTransferID  string          `json:"reward_transfer_id,omitempty"`
}

func waitForClientReady(ctx context.Context, conn *grpc.ClientConn) error {
	for {
		state := conn.GetState()
		if state == connectivity.Ready {
			return nil
		}
		if state == connectivity.Shutdown {
			return errors.New("grpc connection shutdown before ready")
		}
		if !conn.WaitForStateChange(ctx, state) {
			if err := ctx.Err(); err != nil {
				return err
			}
			return errors.New("grpc connection failed to reach ready state")
		}
	}
}
