package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MarkoPoloResearchLab/reservel/internal/httpapi"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagListenAddr          = "listen-addr"
	flagReservationAddr     = "reservation-addr"
	flagReservationInsecure = "reservation-insecure"
	flagReservationTimeout  = "reservation-timeout"
	flagAllowedOrigins      = "allowed-origins"
	flagJWTSigningKey       = "jwt-signing-key"
	flagJWTIssuer           = "jwt-issuer"
	flagJWTCookieName       = "jwt-cookie-name"
	flagServiceSigningKey   = "service-signing-key"
	flagServiceIssuer       = "service-issuer"
	envPrefix               = "RESERVATIONAPI"
)

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "reservationapi: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := httpapi.Config{}
	cmd := &cobra.Command{
		Use:           "reservationapi",
		Short:         "HTTP gateway for the reservation ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd, &cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return httpapi.Run(ctx, cfg)
		},
	}

	cmd.Flags().String(flagListenAddr, "", "HTTP listen address")
	cmd.Flags().String(flagReservationAddr, "", "reservationd gRPC address")
	cmd.Flags().Bool(flagReservationInsecure, false, "connect to reservationd without TLS")
	cmd.Flags().Duration(flagReservationTimeout, 0, "reservationd RPC timeout (e.g. 3s)")
	cmd.Flags().String(flagAllowedOrigins, "", "comma-separated list of allowed CORS origins")
	cmd.Flags().String(flagJWTSigningKey, "", "TAuth session signing key (required)")
	cmd.Flags().String(flagJWTIssuer, "", "expected session issuer")
	cmd.Flags().String(flagJWTCookieName, "", "session cookie name")
	cmd.Flags().String(flagServiceSigningKey, "", "key used to mint principal tokens for reservationd (required)")
	cmd.Flags().String(flagServiceIssuer, "", "issuer of principal tokens")

	return cmd
}

func loadConfig(cmd *cobra.Command, cfg *httpapi.Config) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, flagName := range []string{
		flagListenAddr, flagReservationAddr, flagReservationInsecure, flagReservationTimeout, flagAllowedOrigins,
		flagJWTSigningKey, flagJWTIssuer, flagJWTCookieName, flagServiceSigningKey, flagServiceIssuer,
	} {
		if err := v.BindPFlag(flagName, cmd.Flags().Lookup(flagName)); err != nil {
			return err
		}
	}

	if !v.IsSet(flagJWTSigningKey) {
		return fmt.Errorf("%s is required", flagJWTSigningKey)
	}
	if !v.IsSet(flagServiceSigningKey) {
		return fmt.Errorf("%s is required", flagServiceSigningKey)
	}

	cfg.ListenAddr = strings.TrimSpace(v.GetString(flagListenAddr))
	cfg.ReservationAddress = strings.TrimSpace(v.GetString(flagReservationAddr))
	cfg.ReservationInsecure = v.GetBool(flagReservationInsecure)
	cfg.ReservationTimeout = v.GetDuration(flagReservationTimeout)
	cfg.AllowedOrigins = httpapi.ParseAllowedOrigins(v.GetString(flagAllowedOrigins))
	cfg.SessionSigningKey = v.GetString(flagJWTSigningKey)
	cfg.SessionIssuer = strings.TrimSpace(v.GetString(flagJWTIssuer))
	cfg.SessionCookieName = strings.TrimSpace(v.GetString(flagJWTCookieName))
	cfg.ServiceSigningKey = v.GetString(flagServiceSigningKey)
	cfg.ServiceIssuer = strings.TrimSpace(v.GetString(flagServiceIssuer))

	return cfg.Validate()
}
