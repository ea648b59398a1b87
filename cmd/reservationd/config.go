package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MarkoPoloResearchLab/reservel/pkg/reservation"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagConfigFile      = "config"
	flagDatabaseURL     = "database-url"
	flagStoreDriver     = "store-driver"
	flagListenAddr      = "listen-addr"
	flagMetricsAddr     = "metrics-addr"
	flagSigningKey      = "signing-key"
	flagTokenIssuer     = "token-issuer"
	flagLocalAssets     = "local-assets"
	flagRemoteAssets    = "remote-assets"
	flagMint            = "mint"
	flagRewardUnits     = "reward-units"
	flagRewardDecimals  = "reward-decimals"
	flagAssetTimeout    = "asset-timeout"
	flagOwner           = "owner"
	flagRewardAsset     = "reward-asset"
	configKeyDatabase   = "database_url"
	configKeyListenAddr = "listen_addr"
	envPrefix           = "RESERVEL"

	storeDriverGorm = "gorm"
	storeDriverPgx  = "pgx"

	defaultDatabaseURL     = "sqlite:///tmp/reservel.db"
	defaultGRPCListenAddr  = ":7000"
	defaultMetricsAddr     = ":9464"
	defaultTokenIssuer     = "reservel"
	defaultAssetTimeout    = 5 * time.Second
	assetSpecSeparator     = ","
	remoteAssetSeparator   = "="
	mintSpecFieldSeparator = ":"
)

type runtimeConfig struct {
	DatabaseURL  string
	StoreDriver  string
	ListenAddr   string
	MetricsAddr  string
	SigningKey   string
	TokenIssuer  string
	LocalAssets  []reservation.AssetID
	RemoteAssets map[reservation.AssetID]string
	Mints        []mintSpec
	RewardPolicy reservation.RewardPolicy
	AssetTimeout time.Duration
}

type mintSpec struct {
	Asset  reservation.AssetID
	Holder reservation.Principal
	Amount reservation.Amount
}

func bindServerFlags(cmd *cobra.Command) {
	defaults := reservation.DefaultRewardPolicy()
	cmd.PersistentFlags().String(flagConfigFile, "", "optional YAML config file whose keys match the flag names")
	cmd.PersistentFlags().String(flagDatabaseURL, defaultDatabaseURL, "database URL (postgres://, sqlite:// or memory://)")
	cmd.PersistentFlags().String(flagStoreDriver, storeDriverGorm, "postgres store implementation: gorm or pgx")
	cmd.PersistentFlags().Int64(flagRewardUnits, defaults.Units, "loyalty reward in whole units")
	cmd.PersistentFlags().Uint8(flagRewardDecimals, defaults.Decimals, "decimal places of the reward asset")
	cmd.Flags().String(flagListenAddr, defaultGRPCListenAddr, "gRPC listen address")
	cmd.Flags().String(flagMetricsAddr, defaultMetricsAddr, "Prometheus metrics listen address; empty disables it")
	cmd.Flags().String(flagSigningKey, "", "HS256 key used to verify principal tokens (required)")
	cmd.Flags().String(flagTokenIssuer, defaultTokenIssuer, "expected principal token issuer")
	cmd.Flags().String(flagLocalAssets, "", "comma-separated asset ids hosted in-process")
	cmd.Flags().String(flagRemoteAssets, "", "comma-separated asset=host:port pairs reached over gRPC")
	cmd.Flags().String(flagMint, "", "comma-separated asset:holder:amount balances minted into local assets at startup")
	cmd.Flags().Duration(flagAssetTimeout, defaultAssetTimeout, "timeout for each remote asset call")
}

func newViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if flag := cmd.Flags().Lookup(flagConfigFile); flag != nil && flag.Value.String() != "" {
		v.SetConfigFile(flag.Value.String())
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	if err := v.BindEnv(configKeyDatabase, "DATABASE_URL"); err != nil {
		return nil, err
	}
	if err := v.BindEnv(configKeyListenAddr, "GRPC_LISTEN_ADDR"); err != nil {
		return nil, err
	}
	if flag := cmd.Flags().Lookup(flagDatabaseURL); flag != nil {
		if err := v.BindPFlag(configKeyDatabase, flag); err != nil {
			return nil, err
		}
	}
	if flag := cmd.Flags().Lookup(flagListenAddr); flag != nil {
		if err := v.BindPFlag(configKeyListenAddr, flag); err != nil {
			return nil, err
		}
	}
	for _, flagName := range []string{
		flagStoreDriver, flagMetricsAddr, flagSigningKey, flagTokenIssuer, flagLocalAssets,
		flagRemoteAssets, flagMint, flagRewardUnits, flagRewardDecimals, flagAssetTimeout,
		flagOwner, flagRewardAsset,
	} {
		flag := cmd.Flags().Lookup(flagName)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(flagName, flag); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// loadStoreConfig reads the settings shared by every subcommand.
func loadStoreConfig(v *viper.Viper, cfg *runtimeConfig) error {
	cfg.DatabaseURL = strings.TrimSpace(v.GetString(configKeyDatabase))
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = defaultDatabaseURL
	}
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(v.GetString(flagStoreDriver)))
	if cfg.StoreDriver == "" {
		cfg.StoreDriver = storeDriverGorm
	}
	if cfg.StoreDriver != storeDriverGorm && cfg.StoreDriver != storeDriverPgx {
		return fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
	decimals := v.GetInt64(flagRewardDecimals)
	if decimals < 0 || decimals > int64(reservation.MaxRewardDecimals) {
		return fmt.Errorf("%s must be between 0 and %d, got %d", flagRewardDecimals, reservation.MaxRewardDecimals, decimals)
	}
	cfg.RewardPolicy = reservation.RewardPolicy{
		Units:    v.GetInt64(flagRewardUnits),
		Decimals: uint8(decimals),
	}
	if _, err := cfg.RewardPolicy.Amount(); err != nil {
		return err
	}
	return nil
}

func loadServerConfig(v *viper.Viper, cfg *runtimeConfig) error {
	if err := loadStoreConfig(v, cfg); err != nil {
		return err
	}
	cfg.ListenAddr = strings.TrimSpace(v.GetString(configKeyListenAddr))
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = defaultGRPCListenAddr
	}
	cfg.MetricsAddr = strings.TrimSpace(v.GetString(flagMetricsAddr))
	cfg.SigningKey = v.GetString(flagSigningKey)
	if cfg.SigningKey == "" {
		return fmt.Errorf("%s is required", flagSigningKey)
	}
	cfg.TokenIssuer = strings.TrimSpace(v.GetString(flagTokenIssuer))
	if cfg.TokenIssuer == "" {
		cfg.TokenIssuer = defaultTokenIssuer
	}
	cfg.AssetTimeout = v.GetDuration(flagAssetTimeout)
	if cfg.AssetTimeout <= 0 {
		cfg.AssetTimeout = defaultAssetTimeout
	}

	localAssets, err := parseAssetList(v.GetString(flagLocalAssets))
	if err != nil {
		return err
	}
	cfg.LocalAssets = localAssets
	remoteAssets, err := parseRemoteAssets(v.GetString(flagRemoteAssets))
	if err != nil {
		return err
	}
	for _, assetID := range localAssets {
		if _, clash := remoteAssets[assetID]; clash {
			return fmt.Errorf("asset %s is configured both locally and remotely", assetID)
		}
	}
	cfg.RemoteAssets = remoteAssets
	mints, err := parseMints(v.GetString(flagMint))
	if err != nil {
		return err
	}
	local := make(map[reservation.AssetID]bool, len(localAssets))
	for _, assetID := range localAssets {
		local[assetID] = true
	}
	for _, mint := range mints {
		if !local[mint.Asset] {
			return fmt.Errorf("mint targets %s which is not a local asset", mint.Asset)
		}
	}
	cfg.Mints = mints
	return nil
}

func parseAssetList(raw string) ([]reservation.AssetID, error) {
	assets := []reservation.AssetID{}
	seen := map[reservation.AssetID]bool{}
	for _, part := range splitList(raw) {
		assetID, err := reservation.NewAssetID(part)
		if err != nil {
			return nil, err
		}
		if seen[assetID] {
			return nil, fmt.Errorf("asset %s listed twice", assetID)
		}
		seen[assetID] = true
		assets = append(assets, assetID)
	}
	return assets, nil
}

func parseRemoteAssets(raw string) (map[reservation.AssetID]string, error) {
	remotes := map[reservation.AssetID]string{}
	for _, part := range splitList(raw) {
		name, address, found := strings.Cut(part, remoteAssetSeparator)
		if !found || strings.TrimSpace(address) == "" {
			return nil, fmt.Errorf("remote asset %q must be asset=host:port", part)
		}
		assetID, err := reservation.NewAssetID(name)
		if err != nil {
			return nil, err
		}
		if _, exists := remotes[assetID]; exists {
			return nil, fmt.Errorf("remote asset %s listed twice", assetID)
		}
		remotes[assetID] = strings.TrimSpace(address)
	}
	return remotes, nil
}

func parseMints(raw string) ([]mintSpec, error) {
	mints := []mintSpec{}
	for _, part := range splitList(raw) {
		fields := strings.Split(part, mintSpecFieldSeparator)
		if len(fields) != 3 {
			return nil, fmt.Errorf("mint %q must be asset:holder:amount", part)
		}
		assetID, err := reservation.NewAssetID(fields[0])
		if err != nil {
			return nil, err
		}
		holder, err := reservation.NewPrincipal(fields[1])
		if err != nil {
			return nil, err
		}
		value, err := strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64)
		if err != nil || value <= 0 {
			return nil, fmt.Errorf("mint %q has an invalid amount", part)
		}
		mints = append(mints, mintSpec{Asset: assetID, Holder: holder, Amount: reservation.Amount(value)})
	}
	return mints, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, assetSpecSeparator)
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
