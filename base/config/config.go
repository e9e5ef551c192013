// Package config loads service settings from a yaml file, a .env file and
// the process environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftmarket/base/validator"
	"github.com/x-xyz/nftmarket/domain"
)

const (
	DefaultConfigFile = "infra/configs/config.yaml"
	alchemyUrlFormat  = "https://eth-%s.g.alchemy.com/v2/%s"
)

// environment names of the required on-chain-facing settings
const (
	EnvPinataJwt          = "PINATA_JWT"
	EnvPinataGatewayToken = "PINATA_GATEWAY_TOKEN"
	EnvAlchemySecret      = "ALCHEMY_SECRET"
	EnvContractAddress    = "NFTMARKETPLACE_CONTRACT_ADDRESS"
)

var envBindings = map[string]string{
	"pinata.jwt":          EnvPinataJwt,
	"pinata.gatewayToken": EnvPinataGatewayToken,
	"chain.alchemySecret": EnvAlchemySecret,
	"chain.contract":      EnvContractAddress,
	"wallet.mnemonic":     "WALLET_MNEMONIC",
	"wallet.privateKey":   "WALLET_PRIVATE_KEY",
	"discord.botToken":    "DISCORD_BOT_TOKEN",
	"datadog.host":        "DATADOG_HOST",
	"env":                 "ENV_NAME",
}

type Server struct {
	Addr            string
	ShutdownTimeout time.Duration
}

type Pinata struct {
	ApiUrl       string
	Jwt          string
	Gateway      string
	GatewayToken string
	Timeout      time.Duration
}

type Ipfs struct {
	// NodeApi is an ipfs http api address, e.g. localhost:5001. Empty reads
	// through the pinata gateway.
	NodeApi string
	Timeout time.Duration
}

type Chain struct {
	Network            string
	ChainId            int64
	RpcUrl             string
	AlchemySecret      string
	Contract           string
	MaxConcurrentCalls int
	ReceiptPoll        time.Duration
}

// Endpoint prefers an explicit rpc url over the alchemy one.
func (c Chain) Endpoint() string {
	if c.RpcUrl != "" {
		return c.RpcUrl
	}
	return fmt.Sprintf(alchemyUrlFormat, c.Network, c.AlchemySecret)
}

type Wallet struct {
	Mnemonic     string
	PrivateKey   string
	AccountIndex uint32
	Accounts     uint32
}

type Listing struct {
	DropUnresolvable bool
	Concurrency      int
}

type Metadata struct {
	CacheSizeMB int
	CacheTTL    time.Duration
}

type Flow struct {
	Timeout   time.Duration
	Retention time.Duration
}

type Discord struct {
	BotToken  string
	ChannelId string
}

type Datadog struct {
	Host string
	Port int
}

type Config struct {
	Debug    bool
	LogLevel string
	Env      string
	App      string

	Server   Server
	Pinata   Pinata
	Ipfs     Ipfs
	Chain    Chain
	Wallet   Wallet
	Listing  Listing
	Metadata Metadata
	Flow     Flow
	Discord  Discord
	Datadog  Datadog
}

// ParseFlags reads the command line and returns the config file to load.
func ParseFlags(args []string) (string, error) {
	flags := pflag.NewFlagSet("api", pflag.ContinueOnError)
	file := flags.StringP("config", "c", DefaultConfigFile, "path of the yaml config file")
	if err := flags.Parse(args); err != nil {
		return "", err
	}
	return *file, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("env", "local")
	v.SetDefault("app", "nftmarket-api")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdownTimeout", 10*time.Second)
	v.SetDefault("pinata.apiUrl", "https://api.pinata.cloud")
	v.SetDefault("pinata.gateway", "https://gateway.pinata.cloud")
	v.SetDefault("pinata.timeout", 60*time.Second)
	v.SetDefault("ipfs.timeout", 20*time.Second)
	v.SetDefault("chain.network", "sepolia")
	v.SetDefault("chain.chainId", 11155111)
	v.SetDefault("chain.maxConcurrentCalls", 8)
	v.SetDefault("chain.receiptPoll", time.Second)
	v.SetDefault("wallet.accounts", 1)
	v.SetDefault("listing.concurrency", 8)
	v.SetDefault("metadata.cacheSizeMB", 16)
	v.SetDefault("metadata.cacheTTL", time.Hour)
	v.SetDefault("flow.timeout", 5*time.Minute)
	v.SetDefault("flow.retention", 30*time.Minute)
	v.SetDefault("datadog.port", 8125)
}

// Load reads file (missing is fine), then .env files, then the environment.
func Load(v *viper.Viper, file string, envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		// godotenv never overrides variables already set
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, xerrors.Errorf("load %s: %w", f, err)
		}
	}

	setDefaults(v)
	v.SetConfigType("yaml")
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			var pathErr *fs.PathError
			if !errors.As(err, &pathErr) {
				return nil, xerrors.Errorf("read %s: %w", file, err)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, xerrors.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Validate fails with ErrConfigurationMissing naming the first absent
// on-chain-facing setting.
func (c *Config) Validate() error {
	if c.Pinata.Jwt == "" {
		return missing(EnvPinataJwt)
	}
	if _, _, err := new(jwt.Parser).ParseUnverified(c.Pinata.Jwt, jwt.MapClaims{}); err != nil {
		return xerrors.Errorf("%s is not a jwt (%s): %w", EnvPinataJwt, err.Error(), domain.ErrConfigurationMissing)
	}
	if c.Pinata.GatewayToken == "" {
		return missing(EnvPinataGatewayToken)
	}
	if c.Chain.RpcUrl == "" && c.Chain.AlchemySecret == "" {
		return missing(EnvAlchemySecret)
	}
	if c.Chain.Contract == "" {
		return missing(EnvContractAddress)
	}
	if !validator.IsValidAddress(c.Chain.Contract) {
		return xerrors.Errorf("%s=%q: %w", EnvContractAddress, c.Chain.Contract, domain.ErrContractAddressMissing)
	}
	return nil
}

// HasWallet reports whether signing key material is configured.
func (c *Config) HasWallet() bool {
	return c.Wallet.Mnemonic != "" || c.Wallet.PrivateKey != ""
}

func missing(key string) error {
	return xerrors.Errorf("%s: %w", key, domain.ErrConfigurationMissing)
}
