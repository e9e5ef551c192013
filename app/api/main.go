package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/x-xyz/nftmarket/base/config"
	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/base/log"
	"github.com/x-xyz/nftmarket/base/metrics"
	bValidator "github.com/x-xyz/nftmarket/base/validator"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/market"
	"github.com/x-xyz/nftmarket/domain/wallet"
	mmiddleware "github.com/x-xyz/nftmarket/middleware"
	"github.com/x-xyz/nftmarket/service/announcer"
	"github.com/x-xyz/nftmarket/service/cache"
	"github.com/x-xyz/nftmarket/service/cache/provider/primitive"
	"github.com/x-xyz/nftmarket/service/chain"
	"github.com/x-xyz/nftmarket/service/chain/contract"
	"github.com/x-xyz/nftmarket/service/pinata"
	hdwallet "github.com/x-xyz/nftmarket/service/wallet"
	appstate_delivery "github.com/x-xyz/nftmarket/stores/appstate/delivery/http"
	appstate_usecase "github.com/x-xyz/nftmarket/stores/appstate/usecase"
	event_usecase "github.com/x-xyz/nftmarket/stores/event/usecase"
	flow_delivery "github.com/x-xyz/nftmarket/stores/flow/delivery/http"
	flow_usecase "github.com/x-xyz/nftmarket/stores/flow/usecase"
	hc_delivery "github.com/x-xyz/nftmarket/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/nftmarket/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/nftmarket/stores/healthcheck/usecase"
	listing_usecase "github.com/x-xyz/nftmarket/stores/listing/usecase"
	market_delivery "github.com/x-xyz/nftmarket/stores/market/delivery/http"
	market_usecase "github.com/x-xyz/nftmarket/stores/market/usecase"
	metadata_repository "github.com/x-xyz/nftmarket/stores/metadata/repository"
	metadata_usecase "github.com/x-xyz/nftmarket/stores/metadata/usecase"
	wallet_delivery "github.com/x-xyz/nftmarket/stores/wallet/delivery/http"
	wallet_usecase "github.com/x-xyz/nftmarket/stores/wallet/usecase"

	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/x-xyz/nftmarket/app/api/docs"
)

//	@title			NFT Marketplace API
//	@version		1.0
//	@description	Browse, mint, buy and resell tokens of the marketplace contract.

// main
func main() {
	context := ctx.Background()

	file, err := config.ParseFlags(os.Args[1:])
	if err != nil {
		context.WithField("err", err).Panic("config.ParseFlags failed")
	}
	cfg, err := config.Load(viper.New(), file, ".env")
	if err != nil {
		context.WithField("err", err).Panic("config.Load failed")
	}
	if err := cfg.Validate(); err != nil {
		context.WithField("err", err).Panic("invalid config")
	}

	log.SetLevel(cfg.LogLevel)
	if cfg.Debug {
		log.SetLevel("debug")
		context.Info("Service RUN on DEBUG mode")
	}
	metrics.Configure(metrics.Config{
		DatadogHost: cfg.Datadog.Host,
		DatadogPort: cfg.Datadog.Port,
		Env:         cfg.Env,
		App:         cfg.App,
	})

	// init echo
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/ws/state"
		},
	}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(bValidator.New())

	// init chain client
	context.WithField("chainId", cfg.Chain.ChainId).Info("init chain client")
	client, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrl:             cfg.Chain.Endpoint(),
		ChainId:            cfg.Chain.ChainId,
		MaxConcurrentCalls: cfg.Chain.MaxConcurrentCalls,
	})
	if err != nil {
		context.WithField("err", err).Panic("chain.NewClient failed")
	}

	// init signing provider
	var provider wallet.SigningProvider
	if cfg.HasWallet() {
		hd, err := hdwallet.NewProvider(&hdwallet.ProviderCfg{
			Mnemonic:     cfg.Wallet.Mnemonic,
			PrivateKey:   cfg.Wallet.PrivateKey,
			Accounts:     cfg.Wallet.Accounts,
			AccountIndex: cfg.Wallet.AccountIndex,
			ChainId:      client.ChainId(),
		})
		if err != nil {
			context.WithField("err", err).Panic("wallet.NewProvider failed")
		}
		provider = hd
	} else {
		context.Warn("no wallet configured, writes are disabled")
	}

	binding, err := contract.NewMarketplace(&contract.MarketplaceCfg{
		Client:      client,
		Address:     cfg.Chain.Contract,
		Wallet:      provider,
		ReadOnly:    provider == nil,
		ReceiptPoll: cfg.Chain.ReceiptPoll,
	})
	if err != nil {
		context.WithField("err", err).Panic("contract.NewMarketplace failed")
	}

	// init pinata
	httpClient := &http.Client{}
	pinataClient := pinata.New(&pinata.ServiceCfg{
		HttpClient:   httpClient,
		ApiUrl:       cfg.Pinata.ApiUrl,
		Jwt:          cfg.Pinata.Jwt,
		Gateway:      cfg.Pinata.Gateway,
		GatewayToken: cfg.Pinata.GatewayToken,
		Timeout:      cfg.Pinata.Timeout,
	})

	// init metadata readers
	var ipfsReader domain.WebResourceReaderRepository
	if cfg.Ipfs.NodeApi != "" {
		context.WithField("nodeApi", cfg.Ipfs.NodeApi).Info("reading ipfs through node api")
		ipfsReader = metadata_repository.NewIpfsNodeApiReaderRepo(ipfsapi.NewShell(cfg.Ipfs.NodeApi), cfg.Ipfs.Timeout)
	} else {
		ipfsReader = metadata_repository.NewIpfsGatewayReaderRepo(httpClient, pinataClient.ResolveURL, cfg.Ipfs.Timeout)
	}
	metadataCache := cache.New(cache.ServiceConfig{
		Ttl:   cfg.Metadata.CacheTTL,
		Pfx:   "metadata",
		Cache: primitive.NewPrimitive("metadata", cfg.Metadata.CacheSizeMB),
	})
	metadata := metadata_usecase.NewMetadataUseCase(&metadata_usecase.MetadataUseCaseCfg{
		HttpReader: metadata_repository.NewHttpReaderRepo(httpClient, cfg.Ipfs.Timeout, nil),
		IpfsReader: ipfsReader,
		Cache:      metadataCache,
	})

	// init usecases
	store := appstate_usecase.NewStore()
	assembler := listing_usecase.NewAssembler(&listing_usecase.AssemblerCfg{
		Metadata:         metadata,
		Gateway:          pinataClient,
		Concurrency:      cfg.Listing.Concurrency,
		DropUnresolvable: cfg.Listing.DropUnresolvable,
	})
	connection := wallet_usecase.NewConnectionUseCase(&wallet_usecase.ConnectionUseCaseCfg{
		Provider: provider,
		Store:    store,
	})
	if _, err := connection.Check(context); err != nil {
		context.WithField("err", err).Warn("connection.Check failed")
	}
	unwatch := connection.Watch(context)
	defer unwatch()

	flows := flow_usecase.NewRegistry(&flow_usecase.RegistryCfg{
		Timeout:   cfg.Flow.Timeout,
		Retention: cfg.Flow.Retention,
	})

	var announce market.Announcer
	if cfg.Discord.BotToken != "" {
		announce, err = announcer.NewDiscord(&announcer.DiscordCfg{
			BotToken:  cfg.Discord.BotToken,
			ChannelId: cfg.Discord.ChannelId,
		})
		if err != nil {
			context.WithField("err", err).Panic("announcer.NewDiscord failed")
		}
	}

	marketplace := market_usecase.New(&market_usecase.MarketUseCaseCfg{
		Contract:  binding,
		Assembler: assembler,
		Gateway:   pinataClient,
		Resolver:  event_usecase.NewResolver(),
		Store:     store,
		Flows:     flows,
		Announcer: announce,
	})
	hc := hc_usecase.New(hc_repo.New(client))

	hc_delivery.New(e, hc)
	market_delivery.New(e, marketplace)
	flow_delivery.New(e, flows)
	wallet_delivery.New(e, connection)
	appstate_delivery.New(e, store)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(cfg.Server.Addr); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	timeout := cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := ctx.WithTimeout(context, timeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
