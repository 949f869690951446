package main

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/freelancedao/backend/config"
	"github.com/freelancedao/backend/internal/chain"
	"github.com/freelancedao/backend/internal/domain"
	"github.com/freelancedao/backend/internal/entity"
	"github.com/freelancedao/backend/internal/repository"
	"github.com/freelancedao/backend/pkg/logger"
	"github.com/freelancedao/backend/pkg/router"
	"github.com/freelancedao/backend/pkg/xcontext"
	"github.com/freelancedao/backend/pkg/xredis"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App
	ctx context.Context

	configs *config.Configs
	logger  logger.Logger
	db      *gorm.DB

	clients   map[int64]chain.EvmClient
	cache     chain.ReadCache
	resources *chain.ResourceClient
	signer    chain.Signer
	submitter *chain.Submitter
	tracker   *chain.Tracker

	actionRepo repository.ActionRepository

	projectDomain domain.ProjectDomain
	userDomain    domain.UserDomain
	actionDomain  domain.ActionDomain

	router *router.Router
	server *http.Server
}

func (s *srv) loadConfig() {
	s.configs = &config.Configs{
		Env: getEnv("ENV", "local"),
		ApiServer: config.ServerConfigs{
			Host: getEnv("HOST", "localhost"),
			Port: getEnv("PORT", "8080"),
			Cert: getEnv("SERVER_CERT", ""),
			Key:  getEnv("SERVER_KEY", ""),
		},
		Database: config.DatabaseConfigs{
			Path: getEnv("DATABASE_PATH", "freelancedao.db"),
		},
		Redis: config.RedisConfigs{
			Addr: getEnv("REDIS_ADDRESS", ""),
		},
		Blockchain: config.BlockchainConfigs{
			DefaultChainID:             getEnvInt64("DEFAULT_CHAIN_ID", 31337),
			SecretKey:                  getEnv("BLOCKCHAIN_SECRET_KEY", "secret"),
			ChainsFile:                 getEnv("CHAINS_FILE", "chains.toml"),
			RPCTimeout:                 getEnvDuration("RPC_TIMEOUT", 5*time.Second),
			ConfirmationTimeout:        getEnvDuration("CONFIRMATION_TIMEOUT", 2*time.Minute),
			ConfirmationInterval:       getEnvDuration("CONFIRMATION_INTERVAL", 2*time.Second),
			ReadCacheTTL:               getEnvDuration("READ_CACHE_TTL", 15*time.Second),
			RefreshConnectionFrequency: getEnvDuration("REFRESH_CONNECTION_FREQUENCY", 10*time.Minute),
		},
	}

	chains, err := config.LoadChains(s.configs.Blockchain.ChainsFile)
	if err != nil {
		panic(err)
	}

	s.configs.Chains = chains
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if s.configs.Env == "local" {
		level = logger.DEBUG
	}

	s.logger = logger.NewLogger(level)
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(sqlite.Open(s.configs.Database.Path), &gorm.Config{})
	if err != nil {
		panic(err)
	}
}

func (s *srv) newContext() context.Context {
	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, *s.configs)
	ctx = xcontext.WithLogger(ctx, s.logger)
	ctx = xcontext.WithDB(ctx, s.db)
	return ctx
}

func (s *srv) migrateDB() {
	if err := entity.MigrateTable(s.ctx); err != nil {
		panic(err)
	}
}

func (s *srv) loadRepos() {
	s.actionRepo = repository.NewActionRepository()
}

func (s *srv) loadCache() {
	if s.configs.Redis.Addr == "" {
		s.cache = chain.NewMemoryCache()
		return
	}

	redisClient, err := xredis.NewClient(s.ctx)
	if err != nil {
		panic(err)
	}

	s.cache = chain.NewRedisCache(redisClient)
}

func (s *srv) loadChainLayer() {
	s.clients = make(map[int64]chain.EvmClient)
	for _, cfg := range s.configs.Chains {
		client := chain.NewEvmClient(cfg)
		client.Start(s.ctx)
		s.clients[cfg.ID] = client
	}

	s.resources = chain.NewResourceClient(s.clients, s.cache)
	s.signer = chain.NewSessionWalletSigner()
	s.submitter = chain.NewSubmitter(s.resources, s.signer, s.actionRepo)
	s.tracker = chain.NewTracker(s.clients, s.resources, s.actionRepo)
}

func (s *srv) loadDomains() {
	s.projectDomain = domain.NewProjectDomain(s.resources, s.submitter, s.signer)
	s.userDomain = domain.NewUserDomain(s.resources, s.submitter)
	s.actionDomain = domain.NewActionDomain(s.actionRepo)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		panic(err)
	}

	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		panic(err)
	}

	return parsed
}
