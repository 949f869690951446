package testutil

import (
	"context"
	"time"

	"github.com/freelancedao/backend/config"
	"github.com/freelancedao/backend/internal/entity"
	"github.com/freelancedao/backend/pkg/logger"
	"github.com/freelancedao/backend/pkg/xcontext"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	cfg := config.Configs{
		Env: "testing",
		Blockchain: config.BlockchainConfigs{
			DefaultChainID:             31337,
			SecretKey:                  "secret",
			RPCTimeout:                 time.Second,
			ConfirmationTimeout:        time.Second,
			ConfirmationInterval:       time.Millisecond,
			ReadCacheTTL:               time.Minute,
			RefreshConnectionFrequency: time.Minute,
		},
		Chains: []config.ChainConfigs{
			{
				Name:            "testing",
				ID:              31337,
				CurrencySymbol:  "ETH",
				RPCs:            []string{"http://localhost:8545"},
				EscrowAddress:   "0x5FbDB2315678afecb367f032d93F642f64180aa3",
				RegistryAddress: "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512",
			},
		},
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = xcontext.WithDB(ctx, db)

	if err := entity.MigrateTable(ctx); err != nil {
		panic(err)
	}

	return ctx
}
