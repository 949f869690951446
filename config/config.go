package config

import (
	"fmt"
	"time"
)

type Configs struct {
	Env string

	ApiServer  ServerConfigs
	Database   DatabaseConfigs
	Redis      RedisConfigs
	Blockchain BlockchainConfigs

	// Chains is the static table of networks this deployment can talk to,
	// loaded from the file named by Blockchain.ChainsFile.
	Chains []ChainConfigs
}

type ServerConfigs struct {
	Host string
	Port string
	Cert string
	Key  string
}

func (s ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type DatabaseConfigs struct {
	// Path of the sqlite database file keeping action submission records.
	Path string
}

type RedisConfigs struct {
	Addr string
}

type BlockchainConfigs struct {
	// DefaultChainID is used as a display-only fallback for read operations
	// when the requested chain is not configured. Writes never fall back.
	DefaultChainID int64

	// SecretKey seeds the session wallet key derivation.
	SecretKey string

	ChainsFile string

	RPCTimeout                 time.Duration
	ConfirmationTimeout        time.Duration
	ConfirmationInterval       time.Duration
	ReadCacheTTL               time.Duration
	RefreshConnectionFrequency time.Duration
}
