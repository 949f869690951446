package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

type ChainConfigs struct {
	Name            string   `toml:"name"`
	ID              int64    `toml:"id"`
	CurrencySymbol  string   `toml:"currency_symbol"`
	ExplorerURL     string   `toml:"explorer_url"`
	RPCs            []string `toml:"rpcs"`
	EscrowAddress   string   `toml:"escrow_address"`
	RegistryAddress string   `toml:"registry_address"`
}

type chainsFile struct {
	Chain []ChainConfigs `toml:"chain"`
}

// LoadChains reads the chain table from a TOML file. Every entry must carry
// both contract addresses and at least one RPC url.
func LoadChains(path string) ([]ChainConfigs, error) {
	var f chainsFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, err
	}

	for _, c := range f.Chain {
		if c.ID == 0 {
			return nil, fmt.Errorf("chain %s has no id", c.Name)
		}

		if c.EscrowAddress == "" || c.RegistryAddress == "" {
			return nil, fmt.Errorf("chain %s misses a contract address", c.Name)
		}

		if len(c.RPCs) == 0 {
			return nil, fmt.Errorf("chain %s has no rpc url", c.Name)
		}
	}

	return f.Chain, nil
}
