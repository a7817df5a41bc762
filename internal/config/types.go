package config

import (
	"time"
)

// Network is a resolved governance deployment
type Network struct {
	Name         string `json:"name" yaml:"name"`
	ChainID      uint64 `json:"chainId" yaml:"chainId"`
	RPCURL       string `json:"rpcUrl" yaml:"rpcUrl"`
	SubgraphURL  string `json:"subgraphUrl" yaml:"subgraphUrl"`
	DAOAddress   string `json:"daoAddress" yaml:"daoAddress"`
	TokenAddress string `json:"tokenAddress" yaml:"tokenAddress"`
	ExplorerURL  string `json:"explorerUrl,omitempty" yaml:"explorerUrl,omitempty"`
	WebURL       string `json:"webUrl,omitempty" yaml:"webUrl,omitempty"`
}

// Account is the wallet used for voting and proposal transitions
type Account struct {
	Address    string `json:"address,omitempty" yaml:"address,omitempty"`
	PrivateKey string `json:"privateKey,omitempty" yaml:"privateKey,omitempty"`
}

// CanSign reports whether transactions can be signed
func (a Account) CanSign() bool {
	return a.PrivateKey != ""
}

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ConfigRoot string `json:"configRoot" yaml:"configRoot"`
	ConfigPath string `json:"configPath,omitempty" yaml:"configPath,omitempty"`

	// Context settings
	Network  *Network           `json:"network" yaml:"network"`
	Networks map[string]Network `json:"-" yaml:"-"`
	Locale   string             `json:"locale" yaml:"locale"`
	Account  Account            `json:"account" yaml:"account"`

	// Execution settings
	Debug          bool          `json:"debug" yaml:"debug"`
	NonInteractive bool          `json:"nonInteractive" yaml:"nonInteractive"`
	JSON           bool          `json:"-" yaml:"-"`
	YAML           bool          `json:"-" yaml:"-"`
	Timeout        time.Duration `json:"timeout" yaml:"timeout"`
}

// Redacted returns a copy safe to print
func (c *RuntimeConfig) Redacted() *RuntimeConfig {
	out := *c
	if out.Account.PrivateKey != "" {
		out.Account.PrivateKey = "********"
	}
	return &out
}
