package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ConfigFileName is the project configuration file looked up from the
// working directory upwards
const ConfigFileName = "nounsgov.toml"

// FileConfig represents the raw nounsgov.toml structure
type FileConfig struct {
	Network  string                 `toml:"network"`
	Locale   string                 `toml:"locale"`
	Account  AccountTOML            `toml:"account"`
	Networks map[string]NetworkTOML `toml:"networks"`
}

// AccountTOML is the [account] table
type AccountTOML struct {
	Address    string `toml:"address"`
	PrivateKey string `toml:"private_key"`
}

// NetworkTOML is a [networks.<name>] table. Empty fields inherit the
// built-in network of the same name.
type NetworkTOML struct {
	ChainID      uint64 `toml:"chain_id"`
	RPCURL       string `toml:"rpc_url"`
	SubgraphURL  string `toml:"subgraph_url"`
	DAOAddress   string `toml:"dao_address"`
	TokenAddress string `toml:"token_address"`
	ExplorerURL  string `toml:"explorer_url"`
	WebURL       string `toml:"web_url"`
}

// builtinNetworks are the Nouns DAO deployments known without configuration
var builtinNetworks = map[string]Network{
	"mainnet": {
		Name:         "mainnet",
		ChainID:      1,
		RPCURL:       "https://ethereum-rpc.publicnode.com",
		SubgraphURL:  "https://api.goldsky.com/api/public/project_cldf2o9pqagp43svvbk5u3kmo/subgraphs/nouns/prod/gn",
		DAOAddress:   "0x6f3E6272A167e8AcCb32072d08E0957F9c79223d",
		TokenAddress: "0x9C8fF314C9Bc7F6e59A9d9225Fb22946427eDC03",
		ExplorerURL:  "https://etherscan.io",
		WebURL:       "https://nouns.wtf",
	},
	"sepolia": {
		Name:         "sepolia",
		ChainID:      11155111,
		RPCURL:       "https://ethereum-sepolia-rpc.publicnode.com",
		SubgraphURL:  "https://api.goldsky.com/api/public/project_cldf2o9pqagp43svvbk5u3kmo/subgraphs/nouns-sepolia-the-burn/prod/gn",
		DAOAddress:   "0x35d2670d7C8931AACdd37C89Ddcb0638c3c44A57",
		TokenAddress: "0x4C4674bb72a096855496a7204962297bd7e12b85",
		ExplorerURL:  "https://sepolia.etherscan.io",
	},
}

// FindConfigRoot walks up from dir to find nounsgov.toml. It returns "" when
// no file exists, which is not an error.
func FindConfigRoot(dir string) string {
	for {
		if _, err := os.Stat(filepath.Join(dir, ConfigFileName)); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// loadEnvFiles loads .env and .env.local from root without overriding
// variables already set
func loadEnvFiles(root string) {
	for _, name := range []string{".env", ".env.local"} {
		envFile := filepath.Join(root, name)
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// LoadFile parses nounsgov.toml and expands ${VAR} references
func LoadFile(path string) (*FileConfig, error) {
	var raw FileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("unknown keys in %s: %s", filepath.Base(path), strings.Join(keys, ", "))
	}

	raw.Network = os.ExpandEnv(raw.Network)
	raw.Locale = os.ExpandEnv(raw.Locale)
	raw.Account.Address = os.ExpandEnv(raw.Account.Address)
	raw.Account.PrivateKey = os.ExpandEnv(raw.Account.PrivateKey)
	for name, n := range raw.Networks {
		n.RPCURL = os.ExpandEnv(n.RPCURL)
		n.SubgraphURL = os.ExpandEnv(n.SubgraphURL)
		n.DAOAddress = os.ExpandEnv(n.DAOAddress)
		n.TokenAddress = os.ExpandEnv(n.TokenAddress)
		n.ExplorerURL = os.ExpandEnv(n.ExplorerURL)
		n.WebURL = os.ExpandEnv(n.WebURL)
		raw.Networks[name] = n
	}
	return &raw, nil
}

// mergeNetworks overlays file networks on the built-in ones
func mergeNetworks(file map[string]NetworkTOML) map[string]Network {
	merged := make(map[string]Network, len(builtinNetworks)+len(file))
	for name, n := range builtinNetworks {
		merged[name] = n
	}
	for name, override := range file {
		n := merged[name]
		n.Name = name
		if override.ChainID != 0 {
			n.ChainID = override.ChainID
		}
		if override.RPCURL != "" {
			n.RPCURL = override.RPCURL
		}
		if override.SubgraphURL != "" {
			n.SubgraphURL = override.SubgraphURL
		}
		if override.DAOAddress != "" {
			n.DAOAddress = override.DAOAddress
		}
		if override.TokenAddress != "" {
			n.TokenAddress = override.TokenAddress
		}
		if override.ExplorerURL != "" {
			n.ExplorerURL = override.ExplorerURL
		}
		if override.WebURL != "" {
			n.WebURL = override.WebURL
		}
		merged[name] = n
	}
	return merged
}

// NetworkNames returns the configured network names in order
func (c *RuntimeConfig) NetworkNames() []string {
	names := make([]string, 0, len(c.Networks))
	for name := range c.Networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
