package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultNetwork is used when neither a flag, the environment nor the
// config file names one
const DefaultNetwork = "mainnet"

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	// Get config root from viper
	configRoot := v.GetString("config_root")
	if configRoot == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		configRoot = FindConfigRoot(cwd)
		if configRoot == "" {
			configRoot = cwd
		}
	}

	loadEnvFiles(configRoot)

	file := &FileConfig{}
	configPath := filepath.Join(configRoot, ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		file, err = LoadFile(configPath)
		if err != nil {
			return nil, err
		}
	} else {
		configPath = ""
	}

	cfg := &RuntimeConfig{
		ConfigRoot:     configRoot,
		ConfigPath:     configPath,
		Networks:       mergeNetworks(file.Networks),
		Locale:         firstNonEmpty(v.GetString("locale"), file.Locale, "en-US"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		YAML:           v.GetBool("yaml"),
		Timeout:        v.GetDuration("timeout"),
	}

	// Resolve network
	networkName := firstNonEmpty(v.GetString("network"), file.Network, DefaultNetwork)
	network, ok := cfg.Networks[networkName]
	if !ok {
		return nil, fmt.Errorf("unknown network %q (configured: %s)", networkName, strings.Join(cfg.NetworkNames(), ", "))
	}
	if rpc := v.GetString("rpc_url"); rpc != "" {
		network.RPCURL = rpc
	}
	if err := validateNetwork(network); err != nil {
		return nil, err
	}
	cfg.Network = &network

	account, err := resolveAccount(
		firstNonEmpty(v.GetString("account"), file.Account.Address),
		firstNonEmpty(v.GetString("private_key"), file.Account.PrivateKey),
	)
	if err != nil {
		return nil, err
	}
	cfg.Account = account

	return cfg, nil
}

func validateNetwork(n Network) error {
	if n.RPCURL == "" {
		return fmt.Errorf("network %s: rpc_url is required", n.Name)
	}
	if n.SubgraphURL == "" {
		return fmt.Errorf("network %s: subgraph_url is required", n.Name)
	}
	if !common.IsHexAddress(n.DAOAddress) {
		return fmt.Errorf("network %s: invalid dao_address %q", n.Name, n.DAOAddress)
	}
	if !common.IsHexAddress(n.TokenAddress) {
		return fmt.Errorf("network %s: invalid token_address %q", n.Name, n.TokenAddress)
	}
	return nil
}

// resolveAccount derives the address from the private key when only the
// key is given and rejects a key that does not match the address.
func resolveAccount(address, privateKey string) (Account, error) {
	if address != "" && !common.IsHexAddress(address) {
		return Account{}, fmt.Errorf("invalid account address %q", address)
	}
	if privateKey == "" {
		if address == "" {
			return Account{}, nil
		}
		return Account{Address: common.HexToAddress(address).Hex()}, nil
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKey, "0x"))
	if err != nil {
		return Account{}, fmt.Errorf("invalid private key: %w", err)
	}
	derived := crypto.PubkeyToAddress(key.PublicKey)
	if address != "" && common.HexToAddress(address) != derived {
		return Account{}, fmt.Errorf("private key belongs to %s, not %s", derived.Hex(), address)
	}
	return Account{Address: derived.Hex(), PrivateKey: privateKey}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// SetupViper creates and configures a viper instance
func SetupViper(configRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix("NOUNSGOV")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("timeout", "2m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("config_root", configRoot)

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			panic(err)
		}
	})

	return v
}
