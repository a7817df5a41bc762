package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/trebuchet-org/nounsgov/internal/usecase"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// getRelativePath returns the relative path from current directory
func getRelativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	relPath, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return relPath
}

// RenderConfig renders the resolved configuration
func (r *ConfigRenderer) RenderConfig(result *usecase.ShowConfigResult) error {
	cfg := result.Config

	if result.Exists {
		fmt.Fprintf(r.out, "📁 Config file: %s\n", getRelativePath(result.ConfigPath))
	} else {
		fmt.Fprintln(r.out, "⚠️  No nounsgov.toml found, using built-in defaults")
	}
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, "📋 Current config:")
	if cfg.Network != nil {
		fmt.Fprintf(r.out, "Network:   %s (chain %d)\n", cfg.Network.Name, cfg.Network.ChainID)
		fmt.Fprintf(r.out, "RPC:       %s\n", cfg.Network.RPCURL)
		fmt.Fprintf(r.out, "Subgraph:  %s\n", cfg.Network.SubgraphURL)
		fmt.Fprintf(r.out, "DAO:       %s\n", cfg.Network.DAOAddress)
		fmt.Fprintf(r.out, "Token:     %s\n", cfg.Network.TokenAddress)
	}
	fmt.Fprintf(r.out, "Locale:    %s\n", cfg.Locale)

	if cfg.Account.Address != "" {
		fmt.Fprintf(r.out, "Account:   %s\n", cfg.Account.Address)
	} else {
		fmt.Fprintf(r.out, "Account:   %s\n", "(not set)")
	}
	if cfg.Account.PrivateKey != "" {
		fmt.Fprintf(r.out, "Key:       %s\n", cfg.Account.PrivateKey)
	}
	fmt.Fprintf(r.out, "Timeout:   %s\n", cfg.Timeout)
	return nil
}
