package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/trebuchet-org/nounsgov/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out   io.Writer
	color bool
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, color bool) *NetworksRenderer {
	return &NetworksRenderer{
		out:   out,
		color: color,
	}
}

// RenderNetworksList renders the configured networks, marking the selected one
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	for _, status := range result.Networks {
		n := status.Network
		marker := " "
		name := n.Name
		if status.Current {
			marker = "*"
			if r.color {
				name = color.New(color.Bold).Sprint(name)
			}
		}

		switch {
		case status.Error != nil:
			fmt.Fprintf(r.out, "%s ❌ %s - Error: %v\n", marker, name, status.Error)
		case status.RemoteChainID != 0:
			fmt.Fprintf(r.out, "%s ✅ %s - Chain ID: %d\n", marker, name, status.RemoteChainID)
		default:
			fmt.Fprintf(r.out, "%s    %s - Chain ID: %d\n", marker, name, n.ChainID)
		}
		fmt.Fprintf(r.out, "      DAO %s  token %s\n", n.DAOAddress, n.TokenAddress)
	}

	return nil
}
