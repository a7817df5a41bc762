package bindings

import (
	"fmt"
	"math/big"
	"strings"
)

// ProposalID converts a decimal proposal id into its uint256 argument
func ProposalID(id string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(id), 10)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("invalid proposal id %q", id)
	}
	return v, nil
}
