package blockchain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/nounsgov/internal/config"
	"github.com/trebuchet-org/nounsgov/internal/domain/bindings"
	"github.com/trebuchet-org/nounsgov/internal/domain/models"
	"github.com/trebuchet-org/nounsgov/internal/usecase"
)

// Reader reads live governance state from the DAO, token and stream contracts
type Reader struct {
	conn  *Connection
	dao   common.Address
	token common.Address

	daoABI    *bindings.NounsDAO
	tokenABI  *bindings.NounsToken
	streamABI *bindings.Stream
}

// NewReader creates a contract reader for the selected network
func NewReader(conn *Connection, cfg *config.RuntimeConfig) *Reader {
	return &Reader{
		conn:      conn,
		dao:       common.HexToAddress(cfg.Network.DAOAddress),
		token:     common.HexToAddress(cfg.Network.TokenAddress),
		daoABI:    bindings.NewNounsDAO(),
		tokenABI:  bindings.NewNounsToken(),
		streamABI: bindings.NewStream(),
	}
}

var _ usecase.GovernanceReader = (*Reader)(nil)

// BlockNumber returns the latest block number
func (r *Reader) BlockNumber(ctx context.Context) (uint64, error) {
	backend, err := r.conn.Backend(ctx)
	if err != nil {
		return 0, err
	}
	n, err := backend.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get block number: %w", err)
	}
	return n, nil
}

// ProposalState reads DAO.state(proposalId)
func (r *Reader) ProposalState(ctx context.Context, id string) (models.ProposalState, error) {
	pid, err := bindings.ProposalID(id)
	if err != nil {
		return models.ProposalStateUndetermined, err
	}
	out, err := r.call(ctx, r.dao, r.daoABI.PackState(pid))
	if err != nil {
		return models.ProposalStateUndetermined, fmt.Errorf("state(%s): %w", id, err)
	}
	state, err := r.daoABI.UnpackState(out)
	if err != nil {
		return models.ProposalStateUndetermined, fmt.Errorf("state(%s): %w", id, err)
	}
	return models.ProposalState(state), nil
}

// QuorumVotes reads DAO.quorumVotes(proposalId)
func (r *Reader) QuorumVotes(ctx context.Context, id string) (uint64, error) {
	pid, err := bindings.ProposalID(id)
	if err != nil {
		return 0, err
	}
	out, err := r.call(ctx, r.dao, r.daoABI.PackQuorumVotes(pid))
	if err != nil {
		return 0, fmt.Errorf("quorumVotes(%s): %w", id, err)
	}
	votes, err := r.daoABI.UnpackQuorumVotes(out)
	if err != nil {
		return 0, fmt.Errorf("quorumVotes(%s): %w", id, err)
	}
	return toUint64(votes)
}

// PriorVotes reads Token.getPriorVotes(account, block)
func (r *Reader) PriorVotes(ctx context.Context, account string, block uint64) (uint64, error) {
	if !common.IsHexAddress(account) {
		return 0, fmt.Errorf("invalid account address %q", account)
	}
	data := r.tokenABI.PackGetPriorVotes(common.HexToAddress(account), new(big.Int).SetUint64(block))
	out, err := r.call(ctx, r.token, data)
	if err != nil {
		return 0, fmt.Errorf("getPriorVotes(%s, %d): %w", account, block, err)
	}
	votes, err := r.tokenABI.UnpackGetPriorVotes(out)
	if err != nil {
		return 0, fmt.Errorf("getPriorVotes(%s, %d): %w", account, block, err)
	}
	return toUint64(votes)
}

// StreamBalance reads Stream.balanceOf(account)
func (r *Reader) StreamBalance(ctx context.Context, stream, account string) (*big.Int, error) {
	if !common.IsHexAddress(stream) {
		return nil, fmt.Errorf("invalid stream address %q", stream)
	}
	if !common.IsHexAddress(account) {
		return nil, fmt.Errorf("invalid account address %q", account)
	}
	out, err := r.call(ctx, common.HexToAddress(stream), r.streamABI.PackBalanceOf(common.HexToAddress(account)))
	if err != nil {
		return nil, fmt.Errorf("balanceOf(%s): %w", account, err)
	}
	return r.streamABI.UnpackBalanceOf(out)
}

func (r *Reader) call(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
	backend, err := r.conn.Backend(ctx)
	if err != nil {
		return nil, err
	}
	return backend.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
}

func toUint64(v *big.Int) (uint64, error) {
	if v == nil || v.Sign() < 0 || !v.IsUint64() {
		return 0, fmt.Errorf("value %v out of range", v)
	}
	return v.Uint64(), nil
}
