package domain

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/nounsgov/internal/domain/models"
)

var (
	recipient     = common.HexToAddress("0x1111111111111111111111111111111111111111")
	usdc          = common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")
	streamAddress = common.HexToAddress("0x2222222222222222222222222222222222222222")
)

func encodeCreateStream(t *testing.T, withSelector bool) string {
	t.Helper()
	packed, err := createStreamArgs.Pack(
		recipient,
		big.NewInt(5_000_000),
		usdc,
		big.NewInt(1700000000),
		big.NewInt(1710000000),
		uint8(3),
		streamAddress,
	)
	require.NoError(t, err)
	if withSelector {
		selector := crypto.Keccak256([]byte(CreateStreamSignature))[:4]
		packed = append(selector, packed...)
	}
	return hexutil.Encode(packed)
}

func TestParseStreamCreationCallData_Encoded(t *testing.T) {
	for _, withSelector := range []bool{false, true} {
		parsed := ParseStreamCreationCallData(encodeCreateStream(t, withSelector))
		assert.Equal(t, recipient.Hex(), parsed.Recipient)
		assert.Equal(t, usdc.Hex(), parsed.TokenAddress)
		assert.Equal(t, streamAddress.Hex(), parsed.StreamAddress)
		assert.Equal(t, int64(1700000000), parsed.StartTime)
		assert.Equal(t, int64(1710000000), parsed.EndTime)
		assert.Equal(t, uint8(3), parsed.Nonce)
		assert.Equal(t, 0, parsed.StreamAmount.Cmp(big.NewInt(5_000_000)))
	}
}

func TestParseStreamCreationCallData_Decoded(t *testing.T) {
	parsed := ParseStreamCreationCallData(strings.Join([]string{
		recipient.Hex(), "5000000", usdc.Hex(), "1700000000", "1710000000", "3", streamAddress.Hex(),
	}, ","))
	assert.Equal(t, recipient.Hex(), parsed.Recipient)
	assert.Equal(t, streamAddress.Hex(), parsed.StreamAddress)
	assert.Equal(t, int64(1710000000), parsed.EndTime)
}

func TestParseStreamCreationCallData_Malformed(t *testing.T) {
	for _, input := range []string{"", "0x", "0xzz", "a,b,c", "0x1234"} {
		parsed := ParseStreamCreationCallData(input)
		assert.Empty(t, parsed.Recipient, input)
	}
}

func TestStreamWithdrawOffers(t *testing.T) {
	p := &models.Proposal{
		ID:     "9",
		Status: models.ProposalStateExecuted,
		Details: []models.ProposalDetail{
			{FunctionSig: "transfer(address,uint256)", CallData: "0x"},
			{FunctionSig: CreateStreamSignature, CallData: encodeCreateStream(t, false)},
		},
	}

	t.Run("recipient sees the offer", func(t *testing.T) {
		offers := StreamWithdrawOffers(p, strings.ToLower(recipient.Hex()))
		require.Len(t, offers, 1)
		assert.Equal(t, streamAddress.Hex(), offers[0].StreamAddress)
		assert.Equal(t, usdc.Hex(), offers[0].TokenAddress)
	})

	t.Run("other wallets see nothing", func(t *testing.T) {
		assert.Empty(t, StreamWithdrawOffers(p, "0x3333333333333333333333333333333333333333"))
		assert.Empty(t, StreamWithdrawOffers(p, ""))
	})

	t.Run("only executed proposals", func(t *testing.T) {
		queued := *p
		queued.Status = models.ProposalStateQueued
		assert.Empty(t, StreamWithdrawOffers(&queued, recipient.Hex()))
	})
}
