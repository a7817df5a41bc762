package domain

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trebuchet-org/nounsgov/internal/domain/models"
)

// CreateStreamSignature is the StreamFactory call a proposal uses to open a
// payment stream.
const CreateStreamSignature = "createStream(address,uint256,address,uint256,uint256,uint8,address)"

var createStreamArgs = mustArguments("address", "uint256", "address", "uint256", "uint256", "uint8", "address")

func mustArguments(types ...string) abi.Arguments {
	args := make(abi.Arguments, 0, len(types))
	for _, t := range types {
		typ, err := abi.NewType(t, "", nil)
		if err != nil {
			panic(err)
		}
		args = append(args, abi.Argument{Type: typ})
	}
	return args
}

// IsStreamCreation reports whether a proposal call creates a stream
func IsStreamCreation(detail models.ProposalDetail) bool {
	return strings.Contains(detail.FunctionSig, "createStream")
}

// ParseStreamCreationCallData decodes createStream arguments. It accepts the
// ABI-encoded arguments as hex (with or without the 4-byte selector) or the
// comma-separated decoded form. Malformed input yields a zero value whose
// empty recipient matches no account.
func ParseStreamCreationCallData(callData string) models.StreamCreation {
	callData = strings.TrimSpace(callData)
	if strings.HasPrefix(callData, "0x") && !strings.Contains(callData, ",") {
		return parseEncodedStreamCreation(callData)
	}
	return parseDecodedStreamCreation(callData)
}

func parseEncodedStreamCreation(callData string) models.StreamCreation {
	data, err := hexutil.Decode(callData)
	if err != nil {
		return models.StreamCreation{}
	}
	if len(data)%32 == 4 {
		data = data[4:]
	}
	values, err := createStreamArgs.Unpack(data)
	if err != nil || len(values) != len(createStreamArgs) {
		return models.StreamCreation{}
	}

	recipient, _ := values[0].(common.Address)
	amount, _ := values[1].(*big.Int)
	token, _ := values[2].(common.Address)
	start, _ := values[3].(*big.Int)
	stop, _ := values[4].(*big.Int)
	nonce, _ := values[5].(uint8)
	stream, _ := values[6].(common.Address)

	return models.StreamCreation{
		Recipient:     recipient.Hex(),
		StreamAmount:  amount,
		TokenAddress:  token.Hex(),
		StartTime:     bigToInt64(start),
		EndTime:       bigToInt64(stop),
		Nonce:         nonce,
		StreamAddress: stream.Hex(),
	}
}

func parseDecodedStreamCreation(callData string) models.StreamCreation {
	parts := strings.Split(callData, ",")
	if len(parts) < 7 {
		return models.StreamCreation{}
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	amount, ok := new(big.Int).SetString(parts[1], 10)
	if !ok {
		amount = new(big.Int)
	}
	start, _ := strconv.ParseInt(parts[3], 10, 64)
	stop, _ := strconv.ParseInt(parts[4], 10, 64)
	nonce, _ := strconv.ParseUint(parts[5], 10, 8)

	return models.StreamCreation{
		Recipient:     parts[0],
		StreamAmount:  amount,
		TokenAddress:  parts[2],
		StartTime:     start,
		EndTime:       stop,
		Nonce:         uint8(nonce),
		StreamAddress: parts[6],
	}
}

func bigToInt64(v *big.Int) int64 {
	if v == nil || !v.IsInt64() {
		return 0
	}
	return v.Int64()
}

// StreamWithdrawOffers returns a withdraw offer for each stream an executed
// proposal created for account. Streams for other recipients are skipped.
func StreamWithdrawOffers(p *models.Proposal, account string) []models.StreamWithdrawInfo {
	if p == nil || account == "" || p.Status != models.ProposalStateExecuted {
		return nil
	}
	var offers []models.StreamWithdrawInfo
	for _, detail := range p.Details {
		if !IsStreamCreation(detail) {
			continue
		}
		parsed := ParseStreamCreationCallData(detail.CallData)
		if !SameAddress(parsed.Recipient, account) {
			continue
		}
		offers = append(offers, models.StreamWithdrawInfo{
			StreamAddress: parsed.StreamAddress,
			StartTime:     parsed.StartTime,
			EndTime:       parsed.EndTime,
			StreamAmount:  parsed.StreamAmount,
			TokenAddress:  parsed.TokenAddress,
		})
	}
	return offers
}
