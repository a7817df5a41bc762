package models

// TxState is the lifecycle of a wallet transaction as observed by the CLI
type TxState string

const (
	TxStateNone      TxState = "None"
	TxStateMining    TxState = "Mining"
	TxStateSuccess   TxState = "Success"
	TxStateFail      TxState = "Fail"
	TxStateException TxState = "Exception"
)

// IsFinal reports whether no further transitions follow without a new attempt
func (s TxState) IsFinal() bool {
	return s == TxStateSuccess || s == TxStateFail || s == TxStateException
}

// TransactionStatus is a snapshot of a submitted transaction
type TransactionStatus struct {
	Status       TxState `json:"status" yaml:"status"`
	TxHash       string  `json:"txHash,omitempty" yaml:"txHash,omitempty"`
	BlockNumber  uint64  `json:"blockNumber,omitempty" yaml:"blockNumber,omitempty"`
	ErrorMessage string  `json:"errorMessage,omitempty" yaml:"errorMessage,omitempty"`
}
