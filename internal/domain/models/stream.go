package models

import "math/big"

// StreamCreation holds the parameters of a createStream call found in a
// proposal's execution payload.
type StreamCreation struct {
	Recipient     string   `json:"recipient" yaml:"recipient"`
	StreamAmount  *big.Int `json:"streamAmount" yaml:"streamAmount"`
	TokenAddress  string   `json:"tokenAddress" yaml:"tokenAddress"`
	StartTime     int64    `json:"startTime" yaml:"startTime"`
	EndTime       int64    `json:"endTime" yaml:"endTime"`
	Nonce         uint8    `json:"nonce" yaml:"nonce"`
	StreamAddress string   `json:"streamAddress" yaml:"streamAddress"`
}

// StreamWithdrawInfo is what the withdraw action needs for a stream
type StreamWithdrawInfo struct {
	StreamAddress string   `json:"streamAddress" yaml:"streamAddress"`
	StartTime     int64    `json:"startTime" yaml:"startTime"`
	EndTime       int64    `json:"endTime" yaml:"endTime"`
	StreamAmount  *big.Int `json:"streamAmount" yaml:"streamAmount"`
	TokenAddress  string   `json:"tokenAddress" yaml:"tokenAddress"`
}
