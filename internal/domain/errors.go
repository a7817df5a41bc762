package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested proposal or record doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrFetchFailed wraps any failure to load data the vote page depends on
	ErrFetchFailed = errors.New("failed to fetch")

	// ErrNoAccount is returned when an action needs a wallet and none is configured
	ErrNoAccount = errors.New("no account configured")

	// ErrActionUnavailable is returned when the proposal state does not permit an action
	ErrActionUnavailable = errors.New("action unavailable")

	// ErrInvalidProposalID is returned when a proposal id is not a decimal integer
	ErrInvalidProposalID = errors.New("invalid proposal id")

	// ErrUnsupportedLocale is returned when a locale has no message catalog
	ErrUnsupportedLocale = errors.New("unsupported locale")
)

// ActionUnavailableErr explains why an action cannot be taken on a proposal
type ActionUnavailableErr struct {
	Action     Action
	ProposalID string
	// Subject replaces "proposal <id>" for actions on other targets
	Subject string
	Reason  string
}

func (e ActionUnavailableErr) Error() string {
	subject := e.Subject
	if subject == "" {
		subject = "proposal " + e.ProposalID
	}
	return fmt.Sprintf("cannot %s %s: %s", e.Action.Verb(), subject, e.Reason)
}

func (e ActionUnavailableErr) Unwrap() error {
	return ErrActionUnavailable
}

// GraphQLErr carries the errors array of a subgraph response
type GraphQLErr struct {
	Query    string
	Messages []string
}

func (e GraphQLErr) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("graphql %s: unknown error", e.Query)
	}
	return fmt.Sprintf("graphql %s: %s", e.Query, strings.Join(e.Messages, "; "))
}
