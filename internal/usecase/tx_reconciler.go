package usecase

import (
	"context"
	"sync"

	"github.com/trebuchet-org/nounsgov/internal/domain"
	"github.com/trebuchet-org/nounsgov/internal/domain/models"
	"github.com/trebuchet-org/nounsgov/internal/i18n"
)

// ErrorMessageMapper turns a wallet error into user facing copy. An empty
// result falls back to the generic retry message.
type ErrorMessageMapper func(errorMessage string) string

// TrackOptions configures how one action's statuses are reconciled
type TrackOptions struct {
	// SuccessMessage overrides the per-action success copy
	SuccessMessage string
	// ErrorMessage maps exception errors; nil uses the fallback
	ErrorMessage ErrorMessageMapper
	// OnPending is called whenever the pending flag changes
	OnPending func(pending bool)
	// OnFinalState runs after success, fail or exception
	OnFinalState func(status models.TransactionStatus)
}

var successMessages = map[domain.Action]string{
	domain.ActionQueue:    i18n.MsgProposalQueued,
	domain.ActionExecute:  i18n.MsgProposalExecuted,
	domain.ActionCancel:   i18n.MsgProposalCanceled,
	domain.ActionVote:     i18n.MsgVoteSubmitted,
	domain.ActionWithdraw: i18n.MsgWithdrawalSubmitted,
}

type trackedAction struct {
	opts    TrackOptions
	last    models.TransactionStatus
	seen    bool
	pending bool
}

// TxReconciler maps transaction status changes onto pending flags and
// notifications, once per distinct status.
type TxReconciler struct {
	mu       sync.Mutex
	notifier Notifier
	tr       Translator
	actions  map[domain.Action]*trackedAction
}

// NewTxReconciler creates a reconciler reporting to notifier
func NewTxReconciler(notifier Notifier, tr Translator) *TxReconciler {
	return &TxReconciler{
		notifier: notifier,
		tr:       tr,
		actions:  make(map[domain.Action]*trackedAction),
	}
}

// Track starts a new attempt for action, resetting it to none
func (r *TxReconciler) Track(action domain.Action, opts TrackOptions) {
	r.mu.Lock()
	prev := r.actions[action]
	r.actions[action] = &trackedAction{opts: opts}
	r.mu.Unlock()

	if prev != nil && prev.pending && opts.OnPending != nil {
		opts.OnPending(false)
	}
}

// IsPending reports whether action has a transaction in flight
func (r *TxReconciler) IsPending(action domain.Action) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.actions[action]; ok {
		return t.pending
	}
	return false
}

// Status returns the last status observed for action
func (r *TxReconciler) Status(action domain.Action) models.TransactionStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.actions[action]; ok && t.seen {
		return t.last
	}
	return models.TransactionStatus{Status: models.TxStateNone}
}

// Observe applies status to action. It returns false when the status equals
// the last one observed, in which case nothing happens.
func (r *TxReconciler) Observe(action domain.Action, status models.TransactionStatus) bool {
	r.mu.Lock()
	t, ok := r.actions[action]
	if !ok {
		t = &trackedAction{}
		r.actions[action] = t
	}
	if t.seen && t.last == status {
		r.mu.Unlock()
		return false
	}
	t.last = status
	t.seen = true

	wasPending := t.pending
	pending := status.Status == models.TxStateMining
	t.pending = pending
	opts := t.opts
	r.mu.Unlock()

	// callbacks run unlocked so they may query the reconciler
	if opts.OnPending != nil && wasPending != pending {
		opts.OnPending(pending)
	}

	if !status.Status.IsFinal() {
		return true
	}
	if n, ok := r.notification(action, status, opts); ok && r.notifier != nil {
		r.notifier.Notify(n)
	}
	if opts.OnFinalState != nil {
		opts.OnFinalState(status)
	}
	return true
}

func (r *TxReconciler) notification(action domain.Action, status models.TransactionStatus, opts TrackOptions) (Notification, bool) {
	switch status.Status {
	case models.TxStateSuccess:
		msg := opts.SuccessMessage
		if msg == "" {
			msg = successMessages[action]
		}
		if msg == "" {
			msg = i18n.MsgTransactionSucceeded
		}
		return Notification{Title: r.t(i18n.MsgSuccess), Message: r.t(msg), State: status.Status}, true
	case models.TxStateFail:
		msg := status.ErrorMessage
		if msg == "" {
			msg = r.t(i18n.MsgPleaseTryAgain)
		}
		return Notification{Title: r.t(i18n.MsgTransactionFailed), Message: msg, State: status.Status}, true
	case models.TxStateException:
		msg := ""
		if opts.ErrorMessage != nil {
			msg = opts.ErrorMessage(status.ErrorMessage)
		}
		if msg == "" {
			msg = r.t(i18n.MsgPleaseTryAgain)
		}
		return Notification{Title: r.t(i18n.MsgError), Message: msg, State: status.Status}, true
	default:
		return Notification{}, false
	}
}

func (r *TxReconciler) t(key string) string {
	if r.tr == nil {
		return key
	}
	return r.tr.T(key)
}

// Await feeds every update into the reconciler until the channel closes or
// ctx is done, and returns the last status seen.
func (r *TxReconciler) Await(ctx context.Context, action domain.Action, updates <-chan models.TransactionStatus) models.TransactionStatus {
	last := models.TransactionStatus{Status: models.TxStateNone}
	for {
		select {
		case <-ctx.Done():
			return last
		case status, ok := <-updates:
			if !ok {
				return last
			}
			last = status
			r.Observe(action, status)
		}
	}
}
