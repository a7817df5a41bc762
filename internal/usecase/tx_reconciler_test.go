package usecase_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/nounsgov/internal/domain"
	"github.com/trebuchet-org/nounsgov/internal/domain/models"
	"github.com/trebuchet-org/nounsgov/internal/usecase"
)

// recordingNotifier collects notifications for assertions
type recordingNotifier struct {
	mu    sync.Mutex
	items []usecase.Notification
}

func (n *recordingNotifier) Notify(item usecase.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.items = append(n.items, item)
}

func (n *recordingNotifier) all() []usecase.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]usecase.Notification(nil), n.items...)
}

func status(state models.TxState) models.TransactionStatus {
	return models.TransactionStatus{Status: state}
}

func TestTxReconciler_Transitions(t *testing.T) {
	tests := []struct {
		name        string
		action      domain.Action
		opts        usecase.TrackOptions
		final       models.TransactionStatus
		wantTitle   string
		wantMessage string
	}{
		{
			name:        "queue success",
			action:      domain.ActionQueue,
			final:       status(models.TxStateSuccess),
			wantTitle:   "Success",
			wantMessage: "Proposal Queued!",
		},
		{
			name:        "execute success",
			action:      domain.ActionExecute,
			final:       status(models.TxStateSuccess),
			wantTitle:   "Success",
			wantMessage: "Proposal Executed!",
		},
		{
			name:        "cancel success",
			action:      domain.ActionCancel,
			final:       status(models.TxStateSuccess),
			wantTitle:   "Success",
			wantMessage: "Proposal Canceled!",
		},
		{
			name:        "custom success message",
			action:      domain.ActionVote,
			opts:        usecase.TrackOptions{SuccessMessage: "Thanks for voting"},
			final:       status(models.TxStateSuccess),
			wantTitle:   "Success",
			wantMessage: "Thanks for voting",
		},
		{
			name:        "fail with message",
			action:      domain.ActionQueue,
			final:       models.TransactionStatus{Status: models.TxStateFail, ErrorMessage: "transaction reverted"},
			wantTitle:   "Transaction Failed",
			wantMessage: "transaction reverted",
		},
		{
			name:        "fail without message",
			action:      domain.ActionExecute,
			final:       status(models.TxStateFail),
			wantTitle:   "Transaction Failed",
			wantMessage: "Please try again.",
		},
		{
			name:        "exception without mapper",
			action:      domain.ActionCancel,
			final:       models.TransactionStatus{Status: models.TxStateException, ErrorMessage: "insufficient funds"},
			wantTitle:   "Error",
			wantMessage: "Please try again.",
		},
		{
			name:   "exception with mapper",
			action: domain.ActionVote,
			opts: usecase.TrackOptions{ErrorMessage: func(msg string) string {
				return "wallet said: " + msg
			}},
			final:       models.TransactionStatus{Status: models.TxStateException, ErrorMessage: "user rejected"},
			wantTitle:   "Error",
			wantMessage: "wallet said: user rejected",
		},
		{
			name:   "exception mapper returning empty",
			action: domain.ActionVote,
			opts: usecase.TrackOptions{ErrorMessage: func(string) string {
				return ""
			}},
			final:       models.TransactionStatus{Status: models.TxStateException, ErrorMessage: "boom"},
			wantTitle:   "Error",
			wantMessage: "Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &recordingNotifier{}
			r := usecase.NewTxReconciler(notifier, nil)

			var pending []bool
			var finals []models.TransactionStatus
			opts := tt.opts
			opts.OnPending = func(p bool) { pending = append(pending, p) }
			opts.OnFinalState = func(s models.TransactionStatus) { finals = append(finals, s) }
			r.Track(tt.action, opts)

			assert.True(t, r.Observe(tt.action, status(models.TxStateMining)))
			assert.True(t, r.IsPending(tt.action))

			assert.True(t, r.Observe(tt.action, tt.final))
			assert.False(t, r.IsPending(tt.action))

			require.Len(t, notifier.all(), 1)
			assert.Equal(t, tt.wantTitle, notifier.all()[0].Title)
			assert.Equal(t, tt.wantMessage, notifier.all()[0].Message)
			assert.Equal(t, tt.final.Status, notifier.all()[0].State)
			assert.Equal(t, []bool{true, false}, pending)
			assert.Equal(t, []models.TransactionStatus{tt.final}, finals)
			assert.Equal(t, tt.final, r.Status(tt.action))
		})
	}
}

func TestTxReconciler_IdempotentOnUnchangedStatus(t *testing.T) {
	notifier := &recordingNotifier{}
	r := usecase.NewTxReconciler(notifier, nil)
	finals := 0
	r.Track(domain.ActionQueue, usecase.TrackOptions{OnFinalState: func(models.TransactionStatus) { finals++ }})

	success := models.TransactionStatus{Status: models.TxStateSuccess, TxHash: "0xabc"}
	assert.True(t, r.Observe(domain.ActionQueue, success))
	assert.False(t, r.Observe(domain.ActionQueue, success))
	assert.False(t, r.Observe(domain.ActionQueue, success))

	assert.Len(t, notifier.all(), 1)
	assert.Equal(t, 1, finals)

	// a different hash is a different status
	assert.True(t, r.Observe(domain.ActionQueue, models.TransactionStatus{Status: models.TxStateSuccess, TxHash: "0xdef"}))
	assert.Len(t, notifier.all(), 2)
}

func TestTxReconciler_NoneClearsPendingWithoutNotification(t *testing.T) {
	notifier := &recordingNotifier{}
	r := usecase.NewTxReconciler(notifier, nil)

	r.Observe(domain.ActionExecute, status(models.TxStateMining))
	assert.True(t, r.IsPending(domain.ActionExecute))

	r.Observe(domain.ActionExecute, status(models.TxStateNone))
	assert.False(t, r.IsPending(domain.ActionExecute))
	assert.Empty(t, notifier.all())
}

func TestTxReconciler_ActionsAreIndependent(t *testing.T) {
	r := usecase.NewTxReconciler(&recordingNotifier{}, nil)

	r.Observe(domain.ActionQueue, status(models.TxStateMining))
	assert.True(t, r.IsPending(domain.ActionQueue))
	assert.False(t, r.IsPending(domain.ActionCancel))
	assert.Equal(t, models.TxStateNone, r.Status(domain.ActionCancel).Status)
}

func TestTxReconciler_TrackResetsAttempt(t *testing.T) {
	notifier := &recordingNotifier{}
	r := usecase.NewTxReconciler(notifier, nil)

	r.Observe(domain.ActionQueue, status(models.TxStateSuccess))
	require.Len(t, notifier.all(), 1)

	r.Track(domain.ActionQueue, usecase.TrackOptions{})
	assert.Equal(t, models.TxStateNone, r.Status(domain.ActionQueue).Status)

	// the same final status on a new attempt notifies again
	r.Observe(domain.ActionQueue, status(models.TxStateSuccess))
	assert.Len(t, notifier.all(), 2)
}

func TestTxReconciler_Translates(t *testing.T) {
	notifier := &recordingNotifier{}
	r := usecase.NewTxReconciler(notifier, upperTranslator{})

	r.Observe(domain.ActionWithdraw, status(models.TxStateSuccess))
	require.Len(t, notifier.all(), 1)
	assert.Equal(t, "SUCCESS", notifier.all()[0].Title)
	assert.Equal(t, "WITHDRAWAL SUBMITTED!", notifier.all()[0].Message)
}

func TestTxReconciler_Await(t *testing.T) {
	notifier := &recordingNotifier{}
	r := usecase.NewTxReconciler(notifier, nil)

	updates := make(chan models.TransactionStatus, 3)
	updates <- models.TransactionStatus{Status: models.TxStateMining, TxHash: "0x1"}
	updates <- models.TransactionStatus{Status: models.TxStateMining, TxHash: "0x1"}
	updates <- models.TransactionStatus{Status: models.TxStateSuccess, TxHash: "0x1", BlockNumber: 10}
	close(updates)

	last := r.Await(context.Background(), domain.ActionExecute, updates)
	assert.Equal(t, models.TxStateSuccess, last.Status)
	assert.Equal(t, uint64(10), last.BlockNumber)
	assert.Len(t, notifier.all(), 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	last = r.Await(ctx, domain.ActionExecute, make(chan models.TransactionStatus))
	assert.Equal(t, models.TxStateNone, last.Status)
}

func TestTxReconciler_ConcurrentObserve(t *testing.T) {
	notifier := &recordingNotifier{}
	r := usecase.NewTxReconciler(notifier, nil)

	final := models.TransactionStatus{Status: models.TxStateSuccess, TxHash: "0xfeed"}
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Observe(domain.ActionVote, final)
			_ = r.IsPending(domain.ActionVote)
		}()
	}
	wg.Wait()

	assert.Len(t, notifier.all(), 1)
}
