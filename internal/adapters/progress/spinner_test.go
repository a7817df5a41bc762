package progress

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/trebuchet-org/nounsgov/internal/usecase"
)

func TestSpinnerProgressReporter(t *testing.T) {
	var out bytes.Buffer
	r := NewSpinnerProgressReporter(&out)
	ctx := context.Background()

	r.OnProgress(ctx, usecase.ProgressEvent{Stage: "load", Message: "Loading proposal 42", Spinner: true})
	assert.Equal(t, " Loading proposal 42", r.spinner.Suffix)

	r.started = time.Now().Add(-3 * time.Second)
	r.OnProgress(ctx, usecase.ProgressEvent{Stage: "load", Message: "Still loading", Spinner: true})
	assert.Equal(t, " Still loading (3s)", r.spinner.Suffix)

	r.OnProgress(ctx, usecase.ProgressEvent{Stage: "receipt", Message: "Waiting for receipt", Spinner: true})
	assert.Equal(t, " Waiting for receipt", r.spinner.Suffix)

	r.Info("hello")

	r.OnProgress(ctx, usecase.ProgressEvent{Stage: "load"})
	assert.False(t, r.spinner.Active())
	assert.Zero(t, r.elapsed())

	r.Error("boom")
	assert.Contains(t, out.String(), "hello")
	assert.Contains(t, out.String(), "boom")
}

func TestNopSink(t *testing.T) {
	sink := NewNopSink()
	sink.OnProgress(context.Background(), usecase.ProgressEvent{Spinner: true})
	sink.Info("ignored")
	sink.Error("ignored")
}
