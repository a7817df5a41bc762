package notify

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/trebuchet-org/nounsgov/internal/domain/models"
	"github.com/trebuchet-org/nounsgov/internal/usecase"
)

func TestConsoleNotifier(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	var out bytes.Buffer
	n := NewConsoleNotifier(&out)
	n.Notify(usecase.Notification{Title: "Success", Message: "Proposal Queued!", State: models.TxStateSuccess})

	got := out.String()
	assert.Contains(t, got, "Success")
	assert.Contains(t, got, "Proposal Queued!")
	assert.Contains(t, got, "╭")
}
