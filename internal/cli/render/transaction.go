package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/nounsgov/internal/domain/models"
	"github.com/trebuchet-org/nounsgov/internal/usecase"
)

// TransactionRenderer summarizes a submitted transaction after its
// notification has been shown
type TransactionRenderer struct {
	out         io.Writer
	explorerURL string
}

// NewTransactionRenderer creates a new transaction renderer
func NewTransactionRenderer(out io.Writer, explorerURL string) *TransactionRenderer {
	return &TransactionRenderer{
		out:         out,
		explorerURL: explorerURL,
	}
}

var _ Renderer[*usecase.TransactionResult] = (*TransactionRenderer)(nil)

// Render writes the outcome of one action
func (r *TransactionRenderer) Render(result *usecase.TransactionResult) error {
	if result.Aborted {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("%s aborted", result.Action.Label())))
		return nil
	}

	status := result.Status
	switch status.Status {
	case models.TxStateSuccess:
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s confirmed in block %d", result.Action.Label(), status.BlockNumber)))
	case models.TxStateFail:
		fmt.Fprintln(r.out, FormatError(fmt.Sprintf("%s reverted", result.Action.Label())))
	case models.TxStateException:
		fmt.Fprintln(r.out, FormatError(status.ErrorMessage))
	}

	if status.TxHash != "" {
		fmt.Fprintf(r.out, "Transaction: %s\n", status.TxHash)
		if r.explorerURL != "" {
			fmt.Fprintf(r.out, "Explorer:    %s/tx/%s\n", r.explorerURL, status.TxHash)
		}
	}
	return nil
}
