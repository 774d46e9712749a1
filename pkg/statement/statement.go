// Package statement exports an account's transaction history to a spreadsheet or PDF.
package statement

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/amirasaad/onlinebanking/pkg/domain/account"
	accountsvc "github.com/amirasaad/onlinebanking/pkg/service/account"
)

// Format is an export file type.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// ErrUnsupportedFormat is returned for formats other than xlsx and pdf.
var ErrUnsupportedFormat = errors.New("unsupported statement format")

// ParseFormat reads a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatXLSX, FormatPDF:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FileName returns the default statement file name for an account.
func FileName(number int, format Format, at time.Time) string {
	return fmt.Sprintf("statement_%d_%s.%s", number, at.Format("20060102-150405"), format)
}

var columns = []string{"Date", "Type", "Amount (ZMW)", "Balance After (ZMW)", "Counterparty"}

// row renders one ledger entry in column order.
func row(tx *account.Transaction) []string {
	return []string{
		tx.Timestamp,
		tx.Type.String(),
		tx.Amount.Fixed(),
		tx.BalanceAfter.Fixed(),
		Counterparty(tx),
	}
}

// Counterparty describes the other side of a transfer, or returns "".
func Counterparty(tx *account.Transaction) string {
	if !tx.HasRecipient() {
		return ""
	}
	switch tx.Type {
	case account.TypeTransfer:
		return "To Account " + strconv.Itoa(*tx.Recipient)
	case account.TypeTransferReceived:
		return "From Account " + strconv.Itoa(*tx.Recipient)
	}
	return strconv.Itoa(*tx.Recipient)
}

// Export writes details and history to path in the given format.
func Export(ctx context.Context, format Format, path string, details accountsvc.Details, history []*account.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var err error
	switch format {
	case FormatXLSX:
		err = writeXLSX(path, details, history)
	case FormatPDF:
		err = writePDF(path, details, history)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("export %s statement: %w", format, err)
	}
	return nil
}
