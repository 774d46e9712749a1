package transaction

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	accountdomain "github.com/amirasaad/onlinebanking/pkg/domain/account"
	"github.com/amirasaad/onlinebanking/pkg/money"
	"github.com/amirasaad/onlinebanking/pkg/repository"
)

const (
	separator = "|"
	minFields = 5
)

var errBlankLine = errors.New("blank line")

// ParseLine reads one ledger record: "number|type|amount|balance_after|timestamp|recipient".
// The recipient field may be missing or empty.
func ParseLine(line string) (*accountdomain.Transaction, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, errBlankLine
	}
	parts := strings.Split(line, separator)
	if len(parts) < minFields {
		return nil, fmt.Errorf("expected at least %d fields, got %d", minFields, len(parts))
	}
	number, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("account number %q: %w", parts[0], err)
	}
	amount, err := money.Parse(parts[2])
	if err != nil {
		return nil, fmt.Errorf("amount %q: %w", parts[2], err)
	}
	balance, err := money.Parse(parts[3])
	if err != nil {
		return nil, fmt.Errorf("balance after %q: %w", parts[3], err)
	}
	tx := &accountdomain.Transaction{
		AccountNumber: number,
		Type:          accountdomain.TransactionType(parts[1]),
		Amount:        amount,
		BalanceAfter:  balance,
		Timestamp:     parts[4],
	}
	if len(parts) > minFields {
		if raw := strings.TrimSpace(parts[5]); raw != "" {
			recipient, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("recipient %q: %w", parts[5], err)
			}
			tx.WithRecipient(recipient)
		}
	}
	return tx, nil
}

// FormatLine renders one ledger record, newline included.
func FormatLine(tx *accountdomain.Transaction) string {
	recipient := ""
	if tx.HasRecipient() {
		recipient = strconv.Itoa(*tx.Recipient)
	}
	return strings.Join([]string{
		strconv.Itoa(tx.AccountNumber),
		tx.Type.String(),
		tx.Amount.Repr(),
		tx.BalanceAfter.Repr(),
		tx.Timestamp,
		recipient,
	}, separator) + "\n"
}

// Decode reads every parseable record from r, reporting lines that do not parse.
func Decode(r io.Reader) (txs []*accountdomain.Transaction, skipped []repository.SkippedLine, err error) {
	br := bufio.NewReader(r)
	for lineNo := 1; ; lineNo++ {
		line, readErr := br.ReadString('\n')
		if line != "" {
			tx, perr := ParseLine(line)
			switch {
			case perr == nil:
				txs = append(txs, tx)
			case errors.Is(perr, errBlankLine):
			default:
				skipped = append(skipped, repository.SkippedLine{Line: lineNo, Reason: perr.Error()})
			}
		}
		if readErr == io.EOF {
			return txs, skipped, nil
		}
		if readErr != nil {
			return txs, skipped, readErr
		}
	}
}
