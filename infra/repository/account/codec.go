package account

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

const fieldsPerRecord = 5

var errBlankLine = errors.New("blank line")

// ParseLine reads one account record: "name number password balance phone".
// Fields are separated by runs of whitespace. Name, password and phone are cut to
// their maximum lengths.
func ParseLine(line string) (*accountdomain.Account, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, errBlankLine
	}
	if len(fields) != fieldsPerRecord {
		return nil, fmt.Errorf("expected %d fields, got %d", fieldsPerRecord, len(fields))
	}
	number, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("account number %q: %w", fields[1], err)
	}
	balance, err := money.Parse(fields[3])
	if err != nil {
		return nil, fmt.Errorf("balance %q: %w", fields[3], err)
	}
	return accountdomain.NewAccountFromData(
		truncate(fields[0], accountdomain.MaxNameLen),
		number,
		truncate(fields[2], accountdomain.MaxPasswordLen),
		balance,
		truncate(fields[4], accountdomain.MaxPhoneLen),
	), nil
}

// FormatLine renders one account record, newline included.
func FormatLine(a *accountdomain.Account) string {
	return fmt.Sprintf("%s %d %s %s %s\n", a.FullName, a.Number, a.Password, a.Balance.Fixed(), a.Phone)
}

// Decode reads every parseable record from r. Lines that do not parse are reported
// through skipped; blank lines are ignored.
func Decode(r io.Reader) (accounts []*accountdomain.Account, skipped []repository.SkippedLine, err error) {
	br := bufio.NewReader(r)
	for lineNo := 1; ; lineNo++ {
		line, readErr := br.ReadString('\n')
		if line != "" {
			acc, perr := ParseLine(line)
			switch {
			case perr == nil:
				accounts = append(accounts, acc)
			case errors.Is(perr, errBlankLine):
			default:
				skipped = append(skipped, repository.SkippedLine{Line: lineNo, Reason: perr.Error()})
			}
		}
		if readErr == io.EOF {
			return accounts, skipped, nil
		}
		if readErr != nil {
			return accounts, skipped, readErr
		}
	}
}

// Encode writes every account, one per line.
func Encode(w io.Writer, accounts []*accountdomain.Account) error {
	bw := bufio.NewWriter(w)
	for _, a := range accounts {
		if _, err := bw.WriteString(FormatLine(a)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
