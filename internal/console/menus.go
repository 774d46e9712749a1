package console

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	accountsvc "github.com/amirasaad/onlinebanking/pkg/service/account"
	"github.com/amirasaad/onlinebanking/pkg/service/auth"
	"github.com/amirasaad/onlinebanking/pkg/statement"
)

func (c *Console) welcome(ctx context.Context) error {
	c.header("ONLINE BANKING SYSTEM")
	c.println("1. Register New Account")
	c.println("2. Login to Account")
	c.println("0. Exit Application")
	c.println("----------------------------------")
	choice, err := c.prompt("What do you want to do? (Enter number): ")
	if err != nil {
		return err
	}
	switch strings.TrimSpace(choice) {
	case "1":
		return c.register(ctx)
	case "2":
		return c.login(ctx)
	case "0":
		return errQuit
	default:
		c.colors.warn.Fprintln(c.out, "\n[Menu] Please choose 1, 2 or 0.")
		return nil
	}
}

func (c *Console) register(ctx context.Context) error {
	c.header("NEW ACCOUNT SETUP")
	var form accountsvc.RegisterForm
	var err error
	if form.AccountNumber, err = c.prompt("1. Enter a unique 6-digit Account Number (e.g., 100001): "); err != nil {
		return err
	}
	if form.FullName, err = c.prompt("2. Enter Full Name (no spaces, e.g., JohnDoe): "); err != nil {
		return err
	}
	if form.Phone, err = c.prompt("3. Enter Phone Number (no spaces, e.g., 555-1234): "); err != nil {
		return err
	}
	if form.Password, err = c.promptSecret("4. Create Password (max 20 chars): "); err != nil {
		return err
	}
	if form.Deposit, err = c.prompt("5. Enter Initial Deposit Amount (must be >= ZMW 10.00): ZMW "); err != nil {
		return err
	}
	res, err := c.accounts.Register(ctx, form)
	if err != nil {
		c.report(err)
		return nil
	}
	c.success(res.Topic, res.Message)
	return nil
}

func (c *Console) login(ctx context.Context) error {
	c.header("LOGIN AUTHENTICATION")
	number, err := c.prompt("Account Number: ")
	if err != nil {
		return err
	}
	password, err := c.promptSecret("Password: ")
	if err != nil {
		return err
	}
	sess, err := c.auth.Login(ctx, number, password)
	if err != nil {
		c.report(err)
		return nil
	}
	c.success(auth.TopicLoginSucceeded, sess.Welcome())
	return c.dashboard(auth.WithSession(ctx, sess))
}

// dashboard loops until logout. Quitting from inside the dashboard logs out first.
func (c *Console) dashboard(ctx context.Context) error {
	for {
		details, err := c.accounts.Details(ctx)
		if err != nil {
			c.report(err)
			return nil
		}
		c.header(fmt.Sprintf("Welcome back, %s!", details.Holder))
		c.println(fmt.Sprintf("Account: %d | Balance: %s", details.Number, details.Balance.Display()))
		c.println("==================================")
		c.println("1. Deposit Cash")
		c.println("2. Withdraw Cash")
		c.println("3. Transfer Money to another Account")
		c.println("4. Change My Password")
		c.println("5. Show Account Details")
		c.println("6. Transaction History")
		c.println("7. Export Statement")
		c.println("0. Logout")
		c.println("----------------------------------")

		choice, err := c.prompt("What do you want to do? (Enter number): ")
		if err == nil {
			err = c.dashboardChoice(ctx, strings.TrimSpace(choice), details)
		}
		if errors.Is(err, errLogout) || errors.Is(err, errQuit) {
			if msg, logoutErr := c.auth.Logout(ctx); logoutErr == nil {
				c.success(auth.TopicLogout, msg)
			}
			if errors.Is(err, errLogout) {
				return nil
			}
		}
		if err != nil {
			return err
		}
	}
}

var errLogout = errors.New("logout")

func (c *Console) dashboardChoice(ctx context.Context, choice string, details accountsvc.Details) error {
	switch choice {
	case "1":
		return c.deposit(ctx, details)
	case "2":
		return c.withdraw(ctx, details)
	case "3":
		return c.transfer(ctx, details)
	case "4":
		return c.changePassword(ctx)
	case "5":
		c.showDetails(details)
		return nil
	case "6":
		return c.history(ctx)
	case "7":
		return c.export(ctx, details)
	case "0":
		return errLogout
	default:
		c.colors.warn.Fprintln(c.out, "\n[Menu] Please choose an option from the list.")
		return nil
	}
}

func (c *Console) deposit(ctx context.Context, details accountsvc.Details) error {
	c.header("Cash Deposit")
	c.println("Current Balance:", details.Balance.Display())
	amount, err := c.prompt("Enter deposit amount: ZMW ")
	if err != nil {
		return err
	}
	c.showResult(c.accounts.Deposit(ctx, amount))
	return nil
}

func (c *Console) withdraw(ctx context.Context, details accountsvc.Details) error {
	c.header("Cash Withdrawal")
	c.println("Current Balance:", details.Balance.Display())
	amount, err := c.prompt("Enter withdrawal amount: ZMW ")
	if err != nil {
		return err
	}
	c.showResult(c.accounts.Withdraw(ctx, amount))
	return nil
}

func (c *Console) transfer(ctx context.Context, details accountsvc.Details) error {
	c.header("Account to Account Transfer")
	c.println("Your Balance:", details.Balance.Display())
	recipient, err := c.prompt("Enter Recipient Account Number: ")
	if err != nil {
		return err
	}
	amount, err := c.prompt("Enter transfer amount: ZMW ")
	if err != nil {
		return err
	}
	c.showResult(c.accounts.Transfer(ctx, recipient, amount))
	return nil
}

func (c *Console) changePassword(ctx context.Context) error {
	c.header("Password Reset")
	current, err := c.promptSecret("1. Enter Current Password for verification: ")
	if err != nil {
		return err
	}
	next, err := c.promptSecret("2. Enter New Password: ")
	if err != nil {
		return err
	}
	confirm, err := c.promptSecret("3. Confirm New Password: ")
	if err != nil {
		return err
	}
	c.showResult(c.accounts.ChangePassword(ctx, current, next, confirm))
	return nil
}

func (c *Console) showResult(res *accountsvc.Result, err error) {
	if err != nil {
		c.report(err)
		return
	}
	c.success(res.Topic, res.Message)
	if res.Account != nil && res.Topic != accountsvc.TopicPassword {
		c.println("Your New Balance:", res.Account.Balance.Display())
	}
}

func (c *Console) showDetails(details accountsvc.Details) {
	c.header("Your Account Overview")
	for _, line := range details.Lines() {
		c.println(line)
	}
}

func (c *Console) history(ctx context.Context) error {
	entries, err := c.accounts.History(ctx)
	if err != nil {
		c.report(err)
		return nil
	}
	c.header("Transaction History")
	fmt.Fprintf(c.out, "%-19s  %-17s  %14s  %14s  %s\n", "Date", "Type", "Amount", "Balance", "Details")
	for _, tx := range entries {
		paint := c.colors.debit
		if tx.Type.IsCredit() {
			paint = c.colors.credit
		}
		paint.Fprintf(c.out, "%-19s  %-17s  %14s  %14s  %s\n",
			tx.Timestamp, tx.Type, tx.Amount.Display(), tx.BalanceAfter.Display(), statement.Counterparty(tx))
	}
	return nil
}

func (c *Console) export(ctx context.Context, details accountsvc.Details) error {
	entries, err := c.accounts.History(ctx)
	if err != nil {
		c.report(err)
		return nil
	}
	answer, err := c.prompt(fmt.Sprintf("Statement format (xlsx/pdf) [%s]: ", c.statementFormat))
	if err != nil {
		return err
	}
	format := c.statementFormat
	if strings.TrimSpace(answer) != "" {
		if format, err = statement.ParseFormat(answer); err != nil {
			c.colors.warn.Fprintln(c.out, "\n[Statement] Please choose xlsx or pdf.")
			return nil
		}
	}
	path := filepath.Join(c.statementDir, statement.FileName(details.Number, format, c.now()))
	if err = statement.Export(ctx, format, path, details, entries); err != nil {
		c.report(err)
		return nil
	}
	c.logger.Info("Statement exported", "account", details.Number, "path", path)
	c.success("Statement", "Statement saved to "+path)
	return nil
}
