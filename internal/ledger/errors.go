package ledger

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/ardhichain/ardhi-registry/internal/domain"
)

var (
	overspendBalanceRe = regexp.MustCompile(`MicroAlgos:\{Raw:(\d+)\}`)
	overspendTriedRe   = regexp.MustCompile(`tried to spend \{(\d+)\}`)
	belowMinRe         = regexp.MustCompile(`balance (\d+) below min (\d+)`)
)

// classifyError maps a write failure onto the error taxonomy.
// Errors already classified are returned unchanged.
func (c *Client) classifyError(op, sender, txID string, adminOnly bool, err error) error {
	if err == nil {
		return nil
	}

	var fundsErr *domain.InsufficientFundsError
	var authErr *domain.AuthorizationError
	var txErr *domain.TransactionError
	if errors.As(err, &fundsErr) || errors.As(err, &authErr) || errors.As(err, &txErr) {
		return err
	}
	for _, known := range []error{
		domain.ErrWalletRejected, domain.ErrWalletTimeout, domain.ErrWalletOutdated, domain.ErrEmptySignature,
		domain.ErrReceiverNotOptedIn, domain.ErrContractLogic, domain.ErrAssetIDUnresolved, domain.ErrContractUnderfunded,
		domain.ErrAdminNotConfigured, ErrAppNotConfigured,
	} {
		if errors.Is(err, known) {
			return err
		}
	}

	msg := err.Error()
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(lower, "overspend"):
		balance := parseAmount(overspendBalanceRe, msg, 1)
		required := parseAmount(overspendTriedRe, msg, 1)
		return domain.NewInsufficientFundsError(domain.PartyCaller, sender, balance, required)
	case strings.Contains(lower, "below min"):
		balance := parseAmount(belowMinRe, msg, 1)
		required := parseAmount(belowMinRe, msg, 2)
		return domain.NewInsufficientFundsError(domain.PartyCaller, sender, balance, required)
	case strings.Contains(lower, "must optin"),
		strings.Contains(lower, "missing from"),
		strings.Contains(lower, "not opted in"):
		return &domain.TransactionError{Op: op, TxID: txID, ExplorerURL: c.ExplorerTxURL(txID), Err: errors.Join(domain.ErrReceiverNotOptedIn, err)}
	case strings.Contains(lower, "logic eval error") && strings.Contains(lower, "assert"):
		reason := "caller does not hold the title"
		if adminOnly {
			reason = "contract rejected the caller as administrator"
		}
		return &domain.AuthorizationError{Address: sender, Reason: reason}
	}

	return &domain.TransactionError{Op: op, TxID: txID, ExplorerURL: c.ExplorerTxURL(txID), Err: err}
}

func parseAmount(re *regexp.Regexp, msg string, group int) uint64 {
	m := re.FindStringSubmatch(msg)
	if len(m) <= group {
		return 0
	}
	v, err := strconv.ParseUint(m[group], 10, 64)
	if err != nil {
		return 0
	}
	return v
}
