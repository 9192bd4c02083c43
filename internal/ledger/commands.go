package ledger

import "errors"

// ErrInsufficientFunds rejects a withdrawal exceeding the fund balance.
var ErrInsufficientFunds = errors.New("withdrawal exceeds emergency fund balance")

// Prepend puts tx at the head of the list. The head is always the most
// recent transaction; this insertion order is the sole display ordering.
func Prepend(txns []Transaction, tx Transaction) []Transaction {
	out := make([]Transaction, 0, len(txns)+1)
	out = append(out, tx)
	return append(out, txns...)
}

// RemoveByID removes the transaction with the given id. A missing id is a
// silent no-op: the list is returned unchanged and removed is false.
func RemoveByID(txns []Transaction, id string) (out []Transaction, removed bool) {
	out = make([]Transaction, 0, len(txns))
	for _, t := range txns {
		if !removed && t.ID == id {
			removed = true
			continue
		}
		out = append(out, t)
	}
	return out, removed
}

// ApplyFundEntry applies a deposit or withdrawal to the fund, prepending the
// entry to its history. A withdrawal larger than the current balance is
// rejected before any mutation.
func ApplyFundEntry(fund EmergencyFund, entry FundEntry) (EmergencyFund, error) {
	switch entry.Kind {
	case FundDeposit:
		fund.Balance += entry.Amount
	case FundWithdrawal:
		if entry.Amount > fund.Balance {
			return fund, ErrInsufficientFunds
		}
		fund.Balance -= entry.Amount
	default:
		return fund, errors.New("unknown fund entry type: " + entry.Kind)
	}

	history := make([]FundEntry, 0, len(fund.Transactions)+1)
	history = append(history, entry)
	fund.Transactions = append(history, fund.Transactions...)
	return fund, nil
}
