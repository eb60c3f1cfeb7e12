package sources

import "time"

// Type enumerates the payment source kinds a user can register.
type Type string

const (
	TypeCreditCard      Type = "credit_card"
	TypeDebitCard       Type = "debit_card"
	TypeCheckingAccount Type = "checking_account"
	TypeSavingsAccount  Type = "savings_account"
)

// Valid reports whether t is one of the known source types.
func (t Type) Valid() bool {
	switch t {
	case TypeCreditCard, TypeDebitCard, TypeCheckingAccount, TypeSavingsAccount:
		return true
	}
	return false
}

// Source is a payment source (card or bank account). Balance is signed
// cents: credit cards carry the amount owed as a negative number.
type Source struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      Type      `json:"type"`
	Balance   int64     `json:"balance"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// StoredBalance applies the sign convention for a direct balance set:
// credit cards store the negated raw amount, every other type stores
// it verbatim.
func StoredBalance(typ Type, rawCents int64) int64 {
	if typ == TypeCreditCard {
		return -rawCents
	}
	return rawCents
}
