package transactions

import "time"

// TxType enumerates the spending buckets a transaction can be filed
// under.
type TxType string

const (
	TypeNeed       TxType = "need"
	TypeNiceToHave TxType = "nice-to-have"
	TypeSplurge    TxType = "splurge"
)

func (t TxType) Valid() bool {
	switch t {
	case TypeNeed, TypeNiceToHave, TypeSplurge:
		return true
	}
	return false
}

// Transaction is a single recorded spend. Amount is always a positive
// magnitude in cents; direction comes from context (source balances
// decrement on create), never from the sign.
type Transaction struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Amount    int64     `json:"amount"`
	Label     string    `json:"label"`
	Type      TxType    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UserID    string    `json:"user_id"`
	SourceID  string    `json:"source_id"`
}
