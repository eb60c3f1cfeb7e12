package sources

import "testing"

func TestStoredBalance(t *testing.T) {
	// credit cards carry amount owed as a negative balance
	if got := StoredBalance(TypeCreditCard, 10000); got != -10000 {
		t.Errorf("StoredBalance(credit_card, 10000) = %d, want -10000", got)
	}
	if got := StoredBalance(TypeCheckingAccount, 10000); got != 10000 {
		t.Errorf("StoredBalance(checking_account, 10000) = %d, want 10000", got)
	}
	if got := StoredBalance(TypeDebitCard, 2500); got != 2500 {
		t.Errorf("StoredBalance(debit_card, 2500) = %d, want 2500", got)
	}
	if got := StoredBalance(TypeSavingsAccount, 0); got != 0 {
		t.Errorf("StoredBalance(savings_account, 0) = %d, want 0", got)
	}
}

func TestTypeValid(t *testing.T) {
	valid := []Type{TypeCreditCard, TypeDebitCard, TypeCheckingAccount, TypeSavingsAccount}
	for _, typ := range valid {
		if !typ.Valid() {
			t.Errorf("Expected %q to be valid", typ)
		}
	}
	if Type("paypal").Valid() {
		t.Error("Expected 'paypal' to be invalid")
	}
	if Type("").Valid() {
		t.Error("Expected empty type to be invalid")
	}
}
