package service

import (
	"fmt"
	"time"

	"wellness-engine/domain"
	"wellness-engine/repository"
)

// testAsOf is the fixed reference time every service test computes against.
var testAsOf = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testAsOf }

func testTxn(userID, accountID string, daysAgo int, amount float64, merchant, category string) domain.Transaction {
	return domain.Transaction{
		TransactionID: fmt.Sprintf("txn_%s_%d_%s", accountID, daysAgo, merchant),
		AccountID:     accountID,
		UserID:        userID,
		Date:          testAsOf.AddDate(0, 0, -daysAgo),
		Amount:        amount,
		MerchantName:  merchant,
		Category:      category,
	}
}

// repeatTxn emits count charges spaced gapDays apart, newest first.
func repeatTxn(userID, accountID string, firstDaysAgo, gapDays, count int, amount float64, merchant, category string) []domain.Transaction {
	txns := make([]domain.Transaction, 0, count)
	for i := 0; i < count; i++ {
		txns = append(txns, testTxn(userID, accountID, firstDaysAgo+i*gapDays, amount, merchant, category))
	}
	return txns
}

func checkingAccount(userID, accountID string, balance float64) domain.Account {
	return domain.Account{
		AccountID: accountID, UserID: userID, Name: "Checking",
		Type: domain.AccountTypeDepository, Subtype: domain.AccountSubtypeChecking,
		Mask: "1111", AvailableBalance: balance, CurrentBalance: balance,
	}
}

func savingsAccount(userID, accountID string, balance float64) domain.Account {
	return domain.Account{
		AccountID: accountID, UserID: userID, Name: "Savings",
		Type: domain.AccountTypeDepository, Subtype: domain.AccountSubtypeSavings,
		Mask: "2222", AvailableBalance: balance, CurrentBalance: balance,
	}
}

func creditCardAccount(userID, accountID, mask string, balance, limit float64) domain.Account {
	return domain.Account{
		AccountID: accountID, UserID: userID, Name: "Card",
		Type: domain.AccountTypeCredit, Subtype: domain.AccountSubtypeCreditCard,
		Mask: mask, CurrentBalance: balance, CreditLimit: limit,
	}
}

func newTestRepo(user domain.User, accounts []domain.Account, txns []domain.Transaction, liabilities []domain.Liability) *repository.UserRepositoryMemory {
	repo := repository.NewUserRepositoryMemory()
	repo.AddUser(user, accounts, txns, liabilities)
	return repo
}

func consentedUser(userID string, ageDays int) domain.User {
	return domain.User{
		UserID:         userID,
		Name:           "Test User",
		CreatedAt:      testAsOf.AddDate(0, 0, -ageDays),
		ConsentGranted: true,
	}
}

// newTestPersonaService wires a PersonaService whose clocks are pinned to
// testAsOf.
func newTestPersonaService(repo repository.UserRepository) *PersonaService {
	svc := NewPersonaService(repo)
	svc.now = fixedNow
	svc.subscriptions.now = fixedNow
	svc.savings.now = fixedNow
	svc.credit.now = fixedNow
	svc.income.now = fixedNow
	return svc
}
