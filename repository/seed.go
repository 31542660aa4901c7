package repository

import (
	"fmt"
	"time"

	"wellness-engine/domain"
)

// SeedDemoUsers loads a deterministic set of demo users, one per behavioral
// archetype plus a no-consent user, relative to asOf. The same asOf always
// produces the same data.
func SeedDemoUsers(repo *UserRepositoryMemory, asOf time.Time) {
	seedHighUtilizationUser(repo, asOf)
	seedSubscriptionHeavyUser(repo, asOf)
	seedVariableIncomeUser(repo, asOf)
	seedSavingsBuilderUser(repo, asOf)
	seedNewUser(repo, asOf)
	seedNoConsentUser(repo, asOf)
}

func txn(userID, accountID string, daysAgo int, asOf time.Time, amount float64, merchant, category string) domain.Transaction {
	date := asOf.AddDate(0, 0, -daysAgo)
	return domain.Transaction{
		TransactionID: fmt.Sprintf("txn_%s_%s_%d", userID, merchant, daysAgo),
		AccountID:     accountID,
		UserID:        userID,
		Date:          date,
		Amount:        amount,
		MerchantName:  merchant,
		Category:      category,
	}
}

// monthlyCharges emits one charge every gapDays, count times, starting at
// firstDaysAgo and walking backwards in time.
func monthlyCharges(userID, accountID string, asOf time.Time, firstDaysAgo, gapDays, count int, amount float64, merchant, category string) []domain.Transaction {
	txns := make([]domain.Transaction, 0, count)
	for i := 0; i < count; i++ {
		txns = append(txns, txn(userID, accountID, firstDaysAgo+i*gapDays, asOf, amount, merchant, category))
	}
	return txns
}

func seedHighUtilizationUser(repo *UserRepositoryMemory, asOf time.Time) {
	const userID = "user_high_util"
	checking := domain.Account{
		AccountID: "acc_hu_checking", UserID: userID, Name: "Everyday Checking",
		Type: domain.AccountTypeDepository, Subtype: domain.AccountSubtypeChecking,
		Mask: "1122", AvailableBalance: 950, CurrentBalance: 950,
	}
	card := domain.Account{
		AccountID: "acc_hu_card", UserID: userID, Name: "Rewards Card",
		Type: domain.AccountTypeCredit, Subtype: domain.AccountSubtypeCreditCard,
		Mask: "4321", CurrentBalance: 4000, CreditLimit: 5000,
	}

	txns := []domain.Transaction{}
	txns = append(txns, monthlyCharges(userID, checking.AccountID, asOf, 3, 14, 12, -1400, "Acme Staffing Payroll", "payroll")...)
	txns = append(txns, monthlyCharges(userID, checking.AccountID, asOf, 5, 30, 6, 1250, "Maple Court Apartments", "rent")...)
	txns = append(txns, monthlyCharges(userID, checking.AccountID, asOf, 9, 7, 24, 95, "FreshMart Grocery", "groceries")...)
	txns = append(txns, monthlyCharges(userID, card.AccountID, asOf, 12, 30, 6, 38.50, "Interest Charge", "interest charged")...)
	txns = append(txns, monthlyCharges(userID, card.AccountID, asOf, 14, 30, 6, -120, "Card Payment", "payment")...)

	liab := domain.Liability{
		AccountID: card.AccountID, UserID: userID, APR: 27.9,
		MinimumPaymentAmount: 120, IsOverdue: false, LastStatementBalance: 3950,
		NextPaymentDueDate: asOf.AddDate(0, 0, 18),
	}

	repo.AddUser(domain.User{
		UserID: userID, Name: "Dana Whitfield",
		CreatedAt: asOf.AddDate(-2, 0, 0), ConsentGranted: true,
	}, []domain.Account{checking, card}, txns, []domain.Liability{liab})
}

func seedSubscriptionHeavyUser(repo *UserRepositoryMemory, asOf time.Time) {
	const userID = "user_subscriptions"
	checking := domain.Account{
		AccountID: "acc_sub_checking", UserID: userID, Name: "Primary Checking",
		Type: domain.AccountTypeDepository, Subtype: domain.AccountSubtypeChecking,
		Mask: "3344", AvailableBalance: 2100, CurrentBalance: 2100,
	}

	txns := []domain.Transaction{}
	txns = append(txns, monthlyCharges(userID, checking.AccountID, asOf, 2, 14, 12, -1600, "Brightline Media Payroll", "payroll")...)
	txns = append(txns, monthlyCharges(userID, checking.AccountID, asOf, 4, 30, 6, 15.99, "Streamflix", "entertainment")...)
	txns = append(txns, monthlyCharges(userID, checking.AccountID, asOf, 7, 30, 6, 11.99, "Tunecloud", "entertainment")...)
	txns = append(txns, monthlyCharges(userID, checking.AccountID, asOf, 10, 30, 6, 19.99, "IronWorks Gym", "fitness")...)
	txns = append(txns, monthlyCharges(userID, checking.AccountID, asOf, 13, 30, 6, 14.99, "CloudVault Storage", "software")...)
	txns = append(txns, monthlyCharges(userID, checking.AccountID, asOf, 6, 7, 24, 80, "FreshMart Grocery", "groceries")...)
	txns = append(txns, monthlyCharges(userID, checking.AccountID, asOf, 8, 30, 6, 1100, "Maple Court Apartments", "rent")...)

	repo.AddUser(domain.User{
		UserID: userID, Name: "Marco Delgado",
		CreatedAt: asOf.AddDate(-1, -3, 0), ConsentGranted: true,
	}, []domain.Account{checking}, txns, nil)
}

func seedVariableIncomeUser(repo *UserRepositoryMemory, asOf time.Time) {
	const userID = "user_variable_income"
	checking := domain.Account{
		AccountID: "acc_vi_checking", UserID: userID, Name: "Freelance Checking",
		Type: domain.AccountTypeDepository, Subtype: domain.AccountSubtypeChecking,
		Mask: "5566", AvailableBalance: 1150, CurrentBalance: 1150,
	}

	txns := []domain.Transaction{}
	// Project payouts land roughly every two months, with jitter.
	txns = append(txns, txn(userID, checking.AccountID, 10, asOf, -2600, "Halcyon Design Co", "payroll"))
	txns = append(txns, txn(userID, checking.AccountID, 72, asOf, -3100, "Halcyon Design Co", "payroll"))
	txns = append(txns, txn(userID, checking.AccountID, 121, asOf, -2400, "Juniper Studio", "payroll"))
	txns = append(txns, txn(userID, checking.AccountID, 176, asOf, -2900, "Halcyon Design Co", "payroll"))
	txns = append(txns, monthlyCharges(userID, checking.AccountID, asOf, 5, 30, 6, 1200, "Maple Court Apartments", "rent")...)
	txns = append(txns, monthlyCharges(userID, checking.AccountID, asOf, 8, 7, 24, 70, "FreshMart Grocery", "groceries")...)

	repo.AddUser(domain.User{
		UserID: userID, Name: "Priya Raman",
		CreatedAt: asOf.AddDate(-3, 0, 0), ConsentGranted: true,
	}, []domain.Account{checking}, txns, nil)
}

func seedSavingsBuilderUser(repo *UserRepositoryMemory, asOf time.Time) {
	const userID = "user_saver"
	checking := domain.Account{
		AccountID: "acc_sv_checking", UserID: userID, Name: "Primary Checking",
		Type: domain.AccountTypeDepository, Subtype: domain.AccountSubtypeChecking,
		Mask: "7788", AvailableBalance: 3200, CurrentBalance: 3200,
	}
	savings := domain.Account{
		AccountID: "acc_sv_savings", UserID: userID, Name: "Rainy Day Savings",
		Type: domain.AccountTypeDepository, Subtype: domain.AccountSubtypeSavings,
		Mask: "7789", AvailableBalance: 8400, CurrentBalance: 8400,
	}
	card := domain.Account{
		AccountID: "acc_sv_card", UserID: userID, Name: "Cashback Card",
		Type: domain.AccountTypeCredit, Subtype: domain.AccountSubtypeCreditCard,
		Mask: "9012", CurrentBalance: 350, CreditLimit: 6000,
	}

	txns := []domain.Transaction{}
	txns = append(txns, monthlyCharges(userID, checking.AccountID, asOf, 1, 14, 12, -2300, "Cobalt Systems Payroll", "payroll")...)
	txns = append(txns, monthlyCharges(userID, savings.AccountID, asOf, 2, 30, 6, -400, "Transfer from Checking", "transfer")...)
	txns = append(txns, monthlyCharges(userID, checking.AccountID, asOf, 6, 30, 6, 1350, "Maple Court Apartments", "rent")...)
	txns = append(txns, monthlyCharges(userID, checking.AccountID, asOf, 4, 7, 24, 90, "FreshMart Grocery", "groceries")...)
	txns = append(txns, monthlyCharges(userID, card.AccountID, asOf, 11, 30, 6, -350, "Card Payment", "payment")...)

	liab := domain.Liability{
		AccountID: card.AccountID, UserID: userID, APR: 21.5,
		MinimumPaymentAmount: 35, LastStatementBalance: 340,
		NextPaymentDueDate: asOf.AddDate(0, 0, 12),
	}

	repo.AddUser(domain.User{
		UserID: userID, Name: "Elena Kovacs",
		CreatedAt: asOf.AddDate(-4, 0, 0), ConsentGranted: true,
	}, []domain.Account{checking, savings, card}, txns, []domain.Liability{liab})
}

func seedNewUser(repo *UserRepositoryMemory, asOf time.Time) {
	const userID = "user_new"
	checking := domain.Account{
		AccountID: "acc_new_checking", UserID: userID, Name: "Starter Checking",
		Type: domain.AccountTypeDepository, Subtype: domain.AccountSubtypeChecking,
		Mask: "2468", AvailableBalance: 640, CurrentBalance: 640,
	}

	txns := []domain.Transaction{
		txn(userID, checking.AccountID, 2, asOf, 42.80, "FreshMart Grocery", "groceries"),
		txn(userID, checking.AccountID, 6, asOf, -500, "Opening Deposit", "deposit"),
	}

	repo.AddUser(domain.User{
		UserID: userID, Name: "Jordan Liu",
		CreatedAt: asOf.AddDate(0, 0, -9), ConsentGranted: true,
	}, []domain.Account{checking}, txns, nil)
}

func seedNoConsentUser(repo *UserRepositoryMemory, asOf time.Time) {
	const userID = "user_no_consent"
	checking := domain.Account{
		AccountID: "acc_nc_checking", UserID: userID, Name: "Checking",
		Type: domain.AccountTypeDepository, Subtype: domain.AccountSubtypeChecking,
		Mask: "1357", AvailableBalance: 500, CurrentBalance: 500,
	}
	repo.AddUser(domain.User{
		UserID: userID, Name: "Sam Okafor",
		CreatedAt: asOf.AddDate(-1, 0, 0), ConsentGranted: false,
	}, []domain.Account{checking}, nil, nil)
}
