package repository

import (
	"sort"
	"sync"

	"wellness-engine/domain"
)

// UserRepositoryMemory is an in-memory implementation of UserRepository,
// used for the demo and in tests.
type UserRepositoryMemory struct {
	mu           sync.RWMutex
	users        map[string]domain.User
	accounts     map[string][]domain.Account
	transactions map[string][]domain.Transaction
	liabilities  map[string][]domain.Liability
}

func NewUserRepositoryMemory() *UserRepositoryMemory {
	return &UserRepositoryMemory{
		users:        make(map[string]domain.User),
		accounts:     make(map[string][]domain.Account),
		transactions: make(map[string][]domain.Transaction),
		liabilities:  make(map[string][]domain.Liability),
	}
}

// AddUser stores a user with their accounts, transactions, and liabilities.
func (r *UserRepositoryMemory) AddUser(
	user domain.User,
	accounts []domain.Account,
	transactions []domain.Transaction,
	liabilities []domain.Liability,
) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.UserID] = user
	r.accounts[user.UserID] = accounts
	r.transactions[user.UserID] = transactions
	r.liabilities[user.UserID] = liabilities
}

func (r *UserRepositoryMemory) GetUser(userID string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	return user, nil
}

func (r *UserRepositoryMemory) GetAccounts(userID string) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.users[userID]; !ok {
		return nil, ErrUserNotFound
	}
	return append([]domain.Account{}, r.accounts[userID]...), nil
}

func (r *UserRepositoryMemory) GetTransactions(userID string) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.users[userID]; !ok {
		return nil, ErrUserNotFound
	}
	return append([]domain.Transaction{}, r.transactions[userID]...), nil
}

func (r *UserRepositoryMemory) GetLiabilities(userID string) ([]domain.Liability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.users[userID]; !ok {
		return nil, ErrUserNotFound
	}
	return append([]domain.Liability{}, r.liabilities[userID]...), nil
}

func (r *UserRepositoryMemory) ListUserIDs() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *UserRepositoryMemory) VerifyConsent(userID string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	if !user.ConsentGranted {
		return ErrConsentNotGranted
	}
	return nil
}
