package repository

import (
	"errors"

	"wellness-engine/domain"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrConsentNotGranted = errors.New("user has not granted data consent")
)

// UserRepository is the storage collaborator. Storage failures propagate to
// the caller unchanged; the core never retries them.
type UserRepository interface {
	GetUser(userID string) (domain.User, error)
	GetAccounts(userID string) ([]domain.Account, error)
	GetTransactions(userID string) ([]domain.Transaction, error)
	GetLiabilities(userID string) ([]domain.Liability, error)
	ListUserIDs() ([]string, error)

	// VerifyConsent returns ErrConsentNotGranted when the user exists but
	// has not consented to behavioral analysis.
	VerifyConsent(userID string) error
}
