package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/utils"
	"github.com/MKhiriev/go-key-keeper/models"
)

// userDirectory keeps accounts inside [State]. Secrets are stored as bcrypt
// hashes; usernames are not required to be unique and the first matching
// account wins on login.
type userDirectory struct {
	state *State
	ids   utils.IDGenerator

	logger *logger.Logger
}

func NewUserDirectory(state *State, ids utils.IDGenerator, logger *logger.Logger) UserDirectory {
	return &userDirectory{state: state, ids: ids, logger: logger}
}

func (d *userDirectory) AddAccount(ctx context.Context, username, secret, phone string, role models.Role) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := utils.HashSecret(secret)
	if err != nil {
		log.Err(err).Str("func", "*userDirectory.AddAccount").Msg("error hashing secret")
		return models.User{}, fmt.Errorf("hash secret: %w", err)
	}

	account := models.User{
		ID:         d.ids.Generate(),
		Username:   username,
		SecretHash: hash,
		Role:       role,
		Phone:      phone,
	}

	err = d.state.Update(ctx, func(tx *Tx) error {
		tx.Accounts = append(tx.Accounts, account)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*userDirectory.AddAccount").Str("username", username).Msg("account was not added")
		return models.User{}, err
	}

	log.Info().Str("account_id", account.ID).Str("username", username).Str("role", string(role)).Msg("account added")
	return account.Public(), nil
}

func (d *userDirectory) Authenticate(ctx context.Context, username, secret string) (models.User, error) {
	var candidates []models.User
	d.state.Read(func(view View) {
		for _, account := range view.Accounts {
			if account.Username == username {
				candidates = append(candidates, account)
			}
		}
	})

	// hashes are compared outside the lock
	for _, account := range candidates {
		if utils.CompareSecret(account.SecretHash, secret) {
			return account.Public(), nil
		}
	}

	logger.FromContext(ctx).Warn().Str("func", "*userDirectory.Authenticate").Str("username", username).Msg("wrong username or password")
	return models.User{}, ErrInvalidCredentials
}

func (d *userDirectory) GetAccount(ctx context.Context, id string) (models.User, error) {
	var (
		account models.User
		found   bool
	)
	d.state.Read(func(view View) {
		idx := slices.IndexFunc(view.Accounts, func(u models.User) bool { return u.ID == id })
		if idx >= 0 {
			account, found = view.Accounts[idx], true
		}
	})
	if !found {
		return models.User{}, fmt.Errorf("get account %s: %w", id, ErrAccountNotFound)
	}

	return account.Public(), nil
}

func (d *userDirectory) ListAccounts(ctx context.Context) []models.User {
	var accounts []models.User
	d.state.Read(func(view View) {
		accounts = make([]models.User, len(view.Accounts))
		for i, account := range view.Accounts {
			accounts[i] = account.Public()
		}
	})
	return accounts
}
