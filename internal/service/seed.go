package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-key-keeper/internal/utils"
	"github.com/MKhiriev/go-key-keeper/models"
)

type seedAccount struct {
	username string
	secret   string
	role     models.Role
	phone    string
}

var defaultAccounts = []seedAccount{
	{username: "admin", secret: "adminpassword", role: models.RoleAdmin, phone: "5491111111111"},
	{username: "user", secret: "userpassword", role: models.RoleUser, phone: "5491122222222"},
}

var demoAddresses = []string{
	"Av San Martin 1615",
	"2 de Abril 677",
	"Salta 81 y 85",
	"Ayolas / Uruguay 1221",
	"Misiones 576",
	"Tucuman 1566 1er Piso A",
}

const (
	demoHolderName    = "Contratista X"
	demoHolderPhone   = "5491133334444"
	demoCheckoutAgeHr = 72
)

// Seed fills an empty state with the default accounts and, when demoKeys is
// set, with keys A1 to A6. A6 is out with a contractor since three days ago so
// the overdue view has something to show. A non-empty state is left alone.
func Seed(ctx context.Context, state *State, ids utils.IDGenerator, clock Clock, demoKeys bool) (bool, error) {
	if !state.IsEmpty() {
		return false, nil
	}

	accounts := make([]models.User, 0, len(defaultAccounts))
	for _, a := range defaultAccounts {
		hash, err := utils.HashSecret(a.secret)
		if err != nil {
			return false, fmt.Errorf("seed account %s: %w", a.username, err)
		}
		accounts = append(accounts, models.User{
			ID:         ids.Generate(),
			Username:   a.username,
			SecretHash: hash,
			Role:       a.role,
			Phone:      a.phone,
		})
	}

	err := state.Update(ctx, func(tx *Tx) error {
		tx.Accounts = append(tx.Accounts, accounts...)
		if demoKeys {
			seedDemoKeys(tx, ids, clock().UTC().Truncate(time.Millisecond))
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("seed state: %w", err)
	}

	return true, nil
}

func seedDemoKeys(tx *Tx, ids utils.IDGenerator, now time.Time) {
	for i, address := range demoAddresses {
		key := models.Key{
			ID:          ids.Generate(),
			VisibleCode: fmt.Sprintf("A%d", i+1),
			Color:       models.KeyColorGreen,
			Address:     address,
			Status:      models.KeyStatusAvailable,
			History:     []models.CheckoutRecord{},
		}

		if i == len(demoAddresses)-1 {
			record := models.CheckoutRecord{
				PersonName:  demoHolderName,
				PersonPhone: demoHolderPhone,
				Date:        now.Add(-demoCheckoutAgeHr * time.Hour),
			}
			key.Status = models.KeyStatusCheckedOut
			key.CheckoutLog = &record
			key.History = append(key.History, record)

			tx.Log.Append(models.LogEntry{
				ID:             ids.Generate(),
				Date:           record.Date,
				Type:           models.EventKeyCheckedOut,
				KeyID:          key.ID,
				KeyVisibleCode: key.VisibleCode,
				Details: models.LogDetails{
					Actor:      demoHolderName,
					Phone:      demoHolderPhone,
					KeyAddress: address,
				},
			})
		}

		tx.Keys.Put(key)
	}
}
