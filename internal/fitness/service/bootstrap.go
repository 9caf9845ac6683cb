package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/spano-fitness/spano/internal/fitness/store"
	"github.com/spano-fitness/spano/pkg/slogx"
)

// DefaultAccount is an account seeded at startup.
type DefaultAccount struct {
	Profile SignupRequest
	Admin   bool
}

// DefaultUserAccount is the stock profile of the seeded user.
func DefaultUserAccount(name, password string) DefaultAccount {
	return DefaultAccount{Profile: SignupRequest{
		Name: name, Password: password,
		Age: 30, WeightKg: 70, HeightCm: 175, Gender: "male", Goal: "maintenance",
	}}
}

// DefaultAdminAccount is the stock profile of the seeded admin.
func DefaultAdminAccount(name, password string) DefaultAccount {
	return DefaultAccount{Admin: true, Profile: SignupRequest{
		Name: name, Password: password,
		Age: 40, WeightKg: 80, HeightCm: 180, Gender: "male", Goal: "admin tasks",
	}}
}

type BootstrapService struct {
	Users    *UserService
	Accounts []DefaultAccount
}

// EnsureDefaultAccounts creates any missing default account and makes sure
// admin accounts carry the admin flag. Running it again changes nothing.
func (s *BootstrapService) EnsureDefaultAccounts(ctx context.Context, db store.Repos) error {
	log := slogx.FromContext(ctx)

	for _, acct := range s.Accounts {
		name := acct.Profile.Name
		if name == "" || acct.Profile.Password == "" {
			log.Warn("bootstrap: default account not configured, skipping", "admin", acct.Admin)
			continue
		}

		existing, err := db.Users().GetUserByName(ctx, name)
		switch {
		case err == nil:
			if acct.Admin && !existing.IsAdmin {
				if err := db.Users().SetAdmin(ctx, existing.ID, true); err != nil {
					return fmt.Errorf("bootstrap: promote %q: %w", name, err)
				}
				log.Info("bootstrap: granted admin to existing account", "user", name)
			}
			continue
		case !errors.Is(err, store.ErrNotFound):
			return fmt.Errorf("bootstrap: look up %q: %w", name, err)
		}

		_, err = s.Users.create(ctx, db, acct.Profile, acct.Admin)
		if errors.Is(err, ErrDuplicateUser) {
			// Created concurrently by another instance.
			continue
		}
		if err != nil {
			return fmt.Errorf("bootstrap: create %q: %w", name, err)
		}
		log.Info("bootstrap: created default account", "user", name, "admin", acct.Admin)
	}
	return nil
}
