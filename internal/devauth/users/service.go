// Package users holds the accounts of the development login server.
package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo Repository
	cost int
}

// NewService hashes passwords with the given bcrypt cost. Costs outside
// bcrypt's accepted range fall back to bcrypt.DefaultCost.
func NewService(repo Repository, cost int) *Service {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Service{repo: repo, cost: cost}
}

func (s *Service) Register(ctx context.Context, username string, password []byte) (*User, error) {
	if username == "" || len(password) == 0 {
		return nil, ErrEmptyCredentials
	}

	hash, err := bcrypt.GenerateFromPassword(password, s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, ErrPasswordTooLong
	}
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := s.repo.Create(ctx, &User{UserName: username, PasswordHash: hash})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

func (s *Service) Login(ctx context.Context, username string, password []byte) (*User, error) {
	user, err := s.repo.GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, password); err != nil {
		return nil, ErrUnauthorized
	}

	return user, nil
}

type seedUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Seed registers every account listed in the JSON file at path, an array
// of {"username", "password"} objects. Accounts that already exist are
// skipped. It returns the number of accounts created.
func (s *Service) Seed(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}

	var seed []seedUser
	if err := json.Unmarshal(data, &seed); err != nil {
		return 0, fmt.Errorf("decode seed file: %w", err)
	}

	created := 0
	for i, su := range seed {
		_, err := s.Register(ctx, su.Username, []byte(su.Password))
		switch {
		case err == nil:
			created++
		case errors.Is(err, ErrUserExists):
		default:
			return created, fmt.Errorf("seed entry %d: %w", i, err)
		}
	}

	return created, nil
}
