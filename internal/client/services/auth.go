// Package services contains application services for the prodgate client.
// This file defines the session gate: it checks credentials with the remote
// login service, records the login instant locally and decides from that
// record alone whether the user is still logged in.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/santosysantos/prodgate/internal/client/client"
	"github.com/santosysantos/prodgate/internal/client/models"
	"github.com/santosysantos/prodgate/internal/client/repositories/metadata"
	"github.com/santosysantos/prodgate/internal/common"
	"github.com/santosysantos/prodgate/internal/dbx"
	"github.com/santosysantos/prodgate/internal/logging"
)

// DefaultSessionDuration is how long a successful login stays valid.
const DefaultSessionDuration = time.Hour

// AuthService is the session gate used by the UI.
//
// Contract:
//   - Login: one round trip to the login service; on acceptance stores the
//     current instant and returns true. Every failure returns false.
//   - IsLoggedIn: true while the stored instant is younger than the session
//     duration; an expired record is deleted on the way.
//   - Status: IsLoggedIn plus the login and expiry instants.
//   - Logout: deletes the record. Idempotent, no network.
//   - Reset: clears the whole local store, the record included.
//   - Close: releases the transport.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) bool
	IsLoggedIn(ctx context.Context) bool
	Status(ctx context.Context) models.SessionStatus
	Logout(ctx context.Context) error
	Reset(ctx context.Context) error
	Close(ctx context.Context) error
}

// AuthOption customizes the gate at construction.
type AuthOption func(*authService)

// WithSessionDuration overrides DefaultSessionDuration. Non-positive values
// are ignored.
func WithSessionDuration(d time.Duration) AuthOption {
	return func(a *authService) {
		if d > 0 {
			a.sessionDuration = d
		}
	}
}

// WithClock replaces the wall clock.
func WithClock(c Clock) AuthOption {
	return func(a *authService) {
		if c != nil {
			a.clock = c
		}
	}
}

type authService struct {
	client          client.Client
	db              *sql.DB
	logger          logging.Logger
	clock           Clock
	sessionDuration time.Duration
}

// NewAuthService constructs the gate over the login transport c and the
// local database db holding the metadata table.
func NewAuthService(c client.Client, db *sql.DB, logger logging.Logger, opts ...AuthOption) AuthService {
	a := &authService{
		client:          c,
		db:              db,
		logger:          logger.With("component", "auth"),
		clock:           systemClock{},
		sessionDuration: DefaultSessionDuration,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *authService) getMetadataRepo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

// sessionActive reports whether a login made at authenticatedAt is still
// valid at now. Reaching exactly d counts as expired.
func sessionActive(authenticatedAt, now time.Time, d time.Duration) bool {
	return now.Sub(authenticatedAt) < d
}

func (a *authService) Login(ctx context.Context, username string, password []byte) bool {
	log := a.logger.With("attempt_id", uuid.NewString())

	if err := a.client.Login(ctx, username, password); err != nil {
		var se *client.StatusError
		if errors.As(err, &se) {
			log.Warn(ctx, "login rejected", "status", se.StatusCode)
		} else {
			log.Error(ctx, "login error", "error", err)
		}
		return false
	}

	stamp := common.FormatTimestamp(a.clock.Now())
	if err := a.getMetadataRepo(a.db).Set(ctx, common.AuthenticatedDateKey, []byte(stamp)); err != nil {
		log.Error(ctx, "login accepted but session could not be stored", "error", err)
		return false
	}

	log.Info(ctx, "login accepted", "authenticated_at", stamp)
	return true
}

func (a *authService) IsLoggedIn(ctx context.Context) bool {
	return a.Status(ctx).Authenticated
}

func (a *authService) Status(ctx context.Context) models.SessionStatus {
	var status models.SessionStatus

	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := a.getMetadataRepo(tx)

		raw, err := repo.Get(ctx, common.AuthenticatedDateKey)
		if err != nil {
			return err
		}
		if raw == nil {
			return nil
		}

		authenticatedAt, err := common.ParseTimestamp(string(raw))
		if err != nil {
			a.logger.Warn(ctx, "discarding unreadable session record", "error", err)
			return repo.Delete(ctx, common.AuthenticatedDateKey)
		}

		if !sessionActive(authenticatedAt, a.clock.Now(), a.sessionDuration) {
			a.logger.Info(ctx, "session expired", "authenticated_at", string(raw))
			return repo.Delete(ctx, common.AuthenticatedDateKey)
		}

		status = models.SessionStatus{
			Authenticated:   true,
			AuthenticatedAt: authenticatedAt,
			ExpiresAt:       authenticatedAt.Add(a.sessionDuration),
		}
		return nil
	})
	if err != nil {
		a.logger.Error(ctx, "session check failed", "error", err)
		return models.SessionStatus{}
	}

	return status
}

func (a *authService) Logout(ctx context.Context) error {
	return a.getMetadataRepo(a.db).Delete(ctx, common.AuthenticatedDateKey)
}

func (a *authService) Reset(ctx context.Context) error {
	if err := a.getMetadataRepo(a.db).Clear(ctx); err != nil {
		return err
	}
	a.logger.Info(ctx, "local data cleared")
	return nil
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
