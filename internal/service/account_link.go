package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/storage/sqlconfig"
)

const errOneCompanyPerEmail = "this email is already associated with a company, one email can only be associated with one company"

// AccountLinker is the single decision point for associating a user with a
// company. Every entry point that can set company_id goes through it, so the
// one-company-per-user rule lives in one place. Decisions are serialized per
// identifying key (email or user id) so two concurrent requests cannot both
// pass the check before either write lands.
//
// The linker may itself write as part of a decision: it links an existing
// unlinked user, and it creates a user implicitly when an update targets an
// unknown id while carrying a company_id.
type AccountLinker struct {
	users sqlconfig.IUsersTable

	mu   sync.Mutex
	keys map[string]*sync.Mutex
}

func NewAccountLinker(users sqlconfig.IUsersTable) *AccountLinker {
	return &AccountLinker{
		users: users,
		keys:  make(map[string]*sync.Mutex),
	}
}

// lockKey serializes decisions for one identifying key. Key mutexes are kept
// for the process lifetime; the key space is bounded by the user base.
func (l *AccountLinker) lockKey(key string) func() {
	l.mu.Lock()
	keyMutex, ok := l.keys[key]
	if !ok {
		keyMutex = &sync.Mutex{}
		l.keys[key] = keyMutex
	}
	l.mu.Unlock()

	keyMutex.Lock()
	return keyMutex.Unlock
}

// EnsureEmailLink decides whether email may be associated with target. It
// returns the user when it resolved the association against an existing row
// (including linking an unlinked user to target), or nil when no existing row
// stands in the way and the caller should insert.
func (l *AccountLinker) EnsureEmailLink(ctx context.Context, email string, target *uuid.UUID) (*sqlconfig.User, error) {
	if email == "" {
		return nil, nil
	}

	unlock := l.lockKey("email:" + email)
	defer unlock()

	existing, err := l.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if existing.CompanyID.Valid {
		// Re-linking to the same company is idempotent; anything else conflicts.
		if target != nil && existing.CompanyID.UUID == *target {
			return existing, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrConflict, errOneCompanyPerEmail)
	}

	if target != nil {
		update := &sqlconfig.UserUpdate{
			CompanyID: omit.From(uuid.NullUUID{UUID: *target, Valid: true}),
		}
		return l.users.Update(ctx, existing.ID, update)
	}

	return nil, nil
}

// EnsureIDLinkAllowed rejects an association when the user id already carries
// a different company.
func (l *AccountLinker) EnsureIDLinkAllowed(ctx context.Context, id uuid.UUID, target uuid.UUID) error {
	unlock := l.lockKey("id:" + id.String())
	defer unlock()

	existing, err := l.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing != nil && existing.CompanyID.Valid && existing.CompanyID.UUID != target {
		return fmt.Errorf("%w: %s", ErrConflict, errOneCompanyPerEmail)
	}
	return nil
}

// ApplyUserUpdate performs a user update with the association rule enforced.
// An update targeting an unknown id creates the user implicitly when it
// carries a company_id, deriving full_name from the email's local part when
// no full_name is supplied.
func (l *AccountLinker) ApplyUserUpdate(ctx context.Context, id uuid.UUID, update *sqlconfig.UserUpdate) (*sqlconfig.User, error) {
	unlock := l.lockKey("id:" + id.String())
	defer unlock()

	existing, err := l.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		if !update.CompanyID.IsValue() || !update.CompanyID.MustGet().Valid {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}

		create := &sqlconfig.UserCreate{
			ID:        id,
			CompanyID: update.CompanyID.MustGet(),
			Email:     update.Email.GetOrZero(),
			FullName:  update.FullName.GetOrZero(),
			Role:      update.Role.GetOrZero(),
			UserType:  update.UserType.GetOrZero(),
		}
		if create.FullName == "" && create.Email != "" {
			create.FullName = strings.SplitN(create.Email, "@", 2)[0]
		}
		return l.users.Insert(ctx, create)
	}

	if update.CompanyID.IsValue() {
		target := update.CompanyID.MustGet()
		hasCompany := existing.CompanyID.Valid
		if hasCompany && (!target.Valid || existing.CompanyID.UUID != target.UUID) {
			return nil, fmt.Errorf("%w: cannot change company association, one email can only be associated with one company", ErrConflict)
		}
	}

	row, err := l.users.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}
	return row, nil
}
