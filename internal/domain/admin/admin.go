// Package admin holds the authorization fact for privileged operations: the
// existence of an Admin row is what makes a user an admin. The owner flag
// marks the irrevocable super-admin who manages other admins.
package admin

import (
	"fmt"
	"time"

	"atende/internal/shared/biztime"
	"atende/internal/shared/errors"
)

type Admin struct {
	id        uint
	userID    uint
	isOwner   bool
	createdBy *uint
	createdAt time.Time
	updatedAt time.Time
}

func NewAdmin(userID uint, isOwner bool, createdBy *uint) (*Admin, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	now := biztime.NowUTC()
	return &Admin{
		userID:    userID,
		isOwner:   isOwner,
		createdBy: createdBy,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructAdmin(
	id uint,
	userID uint,
	isOwner bool,
	createdBy *uint,
	createdAt, updatedAt time.Time,
) (*Admin, error) {
	if id == 0 {
		return nil, fmt.Errorf("admin ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Admin{
		id:        id,
		userID:    userID,
		isOwner:   isOwner,
		createdBy: createdBy,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (a *Admin) ID() uint {
	return a.id
}

func (a *Admin) UserID() uint {
	return a.userID
}

func (a *Admin) IsOwner() bool {
	return a.isOwner
}

func (a *Admin) CreatedBy() *uint {
	return a.createdBy
}

func (a *Admin) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Admin) UpdatedAt() time.Time {
	return a.updatedAt
}

func (a *Admin) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("admin ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("admin ID cannot be zero")
	}
	a.id = id
	return nil
}

// CanBeRemovedBy enforces the revocation rules: owners are irrevocable, and
// only an existing admin may revoke anyone.
func (a *Admin) CanBeRemovedBy(actor *Admin) error {
	if actor == nil {
		return errors.NewForbiddenError("admin access required")
	}
	if a.isOwner {
		if actor.userID == a.userID {
			return errors.NewConflictError("owner cannot remove their own admin access")
		}
		return errors.NewConflictError("owner admin cannot be removed")
	}
	return nil
}
