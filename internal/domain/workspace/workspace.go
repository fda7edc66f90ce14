// Package workspace models the named, slugged visibility boundaries tickets
// and resources live in. Exactly one workspace is flagged default; every
// user holds an implicit grant to it.
package workspace

import (
	"fmt"
	"strings"
	"time"

	vo "atende/internal/domain/workspace/value_objects"
	"atende/internal/shared/biztime"
	"atende/internal/shared/errors"
)

type Workspace struct {
	id          uint
	name        string
	slug        vo.Slug
	description string
	isDefault   bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewWorkspace(name string, slug vo.Slug, description string, isDefault bool) (*Workspace, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !slug.IsValid() {
		return nil, fmt.Errorf("invalid slug")
	}

	now := biztime.NowUTC()
	return &Workspace{
		name:        name,
		slug:        slug,
		description: strings.TrimSpace(description),
		isDefault:   isDefault,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructWorkspace(
	id uint,
	name string,
	slug vo.Slug,
	description string,
	isDefault bool,
	createdAt, updatedAt time.Time,
) (*Workspace, error) {
	if id == 0 {
		return nil, fmt.Errorf("workspace ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !slug.IsValid() {
		return nil, fmt.Errorf("invalid slug")
	}

	return &Workspace{
		id:          id,
		name:        name,
		slug:        slug,
		description: description,
		isDefault:   isDefault,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (w *Workspace) ID() uint {
	return w.id
}

func (w *Workspace) Name() string {
	return w.name
}

func (w *Workspace) Slug() vo.Slug {
	return w.slug
}

func (w *Workspace) Description() string {
	return w.description
}

func (w *Workspace) IsDefault() bool {
	return w.isDefault
}

func (w *Workspace) CreatedAt() time.Time {
	return w.createdAt
}

func (w *Workspace) UpdatedAt() time.Time {
	return w.updatedAt
}

func (w *Workspace) SetID(id uint) error {
	if w.id != 0 {
		return fmt.Errorf("workspace ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("workspace ID cannot be zero")
	}
	w.id = id
	return nil
}

// Update changes name, slug and description. The default flag is immutable:
// there is no operation that moves it between workspaces.
func (w *Workspace) Update(name string, slug vo.Slug, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if !slug.IsValid() {
		return fmt.Errorf("invalid slug")
	}

	w.name = name
	w.slug = slug
	w.description = strings.TrimSpace(description)
	w.updatedAt = biztime.NowUTC()
	return nil
}

// EnsureDeletable rejects deleting the default workspace.
func (w *Workspace) EnsureDeletable() error {
	if w.isDefault {
		return errors.NewConflictError("the default workspace cannot be deleted")
	}
	return nil
}
