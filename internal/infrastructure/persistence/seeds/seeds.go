// Package seeds installs the bootstrap rows the system cannot run without:
// the single default workspace and the initial owner admin.
package seeds

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"atende/internal/application/auth/usecases"
	"atende/internal/domain/user"
	wsvo "atende/internal/domain/workspace/value_objects"
	"atende/internal/infrastructure/persistence/models"
	"atende/internal/shared/logger"
	"atende/internal/shared/utils"
)

type WorkspaceSeed struct {
	Name        string `yaml:"name" validate:"required,max=100"`
	Slug        string `yaml:"slug" validate:"max=100"`
	Description string `yaml:"description"`
}

type OwnerSeed struct {
	Email    string `yaml:"email" validate:"required,email"`
	Name     string `yaml:"name" validate:"required,max=100"`
	Password string `yaml:"password" validate:"required,min=8"`
}

type SeedFile struct {
	DefaultWorkspace WorkspaceSeed `yaml:"default_workspace"`
	Owner            *OwnerSeed    `yaml:"owner"`
}

type Seeder struct {
	db     *gorm.DB
	hasher usecases.PasswordHasher
	logger logger.Interface
}

func NewSeeder(db *gorm.DB, hasher usecases.PasswordHasher, log logger.Interface) *Seeder {
	return &Seeder{
		db:     db,
		hasher: hasher,
		logger: log.With("component", "seeds"),
	}
}

// Run loads the fixture and applies it idempotently. Existing rows are
// never modified, so re-running after a deploy is safe.
func (s *Seeder) Run(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var file SeedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}
	if err := utils.ValidateStruct(file.DefaultWorkspace); err != nil {
		return fmt.Errorf("invalid default workspace seed: %w", err)
	}
	if file.Owner != nil {
		if err := utils.ValidateStruct(file.Owner); err != nil {
			return fmt.Errorf("invalid owner seed: %w", err)
		}
	}

	if err := s.seedDefaultWorkspace(file.DefaultWorkspace); err != nil {
		return err
	}

	if file.Owner != nil {
		if err := s.seedOwner(*file.Owner); err != nil {
			return err
		}
	}

	return nil
}

func (s *Seeder) seedDefaultWorkspace(seed WorkspaceSeed) error {
	slugInput := seed.Slug
	if slugInput == "" {
		slugInput = seed.Name
	}
	slug, err := wsvo.NewSlug(slugInput)
	if err != nil {
		return fmt.Errorf("invalid default workspace slug: %w", err)
	}

	model := models.WorkspaceModel{
		Name:        seed.Name,
		Slug:        slug.String(),
		Description: seed.Description,
		IsDefault:   true,
	}

	// Keyed on is_default so the invariant of a single default holds even
	// when the fixture's name or slug changes between runs.
	result := s.db.Where(&models.WorkspaceModel{IsDefault: true}).FirstOrCreate(&model)
	if result.Error != nil {
		return fmt.Errorf("failed to seed default workspace: %w", result.Error)
	}

	if result.RowsAffected > 0 {
		s.logger.Infow("default workspace installed", "id", model.ID, "slug", model.Slug)
	}
	return nil
}

func (s *Seeder) seedOwner(seed OwnerSeed) error {
	email := user.NormalizeEmail(seed.Email)

	hash, err := s.hasher.Hash(seed.Password)
	if err != nil {
		return fmt.Errorf("failed to hash owner password: %w", err)
	}

	userModel := models.UserModel{
		Email:         email,
		Name:          seed.Name,
		PasswordHash:  hash,
		EmailVerified: true,
	}
	result := s.db.Where(&models.UserModel{Email: email}).FirstOrCreate(&userModel)
	if result.Error != nil {
		return fmt.Errorf("failed to seed owner user: %w", result.Error)
	}

	adminModel := models.AdminModel{
		UserID:  userModel.ID,
		IsOwner: true,
	}
	result = s.db.Where(&models.AdminModel{UserID: userModel.ID}).FirstOrCreate(&adminModel)
	if result.Error != nil {
		return fmt.Errorf("failed to seed owner admin: %w", result.Error)
	}

	if result.RowsAffected > 0 {
		s.logger.Infow("owner admin installed", "user_id", userModel.ID, "email", email)
	}
	return nil
}
