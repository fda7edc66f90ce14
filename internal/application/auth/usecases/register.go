package usecases

import (
	"context"
	"strings"

	"atende/internal/application/auth/dto"
	"atende/internal/domain/user"
	"atende/internal/shared/errors"
	"atende/internal/shared/logger"
)

type RegisterCommand struct {
	Email    string
	Name     string
	Password string
}

type RegisterResult struct {
	User  dto.UserDTO      `json:"user"`
	Token dto.AuthTokenDTO `json:"token"`
}

type RegisterUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	issuer   TokenIssuer
	logger   logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	issuer TokenIssuer,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   issuer,
		logger:   logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	email := user.NormalizeEmail(cmd.Email)
	uc.logger.Infow("executing register use case", "email", email)

	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.NewValidationError("a valid email is required")
	}
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, errors.NewValidationError("name is required")
	}
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	if existing, err := uc.userRepo.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, errors.NewConflictError("an account with this email already exists")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to register")
	}

	newUser, err := user.NewUser(email, cmd.Name, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("an account with this email already exists")
		}
		uc.logger.Errorw("failed to save user", "email", email, "error", err)
		return nil, errors.NewInternalError("failed to register")
	}

	token, expiresAt, err := uc.issuer.Issue(newUser.ID(), newUser.Email())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", newUser.ID(), "error", err)
		return nil, errors.NewInternalError("failed to register")
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "email", email)

	return &RegisterResult{
		User:  toUserDTO(newUser),
		Token: dto.AuthTokenDTO{Token: token, ExpiresAt: expiresAt},
	}, nil
}

func toUserDTO(u *user.User) dto.UserDTO {
	return dto.UserDTO{
		ID:            u.ID(),
		Email:         u.Email(),
		Name:          u.Name(),
		EmailVerified: u.EmailVerified(),
		CreatedAt:     u.CreatedAt(),
	}
}
