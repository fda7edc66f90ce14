package usecases

import (
	"context"

	"atende/internal/application/auth/dto"
	"atende/internal/domain/user"
	"atende/internal/shared/errors"
	"atende/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	User  dto.UserDTO      `json:"user"`
	Token dto.AuthTokenDTO `json:"token"`
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	issuer   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	issuer TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   issuer,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email := user.NormalizeEmail(cmd.Email)

	if email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	// Unknown email and wrong password produce the same answer.
	u, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil || u == nil {
		uc.logger.Warnw("login failed, unknown email", "email", email)
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if err := uc.hasher.Compare(u.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("login failed, wrong password", "user_id", u.ID())
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	token, expiresAt, err := uc.issuer.Issue(u.ID(), u.Email())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to login")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID())

	return &LoginResult{
		User:  toUserDTO(u),
		Token: dto.AuthTokenDTO{Token: token, ExpiresAt: expiresAt},
	}, nil
}
