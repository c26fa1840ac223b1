package commands

import (
	"context"
	"log/slog"

	"parkhub/internal/domain/user"
	reqdto "parkhub/internal/handler/dto/request"
	"parkhub/internal/infra"
	"parkhub/internal/pkg/errs"
	"parkhub/internal/pkg/jwt"
	"parkhub/internal/pkg/password"
	"parkhub/internal/usecase/queries"
	"parkhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUsernameTaken        = errs.New("username already taken")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	UserID    uuid.UUID
	Role      string
	TokenPair *TokenPair
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (uuid.UUID, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	userStore  queries.UserStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, userStore queries.UserStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		userStore:  userStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (uuid.UUID, error) {
	username, pass, email, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	hash, err := password.HashPassword(pass.Value())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	newUser := user.NewUser(username, hash, email, user.RoleUser)

	var userID uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Users().Create(ctx, newUser)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrUsernameTaken)
			}
			return errs.Mark(err, ErrDatabaseFailure)
		}
		userID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return userID, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := a.userStore.FindCredentialsByUsername(ctx, req.GetUsername())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// same failure as a bad password so usernames can't be probed
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if err := password.ComparePassword(credentials.PasswordHash, req.Password); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	role, err := user.NewRole(credentials.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	tokenPair, err := a.generateTokenPair(credentials.ID, role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, credentials.ID)
	})
	if err != nil {
		// login already succeeded; a missed last_login stamp is not worth
		// failing the request over
		slog.Warn("failed to update last login", "user_id", credentials.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:    credentials.ID,
		Role:      role.String(),
		TokenPair: tokenPair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	// re-read the role so a demotion takes effect at the next refresh
	authorized, err := a.userStore.FindAuthorizedByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrUserNotFound)
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	role, err := user.NewRole(authorized.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	return a.generateTokenPair(authorized.ID, role)
}

func (a *authCommandsImpl) generateTokenPair(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
