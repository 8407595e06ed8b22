package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/codezenith/hrms-backend-go/internal/domain/auth"
	"github.com/codezenith/hrms-backend-go/internal/domain/user"
	"github.com/codezenith/hrms-backend-go/internal/pkg/jwt"
	"github.com/codezenith/hrms-backend-go/internal/pkg/oauth"
	"github.com/codezenith/hrms-backend-go/internal/pkg/password"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
	google oauth.GoogleService
}

// NewAuthService builds the auth service. google may be nil when Google
// sign-in is not configured.
func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service, google oauth.GoogleService) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
		google:         google,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest) (auth.TokenResponse, error) {
	if err := loginReq.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, loginReq.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Google-only accounts have no password
	if userData.PasswordHash == nil || !password.Matches(*userData.PasswordHash, loginReq.Password) {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issue(ctx, userData)
}

// LoginWithGoogle implements auth.AuthService. Only accounts that already
// exist can sign in; the Google identity is linked on first use.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, code string) (auth.TokenResponse, error) {
	if a.google == nil {
		return auth.TokenResponse{}, auth.ErrGoogleLoginDisabled
	}

	profile, err := a.google.Exchange(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to exchange google code: %w", err)
	}
	if !profile.VerifiedEmail {
		return auth.TokenResponse{}, auth.ErrGoogleEmailUnverified
	}

	userData, err := a.UserRepository.LinkGoogleAccount(ctx, profile.GoogleID, profile.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to link google account: %w", err)
	}

	return a.issue(ctx, userData)
}

func (a *AuthServiceImpl) issue(ctx context.Context, userData user.User) (auth.TokenResponse, error) {
	if !userData.IsActive {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	actor := actorOf(userData)
	token, expiresAt, err := a.Service.GenerateAccessToken(actor)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	if err := a.UserRepository.TouchLastLogin(ctx, userData.ID); err != nil {
		slog.WarnContext(ctx, "failed to record last login",
			slog.String("user_id", userData.ID),
			slog.Any("error", err),
		)
	}

	return auth.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User:        meOf(userData),
	}, nil
}

func actorOf(u user.User) user.Actor {
	actor := user.Actor{
		UserID: u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
	}
	if u.EmployeeID != nil {
		actor.EmployeeID = *u.EmployeeID
	}
	return actor
}

func meOf(u user.User) auth.MeResponse {
	return auth.MeResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       string(u.Role),
		EmployeeID: u.EmployeeID,
	}
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context, actor user.Actor) (auth.MeResponse, error) {
	userData, err := a.UserRepository.GetByID(ctx, actor.UserID)
	if err != nil {
		return auth.MeResponse{}, err
	}
	return meOf(userData), nil
}

// ChangePassword implements auth.AuthService.
func (a *AuthServiceImpl) ChangePassword(ctx context.Context, actor user.Actor, req auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userData, err := a.UserRepository.GetByID(ctx, actor.UserID)
	if err != nil {
		return err
	}
	if userData.PasswordHash == nil || !password.Matches(*userData.PasswordHash, req.CurrentPassword) {
		return auth.ErrPasswordMismatch
	}

	hash, err := password.Hash(req.NewPassword)
	if err != nil {
		return err
	}
	if err := a.UserRepository.UpdatePassword(ctx, userData.ID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}
