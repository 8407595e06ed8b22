package auth

import (
	"context"

	"github.com/codezenith/hrms-backend-go/internal/domain/user"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	// LoginWithGoogle exchanges an authorization code for a token of an existing account.
	LoginWithGoogle(ctx context.Context, code string) (TokenResponse, error)
	Me(ctx context.Context, actor user.Actor) (MeResponse, error)
	ChangePassword(ctx context.Context, actor user.Actor, req ChangePasswordRequest) error
}
