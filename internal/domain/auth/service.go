package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)
	// LoginWithGoogle issues tokens for an already-verified Google account
	// email. The OAuth exchange itself happens at the handler boundary.
	LoginWithGoogle(ctx context.Context, email string, sessionReq SessionTrackingRequest) (TokenResponse, error)
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
