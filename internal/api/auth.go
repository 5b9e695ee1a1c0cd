package api

import "context"

// AuthService wraps the /auth endpoints.
type AuthService struct {
	c *Client
}

// Register creates an account. The returned token establishes a session
// immediately; registration never requires MFA.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (AuthResult, error) {
	var out AuthResult
	err := s.c.post(ctx, "/auth/register", req, &out)
	return out, err
}

// Login authenticates with email and password. When MFARequired is set on
// the result no token is issued yet; the caller must run the OTP flow via
// RequestOTP and VerifyOTP before a session exists.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (AuthResult, error) {
	var out AuthResult
	err := s.c.post(ctx, "/auth/login", req, &out)
	return out, err
}

// RequestOTP asks the backend to send a one-time passcode to the email.
func (s *AuthService) RequestOTP(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return s.c.post(ctx, "/auth/request-otp", body, nil)
}

// VerifyOTP exchanges a one-time passcode for a token.
func (s *AuthService) VerifyOTP(ctx context.Context, email, otp string) (AuthResult, error) {
	body := map[string]string{"email": email, "otp": otp}
	var out AuthResult
	err := s.c.post(ctx, "/auth/verify-otp", body, &out)
	return out, err
}
