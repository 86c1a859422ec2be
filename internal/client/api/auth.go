package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/finkeeper/internal/client/models"
)

// Ack is the empty payload of acknowledgement-only endpoints.
type Ack struct{}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type verifyOTPRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

// Register creates a new account. The coordinator is reset first so a new
// credential attempt always starts from a clean slate, even after a
// terminal refresh failure.
func (c *Client) Register(ctx context.Context, email, password, name string) (*Envelope[models.AuthData], error) {
	c.coord.Reset()
	env, err := do[models.AuthData](ctx, c, http.MethodPost, "/auth/register", nil, registerRequest{Email: email, Password: password, Name: name})
	if err != nil {
		return nil, err
	}
	if env.Success {
		c.setAccessToken(env.Data.AccessToken)
	}
	return env, nil
}

// Login authenticates with the backend. Like Register, it resets the
// coordinator before issuing the request.
func (c *Client) Login(ctx context.Context, email, password string) (*Envelope[models.AuthData], error) {
	c.coord.Reset()
	env, err := do[models.AuthData](ctx, c, http.MethodPost, "/auth/login", nil, loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	if env.Success {
		c.setAccessToken(env.Data.AccessToken)
	}
	return env, nil
}

// Refresh explicitly rotates the access token. A 401 here is terminal:
// the coordinator transitions to invalid and ErrReauthRequired is returned.
func (c *Client) Refresh(ctx context.Context) (*Envelope[models.RefreshData], error) {
	env, err := do[models.RefreshData](ctx, c, http.MethodPost, refreshPath, nil, nil)
	if err != nil {
		return nil, err
	}
	if env.Success {
		c.setAccessToken(env.Data.AccessToken)
	}
	return env, nil
}

// Logout ends the server-side session. The local access token is dropped
// only when the server confirms; a rejected logout leaves the credential
// usable.
func (c *Client) Logout(ctx context.Context) (*Envelope[Ack], error) {
	env, err := do[Ack](ctx, c, http.MethodPost, "/auth/logout", nil, nil)
	if err != nil {
		return nil, err
	}
	if env.Success {
		c.setAccessToken("")
	}
	return env, nil
}

// Me asks the backend who the current session belongs to.
func (c *Client) Me(ctx context.Context) (*Envelope[models.MeData], error) {
	return do[models.MeData](ctx, c, http.MethodGet, "/auth/me", nil, nil)
}

// ForgotPassword requests a password-reset OTP for the given email.
func (c *Client) ForgotPassword(ctx context.Context, email string) (*Envelope[Ack], error) {
	return do[Ack](ctx, c, http.MethodPost, "/auth/forgot-password", nil, forgotPasswordRequest{Email: email})
}

// VerifyOTP completes a password reset with the OTP sent by mail.
func (c *Client) VerifyOTP(ctx context.Context, email, otp, newPassword string) (*Envelope[Ack], error) {
	return do[Ack](ctx, c, http.MethodPost, "/auth/verify-otp", nil, verifyOTPRequest{Email: email, OTP: otp, NewPassword: newPassword})
}
