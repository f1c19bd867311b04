package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"studylife/internal/models"
)

// Login authenticates with the backend. Per backend convention the body
// is form-url-encoded with username/password fields, the username being
// the email address. On success the token is persisted in the session
// store and returned.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return "", transportErr("building request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("login request failed", zap.Error(err))
		return "", transportErr("network error", err)
	}
	defer resp.Body.Close()

	var tok models.TokenResponse
	if err := decodeLoginResponse(resp, &tok); err != nil {
		return "", err
	}

	if err := c.session.SetToken(tok.AccessToken); err != nil {
		return "", transportErr("persisting token", err)
	}
	return tok.AccessToken, nil
}

func decodeLoginResponse(resp *http.Response, tok *models.TokenResponse) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body struct {
			Detail string `json:"detail"`
		}
		detail := "Login failed"
		if err := jsonDecode(resp, &body); err == nil && body.Detail != "" {
			detail = body.Detail
		}
		return rejectedErr(resp.StatusCode, detail)
	}
	if err := jsonDecode(resp, tok); err != nil {
		return transportErr("decoding response", err)
	}
	return nil
}

// SignupParams is the registration payload. Signup does not log the new
// account in.
type SignupParams struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Course   string `json:"course"`
	Password string `json:"password"`
}

func (c *Client) Signup(ctx context.Context, p SignupParams) (models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodPost, "/api/auth/signup", false, p, &user)
	return user, err
}

// CurrentUser fetches the logged-in profile.
func (c *Client) CurrentUser(ctx context.Context) (models.User, error) {
	var user models.User
	err := c.get(ctx, "/api/auth/me", true, &user)
	return user, err
}

func (c *Client) UpdateProfile(ctx context.Context, fullName, course string) (models.User, error) {
	payload := struct {
		FullName string `json:"full_name"`
		Course   string `json:"course"`
	}{fullName, course}

	var user models.User
	err := c.do(ctx, http.MethodPut, "/api/auth/update-profile", true, payload, &user)
	return user, err
}

// ChangePassword returns the server's confirmation message.
func (c *Client) ChangePassword(ctx context.Context, current, newPassword string) (string, error) {
	payload := struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}{current, newPassword}

	var out struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/change-password", true, payload, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// DeleteAccount is irreversible. The local session is cleared only after
// the server confirms the deletion.
func (c *Client) DeleteAccount(ctx context.Context) error {
	if err := c.do(ctx, http.MethodDelete, "/api/auth/delete-account", true, nil, nil); err != nil {
		return err
	}
	if err := c.session.Clear(); err != nil {
		return transportErr("clearing session", err)
	}
	return nil
}

// Logout discards the local token. There is no server-side session to
// invalidate.
func (c *Client) Logout() error {
	return c.session.Clear()
}
