package api

import (
	"context"
	"net/http"
)

// SignupRequest carries the fields the signup form collects.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (c *Client) SignUp(ctx context.Context, req SignupRequest) error {
	_, err := c.do(ctx, http.MethodPost, "/user/auth/signup", req)
	return err
}

// SignIn exchanges credentials for a bearer token. The token is opaque to
// the client; an empty token on a success envelope is the server's bug, so
// it surfaces as a domain error.
func (c *Client) SignIn(ctx context.Context, email, password string) (string, error) {
	payload := map[string]string{"email": email, "password": password}
	env, err := c.do(ctx, http.MethodPost, "/user/auth/signin", payload)
	if err != nil {
		return "", err
	}
	if env.Token == "" {
		return "", &DomainError{Message: "token not received from server"}
	}
	return env.Token, nil
}
