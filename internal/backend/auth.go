package backend

import (
	"context"
	"net/http"

	"shipdesk/internal/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login: единственный вызов без токена. 401 здесь значит неверный пароль,
// поэтому перехватчик не участвует и ошибка приходит как *APIError.
func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	var res models.LoginResult
	if err := c.send(req, &res); err != nil {
		return nil, err
	}
	if res.Token == "" {
		return nil, &APIError{Status: http.StatusBadGateway, Message: "login response carried no token"}
	}
	return &res, nil
}
