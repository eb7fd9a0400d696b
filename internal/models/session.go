package models

// Session: то, что дашборд хранит о вошедшем пользователе.
// Токен непрозрачный, выдаётся бэкендом на /auth/login.
type Session struct {
	Token       string
	UserID      string
	DisplayName string
	Email       string
	RoleID      string
	RoleName    string
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}

// LoginResult: ответ POST /auth/login
type LoginResult struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	RoleID   string `json:"role_id"`
	RoleName string `json:"role_name"`
}

func (r LoginResult) Session() Session {
	return Session{
		Token:       r.Token,
		UserID:      r.UserID,
		DisplayName: r.Name,
		Email:       r.Email,
		RoleID:      r.RoleID,
		RoleName:    r.RoleName,
	}
}
