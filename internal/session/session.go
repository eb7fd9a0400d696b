package session

import (
	"errors"
	"fmt"
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"

	"shipdesk/internal/models"
)

const (
	keyToken    = "token"
	keyUserID   = "user_id"
	keyName     = "name"
	keyEmail    = "email"
	keyRoleID   = "role_id"
	keyRoleName = "role_name"
	keyDraft    = "wizard_draft"

	carryPrefix = "carry:"

	// MaxDraftBytes: потолок для черновика в JSON. Вместе с токеном
	// cookie должна уложиться в 4096 байт securecookie.
	MaxDraftBytes = 2048
)

var ErrDraftTooLarge = errors.New("session: wizard draft too large")

// Current: сессия текущего запроса. ok=false, если токена нет.
func Current(c *gin.Context) (models.Session, bool) {
	sess := sessions.Default(c)
	token, _ := sess.Get(keyToken).(string)
	if token == "" {
		return models.Session{}, false
	}

	s := models.Session{Token: token}
	s.UserID, _ = sess.Get(keyUserID).(string)
	s.DisplayName, _ = sess.Get(keyName).(string)
	s.Email, _ = sess.Get(keyEmail).(string)
	s.RoleID, _ = sess.Get(keyRoleID).(string)
	s.RoleName, _ = sess.Get(keyRoleName).(string)
	return s, true
}

func Start(c *gin.Context, s models.Session) error {
	sess := sessions.Default(c)
	sess.Clear()
	sess.Set(keyToken, s.Token)
	sess.Set(keyUserID, s.UserID)
	sess.Set(keyName, s.DisplayName)
	sess.Set(keyEmail, s.Email)
	sess.Set(keyRoleID, s.RoleID)
	sess.Set(keyRoleName, s.RoleName)
	return sess.Save()
}

// End сбрасывает всё: токен, данные пользователя, черновик мастера
func End(c *gin.Context) error {
	sess := sessions.Default(c)
	sess.Clear()
	sess.Options(sessions.Options{Path: "/", MaxAge: -1})
	return sess.Save()
}

// LoadDraft читает черновик мастера в dst. false, если черновика нет
// (или он не читается, тогда мастер начинается заново).
func LoadDraft(c *gin.Context, dst any) bool {
	raw, _ := sessions.Default(c).Get(keyDraft).(string)
	if raw == "" {
		return false
	}
	return json.Unmarshal([]byte(raw), dst) == nil
}

// SaveDraft сохраняет черновик. При ошибке в сессии остаётся прежний
// черновик, иначе он ушёл бы в cookie при следующем Save.
func SaveDraft(c *gin.Context, draft any) error {
	buf, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode wizard draft: %w", err)
	}
	if len(buf) > MaxDraftBytes {
		return fmt.Errorf("%w: %d bytes", ErrDraftTooLarge, len(buf))
	}

	sess := sessions.Default(c)
	prev := sess.Get(keyDraft)
	sess.Set(keyDraft, string(buf))
	if err := sess.Save(); err != nil {
		if prev == nil {
			sess.Delete(keyDraft)
		} else {
			sess.Set(keyDraft, prev)
		}
		return fmt.Errorf("save wizard draft: %w", err)
	}
	return nil
}

func ClearDraft(c *gin.Context) error {
	sess := sessions.Default(c)
	sess.Delete(keyDraft)
	return sess.Save()
}

// Carry передаёт значение на следующую страницу (одноразово).
// В URL оно не попадает.
func Carry(c *gin.Context, key, value string) error {
	sess := sessions.Default(c)
	sess.Set(carryPrefix+key, value)
	return sess.Save()
}

// Take забирает значение, оставленное Carry. Повторный вызов вернёт "".
func Take(c *gin.Context, key string) string {
	sess := sessions.Default(c)
	v, _ := sess.Get(carryPrefix + key).(string)
	if v == "" {
		return ""
	}
	sess.Delete(carryPrefix + key)
	if err := sess.Save(); err != nil {
		log.Printf("session: failed to drop carried %q: %v", key, err)
	}
	return v
}
