package session

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"shipdesk/internal/models"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestKeys(t *testing.T) {
	authKey, encKey, err := Keys(testSecret)
	if err != nil {
		t.Fatalf("Keys() error = %v", err)
	}
	if len(authKey) != 32 || len(encKey) != 32 {
		t.Fatalf("key lengths = %d/%d, want 32/32", len(authKey), len(encKey))
	}
	if bytes.Equal(authKey, encKey) {
		t.Error("auth and enc keys must differ")
	}

	again, _, _ := Keys(testSecret)
	if !bytes.Equal(authKey, again) {
		t.Error("derivation must be deterministic")
	}
	other, _, _ := Keys(testSecret + "x")
	if bytes.Equal(authKey, other) {
		t.Error("different secrets must give different keys")
	}
}

type draft struct {
	Step int    `json:"step"`
	LOA  string `json:"loa"`
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := NewCookieStore(testSecret, false)
	if err != nil {
		t.Fatalf("NewCookieStore() error = %v", err)
	}

	r := gin.New()
	r.Use(sessions.Sessions(CookieName, store))

	r.GET("/start", func(c *gin.Context) {
		_ = Start(c, models.Session{Token: "jwt", UserID: "u1", DisplayName: "Admin", RoleName: "Admin"})
		_ = SaveDraft(c, draft{Step: 2, LOA: "50"})
		_ = Carry(c, "ga_input_id", "GA1")
		c.Status(http.StatusOK)
	})
	r.GET("/read", func(c *gin.Context) {
		s, ok := Current(c)
		var d draft
		hasDraft := LoadDraft(c, &d)
		c.JSON(http.StatusOK, gin.H{
			"ok":      ok,
			"token":   s.Token,
			"name":    s.DisplayName,
			"draft":   hasDraft,
			"step":    d.Step,
			"loa":     d.LOA,
			"carried": Take(c, "ga_input_id"),
		})
	})
	r.GET("/big", func(c *gin.Context) {
		err := SaveDraft(c, draft{Step: 1, LOA: strings.Repeat("Ж", MaxDraftBytes)})
		c.JSON(http.StatusOK, gin.H{"tooLarge": errors.Is(err, ErrDraftTooLarge)})
	})
	r.GET("/end", func(c *gin.Context) {
		_ = End(c)
		c.Status(http.StatusOK)
	})
	return r
}

func do(r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSessionRoundTrip(t *testing.T) {
	r := newTestEngine(t)

	start := do(r, "/start", nil)
	cookies := start.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("no session cookie set")
	}
	if !cookies[0].HttpOnly {
		t.Error("session cookie must be HttpOnly")
	}

	first := do(r, "/read", cookies)
	body := first.Body.String()
	for _, want := range []string{`"ok":true`, `"token":"jwt"`, `"name":"Admin"`, `"draft":true`, `"step":2`, `"loa":"50"`, `"carried":"GA1"`} {
		if !bytes.Contains([]byte(body), []byte(want)) {
			t.Errorf("body %s missing %s", body, want)
		}
	}

	// carry одноразовый
	second := do(r, "/read", first.Result().Cookies())
	if !bytes.Contains(second.Body.Bytes(), []byte(`"carried":""`)) {
		t.Errorf("flash should be consumed, got %s", second.Body.String())
	}
}

func TestEndClearsEverything(t *testing.T) {
	r := newTestEngine(t)

	cookies := do(r, "/start", nil).Result().Cookies()
	ended := do(r, "/end", cookies).Result().Cookies()

	read := do(r, "/read", ended)
	body := read.Body.String()
	if !bytes.Contains([]byte(body), []byte(`"ok":false`)) || !bytes.Contains([]byte(body), []byte(`"draft":false`)) {
		t.Errorf("session not cleared: %s", body)
	}
}

func TestTamperedCookieIsIgnored(t *testing.T) {
	r := newTestEngine(t)

	cookies := do(r, "/start", nil).Result().Cookies()
	forged := &http.Cookie{Name: CookieName, Value: cookies[0].Value + "x"}

	body := do(r, "/read", []*http.Cookie{forged}).Body.String()
	if !bytes.Contains([]byte(body), []byte(`"ok":false`)) {
		t.Errorf("tampered cookie accepted: %s", body)
	}
}

func TestOversizedDraftKeepsPrevious(t *testing.T) {
	r := newTestEngine(t)

	cookies := do(r, "/start", nil).Result().Cookies()
	big := do(r, "/big", cookies)
	if !bytes.Contains(big.Body.Bytes(), []byte(`"tooLarge":true`)) {
		t.Fatalf("oversized draft accepted: %s", big.Body.String())
	}
	if len(big.Result().Cookies()) != 0 {
		t.Error("oversized draft must not rewrite the cookie")
	}

	body := do(r, "/read", cookies).Body.String()
	if !strings.Contains(body, `"step":2`) || !strings.Contains(body, `"loa":"50"`) {
		t.Errorf("previous draft lost: %s", body)
	}
}
