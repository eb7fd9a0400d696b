package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"shipdesk/internal/backend"
	"shipdesk/internal/session"

	"github.com/gin-gonic/gin"
)

func ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"email": ""})
}

type loginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Invalid form data", "email": ""})
		return
	}

	form.Email = strings.TrimSpace(form.Email)
	if form.Email == "" || form.Password == "" {
		render(c, http.StatusBadRequest, "login.html", gin.H{
			"error": "Email and password required",
			"email": form.Email,
		})
		return
	}

	res, err := h.API.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		status := http.StatusUnauthorized
		var apiErr *backend.APIError
		if !errors.As(err, &apiErr) || apiErr.Status >= 500 {
			log.Printf("login failed for %s: %v", form.Email, err)
			status = backend.StatusFor(err)
		}
		render(c, status, "login.html", gin.H{
			"error": backend.UserMessage(err),
			"email": form.Email,
		})
		return
	}

	s := res.Session()
	if err := session.Start(c, s); err != nil {
		log.Printf("failed to save session: %v", err)
		render(c, http.StatusInternalServerError, "login.html", gin.H{
			"error": "Could not start session",
			"email": form.Email,
		})
		return
	}

	h.Journal.Record(sessionEntry(s.UserID, s.DisplayName, "login"))
	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *Handler) Logout(c *gin.Context) {
	if s, ok := session.Current(c); ok {
		h.Journal.Record(sessionEntry(s.UserID, s.DisplayName, "logout"))
	}
	_ = session.End(c)
	c.Redirect(http.StatusFound, "/login")
}
