package handlers

import (
	"net/http"

	"shipdesk/internal/middleware"
	"shipdesk/internal/models"
	"shipdesk/internal/session"

	"github.com/gin-gonic/gin"
)

func IndexPage(c *gin.Context) {
	c.Redirect(http.StatusFound, "/dashboard")
}

// NotFound: неизвестный адрес ведёт на дашборд (или на логин без сессии)
func NotFound(c *gin.Context) {
	if _, ok := session.Current(c); ok {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

type statusCount struct {
	Status models.ProjectStatus
	Count  int
}

func (h *Handler) Dashboard(c *gin.Context) {
	api := middleware.API(c)
	ctx := c.Request.Context()
	var problems []string

	perms, err := api.Permissions(ctx)
	if stopped(err) {
		return
	}
	if err != nil {
		c.Error(err)
		problems = append(problems, "Permissions are unavailable right now")
	}

	projects, err := api.ListProjects(ctx)
	if stopped(err) {
		return
	}
	if err != nil {
		c.Error(err)
		problems = append(problems, "Project summary is unavailable right now")
	}

	render(c, http.StatusOK, "dashboard.html", gin.H{
		"permissions": perms,
		"summary":     summarize(projects),
		"total":       len(projects),
		"problems":    problems,
	})
}

func summarize(projects []models.Project) []statusCount {
	counts := make(map[models.ProjectStatus]int, len(models.ProjectStatuses))
	for _, p := range projects {
		counts[p.ProjectStatus]++
	}
	out := make([]statusCount, 0, len(models.ProjectStatuses))
	for _, st := range models.ProjectStatuses {
		out = append(out, statusCount{Status: st, Count: counts[st]})
	}
	return out
}
