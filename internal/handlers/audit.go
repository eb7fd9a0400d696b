package handlers

import (
	"net/http"

	"shipdesk/internal/models"

	"github.com/gin-gonic/gin"
)

const auditPageSize = 200

func (h *Handler) ListAuditLogs(c *gin.Context) {
	logs, err := h.Journal.Recent(auditPageSize)
	if err != nil {
		c.Error(err)
		renderError(c, http.StatusInternalServerError, "Could not load the audit journal")
		return
	}

	render(c, http.StatusOK, "audit_list.html", gin.H{
		"logs":    logs,
		"enabled": h.Journal.Enabled(),
	})
}

func sessionEntry(userID, name, action string) models.AuditLog {
	return models.AuditLog{
		UserID:   userID,
		UserName: name,
		Entity:   "session",
		EntityID: userID,
		Action:   action,
	}
}
