package backend

import (
	"context"
	"net/http"

	"shipdesk/internal/models"
)

type permissionList struct {
	DashboardPermissions []models.Permission `json:"dashboard_permissions"`
}

// Modules: дерево меню для роли текущего токена
func (c *Caller) Modules(ctx context.Context) ([]models.NavModule, error) {
	var tree []models.NavModule
	if err := c.do(ctx, http.MethodGet, "/modules/", nil, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

func (c *Caller) Permissions(ctx context.Context) ([]models.Permission, error) {
	var res permissionList
	if err := c.do(ctx, http.MethodGet, "/dashboard/", nil, &res); err != nil {
		return nil, err
	}
	return res.DashboardPermissions, nil
}
