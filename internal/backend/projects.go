package backend

import (
	"context"
	"net/http"
	"net/url"

	"shipdesk/internal/models"
)

type projectList struct {
	TotalProjects int              `json:"total_projects"`
	Projects      []models.Project `json:"projects"`
}

type createdProject struct {
	ProjectID string `json:"project_id"`
}

func (c *Caller) ListProjects(ctx context.Context) ([]models.Project, error) {
	var res projectList
	if err := c.do(ctx, http.MethodGet, "/projects/", nil, &res); err != nil {
		return nil, err
	}
	return res.Projects, nil
}

func (c *Caller) GetProject(ctx context.Context, id string) (*models.Project, error) {
	var p models.Project
	if err := c.do(ctx, http.MethodGet, "/projects/"+url.PathEscape(id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Caller) CreateProject(ctx context.Context, in models.ProjectInput) (string, error) {
	var res createdProject
	if err := c.do(ctx, http.MethodPost, "/projects/", in, &res); err != nil {
		return "", err
	}
	if res.ProjectID == "" {
		return "", &APIError{Status: http.StatusBadGateway, Message: "project created without an id"}
	}
	return res.ProjectID, nil
}

func (c *Caller) UpdateProject(ctx context.Context, id string, in models.ProjectUpdate) error {
	return c.do(ctx, http.MethodPut, "/projects/"+url.PathEscape(id), in, nil)
}
