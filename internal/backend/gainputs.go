package backend

import (
	"context"
	"net/http"
	"net/url"

	"shipdesk/internal/models"
)

type createdGAInput struct {
	GAInputID     string `json:"ga_input_id"`
	VersionNumber int    `json:"version_number"`
	Status        string `json:"status"`
}

// LatestGAInput возвращает ErrNotFound (через errors.Is), если параметров ещё нет
func (c *Caller) LatestGAInput(ctx context.Context, projectID string) (*models.GAInput, error) {
	var g models.GAInput
	path := "/gainputs/project/" + url.PathEscape(projectID) + "/latest"
	if err := c.do(ctx, http.MethodGet, path, nil, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (c *Caller) CreateGAInput(ctx context.Context, in models.GAInput) (string, error) {
	var res createdGAInput
	if err := c.do(ctx, http.MethodPost, "/gainputs/", in, &res); err != nil {
		return "", err
	}
	if res.GAInputID == "" {
		return "", &APIError{Status: http.StatusBadGateway, Message: "GA input created without an id"}
	}
	return res.GAInputID, nil
}

func (c *Caller) UpdateGAInput(ctx context.Context, id string, in models.GAInput) error {
	return c.do(ctx, http.MethodPut, "/gainputs/"+url.PathEscape(id), in, nil)
}

func hullPath(gaInputID string) string {
	return "/gainputs/" + url.PathEscape(gaInputID) + "/hull"
}

func (c *Caller) GetHull(ctx context.Context, gaInputID string) (*models.HullGeometry, error) {
	var h models.HullGeometry
	if err := c.do(ctx, http.MethodGet, hullPath(gaInputID), nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

func (c *Caller) CreateHull(ctx context.Context, gaInputID string, in models.HullGeometry) error {
	return c.do(ctx, http.MethodPost, hullPath(gaInputID), in, nil)
}

func (c *Caller) UpdateHull(ctx context.Context, gaInputID string, in models.HullGeometry) error {
	return c.do(ctx, http.MethodPut, hullPath(gaInputID), in, nil)
}
