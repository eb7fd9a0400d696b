package backend

import (
	"context"
	"net/http"
	"net/url"

	"shipdesk/internal/models"
)

type createdVessel struct {
	VesselID string `json:"vessel_id"`
}

type vesselTypeList struct {
	VesselTypes []models.VesselType `json:"vessel_types"`
}

func (c *Caller) CreateVessel(ctx context.Context, in models.VesselInput) (string, error) {
	var res createdVessel
	if err := c.do(ctx, http.MethodPost, "/vessels/", in, &res); err != nil {
		return "", err
	}
	if res.VesselID == "" {
		return "", &APIError{Status: http.StatusBadGateway, Message: "vessel created without an id"}
	}
	return res.VesselID, nil
}

func (c *Caller) UpdateVessel(ctx context.Context, id string, in models.VesselInput) error {
	return c.do(ctx, http.MethodPut, "/vessels/"+url.PathEscape(id), in, nil)
}

// DeleteVessel: откат, если проект под уже созданное судно не создался
func (c *Caller) DeleteVessel(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/vessels/"+url.PathEscape(id), nil, nil)
}

func (c *Caller) VesselTypes(ctx context.Context) ([]models.VesselType, error) {
	var res vesselTypeList
	if err := c.do(ctx, http.MethodGet, "/vessels/types", nil, &res); err != nil {
		return nil, err
	}
	return res.VesselTypes, nil
}
