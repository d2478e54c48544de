package routes

import (
	"shiftservice/internal/entities"
)

type routeResponse struct {
	ID     int64  `json:"route_ID"`
	Name   string `json:"name"`
	Origin string `json:"origin"`
	Dest   string `json:"dest"`
	Active bool   `json:"active"`
}

func toDomain(resp *routeResponse) *entities.Route {
	if resp == nil {
		return nil
	}

	return &entities.Route{
		ID:     resp.ID,
		Name:   resp.Name,
		Origin: resp.Origin,
		Dest:   resp.Dest,
		Active: resp.Active,
	}
}
