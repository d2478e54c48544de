package fetch_routes

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/luxchile/service-routes/internal/domain/entity"
)

type Handler struct {
	useCase usecase
}

func New(u usecase) *Handler {
	return &Handler{
		useCase: u,
	}
}

func (h *Handler) GetRoutes(w http.ResponseWriter, r *http.Request) {
	routes, err := h.useCase.List(r.Context())
	if err != nil {
		log.Printf("from GetRoutes REST: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toRouteDtoResponse(routes))
}

func (h *Handler) GetRouteById(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	route, err := h.useCase.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("from GetRouteById REST: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if route == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, toRouteDtoResponse([]*entity.Route{route})[0])
}

type routeDto struct {
	ID     int64  `json:"route_ID"`
	Name   string `json:"name"`
	Origin string `json:"origin"`
	Dest   string `json:"dest"`
	Active bool   `json:"active"`
}

func toRouteDtoResponse(routes []*entity.Route) []routeDto {
	resp := make([]routeDto, 0, len(routes))
	for _, route := range routes {
		resp = append(resp, routeDto{
			ID:     route.ID,
			Name:   route.Name,
			Origin: route.Origin,
			Dest:   route.Dest,
			Active: route.Active,
		})
	}

	return resp
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("encode response: %v", err)
	}
}
