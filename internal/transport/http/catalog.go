package http

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/AadiD123/348-Project/internal/domain"
)

// CatalogService is the minimal interface the bar/category listings need.
type CatalogService interface {
	ListBars(ctx context.Context) ([]domain.Bar, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// HandleListBars returns the handler for GET /bars.
func HandleListBars(svc CatalogService) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		bars, err := svc.ListBars(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		resp := make([]barResponse, 0, len(bars))
		for _, bar := range bars {
			resp = append(resp, barResponse{
				BarID:   bar.ID,
				Name:    bar.Name,
				Address: bar.Address,
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleListCategories returns the handler for GET /categories.
func HandleListCategories(svc CatalogService) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		categories, err := svc.ListCategories(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		resp := make([]categoryResponse, 0, len(categories))
		for _, category := range categories {
			resp = append(resp, categoryResponse{
				CategoryID:  category.ID,
				Name:        category.Name,
				Description: category.Description,
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

type barResponse struct {
	BarID   int64  `json:"bar_id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type categoryResponse struct {
	CategoryID  int64   `json:"category_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}
