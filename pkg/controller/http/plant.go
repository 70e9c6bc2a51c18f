package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vatika/pkg/domain/model"
	"github.com/secmon-lab/vatika/pkg/utils/errutil"
)

type plantsResponse struct {
	Plants []*model.Plant `json:"plants"`
}

type dailyPlantResponse struct {
	Plant       *model.Plant `json:"plant"`
	LastRotated string       `json:"lastRotated"`
}

type bookmarksResponse struct {
	BookmarkedPlants []model.PlantID `json:"bookmarkedPlants"`
	Plants           []*model.Plant  `json:"plants"`
}

type setDailyPlantRequest struct {
	ID model.PlantID `json:"id"`
}

func (s *Server) listPlantsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, plantsResponse{Plants: s.plants.Plants()})
}

func (s *Server) searchPlantsHandler(w http.ResponseWriter, r *http.Request) {
	plants := s.plants.SearchPlants(r.URL.Query().Get("q"))
	writeJSON(r.Context(), w, http.StatusOK, plantsResponse{Plants: plants})
}

func (s *Server) plantsByCategoryHandler(w http.ResponseWriter, r *http.Request) {
	plants := s.plants.FilterByCategory(chi.URLParam(r, "category"))
	writeJSON(r.Context(), w, http.StatusOK, plantsResponse{Plants: plants})
}

func (s *Server) getPlantHandler(w http.ResponseWriter, r *http.Request) {
	plant, err := s.plants.GetPlant(model.PlantID(chi.URLParam(r, "id")))
	if err != nil {
		handlePlantError(w, r, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, plant)
}

// refreshPlantsHandler re-fetches the catalog in the background
func (s *Server) refreshPlantsHandler(w http.ResponseWriter, r *http.Request) {
	s.dispatcher.Dispatch(r.Context(), "refresh_catalog", s.plants.Initialize)
	writeJSON(r.Context(), w, http.StatusAccepted, map[string]string{"status": "refreshing"})
}

// getDailyPlantHandler rotates the plant of the day first, which is a no-op
// when it was already chosen today
func (s *Server) getDailyPlantHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, err := s.plants.RotateDailyPlant(ctx); err != nil {
		// rotation already applied in memory; only saving failed
		_ = errutil.Handle(ctx, err, "failed to persist daily plant rotation")
	}

	plant := s.plants.DailyPlant()
	if plant == nil {
		errutil.HandleHTTP(ctx, w, goerr.New("daily plant is not selected yet"), http.StatusNotFound)
		return
	}
	writeJSON(ctx, w, http.StatusOK, dailyPlantResponse{
		Plant:       plant,
		LastRotated: s.plants.LastRotated(),
	})
}

func (s *Server) setDailyPlantHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req setDailyPlantRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxBodyBytes)).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	plant, err := s.plants.GetPlant(req.ID)
	if err != nil {
		handlePlantError(w, r, err)
		return
	}
	if err := s.plants.SetDailyPlant(ctx, plant); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, http.StatusOK, dailyPlantResponse{
		Plant:       plant,
		LastRotated: s.plants.LastRotated(),
	})
}

func (s *Server) listBookmarksHandler(w http.ResponseWriter, r *http.Request) {
	s.writeBookmarks(w, r)
}

func (s *Server) addBookmarkHandler(w http.ResponseWriter, r *http.Request) {
	id := model.PlantID(chi.URLParam(r, "id"))
	if err := s.plants.AddBookmark(r.Context(), id); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	s.writeBookmarks(w, r)
}

func (s *Server) removeBookmarkHandler(w http.ResponseWriter, r *http.Request) {
	id := model.PlantID(chi.URLParam(r, "id"))
	if err := s.plants.RemoveBookmark(r.Context(), id); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	s.writeBookmarks(w, r)
}

func (s *Server) writeBookmarks(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, bookmarksResponse{
		BookmarkedPlants: s.plants.BookmarkedPlants(),
		Plants:           s.plants.BookmarkedPlantDetails(),
	})
}

func handlePlantError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrPlantNotFound):
		errutil.HandleHTTP(r.Context(), w, model.ErrPlantNotFound, http.StatusNotFound)
	default:
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
	}
}
