package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/secmon-lab/vatika/pkg/domain/model"
	"github.com/secmon-lab/vatika/pkg/utils/async"
	"github.com/secmon-lab/vatika/pkg/utils/logging"
	"github.com/secmon-lab/vatika/pkg/utils/safe"
)

// AnswerUseCase answers plant questions
type AnswerUseCase interface {
	Answer(ctx context.Context, req *model.AnswerRequest) *model.AnswerEnvelope
}

// PlantStore serves the catalog, bookmarks and plant of the day
type PlantStore interface {
	Plants() []*model.Plant
	GetPlant(id model.PlantID) (*model.Plant, error)
	SearchPlants(query string) []*model.Plant
	FilterByCategory(category string) []*model.Plant
	BookmarkedPlants() []model.PlantID
	BookmarkedPlantDetails() []*model.Plant
	AddBookmark(ctx context.Context, id model.PlantID) error
	RemoveBookmark(ctx context.Context, id model.PlantID) error
	DailyPlant() *model.Plant
	LastRotated() string
	RotateDailyPlant(ctx context.Context) (bool, error)
	SetDailyPlant(ctx context.Context, plant *model.Plant) error
	Initialize(ctx context.Context) error
}

type Server struct {
	router        *chi.Mux
	answer        AnswerUseCase
	plants        PlantStore
	answerTimeout time.Duration
	maxBodyBytes  int64
	dispatcher    *async.Dispatcher
}

type Options func(*Server)

// WithAnswerTimeout bounds how long a single answer request may wait for
// the provider chain. Zero means no limit.
func WithAnswerTimeout(d time.Duration) Options {
	return func(s *Server) {
		s.answerTimeout = d
	}
}

func WithMaxBodyBytes(n int64) Options {
	return func(s *Server) {
		s.maxBodyBytes = n
	}
}

func New(answer AnswerUseCase, plants PlantStore, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:        r,
		answer:        answer,
		plants:        plants,
		answerTimeout: 60 * time.Second,
		maxBodyBytes:  1 << 20,
		dispatcher:    &async.Dispatcher{},
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Post("/plant-qa", s.plantQAHandler)

		r.Route("/plants", func(r chi.Router) {
			r.Get("/", s.listPlantsHandler)
			r.Post("/refresh", s.refreshPlantsHandler)
			r.Get("/search", s.searchPlantsHandler)
			r.Get("/category/{category}", s.plantsByCategoryHandler)
			r.Get("/{id}", s.getPlantHandler)
		})

		r.Route("/daily", func(r chi.Router) {
			r.Get("/", s.getDailyPlantHandler)
			r.Put("/", s.setDailyPlantHandler)
		})

		r.Route("/bookmarks", func(r chi.Router) {
			r.Get("/", s.listBookmarksHandler)
			r.Put("/{id}", s.addBookmarkHandler)
			r.Delete("/{id}", s.removeBookmarkHandler)
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Wait blocks until background jobs started by requests have finished
func (s *Server) Wait() {
	s.dispatcher.Wait()
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		logger := logging.Default().With("request_id", middleware.GetReqID(r.Context()))
		r = r.WithContext(logging.With(r.Context(), logger))

		defer func() {
			logger.Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.From(ctx).Error("failed to marshal response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(ctx, w, data)
}
