package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"intentd/internal/artifact"
	"intentd/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Ready() bool
	InferTop3(ctx context.Context, text string, labels []string) ([]types.Prediction, error)
	Status() types.StatusResponse
	ListModels() ([]types.CachedModel, error)
}

// AdminService is implemented by services that support model management.
// The admin routes are mounted only when it is implemented and enabled.
type AdminService interface {
	LoadModel(ctx context.Context, modelID string) (types.StatusResponse, error)
	UnloadModel()
}

// NewMux builds the HTTP router. labels are the candidate intents every
// /intent request is classified against.
func NewMux(svc Service, labels []string) http.Handler {
	labels = append([]string(nil), labels...)

	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
			MaxAge:         300,
		}))
	}

	r.Get("/ready", readyHandler(svc))
	r.Post("/intent", intentHandler(svc, labels))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Status())
	})

	r.Get("/models", func(w http.ResponseWriter, r *http.Request) {
		models, err := svc.ListModels()
		if err != nil {
			requestEvent(r, LevelError).Err(err).Msg("list models")
			writeJSONError(w, http.StatusInternalServerError, LabelInternalError, err.Error())
			return
		}
		if models == nil {
			models = []types.CachedModel{}
		}
		writeJSON(w, http.StatusOK, types.ModelsResponse{Models: models})
	})

	if admin, ok := svc.(AdminService); ok && adminEnabled {
		r.Put("/model", loadModelHandler(admin))
		r.Delete("/model", unloadModelHandler(admin))
	}

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

// readyHandler godoc
// @Summary      Readiness probe
// @Description  200 with "OK" once a model is loaded, 503 with "Not ready" otherwise.
// @Tags         health
// @Produce      plain
// @Success      200  {string}  string  "OK"
// @Failure      503  {string}  string  "Not ready"
// @Router       /ready [get]
func readyHandler(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("OK"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("Not ready"))
	}
}

// intentHandler godoc
// @Summary      Classify intent
// @Description  Scores the text against the configured intents and returns the top three.
// @Tags         intent
// @Accept       json
// @Produce      json
// @Param        body  body      types.IntentRequest   true  "Text to classify"
// @Success      200   {object}  types.IntentResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      413   {object}  types.ErrorResponse
// @Failure      415   {object}  types.ErrorResponse
// @Failure      500   {object}  types.ErrorResponse
// @Router       /intent [post]
func intentHandler(svc Service, labels []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, rerr := decodeIntentRequest(w, r)
		if rerr != nil {
			requestEvent(r, LevelInfo).Str("label", rerr.label).Int("status", rerr.status).Msg("intent rejected")
			rerr.write(w)
			return
		}
		requestEvent(r, LevelDebug).Str("text", req.Text).Msg("intent start")

		start := time.Now()
		preds, err := svc.InferTop3(r.Context(), req.Text, labels)
		if err != nil {
			requestEvent(r, LevelError).Err(err).Int("status", http.StatusInternalServerError).Dur("dur", time.Since(start)).Msg("intent end")
			writeJSONError(w, http.StatusInternalServerError, LabelInternalError, err.Error())
			return
		}
		requestEvent(r, LevelInfo).Int("status", http.StatusOK).Dur("dur", time.Since(start)).Msg("intent end")
		writeJSON(w, http.StatusOK, types.IntentResponse{Intents: preds})
	}
}

// loadModelHandler godoc
// @Summary      Load or replace the model
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      types.LoadModelRequest  true  "Model to load"
// @Success      200   {object}  types.StatusResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      502   {object}  types.ErrorResponse
// @Router       /model [put]
func loadModelHandler(admin AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, rerr := decodeLoadModelRequest(w, r)
		if rerr != nil {
			rerr.write(w)
			return
		}
		ctx, cancel := loadContext(r.Context())
		defer cancel()
		start := time.Now()
		status, err := admin.LoadModel(ctx, req.Model)
		if err != nil {
			requestEvent(r, LevelError).Err(err).Str("model", req.Model).Dur("dur", time.Since(start)).Msg("model load failed")
			if artifact.IsFetchFailed(err) {
				writeJSONError(w, http.StatusBadGateway, LabelLoadFailed, err.Error())
				return
			}
			writeJSONError(w, http.StatusInternalServerError, LabelInternalError, err.Error())
			return
		}
		requestEvent(r, LevelInfo).Str("model", req.Model).Dur("dur", time.Since(start)).Msg("model loaded")
		writeJSON(w, http.StatusOK, status)
	}
}

// unloadModelHandler godoc
// @Summary  Unload the model
// @Tags     admin
// @Success  204
// @Router   /model [delete]
func unloadModelHandler(admin AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		admin.UnloadModel()
		requestEvent(r, LevelInfo).Msg("model unloaded")
		w.WriteHeader(http.StatusNoContent)
	}
}
