package gateway

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"reddys-kitchen/web-svc/internal/app"
	"reddys-kitchen/web-svc/internal/checkout"
	"reddys-kitchen/web-svc/internal/client"
)

type Config struct {
	StorefrontURL string
	StaticDir     string
}

type Gateway struct {
	config Config
	client client.HTTPClient
	app    *app.App
	log    *zap.Logger
}

func NewGateway(config Config, httpClient client.HTTPClient, application *app.App, log *zap.Logger) *Gateway {
	config.StorefrontURL = strings.TrimRight(config.StorefrontURL, "/")
	return &Gateway{
		config: config,
		client: httpClient,
		app:    application,
		log:    log,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "web-svc",
	})
}

// ProxyRequest forwards the request unchanged to targetURL and copies the
// response back.
func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	g.log.Debug("PROXY", zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.String("target", targetURL))

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		g.log.Error("Failed to create request", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.log.Error("Failed to proxy", zap.String("target", targetURL), zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		g.log.Error("Failed to copy response", zap.Error(err))
	}
}

func (g *Gateway) APIHandler(w http.ResponseWriter, r *http.Request) {
	g.ProxyRequest(w, r, g.config.StorefrontURL)
}

// Index serves the single page frontend for every non-API path.
func (g *Gateway) Index(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(g.config.StaticDir, "index.html"))
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	g.RegisterUIRoutes(r.PathPrefix("/ui").Subrouter())
	r.PathPrefix("/api/").HandlerFunc(g.APIHandler)
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(g.config.StaticDir))))
	r.PathPrefix("/").HandlerFunc(g.Index)
	return r
}

type valueRequest struct {
	Value string `json:"value"`
}

type itemRequest struct {
	RestaurantID string `json:"restaurantId"`
	ItemID       string `json:"itemId"`
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func checkoutFailure(err error) (int, string) {
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		return http.StatusBadRequest, app.NoticeEmptyCart
	case errors.Is(err, checkout.ErrSubmitFailed):
		return http.StatusBadGateway, app.NoticeSubmitFailed
	default:
		return http.StatusInternalServerError, app.NoticeSubmitFailed
	}
}
