package routeserver

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	jsoniter "github.com/json-iterator/go"

	"github.com/katalvlaran/cityroute/citygraph"
	"github.com/katalvlaran/cityroute/dijkstra"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RouteRequest is the body of POST /api/routes.
type RouteRequest struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

// RouteResponse is the answer to a successful route query.
type RouteResponse struct {
	Source      string   `json:"source"`
	Destination string   `json:"destination"`
	Distance    int64    `json:"distance"`
	Route       []string `json:"route"`
}

// Server answers route queries over one loaded, read-only graph.
type Server struct {
	g      *citygraph.Graph
	router *mux.Router
}

// New wires the API routes over the given graph. The graph must not be
// mutated while the server is in use.
func New(g *citygraph.Graph) *Server {
	s := &Server{
		g:      g,
		router: mux.NewRouter(),
	}
	s.router.HandleFunc("/api/cities", s.listCities).Methods(http.MethodGet)
	s.router.HandleFunc("/api/routes", s.calculateRoute).Methods(http.MethodPost)

	return s
}

// ServeHTTP makes Server a http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) listCities(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"cities": s.g.Names(),
		"count":  s.g.CityCount(),
	})
}

func (s *Server) calculateRoute(w http.ResponseWriter, r *http.Request) {
	var req RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")

		return
	}
	if req.Source == "" || req.Destination == "" {
		writeError(w, http.StatusBadRequest, "source and destination are required")

		return
	}

	src, err := s.g.IndexOf(req.Source)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())

		return
	}
	dst, err := s.g.IndexOf(req.Destination)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())

		return
	}

	res, err := dijkstra.Run(s.g, src)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())

		return
	}

	path, err := res.PathTo(dst)
	if err != nil {
		if errors.Is(err, dijkstra.ErrNoRoute) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())

			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())

		return
	}

	distance, err := res.DistanceTo(dst)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())

		return
	}

	writeJSON(w, http.StatusOK, RouteResponse{
		Source:      req.Source,
		Destination: req.Destination,
		Distance:    distance,
		Route:       path,
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
