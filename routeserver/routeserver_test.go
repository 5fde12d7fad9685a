package routeserver_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cityroute/citygraph"
	"github.com/katalvlaran/cityroute/routeserver"
)

// testServer loads the triangle A—B(4), B—D(5), A—D(10) plus the isolated
// city "Lonely".
func testServer(t *testing.T) *routeserver.Server {
	t.Helper()
	g := citygraph.New()
	a, err := g.AddCity("A")
	require.NoError(t, err)
	b, err := g.AddCity("B")
	require.NoError(t, err)
	d, err := g.AddCity("D")
	require.NoError(t, err)
	_, err = g.AddCity("Lonely")
	require.NoError(t, err)

	require.NoError(t, g.AddRoad(a, b, 4))
	require.NoError(t, g.AddRoad(b, d, 5))
	require.NoError(t, g.AddRoad(a, d, 10))

	return routeserver.New(g)
}

func postRoute(t *testing.T, s *routeserver.Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/routes", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	return rec
}

func TestListCities(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/cities", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Cities []string `json:"cities"`
		Count  int      `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"A", "B", "D", "Lonely"}, body.Cities)
	assert.Equal(t, 4, body.Count)
}

func TestCalculateRoute_OK(t *testing.T) {
	s := testServer(t)
	rec := postRoute(t, s, `{"source":"A","destination":"D"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body routeserver.RouteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(9), body.Distance, "two-hop route beats the direct road")
	assert.Equal(t, []string{"A", "B", "D"}, body.Route)
	assert.Equal(t, "A", body.Source)
	assert.Equal(t, "D", body.Destination)
}

func TestCalculateRoute_BadRequests(t *testing.T) {
	s := testServer(t)

	rec := postRoute(t, s, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postRoute(t, s, `{"source":"A"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCalculateRoute_UnknownCity(t *testing.T) {
	s := testServer(t)
	rec := postRoute(t, s, `{"source":"A","destination":"Atlantis"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "Atlantis")
}

func TestCalculateRoute_NoRoute(t *testing.T) {
	s := testServer(t)
	rec := postRoute(t, s, `{"source":"A","destination":"Lonely"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "no route")
}

func TestCalculateRoute_MethodNotAllowed(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/routes", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
