package transport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/ds124wfegd/listings/config"
	"github.com/ds124wfegd/listings/internal/database/memory"
	"github.com/ds124wfegd/listings/internal/database/repository"
	"github.com/ds124wfegd/listings/internal/entity"
	"github.com/ds124wfegd/listings/internal/service"
	"github.com/ds124wfegd/listings/internal/transport/middleware"
	"github.com/ds124wfegd/listings/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type testServer struct {
	db      *sqlx.DB
	router  *gin.Engine
	session *http.Cookie
}

type apiResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Error   string            `json:"error"`
	Fields  map[string]string `json:"fields"`
	Data    json.RawMessage   `json:"data"`
	Meta    map[string]string `json:"meta"`
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := database.NewDB(&config.DatabaseConfig{Driver: database.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.RunMigrations(db))

	clock := func() time.Time { return testNow }
	venueRepo := repository.NewVenueRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	showRepo := repository.NewShowRepository(db)

	notifier := NewNotifier(memory.NewNoticeRepository(time.Minute))
	router := InitRoutes(
		NewVenueHandler(service.NewVenueService(venueRepo, artistRepo, showRepo, clock), notifier),
		NewArtistHandler(service.NewArtistService(artistRepo, venueRepo, showRepo, clock), notifier),
		NewShowHandler(service.NewShowService(showRepo, venueRepo, artistRepo), notifier),
		notifier,
		time.Second,
	)

	return &testServer{db: db, router: router}
}

func (s *testServer) do(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()

	if s.session != nil {
		req.AddCookie(s.session)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.SessionCookie {
			s.session = cookie
		}
	}

	var resp apiResponse
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	}
	return w, resp
}

func (s *testServer) doJSON(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()

	var payload bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&payload).Encode(body))
	}
	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	return s.do(t, req)
}

func (s *testServer) notices(t *testing.T) []entity.Notice {
	t.Helper()

	_, resp := s.doJSON(t, http.MethodGet, "/api/v1/notices", nil)
	var notices []entity.Notice
	require.NoError(t, json.Unmarshal(resp.Data, &notices))
	return notices
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func venueBody(name, city, state string) gin.H {
	return gin.H{
		"name":    name,
		"city":    city,
		"state":   state,
		"address": "1015 Folsom Street",
		"phone":   "1231231234",
		"genres":  []string{"Jazz", "Folk"},
	}
}

func artistBody(name string) gin.H {
	return gin.H{
		"name":       name,
		"city":       "San Francisco",
		"state":      "CA",
		"phone":      "3263235555",
		"genres":     []string{"Rock n Roll"},
		"image_link": "https://example.com/petals.png",
	}
}

func createID(t *testing.T, resp apiResponse) int64 {
	t.Helper()

	var result entity.MutationResult
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	require.NotZero(t, result.ID)
	return result.ID
}

func TestCreateVenueAndNotices(t *testing.T) {
	s := newTestServer(t)

	w, resp := s.doJSON(t, http.MethodPost, "/api/v1/venues", venueBody("The Musical Hop", "San Francisco", "CA"))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "Venue The Musical Hop was successfully listed!", resp.Message)
	require.NotNil(t, s.session)

	notices := s.notices(t)
	require.Len(t, notices, 1)
	assert.Equal(t, entity.NoticeSuccess, notices[0].Level)
	assert.Equal(t, "Venue The Musical Hop was successfully listed!", notices[0].Message)

	assert.Empty(t, s.notices(t))
}

func TestCreateVenueValidation(t *testing.T) {
	s := newTestServer(t)

	body := venueBody("The Musical Hop", "San Francisco", "CA")
	body["phone"] = "123-123-123"
	body["name"] = ""

	w, resp := s.doJSON(t, http.MethodPost, "/api/v1/venues", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Fields, "phone")
	assert.Contains(t, resp.Fields, "name")

	notices := s.notices(t)
	require.Len(t, notices, 1)
	assert.Equal(t, entity.NoticeError, notices[0].Level)
	assert.Equal(t, "There is a form error", notices[0].Message)

	_, list := s.doJSON(t, http.MethodGet, "/api/v1/venues", nil)
	assert.JSONEq(t, `[]`, string(list.Data))
}

func TestVenueNotFoundAndBadID(t *testing.T) {
	s := newTestServer(t)

	w, resp := s.doJSON(t, http.MethodGet, "/api/v1/venues/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "venue not found", resp.Error)

	w, _ = s.doJSON(t, http.MethodGet, "/api/v1/venues/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.doJSON(t, http.MethodPut, "/api/v1/venues/42", venueBody("Ghost", "Nowhere", "NV"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListingFlow(t *testing.T) {
	s := newTestServer(t)

	_, resp := s.doJSON(t, http.MethodPost, "/api/v1/venues", venueBody("The Musical Hop", "San Francisco", "CA"))
	hop := createID(t, resp)
	_, resp = s.doJSON(t, http.MethodPost, "/api/v1/venues", venueBody("Park Square Live Music & Coffee", "San Francisco", "CA"))
	park := createID(t, resp)
	_, resp = s.doJSON(t, http.MethodPost, "/api/v1/venues", venueBody("The Dueling Pianos Bar", "New York", "NY"))
	pianos := createID(t, resp)
	_, resp = s.doJSON(t, http.MethodPost, "/api/v1/artists", artistBody("Guns N Petals"))
	petals := createID(t, resp)

	for _, show := range []gin.H{
		{"venue_id": hop, "artist_id": petals, "start_time": "2019-05-21T21:30:00Z"},
		{"venue_id": hop, "artist_id": petals, "start_time": "2035-04-01T20:00:00Z"},
		{"venue_id": park, "artist_id": petals, "start_time": "2035-04-08T20:00:00Z"},
	} {
		w, resp := s.doJSON(t, http.MethodPost, "/api/v1/shows", show)
		require.Equal(t, http.StatusCreated, w.Code, resp.Error)
		assert.Equal(t, "Show was successfully listed!", resp.Message)
	}

	t.Run("grouped listing", func(t *testing.T) {
		w, resp := s.doJSON(t, http.MethodGet, "/api/v1/venues", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var buckets []entity.LocationBucket
		require.NoError(t, json.Unmarshal(resp.Data, &buckets))
		require.Len(t, buckets, 2)
		assert.Equal(t, "San Francisco", buckets[0].City)
		assert.Equal(t, []entity.Summary{
			{ID: hop, Name: "The Musical Hop", NumUpcomingShows: 1},
			{ID: park, Name: "Park Square Live Music & Coffee", NumUpcomingShows: 1},
		}, buckets[0].Venues)
		assert.Equal(t, "NY", buckets[1].State)
		assert.Equal(t, pianos, buckets[1].Venues[0].ID)
	})

	t.Run("venue detail", func(t *testing.T) {
		w, resp := s.doJSON(t, http.MethodGet, "/api/v1/venues/"+itoa(hop), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var detail entity.VenueDetail
		require.NoError(t, json.Unmarshal(resp.Data, &detail))
		assert.Equal(t, "The Musical Hop", detail.Name)
		assert.Equal(t, entity.Tags{"Jazz", "Folk"}, detail.Genres)
		assert.Equal(t, 1, detail.PastShowsCount)
		assert.Equal(t, 1, detail.UpcomingShowsCount)
		assert.Equal(t, "Guns N Petals", detail.UpcomingShows[0].CounterpartName)
		assert.Equal(t, "https://example.com/petals.png", detail.UpcomingShows[0].CounterpartImageLink)
	})

	t.Run("artist detail", func(t *testing.T) {
		w, resp := s.doJSON(t, http.MethodGet, "/api/v1/artists/"+itoa(petals), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var detail entity.ArtistDetail
		require.NoError(t, json.Unmarshal(resp.Data, &detail))
		assert.Equal(t, 1, detail.PastShowsCount)
		assert.Equal(t, 2, detail.UpcomingShowsCount)
		assert.Equal(t, "The Musical Hop", detail.PastShows[0].CounterpartName)
	})

	t.Run("search by query", func(t *testing.T) {
		w, resp := s.doJSON(t, http.MethodGet, "/api/v1/venues/search?search_term=MUSIC", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "MUSIC", resp.Meta["search_term"])

		var result entity.SearchResult
		require.NoError(t, json.Unmarshal(resp.Data, &result))
		assert.Equal(t, 2, result.Count)
	})

	t.Run("search by form", func(t *testing.T) {
		form := url.Values{"search_term": {"petal"}}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/artists/search", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		w, resp := s.do(t, req)
		require.Equal(t, http.StatusOK, w.Code)

		var result entity.SearchResult
		require.NoError(t, json.Unmarshal(resp.Data, &result))
		assert.Equal(t, entity.SearchResult{
			Count: 1,
			Data:  []entity.Summary{{ID: petals, Name: "Guns N Petals", NumUpcomingShows: 2}},
		}, result)
	})

	t.Run("search without match", func(t *testing.T) {
		_, resp := s.doJSON(t, http.MethodGet, "/api/v1/venues/search?search_term=zzz", nil)
		assert.JSONEq(t, `{"count":0,"data":[]}`, string(resp.Data))
	})

	t.Run("flat show list", func(t *testing.T) {
		_, resp := s.doJSON(t, http.MethodGet, "/api/v1/shows", nil)

		var shows []entity.ShowListing
		require.NoError(t, json.Unmarshal(resp.Data, &shows))
		require.Len(t, shows, 3)
		assert.Equal(t, "The Musical Hop", shows[0].VenueName)
		assert.Equal(t, "Guns N Petals", shows[0].ArtistName)
		assert.Equal(t, "Park Square Live Music & Coffee", shows[2].VenueName)
	})

	t.Run("artist list", func(t *testing.T) {
		_, resp := s.doJSON(t, http.MethodGet, "/api/v1/artists", nil)
		assert.JSONEq(t, `[{"id":`+itoa(petals)+`,"name":"Guns N Petals"}]`, string(resp.Data))
	})

	t.Run("delete venue with shows", func(t *testing.T) {
		w, _ := s.doJSON(t, http.MethodDelete, "/api/v1/venues/"+itoa(hop), nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("delete venue without shows", func(t *testing.T) {
		w, resp := s.doJSON(t, http.MethodDelete, "/api/v1/venues/"+itoa(pianos), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Venue The Dueling Pianos Bar was successfully deleted!", resp.Message)

		w, _ = s.doJSON(t, http.MethodGet, "/api/v1/venues/"+itoa(pianos), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete missing venue", func(t *testing.T) {
		w, _ := s.doJSON(t, http.MethodDelete, "/api/v1/venues/999", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCreateShowUnknownReferences(t *testing.T) {
	s := newTestServer(t)

	w, resp := s.doJSON(t, http.MethodPost, "/api/v1/shows", gin.H{
		"venue_id": 1, "artist_id": 2, "start_time": "2035-04-01T20:00:00Z",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "venue not found", resp.Error)

	notices := s.notices(t)
	require.Len(t, notices, 1)
	assert.Equal(t, "An error occurred. Show could not be listed.", notices[0].Message)
}

func TestStoreFailureIsInternalError(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.db.Close())

	w, resp := s.doJSON(t, http.MethodPost, "/api/v1/artists", artistBody("Guns N Petals"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", resp.Error)

	notices := s.notices(t)
	require.Len(t, notices, 1)
	assert.Equal(t, "An error occurred. Artist Guns N Petals could not be listed.", notices[0].Message)
}

func TestHealthAndChoices(t *testing.T) {
	s := newTestServer(t)

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	_, resp := s.doJSON(t, http.MethodGet, "/api/v1/choices", nil)
	var choices struct {
		States []string `json:"states"`
		Genres []string `json:"genres"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &choices))
	assert.Contains(t, choices.States, "CA")
	assert.Contains(t, choices.Genres, "Rock n Roll")
}
