package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beer-pong-backend/models"
	"beer-pong-backend/services"
)

type stubMatchService struct {
	createID  string
	createErr error
	createReq *models.CreateMatchRequest

	listMatches []models.Match
	listErr     error
	listLimit   int64

	getMatch *models.Match
	getErr   error

	hitResult *models.HitResponse
	hitErr    error
	hitReq    *models.HitRequest
	hitID     string

	resetErr error
	resetID  string
}

func (s *stubMatchService) Create(ctx context.Context, req *models.CreateMatchRequest) (string, error) {
	s.createReq = req
	return s.createID, s.createErr
}

func (s *stubMatchService) List(ctx context.Context, limit int64) ([]models.Match, error) {
	s.listLimit = limit
	return s.listMatches, s.listErr
}

func (s *stubMatchService) Get(ctx context.Context, matchID string) (*models.Match, error) {
	return s.getMatch, s.getErr
}

func (s *stubMatchService) RecordHit(ctx context.Context, matchID string, req *models.HitRequest) (*models.HitResponse, error) {
	s.hitID = matchID
	s.hitReq = req
	return s.hitResult, s.hitErr
}

func (s *stubMatchService) Reset(ctx context.Context, matchID string) error {
	s.resetID = matchID
	return s.resetErr
}

func setupRouter(svc MatchService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	c := NewMatchController(svc)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/matches", c.CreateMatch)
	api.GET("/matches", c.ListMatches)
	api.GET("/matches/:match_id", c.GetMatch)
	api.POST("/matches/:match_id/hit", c.RecordHit)
	api.POST("/matches/:match_id/reset", c.ResetMatch)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateMatchEndpoint(t *testing.T) {
	svc := &stubMatchService{createID: "64f000000000000000000001"}
	r := setupRouter(svc)

	w := doRequest(r, http.MethodPost, "/api/matches", `{"team_a":"Red Cups","team_b":"Blue Cups","cups_per_side":6}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "64f000000000000000000001", body["id"])

	require.NotNil(t, svc.createReq)
	assert.Equal(t, "Red Cups", svc.createReq.TeamA)
	assert.Equal(t, 6, svc.createReq.CupsPerSide)
}

func TestCreateMatchValidation(t *testing.T) {
	svc := &stubMatchService{}
	r := setupRouter(svc)

	// team_b missing
	w := doRequest(r, http.MethodPost, "/api/matches", `{"team_a":"Red Cups"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.createReq)

	// cups_per_side out of range
	w = doRequest(r, http.MethodPost, "/api/matches", `{"team_a":"Red Cups","team_b":"Blue Cups","cups_per_side":25}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListMatchesEndpoint(t *testing.T) {
	svc := &stubMatchService{listMatches: []models.Match{}}
	r := setupRouter(svc)

	w := doRequest(r, http.MethodGet, "/api/matches?limit=2", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(2), svc.listLimit)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))

	// missing and malformed limits fall back to the default
	doRequest(r, http.MethodGet, "/api/matches", "")
	assert.Equal(t, int64(20), svc.listLimit)

	doRequest(r, http.MethodGet, "/api/matches?limit=abc", "")
	assert.Equal(t, int64(20), svc.listLimit)
}

func TestGetMatchEndpoint(t *testing.T) {
	match := &models.Match{
		TeamA:          "Red Cups",
		TeamB:          "Blue Cups",
		CupsPerSide:    10,
		CupsRemainingA: 10,
		CupsRemainingB: 7,
		Status:         models.StatusOngoing,
		Events:         []models.HitEvent{},
	}
	svc := &stubMatchService{getMatch: match}
	r := setupRouter(svc)

	w := doRequest(r, http.MethodGet, "/api/matches/64f000000000000000000001", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var body models.Match
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 7, body.CupsRemainingB)
	assert.Equal(t, models.StatusOngoing, body.Status)
}

func TestMatchErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"invalid id", services.ErrInvalidMatchID, http.StatusBadRequest},
		{"not found", services.ErrMatchNotFound, http.StatusNotFound},
		{"store failure", context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubMatchService{getErr: tc.err}
			r := setupRouter(svc)

			w := doRequest(r, http.MethodGet, "/api/matches/whatever", "")
			assert.Equal(t, tc.wantCode, w.Code)
		})
	}
}

func TestRecordHitEndpoint(t *testing.T) {
	svc := &stubMatchService{
		hitResult: &models.HitResponse{OK: true, Status: models.StatusFinished, Winner: models.TeamA},
	}
	r := setupRouter(svc)

	w := doRequest(r, http.MethodPost, "/api/matches/64f000000000000000000001/hit", `{"team":"A","shooter":"Sam","cups":3}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var body models.HitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.Equal(t, models.StatusFinished, body.Status)
	assert.Equal(t, models.TeamA, body.Winner)

	assert.Equal(t, "64f000000000000000000001", svc.hitID)
	require.NotNil(t, svc.hitReq)
	assert.Equal(t, "Sam", svc.hitReq.Shooter)
}

func TestRecordHitValidation(t *testing.T) {
	svc := &stubMatchService{}
	r := setupRouter(svc)

	// team missing
	w := doRequest(r, http.MethodPost, "/api/matches/64f000000000000000000001/hit", `{"cups":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.hitReq)

	// team outside A/B
	w = doRequest(r, http.MethodPost, "/api/matches/64f000000000000000000001/hit", `{"team":"C"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// cups above the per-hit cap
	w = doRequest(r, http.MethodPost, "/api/matches/64f000000000000000000001/hit", `{"team":"A","cups":11}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecordHitFinishedMatch(t *testing.T) {
	svc := &stubMatchService{hitErr: services.ErrMatchFinished}
	r := setupRouter(svc)

	w := doRequest(r, http.MethodPost, "/api/matches/64f000000000000000000001/hit", `{"team":"A"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Match already finished")
}

func TestResetMatchEndpoint(t *testing.T) {
	svc := &stubMatchService{}
	r := setupRouter(svc)

	w := doRequest(r, http.MethodPost, "/api/matches/64f000000000000000000001/reset", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	assert.Equal(t, "64f000000000000000000001", svc.resetID)

	svc.resetErr = services.ErrMatchNotFound
	w = doRequest(r, http.MethodPost, "/api/matches/64f000000000000000000002/reset", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
