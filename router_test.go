package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pdallen/portfolio/backend/internal/config"
	"github.com/pdallen/portfolio/backend/internal/portfolio"
	"github.com/pdallen/portfolio/backend/internal/portfolio/repository"
	"github.com/pdallen/portfolio/backend/internal/portfolio/service"
	"github.com/stretchr/testify/require"
)

func TestRouterWiring(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	repo.AddSkills(portfolio.Document{"active": true, "technical": []string{"Go"}, "creative": []string{}, "business": []string{}})
	cfg := &config.Config{}
	cfg.API.Title = "Portfolio API"
	r := newRouter(cfg, repo, service.New(repo))

	req := httptest.NewRequest(http.MethodGet, "/api/skills", nil)
	req.Header.Set("Origin", "https://site.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"active":true,"technical":["Go"],"creative":[],"business":[]}`, w.Body.String())
	require.Equal(t, "https://site.example", w.Header().Get("Access-Control-Allow-Origin"))

	pre := httptest.NewRequest(http.MethodOptions, "/api/contact/submit", nil)
	pre.Header.Set("Origin", "https://site.example")
	pre.Header.Set("Access-Control-Request-Method", "POST")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, pre)
	require.Equal(t, http.StatusNoContent, w.Code)

	for _, path := range []string{"/api/", "/health", "/ready", "/metrics", "/swagger/doc.json"} {
		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, w.Code, path)
	}
}
