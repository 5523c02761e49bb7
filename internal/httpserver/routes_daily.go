// internal/httpserver/routes_daily.go
//
// HTTP routes for daily rounds.
//   - GET  /daily → today's date key
//   - POST /daily → start a round on today's word (same as POST /rounds {"daily":true})
//
// Every player gets the same target for a given UTC date, chosen from the
// dictionary by HMAC(salt, YYYY-MM-DD). Results are not recorded.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nicksheffield/Wordhack/internal/daily"
)

// mountDaily registers the /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Get("/", s.handleDailyInfo)
		r.Post("/", s.handleDailyNew)
	})
}

type dailyInfoRes struct {
	Date string `json:"date"`
}

func (s *Server) handleDailyInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dailyInfoRes{Date: daily.DateKey(s.now())})
}

// handleDailyNew starts a daily round, optionally on a chosen difficulty.
func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	var req newRoundReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	req.Daily = true
	s.createRound(w, r, req)
}
