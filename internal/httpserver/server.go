// internal/httpserver/server.go
//
// HTTP server wiring for the Wordhack backend.
// Responsibilities:
//   - Router + middleware (request IDs, logging, panic recovery, timeouts, JSON, CORS).
//   - Public endpoints: "/", "/health", "/difficulties", "/debug/words".
//   - Round endpoints: POST /rounds, then token-gated /rounds/{id}/*.
//   - Daily endpoints: mounted under /daily.
//
// Notes:
//   - Rounds are held in the store only; nothing is persisted.
//   - The target word is only included in a round view once the round is over.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/nicksheffield/Wordhack/internal/config"
	"github.com/nicksheffield/Wordhack/internal/daily"
	"github.com/nicksheffield/Wordhack/internal/game"
	"github.com/nicksheffield/Wordhack/internal/store"
	"github.com/nicksheffield/Wordhack/internal/words"
)

var (
	errNotAWord    = errors.New("not a word")
	errNotAnOption = errors.New("not an option")
)

// Server bundles router, round store and dictionary.
type Server struct {
	r     *chi.Mux
	cfg   *config.Config
	store store.Store
	words *words.List

	newSource func() game.Source
	now       func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg *config.Config, st store.Store, list *words.List) *Server {
	s := &Server{
		r:         chi.NewRouter(),
		cfg:       cfg,
		store:     st,
		words:     list,
		newSource: game.NewSource,
		now:       time.Now,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(requestLogger)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(cors(cfg.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wordhack","endpoints":["/health","/difficulties","POST /rounds","/rounds/{id}","/daily"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int{"words": s.words.Len(), "rounds": s.store.Len()})
	})

	s.r.Get("/difficulties", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, game.Difficulties)
	})

	s.r.Post("/rounds", s.handleNewRound)
	s.r.Route("/rounds/{id}", func(r chi.Router) {
		r.Use(s.requireRound)
		r.Get("/", s.handleGetRound)
		r.Post("/select", s.handleSelect)
		r.Post("/reset", s.handleReset)
		r.Post("/difficulty", s.handleDifficulty)
	})

	s.mountDaily(s.r)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ------------------------------ views --------------------------------------

// roundView is the presentation boundary: options, log and derived values.
type roundView struct {
	ID         string          `json:"id"`
	Difficulty game.Difficulty `json:"difficulty"`
	Options    []string        `json:"options"`
	Log        []game.Entry    `json:"log"`
	Chances    int             `json:"chances"`
	Guesses    int             `json:"guesses"`
	Won        bool            `json:"won"`
	Lost       bool            `json:"lost"`
	State      string          `json:"state"`
	Daily      bool            `json:"daily"`
	Target     string          `json:"target,omitempty"` // only once over
}

// viewOf snapshots a round. Call with exclusive access to rd.
func viewOf(rd *game.Round) roundView {
	v := roundView{
		ID:         rd.ID,
		Difficulty: rd.Difficulty,
		Options:    slices.Clone(rd.Options),
		Log:        slices.Clone(rd.Log),
		Chances:    rd.ChancesLeft(),
		Guesses:    rd.Guesses(),
		Won:        rd.Won(),
		Lost:       rd.Lost(),
		State:      rd.State(),
		Daily:      rd.Daily,
	}
	if rd.Over() {
		v.Target = rd.Target
	}
	return v
}

// ------------------------------ rounds -------------------------------------

type newRoundReq struct {
	Difficulty string `json:"difficulty"` // preset name; default "Normal"
	Daily      bool   `json:"daily"`      // use today's word instead of a random one
}

type newRoundRes struct {
	roundView
	Token string `json:"token"`
}

// handleNewRound creates a round, stores it and returns it with its token.
func (s *Server) handleNewRound(w http.ResponseWriter, r *http.Request) {
	var req newRoundReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	s.createRound(w, r, req)
}

func (s *Server) createRound(w http.ResponseWriter, r *http.Request, req newRoundReq) {
	diff := game.DefaultDifficulty()
	if req.Difficulty != "" {
		d, ok := game.DifficultyByName(req.Difficulty)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown_difficulty")
			return
		}
		diff = d
	}

	rd := game.NewRound(s.words.Words(), diff, s.newSource())
	if req.Daily {
		rd.ResetTo(daily.Word(s.now(), s.cfg.DailySalt, s.words.Words()))
		rd.Daily = true
	}
	view := viewOf(rd)
	if err := s.store.Save(r.Context(), rd); err != nil {
		s.fail(w, err)
		return
	}

	tok, exp, err := s.signRoundToken(rd.ID)
	if err != nil {
		log.Error().Err(err).Msg("sign round token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.setRoundCookie(w, tok, exp)
	log.Debug().Str("round", rd.ID).Str("difficulty", diff.Name).Bool("daily", rd.Daily).Msg("round started")
	writeJSON(w, http.StatusCreated, newRoundRes{roundView: view, Token: tok})
}

func (s *Server) handleGetRound(w http.ResponseWriter, r *http.Request) {
	var view roundView
	err := s.store.Update(r.Context(), roundID(r), func(rd *game.Round) error {
		view = viewOf(rd)
		return nil
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type selectReq struct {
	Word string `json:"word"`
}

type selectRes struct {
	Entry game.Entry `json:"entry"`
	Round roundView  `json:"round"`
}

// handleSelect scores an option and appends it to the round log.
// The word must be in the dictionary and one of the current options.
func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req selectReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	word := strings.ToUpper(strings.TrimSpace(req.Word))
	if !s.words.Contains(word) {
		s.fail(w, errNotAWord)
		return
	}

	var res selectRes
	err := s.store.Update(r.Context(), roundID(r), func(rd *game.Round) error {
		if rd.Over() {
			return game.ErrRoundOver
		}
		if !rd.HasOption(word) {
			return errNotAnOption
		}
		e, err := rd.Select(word)
		if err != nil {
			return err
		}
		res = selectRes{Entry: e, Round: viewOf(rd)}
		return nil
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	if res.Round.State != game.StatePlaying {
		log.Debug().Str("round", res.Round.ID).Str("state", res.Round.State).Int("guesses", res.Round.Guesses).Msg("round finished")
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var view roundView
	err := s.store.Update(r.Context(), roundID(r), func(rd *game.Round) error {
		rd.Reset()
		view = viewOf(rd)
		return nil
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type difficultyReq struct {
	Name string `json:"name"`
}

func (s *Server) handleDifficulty(w http.ResponseWriter, r *http.Request) {
	var req difficultyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	var view roundView
	err := s.store.Update(r.Context(), roundID(r), func(rd *game.Round) error {
		if err := rd.SelectDifficulty(req.Name); err != nil {
			return err
		}
		view = viewOf(rd)
		return nil
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// ------------------------------- small util --------------------------------

// fail maps domain errors onto HTTP status codes.
func (s *Server) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, game.ErrRoundOver):
		writeError(w, http.StatusConflict, "round_over")
	case errors.Is(err, errNotAWord):
		writeError(w, http.StatusBadRequest, "not_a_word")
	case errors.Is(err, errNotAnOption):
		writeError(w, http.StatusBadRequest, "not_an_option")
	case errors.Is(err, game.ErrUnknownDifficulty):
		writeError(w, http.StatusBadRequest, "unknown_difficulty")
	default:
		log.Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "server_error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
