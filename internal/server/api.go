package server

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vovakirdan/led-arcade/internal/config"
	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/engine"
	"github.com/vovakirdan/led-arcade/internal/registry"
	"github.com/vovakirdan/led-arcade/internal/storage"
)

const maxBodyBytes = 16 << 10

// statusResponse is the body of GET /api/status.
type statusResponse struct {
	Game     string              `json:"game"`
	Games    []registry.GameInfo `json:"games"`
	Tick     uint64              `json:"tick"`
	Score    int                 `json:"score"`
	Lines    int                 `json:"lines"`
	GameOver bool                `json:"gameOver"`
	Manual   bool                `json:"manual"`
	Sessions int                 `json:"sessions"`
	Tuning   tuningDoc           `json:"tuning"`
	Bg       config.RGBConfig    `json:"background"`
}

// tuningDoc is the partial-update document for POST /api/tuning.
type tuningDoc struct {
	Tetris config.TetrisConfig `json:"tetris"`
	Snake  config.SnakeConfig  `json:"snake"`
}

type scoresResponse struct {
	Game   string               `json:"game"`
	Scores []storage.ScoreEntry `json:"scores"`
	Stats  *storage.GameStats   `json:"stats,omitempty"`
}

func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !s.validToken(token) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) validToken(token string) bool {
	if s.token == "" {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(s.token)) == 1
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.status())
}

func (s *Server) status() statusResponse {
	st := s.runner.State()
	cfg := s.live.Get()
	return statusResponse{
		Game:     s.runner.ActiveGame(),
		Games:    s.runner.Games(),
		Tick:     s.runner.Tick(),
		Score:    st.Score,
		Lines:    st.Lines,
		GameOver: st.GameOver,
		Manual:   st.Mode == core.ModeManual,
		Sessions: s.runner.Sessions().Count(),
		Tuning:   tuningDoc{Tetris: cfg.Tetris, Snake: cfg.Snake},
		Bg:       cfg.Background,
	}
}

func (s *Server) handleSelectGame(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Game string `json:"game"`
	}
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if err := s.runner.SelectGame(req.Game); err != nil {
		if errors.Is(err, engine.ErrUnknownGame) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.clearManualOwner()
	writeJSON(w, http.StatusOK, s.status())
}

func (s *Server) handleTuning(w http.ResponseWriter, r *http.Request) {
	cur := s.live.Get()
	doc := tuningDoc{Tetris: cur.Tetris, Snake: cur.Snake}
	// Fields missing from the body keep their current values.
	if err := decodeBody(r, &doc); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	next := s.live.Update(func(c *config.Config) {
		c.Tetris = doc.Tetris
		c.Snake = doc.Snake
	})
	s.logger.Info("tuning updated", "skill", next.Tetris.AISkill, "dropStart", next.Tetris.DropStartMs)
	writeJSON(w, http.StatusOK, tuningDoc{Tetris: next.Tetris, Snake: next.Snake})
}

func (s *Server) handleBackground(w http.ResponseWriter, r *http.Request) {
	bg := s.live.Get().Background
	if err := decodeBody(r, &bg); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	next := s.live.Update(func(c *config.Config) {
		c.Background = bg
	})
	writeJSON(w, http.StatusOK, next.Background)
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	if err := s.live.Save(); err != nil {
		s.logger.Error("save config", "err", err)
		http.Error(w, "save failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"saved": true})
}

func (s *Server) handleDefaults(w http.ResponseWriter, r *http.Request) {
	s.live.RestoreDefaults()
	writeJSON(w, http.StatusOK, s.status())
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	game := chi.URLParam(r, "game")
	if !registry.Exists(game) {
		http.NotFound(w, r)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	resp := scoresResponse{Game: game, Scores: []storage.ScoreEntry{}}
	if s.scores == nil {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	entries, err := s.scores.TopScores(game, limit)
	if err != nil {
		s.logger.Error("top scores", "game", game, "err", err)
		http.Error(w, "storage error", http.StatusInternalServerError)
		return
	}
	if entries != nil {
		resp.Scores = entries
	}
	if stats, err := s.scores.GetGameStats(game); err == nil {
		resp.Stats = stats
	}
	writeJSON(w, http.StatusOK, resp)
}

func decodeBody(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
