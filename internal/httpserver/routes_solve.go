// internal/httpserver/routes_solve.go
//
// HTTP routes for driving a solve remotely.
//   - POST /solve/new       → start a session; the response carries the opening guess
//   - POST /solve/feedback  → report feedback for the current guess; returns the next one
//   - POST /solve/reject    → the game refused the current guess; propose another
//   - GET  /solve/{id}      → current snapshot; proposes a guess if none is pending
//   - POST /filter          → one-shot: candidates remaining after a list of rounds
//   - GET  /history         → recent finished solves and aggregate stats
//
// Guesses after the opening are confirmed against the allowed-guess list
// instead of asking a human.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/history"
	"github.com/robalobadob/wordle/apps/go-solver/internal/render"
	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
)

// candidatePreview caps the candidates echoed in snapshots.
const candidatePreview = 20

func (s *Server) mountSolve(r chi.Router) {
	r.Route("/solve", func(r chi.Router) {
		r.Post("/new", s.handleSolveNew)
		r.Post("/feedback", s.handleSolveFeedback)
		r.Post("/reject", s.handleSolveReject)
		r.Get("/{id}", s.handleSolveGet)
	})
}

type solveNewReq struct {
	OpeningGuess string `json:"openingGuess"`
	MaxAttempts  int    `json:"maxAttempts"`
}

func (s *Server) handleSolveNew(w http.ResponseWriter, r *http.Request) {
	var req solveNewReq
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_json")
			return
		}
	}
	cfg := s.cfg
	if req.OpeningGuess != "" {
		cfg.OpeningGuess = req.OpeningGuess
	}
	if req.MaxAttempts > 0 {
		cfg.MaxAttempts = req.MaxAttempts
	}

	sess, err := session.New(cfg, s.lex.Dictionary())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := sess.NextGuess(r.Context(), nil); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	log.Info().Str("session", sess.ID).Int("candidates", len(sess.Candidates())).Msg("solve started")
	writeJSON(w, http.StatusOK, sess.Snapshot(candidatePreview))
}

// feedbackReq accepts either a pattern ("BYBGB", "32313") or five named values.
type feedbackReq struct {
	SessionID string            `json:"sessionId"`
	Pattern   string            `json:"pattern"`
	Feedback  []solver.Feedback `json:"feedback"`
}

func (req feedbackReq) parse() ([solver.WordLength]solver.Feedback, error) {
	var fb [solver.WordLength]solver.Feedback
	if req.Pattern != "" {
		return solver.ParsePattern(req.Pattern)
	}
	if len(req.Feedback) != solver.WordLength {
		return fb, solver.ErrInvalidFeedback
	}
	copy(fb[:], req.Feedback)
	return fb, nil
}

func (s *Server) handleSolveFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// Unknown feedback names fail inside Feedback.UnmarshalText.
		if errors.Is(err, solver.ErrInvalidFeedback) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	fb, err := req.parse()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var snap session.Snapshot
	err = s.store.Update(r.Context(), req.SessionID, func(sess *session.Session) error {
		if _, err := sess.Submit(fb); err != nil {
			return err
		}
		if err := s.advance(r.Context(), sess); err != nil {
			return err
		}
		snap = sess.Snapshot(candidatePreview)
		return nil
	})
	if err != nil {
		s.writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

type rejectReq struct {
	SessionID string `json:"sessionId"`
}

func (s *Server) handleSolveReject(w http.ResponseWriter, r *http.Request) {
	var req rejectReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	var snap session.Snapshot
	err := s.store.Update(r.Context(), req.SessionID, func(sess *session.Session) error {
		// A live session without a guess only needs one proposed.
		if !stalled(sess) {
			if err := sess.Reject(); err != nil {
				return err
			}
		}
		if err := s.advance(r.Context(), sess); err != nil {
			return err
		}
		snap = sess.Snapshot(candidatePreview)
		return nil
	})
	if err != nil {
		s.writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleSolveGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var snap session.Snapshot
	err := s.store.Update(r.Context(), id, func(sess *session.Session) error {
		if stalled(sess) {
			if err := s.advance(r.Context(), sess); err != nil {
				return err
			}
		}
		snap = sess.Snapshot(candidatePreview)
		return nil
	})
	if err != nil {
		s.writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// advance proposes the next guess of a live session, or records it once it
// has finished.
func (s *Server) advance(ctx context.Context, sess *session.Session) error {
	if !sess.Status().Terminal() {
		_, err := sess.NextGuess(ctx, s.lex.Oracle())
		if err != nil && !errors.Is(err, session.ErrNoCandidates) {
			return err
		}
	}
	if sess.Status().Terminal() {
		s.record(ctx, sess)
	}
	return nil
}

// stalled reports a live session left without a guess, as happens when the
// oracle walk after a Submit is interrupted.
func stalled(sess *session.Session) bool {
	return !sess.Status().Terminal() && sess.Guess() == ""
}

// record writes a finished session to history. Failures are logged only.
func (s *Server) record(ctx context.Context, sess *session.Session) {
	if s.history == nil {
		return
	}
	res := history.ResultFrom(sess, "api", render.EmojiGrid(sess.Rounds()))
	if err := s.history.Record(ctx, res); err != nil {
		log.Warn().Err(err).Str("session", sess.ID).Msg("record history")
	}
}

func (s *Server) writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, solver.ErrInvalidFeedback), errors.Is(err, solver.ErrInvalidGuess):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, session.ErrFinished), errors.Is(err, session.ErrNoGuess), errors.Is(err, session.ErrFixedOpening):
		writeError(w, http.StatusConflict, err.Error())
	default:
		log.Error().Err(err).Msg("solve request")
		writeError(w, http.StatusInternalServerError, "internal_error")
	}
}

// ------------------------------ FILTER -------------------------------------

type filterRound struct {
	Guess   string `json:"guess"`
	Pattern string `json:"pattern"`
}

type filterReq struct {
	Rounds     []filterRound `json:"rounds"`
	Dictionary []string      `json:"dictionary"` // optional; defaults to the loaded dictionary
	Limit      int           `json:"limit"`
}

type filterRes struct {
	Count      int          `json:"count"`
	Candidates []string     `json:"candidates"`
	State      solver.State `json:"state"`
}

func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	var req filterReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	st := solver.NewState()
	for _, rd := range req.Rounds {
		fb, err := solver.ParsePattern(rd.Pattern)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if _, err := st.Ingest(rd.Guess, fb); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	dict := req.Dictionary
	if dict == nil {
		dict = s.lex.Dictionary()
	}
	cands := solver.Filter(dict, st)
	res := filterRes{Count: len(cands), Candidates: cands, State: st}
	if req.Limit > 0 && len(cands) > req.Limit {
		res.Candidates = cands[:req.Limit]
	}
	writeJSON(w, http.StatusOK, res)
}

// ------------------------------ HISTORY ------------------------------------

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeError(w, http.StatusNotFound, "history_disabled")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	recent, err := s.history.Recent(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("history recent")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	stats, err := s.history.Stats(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("history stats")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": recent, "stats": stats})
}
