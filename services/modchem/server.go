package modchem

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"modchem-backend/lib/chem"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const SessionCookie = "modchem_session"

type ServerOptions struct {
	// AssetsDir serves /assets from disk instead of the built in stylesheet.
	AssetsDir    string
	SecureCookie bool
}

type server struct {
	service  Service
	sessions *SessionStore
	opts     ServerOptions
}

func NewServer(service Service, sessions *SessionStore, opts ServerOptions) http.Handler {
	s := server{service: service, sessions: sessions, opts: opts}

	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(requestLogger)
	router.Use(middleware.Recoverer)

	cfg := huma.DefaultConfig("Modular Chemistry API", "1.0.0")
	cfg.DocsPath = ""
	api := humachi.New(router, cfg)

	router.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		if _, err := w.Write([]byte(docsHTML)); err != nil {
			slog.Debug("docs response write failed", "err", err)
		}
	})

	router.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(s.assets())))
	router.Get("/", s.page)
	router.Route("/session", func(r chi.Router) {
		r.Post("/click/{id}", s.click)
		r.Post("/mode/{mode}", s.pressMode)
		r.Post("/reset", s.reset)
		r.Get("/state", s.state)
		r.Get("/article", s.article)
	})

	registerApiHandlers(api, service)

	return router
}

func (s server) assets() http.FileSystem {
	if s.opts.AssetsDir != "" {
		return http.Dir(s.opts.AssetsDir)
	}
	sub, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// session finds the caller's session, starting a new one when the cookie is
// missing or stale.
func (s server) session(w http.ResponseWriter, r *http.Request) (*Session, error) {
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		session, err := s.sessions.Get(cookie.Value)
		if err == nil {
			return session, nil
		}
	}

	session, err := s.sessions.Create()
	if err != nil {
		return nil, err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    session.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.opts.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return session, nil
}

func wantsJson(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func writeJson(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(value)
	if err != nil {
		slog.Debug("json response write failed", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	if wantsJson(r) {
		writeJson(w, status, map[string]string{"error": err.Error()})
		return
	}
	http.Error(w, err.Error(), status)
}

// respond sends the new state to script callers and sends plain form posts
// back to the page.
func respond(w http.ResponseWriter, r *http.Request, state State) {
	if wantsJson(r) {
		writeJson(w, http.StatusOK, state)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s server) page(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session, err := s.session(w, r)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err)
		return
	}

	state := session.State()
	// an unreachable dictionary still renders with the fallback message
	resolution, _ := s.service.Resolve(ctx, state.Formula)
	article := s.service.Article(ctx, state.Formula)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = RenderPage(w, state, resolution, article)
	if err != nil {
		slog.ErrorContext(ctx, "render page", "err", err)
	}
}

func (s server) click(w http.ResponseWriter, r *http.Request) {
	session, err := s.session(w, r)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	state, err := session.Click(chi.URLParam(r, "id"))
	if errors.Is(err, chem.ErrUnknownButton) {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	respond(w, r, state)
}

func (s server) pressMode(w http.ResponseWriter, r *http.Request) {
	mode, err := chem.ParseMode(chi.URLParam(r, "mode"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	session, err := s.session(w, r)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	state, err := session.PressMode(mode, s.sessions.time.Now())
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	respond(w, r, state)
}

func (s server) reset(w http.ResponseWriter, r *http.Request) {
	session, err := s.session(w, r)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	respond(w, r, session.Reset())
}

type pageState struct {
	State      State      `json:"state"`
	Resolution Resolution `json:"resolution"`
}

func (s server) state(w http.ResponseWriter, r *http.Request) {
	session, err := s.session(w, r)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	state := session.State()
	resolution, _ := s.service.Resolve(r.Context(), state.Formula)
	writeJson(w, http.StatusOK, pageState{State: state, Resolution: resolution})
}

func (s server) article(w http.ResponseWriter, r *http.Request) {
	session, err := s.session(w, r)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	writeJson(w, http.StatusOK, s.service.Article(r.Context(), session.State().Formula))
}
