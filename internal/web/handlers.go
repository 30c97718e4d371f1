package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"sotchelper/internal/account"
	"sotchelper/internal/helper"
	"sotchelper/internal/sheetpdf"
)

var tracer = otel.Tracer("sotchelper/internal/web")

// Server serves the landing page, the helper and registration.
type Server struct {
	Sheet     *helper.Sheet
	Roll      helper.Roller // nil rolls real dice
	Accounts  *account.Service
	Pages     *Renderer
	Log       *logrus.Logger
	StaticDir string
}

// identityCookie names the player. It is not signed: anyone can claim any
// name, and only the greeting on the landing page reads it.
const identityCookie = "user_id"

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/roller", s.handleRoller)
	mux.HandleFunc("/roller/sheet.pdf", s.handleSheetPDF)
	mux.HandleFunc("/register", s.handleRegister)
	mux.HandleFunc("/healthz", s.handleHealth)
	if s.StaticDir != "" {
		mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(s.StaticDir))))
	}

	log := s.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &logHandler{log: log, next: mux}
}

// GET /
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	vm := MainViewModel{Message: "Welcome, please log in."}
	if c, err := r.Cookie(identityCookie); err == nil && c.Value != "" {
		vm.Username = c.Value
		vm.Message = fmt.Sprintf("Welcome, %s", c.Value)
	}
	s.render(w, r, http.StatusOK, "main.html", vm)
}

// GET, POST /roller
func (s *Server) handleRoller(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		vm := makeHelperViewModel(s.Sheet, s.Sheet.EmptyState(), "", nil)
		s.render(w, r, http.StatusOK, "helper.html", vm)
	case http.MethodPost:
		s.parseForm(r)
		_, span := tracer.Start(r.Context(), "helper.roll")
		res := s.Sheet.Submit(r.Form, s.Roll)
		span.SetAttributes(attribute.Int("roll.total", res.Total))
		span.End()

		logFrom(r.Context()).WithField("roll", res.Roll).Debug("rolled fate dice")
		vm := makeHelperViewModel(s.Sheet, res.State, res.Roll, res.Faces)
		vm.Ladder = res.Ladder
		s.render(w, r, http.StatusOK, "helper.html", vm)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// POST /roller/sheet.pdf
func (s *Server) handleSheetPDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.parseForm(r)
	st := s.Sheet.StateFromForm(r.Form)
	pdf, err := sheetpdf.Generate(s.Sheet, st, r.Form.Get("roll"))
	if err != nil {
		logFrom(r.Context()).WithError(err).Error("generate sheet pdf")
		http.Error(w, "failed to generate sheet", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="sotc-sheet.pdf"`)
	_, _ = w.Write(pdf)
}

// GET, POST /register
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		s.render(w, r, http.StatusOK, "register.html", RegisterViewModel{})
	case http.MethodPost:
		s.parseForm(r)
		username := r.Form.Get("username")

		ctx, span := tracer.Start(r.Context(), "account.register")
		_, err := s.Accounts.Register(ctx, username, r.Form.Get("password"), r.Form.Get("verify"))
		span.End()

		var verr *account.ValidationError
		if errors.As(err, &verr) {
			s.render(w, r, http.StatusOK, "register.html", RegisterViewModel{
				Username: username,
				ErrorMsg: verr.Message,
			})
			return
		}
		if err != nil {
			logFrom(r.Context()).WithError(err).Error("register user")
			http.Error(w, "registration failed", http.StatusInternalServerError)
			return
		}

		logFrom(r.Context()).WithField("username", username).Info("user registered")
		http.SetCookie(w, &http.Cookie{Name: identityCookie, Value: username, Path: "/"})
		http.Redirect(w, r, "/", http.StatusFound)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// GET /healthz
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// maxFormMemory bounds the multipart body kept in memory.
const maxFormMemory = 32 << 20

// parseForm parses a urlencoded or multipart request form. A malformed body
// is logged and whatever parsed is used; missing fields then read as "".
func (s *Server) parseForm(r *http.Request) {
	err := r.ParseMultipartForm(maxFormMemory)
	if errors.Is(err, http.ErrNotMultipart) {
		return
	}
	if err != nil {
		logFrom(r.Context()).WithError(err).Debug("bad form")
	}
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	if err := s.Pages.Render(w, status, name, data); err != nil {
		logFrom(r.Context()).WithError(err).WithField("template", name).Error("render")
		http.Error(w, "failed to render template", http.StatusInternalServerError)
	}
}
