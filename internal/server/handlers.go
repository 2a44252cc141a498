package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/daireno/pkg/editor"
	"github.com/matzehuels/daireno/pkg/errors"
	"github.com/matzehuels/daireno/pkg/render/diagram"
	"github.com/matzehuels/daireno/pkg/render/sink"
	"github.com/matzehuels/daireno/pkg/section"
	"github.com/matzehuels/daireno/pkg/session"
)

var validate = validator.New()

// setupField accepts a JSON string or number. Setup values are parsed with
// the editor's fallback rules, so anything else is kept as raw text.
type setupField string

func (f *setupField) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = setupField(s)
		return nil
	}
	if string(b) == "null" {
		*f = ""
		return nil
	}
	*f = setupField(b)
	return nil
}

type generateRequest struct {
	NormalFloors setupField `json:"normal_floors"`
	Basements    setupField `json:"basements"`
	Apartments   setupField `json:"apartments"`
}

type hitRequest struct {
	X *float64 `json:"x" validate:"required"`
	Y *float64 `json:"y" validate:"required"`
}

type commitRequest struct {
	Edit      *editor.PendingEdit `json:"edit" validate:"required"`
	Input     string              `json:"input"`
	Cancelled bool                `json:"cancelled"`
}

type sectionResponse struct {
	Setup   editor.Setup    `json:"setup"`
	Section section.Section `json:"section"`
}

type commitResponse struct {
	Changed bool            `json:"changed"`
	Section section.Section `json:"section"`
}

type noHitResponse struct {
	Kind string `json:"kind"`
}

// decode reads a JSON body into v and validates its struct tags.
func decode(r *http.Request, w http.ResponseWriter, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid JSON payload")
	}
	if err := validate.Struct(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request: %v", err)
	}
	return nil
}

func (s *Server) newEditor() *editor.Editor {
	return editor.New(
		editor.WithWidth(s.opts.Width),
		editor.WithFloorHeight(s.opts.FloorHeight),
		editor.WithDiagramOptions(diagram.WithShadow(s.opts.Shadow)),
	)
}

// load returns the caller's session and an editor restored from it. Unknown,
// expired or malformed ids get a fresh session with an empty section.
func (s *Server) load(w http.ResponseWriter, r *http.Request) (*session.Session, *editor.Editor, error) {
	ctx := r.Context()
	e := s.newEditor()

	if id := sessionID(r); id != "" {
		sess, err := s.store.Get(ctx, id)
		if err != nil {
			return nil, nil, err
		}
		if sess != nil {
			e.Restore(sess.State)
			setSessionCookie(w, sess.ID, s.opts.SessionTTL)
			return sess, e, nil
		}
	}

	// A new session has an empty canvas; the defaults only prefill the form.
	e.Restore(editor.State{Setup: s.opts.Defaults})
	sess := session.New(e.State(), s.opts.SessionTTL)
	if err := s.store.Set(ctx, sess); err != nil {
		return nil, nil, err
	}
	setSessionCookie(w, sess.ID, s.opts.SessionTTL)
	return sess, e, nil
}

func (s *Server) save(r *http.Request, sess *session.Session, e *editor.Editor) error {
	sess.State = e.State()
	sess.Touch(s.opts.SessionTTL)
	return s.store.Set(r.Context(), sess)
}

func sessionID(r *http.Request) string {
	id := r.Header.Get(SessionHeader)
	if id == "" {
		if c, err := r.Cookie(SessionCookie); err == nil {
			id = c.Value
		}
	}
	if !session.ValidID(id) {
		return ""
	}
	return id
}

func setSessionCookie(w http.ResponseWriter, id string, ttl time.Duration) {
	w.Header().Set(SessionHeader, id)
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decode(r, w, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	sess, e, err := s.load(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	setup := editor.ParseSetup(string(req.NormalFloors), string(req.Basements), string(req.Apartments))
	if err := e.Generate(r.Context(), setup); err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.save(r, sess, e); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sectionResponse{Setup: e.Setup(), Section: e.Section()})
}

func (s *Server) handleHit(w http.ResponseWriter, r *http.Request) {
	var req hitRequest
	if err := decode(r, w, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	_, e, err := s.load(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	p, ok := e.Click(*req.X, *req.Y)
	if !ok {
		writeJSON(w, http.StatusOK, noHitResponse{Kind: "none"})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleCommit(w http.ResponseWriter, r *http.Request) {
	var req commitRequest
	if err := decode(r, w, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	sess, e, err := s.load(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	changed := e.Commit(r.Context(), *req.Edit, req.Input, req.Cancelled)
	if changed {
		if err := s.save(r, sess, e); err != nil {
			s.fail(w, r, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, commitResponse{Changed: changed, Section: e.Section()})
}

func (s *Server) handleSection(w http.ResponseWriter, r *http.Request) {
	_, e, err := s.load(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sectionResponse{Setup: e.Setup(), Section: e.Section()})
}

func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := errors.ValidateFormat(format, sink.Formats); err != nil {
		s.fail(w, r, err)
		return
	}
	_, e, err := s.load(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	data, err := sink.Render(r.Context(), format, e.Drawing(), sink.Options{
		SVG:  []sink.SVGOption{sink.WithID("diagram"), sink.WithInteractive()},
		JSON: []sink.JSONOption{sink.WithJSONSection(e.Section())},
		PNG:  s.opts.PNG,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", sink.ContentType(format))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
