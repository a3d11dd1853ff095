package feed

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"dutyroster/internal/calendar"
	"dutyroster/internal/domain"
	"dutyroster/internal/services/duty"
)

const (
	defaultUpcoming = 6
	maxUpcoming     = duty.MaxUpcoming
	requestIDHeader = "X-Request-ID"
)

// Source is the read side of duty.Service.
type Source interface {
	Today() (time.Time, error)
	Day(d time.Time) domain.DayPair
	Upcoming(from time.Time, count int) []domain.DayPair
	Debtors() []domain.Debtor
}

// Day is the wire form of domain.DayPair.
type Day struct {
	Date     string      `json:"date"`
	Pair     domain.Pair `json:"pair"`
	Override bool        `json:"override"`
}

func toDay(dp domain.DayPair) Day {
	return Day{Date: calendar.FormatDate(dp.Date), Pair: dp.Pair, Override: dp.Override}
}

// Server serves a Source.
type Server struct {
	src Source
	log *log.Logger
	mux *http.ServeMux
}

// NewServer builds the handler tree for src.
func NewServer(src Source, logger *log.Logger) *Server {
	s := &Server{src: src, log: logger, mux: http.NewServeMux()}
	s.mux.HandleFunc("GET /pair", s.handleToday)
	s.mux.HandleFunc("GET /pair/{date}", s.handleDate)
	s.mux.HandleFunc("GET /upcoming", s.handleUpcoming)
	s.mux.HandleFunc("GET /debtors", s.handleDebtors)
	return s
}

// ServeHTTP dispatches and writes one access log line per request. The
// caller's X-Request-ID is echoed back, or a fresh one is assigned.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := r.Header.Get(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	w.Header().Set(requestIDHeader, id)

	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)
	s.log.Info("request",
		"id", id, "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr,
		"status", rec.status, "bytes", rec.bytes, "dur", time.Since(start))
}

func (s *Server) handleToday(w http.ResponseWriter, r *http.Request) {
	d, err := s.src.Today()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDay(s.src.Day(d)))
}

func (s *Server) handleDate(w http.ResponseWriter, r *http.Request) {
	d, err := calendar.ParseDate(r.PathValue("date"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDay(s.src.Day(d)))
}

func (s *Server) handleUpcoming(w http.ResponseWriter, r *http.Request) {
	n := defaultUpcoming
	if v := r.URL.Query().Get("n"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 || parsed > maxUpcoming {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "n must be between 1 and " + strconv.Itoa(maxUpcoming)})
			return
		}
		n = parsed
	}

	var (
		from time.Time
		err  error
	)
	if v := r.URL.Query().Get("from"); v != "" {
		from, err = calendar.ParseDate(v)
	} else {
		from, err = s.src.Today()
	}
	if err != nil {
		writeError(w, err)
		return
	}

	days := s.src.Upcoming(from, n)
	out := make([]Day, 0, len(days))
	for _, dp := range days {
		out = append(out, toDay(dp))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleDebtors(w http.ResponseWriter, r *http.Request) {
	debtors := s.src.Debtors()
	if debtors == nil {
		debtors = []domain.Debtor{}
	}
	writeJSON(w, http.StatusOK, debtors)
}

type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, domain.ErrParse) {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, errorBody{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n
	return n, err
}
