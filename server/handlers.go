package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/m2comLLM/llmtest/calendar"
	"github.com/m2comLLM/llmtest/core"
	"github.com/m2comLLM/llmtest/search"
)

type askRequest struct {
	Question string `json:"question" validate:"required,max=1000"`
}

type askResponse struct {
	Answer      string  `json:"answer"`
	Path        string  `json:"path,omitempty"`
	Description string  `json:"description,omitempty"`
	Today       string  `json:"today,omitempty"`
	Total       int     `json:"total"`
	Shown       int     `json:"shown"`
	Events      []event `json:"events"`
}

type eventsQuery struct {
	Q     string `validate:"required,max=1000"`
	Limit int    `validate:"gte=0,lte=500"`
}

type eventsResponse struct {
	Question    string  `json:"question"`
	Path        string  `json:"path"`
	Description string  `json:"description,omitempty"`
	Today       string  `json:"today"`
	Total       int     `json:"total"`
	Events      []event `json:"events"`
}

// event is the JSON form of a stored record. Absent dates are omitted.
type event struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	CategoryLabel string `json:"category_label"`
	Location      string `json:"location,omitempty"`
	StartDate     string `json:"start_date,omitempty"`
	EndDate       string `json:"end_date,omitempty"`
	RegStart      string `json:"reg_start,omitempty"`
	RegEnd        string `json:"reg_end,omitempty"`
	DurationDays  int    `json:"duration_days,omitempty"`
	Weekend       bool   `json:"weekend"`
	URL           string `json:"url,omitempty"`
	Summary       string `json:"summary,omitempty"`
}

func toEvent(r *core.EventRecord) event {
	return event{
		ID:            r.ID,
		Name:          r.EventName,
		Category:      string(r.Category),
		CategoryLabel: r.Category.Label(),
		Location:      r.Location,
		StartDate:     r.StartDate.String(),
		EndDate:       r.EndDate.String(),
		RegStart:      r.RegStart.String(),
		RegEnd:        r.RegEnd.String(),
		DurationDays:  r.DurationDays,
		Weekend:       r.IsWeekend,
		URL:           r.URL,
		Summary:       r.AnswerTemplate,
	}
}

func toEvents(records []*core.EventRecord, limit int) []event {
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	out := make([]event, len(records))
	for i, r := range records {
		out[i] = toEvent(r)
	}
	return out
}

// monitor returns a per-request search monitor, or nil without metrics.
func (s *Server) monitor() search.SearchMonitor {
	if s.metrics == nil {
		return nil
	}
	return s.metrics.NewSearchMonitor()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{"status": "ok"}
	if s.counter != nil {
		n, err := s.counter.Count(r.Context())
		if err != nil {
			s.logger.Error("health check: count failed", "err", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{"status": "unavailable"})
			return
		}
		resp["events"] = n
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	body := http.MaxBytesReader(w, r.Body, 64<<10)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "request body must be a JSON object")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	answer, err := s.asker.Ask(r.Context(), req.Question, s.monitor())
	if err != nil {
		s.logger.Error("ask failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to answer question")
		return
	}

	resp := askResponse{Answer: answer.Text, Events: []event{}}
	if res := answer.Result; res != nil {
		resp.Path = res.Path.String()
		resp.Description = res.Description
		resp.Today = res.Today.String()
		resp.Total = res.Bundle.Total
		resp.Shown = res.Bundle.Shown
		resp.Events = toEvents(res.Bundle.Records, 0)
	}
	writeJSON(w, http.StatusOK, resp)
}

// parseEventsQuery reads and validates ?q= and ?limit=.
func (s *Server) parseEventsQuery(w http.ResponseWriter, r *http.Request) (eventsQuery, bool) {
	q := eventsQuery{Q: strings.TrimSpace(r.URL.Query().Get("q"))}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", "limit must be an integer")
			return q, false
		}
		q.Limit = limit
	}
	if err := s.validate.Struct(q); err != nil {
		writeValidationError(w, err)
		return q, false
	}
	return q, true
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	q, ok := s.parseEventsQuery(w, r)
	if !ok {
		return
	}

	result, err := s.searcher.SearchWithMonitor(r.Context(), q.Q, s.monitor())
	if err != nil {
		s.logger.Error("search failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "search failed")
		return
	}

	writeJSON(w, http.StatusOK, eventsResponse{
		Question:    result.Question,
		Path:        result.Path.String(),
		Description: result.Description,
		Today:       result.Today.String(),
		Total:       len(result.Records),
		Events:      toEvents(result.Records, q.Limit),
	})
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	q, ok := s.parseEventsQuery(w, r)
	if !ok {
		return
	}

	result, err := s.searcher.SearchWithMonitor(r.Context(), q.Q, s.monitor())
	if err != nil {
		s.logger.Error("search failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "search failed")
		return
	}

	records := result.Records
	if q.Limit > 0 && len(records) > q.Limit {
		records = records[:q.Limit]
	}

	opts := []calendar.Option{calendar.WithDeadlines()}
	if s.calName != "" {
		opts = append(opts, calendar.WithName(s.calName))
	}
	if s.zone != "" {
		opts = append(opts, calendar.WithTimezone(s.zone))
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="events.ics"`)
	if err := calendar.Export(w, records, opts...); err != nil {
		s.logger.Error("calendar export failed", "err", err)
	}
}
