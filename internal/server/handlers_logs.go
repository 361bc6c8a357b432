package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ibuki-kubota/my-workout-app/internal/history"
	"github.com/ibuki-kubota/my-workout-app/internal/models"
	"github.com/ibuki-kubota/my-workout-app/internal/storage"
)

func (s *Server) handleListLogs(w http.ResponseWriter, r *http.Request) {
	records, err := s.logs.ListLogs(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if records == nil {
		records = []models.HistoryRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleDeleteLog(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid log ID"})
		return
	}
	if err := s.logs.DeleteLog(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrLogNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleLogStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.logs.GetLogStats(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// calendarResponse is the history tab in one payload: month grid, goal pace,
// and the most recent sessions.
type calendarResponse struct {
	Calendar history.Month          `json:"calendar"`
	Pace     history.PaceStatus     `json:"pace"`
	Recent   []models.HistoryRecord `json:"recent"`
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year, month := parseYearMonth(r, now)

	records, err := s.logs.ListLogs(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	recent := records
	if len(recent) > 3 {
		recent = recent[:3]
	}
	if recent == nil {
		recent = []models.HistoryRecord{}
	}

	writeJSON(w, http.StatusOK, calendarResponse{
		Calendar: history.Calendar(records, year, month, now),
		Pace:     history.Pace(len(records), s.session.TargetFrequency()),
		Recent:   recent,
	})
}

// trendResponse carries everything the chart needs: the category list, the
// selected category, and the sampled points with their connecting segments
// over a fixed 1-10 vertical scale.
type trendResponse struct {
	Exercises []string          `json:"exercises"`
	Selected  string            `json:"selected"`
	Index     int               `json:"index"`
	Samples   []history.Sample  `json:"samples"`
	Segments  []history.Segment `json:"segments"`
	Days      int               `json:"days"`
	ScaleMin  int               `json:"scaleMin"`
	ScaleMax  int               `json:"scaleMax"`
}

func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	year, month := parseYearMonth(r, time.Now())

	records, err := s.logs.ListLogs(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	names := history.ExerciseNames(records)
	resp := trendResponse{
		Exercises: names,
		Days:      history.DaysIn(year, month),
		ScaleMin:  history.FatigueScaleMin,
		ScaleMax:  history.FatigueScaleMax,
	}
	if names == nil {
		resp.Exercises = []string{}
	}
	if len(names) == 0 {
		// Empty state: no exercise has ever been logged.
		writeJSON(w, http.StatusOK, resp)
		return
	}

	index := 0
	if v := r.URL.Query().Get("index"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			index = i
		}
	}
	cursor := history.NewCursor(names, index)
	if name := r.URL.Query().Get("exercise"); name != "" {
		for i, n := range names {
			if n == name {
				cursor = history.NewCursor(names, i)
				break
			}
		}
	}

	resp.Selected = cursor.Selected()
	resp.Index = cursor.Index
	resp.Samples = history.MonthSamples(records, cursor.Selected(), year, month)
	resp.Segments = history.Segments(resp.Samples)
	if resp.Samples == nil {
		resp.Samples = []history.Sample{}
	}
	if resp.Segments == nil {
		resp.Segments = []history.Segment{}
	}
	writeJSON(w, http.StatusOK, resp)
}

// parseYearMonth reads year/month query params, defaulting to the current month.
func parseYearMonth(r *http.Request, now time.Time) (int, time.Month) {
	year := now.Year()
	month := now.Month()
	if v := r.URL.Query().Get("year"); v != "" {
		if y, err := strconv.Atoi(v); err == nil && y > 0 {
			year = y
		}
	}
	if v := r.URL.Query().Get("month"); v != "" {
		if m, err := strconv.Atoi(v); err == nil && m >= 1 && m <= 12 {
			month = time.Month(m)
		}
	}
	return year, month
}
