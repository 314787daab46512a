package leavehandler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"leavedesk/internal/domain/leave"
	"leavedesk/internal/platform/metrics"
	"leavedesk/internal/transport/http/api"
	"leavedesk/internal/transport/http/middleware"
	"leavedesk/internal/transport/http/shared"
)

// DefaultMaxRangeDays bounds the ranges accepted over HTTP when no limit is
// configured.
const DefaultMaxRangeDays = 366

type Handler struct {
	Service      *leave.Service
	Metrics      *metrics.Collector
	MaxRangeDays int
}

func NewHandler(service *leave.Service, collector *metrics.Collector, maxRangeDays int) *Handler {
	if maxRangeDays <= 0 {
		maxRangeDays = DefaultMaxRangeDays
	}
	return &Handler{Service: service, Metrics: collector, MaxRangeDays: maxRangeDays}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leave", func(r chi.Router) {
		r.Get("/types", h.handleListTypes)
		r.Get("/reasons", h.handleListReasons)
		r.Get("/holidays", h.handleListHolidays)
		r.Get("/eligibility", h.handleEligibility)
		r.Post("/days", h.handleComputeDays)
		r.Post("/requests/validate", h.handleValidateRequest)
		r.Post("/requests/slip", h.handleRequestSlip)
	})
}

func (h *Handler) handleListTypes(w http.ResponseWriter, r *http.Request) {
	api.Success(w, leave.LeaveTypes, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListReasons(w http.ResponseWriter, r *http.Request) {
	api.Success(w, map[string]any{
		"reasons":     leave.Reasons,
		"otherReason": leave.ReasonOthers,
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListHolidays(w http.ResponseWriter, r *http.Request) {
	year, ok := shared.ParseYear(r.URL.Query().Get("year"), time.Now().Year())
	if !ok {
		shared.FailValidation(w, middleware.GetRequestID(r.Context()), []shared.ValidationIssue{
			{Field: "year", Reason: "must be a four digit year"},
		})
		return
	}
	out := h.Service.Calendar().EntriesForYear(year)
	if out == nil {
		out = []leave.HolidayEntry{}
	}
	api.Success(w, out, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleEligibility(w http.ResponseWriter, r *http.Request) {
	v := shared.NewValidator()
	raw := r.URL.Query().Get("date")
	v.Required("date", raw, "is required")
	date := v.Date("date", raw)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}
	api.Success(w, h.Service.Eligibility(date), middleware.GetRequestID(r.Context()))
}

type daysPayload struct {
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	HalfDayStart bool   `json:"halfDayStart"`
	HalfDayEnd   bool   `json:"halfDayEnd"`
}

func (h *Handler) handleComputeDays(w http.ResponseWriter, r *http.Request) {
	var payload daysPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("startDate", payload.StartDate, "is required")
	v.Required("endDate", payload.EndDate, "is required")
	start := v.Date("startDate", payload.StartDate)
	end := v.Date("endDate", payload.EndDate)
	v.RangeLength("endDate", start, end, h.MaxRangeDays)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	quote, err := h.Service.ComputeChargeableDays(
		leave.DateRange{Start: start, End: end},
		leave.HalfDayFlags{Start: payload.HalfDayStart, End: payload.HalfDayEnd},
	)
	if err != nil {
		h.failEngine(w, r, http.StatusBadRequest, err)
		return
	}
	api.Success(w, quote, middleware.GetRequestID(r.Context()))
}

type draftPayload struct {
	LeaveType    string `json:"leaveType"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Reason       string `json:"reason"`
	OtherReason  string `json:"otherReason"`
	HalfDayStart bool   `json:"halfDayStart"`
	HalfDayEnd   bool   `json:"halfDayEnd"`
}

func (h *Handler) handleValidateRequest(w http.ResponseWriter, r *http.Request) {
	submission, ok := h.validate(w, r)
	if !ok {
		return
	}
	api.Success(w, submission, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRequestSlip(w http.ResponseWriter, r *http.Request) {
	submission, ok := h.validate(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := leave.WriteSlip(&buf, submission); err != nil {
		slog.Error("render leave slip failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "slip_failed", "failed to render leave slip", middleware.GetRequestID(r.Context()))
		return
	}
	filename := "leave-" + submission.StartDate.String() + ".pdf"
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Warn("write leave slip failed", "err", err)
	}
}

// validate decodes a draft payload and runs it through the engine. On failure
// the response has already been written.
func (h *Handler) validate(w http.ResponseWriter, r *http.Request) (leave.Submission, bool) {
	var payload draftPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return leave.Submission{}, false
	}

	v := shared.NewValidator()
	v.Enum("leaveType", payload.LeaveType, leave.LeaveTypeCodes(), "must be a known leave type")
	start := v.Date("startDate", payload.StartDate)
	end := v.Date("endDate", payload.EndDate)
	v.RangeLength("endDate", start, end, h.MaxRangeDays)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return leave.Submission{}, false
	}

	// Dates go first so the flag setters see the boundaries they apply to.
	draft := h.Service.NewDraft().
		SetStartDate(start).
		SetEndDate(end).
		SetHalfDayStart(payload.HalfDayStart).
		SetHalfDayEnd(payload.HalfDayEnd).
		SetLeaveType(strings.ToUpper(strings.TrimSpace(payload.LeaveType))).
		SetReason(payload.Reason).
		SetOtherReason(payload.OtherReason)

	submission, err := h.Service.ValidateRequest(draft)
	if err != nil {
		h.failEngine(w, r, http.StatusUnprocessableEntity, err)
		return leave.Submission{}, false
	}
	h.recordOutcome("accepted")
	return submission, true
}

func (h *Handler) failEngine(w http.ResponseWriter, r *http.Request, status int, err error) {
	var engineErr *leave.Error
	if !errors.As(err, &engineErr) {
		slog.Error("leave engine failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "internal_error", "unexpected error", middleware.GetRequestID(r.Context()))
		return
	}
	h.recordOutcome(string(engineErr.Kind))
	api.Fail(w, status, string(engineErr.Kind), engineErr.Message, middleware.GetRequestID(r.Context()))
}

func (h *Handler) recordOutcome(outcome string) {
	if h.Metrics != nil {
		h.Metrics.RecordOutcome(outcome)
	}
}
