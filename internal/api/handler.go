package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"festival-campaign-engine/internal/engine"
	"festival-campaign-engine/internal/featherlight"
	"festival-campaign-engine/internal/observability"
	"festival-campaign-engine/internal/serviceability"
)

type Handler struct {
	Eng        *engine.Engine
	Svc        *serviceability.Resolver
	SvcTimeout time.Duration
	Fl         *featherlight.Controller
}

func NewHandler(eng *engine.Engine, svc *serviceability.Resolver, svcTimeout time.Duration, fl *featherlight.Controller) *Handler {
	return &Handler{Eng: eng, Svc: svc, SvcTimeout: svcTimeout, Fl: fl}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// CurrentCampaign answers "which campaign is live right now". 204 when
// no campaign window contains today.
func (h *Handler) CurrentCampaign(w http.ResponseWriter, r *http.Request) {
	c := h.Eng.Current(r.Context())
	if c == nil {
		observability.CampaignResolutions.WithLabelValues("miss").Inc()
		w.WriteHeader(http.StatusNoContent)
		return
	}
	observability.CampaignResolutions.WithLabelValues("hit").Inc()
	writeJSON(w, http.StatusOK, c)
}

// CampaignByCollection serves deep links into a campaign's landing
// collection, live or not.
func (h *Handler) CampaignByCollection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "collectionID")
	c := h.Eng.ByCollectionID(r.Context(), id)
	if c == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "collection not found"})
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Serviceability answers COD availability and a delivery estimate for a
// pincode in one round trip. A malformed pincode is a negative verdict,
// not an error; only a missing parameter is a bad request.
func (h *Handler) Serviceability(w http.ResponseWriter, r *http.Request) {
	pincode := r.URL.Query().Get("pincode")
	if pincode == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "pincode is required"})
		return
	}
	res := h.Svc.Check(r.Context(), pincode, h.SvcTimeout)
	writeJSON(w, http.StatusOK, res)
}

type featherlightResponse struct {
	Mode   featherlight.Mode `json:"mode"`
	Active bool              `json:"active"`
}

// Featherlight evaluates the reduced-fidelity decision against the
// signal the client reports in the query string. With no signal
// parameters at all the connectivity API counts as unsupported.
func (h *Handler) Featherlight(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var sig *featherlight.Signal
	if q.Has("effective_type") || q.Has("save_data") || q.Has("downlink") {
		sig = &featherlight.Signal{EffectiveType: q.Get("effective_type")}
		sig.SaveData, _ = strconv.ParseBool(q.Get("save_data"))
		sig.DownlinkMbps, _ = strconv.ParseFloat(q.Get("downlink"), 64)
	}
	writeJSON(w, http.StatusOK, featherlightResponse{
		Mode:   h.Fl.Mode(),
		Active: h.Fl.Evaluate(sig),
	})
}

type setModeRequest struct {
	Mode string `json:"mode"`
}

// SetFeatherlightMode persists the user's mode preference.
func (h *Handler) SetFeatherlightMode(w http.ResponseWriter, r *http.Request) {
	var req setModeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}
	m, err := featherlight.ParseMode(req.Mode)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := h.Fl.SetMode(m); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to save preference"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
