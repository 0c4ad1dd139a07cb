package v1

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/KirkDiggler/waaagh-api/internal/services/army"
)

type createArmyRequest struct {
	Name        string `json:"name"`
	PointsLimit int    `json:"pointsLimit"`
}

type updateArmyRequest struct {
	Name        *string `json:"name"`
	PointsLimit *int    `json:"pointsLimit"`
}

type setDetachmentRequest struct {
	DetachmentID *string `json:"detachmentId"`
}

type addUnitRequest struct {
	DatasheetID string `json:"datasheetId"`
}

type updateUnitRequest struct {
	ModelCount       *int    `json:"modelCount"`
	CustomName       *string `json:"customName"`
	Notes            *string `json:"notes"`
	AttachedToUnitID *string `json:"attachedToUnitId"`
}

type selectWargearRequest struct {
	ChoiceID string `json:"choiceId"`
}

type setEnhancementRequest struct {
	EnhancementID string `json:"enhancementId"`
}

// CreateArmy handles POST /armies
func (h *Handler) CreateArmy(w http.ResponseWriter, r *http.Request) {
	var req createArmyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	output, err := h.armyService.CreateArmy(r.Context(), &army.CreateArmyInput{
		Name:        req.Name,
		PointsLimit: req.PointsLimit,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, newArmyResponse(output.ArmySnapshot))
}

// ListArmies handles GET /armies
func (h *Handler) ListArmies(w http.ResponseWriter, r *http.Request) {
	output, err := h.armyService.ListArmies(r.Context(), &army.ListArmiesInput{})
	if err != nil {
		writeError(w, err)
		return
	}

	resp := armiesResponse{Armies: make([]armySummaryResponse, 0, len(output.Armies))}
	for _, summary := range output.Armies {
		resp.Armies = append(resp.Armies, armySummaryResponse{
			ID:           summary.ID,
			Name:         summary.Name,
			DetachmentID: summary.DetachmentID,
			PointsLimit:  summary.PointsLimit,
			TotalPoints:  summary.TotalPoints,
			UnitCount:    summary.UnitCount,
			UpdatedAt:    summary.UpdatedAt,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetArmy handles GET /armies/{armyId}
func (h *Handler) GetArmy(w http.ResponseWriter, r *http.Request) {
	output, err := h.armyService.GetArmy(r.Context(), &army.GetArmyInput{
		ArmyID: mux.Vars(r)["armyId"],
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newArmyResponse(output.ArmySnapshot))
}

// UpdateArmy handles PATCH /armies/{armyId}
func (h *Handler) UpdateArmy(w http.ResponseWriter, r *http.Request) {
	var req updateArmyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	output, err := h.armyService.UpdateArmy(r.Context(), &army.UpdateArmyInput{
		ArmyID:      mux.Vars(r)["armyId"],
		Name:        req.Name,
		PointsLimit: req.PointsLimit,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newArmyResponse(output.ArmySnapshot))
}

// DeleteArmy handles DELETE /armies/{armyId}
func (h *Handler) DeleteArmy(w http.ResponseWriter, r *http.Request) {
	_, err := h.armyService.DeleteArmy(r.Context(), &army.DeleteArmyInput{
		ArmyID: mux.Vars(r)["armyId"],
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetDetachment handles PUT /armies/{armyId}/detachment
func (h *Handler) SetDetachment(w http.ResponseWriter, r *http.Request) {
	var req setDetachmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	output, err := h.armyService.SetDetachment(r.Context(), &army.SetDetachmentInput{
		ArmyID:       mux.Vars(r)["armyId"],
		DetachmentID: req.DetachmentID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newArmyResponse(output.ArmySnapshot))
}

// AddUnit handles POST /armies/{armyId}/units
func (h *Handler) AddUnit(w http.ResponseWriter, r *http.Request) {
	var req addUnitRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	output, err := h.armyService.AddUnit(r.Context(), &army.AddUnitInput{
		ArmyID:      mux.Vars(r)["armyId"],
		DatasheetID: req.DatasheetID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	resp := newArmyResponse(output.ArmySnapshot)
	resp.Unit = output.Unit
	writeJSON(w, http.StatusCreated, resp)
}

// UpdateUnit handles PATCH /armies/{armyId}/units/{instanceId}
func (h *Handler) UpdateUnit(w http.ResponseWriter, r *http.Request) {
	var req updateUnitRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	vars := mux.Vars(r)
	output, err := h.armyService.UpdateUnit(r.Context(), &army.UpdateUnitInput{
		ArmyID:           vars["armyId"],
		InstanceID:       vars["instanceId"],
		ModelCount:       req.ModelCount,
		CustomName:       req.CustomName,
		Notes:            req.Notes,
		AttachedToUnitID: req.AttachedToUnitID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newArmyResponse(output.ArmySnapshot))
}

// RemoveUnit handles DELETE /armies/{armyId}/units/{instanceId}
func (h *Handler) RemoveUnit(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	output, err := h.armyService.RemoveUnit(r.Context(), &army.RemoveUnitInput{
		ArmyID:     vars["armyId"],
		InstanceID: vars["instanceId"],
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newArmyResponse(output.ArmySnapshot))
}

// SelectWargear handles PUT /armies/{armyId}/units/{instanceId}/wargear/{optionId}
func (h *Handler) SelectWargear(w http.ResponseWriter, r *http.Request) {
	var req selectWargearRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	vars := mux.Vars(r)
	output, err := h.armyService.SelectWargear(r.Context(), &army.SelectWargearInput{
		ArmyID:     vars["armyId"],
		InstanceID: vars["instanceId"],
		OptionID:   vars["optionId"],
		ChoiceID:   req.ChoiceID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newArmyResponse(output.ArmySnapshot))
}

// SetEnhancement handles PUT /armies/{armyId}/units/{instanceId}/enhancement
func (h *Handler) SetEnhancement(w http.ResponseWriter, r *http.Request) {
	var req setEnhancementRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	vars := mux.Vars(r)
	output, err := h.armyService.SetEnhancement(r.Context(), &army.SetEnhancementInput{
		ArmyID:        vars["armyId"],
		InstanceID:    vars["instanceId"],
		EnhancementID: req.EnhancementID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newArmyResponse(output.ArmySnapshot))
}

// ValidateArmy handles GET /armies/{armyId}/validation
func (h *Handler) ValidateArmy(w http.ResponseWriter, r *http.Request) {
	output, err := h.armyService.ValidateArmy(r.Context(), &army.ValidateArmyInput{
		ArmyID: mux.Vars(r)["armyId"],
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, validationResponse{
		TotalPoints: output.TotalPoints,
		PointsLimit: output.PointsLimit,
		Results:     output.Results,
	})
}

// ExportArmy handles GET /armies/{armyId}/export
func (h *Handler) ExportArmy(w http.ResponseWriter, r *http.Request) {
	output, err := h.armyService.ExportArmy(r.Context(), &army.ExportArmyInput{
		ArmyID: mux.Vars(r)["armyId"],
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(output.Text)); err != nil {
		slog.Error("Failed to write export", "error", err)
	}
}
