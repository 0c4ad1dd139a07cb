package v1

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/KirkDiggler/waaagh-api/internal/services/army"
)

// ListDatasheets handles GET /catalogue/units
func (h *Handler) ListDatasheets(w http.ResponseWriter, r *http.Request) {
	output, err := h.armyService.ListDatasheets(r.Context(), &army.ListDatasheetsInput{})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, datasheetsResponse{
		Faction:    output.Faction,
		Datasheets: output.Datasheets,
	})
}

// GetDatasheet handles GET /catalogue/units/{datasheetId}
func (h *Handler) GetDatasheet(w http.ResponseWriter, r *http.Request) {
	output, err := h.armyService.GetDatasheet(r.Context(), &army.GetDatasheetInput{
		DatasheetID: mux.Vars(r)["datasheetId"],
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Datasheet)
}

// ListDetachments handles GET /catalogue/detachments
func (h *Handler) ListDetachments(w http.ResponseWriter, r *http.Request) {
	output, err := h.armyService.ListDetachments(r.Context(), &army.ListDetachmentsInput{})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, detachmentsResponse{Detachments: output.Detachments})
}

// GetDetachment handles GET /catalogue/detachments/{detachmentId}
func (h *Handler) GetDetachment(w http.ResponseWriter, r *http.Request) {
	output, err := h.armyService.GetDetachment(r.Context(), &army.GetDetachmentInput{
		DetachmentID: mux.Vars(r)["detachmentId"],
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Detachment)
}
