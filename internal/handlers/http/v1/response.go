package v1

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/KirkDiggler/waaagh-api/internal/entities/wh40k"
	"github.com/KirkDiggler/waaagh-api/internal/errors"
	"github.com/KirkDiggler/waaagh-api/internal/services/army"
)

type errorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

type versionResponse struct {
	Version string `json:"version"`
}

type datasheetsResponse struct {
	Faction    string                 `json:"faction"`
	Datasheets []*wh40k.UnitDatasheet `json:"units"`
}

type detachmentsResponse struct {
	Detachments []*wh40k.Detachment `json:"detachments"`
}

// armyResponse is returned by every call that reads or changes one army
type armyResponse struct {
	Army        *wh40k.ArmyList          `json:"army"`
	TotalPoints int                      `json:"totalPoints"`
	Validation  []wh40k.ValidationResult `json:"validation"`
	Unit        *wh40k.ArmyUnit          `json:"unit,omitempty"`
}

type armySummaryResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	DetachmentID *string `json:"detachmentId"`
	PointsLimit  int     `json:"pointsLimit"`
	TotalPoints  int     `json:"totalPoints"`
	UnitCount    int     `json:"unitCount"`
	UpdatedAt    int64   `json:"updatedAt"`
}

type armiesResponse struct {
	Armies []armySummaryResponse `json:"armies"`
}

type validationResponse struct {
	TotalPoints int                      `json:"totalPoints"`
	PointsLimit int                      `json:"pointsLimit"`
	Results     []wh40k.ValidationResult `json:"results"`
}

func newArmyResponse(snap army.ArmySnapshot) armyResponse {
	return armyResponse{
		Army:        snap.Army,
		TotalPoints: snap.TotalPoints,
		Validation:  snap.Validation,
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)

	message := errorMessage(err)
	if code == errors.CodeInternal {
		slog.Error("Request failed", "error", err)
		message = "internal error"
	}

	writeJSON(w, code.HTTPStatus(), errorResponse{
		Code:    code.String(),
		Message: message,
		Meta:    errors.GetMeta(err),
	})
}

// errorMessage returns the innermost coded message, which names the
// resource or field at fault.
func errorMessage(err error) string {
	message := errors.GetMessage(err)
	for e := err; e != nil; e = stderrors.Unwrap(e) {
		if coded, ok := e.(*errors.Error); ok {
			message = coded.Message
		}
	}
	return message
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if stderrors.Is(err, io.EOF) {
			return errors.InvalidArgument("request body is required")
		}
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body")
	}
	return nil
}
