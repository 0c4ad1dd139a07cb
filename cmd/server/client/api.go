package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/KirkDiggler/waaagh-api/internal/entities/wh40k"
	"github.com/KirkDiggler/waaagh-api/internal/errors"
)

const apiPrefix = "/api/v1"

// armyEnvelope is the body returned by every single-army call
type armyEnvelope struct {
	Army        wh40k.ArmyList           `json:"army"`
	TotalPoints int                      `json:"totalPoints"`
	Validation  []wh40k.ValidationResult `json:"validation"`
	Unit        *wh40k.ArmyUnit          `json:"unit,omitempty"`
}

type armySummary struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	DetachmentID *string `json:"detachmentId"`
	PointsLimit  int     `json:"pointsLimit"`
	TotalPoints  int     `json:"totalPoints"`
	UnitCount    int     `json:"unitCount"`
	UpdatedAt    int64   `json:"updatedAt"`
}

type validationReport struct {
	TotalPoints int                      `json:"totalPoints"`
	PointsLimit int                      `json:"pointsLimit"`
	Results     []wh40k.ValidationResult `json:"results"`
}

type errorBody struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Meta    map[string]interface{} `json:"meta"`
}

// apiClient calls the HTTP API with retries on transient failures
type apiClient struct {
	baseURL string
	http    *retryablehttp.Client
}

func newAPIClient(baseURL string, retryMax int, timeout time.Duration) *apiClient {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = slog.Default()
	retryClient.RetryMax = retryMax
	retryClient.RetryWaitMin = 200 * time.Millisecond
	retryClient.RetryWaitMax = 2 * time.Second
	retryClient.HTTPClient.Timeout = timeout
	// hand the last response back so error bodies can be decoded
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &apiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    retryClient,
	}
}

// do sends body as JSON and decodes a JSON response into out. Error
// responses come back as *errors.Error carrying the server's code.
func (c *apiClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "failed to decode response from %s %s", method, path)
	}
	return nil
}

// text fetches a plain-text resource
func (c *apiClient) text(ctx context.Context, path string) (string, error) {
	resp, err := c.send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = resp.Body.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read response from %s", path)
	}
	return string(raw), nil
}

func (c *apiClient) send(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var raw []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode request")
		}
		raw = encoded
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, raw)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, fmt.Sprintf("%s %s failed", method, path))
	}

	if resp.StatusCode >= http.StatusBadRequest {
		defer func() {
			_ = resp.Body.Close() // nolint:errcheck // safe to ignore in cleanup
		}()
		return nil, decodeError(resp)
	}

	return resp, nil
}

func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body) // nolint:errcheck // best effort

	var body errorBody
	if err := json.NewDecoder(bytes.NewReader(raw)).Decode(&body); err != nil || body.Code == "" {
		return errors.Internalf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	apiErr := errors.New(errors.Code(body.Code), body.Message)
	for k, v := range body.Meta {
		apiErr.WithMeta(k, v)
	}
	return apiErr
}

// Catalogue calls

func (c *apiClient) listUnits(ctx context.Context) (string, []wh40k.UnitDatasheet, error) {
	var out struct {
		Faction string                `json:"faction"`
		Units   []wh40k.UnitDatasheet `json:"units"`
	}
	if err := c.do(ctx, http.MethodGet, "/catalogue/units", nil, &out); err != nil {
		return "", nil, err
	}
	return out.Faction, out.Units, nil
}

func (c *apiClient) listDetachments(ctx context.Context) ([]wh40k.Detachment, error) {
	var out struct {
		Detachments []wh40k.Detachment `json:"detachments"`
	}
	if err := c.do(ctx, http.MethodGet, "/catalogue/detachments", nil, &out); err != nil {
		return nil, err
	}
	return out.Detachments, nil
}

// Army calls

func (c *apiClient) createArmy(ctx context.Context, name string, pointsLimit int) (*armyEnvelope, error) {
	var out armyEnvelope
	body := map[string]interface{}{"name": name, "pointsLimit": pointsLimit}
	if err := c.do(ctx, http.MethodPost, "/armies", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *apiClient) listArmies(ctx context.Context) ([]armySummary, error) {
	var out struct {
		Armies []armySummary `json:"armies"`
	}
	if err := c.do(ctx, http.MethodGet, "/armies", nil, &out); err != nil {
		return nil, err
	}
	return out.Armies, nil
}

func (c *apiClient) getArmy(ctx context.Context, armyID string) (*armyEnvelope, error) {
	var out armyEnvelope
	if err := c.do(ctx, http.MethodGet, "/armies/"+armyID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *apiClient) deleteArmy(ctx context.Context, armyID string) error {
	return c.do(ctx, http.MethodDelete, "/armies/"+armyID, nil, nil)
}

func (c *apiClient) setDetachment(ctx context.Context, armyID string, detachmentID *string) (*armyEnvelope, error) {
	var out armyEnvelope
	body := map[string]interface{}{"detachmentId": detachmentID}
	if err := c.do(ctx, http.MethodPut, "/armies/"+armyID+"/detachment", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *apiClient) addUnit(ctx context.Context, armyID, datasheetID string) (*armyEnvelope, error) {
	var out armyEnvelope
	body := map[string]interface{}{"datasheetId": datasheetID}
	if err := c.do(ctx, http.MethodPost, "/armies/"+armyID+"/units", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *apiClient) removeUnit(ctx context.Context, armyID, instanceID string) (*armyEnvelope, error) {
	var out armyEnvelope
	if err := c.do(ctx, http.MethodDelete, "/armies/"+armyID+"/units/"+instanceID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *apiClient) setModelCount(ctx context.Context, armyID, instanceID string, modelCount int) (*armyEnvelope, error) {
	var out armyEnvelope
	body := map[string]interface{}{"modelCount": modelCount}
	if err := c.do(ctx, http.MethodPatch, "/armies/"+armyID+"/units/"+instanceID, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *apiClient) selectWargear(ctx context.Context, armyID, instanceID, optionID, choiceID string) (*armyEnvelope, error) {
	var out armyEnvelope
	body := map[string]interface{}{"choiceId": choiceID}
	path := "/armies/" + armyID + "/units/" + instanceID + "/wargear/" + optionID
	if err := c.do(ctx, http.MethodPut, path, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *apiClient) setEnhancement(ctx context.Context, armyID, instanceID, enhancementID string) (*armyEnvelope, error) {
	var out armyEnvelope
	body := map[string]interface{}{"enhancementId": enhancementID}
	if err := c.do(ctx, http.MethodPut, "/armies/"+armyID+"/units/"+instanceID+"/enhancement", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *apiClient) validateArmy(ctx context.Context, armyID string) (*validationReport, error) {
	var out validationReport
	if err := c.do(ctx, http.MethodGet, "/armies/"+armyID+"/validation", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *apiClient) exportArmy(ctx context.Context, armyID string) (string, error) {
	return c.text(ctx, "/armies/"+armyID+"/export")
}
