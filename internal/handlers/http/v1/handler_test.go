package v1_test

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/waaagh-api/internal/entities/wh40k"
	"github.com/KirkDiggler/waaagh-api/internal/errors"
	httpv1 "github.com/KirkDiggler/waaagh-api/internal/handlers/http/v1"
	"github.com/KirkDiggler/waaagh-api/internal/services/army"
	armymock "github.com/KirkDiggler/waaagh-api/internal/services/army/mock"
	"github.com/KirkDiggler/waaagh-api/internal/testutils"
	"github.com/KirkDiggler/waaagh-api/internal/testutils/builders"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *armymock.MockService
	router      *mux.Router
	testArmy    *wh40k.ArmyList
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = armymock.NewMockService(s.ctrl)

	handler, err := httpv1.NewHandler(&httpv1.HandlerConfig{
		ArmyService: s.mockService,
	})
	s.Require().NoError(err)
	s.router = handler.Router()

	s.testArmy = builders.NewArmyBuilder().
		WithID("army_1").
		WithUnit(testutils.UnitBoss, 1, 75).
		Build()
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) decode(rec *httptest.ResponseRecorder, dst interface{}) {
	s.Require().Equal("application/json", rec.Header().Get("Content-Type"))
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), dst))
}

func (s *HandlerTestSuite) snapshot() army.ArmySnapshot {
	return army.ArmySnapshot{
		Army:        s.testArmy,
		TotalPoints: 75,
		Validation: []wh40k.ValidationResult{{
			Severity: wh40k.SeverityError,
			Message:  "No detachment selected — pick a Detachment before battling!",
		}},
	}
}

type armyBody struct {
	Army        wh40k.ArmyList           `json:"army"`
	TotalPoints int                      `json:"totalPoints"`
	Validation  []wh40k.ValidationResult `json:"validation"`
	Unit        *wh40k.ArmyUnit          `json:"unit"`
}

type errorBody struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Meta    map[string]interface{} `json:"meta"`
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := httpv1.NewHandler(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = httpv1.NewHandler(&httpv1.HandlerConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestCreateArmy() {
	s.mockService.EXPECT().
		CreateArmy(gomock.Any(), &army.CreateArmyInput{Name: "Da Green Tide", PointsLimit: 1000}).
		Return(&army.CreateArmyOutput{ArmySnapshot: s.snapshot()}, nil)

	rec := s.do(http.MethodPost, "/api/v1/armies", `{"name":"Da Green Tide","pointsLimit":1000}`)

	s.Equal(http.StatusCreated, rec.Code)
	var body armyBody
	s.decode(rec, &body)
	s.Equal("army_1", body.Army.ID)
	s.Equal(75, body.TotalPoints)
	s.Len(body.Validation, 1)
	s.Nil(body.Unit)
}

func (s *HandlerTestSuite) TestCreateArmyBadBody() {
	for _, body := range []string{"", "{not json"} {
		rec := s.do(http.MethodPost, "/api/v1/armies", body)

		s.Equal(http.StatusBadRequest, rec.Code, "body %q", body)
		var errResp errorBody
		s.decode(rec, &errResp)
		s.Equal("INVALID_ARGUMENT", errResp.Code)
	}
}

func (s *HandlerTestSuite) TestGetArmy() {
	s.mockService.EXPECT().
		GetArmy(gomock.Any(), &army.GetArmyInput{ArmyID: "army_1"}).
		Return(&army.GetArmyOutput{ArmySnapshot: s.snapshot()}, nil)

	rec := s.do(http.MethodGet, "/api/v1/armies/army_1", "")

	s.Equal(http.StatusOK, rec.Code)
	var body armyBody
	s.decode(rec, &body)
	s.Require().Len(body.Army.Units, 1)
	s.Equal(testutils.UnitBoss, body.Army.Units[0].DatasheetID)
}

func (s *HandlerTestSuite) TestErrorMapping() {
	testCases := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{
			name:    "not found",
			err:     errors.Wrap(errors.NotFound("army ghost not found"), "failed to get army").WithMeta("army_id", "ghost"),
			status:  http.StatusNotFound,
			code:    "NOT_FOUND",
			message: "army ghost not found",
		},
		{
			name:    "invalid argument",
			err:     errors.InvalidArgument("army ID is required"),
			status:  http.StatusBadRequest,
			code:    "INVALID_ARGUMENT",
			message: "army ID is required",
		},
		{
			name:    "unavailable",
			err:     errors.Unavailable("store is down"),
			status:  http.StatusServiceUnavailable,
			code:    "UNAVAILABLE",
			message: "store is down",
		},
		{
			name:    "plain error is hidden",
			err:     stderrors.New("connection reset"),
			status:  http.StatusInternalServerError,
			code:    "INTERNAL",
			message: "internal error",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockService.EXPECT().
				GetArmy(gomock.Any(), gomock.Any()).
				Return(nil, tc.err)

			rec := s.do(http.MethodGet, "/api/v1/armies/ghost", "")

			s.Equal(tc.status, rec.Code)
			var body errorBody
			s.decode(rec, &body)
			s.Equal(tc.code, body.Code)
			s.Equal(tc.message, body.Message)
		})
	}
}

func (s *HandlerTestSuite) TestErrorMetaIsReturned() {
	s.mockService.EXPECT().
		DeleteArmy(gomock.Any(), &army.DeleteArmyInput{ArmyID: "ghost"}).
		Return(nil, errors.Wrap(errors.NotFound("army ghost not found"), "failed to delete army").WithMeta("army_id", "ghost"))

	rec := s.do(http.MethodDelete, "/api/v1/armies/ghost", "")

	s.Equal(http.StatusNotFound, rec.Code)
	var body errorBody
	s.decode(rec, &body)
	s.Equal("ghost", body.Meta["army_id"])
}

func (s *HandlerTestSuite) TestListArmies() {
	horde := testutils.DetachmentHorde
	s.mockService.EXPECT().
		ListArmies(gomock.Any(), &army.ListArmiesInput{}).
		Return(&army.ListArmiesOutput{Armies: []*army.ArmySummary{
			{ID: "army_1", Name: "Da Green Tide", DetachmentID: &horde, PointsLimit: 2000, TotalPoints: 75, UnitCount: 1},
		}}, nil)

	rec := s.do(http.MethodGet, "/api/v1/armies", "")

	s.Equal(http.StatusOK, rec.Code)
	var body struct {
		Armies []struct {
			ID           string  `json:"id"`
			DetachmentID *string `json:"detachmentId"`
			TotalPoints  int     `json:"totalPoints"`
			UnitCount    int     `json:"unitCount"`
		} `json:"armies"`
	}
	s.decode(rec, &body)
	s.Require().Len(body.Armies, 1)
	s.Equal("army_1", body.Armies[0].ID)
	s.Equal(&horde, body.Armies[0].DetachmentID)
	s.Equal(75, body.Armies[0].TotalPoints)
	s.Equal(1, body.Armies[0].UnitCount)
}

func (s *HandlerTestSuite) TestUpdateArmy() {
	name := "Renamed"
	s.mockService.EXPECT().
		UpdateArmy(gomock.Any(), &army.UpdateArmyInput{ArmyID: "army_1", Name: &name}).
		Return(&army.UpdateArmyOutput{ArmySnapshot: s.snapshot()}, nil)

	rec := s.do(http.MethodPatch, "/api/v1/armies/army_1", `{"name":"Renamed"}`)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestDeleteArmy() {
	s.mockService.EXPECT().
		DeleteArmy(gomock.Any(), &army.DeleteArmyInput{ArmyID: "army_1"}).
		Return(&army.DeleteArmyOutput{}, nil)

	rec := s.do(http.MethodDelete, "/api/v1/armies/army_1", "")

	s.Equal(http.StatusNoContent, rec.Code)
	s.Empty(rec.Body.String())
}

func (s *HandlerTestSuite) TestSetDetachment() {
	s.Run("select", func() {
		hunt := testutils.DetachmentHunt
		s.mockService.EXPECT().
			SetDetachment(gomock.Any(), &army.SetDetachmentInput{ArmyID: "army_1", DetachmentID: &hunt}).
			Return(&army.SetDetachmentOutput{ArmySnapshot: s.snapshot()}, nil)

		rec := s.do(http.MethodPut, "/api/v1/armies/army_1/detachment", `{"detachmentId":"hunt"}`)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("clear", func() {
		s.mockService.EXPECT().
			SetDetachment(gomock.Any(), &army.SetDetachmentInput{ArmyID: "army_1"}).
			Return(&army.SetDetachmentOutput{ArmySnapshot: s.snapshot()}, nil)

		rec := s.do(http.MethodPut, "/api/v1/armies/army_1/detachment", `{"detachmentId":null}`)
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *HandlerTestSuite) TestAddUnit() {
	unit := s.testArmy.Units[0]
	s.mockService.EXPECT().
		AddUnit(gomock.Any(), &army.AddUnitInput{ArmyID: "army_1", DatasheetID: testutils.UnitBoss}).
		Return(&army.AddUnitOutput{ArmySnapshot: s.snapshot(), Unit: &unit}, nil)

	rec := s.do(http.MethodPost, "/api/v1/armies/army_1/units", `{"datasheetId":"boss"}`)

	s.Equal(http.StatusCreated, rec.Code)
	var body armyBody
	s.decode(rec, &body)
	s.Require().NotNil(body.Unit)
	s.Equal(unit.InstanceID, body.Unit.InstanceID)
	s.Equal(75, body.Unit.ComputedPoints)
}

func (s *HandlerTestSuite) TestUpdateUnit() {
	count := 15
	attach := "unit-2"
	s.mockService.EXPECT().
		UpdateUnit(gomock.Any(), &army.UpdateUnitInput{
			ArmyID:           "army_1",
			InstanceID:       "unit-1",
			ModelCount:       &count,
			AttachedToUnitID: &attach,
		}).
		Return(&army.UpdateUnitOutput{ArmySnapshot: s.snapshot()}, nil)

	rec := s.do(http.MethodPatch, "/api/v1/armies/army_1/units/unit-1", `{"modelCount":15,"attachedToUnitId":"unit-2"}`)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestRemoveUnit() {
	s.mockService.EXPECT().
		RemoveUnit(gomock.Any(), &army.RemoveUnitInput{ArmyID: "army_1", InstanceID: "unit-1"}).
		Return(&army.RemoveUnitOutput{ArmySnapshot: s.snapshot()}, nil)

	rec := s.do(http.MethodDelete, "/api/v1/armies/army_1/units/unit-1", "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestSelectWargear() {
	s.mockService.EXPECT().
		SelectWargear(gomock.Any(), &army.SelectWargearInput{
			ArmyID:     "army_1",
			InstanceID: "unit-1",
			OptionID:   testutils.OptionBossWeapon,
			ChoiceID:   testutils.ChoiceChoppa,
		}).
		Return(&army.SelectWargearOutput{ArmySnapshot: s.snapshot()}, nil)

	rec := s.do(http.MethodPut, "/api/v1/armies/army_1/units/unit-1/wargear/boss-weapon", `{"choiceId":"big-choppa"}`)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestSetEnhancement() {
	s.mockService.EXPECT().
		SetEnhancement(gomock.Any(), &army.SetEnhancementInput{
			ArmyID:        "army_1",
			InstanceID:    "unit-1",
			EnhancementID: testutils.EnhancementFollowMe,
		}).
		Return(&army.SetEnhancementOutput{ArmySnapshot: s.snapshot()}, nil)

	rec := s.do(http.MethodPut, "/api/v1/armies/army_1/units/unit-1/enhancement", `{"enhancementId":"follow-me-ladz"}`)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestValidateArmy() {
	s.mockService.EXPECT().
		ValidateArmy(gomock.Any(), &army.ValidateArmyInput{ArmyID: "army_1"}).
		Return(&army.ValidateArmyOutput{
			TotalPoints: 75,
			PointsLimit: 2000,
			Results:     []wh40k.ValidationResult{},
		}, nil)

	rec := s.do(http.MethodGet, "/api/v1/armies/army_1/validation", "")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"totalPoints":75,"pointsLimit":2000,"results":[]}`, rec.Body.String())
}

func (s *HandlerTestSuite) TestExportArmy() {
	text := "== Da Green Tide ==\nDetachment: None\nPoints: 75/2000\n\n+ Warboss [75pts]\n\nTOTAL: 75/2000pts"
	s.mockService.EXPECT().
		ExportArmy(gomock.Any(), &army.ExportArmyInput{ArmyID: "army_1"}).
		Return(&army.ExportArmyOutput{Text: text}, nil)

	rec := s.do(http.MethodGet, "/api/v1/armies/army_1/export", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	s.Equal(text, rec.Body.String())
}

func (s *HandlerTestSuite) TestCatalogue() {
	cat := testutils.TestCatalogue(s.T())

	s.Run("list units", func() {
		s.mockService.EXPECT().
			ListDatasheets(gomock.Any(), &army.ListDatasheetsInput{}).
			Return(&army.ListDatasheetsOutput{Faction: cat.Faction(), Datasheets: cat.ListUnits()}, nil)

		rec := s.do(http.MethodGet, "/api/v1/catalogue/units", "")

		s.Equal(http.StatusOK, rec.Code)
		var body struct {
			Faction string                `json:"faction"`
			Units   []wh40k.UnitDatasheet `json:"units"`
		}
		s.decode(rec, &body)
		s.Equal("Orks", body.Faction)
		s.Len(body.Units, len(cat.ListUnits()))
	})

	s.Run("get unit", func() {
		boss, _ := cat.FindUnit(testutils.UnitBoss)
		s.mockService.EXPECT().
			GetDatasheet(gomock.Any(), &army.GetDatasheetInput{DatasheetID: testutils.UnitBoss}).
			Return(&army.GetDatasheetOutput{Datasheet: boss}, nil)

		rec := s.do(http.MethodGet, "/api/v1/catalogue/units/boss", "")

		s.Equal(http.StatusOK, rec.Code)
		var body wh40k.UnitDatasheet
		s.decode(rec, &body)
		s.Equal("Warboss", body.Name)
	})

	s.Run("list detachments", func() {
		s.mockService.EXPECT().
			ListDetachments(gomock.Any(), &army.ListDetachmentsInput{}).
			Return(&army.ListDetachmentsOutput{Detachments: cat.ListDetachments()}, nil)

		rec := s.do(http.MethodGet, "/api/v1/catalogue/detachments", "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("missing detachment", func() {
		s.mockService.EXPECT().
			GetDetachment(gomock.Any(), &army.GetDetachmentInput{DetachmentID: "nope"}).
			Return(nil, errors.NotFound("detachment nope not found"))

		rec := s.do(http.MethodGet, "/api/v1/catalogue/detachments/nope", "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *HandlerTestSuite) TestRouting() {
	s.Run("unknown route", func() {
		rec := s.do(http.MethodGet, "/api/v1/nowhere", "")

		s.Equal(http.StatusNotFound, rec.Code)
		var body errorBody
		s.decode(rec, &body)
		s.Equal("NOT_FOUND", body.Code)
	})

	s.Run("wrong method", func() {
		rec := s.do(http.MethodPost, "/api/v1/armies/army_1/export", "")

		s.Equal(http.StatusMethodNotAllowed, rec.Code)
		var body errorBody
		s.decode(rec, &body)
		s.Equal("METHOD_NOT_ALLOWED", body.Code)
	})

	s.Run("version", func() {
		rec := s.do(http.MethodGet, "/version", "")

		s.Equal(http.StatusOK, rec.Code)
		var body struct {
			Version string `json:"version"`
		}
		s.decode(rec, &body)
		s.NotEmpty(body.Version)
	})
}
