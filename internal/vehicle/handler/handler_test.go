package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	ownmodels "platerra/internal/ownership/models"
	"platerra/internal/platform/middleware"
	"platerra/internal/vehicle/models"
	id "platerra/pkg/domain"
	dErrors "platerra/pkg/domain-errors"
)

// stubService is a controllable Service double.
type stubService struct {
	result   ownmodels.ReconciliationResult
	vehicle  *models.Vehicle
	vehicles []*models.Vehicle
	err      error

	gotPlate string
}

func (s *stubService) Validate(_ context.Context, _ id.UserID, plate string) (ownmodels.ReconciliationResult, error) {
	s.gotPlate = plate
	return s.result, s.err
}

func (s *stubService) Register(_ context.Context, _ id.UserID, plate string) (*models.Vehicle, ownmodels.ReconciliationResult, error) {
	s.gotPlate = plate
	return s.vehicle, s.result, s.err
}

func (s *stubService) List(context.Context, id.UserID) ([]*models.Vehicle, error) {
	return s.vehicles, s.err
}

func (s *stubService) Get(context.Context, id.UserID, id.VehicleID) (*models.Vehicle, error) {
	return s.vehicle, s.err
}

func (s *stubService) Delete(context.Context, id.UserID, id.VehicleID) error {
	return s.err
}

type VehicleHandlerSuite struct {
	suite.Suite

	stub   *stubService
	router chi.Router
	userID id.UserID
}

func TestVehicleHandlerSuite(t *testing.T) {
	suite.Run(t, new(VehicleHandlerSuite))
}

func (s *VehicleHandlerSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.stub = &stubService{}
	h := New(s.stub, logger)

	s.router = chi.NewRouter()
	h.Register(s.router)
	s.userID = id.UserID(uuid.New())
}

func (s *VehicleHandlerSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req = req.WithContext(middleware.WithUserID(context.Background(), s.userID))
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *VehicleHandlerSuite) TestValidateReturnsVerdict() {
	s.stub.result = ownmodels.Invalid(ownmodels.ReasonVehicleNotFound)

	rec := s.do(http.MethodPost, "/vehicles/validate", `{"plate":"XYZ789"}`)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("XYZ789", s.stub.gotPlate)

	var result ownmodels.ReconciliationResult
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &result))
	s.Equal(ownmodels.VerdictInvalid, result.Verdict)
	s.Equal(ownmodels.ReasonVehicleNotFound, result.ReasonCode)
}

func (s *VehicleHandlerSuite) TestRegisterCreatedOnValidVerdict() {
	s.stub.result = ownmodels.Matched(&ownmodels.VehicleData{Brand: "Kia", TypeID: "car"})
	s.stub.vehicle = &models.Vehicle{
		ID:        id.NewVehicleID(),
		UserID:    s.userID,
		Plate:     "ABC123",
		Brand:     "Kia",
		TypeID:    "car",
		CreatedAt: time.Now(),
	}

	rec := s.do(http.MethodPost, "/vehicles", `{"plate":"abc123"}`)

	s.Require().Equal(http.StatusCreated, rec.Code)

	var resp struct {
		Verdict string          `json:"verdict"`
		Vehicle *models.Vehicle `json:"vehicle"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("valid", resp.Verdict)
	s.Require().NotNil(resp.Vehicle)
	s.Equal("ABC123", resp.Vehicle.Plate)
}

func (s *VehicleHandlerSuite) TestRegisterInvalidVerdictIsOK() {
	s.stub.result = ownmodels.Invalid(ownmodels.ReasonOwnerMismatch)

	rec := s.do(http.MethodPost, "/vehicles", `{"plate":"ABC123"}`)

	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Verdict string          `json:"verdict"`
		Reason  string          `json:"reason_code"`
		Vehicle *models.Vehicle `json:"vehicle"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("invalid", resp.Verdict)
	s.Equal("owner_mismatch", resp.Reason)
	s.Nil(resp.Vehicle)
}

func (s *VehicleHandlerSuite) TestRegisterConflict() {
	s.stub.err = dErrors.New(dErrors.CodeConflict, "vehicle already registered")

	rec := s.do(http.MethodPost, "/vehicles", `{"plate":"ABC123"}`)
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *VehicleHandlerSuite) TestRegisterRejectsMalformedBody() {
	rec := s.do(http.MethodPost, "/vehicles", `{"plate":`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *VehicleHandlerSuite) TestListVehicles() {
	s.stub.vehicles = []*models.Vehicle{
		{ID: id.NewVehicleID(), Plate: "AAA111"},
		{ID: id.NewVehicleID(), Plate: "BBB222"},
	}

	rec := s.do(http.MethodGet, "/vehicles", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp struct {
		Vehicles []*models.Vehicle `json:"vehicles"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Vehicles, 2)
}

func (s *VehicleHandlerSuite) TestGetRejectsBadID() {
	rec := s.do(http.MethodGet, "/vehicles/not-a-uuid", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *VehicleHandlerSuite) TestGetNotFound() {
	s.stub.err = dErrors.New(dErrors.CodeNotFound, "vehicle not found")

	rec := s.do(http.MethodGet, "/vehicles/"+uuid.NewString(), "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *VehicleHandlerSuite) TestDeleteNoContent() {
	rec := s.do(http.MethodDelete, "/vehicles/"+uuid.NewString(), "")
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *VehicleHandlerSuite) TestUnauthenticatedContextIsInternalError() {
	req := httptest.NewRequest(http.MethodGet, "/vehicles", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Equal(http.StatusInternalServerError, rec.Code)
}
