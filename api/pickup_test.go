package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wastezero/wastezero-api/api/mocks"
	"github.com/wastezero/wastezero-api/schema"
	"github.com/wastezero/wastezero-api/store"
)

func newPickupRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeAccountMiddleware())
	router.POST("/pickups", s.createPickup)
	router.PUT("/pickup/:pickupID/accept", s.acceptPickup)
	router.PUT("/pickup/:pickupID/complete", s.completePickup)
	router.PUT("/pickup/:pickupID/cancel", s.cancelPickup)
	return router
}

func TestAcceptPickup(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	w := mocks.NewMockWasteZeroCore(ctl)
	s := Server{store: w}

	volunteerID := uuid.New()
	pickupID := primitive.NewObjectID()

	w.EXPECT().GetAccount(gomock.Any()).Return(&schema.Account{
		ID:   volunteerID,
		Role: schema.RoleVolunteer,
	}, nil).Times(1)

	vid := volunteerID.String()
	w.EXPECT().AcceptPickup(gomock.Any(), pickupID.Hex()).Return(&schema.Pickup{
		ID:          pickupID,
		Status:      schema.PickupAccepted,
		VolunteerID: &vid,
	}, nil).Times(1)

	router := newPickupRouter(&s)

	req := httptest.NewRequest("PUT", "/pickup/"+pickupID.Hex()+"/accept", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code, "wrong status code")

	var jResp schema.Pickup
	err := json.Unmarshal(rec.Body.Bytes(), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, schema.PickupAccepted, jResp.Status, "wrong pickup status")
	assert.Equal(t, vid, *jResp.VolunteerID, "wrong volunteer id")
}

func TestAcceptPickupAlreadyTaken(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	w := mocks.NewMockWasteZeroCore(ctl)
	s := Server{store: w}

	pickupID := primitive.NewObjectID()

	w.EXPECT().GetAccount(gomock.Any()).Return(&schema.Account{
		ID:   uuid.New(),
		Role: schema.RoleVolunteer,
	}, nil).Times(1)

	w.EXPECT().AcceptPickup(gomock.Any(), pickupID.Hex()).Return(nil, store.ErrPickupTaken).Times(1)

	router := newPickupRouter(&s)

	req := httptest.NewRequest("PUT", "/pickup/"+pickupID.Hex()+"/accept", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal(rec.Body.Bytes(), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1201), jResp.Code, "wrong error code")
}

func TestAcceptPickupRequesterForbidden(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	w := mocks.NewMockWasteZeroCore(ctl)
	s := Server{store: w}

	w.EXPECT().GetAccount(gomock.Any()).Return(&schema.Account{
		ID:   uuid.New(),
		Role: schema.RoleRequester,
	}, nil).Times(1)

	router := newPickupRouter(&s)

	req := httptest.NewRequest("PUT", "/pickup/"+primitive.NewObjectID().Hex()+"/accept", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal(rec.Body.Bytes(), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1103), jResp.Code, "wrong error code")
}

func TestCreatePickup(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	w := mocks.NewMockWasteZeroCore(ctl)
	s := Server{store: w}

	requesterID := uuid.New()

	w.EXPECT().GetAccount(gomock.Any()).Return(&schema.Account{
		ID:   requesterID,
		Role: schema.RoleRequester,
	}, nil).Times(1)

	w.EXPECT().CreatePickup(gomock.Any(), gomock.Any()).Return(&schema.Pickup{
		ID:          primitive.NewObjectID(),
		Title:       "old sofa",
		RequesterID: requesterID.String(),
		WasteType:   schema.WasteOther,
		Status:      schema.PickupOpen,
	}, nil).Times(1)

	router := newPickupRouter(&s)

	body := `{
		"title": "old sofa",
		"waste_type": "Other",
		"estimated_quantity": "1 item",
		"address": "12 Main St",
		"preferred_date": "2026-09-15T00:00:00Z",
		"preferred_time": "morning"
	}`
	req := httptest.NewRequest("POST", "/pickups", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code, "wrong status code")

	var jResp schema.Pickup
	err := json.Unmarshal(rec.Body.Bytes(), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, schema.PickupOpen, jResp.Status, "wrong pickup status")
}

func TestCreatePickupUnknownWasteType(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	w := mocks.NewMockWasteZeroCore(ctl)
	s := Server{store: w}

	w.EXPECT().GetAccount(gomock.Any()).Return(&schema.Account{
		ID:   uuid.New(),
		Role: schema.RoleRequester,
	}, nil).Times(1)

	router := newPickupRouter(&s)

	body := `{
		"title": "mystery box",
		"waste_type": "Nuclear",
		"estimated_quantity": "1 item",
		"address": "12 Main St",
		"preferred_date": "2026-09-15T00:00:00Z",
		"preferred_time": "morning"
	}`
	req := httptest.NewRequest("POST", "/pickups", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal(rec.Body.Bytes(), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1010), jResp.Code, "wrong error code")
}

func TestCompletePickupNotAccepted(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	w := mocks.NewMockWasteZeroCore(ctl)
	s := Server{store: w}

	pickupID := primitive.NewObjectID()

	w.EXPECT().GetAccount(gomock.Any()).Return(&schema.Account{
		ID:   uuid.New(),
		Role: schema.RoleVolunteer,
	}, nil).Times(1)

	w.EXPECT().CompletePickup(gomock.Any(), pickupID.Hex()).Return(nil, store.ErrPickupNotAccepted).Times(1)

	router := newPickupRouter(&s)

	req := httptest.NewRequest("PUT", "/pickup/"+pickupID.Hex()+"/complete", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal(rec.Body.Bytes(), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1202), jResp.Code, "wrong error code")
}

func TestCancelPickupVolunteerForbidden(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	w := mocks.NewMockWasteZeroCore(ctl)
	s := Server{store: w}

	w.EXPECT().GetAccount(gomock.Any()).Return(&schema.Account{
		ID:   uuid.New(),
		Role: schema.RoleVolunteer,
	}, nil).Times(1)

	router := newPickupRouter(&s)

	req := httptest.NewRequest("PUT", "/pickup/"+primitive.NewObjectID().Hex()+"/cancel", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal(rec.Body.Bytes(), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1105), jResp.Code, "wrong error code")
}

func TestCancelPickupClosed(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	w := mocks.NewMockWasteZeroCore(ctl)
	s := Server{store: w}

	pickupID := primitive.NewObjectID()

	w.EXPECT().GetAccount(gomock.Any()).Return(&schema.Account{
		ID:   uuid.New(),
		Role: schema.RoleRequester,
	}, nil).Times(1)

	w.EXPECT().CancelPickup(gomock.Any(), pickupID.Hex()).Return(store.ErrPickupClosed).Times(1)

	router := newPickupRouter(&s)

	req := httptest.NewRequest("PUT", "/pickup/"+pickupID.Hex()+"/cancel", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal(rec.Body.Bytes(), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1203), jResp.Code, "wrong error code")
}

func TestSuspendedAccountRejected(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	w := mocks.NewMockWasteZeroCore(ctl)
	s := Server{store: w}

	w.EXPECT().GetAccount(gomock.Any()).Return(&schema.Account{
		ID:        uuid.New(),
		Role:      schema.RoleRequester,
		Suspended: true,
	}, nil).Times(1)

	router := newPickupRouter(&s)

	req := httptest.NewRequest("PUT", "/pickup/"+primitive.NewObjectID().Hex()+"/cancel", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal(rec.Body.Bytes(), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1004), jResp.Code, "wrong error code")
}
