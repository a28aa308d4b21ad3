package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/linesmerrill/firearm-tracker-api/api/handlers"
	"github.com/linesmerrill/firearm-tracker-api/api/scheduler"
	mocksdb "github.com/linesmerrill/firearm-tracker-api/databases/mocks"
	"github.com/linesmerrill/firearm-tracker-api/models"
	"github.com/linesmerrill/firearm-tracker-api/notify"
)

// newIdleScheduler builds a scheduler whose collaborators accept any
// schedule or cancel traffic, for handlers that touch reminders as a side
// effect.
func newIdleScheduler() *scheduler.Scheduler {
	fSched := &mocksdb.ScheduleDatabase{}
	aSched := &mocksdb.ScheduleDatabase{}
	counter := &mocksdb.CounterDatabase{}
	settings := &mocksdb.SettingsDatabase{}

	fSched.On("FindByRecordID", mock.Anything, mock.Anything).Return(nil, errors.New("mongo: no documents in result"))
	aSched.On("FindByRecordID", mock.Anything, mock.Anything).Return(nil, errors.New("mongo: no documents in result"))
	fSched.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	aSched.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	settings.On("IsEnabled", mock.Anything, mock.Anything).Return(true, nil)
	counter.On("NextReminderIDs", mock.Anything, mock.Anything).Return(
		[]int{100001, 100002, 100003, 100004, 100005, 100006, 100007, 100008, 100009}, nil)

	return scheduler.NewScheduler(
		&mocksdb.FirearmDatabase{}, &mocksdb.ApplicationDatabase{},
		fSched, aSched, counter, settings, notify.Noop{}, nil,
	)
}

func TestFirearm_FirearmByIDHandlerBadID(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/firearm/1234", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"firearm_id": "1234"})

	f := handlers.Firearm{DB: &mocksdb.FirearmDatabase{}}

	rr := httptest.NewRecorder()
	http.HandlerFunc(f.FirearmByIDHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	expected := fmt.Sprintf(`{"response": "failed to get objectID from Hex, %v"}`, primitive.ErrInvalidHex)
	assert.Equal(t, expected, rr.Body.String())
}

func TestFirearm_FirearmByIDHandler(t *testing.T) {
	id := primitive.NewObjectID()
	firearm := &models.Firearm{
		ID: id,
		Details: models.FirearmDetails{
			Title:   "9mm pistol",
			Section: "section13",
		},
	}

	db := &mocksdb.FirearmDatabase{}
	db.On("FindOne", mock.Anything, mock.Anything).Return(firearm, nil)

	req, err := http.NewRequest("GET", "/api/v1/firearm/"+id.Hex(), nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"firearm_id": id.Hex()})

	f := handlers.Firearm{DB: db}
	rr := httptest.NewRecorder()
	http.HandlerFunc(f.FirearmByIDHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "9mm pistol")
}

func TestFirearm_FirearmListHandlerEmpty(t *testing.T) {
	db := &mocksdb.FirearmDatabase{}
	db.On("Find", mock.Anything, mock.Anything).Return(nil, nil)

	req, err := http.NewRequest("GET", "/api/v1/firearm", nil)
	if err != nil {
		t.Fatal(err)
	}

	f := handlers.Firearm{DB: db}
	rr := httptest.NewRecorder()
	http.HandlerFunc(f.FirearmListHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", rr.Body.String())
}

func TestFirearm_FirearmCreateHandler(t *testing.T) {
	db := &mocksdb.FirearmDatabase{}
	db.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(0), nil)
	db.On("InsertOne", mock.Anything, mock.Anything).Return("inserted-id", nil)

	body, _ := json.Marshal(models.FirearmDetails{
		Title:     "9mm pistol",
		Section:   "section13",
		IssueDate: primitive.NewDateTimeFromTime(time.Now().AddDate(-1, 0, 0)),
	})

	req, err := http.NewRequest("POST", "/api/v1/firearm", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}

	f := handlers.Firearm{DB: db, SettingsDB: &mocksdb.SettingsDatabase{}, Scheduler: newIdleScheduler()}
	rr := httptest.NewRecorder()
	http.HandlerFunc(f.FirearmCreateHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var created models.Firearm
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	// section 13 licences run five years from issue
	issued := created.Details.IssueDate.Time()
	assert.Equal(t, issued.AddDate(5, 0, 0), created.Details.ExpiryDate.Time().UTC())
	db.AssertCalled(t, "InsertOne", mock.Anything, mock.Anything)
}

func TestFirearm_FirearmCreateHandlerDuplicate(t *testing.T) {
	db := &mocksdb.FirearmDatabase{}
	db.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(1), nil)

	body, _ := json.Marshal(models.FirearmDetails{
		Title:        "9mm pistol",
		Section:      "section13",
		SerialNumber: "ABC123",
		IssueDate:    primitive.NewDateTimeFromTime(time.Now().AddDate(-1, 0, 0)),
	})

	req, err := http.NewRequest("POST", "/api/v1/firearm", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}

	f := handlers.Firearm{DB: db, SettingsDB: &mocksdb.SettingsDatabase{}, Scheduler: newIdleScheduler()}
	rr := httptest.NewRecorder()
	http.HandlerFunc(f.FirearmCreateHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	db.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
}

func TestFirearm_FirearmCreateHandlerUnknownSection(t *testing.T) {
	body, _ := json.Marshal(models.FirearmDetails{
		Title:     "mystery firearm",
		Section:   "section99",
		IssueDate: primitive.NewDateTimeFromTime(time.Now().AddDate(-1, 0, 0)),
	})

	req, err := http.NewRequest("POST", "/api/v1/firearm", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}

	f := handlers.Firearm{DB: &mocksdb.FirearmDatabase{}, Scheduler: newIdleScheduler()}
	rr := httptest.NewRecorder()
	http.HandlerFunc(f.FirearmCreateHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestFirearm_FirearmCreateHandlerFutureIssueDate(t *testing.T) {
	body, _ := json.Marshal(models.FirearmDetails{
		Title:     "time traveller",
		Section:   "section13",
		IssueDate: primitive.NewDateTimeFromTime(time.Now().AddDate(0, 0, 7)),
	})

	req, err := http.NewRequest("POST", "/api/v1/firearm", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}

	f := handlers.Firearm{DB: &mocksdb.FirearmDatabase{}, Scheduler: newIdleScheduler()}
	rr := httptest.NewRecorder()
	http.HandlerFunc(f.FirearmCreateHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestFirearm_FirearmDeleteHandler(t *testing.T) {
	id := primitive.NewObjectID()

	db := &mocksdb.FirearmDatabase{}
	db.On("DeleteOne", mock.Anything, mock.Anything).Return(nil)

	req, err := http.NewRequest("DELETE", "/api/v1/firearm/"+id.Hex(), nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"firearm_id": id.Hex()})

	f := handlers.Firearm{DB: db, Scheduler: newIdleScheduler()}
	rr := httptest.NewRecorder()
	http.HandlerFunc(f.FirearmDeleteHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"deleted": true}`, rr.Body.String())
}

func TestFirearm_NotificationToggleHandlerDisable(t *testing.T) {
	id := primitive.NewObjectID()
	firearm := &models.Firearm{
		ID: id,
		Details: models.FirearmDetails{
			Title:   "muted rifle",
			Section: "section15",
		},
	}

	db := &mocksdb.FirearmDatabase{}
	db.On("FindOne", mock.Anything, mock.Anything).Return(firearm, nil)

	settings := &mocksdb.SettingsDatabase{}
	settings.On("SetEnabled", mock.Anything, id.Hex(), false).Return(nil)

	req, err := http.NewRequest("PUT", "/api/v1/firearm/"+id.Hex()+"/notifications", bytes.NewReader([]byte(`{"enabled": false}`)))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"firearm_id": id.Hex()})

	f := handlers.Firearm{DB: db, SettingsDB: settings, Scheduler: newIdleScheduler()}
	rr := httptest.NewRecorder()
	http.HandlerFunc(f.NotificationToggleHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	settings.AssertCalled(t, "SetEnabled", mock.Anything, id.Hex(), false)

	var resp models.NotificationSetting
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.Enabled)
}
