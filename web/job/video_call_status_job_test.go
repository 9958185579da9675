package job

import (
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/ShashankRaghuram1509/learnify-spotify/database"
	"github.com/ShashankRaghuram1509/learnify-spotify/database/model"
	"github.com/ShashankRaghuram1509/learnify-spotify/logger"
	"github.com/ShashankRaghuram1509/learnify-spotify/web/service"
)

func TestVideoCallStatusJob(t *testing.T) {
	logger.InitLogger(logging.DEBUG)
	if err := database.InitDB(t.TempDir() + "/test.db"); err != nil {
		t.Fatal(err)
	}
	defer database.CloseDB()

	db := database.GetDB()
	calls := []model.VideoCallSchedule{
		{UserId: 1, CallId: "call_past", Date: "2020-01-01", Time: "10:00 AM", Status: service.CallStatusScheduled},
		{UserId: 1, CallId: "call_future", Date: "2099-01-01", Time: "10:00 AM", Status: service.CallStatusScheduled},
		{UserId: 1, CallId: "call_done", Date: "2020-01-02", Time: "10:00 AM", Status: service.CallStatusCompleted},
	}
	for i := range calls {
		assert.NoError(t, db.Create(&calls[i]).Error)
	}

	NewVideoCallStatusJob().Run()

	var byId = func(callId string) model.VideoCallSchedule {
		var call model.VideoCallSchedule
		assert.NoError(t, db.Where("call_id = ?", callId).First(&call).Error)
		return call
	}

	assert.Equal(t, service.CallStatusCompleted, byId("call_past").Status)
	assert.Equal(t, service.CallStatusScheduled, byId("call_future").Status)
	assert.Equal(t, service.CallStatusCompleted, byId("call_done").Status)
}
