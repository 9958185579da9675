package job

import (
	"time"

	"github.com/ShashankRaghuram1509/learnify-spotify/database"
	"github.com/ShashankRaghuram1509/learnify-spotify/database/model"
	"github.com/ShashankRaghuram1509/learnify-spotify/logger"
	"github.com/ShashankRaghuram1509/learnify-spotify/web/service"
)

// VideoCallStatusJob marks scheduled video calls whose date has passed as
// completed. Dates are stored as YYYY-MM-DD so lexical comparison works.
type VideoCallStatusJob struct{}

func NewVideoCallStatusJob() *VideoCallStatusJob {
	return new(VideoCallStatusJob)
}

// Here Run is an interface method of the Job interface
func (j *VideoCallStatusJob) Run() {
	today := time.Now().Format("2006-01-02")
	result := database.GetDB().Model(model.VideoCallSchedule{}).
		Where("status = ? AND date < ?", service.CallStatusScheduled, today).
		Update("status", service.CallStatusCompleted)
	if result.Error != nil {
		logger.Warning("video call status job err:", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		logger.Debugf("marked %d video calls completed", result.RowsAffected)
	}
}
