package job

import (
	"github.com/ShashankRaghuram1509/learnify-spotify/database"
	"github.com/ShashankRaghuram1509/learnify-spotify/logger"
)

// CheckpointJob folds the sqlite WAL back into the main database file so
// the WAL does not grow without bound.
type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

// Here Run is an interface method of the Job interface
func (j *CheckpointJob) Run() {
	if err := database.Checkpoint(); err != nil {
		logger.Warning("checkpoint job err:", err)
	}
}
