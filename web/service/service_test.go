package service

import (
	"testing"

	"github.com/op/go-logging"

	"github.com/ShashankRaghuram1509/learnify-spotify/caching"
	"github.com/ShashankRaghuram1509/learnify-spotify/database"
	"github.com/ShashankRaghuram1509/learnify-spotify/logger"
)

func setup(t *testing.T) {
	t.Helper()
	logger.InitLogger(logging.DEBUG)
	dbPath := t.TempDir() + "/test.db"
	if err := database.InitDB(dbPath); err != nil {
		t.Fatal(err)
	}
	caching.Flush()
}

func teardown() {
	database.CloseDB()
}
