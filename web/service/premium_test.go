package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscribe(t *testing.T) {
	setup(t)
	defer teardown()

	premiumService := PremiumService{}
	user := seededUser(t, "user@learnify.com")

	upgraded, subscriptionId, err := premiumService.Subscribe(user, "Test User", "4111 1111 1111 1111", "12/27", "123")
	assert.NoError(t, err)
	assert.True(t, upgraded.Premium)
	assert.True(t, strings.HasPrefix(subscriptionId, "sub_"))

	// The upgrade is persisted.
	fresh := seededUser(t, "user@learnify.com")
	assert.True(t, fresh.Premium)
}

func TestSubscribeRejectsBadCard(t *testing.T) {
	setup(t)
	defer teardown()

	premiumService := PremiumService{}
	user := seededUser(t, "user@learnify.com")

	_, _, err := premiumService.Subscribe(user, "Test User", "1234", "12/27", "123")
	assert.Error(t, err)

	_, _, err = premiumService.Subscribe(user, "Test User", "4111111111111111", "12/27", "12")
	assert.Error(t, err)

	_, _, err = premiumService.Subscribe(user, "Test User", "4111-1111-1111-1111", "12/27", "123")
	assert.Error(t, err)

	fresh := seededUser(t, "user@learnify.com")
	assert.False(t, fresh.Premium)
}

func TestScheduleVideoCall(t *testing.T) {
	setup(t)
	defer teardown()

	premiumService := PremiumService{}
	admin := seededUser(t, "admin@learnify.com")
	user := seededUser(t, "user@learnify.com")

	_, err := premiumService.ScheduleVideoCall(user, "2026-09-15", "10:30 AM")
	assert.ErrorIs(t, err, ErrPremiumRequired)

	call, err := premiumService.ScheduleVideoCall(admin, "2026-09-15", "10:30 AM")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(call.CallId, "call_"))
	assert.Equal(t, CallStatusScheduled, call.Status)
	assert.Equal(t, "2026-09-15", call.Date)

	_, err = premiumService.ScheduleVideoCall(admin, "15/09/2026", "10:30 AM")
	assert.Error(t, err)
	_, err = premiumService.ScheduleVideoCall(admin, "2026-09-15", "25:00")
	assert.Error(t, err)

	calls, err := premiumService.GetScheduledCalls(admin)
	assert.NoError(t, err)
	assert.Len(t, calls, 1)
}

func TestAssistantReply(t *testing.T) {
	premiumService := PremiumService{}

	assert.Contains(t, premiumService.AssistantReply("what is JavaScript?"), "JavaScript")
	assert.Contains(t, premiumService.AssistantReply("tell me about React"), "React")
	assert.Contains(t, premiumService.AssistantReply("how is my course going"), "courses")
	assert.NotEmpty(t, premiumService.AssistantReply("unrelated question"))
}
