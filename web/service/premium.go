package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ShashankRaghuram1509/learnify-spotify/database"
	"github.com/ShashankRaghuram1509/learnify-spotify/database/model"
	"github.com/ShashankRaghuram1509/learnify-spotify/logger"
	"github.com/ShashankRaghuram1509/learnify-spotify/util/common"
)

const (
	CallStatusScheduled = "scheduled"
	CallStatusCompleted = "completed"

	callDateLayout = "2006-01-02"
	callTimeLayout = "03:04 PM"
)

// PremiumService handles the premium tier: the simulated subscription
// purchase, video call scheduling and the canned assistant.
type PremiumService struct {
	userService UserService
}

func digitsOnly(value string) bool {
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(value) > 0
}

// Subscribe upgrades the user to premium after a simulated card check.
// No payment processor is involved; the card never leaves this function
// and is never logged or stored.
func (s *PremiumService) Subscribe(user *model.User, cardHolder, cardNumber, expiryDate, cvv string) (*model.User, string, error) {
	cardNumber = strings.ReplaceAll(cardNumber, " ", "")
	if len(cardNumber) != 16 || !digitsOnly(cardNumber) {
		return nil, "", common.NewError("invalid card number")
	}
	if len(cvv) < 3 || len(cvv) > 4 || !digitsOnly(cvv) {
		return nil, "", common.NewError("invalid cvv")
	}

	upgraded, err := s.userService.UpgradeToPremium(user.Id)
	if err != nil {
		return nil, "", err
	}
	subscriptionId := "sub_" + uuid.NewString()[:8]
	logger.Infof("user %s upgraded to premium (%s)", upgraded.Email, subscriptionId)
	return upgraded, subscriptionId, nil
}

// ScheduleVideoCall books a mentoring call for a premium user.
func (s *PremiumService) ScheduleVideoCall(user *model.User, date, timeOfDay string) (*model.VideoCallSchedule, error) {
	if !user.Premium {
		return nil, ErrPremiumRequired
	}

	parsedDate, err := time.Parse(callDateLayout, date)
	if err != nil {
		return nil, common.NewErrorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	parsedTime, err := time.Parse(callTimeLayout, timeOfDay)
	if err != nil {
		return nil, common.NewErrorf("invalid time %q, expected hh:mm AM/PM", timeOfDay)
	}

	schedule := &model.VideoCallSchedule{
		UserId: user.Id,
		CallId: "call_" + uuid.NewString()[:8],
		Date:   parsedDate.Format(callDateLayout),
		Time:   parsedTime.Format(callTimeLayout),
		Status: CallStatusScheduled,
	}
	if err := database.GetDB().Create(schedule).Error; err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *PremiumService) GetScheduledCalls(user *model.User) ([]model.VideoCallSchedule, error) {
	var calls []model.VideoCallSchedule
	err := database.GetDB().
		Where("user_id = ?", user.Id).
		Order("date, time").
		Find(&calls).
		Error
	if err != nil {
		return nil, err
	}
	return calls, nil
}

// AssistantReply returns a canned answer. There is no model behind this
// endpoint.
func (s *PremiumService) AssistantReply(message string) string {
	lowered := strings.ToLower(message)
	switch {
	case strings.Contains(lowered, "javascript"):
		return "JavaScript is a programming language that is one of the core technologies of the World Wide Web. It's used to create interactive elements on web pages."
	case strings.Contains(lowered, "react"):
		return "React is a free and open-source front-end JavaScript library for building user interfaces based on UI components. It's maintained by Meta and a community of individual developers and companies."
	case strings.Contains(lowered, "course"):
		return "Your courses are progressing well. Would you like me to recommend some additional resources to supplement your learning?"
	}
	return "I can help answer that! Based on your courses, here's what you need to know about this topic..."
}
