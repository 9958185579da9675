package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShashankRaghuram1509/learnify-spotify/web/middleware"
	"github.com/ShashankRaghuram1509/learnify-spotify/web/service"
)

// PremiumController serves the premium tier: subscription purchase, the
// assistant and video call scheduling. Every route requires a login.
type PremiumController struct {
	premiumService service.PremiumService
}

func NewPremiumController(g *gin.RouterGroup) *PremiumController {
	a := &PremiumController{}
	a.initRouter(g)
	return a
}

func (a *PremiumController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/premium", middleware.AuthRequired())

	g.POST("/subscribe", a.subscribe)
	g.POST("/ai-assistant", a.askAssistant)
	g.POST("/schedule-call", a.scheduleCall)
	g.GET("/scheduled-calls", a.getScheduledCalls)
}

type subscribeForm struct {
	CardHolder string `json:"cardHolder"`
	CardNumber string `json:"cardNumber" binding:"required"`
	ExpiryDate string `json:"expiryDate"`
	Cvv        string `json:"cvv" binding:"required"`
}

func (a *PremiumController) subscribe(c *gin.Context) {
	user := middleware.GetUser(c)

	var form subscribeForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "card number and cvv are required"})
		return
	}

	upgraded, subscriptionId, err := a.premiumService.Subscribe(user, form.CardHolder, form.CardNumber, form.ExpiryDate, form.Cvv)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        "Subscription activated",
		"subscriptionId": subscriptionId,
		"status":         "active",
		"user":           upgraded.Public(),
	})
}

type assistantForm struct {
	Message string `json:"message" binding:"required"`
}

func (a *PremiumController) askAssistant(c *gin.Context) {
	var form assistantForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "message is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    a.premiumService.AssistantReply(form.Message),
		"confidence": 0.95,
	})
}

type scheduleCallForm struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

func (a *PremiumController) scheduleCall(c *gin.Context) {
	user := middleware.GetUser(c)

	var form scheduleCallForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "date and time are required"})
		return
	}

	schedule, err := a.premiumService.ScheduleVideoCall(user, form.Date, form.Time)
	if errors.Is(err, service.ErrPremiumRequired) {
		c.JSON(http.StatusForbidden, gin.H{
			"success":         false,
			"message":         "Premium subscription required to schedule video calls",
			"requiresPremium": true,
		})
		return
	} else if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Video call scheduled",
		"call":    schedule,
	})
}

func (a *PremiumController) getScheduledCalls(c *gin.Context) {
	user := middleware.GetUser(c)

	calls, err := a.premiumService.GetScheduledCalls(user)
	if err != nil {
		jsonMsg(c, "get scheduled calls", err)
		return
	}
	c.JSON(http.StatusOK, calls)
}
