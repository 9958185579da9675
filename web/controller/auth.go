package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShashankRaghuram1509/learnify-spotify/logger"
	"github.com/ShashankRaghuram1509/learnify-spotify/web/service"
)

// AuthController serves signup and login. Both respond with a fresh token
// and the public projection of the user.
type AuthController struct {
	authService service.AuthService
}

func NewAuthController(g *gin.RouterGroup) *AuthController {
	a := &AuthController{}
	a.initRouter(g)
	return a
}

func (a *AuthController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/auth")

	g.POST("/signup", a.signup)
	g.POST("/login", a.login)
}

type signupForm struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginForm struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (a *AuthController) signup(c *gin.Context) {
	var form signupForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	token, user, err := a.authService.Signup(form.Name, form.Email, form.Password)
	if errors.Is(err, service.ErrEmailTaken) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already in use"})
		return
	} else if err != nil {
		logger.Warning("signup failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	logger.Infof("new user %s registered from %s", user.Email, getRemoteIp(c))
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user.Public(),
	})
}

func (a *AuthController) login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	token, user, err := a.authService.Login(form.Email, form.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		logger.Infof("failed login for %q from %s", form.Email, getRemoteIp(c))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
		return
	} else if err != nil {
		logger.Warning("login failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user.Public(),
	})
}
