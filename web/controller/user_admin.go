package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ShashankRaghuram1509/learnify-spotify/database/model"
	"github.com/ShashankRaghuram1509/learnify-spotify/web/middleware"
	"github.com/ShashankRaghuram1509/learnify-spotify/web/service"
)

// UserAdminController serves the admin user management surface plus the
// authenticated /me profile endpoint.
type UserAdminController struct {
	userService service.UserService
}

func NewUserAdminController(g *gin.RouterGroup) *UserAdminController {
	a := &UserAdminController{}
	a.initRouter(g)
	return a
}

func (a *UserAdminController) initRouter(g *gin.RouterGroup) {
	admin := g.Group("/admin", middleware.AuthRequired(), middleware.RequireRole(model.RoleAdmin))
	admin.GET("/users", a.listUsers)
	admin.PATCH("/users/:id/roles", a.updateRoles)
	admin.PATCH("/users/:id/password", a.resetPassword)
	admin.DELETE("/users/:id", a.deleteUser)
	admin.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	me := g.Group("/me", middleware.AuthRequired())
	me.GET("", a.me)
}

func (a *UserAdminController) listUsers(c *gin.Context) {
	users, err := a.userService.GetUsers()
	if err != nil {
		jsonMsg(c, "get users", err)
		return
	}
	projections := make([]map[string]any, 0, len(users))
	for i := range users {
		projections = append(projections, users[i].Public())
	}
	c.JSON(http.StatusOK, projections)
}

type rolesForm struct {
	Roles model.RoleList `json:"roles" binding:"required"`
}

func (a *UserAdminController) updateRoles(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonMsg(c, "invalid user id", err)
		return
	}
	var form rolesForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonMsg(c, "roles are required", err)
		return
	}

	user, err := a.userService.UpdateRoles(id, form.Roles)
	if errors.Is(err, service.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	} else if err != nil {
		jsonMsg(c, "update roles", err)
		return
	}
	c.JSON(http.StatusOK, user.Public())
}

type passwordForm struct {
	Password string `json:"password" binding:"required"`
}

func (a *UserAdminController) resetPassword(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonMsg(c, "invalid user id", err)
		return
	}
	var form passwordForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonMsg(c, "password is required", err)
		return
	}
	jsonMsg(c, "reset password", a.userService.ResetPassword(id, form.Password))
}

func (a *UserAdminController) deleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonMsg(c, "invalid user id", err)
		return
	}
	err = a.userService.DeleteUser(id)
	if errors.Is(err, service.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	jsonMsg(c, "delete user", err)
}

func (a *UserAdminController) me(c *gin.Context) {
	user := middleware.GetUser(c)
	c.JSON(http.StatusOK, user.Public())
}
