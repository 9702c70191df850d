package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	userPort "postboard/internal/ports/user"
)

type UserController struct{ uc UserUseCase }

func NewUserController(uc UserUseCase) *UserController { return &UserController{uc: uc} }

func (ctl *UserController) RegisterUser(c *gin.Context) {
	var req struct {
		FirstName string `json:"first_name" binding:"omitempty,max=150"`
		LastName  string `json:"last_name" binding:"omitempty,max=150"`
		Username  string `json:"username" binding:"required,max=150"`
		Email     string `json:"email" binding:"omitempty,email"`
		Password  string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	u, err := ctl.uc.RegisterUser(c.Request.Context(), req.FirstName, req.LastName, req.Username, req.Email, req.Password)
	if errors.Is(err, userPort.ErrTaken) {
		c.JSON(http.StatusConflict, gin.H{"error": "username or email already taken"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not register"})
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (ctl *UserController) LoginUser(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	res, err := ctl.uc.LoginUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// EditProfileForm current values for the profile form
func (ctl *UserController) EditProfileForm(c *gin.Context) {
	u, err := ctl.uc.GetProfile(c.Request.Context(), actorID(c))
	if errors.Is(err, userPort.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load profile"})
		return
	}
	c.JSON(http.StatusOK, u)
}

func (ctl *UserController) EditProfile(c *gin.Context) {
	var req struct {
		FirstName string `json:"first_name" binding:"omitempty,max=150"`
		LastName  string `json:"last_name" binding:"omitempty,max=150"`
		Username  string `json:"username" binding:"required,max=150"`
		Email     string `json:"email" binding:"omitempty,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	u, err := ctl.uc.UpdateProfile(c.Request.Context(), actorID(c), req.FirstName, req.LastName, req.Username, req.Email)
	if errors.Is(err, userPort.ErrTaken) {
		c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update profile"})
		return
	}
	c.JSON(http.StatusOK, u)
}
