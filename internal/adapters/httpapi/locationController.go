package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	locationPort "postboard/internal/ports/location"
	userPort "postboard/internal/ports/user"
)

type LocationController struct{ lc LocationUseCase }

func NewLocationController(lc LocationUseCase) *LocationController {
	return &LocationController{lc: lc}
}

type locationForm struct {
	Name        string `json:"name" binding:"required,max=256"`
	IsPublished bool   `json:"is_published"`
}

func (ctl *LocationController) Create(c *gin.Context) {
	var req locationForm
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	res, err := ctl.lc.CreateLocation(c.Request.Context(), actorID(c),
		locationPort.Input{Name: req.Name, IsPublished: req.IsPublished})
	if ctl.handleError(c, err) {
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *LocationController) Update(c *gin.Context) {
	var req locationForm
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	res, err := ctl.lc.UpdateLocation(c.Request.Context(), actorID(c), c.Param("location_id"),
		locationPort.Input{Name: req.Name, IsPublished: req.IsPublished})
	if ctl.handleError(c, err) {
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *LocationController) Delete(c *gin.Context) {
	err := ctl.lc.DeleteLocation(c.Request.Context(), actorID(c), c.Param("location_id"))
	if ctl.handleError(c, err) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "location deleted"})
}

func (ctl *LocationController) handleError(c *gin.Context, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, userPort.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "admin only"})
	case errors.Is(err, locationPort.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not process location"})
	}
	return true
}
