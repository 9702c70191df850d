package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	categoryPort "postboard/internal/ports/category"
	userPort "postboard/internal/ports/user"
)

type CategoryController struct{ cc CategoryUseCase }

func NewCategoryController(cc CategoryUseCase) *CategoryController {
	return &CategoryController{cc: cc}
}

type categoryForm struct {
	Title       string `json:"title" binding:"required,max=256"`
	Description string `json:"description" binding:"required"`
	Slug        string `json:"slug" binding:"required,max=64"`
	IsPublished bool   `json:"is_published"`
}

func (f categoryForm) input() categoryPort.Input {
	return categoryPort.Input{
		Title:       f.Title,
		Description: f.Description,
		Slug:        f.Slug,
		IsPublished: f.IsPublished,
	}
}

func (ctl *CategoryController) Create(c *gin.Context) {
	var req categoryForm
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	res, err := ctl.cc.CreateCategory(c.Request.Context(), actorID(c), req.input())
	if ctl.handleError(c, err) {
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *CategoryController) Update(c *gin.Context) {
	var req categoryForm
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	res, err := ctl.cc.UpdateCategory(c.Request.Context(), actorID(c), c.Param("slug"), req.input())
	if ctl.handleError(c, err) {
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *CategoryController) Delete(c *gin.Context) {
	err := ctl.cc.DeleteCategory(c.Request.Context(), actorID(c), c.Param("slug"))
	if ctl.handleError(c, err) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}

func (ctl *CategoryController) handleError(c *gin.Context, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, userPort.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "admin only"})
	case errors.Is(err, categoryPort.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not process category"})
	}
	return true
}
