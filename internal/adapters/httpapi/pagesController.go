package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PagesController static pages and the fallback 404
type PagesController struct{}

func NewPagesController() *PagesController { return &PagesController{} }

func (ctl *PagesController) About(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title": "About",
		"text":  "Postboard is a small blog platform: categories, locations, delayed publications and comments.",
	})
}

func (ctl *PagesController) Rules(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title": "Rules",
		"text":  "Be polite. You can only edit and delete your own posts and comments.",
	})
}

func (ctl *PagesController) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
}
