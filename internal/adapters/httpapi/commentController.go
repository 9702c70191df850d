package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	commentPort "postboard/internal/ports/comment"
	postPort "postboard/internal/ports/post"
)

type CommentController struct{ cc CommentUseCase }

func NewCommentController(cc CommentUseCase) *CommentController {
	return &CommentController{cc: cc}
}

type commentForm struct {
	Text string `json:"text" binding:"required,max=4096"`
}

// AddRedirect non-POST requests on the add-comment route have no effect.
func (ctl *CommentController) AddRedirect(c *gin.Context) {
	redirectToDetail(c, c.Param("post_id"))
}

func (ctl *CommentController) Add(c *gin.Context) {
	var req commentForm
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	res, err := ctl.cc.AddComment(c.Request.Context(), actorID(c), c.Param("post_id"), req.Text)
	if errors.Is(err, postPort.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create comment"})
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *CommentController) EditForm(c *gin.Context) {
	res, err := ctl.cc.GetComment(c.Request.Context(), actorID(c), c.Param("post_id"), c.Param("comment_id"))
	if ctl.handleError(c, err) {
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *CommentController) Edit(c *gin.Context) {
	var req commentForm
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	res, err := ctl.cc.UpdateComment(c.Request.Context(), actorID(c), c.Param("post_id"), c.Param("comment_id"), req.Text)
	if ctl.handleError(c, err) {
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *CommentController) Delete(c *gin.Context) {
	err := ctl.cc.DeleteComment(c.Request.Context(), actorID(c), c.Param("post_id"), c.Param("comment_id"))
	if ctl.handleError(c, err) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
}

// handleError maps the shared comment error cases, reports whether the
// request is finished. Ownership failures redirect like post edits do.
func (ctl *CommentController) handleError(c *gin.Context, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, commentPort.ErrNotOwner):
		redirectToDetail(c, c.Param("post_id"))
	case errors.Is(err, postPort.ErrNotFound), errors.Is(err, commentPort.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not process comment"})
	}
	return true
}
