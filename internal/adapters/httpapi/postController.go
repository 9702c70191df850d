package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"postboard/internal/adapters/httpapi/middleware"
	categoryPort "postboard/internal/ports/category"
	postPort "postboard/internal/ports/post"
	userPort "postboard/internal/ports/user"
)

type PostController struct{ pc PostUseCase }

func NewPostController(pc PostUseCase) *PostController { return &PostController{pc: pc} }

// postForm shared request body for create and edit
type postForm struct {
	Title      string `json:"title" binding:"required,max=256"`
	Text       string `json:"text" binding:"required"`
	PubDate    string `json:"pub_date" binding:"omitempty"`
	Image      string `json:"image" binding:"omitempty,max=512"`
	CategoryID string `json:"category_id" binding:"omitempty,uuid4"`
	LocationID string `json:"location_id" binding:"omitempty,uuid4"`
}

func (f postForm) input(c *gin.Context) (postPort.CreateInput, bool) {
	in := postPort.CreateInput{
		Title:      f.Title,
		Text:       f.Text,
		Image:      f.Image,
		CategoryID: f.CategoryID,
		LocationID: f.LocationID,
	}
	if f.PubDate != "" {
		t, err := time.Parse(time.RFC3339, f.PubDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pub_date, want RFC3339"})
			return in, false
		}
		in.PubDate = &t
	}
	return in, true
}

func actorID(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}

func redirectToDetail(c *gin.Context, postID string) {
	c.Redirect(http.StatusFound, "/posts/"+postID+"/")
}

func (ctl *PostController) Home(c *gin.Context) {
	res, err := ctl.pc.ListHome(c.Request.Context(), actorID(c), pageParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load feed"})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) Detail(c *gin.Context) {
	res, err := ctl.pc.GetPost(c.Request.Context(), c.Param("post_id"), actorID(c))
	if errors.Is(err, postPort.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load post"})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) CategoryFeed(c *gin.Context) {
	cat, res, err := ctl.pc.ListByCategory(c.Request.Context(), c.Param("slug"), actorID(c), pageParam(c))
	if errors.Is(err, categoryPort.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load feed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": cat, "page": res})
}

func (ctl *PostController) ProfileFeed(c *gin.Context) {
	profile, res, err := ctl.pc.ListByProfile(c.Request.Context(), c.Param("username"), actorID(c), pageParam(c))
	if errors.Is(err, userPort.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load feed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile, "page": res})
}

// CreateForm form defaults for a new post
func (ctl *PostController) CreateForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"pub_date": time.Now().Format(time.RFC3339)})
}

func (ctl *PostController) Create(c *gin.Context) {
	var req postForm
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	in, ok := req.input(c)
	if !ok {
		return
	}

	res, err := ctl.pc.CreatePost(c.Request.Context(), actorID(c), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create post"})
		return
	}
	c.JSON(http.StatusCreated, res)
}

// EditForm returns the post for the edit form. Someone else's post sends the
// caller back to the detail view, same as a failed edit. The lookup does not
// count as a view.
func (ctl *PostController) EditForm(c *gin.Context) {
	postID := c.Param("post_id")
	res, err := ctl.pc.GetPostForEdit(c.Request.Context(), actorID(c), postID)
	if errors.Is(err, postPort.ErrNotOwner) {
		redirectToDetail(c, postID)
		return
	}
	if errors.Is(err, postPort.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load post"})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) Edit(c *gin.Context) {
	postID := c.Param("post_id")

	var req postForm
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	in, ok := req.input(c)
	if !ok {
		return
	}

	res, err := ctl.pc.UpdatePost(c.Request.Context(), actorID(c), postID, in)
	if errors.Is(err, postPort.ErrNotOwner) {
		// Deliberately indistinguishable from success on the wire.
		redirectToDetail(c, postID)
		return
	}
	if errors.Is(err, postPort.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update post"})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) Delete(c *gin.Context) {
	postID := c.Param("post_id")

	err := ctl.pc.DeletePost(c.Request.Context(), actorID(c), postID)
	if errors.Is(err, postPort.ErrNotOwner) {
		redirectToDetail(c, postID)
		return
	}
	if errors.Is(err, postPort.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}
