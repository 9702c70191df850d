package httpapi

import (
	"context"

	"github.com/gin-gonic/gin"

	"postboard/internal/adapters/httpapi/middleware"
	categoryPort "postboard/internal/ports/category"
	commentPort "postboard/internal/ports/comment"
	locationPort "postboard/internal/ports/location"
	postPort "postboard/internal/ports/post"
	userPort "postboard/internal/ports/user"
)

// UserUseCase inbound port for accounts and profiles
type UserUseCase interface {
	RegisterUser(ctx context.Context, firstName, lastName, username, email, password string) (*userPort.UserDTO, error)
	LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error)
	GetProfile(ctx context.Context, userID string) (*userPort.UserDTO, error)
	UpdateProfile(ctx context.Context, userID, firstName, lastName, username, email string) (*userPort.UserDTO, error)
}

// PostUseCase inbound port for feeds and post mutations
type PostUseCase interface {
	ListHome(ctx context.Context, actorID string, page int) (*postPort.PageDTO, error)
	ListByCategory(ctx context.Context, slug, actorID string, page int) (*categoryPort.CategoryDTO, *postPort.PageDTO, error)
	ListByProfile(ctx context.Context, username, actorID string, page int) (*userPort.UserDTO, *postPort.PageDTO, error)
	GetPost(ctx context.Context, postID, actorID string) (*postPort.DetailDTO, error)
	GetPostForEdit(ctx context.Context, actorID, postID string) (*postPort.PostDTO, error)
	CreatePost(ctx context.Context, actorID string, in postPort.CreateInput) (*postPort.PostDTO, error)
	UpdatePost(ctx context.Context, actorID, postID string, in postPort.CreateInput) (*postPort.PostDTO, error)
	DeletePost(ctx context.Context, actorID, postID string) error
}

// CommentUseCase inbound port for comment mutations
type CommentUseCase interface {
	AddComment(ctx context.Context, actorID, postID, text string) (*commentPort.CommentDTO, error)
	GetComment(ctx context.Context, actorID, postID, commentID string) (*commentPort.CommentDTO, error)
	UpdateComment(ctx context.Context, actorID, postID, commentID, text string) (*commentPort.CommentDTO, error)
	DeleteComment(ctx context.Context, actorID, postID, commentID string) error
}

// CategoryUseCase inbound port for category administration
type CategoryUseCase interface {
	CreateCategory(ctx context.Context, actorID string, in categoryPort.Input) (*categoryPort.CategoryDTO, error)
	UpdateCategory(ctx context.Context, actorID, slug string, in categoryPort.Input) (*categoryPort.CategoryDTO, error)
	DeleteCategory(ctx context.Context, actorID, slug string) error
}

// LocationUseCase inbound port for location administration
type LocationUseCase interface {
	CreateLocation(ctx context.Context, actorID string, in locationPort.Input) (*locationPort.LocationDTO, error)
	UpdateLocation(ctx context.Context, actorID, locationID string, in locationPort.Input) (*locationPort.LocationDTO, error)
	DeleteLocation(ctx context.Context, actorID, locationID string) error
}

// SetupRoutes wires the controllers, use cases are injected from outside.
func SetupRoutes(
	userUC UserUseCase,
	postUC PostUseCase,
	commentUC CommentUseCase,
	categoryUC CategoryUseCase,
	locationUC LocationUseCase,
) *gin.Engine {
	r := gin.Default()
	uc := NewUserController(userUC)
	pc := NewPostController(postUC)
	cc := NewCommentController(commentUC)
	catc := NewCategoryController(categoryUC)
	lc := NewLocationController(locationUC)
	pages := NewPagesController()

	r.POST("/register", uc.RegisterUser)
	r.POST("/login", uc.LoginUser)

	// Public feeds, the token only widens what the actor sees.
	r.GET("/", middleware.OptionalJWTMiddleware(), pc.Home)
	r.GET("/posts/:post_id/", middleware.OptionalJWTMiddleware(), pc.Detail)
	r.GET("/category/:slug/", middleware.OptionalJWTMiddleware(), pc.CategoryFeed)
	r.GET("/profile/:username/", middleware.OptionalJWTMiddleware(), pc.ProfileFeed)

	r.GET("/edit_profile/", middleware.JWTAuthMiddleware(), uc.EditProfileForm)
	r.POST("/edit_profile/", middleware.JWTAuthMiddleware(), uc.EditProfile)

	r.GET("/posts/create/", middleware.JWTAuthMiddleware(), pc.CreateForm)
	r.POST("/posts/create/", middleware.JWTAuthMiddleware(), pc.Create)
	r.GET("/posts/:post_id/edit/", middleware.JWTAuthMiddleware(), pc.EditForm)
	r.POST("/posts/:post_id/edit/", middleware.JWTAuthMiddleware(), pc.Edit)
	r.POST("/posts/:post_id/delete/", middleware.JWTAuthMiddleware(), pc.Delete)

	// GET on the add-comment route redirects to the detail view, no effect.
	r.GET("/posts/:post_id/comment/", middleware.JWTAuthMiddleware(), cc.AddRedirect)
	r.POST("/posts/:post_id/comment/", middleware.JWTAuthMiddleware(), cc.Add)
	r.GET("/posts/:post_id/comment/:comment_id/edit/", middleware.JWTAuthMiddleware(), cc.EditForm)
	r.POST("/posts/:post_id/comment/:comment_id/edit/", middleware.JWTAuthMiddleware(), cc.Edit)
	r.POST("/posts/:post_id/comment/:comment_id/delete/", middleware.JWTAuthMiddleware(), cc.Delete)

	r.POST("/category/", middleware.JWTAuthMiddleware(), catc.Create)
	r.PUT("/category/:slug/", middleware.JWTAuthMiddleware(), catc.Update)
	r.DELETE("/category/:slug/", middleware.JWTAuthMiddleware(), catc.Delete)
	r.POST("/location/", middleware.JWTAuthMiddleware(), lc.Create)
	r.PUT("/location/:location_id/", middleware.JWTAuthMiddleware(), lc.Update)
	r.DELETE("/location/:location_id/", middleware.JWTAuthMiddleware(), lc.Delete)

	r.GET("/pages/about/", pages.About)
	r.GET("/pages/rules/", pages.Rules)
	r.NoRoute(pages.NotFound)

	return r
}
