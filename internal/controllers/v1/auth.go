package v1

import (
	"net/http"

	"github.com/I4AN/MagnetWallet/internal/auth"
	"github.com/I4AN/MagnetWallet/internal/httputil"
	"github.com/I4AN/MagnetWallet/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the routes for authentication with
// the RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/register", OptionsAuthPost)
		r.POST("/register", RegisterUser)
	}

	{
		r.OPTIONS("/login", OptionsAuthPost)
		r.POST("/login", Login)
	}

	{
		r.OPTIONS("/logout", OptionsAuthPost)
		r.POST("/logout", Logout)
	}

	{
		r.OPTIONS("/me", httputil.OptionsGet)
		r.GET("/me", auth.Middleware(), Me)
	}
}

type RegisterEditable struct {
	Email       string `json:"email" example:"jane@example.com"`
	DisplayName string `json:"displayName" example:"Jane"`
	Password    string `json:"password" example:"correct horse battery staple"`
}

type LoginEditable struct {
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
}

// SessionResponse is the response for a successful sign-in.
type Session struct {
	Token string      `json:"token"` // Bearer token for subsequent requests
	User  models.User `json:"user"`  // The authenticated user
}

type SessionResponse struct {
	Data  *Session `json:"data"`  // The session, if sign-in succeeded
	Error *string  `json:"error"` // The error, if any occurred
}

type UserResponse struct {
	Data  *models.User `json:"data"`  // The authenticated user
	Error *string      `json:"error"` // The error, if any occurred
}

func OptionsAuthPost(c *gin.Context) {
	httputil.OptionsPost(c)
}

// RegisterUser creates a new account and signs it in.
func RegisterUser(c *gin.Context) {
	var editable RegisterEditable
	if !bind(c, &editable) {
		return
	}

	user, token, err := auth.Register(editable.Email, editable.DisplayName, editable.Password)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{Data: &Session{Token: token, User: user}})
}

// Login verifies the credentials and returns a session token.
func Login(c *gin.Context) {
	var editable LoginEditable
	if !bind(c, &editable) {
		return
	}

	user, token, err := auth.Login(editable.Email, editable.Password)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, SessionResponse{Data: &Session{Token: token, User: user}})
}

// Logout ends the session. Tokens are stateless, so the server has nothing
// to invalidate; the call always succeeds and clients discard their token.
func Logout(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Me returns the authenticated user.
func Me(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, UserResponse{Data: &user})
}
