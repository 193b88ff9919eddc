package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jcastror/elfogon-backend/internal/app/service"
	apperrors "github.com/jcastror/elfogon-backend/internal/errors"
	"github.com/jcastror/elfogon-backend/internal/middleware"
)

type AuthController struct {
	authService service.AuthService
	sessions    *middleware.SessionMiddleware
}

func NewAuthController(authService service.AuthService, sessions *middleware.SessionMiddleware) *AuthController {
	return &AuthController{
		authService: authService,
		sessions:    sessions,
	}
}

type RegisterForm struct {
	Name     string `form:"name"`
	Username string `form:"username"`
	Email    string `form:"email"`
	Phone    string `form:"phone"`
	Password string `form:"password"`
}

type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// ShowRegister renders the registration page
// GET /register
func (ctrl *AuthController) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{})
}

// Register creates an account and sends the visitor to the login page
// POST /register
func (ctrl *AuthController) Register(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		log.Warn("Invalid register form", map[string]interface{}{
			"error": err.Error(),
		})
		c.HTML(http.StatusBadRequest, "register.html", gin.H{
			"Error": "The form could not be read. Please try again",
		})
		return
	}

	_, err := ctrl.authService.Register(form.Username, form.Email, form.Password, form.Name, form.Phone)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			c.HTML(http.StatusBadRequest, "register.html", gin.H{
				"Error": "Name, username, email and password are required",
			})
		case errors.Is(err, service.ErrUsernameTaken):
			c.HTML(http.StatusBadRequest, "register.html", gin.H{
				"Error": "That username is already taken",
			})
		case errors.Is(err, service.ErrEmailTaken):
			c.HTML(http.StatusBadRequest, "register.html", gin.H{
				"Error": "That email is already registered",
			})
		default:
			// A concurrent registration can slip past the pre-checks and
			// hit the unique index instead.
			log.Error("Registration failed", err, map[string]interface{}{
				"username": form.Username,
			})
			info := apperrors.ParseError(err, "user")
			c.HTML(http.StatusBadRequest, "register.html", gin.H{
				"Error": info.Message,
			})
		}
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

// ShowLogin renders the login page
// GET /login
func (ctrl *AuthController) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login authenticates and stores the minimal identity in the session
// POST /login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"Error": "The form could not be read. Please try again",
		})
		return
	}

	identity, err := ctrl.authService.Authenticate(form.Username, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.HTML(http.StatusBadRequest, "login.html", gin.H{
				"Error": "Wrong username or password",
			})
			return
		}
		log.Error("Login failed", err, map[string]interface{}{
			"username": form.Username,
		})
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Error": "Something went wrong. Please try again later",
		})
		return
	}

	sess := middleware.GetSession(c)
	sess.User = identity
	if err := ctrl.sessions.SaveSession(c); err != nil {
		log.Error("Failed to save session after login", err, map[string]interface{}{
			"user_id": identity.ID,
		})
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Error": "Something went wrong. Please try again later",
		})
		return
	}

	c.Redirect(http.StatusFound, "/menu")
}

// Logout destroys the session and returns to the home page
// POST /logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	if err := ctrl.sessions.DestroySession(c); err != nil {
		log.Error("Failed to destroy session on logout", err, nil)
	}
	c.Redirect(http.StatusFound, "/")
}
