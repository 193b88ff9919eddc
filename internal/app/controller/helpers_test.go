package controller

import (
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jcastror/elfogon-backend/config"
	"github.com/jcastror/elfogon-backend/internal/app/model"
	"github.com/jcastror/elfogon-backend/internal/app/repository"
	"github.com/jcastror/elfogon-backend/internal/app/service"
	"github.com/jcastror/elfogon-backend/internal/db"
	"github.com/jcastror/elfogon-backend/internal/middleware"
	"github.com/jcastror/elfogon-backend/internal/session"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testCookieName = "session_id"

// stubTemplates mirrors the page names the controllers render. Bodies are
// minimal; page content is not what these tests assert on.
const stubTemplates = `
{{define "home.html"}}home{{end}}
{{define "contact.html"}}contact{{end}}
{{define "register.html"}}register {{.Error}}{{end}}
{{define "login.html"}}login {{.Error}}{{end}}
{{define "menu.html"}}menu items={{len .Products}} cart={{.CartCount}}{{end}}
{{define "product_detail.html"}}product {{.Product.Name}}{{end}}
{{define "addresses.html"}}addresses {{len .Addresses}} {{.Error}}{{end}}
{{define "cart.html"}}cart items={{len .Items}} total={{.Total}}{{end}}
{{define "checkout.html"}}checkout total={{.Total}}{{end}}
{{define "profile.html"}}profile orders={{len .Orders}}{{end}}
{{define "error.html"}}error {{.Code}}: {{.Message}}{{end}}
`

type controllerTestEnv struct {
	engine *gin.Engine
	db     *gorm.DB
	store  session.Store
}

// setupControllerTest wires the real middleware, services, and routes on an
// in-memory database and session store.
func setupControllerTest(t *testing.T) *controllerTestEnv {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	store := session.NewMemoryStore(time.Hour)
	sessions := middleware.NewSessionMiddleware(store, config.SessionConfig{
		CookieName: testCookieName,
		TTL:        time.Hour,
		Backend:    "memory",
	})

	userRepo := repository.NewUserRepository(testDB)
	categoryRepo := repository.NewCategoryRepository(testDB)
	productRepo := repository.NewProductRepository(testDB)
	addressRepo := repository.NewAddressRepository(testDB)
	orderRepo := repository.NewOrderRepository(testDB)

	authService := service.NewAuthService(userRepo)
	catalogService := service.NewCatalogService(categoryRepo, productRepo)
	cartService := service.NewCartService(productRepo)
	addressService := service.NewAddressService(addressRepo)
	checkoutService := service.NewCheckoutService(orderRepo, addressRepo)
	orderService := service.NewOrderService(orderRepo)

	authController := NewAuthController(authService, sessions)
	catalogController := NewCatalogController(catalogService)
	cartController := NewCartController(cartService, sessions)
	addressController := NewAddressController(addressService)
	checkoutController := NewCheckoutController(checkoutService, sessions)
	profileController := NewProfileController(orderService, addressService)

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.SetHTMLTemplate(template.Must(template.New("stub").Parse(stubTemplates)))
	engine.Use(sessions.Handle())

	engine.GET("/", catalogController.Home)
	engine.GET("/register", authController.ShowRegister)
	engine.POST("/register", authController.Register)
	engine.GET("/login", authController.ShowLogin)
	engine.POST("/login", authController.Login)
	engine.POST("/logout", authController.Logout)

	private := engine.Group("")
	private.Use(sessions.RequireLogin())
	{
		private.GET("/menu", catalogController.Menu)
		private.GET("/products/:id", catalogController.ProductDetail)
		private.GET("/cart", cartController.Show)
		private.POST("/cart/add/:id", cartController.Add)
		private.POST("/cart/remove/:id", cartController.Remove)
		private.POST("/cart/clear", cartController.Clear)
		private.GET("/addresses", addressController.List)
		private.POST("/addresses", addressController.Create)
		private.POST("/addresses/:id/delete", addressController.Delete)
		private.GET("/checkout", checkoutController.Show)
		private.POST("/checkout", checkoutController.Confirm)
		private.GET("/profile", profileController.Show)
	}

	return &controllerTestEnv{engine: engine, db: testDB, store: store}
}

// loginAs creates a user-backed session directly in the store and returns
// the cookie to send with subsequent requests.
func (env *controllerTestEnv) loginAs(t *testing.T, user *model.User) *http.Cookie {
	t.Helper()

	sess := session.New()
	sess.User = &session.Identity{ID: user.ID, Username: user.Username, Name: user.Name}
	require.NoError(t, env.store.Save(context.Background(), sess))

	return &http.Cookie{Name: testCookieName, Value: sess.Token}
}

func (env *controllerTestEnv) createUser(t *testing.T, username string) *model.User {
	t.Helper()

	user := &model.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
		Name:         "Test " + username,
	}
	require.NoError(t, env.db.Create(user).Error)
	return user
}

func (env *controllerTestEnv) createProduct(t *testing.T, name string, price int64) *model.Product {
	t.Helper()

	category := &model.Category{Name: "Hamburguesas", SortOrder: 1}
	require.NoError(t, env.db.FirstOrCreate(category, model.Category{Name: "Hamburguesas"}).Error)

	product := &model.Product{
		Name:       name,
		Price:      price,
		CategoryID: category.ID,
		Active:     true,
	}
	require.NoError(t, env.db.Create(product).Error)
	return product
}

func (env *controllerTestEnv) request(req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	return w
}
