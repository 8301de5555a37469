package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"spendwise/internal/handlers"
	"spendwise/internal/logger"
	"spendwise/internal/middleware"
	"spendwise/internal/models"
	"spendwise/internal/services"
	"spendwise/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Expense{},
		&models.Budget{},
		&models.Settings{},
		&models.AuditLog{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	userService := services.NewUserService(db)
	expenseService := services.NewExpenseService(db)
	budgetService := services.NewBudgetService(db)
	settingsService := services.NewSettingsService(db)
	reportService := services.NewReportService(expenseService, budgetService, settingsService)
	adminService := services.NewAdminService(db)
	auditService := services.NewAuditService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	expenseHandler := handlers.NewExpenseHandler(expenseService, auditService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, auditService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	userHandler := handlers.NewUserHandler(userService)
	reportHandler := handlers.NewReportHandler(reportService)
	adminHandler := handlers.NewAdminHandler(adminService, auditService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	api := router.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)

	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/auth/me", authHandler.Me)
	protected.GET("/auth/verify", authHandler.Verify)

	expenses := protected.Group("/expenses")
	expenses.POST("", expenseHandler.Create)
	expenses.GET("", expenseHandler.List)
	expenses.GET("/category/:category", expenseHandler.ListByCategory)
	expenses.GET("/date-range/:start/:end", expenseHandler.ListByDateRange)
	expenses.GET("/:id", expenseHandler.Get)
	expenses.PUT("/:id", expenseHandler.Update)
	expenses.DELETE("/:id", expenseHandler.Delete)

	protected.GET("/budget", budgetHandler.Get)
	protected.PUT("/budget", budgetHandler.Update)

	protected.GET("/settings", settingsHandler.Get)
	protected.PUT("/settings", settingsHandler.Update)

	protected.GET("/users/profile", userHandler.GetProfile)
	protected.PUT("/users/profile", userHandler.UpdateProfile)

	protected.GET("/reports/dashboard", reportHandler.Dashboard)

	admin := protected.Group("/admin")
	admin.Use(middleware.AdminMiddleware(userService, services.IsAdmin))
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/users/:id", adminHandler.GetUser)
	admin.GET("/users/:id/expenses", adminHandler.GetUserExpenses)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.DELETE("/users/:id/expenses/:expenseID", adminHandler.DeleteUserExpense)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// signupUser registers a new user and returns the token and user ID.
func (app *testApp) signupUser(t *testing.T, name, email, password string) (token, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"email":%q,"password":%q}`, name, email, password)
	rec := app.request("POST", "/api/auth/signup", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["token"].(string), user["id"].(string)
}

// loginUser logs in and returns the token.
func (app *testApp) loginUser(t *testing.T, email, password string) string {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["token"].(string)
}

// promoteToAdmin flips the is_admin flag directly in the database.
func (app *testApp) promoteToAdmin(t *testing.T, userID string) {
	t.Helper()
	if err := app.DB.Model(&models.User{}).Where("id = ?", userID).Update("is_admin", true).Error; err != nil {
		t.Fatalf("failed to promote admin: %v", err)
	}
}

// addExpense creates an expense and returns its ID.
func (app *testApp) addExpense(t *testing.T, token string, amount float64, description, category, date string) string {
	t.Helper()
	body := fmt.Sprintf(`{"amount":%v,"description":%q,"category":%q,"date":%q}`, amount, description, category, date)
	rec := app.request("POST", "/api/expenses", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create expense failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	expense := result["expense"].(map[string]interface{})
	return expense["id"].(string)
}
