package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"spendwise/internal/middleware"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
	"spendwise/internal/services"
	"spendwise/internal/validator"
)

// --- mock services ---

type mockUserService struct {
	createUserFn             func(name, email, password string) (*models.User, error)
	getUserByEmailFn         func(email string) (*models.User, error)
	getUserByIDFn            func(id string) (*models.User, error)
	verifyPasswordFn         func(user *models.User, password string) bool
	updateProfileFn          func(userID string, name, profilePicture *string) (*models.User, error)
	findOrCreateGoogleUserFn func(profile services.GoogleProfile) (*models.User, error)
}

func (m *mockUserService) CreateUser(name, email, password string) (*models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(name, email, password)
	}
	return &models.User{}, nil
}

func (m *mockUserService) GetUserByEmail(email string) (*models.User, error) {
	if m.getUserByEmailFn != nil {
		return m.getUserByEmailFn(email)
	}
	return &models.User{}, nil
}

func (m *mockUserService) GetUserByID(id string) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return &models.User{Base: models.Base{ID: id}}, nil
}

func (m *mockUserService) VerifyPassword(user *models.User, password string) bool {
	if m.verifyPasswordFn != nil {
		return m.verifyPasswordFn(user, password)
	}
	return true
}

func (m *mockUserService) UpdateProfile(userID string, name, profilePicture *string) (*models.User, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(userID, name, profilePicture)
	}
	return &models.User{Base: models.Base{ID: userID}}, nil
}

func (m *mockUserService) FindOrCreateGoogleUser(profile services.GoogleProfile) (*models.User, error) {
	if m.findOrCreateGoogleUserFn != nil {
		return m.findOrCreateGoogleUserFn(profile)
	}
	return &models.User{Email: profile.Email}, nil
}

type mockExpenseService struct {
	createExpenseFn          func(userID string, amount float64, description string, category models.ExpenseCategory, date time.Time) (*models.Expense, error)
	getUserExpensesFn        func(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	getAllUserExpensesFn     func(userID string) ([]models.Expense, error)
	getExpenseByIDFn         func(userID, expenseID string) (*models.Expense, error)
	updateExpenseFn          func(userID, expenseID string, amount *float64, description *string, category *models.ExpenseCategory, date *time.Time) (*models.Expense, error)
	deleteExpenseFn          func(userID, expenseID string) error
	getExpensesByCategoryFn  func(userID string, category models.ExpenseCategory) ([]models.Expense, error)
	getExpensesByDateRangeFn func(userID string, start, end time.Time) ([]models.Expense, error)
}

func (m *mockExpenseService) CreateExpense(userID string, amount float64, description string, category models.ExpenseCategory, date time.Time) (*models.Expense, error) {
	if m.createExpenseFn != nil {
		return m.createExpenseFn(userID, amount, description, category, date)
	}
	return &models.Expense{UserID: userID, Amount: amount, Description: description, Category: category, Date: date}, nil
}

func (m *mockExpenseService) GetUserExpenses(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	if m.getUserExpensesFn != nil {
		return m.getUserExpensesFn(userID, page)
	}
	resp := pagination.NewPageResponse([]models.Expense{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockExpenseService) GetAllUserExpenses(userID string) ([]models.Expense, error) {
	if m.getAllUserExpensesFn != nil {
		return m.getAllUserExpensesFn(userID)
	}
	return []models.Expense{}, nil
}

func (m *mockExpenseService) GetExpenseByID(userID, expenseID string) (*models.Expense, error) {
	if m.getExpenseByIDFn != nil {
		return m.getExpenseByIDFn(userID, expenseID)
	}
	return &models.Expense{Base: models.Base{ID: expenseID}, UserID: userID}, nil
}

func (m *mockExpenseService) UpdateExpense(userID, expenseID string, amount *float64, description *string, category *models.ExpenseCategory, date *time.Time) (*models.Expense, error) {
	if m.updateExpenseFn != nil {
		return m.updateExpenseFn(userID, expenseID, amount, description, category, date)
	}
	return &models.Expense{Base: models.Base{ID: expenseID}, UserID: userID}, nil
}

func (m *mockExpenseService) DeleteExpense(userID, expenseID string) error {
	if m.deleteExpenseFn != nil {
		return m.deleteExpenseFn(userID, expenseID)
	}
	return nil
}

func (m *mockExpenseService) GetExpensesByCategory(userID string, category models.ExpenseCategory) ([]models.Expense, error) {
	if m.getExpensesByCategoryFn != nil {
		return m.getExpensesByCategoryFn(userID, category)
	}
	return []models.Expense{}, nil
}

func (m *mockExpenseService) GetExpensesByDateRange(userID string, start, end time.Time) ([]models.Expense, error) {
	if m.getExpensesByDateRangeFn != nil {
		return m.getExpensesByDateRangeFn(userID, start, end)
	}
	return []models.Expense{}, nil
}

type mockBudgetService struct {
	getBudgetFn    func(userID string) (*models.Budget, error)
	updateBudgetFn func(userID string, monthlyBudget float64) (*models.Budget, error)
}

func (m *mockBudgetService) GetBudget(userID string) (*models.Budget, error) {
	if m.getBudgetFn != nil {
		return m.getBudgetFn(userID)
	}
	return &models.Budget{UserID: userID, MonthlyBudget: models.DefaultMonthlyBudget}, nil
}

func (m *mockBudgetService) UpdateBudget(userID string, monthlyBudget float64) (*models.Budget, error) {
	if m.updateBudgetFn != nil {
		return m.updateBudgetFn(userID, monthlyBudget)
	}
	return &models.Budget{UserID: userID, MonthlyBudget: monthlyBudget}, nil
}

type mockSettingsService struct {
	getSettingsFn    func(userID string) (*models.Settings, error)
	updateSettingsFn func(userID string, update services.SettingsUpdate) (*models.Settings, error)
}

func (m *mockSettingsService) GetSettings(userID string) (*models.Settings, error) {
	if m.getSettingsFn != nil {
		return m.getSettingsFn(userID)
	}
	return &models.Settings{UserID: userID, Theme: models.ThemeLight, Currency: models.CurrencyUSD}, nil
}

func (m *mockSettingsService) UpdateSettings(userID string, update services.SettingsUpdate) (*models.Settings, error) {
	if m.updateSettingsFn != nil {
		return m.updateSettingsFn(userID, update)
	}
	return &models.Settings{UserID: userID}, nil
}

type mockReportService struct {
	dashboardFn func(userID string) (*services.Dashboard, error)
}

func (m *mockReportService) Dashboard(userID string) (*services.Dashboard, error) {
	if m.dashboardFn != nil {
		return m.dashboardFn(userID)
	}
	return &services.Dashboard{CurrencySymbol: "$"}, nil
}

type mockAdminService struct {
	listUsersFn         func(page pagination.PageRequest) (*pagination.PageResponse[models.User], error)
	statsFn             func() (*services.AdminStats, error)
	userDetailFn        func(userID string) (*services.UserDetail, error)
	userExpensesFn      func(userID string) ([]models.Expense, error)
	deleteUserFn        func(adminID, userID string) error
	deleteUserExpenseFn func(userID, expenseID string) error
}

func (m *mockAdminService) ListUsers(page pagination.PageRequest) (*pagination.PageResponse[models.User], error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(page)
	}
	resp := pagination.NewPageResponse([]models.User{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockAdminService) Stats() (*services.AdminStats, error) {
	if m.statsFn != nil {
		return m.statsFn()
	}
	return &services.AdminStats{}, nil
}

func (m *mockAdminService) UserDetail(userID string) (*services.UserDetail, error) {
	if m.userDetailFn != nil {
		return m.userDetailFn(userID)
	}
	return &services.UserDetail{}, nil
}

func (m *mockAdminService) UserExpenses(userID string) ([]models.Expense, error) {
	if m.userExpensesFn != nil {
		return m.userExpensesFn(userID)
	}
	return []models.Expense{}, nil
}

func (m *mockAdminService) DeleteUser(adminID, userID string) error {
	if m.deleteUserFn != nil {
		return m.deleteUserFn(adminID, userID)
	}
	return nil
}

func (m *mockAdminService) DeleteUserExpense(userID, expenseID string) error {
	if m.deleteUserExpenseFn != nil {
		return m.deleteUserExpenseFn(userID, expenseID)
	}
	return nil
}

type mockOAuthService struct {
	enabledFn       func() bool
	authURLFn       func(state string) (string, error)
	exchangeFn      func(ctx context.Context, code string) (*services.GoogleProfile, error)
	verifyIDTokenFn func(ctx context.Context, idToken string) (*services.GoogleProfile, error)
}

func (m *mockOAuthService) Enabled() bool {
	if m.enabledFn != nil {
		return m.enabledFn()
	}
	return true
}

func (m *mockOAuthService) AuthURL(state string) (string, error) {
	if m.authURLFn != nil {
		return m.authURLFn(state)
	}
	return "https://accounts.google.com/o/oauth2/auth?state=" + state, nil
}

func (m *mockOAuthService) Exchange(ctx context.Context, code string) (*services.GoogleProfile, error) {
	if m.exchangeFn != nil {
		return m.exchangeFn(ctx, code)
	}
	return &services.GoogleProfile{GoogleID: "g-1", Email: "g@example.com"}, nil
}

func (m *mockOAuthService) VerifyIDToken(ctx context.Context, idToken string) (*services.GoogleProfile, error) {
	if m.verifyIDTokenFn != nil {
		return m.verifyIDTokenFn(ctx, idToken)
	}
	return &services.GoogleProfile{GoogleID: "g-1", Email: "g@example.com"}, nil
}

type mockAuditService struct{}

func (m *mockAuditService) Log(_, _, _, _, _ string, _ map[string]interface{}) {}

// --- test helpers ---

const testUserID = "0190a6e2-1111-7000-8000-000000000001"

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func injectUserID(uid string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, uid)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}
