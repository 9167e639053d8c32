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

	"financas/internal/database"
	"financas/internal/handlers"
	"financas/internal/logger"
	"financas/internal/middleware"
	"financas/internal/models"
	"financas/internal/services"
	"financas/internal/validator"
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
	dsn := fmt.Sprintf("file:integrationdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.Account{},
		&models.Transaction{},
		&models.Config{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	if err := database.Seed(db); err != nil {
		t.Fatalf("failed to seed test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	accountService := services.NewAccountService(db)
	transactionService := services.NewTransactionService(db, accountService)
	configService := services.NewConfigService(db)
	reportService := services.NewReportService(db, configService)

	// Handlers
	accountHandler := handlers.NewAccountHandler(accountService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	reportHandler := handlers.NewReportHandler(reportService)
	configHandler := handlers.NewConfigHandler(configService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	accounts := v1.Group("/accounts")
	accounts.POST("", accountHandler.Create)
	accounts.GET("", accountHandler.List)
	accounts.GET("/:id", accountHandler.GetByID)
	accounts.PUT("/:id/balance", accountHandler.SetBalance)
	accounts.DELETE("/:id", accountHandler.Delete)

	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.Create)
	transactions.GET("", transactionHandler.List)
	transactions.GET("/:id", transactionHandler.GetByID)
	transactions.DELETE("/:id", transactionHandler.Delete)

	reports := v1.Group("/reports")
	reports.GET("/expenses", reportHandler.Expenses)
	reports.GET("/categories", reportHandler.Categories)
	reports.GET("/summary", reportHandler.Summary)

	v1.GET("/config", configHandler.Get)
	v1.PUT("/config", configHandler.Update)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
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

// createAccount creates an account over HTTP and returns its ID.
func (app *testApp) createAccount(t *testing.T, name string, initialBalance int64) float64 {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"initial_balance":%d}`, name, initialBalance)
	rec := app.request("POST", "/api/v1/accounts", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create account failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	account := result["account"].(map[string]interface{})
	return account["id"].(float64)
}

// accountBalance fetches an account over HTTP and returns its balance in cents.
func (app *testApp) accountBalance(t *testing.T, accountID float64) int64 {
	t.Helper()
	rec := app.request("GET", fmt.Sprintf("/api/v1/accounts/%d", int(accountID)), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get account failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	account := result["account"].(map[string]interface{})
	return int64(account["balance"].(float64))
}
