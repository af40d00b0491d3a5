package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/unitedfert/receipts-api/internal/application/service"
	"github.com/unitedfert/receipts-api/internal/config"
	"github.com/unitedfert/receipts-api/internal/domain/entity"
	infraRepo "github.com/unitedfert/receipts-api/internal/infrastructure/repository"
	"github.com/unitedfert/receipts-api/internal/presentation/http/handler"
	"github.com/unitedfert/receipts-api/internal/presentation/http/routes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupRouter wires the full stack over a per-test in-memory database.
func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Receipt{},
		&entity.Client{},
		&entity.Company{},
		&entity.SystemList{},
	))

	receiptRepo := infraRepo.NewReceiptRepository(db)
	clientRepo := infraRepo.NewClientRepository(db)
	companyRepo := infraRepo.NewCompanyRepository(db)
	systemListRepo := infraRepo.NewSystemListRepository(db)
	userRepo := infraRepo.NewUserRepository(db)

	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(service.NewAuthService(userRepo)),
		Receipt:  handler.NewReceiptHandler(service.NewReceiptService(receiptRepo)),
		Client:   handler.NewClientHandler(service.NewClientService(clientRepo)),
		Settings: handler.NewSettingsHandler(service.NewSettingsService(companyRepo, systemListRepo)),
		User:     handler.NewUserHandler(service.NewUserService(userRepo)),
	}

	cfg := &config.Config{}
	cfg.App.Name = "receipts-api"
	return routes.Setup(handlers, &routes.Deps{Cfg: cfg}), db
}

func httpDo(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		b, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func receiptBody(number int) map[string]interface{} {
	return map[string]interface{}{
		"number":     number,
		"clientId":   "C-100",
		"clientName": "مؤسسة النخيل",
		"amount":     1500,
		"tafqeet":    "ألف وخمسمائة ريال",
		"method":     "نقداً",
		"bank":       "الراجحي",
		"reason":     "سداد فواتير",
		"branch":     "الرياض",
		"createdBy":  "bob",
	}
}

func TestHealthEndpoint(t *testing.T) {
	r, _ := setupRouter(t)

	w := httpDo(r, "GET", "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	require.Equal(t, "ok", body["status"])
}

func TestReceiptLifecycle(t *testing.T) {
	r, _ := setupRouter(t)

	// Create
	w := httpDo(r, "POST", "/api/receipts", receiptBody(1001))
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode(t, w)
	require.EqualValues(t, 1001, created["number"])
	require.Equal(t, "مؤسسة النخيل", created["clientName"])
	require.EqualValues(t, 1500, created["bankAmount"])
	require.Equal(t, false, created["approved"])
	id := fmt.Sprintf("%v", created["id"])

	// Duplicate number
	w = httpDo(r, "POST", "/api/receipts", receiptBody(1001))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Receipt number already exists", decode(t, w)["error"])

	// Get
	w = httpDo(r, "GET", "/api/receipts/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Partial update
	w = httpDo(r, "PUT", "/api/receipts/"+id, map[string]interface{}{"amount": 2000})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode(t, w)
	require.EqualValues(t, 2000, updated["amount"])
	require.Equal(t, "نقداً", updated["method"])

	// Approve
	w = httpDo(r, "POST", "/api/receipts/"+id+"/approve", map[string]interface{}{
		"approvedBy": "alice",
		"bankAmount": 1900,
	})
	require.Equal(t, http.StatusOK, w.Code)
	approved := decode(t, w)
	require.Equal(t, true, approved["approved"])
	require.Equal(t, "alice", approved["approvedBy"])
	require.EqualValues(t, 1900, approved["bankAmount"])
	require.NotNil(t, approved["approvedAt"])

	// Delete
	w = httpDo(r, "DELETE", "/api/receipts/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Receipt deleted successfully", decode(t, w)["message"])

	w = httpDo(r, "GET", "/api/receipts/"+id, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Receipt not found", decode(t, w)["error"])
}

func TestReceiptInvoicesRoundTripVerbatim(t *testing.T) {
	r, _ := setupRouter(t)

	body := receiptBody(1001)
	body["invoices"] = []map[string]interface{}{
		{"number": "INV-7", "amount": 900, "dueDate": "2026-03-01", "note": "جزئي"},
	}
	w := httpDo(r, "POST", "/api/receipts", body)
	require.Equal(t, http.StatusCreated, w.Code)
	id := fmt.Sprintf("%v", decode(t, w)["id"])

	// Invoice entries come back with every field the caller sent, not a
	// trimmed fixed shape.
	w = httpDo(r, "GET", "/api/receipts/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	invoices, ok := decode(t, w)["invoices"].([]interface{})
	require.True(t, ok)
	require.Len(t, invoices, 1)
	entry := invoices[0].(map[string]interface{})
	require.Equal(t, "INV-7", entry["number"])
	require.EqualValues(t, 900, entry["amount"])
	require.Equal(t, "2026-03-01", entry["dueDate"])
	require.Equal(t, "جزئي", entry["note"])
}

func TestReceiptValidationErrors(t *testing.T) {
	r, _ := setupRouter(t)

	body := receiptBody(1001)
	delete(body, "method")
	w := httpDo(r, "POST", "/api/receipts", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Missing required field: method", decode(t, w)["error"])

	w = httpDo(r, "GET", "/api/receipts/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Invalid ID", decode(t, w)["error"])

	w = httpDo(r, "GET", "/api/receipts?date_from=bogus", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Invalid date_from", decode(t, w)["error"])
}

func TestReceiptListShape(t *testing.T) {
	r, _ := setupRouter(t)

	for i := 0; i < 3; i++ {
		w := httpDo(r, "POST", "/api/receipts", receiptBody(1001+i))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := httpDo(r, "GET", "/api/receipts?page=1&per_page=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	require.EqualValues(t, 3, body["total"])
	require.EqualValues(t, 2, body["pages"])
	require.EqualValues(t, 1, body["current_page"])
	require.EqualValues(t, 2, body["per_page"])
	receipts, ok := body["receipts"].([]interface{})
	require.True(t, ok)
	require.Len(t, receipts, 2)

	// Same-day receipts come back number descending.
	first := receipts[0].(map[string]interface{})
	require.EqualValues(t, 1003, first["number"])
}

func TestReceiptStatsEndpoint(t *testing.T) {
	r, _ := setupRouter(t)

	w := httpDo(r, "POST", "/api/receipts", receiptBody(1001))
	require.Equal(t, http.StatusCreated, w.Code)

	// The stats path must not be captured by the :id route.
	w = httpDo(r, "GET", "/api/receipts/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	require.EqualValues(t, 1, body["totalReceipts"])
	require.EqualValues(t, 1500, body["totalAmount"])
	require.EqualValues(t, 1, body["todayReceipts"])
	require.EqualValues(t, 1, body["pendingApproval"])
	require.Contains(t, body, "branchStats")
	require.Contains(t, body, "methodStats")
}

func TestClientEndpoints(t *testing.T) {
	r, _ := setupRouter(t)

	w := httpDo(r, "POST", "/api/clients", map[string]interface{}{
		"clientId": "C-100",
		"name":     "مؤسسة النخيل",
		"phone":    "0501234567",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = httpDo(r, "GET", "/api/clients", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var clients []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &clients))
	require.Len(t, clients, 1)

	w = httpDo(r, "GET", "/api/clients/C-100", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "مؤسسة النخيل", decode(t, w)["name"])

	w = httpDo(r, "GET", "/api/clients/C-999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Client not found", decode(t, w)["error"])
}

func TestCompanyEndpoints(t *testing.T) {
	r, _ := setupRouter(t)

	w := httpDo(r, "GET", "/api/company", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, entity.DefaultCompanyName, decode(t, w)["name"])

	w = httpDo(r, "PUT", "/api/company", map[string]interface{}{"header": "رأس الصفحة"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	require.Equal(t, "رأس الصفحة", body["header"])
	require.Equal(t, entity.DefaultCompanyName, body["name"])
}

func TestListsEndpoints(t *testing.T) {
	r, _ := setupRouter(t)

	w := httpDo(r, "GET", "/api/lists", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var lists map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lists))
	require.Len(t, lists, 4)
	require.Contains(t, lists["branches"], "الرياض")

	w = httpDo(r, "PUT", "/api/lists", map[string][]string{"banks": {"الإنماء"}})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Lists updated successfully", decode(t, w)["message"])

	w = httpDo(r, "GET", "/api/lists", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lists))
	require.Equal(t, []string{"الإنماء"}, lists["banks"])
}

func TestUserEndpointsAndLogin(t *testing.T) {
	r, _ := setupRouter(t)

	w := httpDo(r, "POST", "/api/users", map[string]interface{}{
		"username": "alice",
		"code":     "A01",
		"password": "s3cret",
		"role":     "محاسب",
		"branch":   "الرياض",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode(t, w)
	require.EqualValues(t, entity.DefaultLastSerial, created["lastSerial"])
	// The password hash must never appear on the wire.
	require.NotContains(t, created, "password")
	id := fmt.Sprintf("%v", created["id"])

	// Login round trip against the stored hash.
	w = httpDo(r, "POST", "/api/auth/login", map[string]interface{}{
		"username": "alice",
		"password": "s3cret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	require.Equal(t, true, body["success"])
	require.Equal(t, "Login successful", body["message"])
	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "alice", user["username"])

	w = httpDo(r, "POST", "/api/auth/login", map[string]interface{}{
		"username": "alice",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	body = decode(t, w)
	require.Equal(t, false, body["success"])
	require.Equal(t, "Invalid username or password", body["error"])

	// Serial override.
	w = httpDo(r, "PUT", "/api/users/"+id+"/serial", map[string]interface{}{"lastSerial": 2500})
	require.Equal(t, http.StatusOK, w.Code)
	require.EqualValues(t, 2500, decode(t, w)["lastSerial"])

	// Soft delete hides the user from the listing and blocks login.
	w = httpDo(r, "DELETE", "/api/users/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "User deleted successfully", decode(t, w)["message"])

	w = httpDo(r, "GET", "/api/users", nil)
	var users []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Empty(t, users)

	w = httpDo(r, "POST", "/api/auth/login", map[string]interface{}{
		"username": "alice",
		"password": "s3cret",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
