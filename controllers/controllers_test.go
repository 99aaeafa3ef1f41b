package controllers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/gorilla/mux"

	"rinkside_server/routes"
	"rinkside_server/services"
)

// fakeDynamo is a minimal in-memory DynamoAPI for handler tests.
type fakeDynamo struct {
	mu     sync.Mutex
	tables map[string]map[string]map[string]types.AttributeValue
	err    error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: make(map[string]map[string]map[string]types.AttributeValue)}
}

func (f *fakeDynamo) table(name string) map[string]map[string]types.AttributeValue {
	if f.tables[name] == nil {
		f.tables[name] = make(map[string]map[string]types.AttributeValue)
	}
	return f.tables[name]
}

func itemID(item map[string]types.AttributeValue) string {
	if attr, ok := item["id"].(*types.AttributeValueMemberS); ok {
		return attr.Value
	}
	return ""
}

func (f *fakeDynamo) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.table(aws.ToString(params.TableName))[itemID(params.Item)] = params.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.table(aws.ToString(params.TableName))[itemID(params.Key)]}, nil
}

func (f *fakeDynamo) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	delete(f.table(aws.ToString(params.TableName)), itemID(params.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var items []map[string]types.AttributeValue
	for _, item := range f.table(aws.ToString(params.TableName)) {
		items = append(items, item)
	}
	return &dynamodb.ScanOutput{Items: items}, nil
}

func newTestRouter() (*mux.Router, *fakeDynamo) {
	fake := newFakeDynamo()
	dynamoService := &services.DynamoService{Client: fake}
	db := services.NewDatabaseService(dynamoService, services.NewQueryCache(), "test-", 5*time.Minute, 2*time.Minute)

	gameService := services.NewGameService(db, nil)
	rosterService := services.NewRosterService(db)
	eventService := services.NewEventService(db, nil)
	attendanceService := services.NewAttendanceService(db)
	healthService := services.NewHealthService(dynamoService, "test-", "abc123", "main", false)

	r := mux.NewRouter()
	routes.RegisterGameRoutes(r, gameService)
	routes.RegisterRosterRoutes(r, rosterService)
	routes.RegisterEventRoutes(r, eventService)
	routes.RegisterAttendanceRoutes(r, attendanceService)
	routes.RegisterHealthRoutes(r, healthService)
	routes.RegisterAdminRoutes(r, db, rosterService)
	return r, fake
}

type apiResponse struct {
	Success bool                   `json:"success"`
	Data    json.RawMessage        `json:"data"`
	Meta    map[string]interface{} `json:"meta"`
	Error   *struct {
		Code    string   `json:"code"`
		Message string   `json:"message"`
		Details []string `json:"details"`
	} `json:"error"`
}

func doRequest(t *testing.T, r *mux.Router, method, path, body string) (int, apiResponse) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var resp apiResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return rec.Code, resp
}

func TestCreateGameEndpoint(t *testing.T) {
	r, _ := newTestRouter()

	status, resp := doRequest(t, r, http.MethodPost, "/api/games",
		`{"homeTeam":"Bar","awayTeam":"Foo","gameDate":"2026-01-10","gameTime":"18:30"}`)
	if status != http.StatusCreated || !resp.Success {
		t.Fatalf("status = %d, success = %v", status, resp.Success)
	}

	// Duplicate schedule slot conflicts.
	status, resp = doRequest(t, r, http.MethodPost, "/api/games",
		`{"homeTeam":"Bar","awayTeam":"Foo","gameDate":"2026-01-10","gameTime":"18:30"}`)
	if status != http.StatusConflict {
		t.Errorf("duplicate game status = %d, want 409", status)
	}
	if resp.Error == nil || resp.Error.Code != "conflict" {
		t.Errorf("error = %+v, want conflict code", resp.Error)
	}
}

func TestCreateGameValidationFailure(t *testing.T) {
	r, _ := newTestRouter()

	status, resp := doRequest(t, r, http.MethodPost, "/api/games",
		`{"awayTeam":"Foo","gameDate":"2026-01-10","gameTime":"18:30"}`)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if resp.Error == nil || resp.Error.Code != "validation_failed" {
		t.Fatalf("error = %+v, want validation_failed", resp.Error)
	}
	found := false
	for _, d := range resp.Error.Details {
		if strings.Contains(d, "homeTeam") {
			found = true
		}
	}
	if !found {
		t.Errorf("details %v missing homeTeam violation", resp.Error.Details)
	}
}

func TestGetGamesEndpoint(t *testing.T) {
	r, _ := newTestRouter()
	doRequest(t, r, http.MethodPost, "/api/games",
		`{"homeTeam":"Bar","awayTeam":"Foo","division":"Gold","gameDate":"2026-01-10","gameTime":"18:30"}`)
	doRequest(t, r, http.MethodPost, "/api/games",
		`{"homeTeam":"Owls","awayTeam":"Lynx","division":"Silver","gameDate":"2026-01-11","gameTime":"17:00"}`)

	status, resp := doRequest(t, r, http.MethodGet, "/api/games?division=gold", "")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if count, ok := resp.Meta["count"].(float64); !ok || count != 1 {
		t.Errorf("meta count = %v, want 1", resp.Meta["count"])
	}
}

func TestGetMissingGameIs404(t *testing.T) {
	r, _ := newTestRouter()

	status, resp := doRequest(t, r, http.MethodGet, "/api/games/ghost", "")
	if status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
	if resp.Error == nil || resp.Error.Code != "not_found" {
		t.Errorf("error = %+v", resp.Error)
	}
}

func TestHealthEndpoint(t *testing.T) {
	r, fake := newTestRouter()

	status, resp := doRequest(t, r, http.MethodGet, "/api/health", "")
	if status != http.StatusOK || !resp.Success {
		t.Fatalf("healthy status = %d", status)
	}

	fake.err = errors.New("dial tcp 10.0.0.1:443: connection refused")
	status, _ = doRequest(t, r, http.MethodGet, "/api/health", "")
	if status != http.StatusServiceUnavailable {
		t.Errorf("degraded status = %d, want 503", status)
	}
}

func TestGameEventsEndpoint(t *testing.T) {
	r, _ := newTestRouter()
	doRequest(t, r, http.MethodPost, "/api/games",
		`{"id":"g1","homeTeam":"Bar","awayTeam":"Foo","gameDate":"2026-01-10","gameTime":"18:30"}`)

	status, resp := doRequest(t, r, http.MethodPost, "/api/goals",
		`{"gameId":"g1","teamName":"Foo","playerName":"Alex Chen","period":1}`)
	if status != http.StatusCreated {
		t.Fatalf("goal status = %d (error %+v)", status, resp.Error)
	}

	status, resp = doRequest(t, r, http.MethodGet, "/api/game-events?gameId=g1", "")
	if status != http.StatusOK {
		t.Fatalf("events status = %d", status)
	}
	if count, ok := resp.Meta["count"].(float64); !ok || count != 1 {
		t.Errorf("meta count = %v, want 1", resp.Meta["count"])
	}
}

func TestAttendanceEndpoints(t *testing.T) {
	r, _ := newTestRouter()

	status, _ := doRequest(t, r, http.MethodPost, "/api/attendance",
		`{"gameId":"g1","teams":[{"teamName":"Bears","roster":[{"name":"Alex Chen"}],"present":["Alex Chen"]}]}`)
	if status != http.StatusCreated {
		t.Fatalf("save attendance status = %d", status)
	}

	status, resp := doRequest(t, r, http.MethodGet, "/api/attendance/g1", "")
	if status != http.StatusOK {
		t.Fatalf("get attendance status = %d", status)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(resp.Data, &doc); err != nil {
		t.Fatal(err)
	}
	if doc["id"] != "g1-attendance" {
		t.Errorf("attendance id = %v", doc["id"])
	}

	status, _ = doRequest(t, r, http.MethodGet, "/api/attendance/ghost", "")
	if status != http.StatusNotFound {
		t.Errorf("missing attendance status = %d, want 404", status)
	}
}

func TestSubmittedGamesRouteNotShadowed(t *testing.T) {
	r, _ := newTestRouter()

	status, resp := doRequest(t, r, http.MethodGet, "/api/games/submitted", "")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200 (route must not be captured as an id)", status)
	}
	if count, ok := resp.Meta["count"].(float64); !ok || count != 0 {
		t.Errorf("meta count = %v, want 0", resp.Meta["count"])
	}
}
