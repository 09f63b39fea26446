package clients_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/GymAppCB/FinalApp/internal/app/features/clients"
	"github.com/GymAppCB/FinalApp/internal/app/system/auth"
	"github.com/GymAppCB/FinalApp/internal/domain/models"
	"github.com/GymAppCB/FinalApp/internal/testutil"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// clientAPI composes the feature router behind the real token middleware
// so requests travel the same path they do in production.
func clientAPI(t *testing.T) (http.Handler, *testutil.Fixtures, auth.Config) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	tokens := auth.Config{Secret: "test-secret", TTL: time.Hour}

	r := chi.NewRouter()
	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireTrainer(tokens, zap.NewNop()))
		pr.Mount("/clients", clients.Routes(clients.NewHandler(db, zap.NewNop())))
	})
	return r, testutil.NewFixtures(t, db), tokens
}

func bearerFor(t *testing.T, tokens auth.Config, trainerID primitive.ObjectID) string {
	t.Helper()
	token, err := tokens.IssueToken(trainerID.Hex(), "trainer@test.com", "trainer")
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}
	return "Bearer " + token
}

func doJSON(api http.Handler, method, target, authz, body string) *testutil.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := testutil.NewRecorder()
	api.ServeHTTP(rec, req)
	return rec
}

func TestClients_CreateGetUpdateDelete(t *testing.T) {
	api, _, tokens := clientAPI(t)
	trainerID := primitive.NewObjectID()
	authz := bearerFor(t, tokens, trainerID)

	rec := doJSON(api, http.MethodPost, "/clients/", authz,
		`{"name":"<b>João</b> Silva","email":"Joao@Test.com"}`)
	rec.AssertStatus(t, http.StatusCreated)

	var created models.Client
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode created client: %v", err)
	}
	if created.Name != "João Silva" {
		t.Errorf("name should be sanitized, got %q", created.Name)
	}
	if created.Email != "joao@test.com" {
		t.Errorf("email should be normalized, got %q", created.Email)
	}
	if created.TrainerID.Hex() != trainerID.Hex() {
		t.Errorf("owner should come from the token, got %s", created.TrainerID.Hex())
	}
	if !created.IsActive {
		t.Error("new clients should default to active")
	}

	id := created.ID.Hex()

	rec = doJSON(api, http.MethodGet, "/clients/"+id, authz, "")
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "João Silva")

	rec = doJSON(api, http.MethodPut, "/clients/"+id, authz, `{"phone":"11 99999-0000"}`)
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "11 99999-0000")

	rec = doJSON(api, http.MethodDelete, "/clients/"+id, authz, "")
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Client deleted")

	rec = doJSON(api, http.MethodGet, "/clients/"+id, authz, "")
	rec.AssertStatus(t, http.StatusNotFound)

	// Deleting again reports not found.
	rec = doJSON(api, http.MethodDelete, "/clients/"+id, authz, "")
	rec.AssertStatus(t, http.StatusNotFound)
}

func TestClients_CrossTrainerLooksLikeNotFound(t *testing.T) {
	api, f, tokens := clientAPI(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := primitive.NewObjectID()
	c := f.CreateClient(ctx, owner, "Cliente")

	intruder := bearerFor(t, tokens, primitive.NewObjectID())

	rec := doJSON(api, http.MethodGet, "/clients/"+c.ID.Hex(), intruder, "")
	rec.AssertStatus(t, http.StatusNotFound)

	rec = doJSON(api, http.MethodPut, "/clients/"+c.ID.Hex(), intruder, `{"name":"Roubado"}`)
	rec.AssertStatus(t, http.StatusNotFound)

	rec = doJSON(api, http.MethodDelete, "/clients/"+c.ID.Hex(), intruder, "")
	rec.AssertStatus(t, http.StatusNotFound)
}

func TestClients_ListScopedToTrainer(t *testing.T) {
	api, f, tokens := clientAPI(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	trainerID := primitive.NewObjectID()
	f.CreateClient(ctx, trainerID, "Meu Cliente")
	f.CreateClient(ctx, primitive.NewObjectID(), "Alheio")

	rec := doJSON(api, http.MethodGet, "/clients/", bearerFor(t, tokens, trainerID), "")
	rec.AssertStatus(t, http.StatusOK)

	var list []models.Client
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 client, got %d", len(list))
	}
	if list[0].Name != "Meu Cliente" {
		t.Errorf("unexpected client in list: %q", list[0].Name)
	}
}

func TestClients_InvalidIDAndValidation(t *testing.T) {
	api, _, tokens := clientAPI(t)
	authz := bearerFor(t, tokens, primitive.NewObjectID())

	rec := doJSON(api, http.MethodGet, "/clients/not-a-hex-id", authz, "")
	rec.AssertStatus(t, http.StatusNotFound)

	rec = doJSON(api, http.MethodPost, "/clients/", authz, `{"name":"  "}`)
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "name is required")
}

func TestClients_RequiresToken(t *testing.T) {
	api, _, _ := clientAPI(t)

	rec := doJSON(api, http.MethodGet, "/clients/", "", "")
	rec.AssertStatus(t, http.StatusUnauthorized)
}
