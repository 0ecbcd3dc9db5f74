package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/kireinail/skillcheck/internal/rbac"
)

func TestIssueAndParse(t *testing.T) {
	svc := NewAuthService("test-secret")
	tok, err := svc.IssueJWT("alice", "staff")
	if err != nil {
		t.Fatal(err)
	}
	claims, err := svc.Parse(tok)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Sub != "alice" || claims.Role != "staff" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	tok, err := NewAuthService("secret-a").IssueJWT("alice", "staff")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewAuthService("secret-b").Parse(tok); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestJWTMiddlewareAttachesContext(t *testing.T) {
	svc := NewAuthService("test-secret")
	tok, _ := svc.IssueJWT("alice", "staff")

	var gotSub, gotRole string
	h := JWTMiddleware(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSub = SubjectFromContext(r.Context())
		gotRole = rbac.RoleFromContext(r.Context())
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != 200 {
		t.Fatalf("status = %d", rec.Code)
	}
	if gotSub != "alice" || gotRole != "staff" {
		t.Fatalf("context sub/role = %q/%q", gotSub, gotRole)
	}
}

func TestJWTMiddlewareRejects(t *testing.T) {
	svc := NewAuthService("test-secret")
	h := JWTMiddleware(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler reached")
	}))

	for name, header := range map[string]string{
		"missing": "",
		"basic":   "Basic abc",
		"garbage": "Bearer not-a-token",
	} {
		req := httptest.NewRequest("GET", "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d, want 401", name, rec.Code)
		}
	}
}

func TestLoginHandlerAdminFallback(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	svc := NewAuthService("test-secret")
	h := LoginHandler(svc, nil, AdminFallback{User: "admin", PassHash: string(hash)})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/auth/login",
		strings.NewReader(`{"username":"admin","password":"hunter2"}`)))
	if rec.Code != 200 {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["role"] != "admin" {
		t.Fatalf("role = %q", resp["role"])
	}
	claims, err := svc.Parse(resp["access_token"])
	if err != nil || claims.Sub != "admin" {
		t.Fatalf("token claims = %+v, err %v", claims, err)
	}
}

func TestLoginHandlerBadCredentials(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	h := LoginHandler(NewAuthService("s"), nil, AdminFallback{User: "admin", PassHash: string(hash)})

	for name, body := range map[string]string{
		"wrong password": `{"username":"admin","password":"nope"}`,
		"unknown user":   `{"username":"mallory","password":"hunter2"}`,
		"empty":          `{}`,
	} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest("POST", "/auth/login", strings.NewReader(body)))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d, want 401", name, rec.Code)
		}
	}
}
