package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kireinail/skillcheck/internal/db"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db")
	conn, err := db.Open(context.Background(), db.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestCreateAndListUsers(t *testing.T) {
	dbh := newTestDB(t)
	create := CreateUserHandler(dbh)
	list := ListUsersHandler(dbh)

	rec := httptest.NewRecorder()
	create.ServeHTTP(rec, httptest.NewRequest("POST", "/users",
		strings.NewReader(`{"username":"mika","password":"pw123","role":"staff"}`)))
	if rec.Code != 200 {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body)
	}

	// Upsert same username with a new role.
	rec = httptest.NewRecorder()
	create.ServeHTTP(rec, httptest.NewRequest("POST", "/users",
		strings.NewReader(`{"username":"mika","password":"pw456","role":"admin"}`)))
	if rec.Code != 200 {
		t.Fatalf("upsert status = %d: %s", rec.Code, rec.Body)
	}

	rec = httptest.NewRecorder()
	list.ServeHTTP(rec, httptest.NewRequest("GET", "/users", nil))
	if rec.Code != 200 {
		t.Fatalf("list status = %d", rec.Code)
	}
	var users []userRow
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatal(err)
	}
	if len(users) != 1 || users[0].Username != "mika" || users[0].Role != "admin" {
		t.Fatalf("users = %+v", users)
	}
}

func TestCreateUserValidation(t *testing.T) {
	create := CreateUserHandler(newTestDB(t))
	for name, body := range map[string]string{
		"missing password": `{"username":"a","role":"staff"}`,
		"bad role":         `{"username":"a","password":"x","role":"root"}`,
		"bad json":         `{`,
	} {
		rec := httptest.NewRecorder()
		create.ServeHTTP(rec, httptest.NewRequest("POST", "/users", strings.NewReader(body)))
		if rec.Code != 400 {
			t.Errorf("%s: status = %d, want 400", name, rec.Code)
		}
	}
}
