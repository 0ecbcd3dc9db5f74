package auth

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

// AdminFallback is the env-configured bootstrap account, used when the
// users table has no matching row.
type AdminFallback struct {
	User     string
	PassHash string // bcrypt
}

// POST /auth/login  { "username": "...", "password": "..." }
// Checks the users table first, then the configured admin account.
func LoginHandler(a *AuthService, db *sql.DB, admin AdminFallback) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.Username == "" || req.Password == "" {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}

		role, ok := checkUser(r, db, req.Username, req.Password)
		if !ok && req.Username == admin.User && admin.PassHash != "" {
			if bcrypt.CompareHashAndPassword([]byte(admin.PassHash), []byte(req.Password)) == nil {
				role, ok = "admin", true
			}
		}
		if !ok {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}

		tok, err := a.IssueJWT(req.Username, role)
		if err != nil {
			log.Printf("auth: issue token for %s: %v", req.Username, err)
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"access_token": tok,
			"role":         role,
		})
	}
}

func checkUser(r *http.Request, db *sql.DB, username, password string) (string, bool) {
	if db == nil {
		return "", false
	}
	var hash, role string
	err := db.QueryRowContext(r.Context(),
		`SELECT password_hash, role FROM users WHERE username = $1`,
		username).Scan(&hash, &role)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("auth: lookup %s: %v", username, err)
		}
		return "", false
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return "", false
	}
	return role, true
}
