package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type userRow struct {
	ID       int64  `json:"id,omitempty"`
	Username string `json:"username"`
	Role     string `json:"role"` // "admin" or "staff"
}

// CreateUserHandler upserts one account. Admin-only; passwords arrive as
// plaintext over the LAN deployment and are stored bcrypt-hashed.
func CreateUserHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
			Role     string `json:"role"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if req.Username == "" || req.Password == "" {
			http.Error(w, "username and password required", 400)
			return
		}
		if req.Role != "admin" && req.Role != "staff" {
			http.Error(w, "role must be admin or staff", 400)
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_, err = db.ExecContext(r.Context(), `
INSERT INTO users (username, password_hash, role, created_at)
VALUES ($1,$2,$3,$4)
ON CONFLICT (username) DO UPDATE SET
  password_hash = excluded.password_hash,
  role = excluded.role`,
			req.Username, string(hash), req.Role, time.Now().Unix())
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, map[string]string{"username": req.Username, "role": req.Role})
	}
}

func ListUsersHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := db.QueryContext(r.Context(),
			`SELECT id, username, role FROM users ORDER BY username`)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		defer rows.Close()

		out := []userRow{}
		for rows.Next() {
			var u userRow
			if err := rows.Scan(&u.ID, &u.Username, &u.Role); err != nil {
				http.Error(w, err.Error(), 500)
				return
			}
			out = append(out, u)
		}
		if err := rows.Err(); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, out)
	}
}
