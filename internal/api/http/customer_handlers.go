package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kireinail/skillcheck/internal/customer"
)

func ListCustomersHandler(store customer.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customers, err := store.ListCustomers(r.Context())
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		if customers == nil {
			customers = []customer.Customer{}
		}
		writeJSON(w, customers)
	}
}

func GetCustomerHandler(store customer.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := customerID(w, r)
		if !ok {
			return
		}
		c, err := store.GetCustomer(r.Context(), id)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		notes, err := store.NotesForCustomer(r.Context(), id)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, struct {
			customer.Customer
			Notes []customer.Note `json:"notes,omitempty"`
		}{c, notes})
	}
}

func ListChecksHandler(store customer.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := customerID(w, r)
		if !ok {
			return
		}
		if _, err := store.GetCustomer(r.Context(), id); err != nil {
			writeStoreErr(w, err)
			return
		}
		checks, err := store.ChecksForCustomer(r.Context(), id)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		if checks == nil {
			checks = []customer.SkillCheck{}
		}
		writeJSON(w, checks)
	}
}

func AddNoteHandler(store customer.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := customerID(w, r)
		if !ok {
			return
		}
		var req struct {
			Content string `json:"note_content"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if req.Content == "" {
			http.Error(w, "note_content required", 400)
			return
		}
		if _, err := store.GetCustomer(r.Context(), id); err != nil {
			writeStoreErr(w, err)
			return
		}
		n, err := store.AddNote(r.Context(), customer.Note{CustomerID: id, Content: req.Content})
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, n)
	}
}

func customerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "customerID"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "bad customer id", 400)
		return 0, false
	}
	return id, true
}

func writeStoreErr(w http.ResponseWriter, err error) {
	if errors.Is(err, customer.ErrNotFound) {
		http.Error(w, "not found", 404)
		return
	}
	http.Error(w, err.Error(), 500)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
