package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/kireinail/skillcheck/internal/csvimport"
	"github.com/kireinail/skillcheck/internal/customer"
	"github.com/kireinail/skillcheck/internal/report"
	"github.com/kireinail/skillcheck/internal/scoring"
)

// fakeStore is a hand-rolled customer.Store for handler tests.
type fakeStore struct {
	customers map[int64]customer.Customer
	checks    map[int64][]customer.SkillCheck
	notes     []customer.Note
	nextID    int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		customers: map[int64]customer.Customer{},
		checks:    map[int64][]customer.SkillCheck{},
	}
}

func (f *fakeStore) UpsertCustomer(ctx context.Context, c customer.Customer) (customer.Customer, error) {
	for id, existing := range f.customers {
		if existing.Number == c.Number {
			c.ID = id
			f.customers[id] = c
			return c, nil
		}
	}
	f.nextID++
	c.ID = f.nextID
	f.customers[c.ID] = c
	return c, nil
}

func (f *fakeStore) GetCustomer(ctx context.Context, id int64) (customer.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return customer.Customer{}, customer.ErrNotFound
	}
	return c, nil
}

func (f *fakeStore) GetCustomerByNumber(ctx context.Context, number string) (customer.Customer, error) {
	for _, c := range f.customers {
		if c.Number == number {
			return c, nil
		}
	}
	return customer.Customer{}, customer.ErrNotFound
}

func (f *fakeStore) ListCustomers(ctx context.Context) ([]customer.Customer, error) {
	var out []customer.Customer
	for _, c := range f.customers {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeStore) AddSkillCheck(ctx context.Context, chk customer.SkillCheck) (customer.SkillCheck, error) {
	f.checks[chk.CustomerID] = append([]customer.SkillCheck{chk}, f.checks[chk.CustomerID]...)
	return chk, nil
}

func (f *fakeStore) ChecksForCustomer(ctx context.Context, customerID int64) ([]customer.SkillCheck, error) {
	return f.checks[customerID], nil
}

func (f *fakeStore) LatestCheck(ctx context.Context, customerID int64) (customer.SkillCheck, error) {
	chks := f.checks[customerID]
	if len(chks) == 0 {
		return customer.SkillCheck{}, customer.ErrNotFound
	}
	return chks[0], nil
}

func (f *fakeStore) AddNote(ctx context.Context, n customer.Note) (customer.Note, error) {
	n.ID = int64(len(f.notes) + 1)
	f.notes = append(f.notes, n)
	return n, nil
}

func (f *fakeStore) NotesForCustomer(ctx context.Context, customerID int64) ([]customer.Note, error) {
	var out []customer.Note
	for _, n := range f.notes {
		if n.CustomerID == customerID {
			out = append(out, n)
		}
	}
	return out, nil
}

func seededStore(t *testing.T) *fakeStore {
	t.Helper()
	store := newFakeStore()
	c, err := store.UpsertCustomer(context.Background(), customer.Customer{Number: "C-1", Name: "Sato Yuki"})
	if err != nil {
		t.Fatal(err)
	}
	total := 1200.0
	_, err = store.AddSkillCheck(context.Background(), customer.SkillCheck{
		ID:         1,
		CustomerID: c.ID,
		ImportedAt: 1700000000,
		Scores:     scoring.Record{"care_4_1": 20.0, "time_29": "58:00"},
		TotalScore: &total,
	})
	if err != nil {
		t.Fatal(err)
	}
	return store
}

func newTestRouter(store customer.Store) *chi.Mux {
	builder := report.NewBuilder(store)
	r := chi.NewRouter()
	r.Get("/customers", ListCustomersHandler(store))
	r.Get("/customers/{customerID}", GetCustomerHandler(store))
	r.Get("/customers/{customerID}/checks", ListChecksHandler(store))
	r.Post("/customers/{customerID}/notes", AddNoteHandler(store))
	r.Get("/customers/{customerID}/report", CustomerReportHandler(builder))
	r.Get("/customers/{customerID}/report/{discipline}", DisciplineReportHandler(builder))
	r.Get("/customers/{customerID}/report.html", ReportHTMLHandler(builder))
	return r
}

func TestListCustomers(t *testing.T) {
	r := newTestRouter(seededStore(t))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/customers", nil))
	if rec.Code != 200 {
		t.Fatalf("status = %d", rec.Code)
	}
	var got []customer.Customer
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Number != "C-1" {
		t.Fatalf("body = %+v", got)
	}
}

func TestGetCustomerNotFound(t *testing.T) {
	r := newTestRouter(seededStore(t))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/customers/99", nil))
	if rec.Code != 404 {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestGetCustomerBadID(t *testing.T) {
	r := newTestRouter(seededStore(t))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/customers/abc", nil))
	if rec.Code != 400 {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestListChecks(t *testing.T) {
	r := newTestRouter(seededStore(t))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/customers/1/checks", nil))
	if rec.Code != 200 {
		t.Fatalf("status = %d", rec.Code)
	}
	var got []customer.SkillCheck
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || *got[0].TotalScore != 1200 {
		t.Fatalf("body = %+v", got)
	}
}

func TestAddNote(t *testing.T) {
	store := seededStore(t)
	r := newTestRouter(store)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/customers/1/notes",
		strings.NewReader(`{"note_content":"booked follow-up"}`))
	r.ServeHTTP(rec, req)
	if rec.Code != 200 {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	if len(store.notes) != 1 || store.notes[0].Content != "booked follow-up" {
		t.Fatalf("notes = %+v", store.notes)
	}
}

func TestCustomerReport(t *testing.T) {
	r := newTestRouter(seededStore(t))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/customers/1/report", nil))
	if rec.Code != 200 {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	var rep report.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &rep); err != nil {
		t.Fatal(err)
	}
	if rep.Customer.Number != "C-1" || len(rep.Summary) != 5 {
		t.Fatalf("report = %+v", rep)
	}
}

func TestCustomerReportNoChecks(t *testing.T) {
	store := seededStore(t)
	store.UpsertCustomer(context.Background(), customer.Customer{Number: "C-2"})
	r := newTestRouter(store)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/customers/2/report", nil))
	if rec.Code != 404 {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestDisciplineReport(t *testing.T) {
	r := newTestRouter(seededStore(t))
	for path, wantCode := range map[string]int{
		"/customers/1/report/care":     200,
		"/customers/1/report/time":     200,
		"/customers/1/report/overall":  200,
		"/customers/1/report/juggling": 400,
		"/customers/99/report/care":    404,
	} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
		if rec.Code != wantCode {
			t.Errorf("%s: status = %d, want %d", path, rec.Code, wantCode)
		}
	}
}

func TestReportHTML(t *testing.T) {
	r := newTestRouter(seededStore(t))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/customers/1/report.html", nil))
	if rec.Code != 200 {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Skill Check Report") {
		t.Fatal("html missing title")
	}
}

// fakeRenderer stands in for the snapshot service.
type fakeRenderer struct {
	fail bool
	got  []byte
}

func (f *fakeRenderer) Render(ctx context.Context, html []byte) ([]byte, error) {
	if f.fail {
		return nil, context.DeadlineExceeded
	}
	f.got = html
	return []byte("%PDF-1.7 fake"), nil
}

func TestReportPDF(t *testing.T) {
	store := seededStore(t)
	builder := report.NewBuilder(store)
	renderer := &fakeRenderer{}
	r := chi.NewRouter()
	r.Get("/customers/{customerID}/report.pdf", ReportPDFHandler(builder, renderer))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/customers/1/report.pdf", nil))
	if rec.Code != 200 {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type = %q", ct)
	}
	if !bytes.Contains(renderer.got, []byte("Sato Yuki")) {
		t.Fatal("renderer did not receive report html")
	}
}

func TestReportPDFRendererDown(t *testing.T) {
	store := seededStore(t)
	r := chi.NewRouter()
	r.Get("/customers/{customerID}/report.pdf",
		ReportPDFHandler(report.NewBuilder(store), &fakeRenderer{fail: true}))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/customers/1/report.pdf", nil))
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
}

func TestReportPDFNotConfigured(t *testing.T) {
	store := seededStore(t)
	r := chi.NewRouter()
	r.Get("/customers/{customerID}/report.pdf",
		ReportPDFHandler(report.NewBuilder(store), nil))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/customers/1/report.pdf", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestImportCSV(t *testing.T) {
	store := newFakeStore()
	im := csvimport.New(store, nil)
	r := chi.NewRouter()
	r.Post("/import/csv", ImportCSVHandler(im))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "checks.csv")
	if err != nil {
		t.Fatal(err)
	}
	fw.Write([]byte("customer_number,name,care_4_1\nC-1,Sato Yuki,20\n,missing,5\n"))
	mw.Close()

	req := httptest.NewRequest("POST", "/import/csv", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != 200 {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	var res csvimport.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.Customers != 1 || res.Checks != 1 || len(res.Skipped) != 1 {
		t.Fatalf("result = %+v", res)
	}
}

func TestImportCSVNoFile(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/import/csv", ImportCSVHandler(csvimport.New(newFakeStore(), nil)))
	req := httptest.NewRequest("POST", "/import/csv", strings.NewReader("not multipart"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != 400 {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
