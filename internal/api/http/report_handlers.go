package http

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kireinail/skillcheck/internal/pdf"
	"github.com/kireinail/skillcheck/internal/report"
	"github.com/kireinail/skillcheck/internal/scoring"
)

func CustomerReportHandler(b *report.Builder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep, ok := buildReport(w, r, b)
		if !ok {
			return
		}
		writeJSON(w, rep)
	}
}

// DisciplineReportHandler serves one section of the report: a discipline
// detail page, "time", or "overall".
func DisciplineReportHandler(b *report.Builder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep, ok := buildReport(w, r, b)
		if !ok {
			return
		}
		switch d := scoring.Discipline(chi.URLParam(r, "discipline")); d {
		case scoring.Time:
			writeJSON(w, rep.Time)
		case scoring.Overall:
			writeJSON(w, rep.Comprehensive)
		case scoring.Care, scoring.OneColor, scoring.Gradation:
			for _, sec := range rep.Disciplines {
				if sec.Discipline == d {
					writeJSON(w, sec)
					return
				}
			}
			http.Error(w, "not found", 404)
		default:
			http.Error(w, "unknown discipline", 400)
		}
	}
}

// ReportHTMLHandler serves the printable document; handy for previewing
// what the PDF service will render.
func ReportHTMLHandler(b *report.Builder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep, ok := buildReport(w, r, b)
		if !ok {
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := report.RenderHTML(w, rep); err != nil {
			log.Printf("report html: %v", err)
		}
	}
}

func ReportPDFHandler(b *report.Builder, renderer pdf.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if renderer == nil {
			http.Error(w, "pdf export not configured", http.StatusServiceUnavailable)
			return
		}
		rep, ok := buildReport(w, r, b)
		if !ok {
			return
		}
		var buf bytes.Buffer
		if err := report.RenderHTML(&buf, rep); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		out, err := renderer.Render(r.Context(), buf.Bytes())
		if err != nil {
			log.Printf("report pdf: %v", err)
			http.Error(w, "pdf render failed", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="skillcheck-%s.pdf"`, rep.Customer.Number))
		_, _ = w.Write(out)
	}
}

func buildReport(w http.ResponseWriter, r *http.Request, b *report.Builder) (report.Report, bool) {
	id, ok := customerID(w, r)
	if !ok {
		return report.Report{}, false
	}
	rep, err := b.Build(r.Context(), id)
	if err != nil {
		if errors.Is(err, report.ErrNoChecks) {
			http.Error(w, "no skill checks for customer", 404)
			return report.Report{}, false
		}
		writeStoreErr(w, err)
		return report.Report{}, false
	}
	return rep, true
}
