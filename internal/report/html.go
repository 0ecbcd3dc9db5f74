package report

import (
	"fmt"
	"html/template"
	"io"

	"github.com/kireinail/skillcheck/internal/scoring"
)

// RenderHTML writes the printable multi-page report. The document is
// self-contained (inline CSS, no scripts) so the PDF snapshot service can
// render it without fetching assets.
func RenderHTML(w io.Writer, rep Report) error {
	return reportTmpl.Execute(w, rep)
}

func trendArrow(t scoring.Trend) string {
	switch t {
	case scoring.TrendImproved:
		return "▲"
	case scoring.TrendDeclined:
		return "▼"
	case scoring.TrendUnchanged:
		return "→"
	}
	return ""
}

func rankClass(r scoring.Rank) string {
	switch r {
	case scoring.RankAAA:
		return "rank-aaa"
	case scoring.RankAA:
		return "rank-aa"
	case scoring.RankA:
		return "rank-a"
	case scoring.RankB:
		return "rank-b"
	}
	return "rank-none"
}

func fmtScore(v float64) string { return trimFloat(v) }

func fmtPercent(v float64) string {
	return fmt.Sprintf("%.0f%%", v)
}

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"arrow":   trendArrow,
	"rankCls": rankClass,
	"score":   fmtScore,
	"percent": fmtPercent,
}).Parse(reportHTML))

const reportHTML = `<!DOCTYPE html>
<html lang="ja">
<head>
<meta charset="utf-8">
<title>Skill Check Report — {{.Customer.Name}}</title>
<style>
  body { font-family: "Hiragino Kaku Gothic ProN", "Noto Sans JP", sans-serif;
         color: #222; margin: 0; }
  .page { page-break-after: always; padding: 24mm 18mm; }
  .page:last-child { page-break-after: auto; }
  h1 { font-size: 22px; border-bottom: 3px solid #b76e79; padding-bottom: 8px; }
  h2 { font-size: 17px; color: #b76e79; margin-top: 28px; }
  table { border-collapse: collapse; width: 100%; margin-top: 12px; }
  th, td { border: 1px solid #ccc; padding: 6px 10px; font-size: 12px; text-align: left; }
  th { background: #faf0f1; }
  td.num { text-align: right; font-variant-numeric: tabular-nums; }
  .rank-aaa { color: #c9a227; font-weight: bold; }
  .rank-aa  { color: #8a8d94; font-weight: bold; }
  .rank-a   { color: #a46b3c; font-weight: bold; }
  .rank-b   { color: #555; }
  .rank-none{ color: #aaa; }
  .required { background: #fff4f5; }
  .meta { font-size: 12px; color: #666; margin-top: 4px; }
  .trend { font-size: 11px; margin-left: 4px; }
</style>
</head>
<body>

<div class="page">
  <h1>Skill Check Report</h1>
  <p class="meta">
    {{.Customer.Name}} (No. {{.Customer.Number}})
    {{- if .Customer.Prefecture}} / {{.Customer.Prefecture}}{{end}}
    {{- if .Customer.Experience}} / experience: {{.Customer.Experience}}{{end}}
    <br>generated {{.GeneratedAt.Format "2006-01-02"}}
  </p>

  <h2>Summary</h2>
  <table>
    <tr><th>Discipline</th><th>Score</th><th>Max</th><th>Rank</th><th>National avg.</th><th>Previous</th></tr>
    {{range .Summary}}
    <tr>
      <td>{{.Label}}</td>
      <td class="num">{{.Display}}<span class="trend">{{arrow .Trend}}</span></td>
      <td class="num">{{score .Max}}</td>
      <td class="{{rankCls .Rank}}">{{.Rank}}</td>
      <td class="num">{{if eq .Discipline "time"}}` + NationalTotalTime + `{{else}}{{score .National}}{{end}}</td>
      <td class="num">{{if .Previous}}{{score .Previous}}{{end}}</td>
    </tr>
    {{end}}
  </table>

  <h2>Comprehensive balance</h2>
  <table>
    <tr><th>Area</th><th>Score</th><th>Max</th><th>National avg.</th></tr>
    {{range .Comprehensive.Radar}}
    <tr>
      <td>{{.Label}}</td>
      <td class="num">{{score .Value}}</td>
      <td class="num">{{score .Max}}</td>
      <td class="num">{{score .National}}</td>
    </tr>
    {{end}}
  </table>

  {{if .History}}
  <h2>History</h2>
  <table>
    <tr><th>Date</th><th>Total</th><th>Rank</th><th>Total time</th></tr>
    {{range .History}}
    <tr>
      <td>{{.ImportedAt.Format "2006-01-02"}}</td>
      <td class="num">{{score .Total}}</td>
      <td class="{{rankCls .Rank}}">{{.Rank}}</td>
      <td>{{.TotalTime}}</td>
    </tr>
    {{end}}
  </table>
  {{end}}

  {{if .Comment}}
  <h2>Counseling comment</h2>
  <p>{{.Comment}}</p>
  {{end}}
</div>

{{range .Disciplines}}
<div class="page">
  <h1>{{.Label}}</h1>
  <p class="meta">
    {{score .Total}} / {{score .Max}} —
    <span class="{{rankCls .Rank}}">{{.Rank}}</span>
    (national avg. {{score .National}})
  </p>

  {{if .Radar}}
  <h2>Balance</h2>
  <table>
    <tr><th>Group</th><th>Score</th><th>Max</th><th>National avg.</th></tr>
    {{range .Radar}}
    <tr>
      <td>{{.Label}}</td>
      <td class="num">{{score .Value}}</td>
      <td class="num">{{score .Max}}</td>
      <td class="num">{{score .National}}</td>
    </tr>
    {{end}}
  </table>
  {{end}}

  <h2>Checkpoints</h2>
  <table>
    <tr><th>No.</th><th>Checkpoint</th><th>Score</th><th>Alloc.</th><th>%</th><th>National avg.</th><th>Previous</th></tr>
    {{range .Rows}}
    <tr{{if .Item.Required}} class="required"{{end}}>
      <td>{{.Item.ID}}</td>
      <td>{{.Item.Label}}</td>
      <td class="num">{{score .Score}}<span class="trend">{{arrow .Trend}}</span></td>
      <td class="num">{{.Item.Allocation}}</td>
      <td class="num">{{percent .Percent}}</td>
      <td class="num">{{score .National}}</td>
      <td class="num">{{score .Previous}}</td>
    </tr>
    {{end}}
  </table>
</div>
{{end}}

<div class="page">
  <h1>Time</h1>
  <p class="meta">
    {{if .Time.TotalDisplay}}{{.Time.TotalDisplay}}{{else}}no data{{end}} —
    <span class="{{rankCls .Time.Rank}}">{{.Time.Rank}}</span>
    ({{score .Time.Score}} pts)
  </p>

  <h2>Reference timetable</h2>
  <table>
    <tr><th>Segment</th><th>Your time</th><th>AAA ≤</th><th>AA ≤</th><th>A ≤</th><th>Rank</th></tr>
    {{range .Time.Rows}}
    <tr>
      <td>{{.Label}}</td>
      <td class="num">{{if .Display}}{{.Display}}{{else}}–{{end}}</td>
      <td class="num">{{score .TargetS}}</td>
      <td class="num">{{score .TargetAA}}</td>
      <td class="num">{{score .TargetA}}</td>
      <td class="{{rankCls .Rank}}">{{.Rank}}</td>
    </tr>
    {{end}}
  </table>
</div>

</body>
</html>
`
