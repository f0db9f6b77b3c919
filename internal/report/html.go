package report

import (
	"html/template"
	"io"
	"time"

	"github.com/openfactual/factbench/internal/registry"
)

// The leaderboard page is self-contained: no external assets, so the file
// can be published as-is.
var htmlTemplate = template.Must(template.New("leaderboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>factbench — Leaderboard</title>
  <style>
    body { font-family: system-ui, -apple-system, sans-serif; background: #0d1117; color: #c9d1d9; padding: 2rem; }
    .container { max-width: 1100px; margin: 0 auto; }
    h1 { font-size: 1.75rem; color: #f0f6fc; margin-bottom: 0.25rem; }
    .subtitle { color: #8b949e; font-size: 0.9rem; margin-bottom: 1.5rem; }
    table { width: 100%; border-collapse: collapse; background: #161b22; border-radius: 8px; overflow: hidden; }
    th, td { padding: 0.75rem 1rem; text-align: left; border-bottom: 1px solid #21262d; font-size: 0.875rem; }
    th { background: #1c2128; color: #8b949e; text-transform: uppercase; font-size: 0.75rem; letter-spacing: 0.05em; }
    tr:hover { background: #1c2128; }
    tr.top td:nth-child(3) { color: #3fb950; font-weight: 700; }
    code { background: #21262d; padding: 0.15rem 0.4rem; border-radius: 4px; font-size: 0.8rem; color: #79c0ff; }
    .footer { margin-top: 1.5rem; color: #484f58; font-size: 0.8rem; text-align: center; }
  </style>
</head>
<body>
  <div class="container">
    <h1>factbench &mdash; Leaderboard</h1>
    <p class="subtitle">{{len .Rows}} run(s) registered</p>
    <table>
      <thead>
        <tr><th>#</th><th>Model</th><th>Accuracy</th><th>Halluc.</th><th>Refused</th><th>Hardware</th><th>Date</th></tr>
      </thead>
      <tbody>
{{- range .Rows}}
        <tr{{if .Top}} class="top"{{end}}>
          <td>{{.Rank}}</td>
          <td><code>{{.ModelID}}</code></td>
          <td>{{.Accuracy}}</td>
          <td>{{.Hallucinated}}</td>
          <td>{{.Refused}}</td>
          <td>{{.Hardware}}</td>
          <td>{{.Date}}</td>
        </tr>
{{- end}}
      </tbody>
    </table>
    <p class="footer">generated {{.Generated}}</p>
  </div>
</body>
</html>
`))

type htmlRow struct {
	Rank         int
	ModelID      string
	Accuracy     string
	Hallucinated int
	Refused      int
	Hardware     string
	Date         string
	Top          bool
}

func writeHTML(entries []registry.Entry, w io.Writer) error {
	rows := make([]htmlRow, len(entries))
	for i, e := range entries {
		rows[i] = htmlRow{
			Rank:         i + 1,
			ModelID:      e.ModelID,
			Accuracy:     accuracyCell(e.Accuracy),
			Hallucinated: e.HallucinatedCount,
			Refused:      e.RefusedCount,
			Hardware:     e.Hardware,
			Date:         e.Date.Format("2006-01-02"),
			Top:          i == 0 && e.Accuracy != nil,
		}
	}
	return htmlTemplate.Execute(w, map[string]any{
		"Rows":      rows,
		"Generated": time.Now().Format("2006-01-02 15:04"),
	})
}
