// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dashboard

// indexHTML is the single dashboard page. Filters submit as a plain GET so
// every interaction is one request/response recomputation.
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>CORD-19 Explorer</title>
<style>
  body { font-family: system-ui, sans-serif; margin: 0; background: #f5f6f8; color: #1c2330; }
  header { background: #223048; color: #fff; padding: 16px 32px; }
  header h1 { margin: 0; font-size: 20px; }
  main { max-width: 1100px; margin: 0 auto; padding: 24px 32px; }
  form.filters { background: #fff; border-radius: 8px; padding: 16px; margin-bottom: 24px;
                 display: flex; gap: 24px; flex-wrap: wrap; align-items: flex-end; }
  form.filters label { display: block; font-size: 12px; color: #5a6472; margin-bottom: 4px; }
  form.filters input, form.filters select { padding: 6px 8px; border: 1px solid #cdd3dc; border-radius: 4px; }
  form.filters button { padding: 8px 20px; background: #223048; color: #fff; border: 0; border-radius: 4px; cursor: pointer; }
  .metrics { display: flex; gap: 16px; flex-wrap: wrap; margin-bottom: 24px; }
  .metric { background: #fff; border-radius: 8px; padding: 16px 24px; min-width: 140px; }
  .metric .value { font-size: 24px; font-weight: 600; }
  .metric .label { font-size: 12px; color: #5a6472; }
  .charts { display: grid; grid-template-columns: 1fr 1fr; gap: 16px; margin-bottom: 24px; }
  .charts img { width: 100%; background: #fff; border-radius: 8px; }
  .empty { background: #fff7e0; border: 1px solid #e8d28a; border-radius: 8px; padding: 24px; margin-bottom: 24px; }
  table { width: 100%; background: #fff; border-collapse: collapse; border-radius: 8px; font-size: 13px; }
  th, td { text-align: left; padding: 8px 12px; border-bottom: 1px solid #eef0f4; }
  th { background: #eef0f4; }
</style>
</head>
<body>
<header><h1>CORD-19 Data Explorer</h1></header>
<main>

<form class="filters" method="get" action="/">
  <div>
    <label for="from">Year from</label>
    <input id="from" name="from" type="number" value="{{if .Filter.YearFrom}}{{.Filter.YearFrom}}{{end}}">
  </div>
  <div>
    <label for="to">Year to</label>
    <input id="to" name="to" type="number" value="{{if .Filter.YearTo}}{{.Filter.YearTo}}{{end}}">
  </div>
  <div>
    <label for="journal">Journals</label>
    <select id="journal" name="journal" multiple size="4">
      {{range .Journals}}<option value="{{.Name}}"{{if .Selected}} selected{{end}}>{{.Name}} ({{.Count}})</option>
      {{end}}</select>
  </div>
  <div>
    <label for="abstract">Abstract</label>
    <select id="abstract" name="abstract">
      <option value="all"{{if eq .Filter.Abstract "all"}} selected{{end}}>All</option>
      <option value="with"{{if eq .Filter.Abstract "with"}} selected{{end}}>With abstract</option>
      <option value="without"{{if eq .Filter.Abstract "without"}} selected{{end}}>Without abstract</option>
    </select>
  </div>
  <button type="submit">Apply</button>
</form>

{{if .Empty}}
<div class="empty">No papers match the selected filters. Widen the year range or clear the journal selection.</div>
{{else}}

<div class="metrics">
  <div class="metric"><div class="value">{{.Summary.Total}}</div><div class="label">Papers</div></div>
  <div class="metric"><div class="value">{{.Summary.WithAbstract}}</div><div class="label">With abstracts ({{printf "%.1f" .Summary.AbstractPercent}}%)</div></div>
  <div class="metric"><div class="value">{{.Summary.MinYear}}&ndash;{{.Summary.MaxYear}}</div><div class="label">Year range</div></div>
  <div class="metric"><div class="value">{{.Summary.Journals}}</div><div class="label">Journals</div></div>
  <div class="metric"><div class="value">{{printf "%.1f" .Summary.MeanAbstractLen}}</div><div class="label">Avg abstract words</div></div>
</div>

<div class="charts">
  <img src="/charts/years.png?{{.Query}}" alt="Publications by year">
  <img src="/charts/journals.png?{{.Query}}" alt="Top journals">
  <img src="/charts/words.png?{{.Query}}" alt="Frequent title words">
  <img src="/charts/sources.png?{{.Query}}" alt="Papers by source">
</div>

<table>
  <thead>
    <tr><th>Title</th><th>Journal</th><th>Year</th><th>Source</th><th>Abstract words</th></tr>
  </thead>
  <tbody>
    {{range .Sample}}<tr>
      <td>{{.Title}}</td><td>{{.Journal}}</td><td>{{.Year}}</td><td>{{.Source}}</td><td>{{.AbstractWordCount}}</td>
    </tr>
    {{end}}</tbody>
</table>
{{end}}

</main>
</body>
</html>
`
