package webform

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Share reconstruction</title>
<style>
body { font-family: sans-serif; max-width: 820px; margin: 2em auto; }
textarea { width: 100%; height: 16em; font-family: monospace; }
table { border-collapse: collapse; margin: 0.5em 0; }
td, th { border: 1px solid #ccc; padding: 0.2em 0.6em; text-align: right; }
.error { color: #b00020; font-weight: bold; }
.secret { font-size: 1.4em; }
iframe { border: 0; width: 800px; height: 420px; }
</style>
</head>
<body>
<h1>Share reconstruction</h1>
<form method="post" action="/">
<textarea name="document" spellcheck="false">{{.Document}}</textarea>
<p>
<label>Method
<select name="method">
{{- range .Methods}}
<option value="{{.}}"{{if eq . $.Method}} selected{{end}}>{{.}}</option>
{{- end}}
</select>
</label>
<button type="submit">Reconstruct</button>
</p>
</form>
{{- if .ErrorKind}}
<p class="error">Reconstruction failed ({{.ErrorKind}})</p>
{{- end}}
{{- with .Result}}
<h2>Result</h2>
<p>declared n={{.N}} k={{.K}} method={{.Method}}</p>
<table>
<tr><th>Index</th><th>Base</th><th>Value</th><th>Decoded</th><th>Fits float64</th></tr>
{{- range .Shares}}
<tr><td>{{.Index}}</td><td>{{.Base}}</td><td>{{.Value}}</td><td>{{.Decoded}}</td><td>{{if .Exact}}yes{{else}}no{{end}}</td></tr>
{{- end}}
</table>
<p>selected indices: {{range $i, $x := .Selected}}{{if $i}}, {{end}}{{$x}}{{end}}</p>
<p>polynomial: f(x) = {{.Expression}}</p>
<p class="secret">constant term (secret): <strong>{{.Constant}}</strong></p>
{{- end}}
{{- if .ChartHTML}}
<iframe title="polynomial chart" srcdoc="{{.ChartHTML}}"></iframe>
{{- end}}
</body>
</html>
`
