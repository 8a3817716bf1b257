package convert

import "html/template"

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
{{- range .Formulas}}
<p id="L{{.Line}}" title="{{.Source}}">{{.MathML}}</p>
{{- end}}
</body>
</html>
`

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

type htmlPage struct {
	Title    string
	Formulas []htmlFormula
}

type htmlFormula struct {
	Line   int
	Source string
	MathML template.HTML
}
