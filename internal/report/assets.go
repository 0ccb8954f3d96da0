package report

import (
	"embed"
	"html/template"
	"strconv"
)

//go:embed assets/*.tmpl assets/*.css
var assets embed.FS

// StylesheetName is the embedded report stylesheet
const StylesheetName = "assets/diffreport.css"

var templateFuncs = template.FuncMap{
	"num": func(n int64) string {
		if n == 0 {
			return ""
		}
		return strconv.FormatInt(n, 10)
	},
}

var (
	reportTemplate = template.Must(template.New("report").Funcs(templateFuncs).ParseFS(assets, "assets/report.html.tmpl"))
	exportTemplate = template.Must(template.New("export").ParseFS(assets, "assets/export.html.tmpl"))
)

// EmbeddedStylesheet returns the built-in report stylesheet
func EmbeddedStylesheet() []byte {
	data, err := assets.ReadFile(StylesheetName)
	if err != nil {
		// Embedded at build time; absence is a build defect
		panic(err)
	}
	return data
}
