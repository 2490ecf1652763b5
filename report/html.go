package report

import (
	"fmt"
	"html/template"
	"path/filepath"
	"strings"

	"github.com/anilink-cli/anilink/filesystem"
	"github.com/anilink-cli/anilink/source"
	"github.com/anilink-cli/anilink/util"
	"github.com/anilink-cli/anilink/where"
	"github.com/spf13/afero"
)

var pageTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{ .Name }}</title>
<style>
body { font-family: sans-serif; max-width: 720px; margin: 2rem auto; }
img.cover { max-height: 320px; border-radius: 6px; }
li { margin: .3rem 0; }
.missing { color: #888; }
.truncated { color: #b00; }
</style>
</head>
<body>
<h1>{{ .Name }}</h1>
{{ if .Cover }}<img class="cover" src="{{ .Cover }}" alt="cover">{{ end }}
{{ if .HasScore }}<p>Average score: {{ .Score }}/100</p>{{ end }}
<p>{{ .FoundCount }} of {{ .Attempted }} episodes resolved.</p>
{{ if .Truncated }}<p class="truncated">The run stopped early: not every episode was attempted.</p>{{ end }}
<ol>
{{ range .Episodes }}{{ if .URL }}<li><a href="{{ .URL }}">Episode {{ .Episode }}</a></li>
{{ else }}<li class="missing">Episode {{ .Episode }} (no stream found)</li>
{{ end }}{{ end }}</ol>
</body>
</html>
`))

// pageView flattens a report into template-friendly fields.
type pageView struct {
	Name       string
	Cover      string
	Score      int
	HasScore   bool
	FoundCount int
	Attempted  int
	Truncated  bool
	Episodes   []source.StreamResult
}

// HTMLPath returns the destination of the HTML summary for a title.
func HTMLPath(name string) string {
	return filepath.Join(where.Output(), util.SanitizeFilename(name)+".html")
}

// RenderHTML writes a standalone HTML summary of the run and returns its path.
func RenderHTML(r *source.Report) (string, error) {
	view := pageView{
		Name:       r.Title.Name,
		Cover:      r.Title.Cover,
		FoundCount: len(r.Found()),
		Attempted:  len(r.Results),
		Truncated:  r.Truncated,
		Episodes:   r.Results,
	}
	if score, ok := r.Title.Score.Get(); ok {
		view.Score = score
		view.HasScore = true
	}

	var sb strings.Builder
	if err := pageTemplate.Execute(&sb, view); err != nil {
		return "", fmt.Errorf("render report page: %w", err)
	}

	path := HTMLPath(r.Title.Name)
	if err := afero.WriteFile(filesystem.API(), path, []byte(sb.String()), 0o644); err != nil {
		return "", fmt.Errorf("write report page: %w", err)
	}
	return path, nil
}
