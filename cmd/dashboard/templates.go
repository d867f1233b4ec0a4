package main

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

type templates struct {
	index  *template.Template
	job    *template.Template
	metric *template.Template
	dlq    *template.Template
	config *template.Template
}

func loadTemplates() (*templates, error) {
	funcs := template.FuncMap{
		"timeStr":     formatTime,
		"timeValStr":  formatTimeVal,
		"durationStr": formatDuration,
		"stringStr":   formatString,
		"intStr":      formatInt,
	}
	parse := func(name string) (*template.Template, error) {
		return template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
	}

	index, err := parse("index.html")
	if err != nil {
		return nil, err
	}
	job, err := parse("job.html")
	if err != nil {
		return nil, err
	}
	metric, err := parse("metrics.html")
	if err != nil {
		return nil, err
	}
	dlq, err := parse("dlq.html")
	if err != nil {
		return nil, err
	}
	cfg, err := parse("config.html")
	if err != nil {
		return nil, err
	}
	return &templates{index: index, job: job, metric: metric, dlq: dlq, config: cfg}, nil
}
