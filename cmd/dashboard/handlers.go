package main

import (
	"html/template"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jobq/jobq/job"
)

type indexView struct {
	Jobs        []*job.Job
	StateFilter string
}

func (d *dashboard) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filter := r.URL.Query().Get("state")
	state, err := job.ParseState(filter)
	if err != nil {
		state = job.Unknown
	}
	jobs, err := d.observer.List(ctx, state, 100)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	renderTemplate(w, d.tmpl.index, indexView{Jobs: jobs, StateFilter: filter})
}

type jobView struct {
	Job   *job.Job
	Found bool
}

func (d *dashboard) handleJob(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	jb, err := d.observer.Get(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	renderTemplate(w, d.tmpl.job, jobView{Job: jb, Found: jb != nil})
}

func (d *dashboard) handleMetrics(w http.ResponseWriter, r *http.Request) {
	m, err := d.observer.Metrics(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	renderTemplate(w, d.tmpl.metric, m)
}

func (d *dashboard) handleDLQ(w http.ResponseWriter, r *http.Request) {
	jobs, err := d.dlq.DLQList(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	renderTemplate(w, d.tmpl.dlq, jobs)
}

func (d *dashboard) handleConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := d.config.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	renderTemplate(w, d.tmpl.config, cfg)
}

func renderTemplate(w http.ResponseWriter, tmpl *template.Template, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
