// Package validate checks generated dashboards and rules: every PromQL
// expression must parse and reference only known metrics.
package validate

import (
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/social-data-provider/tools/dashgen/rules"
)

// histogramSuffixes are stripped before a series name is looked up.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Result collects validation findings. Errors make the artifact unusable;
// warnings do not.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation found no errors.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Expr parses expr and checks each referenced series against known.
func Expr(where, expr string, known map[string]bool, r *Result) {
	if strings.TrimSpace(expr) == "" {
		r.errorf("%s: empty expression", where)
		return
	}

	parsed, err := parser.ParseExpr(expr)
	if err != nil {
		r.errorf("%s: %v", where, err)
		return
	}

	parser.Inspect(parsed, func(node parser.Node, _ []parser.Node) error {
		vs, ok := node.(*parser.VectorSelector)
		if !ok {
			return nil
		}
		if !knownSeries(vs.Name, known) {
			r.errorf("%s: unknown metric %q", where, vs.Name)
		}
		return nil
	})
}

func knownSeries(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}

// Dashboard validates every Prometheus target in dash, including panels
// nested in rows.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var r Result
	for _, p := range dash.Panels {
		switch {
		case p.Panel != nil:
			panel(*p.Panel, known, &r)
		case p.RowPanel != nil:
			for _, inner := range p.RowPanel.Panels {
				panel(inner, known, &r)
			}
		}
	}
	return r
}

func panel(p dashboard.Panel, known map[string]bool, r *Result) {
	title := "untitled panel"
	if p.Title != nil {
		title = *p.Title
	}
	if len(p.Targets) == 0 {
		r.warnf("%s: no targets", title)
	}

	seen := make(map[string]bool, len(p.Targets))
	for _, t := range p.Targets {
		var q prometheus.Dataquery
		switch v := t.(type) {
		case prometheus.Dataquery:
			q = v
		case *prometheus.Dataquery:
			q = *v
		default:
			r.warnf("%s: non-Prometheus target skipped", title)
			continue
		}

		ref := ""
		if q.RefId != nil {
			ref = *q.RefId
		}
		if seen[ref] {
			r.errorf("%s: duplicate refId %q", title, ref)
		}
		seen[ref] = true

		Expr(title+"/"+ref, q.Expr, known, r)
	}
}

// Rules validates every rule expression in cr. Recording rule names are
// added to known so later rules may reference them.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var r Result

	merged := make(map[string]bool, len(known))
	for k, v := range known {
		merged[k] = v
	}

	for _, g := range cr.Spec.Groups {
		for _, rule := range g.Rules {
			name := rule.Record
			if name == "" {
				name = rule.Alert
			}
			if name == "" {
				r.errorf("%s: rule without record or alert name", g.Name)
				continue
			}
			if rule.Alert != "" && rule.Labels["severity"] == "" {
				r.warnf("%s/%s: no severity label", g.Name, name)
			}

			Expr(g.Name+"/"+name, rule.Expr, merged, &r)
			if rule.Record != "" {
				merged[rule.Record] = true
			}
		}
	}
	return r
}
