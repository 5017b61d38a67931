package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return newPrometheusRule("sdp-recording-rules", RuleGroup{
		Name: "sdp-recording",
		Rules: []Rule{
			{Record: "sdp:http_requests:rate5m", Expr: `sum(rate(sdp_http_requests_total[5m]))`},
			{Record: "sdp:http_errors:rate5m", Expr: `sum(rate(sdp_http_requests_total{status=~"5.."}[5m]))`},
			{Record: "sdp:graph_api_calls:rate5m", Expr: `sum(rate(sdp_graph_api_calls_total[5m]))`},
			{Record: "sdp:graph_api_errors:rate5m", Expr: `sum(rate(sdp_graph_api_errors_total[5m]))`},
			{Record: "sdp:fetch_records:rate5m", Expr: `rate(sdp_fetch_records_total[5m])`},
			{Record: "sdp:fetch_errors:rate5m", Expr: `rate(sdp_fetch_errors_total[5m])`},
			{Record: "sdp:poll_failures:rate5m", Expr: `sum(rate(sdp_poll_runs_total{result="error"}[5m]))`},
		},
	})
}
