package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// APICallsRate shows Graph API calls per second by HTTP method.
func APICallsRate() *timeseries.PanelBuilder {
	return timeSeries("API Calls Rate", "Graph API calls per second by method", QuarterWidth).
		WithTarget(PromQuery(`sum by (method) (rate(`+Sel("sdp_graph_api_calls_total")+`[5m]))`, "{{method}}", "A")).
		Unit("reqps").
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip())
}

// QuotaUsage shows calls made in the current quota window.
func QuotaUsage() *timeseries.PanelBuilder {
	return timeSeries("Quota Usage vs Limit",
		fmt.Sprintf("Graph API calls in the current window (default quota: %d)", GraphQuota),
		QuarterWidth).
		WithTarget(PromQuery(Sel("sdp_graph_quota_usage"), "usage", "A")).
		Thresholds(ThresholdsGreenYellowRed(GraphQuota*0.8, GraphQuota)).
		ColorScheme(ColorSchemeThresholds())
}

// APIErrors shows Graph API error responses per second by HTTP status.
func APIErrors() *timeseries.PanelBuilder {
	return timeSeries("API Errors", "Graph API error responses per second by status", QuarterWidth).
		WithTarget(PromQuery(`sum by (status) (rate(`+Sel("sdp_graph_api_errors_total")+`[5m]))`, "{{status}}", "A")).
		Unit("reqps").
		Tooltip(MultiTooltip())
}

// LimitHits shows how often the call quota ran out in the last 24 hours.
func LimitHits() *stat.PanelBuilder {
	return singleStat("Quota Exhausted (24h)",
		"Times the Graph API call quota was exhausted in the last 24 hours",
		TSHeight, QuarterWidth).
		WithTarget(PromQuery(`increase(`+Sel("sdp_graph_quota_limit_hits_total")+`[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 3)).
		GraphMode(common.BigValueGraphModeArea)
}
