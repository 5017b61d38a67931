package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

func latencyQuantile(q string) string {
	return `histogram_quantile(` + q + `, sum(rate(` + Sel("sdp_http_request_duration_seconds_bucket") + `[5m])) by (le))`
}

// RequestRate shows API requests per second.
func RequestRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Request Rate").
		Description("API requests per second, probes excluded").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(HalfWidth).
		WithTarget(PromQuery(`sdp:http_requests:rate5m`, "req/s", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// LatencyPercentiles shows p50, p95 and p99 request latency.
func LatencyPercentiles() *timeseries.PanelBuilder {
	return timeSeries("Latency Percentiles", "API request duration percentiles", HalfWidth).
		WithTarget(PromQuery(latencyQuantile("0.50"), "p50", "A")).
		WithTarget(PromQuery(latencyQuantile("0.95"), "p95", "B")).
		WithTarget(PromQuery(latencyQuantile("0.99"), "p99", "C")).
		Unit("s").
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip())
}

// ErrorRate shows 5xx responses as a percentage of requests.
func ErrorRate() *timeseries.PanelBuilder {
	return timeSeries("Error Rate %", "5xx responses as percentage of API requests", HalfWidth).
		WithTarget(PromQuery(`sdp:http_errors:rate5m / sdp:http_requests:rate5m * 100`, "error %", "A")).
		Unit("percent").
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds())
}

// InFlight shows API requests currently being served.
func InFlight() *stat.PanelBuilder {
	return singleStat("In Flight", "API requests currently being served (probes excluded)", TSHeight, QuarterWidth).
		WithTarget(PromQuery(Sel("sdp_http_requests_in_flight"), "", "A")).
		Thresholds(ThresholdsGreenYellowRed(20, 50)).
		ColorMode(common.BigValueColorModeValue).
		GraphMode(common.BigValueGraphModeArea)
}

// Panics shows handler panics recovered in the last 24 hours.
func Panics() *stat.PanelBuilder {
	return singleStat("Panics (24h)", "Handler panics recovered in the last 24 hours", TSHeight, QuarterWidth).
		WithTarget(PromQuery(`increase(`+Sel("sdp_http_panics_total")+`[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 5))
}
