package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RecordsRate shows feed records returned and pages requested per minute.
func RecordsRate() *timeseries.PanelBuilder {
	return timeSeries("Records / min", "Feed records returned and pages requested per minute", ThirdWidth).
		WithTarget(PromQuery(`sdp:fetch_records:rate5m * 60`, "records/min", "A")).
		WithTarget(PromQuery(`rate(`+Sel("sdp_fetch_pages_total")+`[5m]) * 60`, "pages/min", "B")).
		Legend(TableLegend("mean", "max"))
}

// FetchErrors shows failed fetch calls per minute.
func FetchErrors() *timeseries.PanelBuilder {
	return timeSeries("Fetch Errors / min", "Failed fetch calls per minute", ThirdWidth).
		WithTarget(PromQuery(`sdp:fetch_errors:rate5m * 60`, "errors/min", "A")).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemeThresholds())
}

// FetchDuration shows the p95 fetch duration, pagination included.
func FetchDuration() *timeseries.PanelBuilder {
	return timeSeries("Fetch Duration (p95)", "95th percentile fetch duration including pagination", ThirdWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(`+Sel("sdp_fetch_duration_seconds_bucket")+`[5m])) by (le))`,
			"p95", "A",
		)).
		Unit("s")
}
