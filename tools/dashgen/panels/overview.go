package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/gauge"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

func probeStat(title, description, metric string) *stat.PanelBuilder {
	return singleStat(title, description, StatHeight, QuarterWidth).
		WithTarget(PromQuery(Sel(metric), "", "A")).
		Thresholds(ThresholdsRedGreen(1)).
		TextMode(common.BigValueTextModeValue)
}

// HealthzStat shows the liveness probe result.
func HealthzStat() *stat.PanelBuilder {
	return probeStat("Healthz", "Liveness probe (1 = ok, 0 = failing)", "sdp_healthz_up")
}

// ReadyzStat shows whether the provider is initialized.
func ReadyzStat() *stat.PanelBuilder {
	return probeStat("Readyz", "Readiness probe (1 = provider initialized, 0 = not ready)", "sdp_readyz_up")
}

// QuotaGauge shows Graph API calls in the current window as a percentage
// of the quota.
func QuotaGauge() *gauge.PanelBuilder {
	return gauge.NewPanelBuilder().
		Title("Graph Quota %").
		Description(fmt.Sprintf("Graph API calls in the current window against a quota of %d", GraphQuota)).
		Datasource(DSRef()).
		Height(StatHeight).
		Span(QuarterWidth).
		WithTarget(PromQuery(fmt.Sprintf("%s / %d * 100", Sel("sdp_graph_quota_usage"), GraphQuota), "", "A")).
		Unit("percent").
		Min(0).
		Max(100).
		Thresholds(ThresholdsGreenYellowRed(80, 95)).
		ColorScheme(ColorSchemeThresholds())
}

// UptimeStat shows time since the process started.
func UptimeStat() *stat.PanelBuilder {
	return singleStat("Uptime", "Time since process start", StatHeight, QuarterWidth).
		WithTarget(PromQuery(`time() - `+Sel("process_start_time_seconds"), "", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorMode(common.BigValueColorModeValue)
}
