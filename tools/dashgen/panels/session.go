package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

func hourlyByResult(title, description, metric string) *timeseries.PanelBuilder {
	return timeSeries(title, description, ThirdWidth).
		WithTarget(PromQuery(`sum by (result) (increase(`+Sel(metric)+`[1h]))`, "{{result}}", "A")).
		Tooltip(MultiTooltip()).
		DrawStyle(common.GraphDrawStyleBars)
}

// LoginAttempts shows login attempts per hour by result.
func LoginAttempts() *timeseries.PanelBuilder {
	return hourlyByResult("Logins", "Login attempts per hour by result", "sdp_login_attempts_total")
}

// Posts shows feed posts per hour by result.
func Posts() *timeseries.PanelBuilder {
	return hourlyByResult("Posts", "Feed posts per hour by result", "sdp_posts_total")
}

// NotificationFailures shows failed post notifications in the last 24 hours.
func NotificationFailures() *stat.PanelBuilder {
	return singleStat("Notification Failures (24h)",
		"Failed post notifications in the last 24 hours",
		TSHeight, ThirdWidth).
		WithTarget(PromQuery(`increase(`+Sel("sdp_notification_failures_total")+`[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		GraphMode(common.BigValueGraphModeArea)
}
