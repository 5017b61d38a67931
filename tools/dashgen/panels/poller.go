package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// NextPoll shows time until the next scheduled poll.
func NextPoll() *stat.PanelBuilder {
	return singleStat("Next Poll", "Time until the next scheduled feed poll", TSHeight, QuarterWidth).
		WithTarget(PromQuery(Sel("sdp_poller_next_run_timestamp")+` - time()`, "", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenOnly())
}

// PollRuns shows scheduled poll runs per hour by result.
func PollRuns() *timeseries.PanelBuilder {
	return timeSeries("Poll Runs", "Scheduled poll runs per hour by result", QuarterWidth).
		WithTarget(PromQuery(`sum by (result) (increase(`+Sel("sdp_poll_runs_total")+`[1h]))`, "{{result}}", "A")).
		DrawStyle(common.GraphDrawStyleBars)
}

// PollRecords shows records returned by the latest poll of each feed.
func PollRecords() *timeseries.PanelBuilder {
	return timeSeries("Records per Feed", "Records returned by the most recent poll of each feed", HalfWidth).
		WithTarget(PromQuery(Sel("sdp_poll_records"), "{{query}}", "A")).
		Legend(TableLegend("last", "max")).
		Tooltip(MultiTooltip())
}
