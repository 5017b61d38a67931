// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/cog"
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/social-data-provider/tools/dashgen/panels"
)

// OverviewUID is the stable uid of the overview dashboard. Alert runbooks
// link to it.
const OverviewUID = "sdp-overview"

type row struct {
	title  string
	panels []cog.Builder[dashboard.Panel]
}

func overviewRows() []row {
	return []row{
		{"Overview", []cog.Builder[dashboard.Panel]{
			panels.HealthzStat(), panels.ReadyzStat(), panels.QuotaGauge(), panels.UptimeStat(),
		}},
		{"HTTP", []cog.Builder[dashboard.Panel]{
			panels.RequestRate(), panels.LatencyPercentiles(), panels.ErrorRate(), panels.InFlight(), panels.Panics(),
		}},
		{"Graph API", []cog.Builder[dashboard.Panel]{
			panels.APICallsRate(), panels.QuotaUsage(), panels.APIErrors(), panels.LimitHits(),
		}},
		{"Feeds", []cog.Builder[dashboard.Panel]{
			panels.RecordsRate(), panels.FetchErrors(), panels.FetchDuration(),
		}},
		{"Session & Publishing", []cog.Builder[dashboard.Panel]{
			panels.LoginAttempts(), panels.Posts(), panels.NotificationFailures(),
		}},
		{"Poller", []cog.Builder[dashboard.Panel]{
			panels.NextPoll(), panels.PollRuns(), panels.PollRecords(),
		}},
	}
}

// BuildOverview returns the service overview dashboard: one row per
// subsystem, all queries against the ${datasource} variable.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("SDP Overview").
		Uid(OverviewUID).
		Tags([]string{"sdp", "social-data-provider", "facebook"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(dashboard.NewDatasourceVariableBuilder("datasource").
			Label("Datasource").
			Type("prometheus"))

	for _, r := range overviewRows() {
		rb := dashboard.NewRowBuilder(r.title)
		for _, p := range r.panels {
			rb.WithPanel(p)
		}
		b.WithRow(rb)
	}
	return b
}
