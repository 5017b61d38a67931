package rules

const (
	severityCritical = "critical"
	severityWarning  = "warning"
)

// AlertRules returns a PrometheusRule CR containing alert rules for
// social-data-provider operational monitoring.
func AlertRules() PrometheusRule {
	return newPrometheusRule("sdp-alerts", RuleGroup{
		Name: "sdp-alerts",
		Rules: []Rule{
			alert("SdpDown",
				`absent(up{job="social-data-provider"})`, "2m", severityCritical,
				"Social Data Provider is down",
				"The social-data-provider job has been absent for more than 2 minutes."),
			alert("SdpReadinessDown",
				`sdp_readyz_up == 0`, "2m", severityCritical,
				"Social Data Provider readiness check is failing",
				"The provider has not been initialized with credentials for more than 2 minutes."),
			alert("SdpHighErrorRate",
				`sdp:http_errors:rate5m / sdp:http_requests:rate5m > 0.05`, "5m", severityWarning,
				"High HTTP error rate on Social Data Provider",
				"More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes."),
			alert("SdpGraphErrors",
				`sdp:graph_api_errors:rate5m / sdp:graph_api_calls:rate5m > 0.1`, "5m", severityWarning,
				"Graph API error rate is elevated",
				"More than 10% of Graph API calls have failed over the last 5 minutes."),
			alert("SdpLoginRejected",
				`increase(sdp_login_attempts_total{result="rejected"}[15m]) > 0`, "0m", severityWarning,
				"Graph API login was rejected",
				"The configured credentials were rejected or lack a requested permission."),
			alert("SdpPollFailures",
				`sdp:poll_failures:rate5m > 0`, "15m", severityWarning,
				"Feed polls are failing",
				"Scheduled feed polls have been failing for more than 15 minutes."),
			alert("SdpGraphQuotaHigh",
				`sdp_graph_quota_usage > 160`, "5m", severityWarning,
				"Graph API usage is above 80% of the quota",
				"Graph API calls in the current window exceed 160 (default quota is 200)."),
			alert("SdpGraphQuotaExhausted",
				`increase(sdp_graph_quota_limit_hits_total[5m]) > 0`, "0m", severityCritical,
				"Graph API call quota has been exhausted",
				"Fetches and posts fail until the quota window resets."),
			alert("SdpNotificationFailures",
				`increase(sdp_notification_failures_total[5m]) > 0`, "1m", severityWarning,
				"Notification delivery failures detected",
				"One or more post notifications (Discord webhooks) have failed to send."),
		},
	})
}
