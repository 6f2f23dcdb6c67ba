package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	XivapiRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "xivapi_request_duration_seconds",
		Help:    "Duration of XIVAPI requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint", "status"})

	XivapiRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "xivapi_requests_total",
		Help: "Total number of XIVAPI requests",
	}, []string{"endpoint", "status"})

	ProfileLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "xivapi_bot_profile_lookups_total",
		Help: "Total number of character and Free Company lookups by outcome",
	}, []string{"kind", "outcome"})

	DiscordCommands = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "discord_commands_total",
		Help: "Total number of handled Discord slash commands",
	}, []string{"command", "status"})
)
