package main

import (
	"log"

	"github.com/prometheus/client_golang/prometheus"
)

// PromExporter collects metrics in Prometheus format from a chat server.
type PromExporter struct {
	namespace string

	scraper *Scraper

	up              *prometheus.Desc
	roomsLive       *prometheus.Desc
	roomsTotal      *prometheus.Desc
	sessionsLive    *prometheus.Desc
	sessionsTotal   *prometheus.Desc
	eventsPublished *prometheus.Desc
	eventsDropped   *prometheus.Desc
	messagesIn      *prometheus.Desc
	messagesOut     *prometheus.Desc
	malloced        *prometheus.Desc
}

// NewPromExporter returns an initialized Prometheus exporter.
func NewPromExporter(namespace string, scraper *Scraper) *PromExporter {
	return &PromExporter{
		namespace: namespace,
		scraper:   scraper,
		up: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "up"),
			"If the server instance is reachable.",
			nil,
			nil,
		),
		roomsLive: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "rooms_live_count"),
			"Number of currently active fanout rooms.",
			nil,
			nil,
		),
		roomsTotal: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "rooms_total"),
			"Total number of rooms created during instance lifetime.",
			nil,
			nil,
		),
		sessionsLive: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "sessions_live_count"),
			"Number of currently active sessions.",
			nil,
			nil,
		),
		sessionsTotal: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "sessions_total"),
			"Total number of sessions since instance start.",
			nil,
			nil,
		),
		eventsPublished: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "events_published_total"),
			"Total number of fanout events accepted for delivery.",
			nil,
			nil,
		),
		eventsDropped: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "events_dropped_total"),
			"Total number of fanout events dropped before delivery.",
			nil,
			nil,
		),
		messagesIn: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "incoming_websock_messages_total"),
			"Total number of messages received over websocket.",
			nil,
			nil,
		),
		messagesOut: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "outgoing_websock_messages_total"),
			"Total number of messages sent over websocket.",
			nil,
			nil,
		),
		malloced: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "malloced_bytes"),
			"Number of bytes of memory allocated and in use.",
			nil,
			nil,
		),
	}
}

// Describe describes all the metrics exported by this exporter. It
// implements prometheus.Collector.
func (e *PromExporter) Describe(ch chan<- *prometheus.Desc) {
	ch <- e.up
	ch <- e.roomsLive
	ch <- e.roomsTotal
	ch <- e.sessionsLive
	ch <- e.sessionsTotal
	ch <- e.eventsPublished
	ch <- e.eventsDropped
	ch <- e.messagesIn
	ch <- e.messagesOut
	ch <- e.malloced
}

// Collect fetches statistics from the configured server instance, and
// delivers them as Prometheus metrics. It implements prometheus.Collector.
func (e *PromExporter) Collect(ch chan<- prometheus.Metric) {
	up := float64(1)
	if stats, err := e.scraper.Scrape(); err != nil {
		log.Println("Failed to fetch or parse response", err)
		up = 0
	} else {
		if err := e.parseStats(ch, stats); err != nil {
			up = 0
		}
	}

	ch <- prometheus.MustNewConstMetric(e.up, prometheus.GaugeValue, up)
}

func (e *PromExporter) parseStats(ch chan<- prometheus.Metric, stats map[string]interface{}) error {
	err := firstError(
		e.parseAndUpdate(ch, e.roomsLive, prometheus.GaugeValue, stats, "LiveRooms"),
		e.parseAndUpdate(ch, e.roomsTotal, prometheus.CounterValue, stats, "TotalRooms"),
		e.parseAndUpdate(ch, e.sessionsLive, prometheus.GaugeValue, stats, "LiveSessions"),
		e.parseAndUpdate(ch, e.sessionsTotal, prometheus.CounterValue, stats, "TotalSessions"),
		e.parseAndUpdate(ch, e.eventsPublished, prometheus.CounterValue, stats, "EventsPublishedTotal"),
		e.parseAndUpdate(ch, e.eventsDropped, prometheus.CounterValue, stats, "EventsDroppedTotal"),
		e.parseAndUpdate(ch, e.messagesIn, prometheus.CounterValue, stats, "IncomingMessagesWebsockTotal"),
		e.parseAndUpdate(ch, e.messagesOut, prometheus.CounterValue, stats, "OutgoingMessagesWebsockTotal"),
		e.parseAndUpdate(ch, e.malloced, prometheus.GaugeValue, stats, "memstats.Alloc"),
	)

	return err
}

func (e *PromExporter) parseAndUpdate(ch chan<- prometheus.Metric, desc *prometheus.Desc, valueType prometheus.ValueType,
	stats map[string]interface{}, key string) error {
	if v, err := parseMetric(stats, key); err == nil {
		ch <- prometheus.MustNewConstMetric(desc, valueType, v)
		return nil
	} else {
		return err
	}
}

func firstError(errs ...error) error {
	for _, v := range errs {
		if v != nil {
			return v
		}
	}
	return nil
}
