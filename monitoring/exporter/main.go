// Prometheus exporter: reads the chat server's expvar endpoint on each
// scrape and republishes the selected variables as prometheus metrics.
package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/version"
)

type promHTTPLogger struct{}

func (l promHTTPLogger) Println(v ...interface{}) {
	log.Println(v...)
}

func main() {
	log.Printf("Chat server metrics exporter.")

	var (
		serverAddr = flag.String("server_addr", "http://localhost:6060/debug/vars", "Address of the chat server instance to scrape.")
		listenAt   = flag.String("listen_at", ":6222", "Host name and port to listen for incoming requests on.")

		promNamespace   = flag.String("prom_namespace", "chat", "Prometheus namespace for metrics '<namespace>_...'")
		promMetricsPath = flag.String("prom_metrics_path", "/metrics", "Path under which to expose metrics for Prometheus scrapes.")
		promTimeout     = flag.Int("prom_timeout", 15, "Server connection timeout in seconds in response to Prometheus scrapes.")
	)
	flag.Parse()

	if *promMetricsPath == "/" {
		log.Fatal("Serving metrics from / is not supported")
	}

	// Index page at web root.
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><title>Chat Exporter</title></head><body>
<h1>Chat Exporter</h1>
<p>Prometheus exporter path: <a href='` + *promMetricsPath + `'>Metrics</a></p>
<h2>Build</h2>
<pre>` + version.Info() + ` ` + version.BuildContext() + `</pre>
</body></html>`))
	})

	scraper := Scraper{address: *serverAddr}

	promExporter := NewPromExporter(*promNamespace, &scraper)
	registry := prometheus.NewRegistry()
	registry.MustRegister(promExporter)
	http.Handle(*promMetricsPath,
		promhttp.InstrumentMetricHandler(
			registry,
			promhttp.HandlerFor(
				registry,
				promhttp.HandlerOpts{
					ErrorLog: &promHTTPLogger{},
					Timeout:  time.Duration(*promTimeout) * time.Second,
				},
			),
		),
	)

	log.Println("Reading expvar from", *serverAddr)
	log.Printf("Serving metrics at %s", *listenAt)
	log.Fatalln(http.ListenAndServe(*listenAt, nil))
}
