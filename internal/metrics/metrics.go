package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for prediction requests.
const (
	OutcomeOK           = "ok"
	OutcomeMissingFile  = "missing_file"
	OutcomeInvalidImage = "invalid_image"
	OutcomePredictError = "predict_error"
)

var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "prediction_requests_total",
		Help: "Prediction requests by outcome.",
	},
	[]string{"outcome"},
)

func CountRequest(outcome string) {
	requestsTotal.WithLabelValues(outcome).Inc()
}

// Handler serves the Prometheus exposition endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
