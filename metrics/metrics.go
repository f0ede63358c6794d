package metrics

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	opmetrics "github.com/ethereum-optimism/optimism/op-service/metrics"
)

const (
	MetricsNamespace = "smoke"

	ResultPass = "pass"
	ResultFail = "fail"
)

var (
	Debug                bool = true
	nonAlphanumericRegex      = regexp.MustCompile(`[^a-zA-Z ]+`)

	// Registry holds every smoke test metric and is served by the metrics server.
	Registry = opmetrics.NewRegistry()
	factory  = promauto.With(Registry)

	errorsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "errors_total",
		Help:      "Count of errors",
	}, []string{
		"error",
	})

	checksTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "checks_total",
		Help:      "Count of checks by result",
	}, []string{
		"environment",
		"suite",
		"group",
		"result",
	})

	runsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "runs_total",
		Help:      "Count of smoke test runs by result",
	}, []string{
		"environment",
		"result",
	})

	runDuration = factory.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Name:      "run_duration_seconds",
		Help:      "Duration of the last smoke test run",
	}, []string{
		"environment",
	})

	lastRunSuccess = factory.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Name:      "last_run_success",
		Help:      "1 if every check of the last run passed, 0 otherwise",
	}, []string{
		"environment",
	})
)

// errToLabel tries to make the error string a more valid Prometheus label
func errToLabel(err error) string {
	if err == nil {
		return "nil"
	}
	errClean := nonAlphanumericRegex.ReplaceAllString(err.Error(), "")
	errClean = strings.ReplaceAll(errClean, " ", "_")
	errClean = strings.ReplaceAll(errClean, "__", "_")
	return errClean
}

func RecordError(error string) {
	if Debug {
		log.Debug("metric inc",
			"m", "errors_total",
			"error", error,
		)
	}
	errorsTotal.WithLabelValues(error).Inc()
}

// RecordErrorDetails concats the error message to the label
// and also tries to clean the label to be a valid Prometheus label
func RecordErrorDetails(label string, err error) {
	if err == nil {
		return
	}
	label = fmt.Sprintf("%s.%s", label, errToLabel(err))
	RecordError(label)
}

// RecordChecks adds the outcome of a group's checks.
func RecordChecks(environment string, suite string, group string, passed int, failed int) {
	if Debug {
		log.Debug("metric inc",
			"m", "checks_total",
			"environment", environment,
			"suite", suite,
			"group", group,
			"passed", passed,
			"failed", failed)
	}
	checksTotal.WithLabelValues(environment, suite, group, ResultPass).Add(float64(passed))
	checksTotal.WithLabelValues(environment, suite, group, ResultFail).Add(float64(failed))
}

// RecordRun records the outcome of a whole run.
func RecordRun(environment string, success bool, duration time.Duration) {
	result := ResultFail
	successValue := 0.0
	if success {
		result = ResultPass
		successValue = 1
	}
	runsTotal.WithLabelValues(environment, result).Inc()
	runDuration.WithLabelValues(environment).Set(duration.Seconds())
	lastRunSuccess.WithLabelValues(environment).Set(successValue)
}
