package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for FlowTotal.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeError   = "error"
)

// FlowTotal counts auth flow completions by flow and outcome. "failure" is
// an expected business rejection, "error" an internal fault.
var FlowTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "yatri_auth_flow_total",
		Help: "Total number of auth flow invocations by outcome",
	},
	[]string{"flow", "outcome"},
)

// OTPDeliveries counts OTP email delivery attempts.
var OTPDeliveries = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "yatri_auth_otp_deliveries_total",
		Help: "Total number of OTP delivery attempts by outcome",
	},
	[]string{"outcome"},
)

// RegisterMetrics registers the usecase metrics with reg. Panics on
// duplicate registration, following prometheus convention.
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(FlowTotal)
	reg.MustRegister(OTPDeliveries)
}

func recordFlow(flow string, err error) {
	FlowTotal.WithLabelValues(flow, outcomeOf(err)).Inc()
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case isInternal(err):
		return OutcomeError
	default:
		return OutcomeFailure
	}
}

func recordDelivery(delivered bool) {
	if delivered {
		OTPDeliveries.WithLabelValues(OutcomeSuccess).Inc()
		return
	}
	OTPDeliveries.WithLabelValues(OutcomeFailure).Inc()
}
