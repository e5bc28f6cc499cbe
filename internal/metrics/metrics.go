package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TransactionsTotal counts transactions submitted to the chain by
	// operation and outcome (confirmed, reverted, failed, timeout)
	TransactionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kyc_transactions_total",
			Help: "Total number of transactions submitted to the chain",
		},
		[]string{"operation", "status"},
	)

	// ConfirmationDuration tracks submission-to-receipt time
	ConfirmationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kyc_transaction_confirmation_seconds",
			Help:    "Time from transaction submission to confirmed receipt",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// GasUsed tracks gas used by confirmed transactions
	GasUsed = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kyc_gas_used",
			Help:    "Gas used by confirmed transactions",
			Buckets: []float64{21000, 50000, 100000, 200000, 300000, 500000, 1000000},
		},
		[]string{"operation"},
	)

	// MaxPriorityFeeGwei tracks the buffered priority fee attached to transactions
	MaxPriorityFeeGwei = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "kyc_max_priority_fee_gwei",
			Help:    "Buffered priority fee attached to transactions in gwei",
			Buckets: []float64{1, 2, 5, 10, 20, 32, 50, 100, 200, 500},
		},
	)

	// ProvisioningsTotal counts identity provisioning runs by final status
	ProvisioningsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kyc_provisionings_total",
			Help: "Total number of identity provisioning runs",
		},
		[]string{"status"},
	)

	// ProvisioningFailures counts failed provisioning runs by the step they died in
	ProvisioningFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kyc_provisioning_failures_total",
			Help: "Provisioning runs that failed, by state machine step",
		},
		[]string{"step"},
	)

	// ProvisioningStepDuration tracks how long each provisioning step takes
	ProvisioningStepDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kyc_provisioning_step_seconds",
			Help:    "Duration of individual identity provisioning steps",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"step"},
	)

	// ClaimsIssued counts claims signed by the issuer credential
	ClaimsIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kyc_claims_issued_total",
			Help: "Total number of claims signed",
		},
	)

	// ClaimsSubmitted counts claims anchored on identity contracts
	ClaimsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kyc_claims_submitted_total",
			Help: "Total number of claims anchored on identity contracts",
		},
	)

	// VerificationChecks counts registry verification reads by result
	VerificationChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kyc_verification_checks_total",
			Help: "Total number of registry verification checks",
		},
		[]string{"result"},
	)

	// HTTPRequestsTotal counts API requests by route, method and response code
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kyc_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"route", "method", "code"},
	)

	// ErrorsTotal counts failed requests by service error category
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kyc_errors_total",
			Help: "Total number of failed requests by service error category",
		},
		[]string{"category"},
	)
)
