package transfer

import "stockledger/pkg/numerator"

const (
	// NumberPrefix for generated transfer numbers.
	NumberPrefix = "TRF"

	// NumeratorStrategy defines the numbering strategy for this document type.
	// Transfers are internal documents, gaps are acceptable.
	NumeratorStrategy = numerator.StrategyCached
)
