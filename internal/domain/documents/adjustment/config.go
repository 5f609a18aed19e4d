package adjustment

import "stockledger/pkg/numerator"

const (
	// NumberPrefix for generated adjustment numbers.
	NumberPrefix = "ADJ"

	// NumeratorStrategy defines the numbering strategy for this document type.
	// Adjustments are internal documents, gaps are acceptable.
	NumeratorStrategy = numerator.StrategyCached
)
