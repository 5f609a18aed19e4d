package sale_return

import "stockledger/pkg/numerator"

const (
	// NumberPrefix for generated sale return numbers.
	NumberPrefix = "SRN"

	// NumeratorStrategy defines the numbering strategy for this document type.
	NumeratorStrategy = numerator.StrategyStrict
)
