package sale

import "stockledger/pkg/numerator"

const (
	// NumberPrefix for generated sale numbers.
	NumberPrefix = "SAL"

	// NumeratorStrategy defines the numbering strategy for this document type.
	// Sale is a primary accounting document, so we use Strict strategy.
	NumeratorStrategy = numerator.StrategyStrict
)
