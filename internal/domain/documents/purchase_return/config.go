package purchase_return

import "stockledger/pkg/numerator"

const (
	// NumberPrefix for generated purchase return numbers.
	NumberPrefix = "PRN"

	// NumeratorStrategy defines the numbering strategy for this document type.
	NumeratorStrategy = numerator.StrategyStrict
)
