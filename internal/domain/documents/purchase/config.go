package purchase

import "stockledger/pkg/numerator"

const (
	// NumberPrefix for generated purchase numbers.
	NumberPrefix = "PUR"

	// NumeratorStrategy defines the numbering strategy for this document type.
	NumeratorStrategy = numerator.StrategyStrict
)
