package analyzer

// Bounded lookahead windows for the text recognizers, in lines. Patterns
// spanning more than NestedScanWindow lines are deliberately not recognized:
// every recognizer is a local scan, and these constants pin how local.
// Changing any of them changes which inputs match.
const (
	// NestedScanWindow bounds the forward walk of the nested-loop scanner.
	NestedScanWindow = 20

	// RecursionBodyWindow bounds how far below a function definition the
	// recursion recognizers look for self-calls.
	RecursionBodyWindow = 15

	// FibShapeWindow bounds the search for n-1/n-2 argument shapes below a
	// recursive definition.
	FibShapeWindow = 10

	// LoopContextWindow bounds the inner-loop search below a loop header.
	LoopContextWindow = 8

	// NearContextWindow bounds the small symmetric context checks
	// (sorted-hint search, loop-body string operations).
	NearContextWindow = 5
)
