package mcpserver

// Tool descriptions with interpretation guidance for LLMs.
// Each description explains what the tool does, when to use it,
// and how to interpret results.

func describeComplexity() string {
	return `Estimates Big-O time complexity of source code using structural heuristics (no AST parsing).

USE WHEN:
- Triaging a codebase for algorithmic hot spots before profiling
- Reviewing a diff for accidentally quadratic loops
- Teaching or explaining complexity concepts with concrete code

INTERPRETING RESULTS:
- overall.time: dominant estimated growth (O(1) through O(2^n))
- overall.score: 0-100 efficiency score; below 60 means a costly pattern dominates
- patterns: detected regions (loop, nested, recursion, algorithm) with line spans
- Nested depth 3+ is flagged high impact; exponential recursion scores 60 or less
- Estimates are heuristic: line-based scanning, not semantic analysis

INPUT:
- paths: files or directories to scan, or
- code: a snippet to analyze directly (lang hint optional)`
}

func describeSuggest() string {
	return `Suggests concrete optimizations for inefficient code patterns, with code examples.

USE WHEN:
- A complexity analysis surfaced a low-scoring file
- Looking for drop-in improvements: hash maps over linear scans, memoization, better sorts

INTERPRETING RESULTS:
- Each suggestion has a line anchor, priority (high/medium/low), and usually an example
- high: asymptotic improvement available (nested scan to hash map, exponential recursion)
- medium: significant constant-factor or structural win (string builders, deques)
- low: situational improvements (two-pointer, cache locality)

INPUT:
- paths or code, plus an optional minimum severity filter`
}

func describeLanguages() string {
	return `Lists the languages the estimator recognizes, with their file extensions.

USE WHEN:
- Checking whether a file will be analyzed or skipped
- Choosing a lang hint for snippet analysis`
}
