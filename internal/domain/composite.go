package domain

import "fmt"

// CheckResult reports whether a value is composite together with a
// human-readable explanation. Negative outcomes (too small, prime) are ordinary
// results, not errors.
type CheckResult struct {
	Composite   bool
	Explanation string
}

// CheckComposite decides whether n can be written as a product of two integers
// each greater than 1.
//
// Values of 3 or less are folded into a single "not eligible" bucket: the
// smallest composite product is 2 × 2 = 4, so 0, 1, negatives, and the primes
// 2 and 3 all share the same answer. Otherwise candidate divisors are scanned
// from 2 upward while i*i <= n; the first hit yields the smallest factor pair.
// Pure and deterministic, O(√n).
func CheckComposite(n int64) CheckResult {
	if n <= 3 {
		return CheckResult{
			Composite:   false,
			Explanation: fmt.Sprintf("%d is not eligible: the check requires an integer greater than 3 (smallest composite is 2 × 2 = 4)", n),
		}
	}
	for i := int64(2); i*i <= n; i++ {
		if n%i == 0 {
			return CheckResult{
				Composite:   true,
				Explanation: fmt.Sprintf("%d = %d × %d", n, i, n/i),
			}
		}
	}
	return CheckResult{
		Composite:   false,
		Explanation: fmt.Sprintf("%d is prime", n),
	}
}

// Verdict renders the result as YES/NO plus the explanation, the form used in
// command outputs.
func (r CheckResult) Verdict() string {
	if r.Composite {
		return "YES: " + r.Explanation
	}
	return "NO: " + r.Explanation
}
