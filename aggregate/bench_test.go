package aggregate_test

import (
	"testing"

	"github.com/katalvlaran/pairsum/aggregate"
	"github.com/katalvlaran/pairsum/pairs"
)

// BenchmarkTotal measures the streaming path over the canonical range.
func BenchmarkTotal(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := aggregate.Total(pairs.DefaultBound); err != nil {
			b.Fatalf("Total failed: %v", err)
		}
	}
}

// BenchmarkSum measures the explicit path; enumeration is excluded.
func BenchmarkSum(b *testing.B) {
	ps, err := pairs.Enumerate(pairs.DefaultBound)
	if err != nil {
		b.Fatalf("Enumerate failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := aggregate.Sum(ps); err != nil {
			b.Fatalf("Sum failed: %v", err)
		}
	}
}
