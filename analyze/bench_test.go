package analyze_test

import (
	"testing"

	"github.com/markovlab/stochain/analyze"
	"github.com/markovlab/stochain/vecmat"
)

// ring builds an n-state lazy ring chain (stay 0.5, advance 0.5),
// irreducible and aperiodic so Stationary always converges.
func ring(n int) vecmat.Matrix {
	m := make(vecmat.Matrix, n)
	for i := range m {
		m[i] = make(vecmat.Vector, n)
		m[i][i] = 0.5
		m[i][(i+1)%n] = 0.5
	}

	return m
}

func benchmarkStationary(b *testing.B, n int) {
	P := ring(n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := analyze.Stationary(P); err != nil {
			b.Fatalf("Stationary failed: %v", err)
		}
	}
}

// BenchmarkStationary_Small solves a 10-state ring.
func BenchmarkStationary_Small(b *testing.B) { benchmarkStationary(b, 10) }

// BenchmarkStationary_Medium solves a 50-state ring.
func BenchmarkStationary_Medium(b *testing.B) { benchmarkStationary(b, 50) }

// BenchmarkAbsorbing scans a 100-state identity matrix, the worst case
// (every row passes the full identity-row comparison).
func BenchmarkAbsorbing(b *testing.B) {
	P := vecmat.Identity(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := analyze.Absorbing(P); err != nil {
			b.Fatalf("Absorbing failed: %v", err)
		}
	}
}
