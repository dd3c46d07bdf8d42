package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat/distuv"
)

// LogGamma agrees with the standard library's Lgamma across positive
// arguments, including the reflection branch below 0.5.
func TestLogGamma_AgainstStdlib(t *testing.T) {
	inputs := []float64{0.01, 0.1, 0.25, 0.49, 0.5, 0.75, 1, 1.5, 2, 2.5, 3.5, 10, 50.5, 171}
	for _, x := range inputs {
		want, _ := math.Lgamma(x)
		assert.InDelta(t, want, LogGamma(x), 1e-9, "x=%v", x)
	}
}

func TestLogGamma_KnownValues(t *testing.T) {
	// Gamma(1) = Gamma(2) = 1, Gamma(0.5) = sqrt(pi).
	assert.InDelta(t, 0, LogGamma(1), 1e-12)
	assert.InDelta(t, 0, LogGamma(2), 1e-12)
	assert.InDelta(t, 0.5*math.Log(math.Pi), LogGamma(0.5), 1e-10)
}

func TestRegularizedIncompleteBeta_Boundaries(t *testing.T) {
	assert.Equal(t, 0.0, RegularizedIncompleteBeta(0, 2, 3))
	assert.Equal(t, 1.0, RegularizedIncompleteBeta(1, 2, 3))
	assert.Equal(t, 0.0, RegularizedIncompleteBeta(-0.5, 2, 3))
	assert.Equal(t, 1.0, RegularizedIncompleteBeta(1.5, 2, 3))
}

func TestRegularizedIncompleteBeta_KnownValues(t *testing.T) {
	// I_x(1,1) is the identity.
	for _, x := range []float64{0.1, 0.25, 0.5, 0.9} {
		assert.InDelta(t, x, RegularizedIncompleteBeta(x, 1, 1), 1e-10)
	}

	// Arcsine distribution: I_x(1/2,1/2) = (2/pi) asin(sqrt(x)).
	for _, x := range []float64{0.012195121951219513, 0.2, 0.5, 0.8} {
		want := 2 / math.Pi * math.Asin(math.Sqrt(x))
		assert.InDelta(t, want, RegularizedIncompleteBeta(x, 0.5, 0.5), 1e-9, "x=%v", x)
	}
}

// Cross-check against gonum's Beta CDF on a grid of shapes and x.
func TestRegularizedIncompleteBeta_AgainstGonum(t *testing.T) {
	shapes := []struct{ a, b float64 }{
		{0.5, 0.5}, {1, 3}, {2, 2}, {2.5, 0.5}, {5, 1}, {10, 10}, {60.5, 0.5},
	}
	for _, s := range shapes {
		dist := distuv.Beta{Alpha: s.a, Beta: s.b}
		for x := 0.05; x < 1; x += 0.05 {
			assert.InDelta(t, dist.CDF(x), RegularizedIncompleteBeta(x, s.a, s.b), 1e-8,
				"a=%v b=%v x=%v", s.a, s.b, x)
		}
	}
}

// I_x(a,b) + I_{1-x}(b,a) = 1 for x in (0,1) and a,b > 0.
func TestRegularizedIncompleteBeta_Symmetry(t *testing.T) {
	shapes := []struct{ a, b float64 }{
		{0.5, 0.5}, {1, 1}, {2, 5}, {7.5, 0.5}, {3, 3}, {0.25, 4},
	}
	for _, s := range shapes {
		for x := 0.01; x < 1; x += 0.07 {
			sum := RegularizedIncompleteBeta(x, s.a, s.b) +
				RegularizedIncompleteBeta(1-x, s.b, s.a)
			assert.InDelta(t, 1, sum, 1e-8, "a=%v b=%v x=%v", s.a, s.b, x)
		}
	}
}

// For fixed a,b the function is non-decreasing in x.
func TestRegularizedIncompleteBeta_Monotonic(t *testing.T) {
	shapes := []struct{ a, b float64 }{
		{0.5, 0.5}, {2, 3}, {10, 2}, {0.5, 8},
	}
	for _, s := range shapes {
		prev := 0.0
		for x := 0.0; x <= 1.0; x += 0.01 {
			cur := RegularizedIncompleteBeta(x, s.a, s.b)
			assert.GreaterOrEqual(t, cur+1e-12, prev, "a=%v b=%v x=%v", s.a, s.b, x)
			assert.True(t, cur >= 0 && cur <= 1)
			prev = cur
		}
	}
}
