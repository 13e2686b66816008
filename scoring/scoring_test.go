package scoring

import (
	"math/rand"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

func TestCalculator_Score_DefaultWeights(t *testing.T) {
	calc := NewCalculator(nil)

	result := calc.Score([]ClientRequest{
		{ClientTier: "enterprise", RequestCount: 2},
		{ClientTier: "starter", RequestCount: 5},
	})

	if result.WeightedScore != 11 {
		t.Errorf("WeightedScore = %d, want 11 (2*3 + 5*1)", result.WeightedScore)
	}
	if result.TotalRequests != 7 {
		t.Errorf("TotalRequests = %d, want 7", result.TotalRequests)
	}
	if stat := result.Breakdown["enterprise"]; stat.Requests != 2 || stat.Weight != 3 {
		t.Errorf("enterprise breakdown = %+v, want {2 3}", stat)
	}
	if stat := result.Breakdown["starter"]; stat.Requests != 5 || stat.Weight != 1 {
		t.Errorf("starter breakdown = %+v, want {5 1}", stat)
	}
}

func TestCalculator_TierWeight(t *testing.T) {
	calc := NewCalculator(nil)

	cases := []struct {
		tier string
		want int
	}{
		{"enterprise", 3},
		{"Enterprise", 3},
		{"  PROFESSIONAL ", 2},
		{"starter", 1},
		{"small business", 1}, // неизвестный уровень
		{"", 1},
	}
	for _, tc := range cases {
		if got := calc.TierWeight(tc.tier); got != tc.want {
			t.Errorf("TierWeight(%q) = %d, want %d", tc.tier, got, tc.want)
		}
	}
}

func TestCalculator_TierWeight_CustomTable(t *testing.T) {
	calc := NewCalculator(map[string]int{"Small Business": 4, "enterprise": 7})

	if got := calc.TierWeight("small  business"); got != 4 {
		t.Errorf("TierWeight(small business) = %d, want 4", got)
	}
	if got := calc.TierWeight("enterprise"); got != 7 {
		t.Errorf("TierWeight(enterprise) = %d, want 7", got)
	}
	if got := calc.TierWeight("professional"); got != 1 {
		t.Errorf("TierWeight(professional) = %d, want 1 for tier absent from custom table", got)
	}
}

// Скор не зависит от порядка запросов: проверяем на случайных мультимножествах.
func TestCalculator_Score_PermutationInvariant(t *testing.T) {
	gofakeit.Seed(11)
	rng := rand.New(rand.NewSource(11))
	tiers := []string{"enterprise", "professional", "starter", "trial", "Small Business"}
	calc := NewCalculator(nil)

	for trial := 0; trial < 50; trial++ {
		requests := make([]ClientRequest, rng.Intn(20)+1)
		for i := range requests {
			requests[i] = ClientRequest{
				ClientTier:   tiers[rng.Intn(len(tiers))],
				RequestCount: rng.Intn(5) + 1,
				ClientName:   gofakeit.Company(),
			}
		}

		want := calc.Score(requests)

		shuffled := append([]ClientRequest(nil), requests...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		got := calc.Score(shuffled)

		if got.WeightedScore != want.WeightedScore || got.TotalRequests != want.TotalRequests {
			t.Fatalf("score changed under permutation: got %+v, want %+v", got, want)
		}
		for tier, stat := range want.Breakdown {
			if got.Breakdown[tier] != stat {
				t.Fatalf("breakdown for %s changed under permutation: got %+v, want %+v", tier, got.Breakdown[tier], stat)
			}
		}
	}
}

func TestCalculator_Score_Empty(t *testing.T) {
	result := NewCalculator(nil).Score(nil)
	if result.WeightedScore != 0 || result.TotalRequests != 0 || len(result.Breakdown) != 0 {
		t.Errorf("empty request set must score zero, got %+v", result)
	}
}

func TestCountBased(t *testing.T) {
	result := CountBased(3)
	if result.WeightedScore != 3 || result.TotalRequests != 3 {
		t.Errorf("CountBased(3) = %+v, want score=3 total=3", result)
	}
	stat, ok := result.Breakdown["professional"]
	if !ok || stat.Requests != 3 || stat.Weight != 1 {
		t.Errorf("CountBased(3) breakdown = %+v, want professional {3 1}", result.Breakdown)
	}

	if b := CountBased(0).Breakdown; b != nil {
		t.Errorf("CountBased(0) breakdown = %+v, want nil", b)
	}
}
