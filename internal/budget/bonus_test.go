package budget

import "testing"

func TestComputeActivityBonus_EnergyThreshold(t *testing.T) {
	tests := []struct {
		kcal float64
		want int
	}{
		{0, 0},
		{99, 0},   // below the noise threshold
		{100, 5},  // 100/10 * 0.5
		{250, 13}, // 12.5 rounds to 13
		{400, 20},
		{1000, 20}, // raw 50 capped to the 20g day cap
	}

	for _, tt := range tests {
		res := ComputeActivityBonus(tt.kcal, nil)
		if res.GrantedG != tt.want {
			t.Errorf("kcal=%v: GrantedG = %d, want %d", tt.kcal, res.GrantedG, tt.want)
		}
	}
}

func TestComputeActivityBonus_WeeklyHeadroom(t *testing.T) {
	// 58g already granted this week; today's 20g day-capped bonus is
	// reduced to the 2g of remaining headroom.
	prior := []int{10, 10, 10, 10, 10, 8}
	res := ComputeActivityBonus(1000, prior)
	if res.GrantedG != 2 {
		t.Errorf("GrantedG = %d, want 2", res.GrantedG)
	}
	if res.WeeklyRemainingG != 0 {
		t.Errorf("WeeklyRemainingG = %d, want 0", res.WeeklyRemainingG)
	}
}

func TestComputeActivityBonus_WeekExhausted(t *testing.T) {
	prior := []int{20, 20, 20, 0, 0, 0}
	res := ComputeActivityBonus(500, prior)
	if res.GrantedG != 0 {
		t.Errorf("GrantedG = %d, want 0", res.GrantedG)
	}
}

func TestComputeActivityBonus_OverCountedPriorWeek(t *testing.T) {
	// Prior grants above the cap (e.g. after a manual table edit) must not
	// produce negative headroom.
	prior := []int{20, 20, 20, 20, 0, 0}
	res := ComputeActivityBonus(1000, prior)
	if res.GrantedG != 0 {
		t.Errorf("GrantedG = %d, want 0", res.GrantedG)
	}
	if res.WeeklyRemainingG != 0 {
		t.Errorf("WeeklyRemainingG = %d, want 0", res.WeeklyRemainingG)
	}
}

func TestComputeActivityBonus_Remaining(t *testing.T) {
	res := ComputeActivityBonus(200, []int{5, 5, 0, 0, 0, 0})
	// headroom 50, raw bonus 10, granted 10, remaining 40
	if res.GrantedG != 10 {
		t.Errorf("GrantedG = %d, want 10", res.GrantedG)
	}
	if res.WeeklyRemainingG != 40 {
		t.Errorf("WeeklyRemainingG = %d, want 40", res.WeeklyRemainingG)
	}
}

func TestApplyDailyCap(t *testing.T) {
	tests := []struct {
		base, bonus, want int
	}{
		{30, 0, 30},
		{30, 5, 35},
		{30, 9, 39},  // ceiling = round(39) = 39, exactly at cap
		{30, 10, 39}, // capped
		{30, 20, 39},
		{25, 20, 33}, // round(32.5) = 33 (half away from zero)
		{0, 20, 0},
	}

	for _, tt := range tests {
		if got := ApplyDailyCap(tt.base, tt.bonus); got != tt.want {
			t.Errorf("ApplyDailyCap(%d, %d) = %d, want %d", tt.base, tt.bonus, got, tt.want)
		}
	}
}

func TestApplyDailyCap_NeverBelowBase(t *testing.T) {
	for base := 10; base <= 60; base++ {
		for bonus := 0; bonus <= 20; bonus++ {
			got := ApplyDailyCap(base, bonus)
			if got < base {
				t.Fatalf("ApplyDailyCap(%d, %d) = %d, below base", base, bonus, got)
			}
			ceiling := (base*13 + 5) / 10 // round(base*1.3) for integer base
			if got > ceiling {
				t.Fatalf("ApplyDailyCap(%d, %d) = %d, above ceiling %d", base, bonus, got, ceiling)
			}
		}
	}
}
