package budget

import (
	"math"
	"testing"

	"github.com/mvickers/sugarcap/internal/model"
)

// normalProfile has BMI exactly 22: 88kg at 2.00m.
func normalProfile() model.Profile {
	return model.Profile{
		Sex:      model.SexFemale,
		Age:      30,
		HeightCm: 200,
		WeightKg: 88, // BMI = 88 / 2^2 = 22.0
		Activity: model.ActivityModerate,
	}
}

func TestComputeBaseLimit_AllFactorsNeutral(t *testing.T) {
	c := Defaults()
	res := ComputeBaseLimit(normalProfile(), c)

	// BMI 22, age 30, moderate, no ethnicity opt-in: every factor is 1,
	// so the limit is the clamped, rounded sex base.
	want := int(math.Round(clamp(c.BaseFemaleG, c.ClampMinG, c.ClampMaxG)))
	if res.TotalG != want {
		t.Errorf("TotalG = %d, want %d", res.TotalG, want)
	}
	if res.BMI != 22.0 {
		t.Errorf("BMI = %v, want 22.0", res.BMI)
	}
	for _, key := range []string{
		model.FactorBMI, model.FactorPancreas, model.FactorAge,
		model.FactorActivity, model.FactorEthnicity,
	} {
		if res.Breakdown[key] != 1 {
			t.Errorf("Breakdown[%s] = %v, want 1", key, res.Breakdown[key])
		}
	}
}

func TestComputeBaseLimit_BMIBands(t *testing.T) {
	c := Defaults()
	tests := []struct {
		name     string
		weightKg float64 // at 2m height: BMI = weight/4
		want     float64
	}{
		{"underweight", 70, c.BMIUnderweight}, // BMI 17.5
		{"normal low edge", 74, 1},            // BMI 18.5
		{"normal", 88, 1},                     // BMI 22
		{"overweight edge", 100, c.BMIOverweight}, // BMI 25
		{"overweight", 112, c.BMIOverweight},      // BMI 28
		{"obese edge", 120, c.BMIObese},           // BMI 30
		{"obese", 140, c.BMIObese},                // BMI 35
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := normalProfile()
			p.WeightKg = tt.weightKg
			res := ComputeBaseLimit(p, c)
			if got := res.Breakdown[model.FactorBMI]; got != round2(tt.want) {
				t.Errorf("bmi factor = %v, want %v", got, round2(tt.want))
			}
		})
	}
}

func TestComputeBaseLimit_AgeBands(t *testing.T) {
	c := Defaults()
	tests := []struct {
		age  int
		want float64
	}{
		{10, c.AgeChild},
		{17, c.AgeChild},
		{18, 1},
		{44, 1},
		{45, c.AgeMiddle},
		{59, c.AgeMiddle},
		{60, c.AgeSenior},
		{80, c.AgeSenior},
	}

	for _, tt := range tests {
		p := normalProfile()
		p.Age = tt.age
		res := ComputeBaseLimit(p, c)
		if got := res.Breakdown[model.FactorAge]; got != round2(tt.want) {
			t.Errorf("age %d: factor = %v, want %v", tt.age, got, round2(tt.want))
		}
	}
}

func TestPancreasFactor_AlwaysWithinHardBounds(t *testing.T) {
	// Extreme table values must still produce a factor in [0.8, 1.1].
	c := Defaults()
	c.PancreasYouth = 5
	c.PancreasSenior = 0.01
	c.BMIObese = 0.01

	for _, age := range []int{5, 19, 20, 39, 40, 59, 60, 90} {
		for _, bmi := range []float64{15, 22, 27, 35} {
			f := pancreasCapacityFactor(age, bmi, c)
			if f < pancreasFloor || f > pancreasCeiling {
				t.Errorf("pancreas factor for age=%d bmi=%v = %v, outside [%v, %v]",
					age, bmi, f, pancreasFloor, pancreasCeiling)
			}
		}
	}
}

func TestPancreasFactor_UnderweightDoesNotApply(t *testing.T) {
	c := Defaults()
	// BMI 15 is underweight, but the pancreas factor only reuses the
	// overweight/obese bands.
	if f := pancreasCapacityFactor(30, 15, c); f != 1 {
		t.Errorf("pancreas factor for normal-age underweight = %v, want 1", f)
	}
}

func TestComputeBaseLimit_ActivityBands(t *testing.T) {
	c := Defaults()
	tests := []struct {
		level model.ActivityLevel
		want  float64
	}{
		{model.ActivityLow, c.ActivityLow},
		{model.ActivityModerate, 1},
		{model.ActivityHigh, c.ActivityHigh},
	}

	for _, tt := range tests {
		p := normalProfile()
		p.Activity = tt.level
		res := ComputeBaseLimit(p, c)
		if got := res.Breakdown[model.FactorActivity]; got != round2(tt.want) {
			t.Errorf("activity %s: factor = %v, want %v", tt.level, got, round2(tt.want))
		}
	}
}

func TestComputeBaseLimit_ClampBounds(t *testing.T) {
	c := Defaults()
	c.BaseFemaleG = 500
	res := ComputeBaseLimit(normalProfile(), c)
	if res.TotalG != int(c.ClampMaxG) {
		t.Errorf("TotalG = %d, want clamped to %v", res.TotalG, c.ClampMaxG)
	}

	c.BaseFemaleG = 1
	res = ComputeBaseLimit(normalProfile(), c)
	if res.TotalG != int(c.ClampMinG) {
		t.Errorf("TotalG = %d, want clamped to %v", res.TotalG, c.ClampMinG)
	}
}

func TestComputeBaseLimit_Deterministic(t *testing.T) {
	c := Defaults()
	p := model.Profile{
		Sex: model.SexMale, Age: 52, HeightCm: 175, WeightKg: 92,
		Activity: model.ActivityHigh, Ethnicity: "South Asian", EthnicityAdjust: true,
	}
	first := ComputeBaseLimit(p, c)
	for i := 0; i < 10; i++ {
		if got := ComputeBaseLimit(p, c); got.TotalG != first.TotalG {
			t.Fatalf("run %d: TotalG = %d, want %d", i, got.TotalG, first.TotalG)
		}
	}
}

func TestComputeBMI_UndefinedForNonPositiveInputs(t *testing.T) {
	if v := computeBMI(0, 170); !math.IsNaN(v) {
		t.Errorf("computeBMI(0, 170) = %v, want NaN", v)
	}
	if v := computeBMI(70, 0); !math.IsNaN(v) {
		t.Errorf("computeBMI(70, 0) = %v, want NaN", v)
	}
}

func TestEthnicityFactor(t *testing.T) {
	c := Defaults()
	tests := []struct {
		label string
		want  float64
	}{
		{"Indian", c.EthnicitySouthAsian},
		{"SOUTH ASIAN", c.EthnicitySouthAsian},
		{"japanese", c.EthnicityEastAsian},
		{"Hispanic/Latino", c.EthnicityHispanic},
		{"Black Caribbean", c.EthnicityAfrican},
		{"Scandinavian", 1},
		{"", 1},
	}

	for _, tt := range tests {
		if got := ethnicityGroupFactor(tt.label, c); got != tt.want {
			t.Errorf("ethnicityGroupFactor(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}

func TestEthnicityFactor_FirstMatchWins(t *testing.T) {
	c := Defaults()
	// Matches both the South Asian and East Asian groups; the South Asian
	// group is evaluated first.
	if got := ethnicityGroupFactor("Indian-Chinese", c); got != c.EthnicitySouthAsian {
		t.Errorf("factor = %v, want south asian %v", got, c.EthnicitySouthAsian)
	}
}

func TestEthnicityFactor_RequiresOptIn(t *testing.T) {
	c := Defaults()
	p := normalProfile()
	p.Ethnicity = "South Asian"
	p.EthnicityAdjust = false
	res := ComputeBaseLimit(p, c)
	if got := res.Breakdown[model.FactorEthnicity]; got != 1 {
		t.Errorf("ethnicity factor without opt-in = %v, want 1", got)
	}
}
