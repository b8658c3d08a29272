package engine

import "math"

// Level is the fixed level of every combatant.
const Level = 50

const (
	minRandomFactor  = 0.85
	randomFactorSpan = 0.15
)

// ComputeDamage applies the damage formula
//
//	floor(((2*level+10)/250 * atk/def * power + 2) * typeMultiplier * r)
//
// with r drawn uniformly from [0.85, 1.0]. Status moves never reach here.
func ComputeDamage(level int, attackStat, defenseStat float64, power int, typeMultiplier float64, rng Rand) (int, error) {
	if attackStat <= 0 || math.IsNaN(attackStat) {
		return 0, &InvalidStatError{Stat: "attack", Value: attackStat}
	}
	if defenseStat <= 0 || math.IsNaN(defenseStat) {
		return 0, &InvalidStatError{Stat: "defense", Value: defenseStat}
	}
	r := minRandomFactor + rng.Float64()*randomFactorSpan
	dmg := math.Floor(baseDamage(level, attackStat, defenseStat, power) * typeMultiplier * r)
	if dmg < 0 || math.IsNaN(dmg) {
		return 0, nil
	}
	return int(dmg), nil
}

func baseDamage(level int, attackStat, defenseStat float64, power int) float64 {
	return (float64(2*level+10)/250.0)*(attackStat/defenseStat)*float64(power) + 2
}
