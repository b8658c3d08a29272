package game

// ElementType is the elemental type of a character or a move. The stock
// roster uses the values below, but configured catalogs may add others.
type ElementType string

const (
	TypeReasoning      ElementType = "reasoning"
	TypeConversational ElementType = "conversational"
	TypeCreative       ElementType = "creative"
	TypeMultimodal     ElementType = "multimodal"
	TypeEdgy           ElementType = "edgy"
	TypeOpenSource     ElementType = "opensource"
	TypeEfficient      ElementType = "efficient"
	TypeSpeed          ElementType = "speed"
)

// Category selects which stat pair a move uses.
type Category string

const (
	CategoryPhysical Category = "physical"
	CategorySpecial  Category = "special"
	CategoryStatus   Category = "status"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryPhysical, CategorySpecial, CategoryStatus:
		return true
	}
	return false
}

// EffectTag names a move side effect as authored in the catalog.
type EffectTag string

const (
	EffectNone            EffectTag = ""
	EffectPriority        EffectTag = "priority"
	EffectLowersAccuracy  EffectTag = "lowers_accuracy"
	EffectImmunityToxic   EffectTag = "immunity_toxic"
	EffectBoostsDefense   EffectTag = "boosts_defense"
	EffectRandomPower     EffectTag = "random_power"
	EffectDecreasingPower EffectTag = "decreasing_power"
	EffectTypeChange      EffectTag = "type_change"
	EffectStatBoostAll    EffectTag = "stat_boost_all"
	EffectClearStatus     EffectTag = "clear_status"
	EffectConfusion       EffectTag = "confusion"
	EffectStatusImmunity  EffectTag = "status_immunity"
	EffectRecoil          EffectTag = "recoil"
	EffectPowerIncrease   EffectTag = "power_increase"
	EffectLearnMove       EffectTag = "learn_move"
	EffectAdaptiveType    EffectTag = "adaptive_type"
	EffectReducedPPCost   EffectTag = "reduced_pp_cost"
	EffectPPRegeneration  EffectTag = "pp_regeneration"
	EffectMoveRestriction EffectTag = "move_restriction"
	EffectRandomFail      EffectTag = "random_fail"
	EffectRandomSwitch    EffectTag = "random_switch"
	EffectHighRisk        EffectTag = "high_risk"
	EffectSpeedBoost      EffectTag = "speed_boost"
)
