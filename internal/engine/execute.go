package engine

// executePlans runs the ordered actions. The second one is skipped once the
// battle is over or its actor was knocked out by the first.
func (tc *turnContext) executePlans(plans [2]plannedAction) (ActionResult, *ActionResult, error) {
	first, err := tc.execAction(plans[0])
	if err != nil {
		return ActionResult{}, nil, err
	}
	if tc.b.status != BattleActive || plans[0].target.Fainted() {
		return first, nil, nil
	}
	second, err := tc.execAction(plans[1])
	if err != nil {
		return ActionResult{}, nil, err
	}
	return first, &second, nil
}
