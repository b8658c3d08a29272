package engine

// ResolveTurn plays one turn with a move from each side. Nothing is changed
// when it returns an error.
func (b *Battle) ResolveTurn(moveA, moveB string) (TurnResult, error) {
	if b.status != BattleActive {
		return TurnResult{}, ErrInactiveSession
	}
	mA, ok := b.a.Move(moveA)
	if !ok {
		return TurnResult{}, &InvalidMoveError{Side: SideA, Character: b.a.Name(), MoveID: moveA}
	}
	mB, ok := b.b.Move(moveB)
	if !ok {
		return TurnResult{}, &InvalidMoveError{Side: SideB, Character: b.b.Name(), MoveID: moveB}
	}
	if err := b.a.validStats(); err != nil {
		return TurnResult{}, err
	}
	if err := b.b.validStats(); err != nil {
		return TurnResult{}, err
	}

	saved := b.save()
	b.phase = PhaseResolving
	tc := newTurnContext(b)

	plans := tc.order(
		plannedAction{side: SideA, actor: b.a, target: b.b, move: mA},
		plannedAction{side: SideB, actor: b.b, target: b.a, move: mB},
	)
	first, second, err := tc.executePlans(plans)
	if err != nil {
		b.restore(saved)
		return TurnResult{}, err
	}
	tc.finalizeTurn()

	return TurnResult{
		Turn:   b.turn,
		First:  first,
		Second: second,
		Status: b.status,
		Winner: b.winner,
	}, nil
}

// finalizeTurn ticks statuses, advances the counter and commits the log.
func (tc *turnContext) finalizeTurn() {
	b := tc.b
	b.a.tickStatuses()
	b.b.tickStatuses()
	b.turn++
	if b.status == BattleActive {
		b.phase = PhaseAwaitingMoves
	}
	tc.commit()
}
