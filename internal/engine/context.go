package engine

// turnContext collects what happens during one turn. Log lines are only
// committed to the battle once the turn resolves without error.
type turnContext struct {
	b     *Battle
	lines []string
}

func newTurnContext(b *Battle) *turnContext {
	return &turnContext{b: b, lines: make([]string, 0, 6)}
}

func (tc *turnContext) add(msg string) { tc.lines = append(tc.lines, msg) }

func (tc *turnContext) commit() { tc.b.log = append(tc.b.log, tc.lines...) }
