package messages

// Intent is one combatant's input for a single tick. Buttons are level
// triggered: a held button fires its action on every tick the gates allow.
type Intent struct {
	MoveX    float64 // -1 left .. 1 right
	Jump     bool
	Drop     bool
	Attack   bool
	Skill    bool
	Ultimate bool
	Swap     bool
}

// Inputs holds both combatants' intents, indexed by player id - 1.
type Inputs [2]Intent

// For returns the intent of player id, or the zero intent for an unknown id.
func (in Inputs) For(id int) Intent {
	if id < 1 || id > len(in) {
		return Intent{}
	}
	return in[id-1]
}

// NewIntent creates an intent that only walks in direction (-1, 0 or 1).
func NewIntent(direction int) Intent {
	return Intent{MoveX: float64(direction)}
}
