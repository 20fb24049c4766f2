package engine

// Ledger is the running score. Merges add the merged value, black holes
// subtract the consumed value.
type Ledger struct {
	total  int
	gains  int
	losses int
}

// Add applies a score delta, which may be negative.
func (l *Ledger) Add(delta int) {
	l.total += delta
	if delta >= 0 {
		l.gains += delta
	} else {
		l.losses -= delta
	}
}

// Reset zeroes the ledger. Only a full game restart resets the score.
func (l *Ledger) Reset() {
	*l = Ledger{}
}

// Total returns the current score.
func (l *Ledger) Total() int {
	return l.total
}

// Gains returns the sum of all merge gains since the last reset.
func (l *Ledger) Gains() int {
	return l.gains
}

// Losses returns the sum of all black-hole deductions since the last reset.
func (l *Ledger) Losses() int {
	return l.losses
}
