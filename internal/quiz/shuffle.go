package quiz

import "math/rand"

// ShuffleChoices returns a permuted copy of choices together with the
// recomputed index of the correct choice. The permutation is Fisher-Yates
// (uniform over all orderings); the correct index is recovered by locating
// the original correct choice's text in the shuffled slice, so the operation
// never changes which choice is semantically correct. When two choices carry
// identical text the first occurrence wins; bank data is expected to keep
// choice text distinct.
func ShuffleChoices(choices []string, correctIndex int, enabled bool) ([]string, int) {
	out := append([]string(nil), choices...)
	if !enabled || len(out) == 0 {
		return out, correctIndex
	}
	correctText := choices[correctIndex]
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	for i, c := range out {
		if c == correctText {
			return out, i
		}
	}
	return out, correctIndex
}
