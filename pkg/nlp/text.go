package nlp

// TokenSet collects tokens into a set.
func TokenSet(tokens []string) map[string]struct{} {
	out := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		if t == "" {
			continue
		}
		out[t] = struct{}{}
	}
	return out
}

// Overlaps проверяет, есть ли у двух множеств токенов общий элемент.
func Overlaps(a, b map[string]struct{}) bool {
	if len(a) > len(b) {
		a, b = b, a
	}
	for t := range a {
		if _, ok := b[t]; ok {
			return true
		}
	}
	return false
}
