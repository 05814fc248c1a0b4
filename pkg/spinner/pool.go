package spinner

// DerivePool computes the effective selectable set for a category:
// base followed by additions, dropping every label present in exclusions.
// Relative order of surviving items matches concatenation order. Exclusion
// labels absent from base and additions are a no-op.
func DerivePool(base, additions, exclusions []string) []string {
	excluded := make(map[string]struct{}, len(exclusions))
	for _, label := range exclusions {
		excluded[label] = struct{}{}
	}
	pool := make([]string, 0, len(base)+len(additions))
	for _, label := range base {
		if _, ok := excluded[label]; !ok {
			pool = append(pool, label)
		}
	}
	for _, label := range additions {
		if _, ok := excluded[label]; !ok {
			pool = append(pool, label)
		}
	}
	return pool
}

// ShufflePool permutes pool in place with a Fisher–Yates walk from the
// last index down, so every permutation is equally likely under a uniform
// Source. Empty and single-element pools are left untouched.
func ShufflePool(pool []string, src Source) {
	for i := len(pool) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}
}
