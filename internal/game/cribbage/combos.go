package cribbage

// Combination enumeration via Chase's twiddle (ACM Algorithm 382:
// Combinations of M out of N Objects, CACM 13:6:368). Counting 15s and
// the exhaustive discard both need every M-card subset of a hand, so
// the iterator works on index sets and lets callers map indexes back to
// cards.

// EachCombination visits every m-element combination of {0, 1, ...,
// n-1}, starting from {n-m, ..., n-1}. The indexes slice is reused
// between visits; visitors must copy it if they need to keep it.
// Requires 0 < m <= n.
func EachCombination(n, m int, visit func(indexes []int)) {
	if m <= 0 || m > n {
		panic("EachCombination: need 0 < m <= n")
	}

	c := make([]int, m)
	for i := range c {
		c[i] = n - m + i
	}
	visit(c)

	p := make([]int, n+2)
	initTwiddle(m, n, p)

	var x, y, z int
	for !twiddle(&x, &y, &z, p) {
		// The underlying object set is the identity 0..n-1, so a[x] = x.
		c[z] = x
		_ = y
		visit(c)
	}
}

func twiddle(x, y, z *int, p []int) bool {
	j := 1
	for p[j] <= 0 {
		j++
	}
	if p[j-1] == 0 {
		for i := j - 1; i != 1; i-- {
			p[i] = -1
		}
		p[j] = 0
		*x, *z = 0, 0
		p[1] = 1
		*y = j - 1
		return false
	}

	if j > 1 {
		p[j-1] = 0
	}
	j++
	for p[j] > 0 {
		j++
	}
	k := j - 1
	i := j
	for p[i] == 0 {
		p[i] = -1
		i++
	}
	if p[i] == -1 {
		p[i] = p[k]
		*z = p[k] - 1
		*x = i - 1
		*y = k - 1
		p[k] = -1
		return false
	}
	if i == p[0] {
		return true
	}
	p[j] = p[i]
	*z = p[i] - 1
	p[i] = 0
	*x = j - 1
	*y = i - 1
	return false
}

func initTwiddle(m, n int, p []int) {
	p[0] = n + 1
	i := 1
	for ; i != n-m+1; i++ {
		p[i] = 0
	}
	for i != n+1 {
		p[i] = i + m - n
		i++
	}
	p[n+1] = -2
	if m == 0 {
		p[1] = 1
	}
}
