package process

// Chain applies its processes in order, each receiving the previous one's output.
// An empty chain is the identity.
type Chain[C any] []Process[C]

func (ch Chain[C]) Process(c C) C {
	for _, p := range ch {
		c = p.Process(c)
	}
	return c
}

// Then returns a new chain with ps appended. The receiver is left untouched.
func (ch Chain[C]) Then(ps ...Process[C]) Chain[C] {
	out := make(Chain[C], 0, len(ch)+len(ps))
	out = append(out, ch...)
	return append(out, ps...)
}
