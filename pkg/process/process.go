package process

// Process is a pure transformation from one channel value to another of the same type.
type Process[C any] interface {
	Process(c C) C
}

// Func adapts an ordinary function to the Process interface.
type Func[C any] func(C) C

func (f Func[C]) Process(c C) C {
	return f(c)
}

// Identity returns a process that hands the channel back unchanged.
func Identity[C any]() Process[C] {
	return Func[C](func(c C) C { return c })
}
