// Package kinematics evaluates transform sequences: forward kinematics over a prefix of
// the chain, and the geometric Jacobian mapping joint velocities to the spatial velocity
// of a target element's frame, both expressed in the base frame.
package kinematics

// EvalOption configures a single evaluation call.
type EvalOption func(*evalOptions)

type evalOptions struct {
	prefix  int
	degrees bool
}

// WithPrefix evaluates only the first n elements of the chain. n is 1-based and must be
// in [1, Len]. The default is the full chain.
func WithPrefix(n int) EvalOption {
	return func(o *evalOptions) {
		o.prefix = n
	}
}

// WithTarget selects the 1-based element whose frame the Jacobian is taken at. The
// default is the chain tip.
func WithTarget(n int) EvalOption {
	return WithPrefix(n)
}

// WithDegrees treats rotation values, joint-driven and constant alike, as degrees.
func WithDegrees() EvalOption {
	return func(o *evalOptions) {
		o.degrees = true
	}
}

func makeEvalOptions(chainLen int, opts []EvalOption) evalOptions {
	o := evalOptions{prefix: chainLen}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
