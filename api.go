package genson

// Evaluation ceilings applied when no option overrides them.
const (
	DefaultMaxDepth      = 100
	DefaultMaxIterations = 10000
)

// Option adjusts one evaluation setting.
type Option func(*settings)

type settings struct {
	rng           func() float64
	maxDepth      int
	maxIterations int
}

// WithSeed seeds the default random source so the entire evaluation is
// reproducible.
func WithSeed(seed int64) Option {
	return func(s *settings) {
		s.rng = seededRNG(seed)
	}
}

// WithRNG supplies the random source directly. It must return floats in
// [0, 1).
func WithRNG(rng func() float64) Option {
	return func(s *settings) {
		s.rng = rng
	}
}

// WithMaxDepth overrides the recursion ceiling.
func WithMaxDepth(n int) Option {
	return func(s *settings) {
		s.maxDepth = n
	}
}

// WithMaxIterations overrides the per-loop iteration ceiling.
func WithMaxIterations(n int) Option {
	return func(s *settings) {
		s.maxIterations = n
	}
}

// NewContext builds a root evaluation context. Useful together with
// EvaluateNode and EvaluateExpr when embedding the engine.
func NewContext(opts ...Option) *Context {
	s := settings{
		maxDepth:      DefaultMaxDepth,
		maxIterations: DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.rng == nil {
		s.rng = defaultRNG()
	}

	return &Context{
		Scope: map[string]interface{}{},
		Decls: map[string]interface{}{},
		rng:   s.rng,
		limits: &limits{
			MaxDepth:      s.maxDepth,
			MaxIterations: s.maxIterations,
		},
	}
}

// Evaluate runs a parsed schema to its generated string.
func Evaluate(schema interface{}, opts ...Option) (string, error) {
	return EvaluateNode(schema, NewContext(opts...))
}

// EvaluateNode evaluates a schema node in an existing context.
func EvaluateNode(node interface{}, ctx *Context) (string, error) {
	return evaluateNode(node, ctx)
}

// EvaluateExpr evaluates an expression value in an existing context.
func EvaluateExpr(expr interface{}, ctx *Context) (interface{}, error) {
	return evaluateExpr(expr, ctx)
}
