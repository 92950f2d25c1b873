package genson

// limits carries the evaluation ceilings. One instance is shared by every
// context descended from the same root.
type limits struct {
	MaxDepth      int
	MaxIterations int
}

// Context is one frame of the evaluation. Scope holds the frame's writable
// bindings, Decls the declarations registered at this frame, Parent the
// enclosing frame (nil at the root). The rng closure is owned by the root
// and borrowed by every descendant.
type Context struct {
	Scope  map[string]interface{}
	Parent *Context
	Decls  map[string]interface{}

	rng    func() float64
	depth  int
	limits *limits
}

// sibling duplicates the context record for one node evaluation: same scope
// and declaration maps, same parent, depth bumped. Writes through a sibling
// land in the shared maps, so a set is visible to the nodes that follow it.
func (ctx *Context) sibling() *Context {
	return &Context{
		Scope:  ctx.Scope,
		Parent: ctx.Parent,
		Decls:  ctx.Decls,
		rng:    ctx.rng,
		depth:  ctx.depth + 1,
		limits: ctx.limits,
	}
}

// Child opens a new frame under ctx. The scope starts as a snapshot of the
// creator's bindings, so loop bodies and layers see inherited names without
// their writes leaking back out. Declarations start empty; lookup walks the
// parent chain.
func (ctx *Context) Child() *Context {
	scope := make(map[string]interface{}, len(ctx.Scope))
	for k, v := range ctx.Scope {
		scope[k] = v
	}
	return &Context{
		Scope:  scope,
		Parent: ctx,
		Decls:  map[string]interface{}{},
		rng:    ctx.rng,
		depth:  ctx.depth,
		limits: ctx.limits,
	}
}

// LookupDecl finds a named Match or Domain declaration, walking out through
// the parent chain. Iterative on purpose.
func (ctx *Context) LookupDecl(name string) map[string]interface{} {
	for c := ctx; c != nil; c = c.Parent {
		if d, ok := c.Decls[name]; ok {
			if m := asObject(d); m != nil {
				return m
			}
		}
	}
	return nil
}
