package shelf

type factory struct{}

var Factory factory

// NewComponents builds an empty storage over registry, allocating through
// pools. A nil pools gets a private Pool.
func (f factory) NewComponents(registry *Registry, pools Pools) *Components {
	if pools == nil {
		pools = newPool()
	}
	if registry == nil {
		registry = newRegistry()
	}
	return newComponents(registry, pools)
}

func (f factory) NewRegistry() *Registry {
	return newRegistry()
}

func (f factory) NewPool() *Pool {
	return newPool()
}

func (f factory) NewQuery() Query {
	return newQuery()
}

func (f factory) NewCursor(query QueryNode, components *Components) *Cursor {
	return newCursor(query, components)
}

// FactoryNewComponents builds a storage in the scope of entity kind E and
// state kind S
func FactoryNewComponents[E, S any](pools Pools) *Components {
	return Factory.NewComponents(ScopeOf[E, S](), pools)
}
