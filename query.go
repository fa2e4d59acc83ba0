package shelf

import (
	"github.com/TheBitDrifter/mask"
)

type Operation int

const (
	OpAnd Operation = iota
	OpOr
	OpNot
)

type compositeNode struct {
	op       Operation
	children []QueryNode
	kinds    []*Kind

	// resolved for one registry by prepare
	registry *Registry
	mask     mask.Mask
	missing  bool
}

type query struct {
	root QueryNode
}

// preparer is implemented by nodes that can resolve their kinds once per pass
type preparer interface {
	prepare(registry *Registry)
}

func newQuery() Query {
	return &query{}
}

func newCompositeNode(op Operation, kinds []*Kind) *compositeNode {
	return &compositeNode{
		op:       op,
		children: make([]QueryNode, 0),
		kinds:    kinds,
	}
}

// kindMask marks the ids kinds hold in registry without assigning new ones.
// missing reports a kind the scope has never stored.
func kindMask(kinds []*Kind, registry *Registry) (m mask.Mask, missing bool) {
	for _, k := range kinds {
		id, ok := registry.Lookup(k)
		if !ok {
			missing = true
			continue
		}
		if id >= MaxSignatureBits {
			continue
		}
		m.Mark(uint32(id))
	}
	return m, missing
}

func (n *compositeNode) prepare(registry *Registry) {
	n.mask, n.missing = kindMask(n.kinds, registry)
	n.registry = registry
	for _, child := range n.children {
		if p, ok := child.(preparer); ok {
			p.prepare(registry)
		}
	}
}

func (n *compositeNode) resolve(registry *Registry) (mask.Mask, bool) {
	if n.registry == registry {
		return n.mask, n.missing
	}
	return kindMask(n.kinds, registry)
}

func (n *compositeNode) Evaluate(signature mask.Mask, registry *Registry) bool {
	nodeMask, missing := n.resolve(registry)

	switch n.op {
	case OpAnd:
		// A kind the scope never stored is on no entity
		if missing || !signature.ContainsAll(nodeMask) {
			return false
		}
		for _, child := range n.children {
			if !child.Evaluate(signature, registry) {
				return false
			}
		}
		return true

	case OpOr:
		if signature.ContainsAny(nodeMask) {
			return true
		}
		for _, child := range n.children {
			if child.Evaluate(signature, registry) {
				return true
			}
		}
		return false

	case OpNot:
		if len(n.children) == 0 {
			return signature.ContainsNone(nodeMask)
		}
		for _, child := range n.children {
			if child.Evaluate(signature, registry) {
				return false
			}
		}
		return !signature.ContainsAny(nodeMask)
	}
	return false
}

func (q *query) And(items ...interface{}) QueryNode {
	kinds, children := q.processItems(items...)
	node := newCompositeNode(OpAnd, kinds)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	return node
}

func (q *query) Or(items ...interface{}) QueryNode {
	kinds, children := q.processItems(items...)
	node := newCompositeNode(OpOr, kinds)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	return node
}

func (q *query) Not(items ...interface{}) QueryNode {
	kinds, children := q.processItems(items...)
	node := newCompositeNode(OpNot, kinds)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	return node
}

func (q *query) processItems(items ...interface{}) ([]*Kind, []QueryNode) {
	kinds := make([]*Kind, 0)
	children := make([]QueryNode, 0)

	for _, item := range items {
		switch v := item.(type) {
		case *Kind:
			kinds = append(kinds, v)
		case []*Kind:
			kinds = append(kinds, v...)
		case QueryNode:
			children = append(children, v)
		}
	}

	return kinds, children
}

func (q *query) prepare(registry *Registry) {
	if p, ok := q.root.(preparer); ok {
		p.prepare(registry)
	}
}

func (q *query) Evaluate(signature mask.Mask, registry *Registry) bool {
	if q.root == nil {
		return false
	}
	return q.root.Evaluate(signature, registry)
}
