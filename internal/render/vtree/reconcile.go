package vtree

import (
	"fmt"
	"strings"
)

type Op int

const (
	OpSetText Op = iota
	OpSetAttr
	OpRemoveAttr
)

func (o Op) String() string {
	switch o {
	case OpSetText:
		return "set-text"
	case OpSetAttr:
		return "set-attr"
	case OpRemoveAttr:
		return "remove-attr"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Mutation is one in-place change to a displayed node. Index is the node's
// position in the preorder listing of the displayed tree.
type Mutation struct {
	Index  int
	Target *Node
	Op     Op
	Name   string
	Value  string
	Old    string
}

func (m Mutation) String() string {
	switch m.Op {
	case OpSetText:
		return fmt.Sprintf("#%d %s %q -> %q", m.Index, m.Op, m.Old, m.Value)
	case OpRemoveAttr:
		return fmt.Sprintf("#%d %s %s", m.Index, m.Op, m.Name)
	default:
		return fmt.Sprintf("#%d %s %s=%q", m.Index, m.Op, m.Name, m.Value)
	}
}

// Reconcile converges displayed onto desired in place and returns the
// mutations it applied.
//
// Both trees are flattened in preorder and paired by position. A pair that
// differs gets desired's text copied over when that text is non-blank, and
// its attributes converged one by one. Nodes are never inserted or removed:
// when the listings differ in length the surplus of the longer one is left
// alone, so callers only reconcile shape-stable trees and fully replace
// otherwise.
func Reconcile(displayed, desired *Node) []Mutation {
	muts := Diff(displayed, desired)
	Apply(muts)
	return muts
}

// Diff computes what Reconcile would apply without touching either tree.
func Diff(displayed, desired *Node) []Mutation {
	cur := Flatten(displayed)
	next := Flatten(desired)
	n := min(len(cur), len(next))

	var muts []Mutation
	for i := 0; i < n; i++ {
		c, d := cur[i], next[i]
		if Same(c, d) {
			continue
		}
		if strings.TrimSpace(d.Text) != "" && d.Text != c.Text {
			muts = append(muts, Mutation{Index: i, Target: c, Op: OpSetText, Value: d.Text, Old: c.Text})
		}
		muts = append(muts, diffAttrs(i, c, d)...)
	}
	return muts
}

func diffAttrs(index int, cur, next *Node) []Mutation {
	if attrsEqual(cur.Attrs, next.Attrs) {
		return nil
	}
	var muts []Mutation
	for _, name := range sortedAttrNames(next.Attrs) {
		val := next.Attrs[name]
		old, ok := cur.Attrs[name]
		if ok && old == val {
			continue
		}
		muts = append(muts, Mutation{Index: index, Target: cur, Op: OpSetAttr, Name: name, Value: val, Old: old})
	}
	for _, name := range sortedAttrNames(cur.Attrs) {
		if _, ok := next.Attrs[name]; ok {
			continue
		}
		muts = append(muts, Mutation{Index: index, Target: cur, Op: OpRemoveAttr, Name: name, Old: cur.Attrs[name]})
	}
	return muts
}

// Apply performs mutations on their targets in order.
func Apply(muts []Mutation) {
	for _, m := range muts {
		if m.Target == nil {
			continue
		}
		switch m.Op {
		case OpSetText:
			m.Target.Text = m.Value
		case OpSetAttr:
			m.Target.SetAttr(m.Name, m.Value)
		case OpRemoveAttr:
			m.Target.RemoveAttr(m.Name)
		}
	}
}
