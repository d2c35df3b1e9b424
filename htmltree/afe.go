package htmltree

import (
	"github.com/kauri-engine/kauri/htmldom"
	"github.com/kauri-engine/kauri/htmltok"
)

// afeEntry is one entry of the active-formatting-elements list (section
// 12.2.4.3). marker entries are inserted when entering applet, object,
// marquee, td and th elements (template and caption push none), matching
// chtml/html/node.go's scopeMarkerNode.
//
// Per spec.md §9's "back-pointers" redesign note, membership in the
// open-elements stack is tracked by a cached slice index plus a
// generation counter rather than re-walking pointer identity on every
// check; genAt is compared against parser.oeGen (bumped on every push/pop/
// insert/remove of oe) to know whether oeIndex can be trusted or must be
// recomputed from the node pointer.
type afeEntry struct {
	node   *htmldom.Node
	marker bool
	oeIndex int
	genAt   uint64
}

type afeList []afeEntry

func (l *afeList) push(n *htmldom.Node) { *l = append(*l, afeEntry{node: n}) }

func (l *afeList) pushMarker() { *l = append(*l, afeEntry{marker: true}) }

func (l *afeList) pop() *htmldom.Node {
	i := len(*l) - 1
	e := (*l)[i]
	*l = (*l)[:i]
	return e.node
}

func (l *afeList) top() *htmldom.Node {
	if len(*l) == 0 {
		return nil
	}
	return (*l)[len(*l)-1].node
}

func (l *afeList) isMarkerAt(i int) bool { return (*l)[i].marker }

func (l *afeList) remove(n *htmldom.Node) {
	for i, e := range *l {
		if e.node == n {
			*l = append((*l)[:i], (*l)[i+1:]...)
			return
		}
	}
}

// resolveOEIndex returns the entry's cached position in p.oe, refreshing
// it (and the generation stamp) if p.oe has mutated since it was last
// cached. Returns -1 if the node is no longer in p.oe at all.
func (p *parser) resolveOEIndex(e *afeEntry) int {
	if e.genAt == p.oeGen {
		if e.oeIndex >= 0 && e.oeIndex < len(p.oe) && p.oe[e.oeIndex] == e.node {
			return e.oeIndex
		}
	}
	idx := p.oe.index(e.node)
	e.oeIndex = idx
	e.genAt = p.oeGen
	return idx
}

func (p *parser) clearActiveFormattingElements() {
	for {
		if n := p.afe.pop(); len(p.afe) == 0 || n == nil {
			return
		}
	}
}

// reconstructActiveFormattingElements implements section 12.2.4.3: clones
// every afe entry since the last marker (or list start) that has fallen
// out of the open-elements stack and re-inserts the clones.
func (p *parser) reconstructActiveFormattingElements() {
	if len(p.afe) == 0 {
		return
	}
	last := len(p.afe) - 1
	if p.afe[last].marker || p.resolveOEIndex(&p.afe[last]) != -1 {
		return
	}
	i := last
	for {
		if i == 0 {
			i = -1
			break
		}
		i--
		if p.afe[i].marker || p.resolveOEIndex(&p.afe[i]) != -1 {
			break
		}
	}
	for {
		i++
		clone := cloneNode(p.afe[i].node)
		p.addChild(clone)
		p.afe[i].node = clone
		p.afe[i].oeIndex = len(p.oe) - 1
		p.afe[i].genAt = p.oeGen
		if i == len(p.afe)-1 {
			break
		}
	}
}

// addFormattingElement implements section 12.2.4.3's "Noah's Ark clause":
// at most three matching formatting elements (same tag, same attribute
// set) may coexist in the list between markers.
func (p *parser) addFormattingElement(tok htmltok.Token) {
	n := p.addElement(tok)

	identical := 0
findIdentical:
	for i := len(p.afe) - 1; i >= 0; i-- {
		e := p.afe[i]
		if e.marker {
			break
		}
		if e.node.DataAtom != n.DataAtom || e.node.Namespace != n.Namespace {
			continue
		}
		if len(e.node.Attributes) != len(n.Attributes) {
			continue
		}
		for _, t0 := range e.node.Attributes {
			found := false
			for _, t1 := range n.Attributes {
				if t0.Name == t1.Name && t0.Value == t1.Value {
					found = true
					break
				}
			}
			if !found {
				continue findIdentical
			}
		}
		identical++
		if identical >= 3 {
			p.afe.remove(e.node)
		}
	}

	p.afe.push(n)
}
