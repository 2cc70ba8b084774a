package treap

import (
	"errors"
	"testing"

	"github.com/kuszmaul/reducetree/reduce"
)

type concatNode = Node[string, string, string]

type concatTree = Tree[string, string, string, reduce.Concat[string]]

func newConcatTree() *concatTree {
	return New[string, string, string, reduce.Concat[string]]()
}

// buildNode constructs a node with a fixed priority and a freshly computed
// reduction, bypassing the random priority source.
func buildNode(t *concatTree, key, value string, priority uint64, left, right *concatNode) *concatNode {
	n := &concatNode{priority: priority, key: key, value: value, left: left, right: right}
	t.recompute(n)

	return n
}

func TestSplitNodeEmpty(t *testing.T) {
	tr := newConcatTree()

	less, greater := tr.splitNode(nil, "a")
	if less != nil || greater != nil {
		t.Errorf("Got %v,%v expected nil,nil", less, greater)
	}
}

func TestSplitNodeSingleKeyBelow(t *testing.T) {
	tr := newConcatTree()
	root := buildNode(tr, "b", "", 5, nil, nil)

	less, greater := tr.splitNode(root, "a")
	if less != nil {
		t.Errorf("Got %v expected nil", less)
	}

	if greater != root {
		t.Errorf("Got %v expected the original node", greater)
	}

	if actualValue := greater.reduced; actualValue != "b" {
		t.Errorf("Got %v expected %v", actualValue, "b")
	}
}

func TestSplitNodeSingleKeyAbove(t *testing.T) {
	tr := newConcatTree()
	root := buildNode(tr, "b", "", 5, nil, nil)

	less, greater := tr.splitNode(root, "c")
	if less != root {
		t.Errorf("Got %v expected the original node", less)
	}

	if greater != nil {
		t.Errorf("Got %v expected nil", greater)
	}
}

func TestSplitNodePresentKeyPanics(t *testing.T) {
	tr := newConcatTree()
	root := buildNode(tr, "b", "", 5, nil, nil)

	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic when splitting on a present key")
		}
	}()

	tr.splitNode(root, "b")
}

func TestSplitNodeRecomputesSpine(t *testing.T) {
	tr := newConcatTree()
	for _, key := range []string{"d", "b", "f", "a", "c", "e", "g"} {
		tr.Insert(key, "")
	}

	less, greater := tr.splitNode(tr.root, "dd")
	tr.root = nil
	tr.len = 0

	lessTree := newConcatTree()
	lessTree.root, lessTree.len = less, less.Size()

	greaterTree := newConcatTree()
	greaterTree.root, greaterTree.len = greater, greater.Size()

	if err := lessTree.Validate(); err != nil {
		t.Errorf("Got error %v", err)
	}

	if err := greaterTree.Validate(); err != nil {
		t.Errorf("Got error %v", err)
	}

	if actualValue := lessTree.Reduce(); actualValue != "abcd" {
		t.Errorf("Got %v expected %v", actualValue, "abcd")
	}

	if actualValue := greaterTree.Reduce(); actualValue != "efg" {
		t.Errorf("Got %v expected %v", actualValue, "efg")
	}
}

func TestInsertNodeKeepsRootOnLowerPriority(t *testing.T) {
	tr := newConcatTree()

	b := buildNode(tr, "b", "", 2, nil, nil)
	a := buildNode(tr, "a", "", 3, nil, b)
	c := &concatNode{priority: 1, key: "c"}

	root := tr.insertNode(a, c)

	if root != a {
		t.Errorf("Got %v expected the original root", root)
	}

	if a.left != nil || a.right != b {
		t.Errorf("root children disturbed: left=%v right=%v", a.left, a.right)
	}

	if b.left != nil || b.right != c {
		t.Errorf("new node not attached under %v: left=%v right=%v", b, b.left, b.right)
	}

	if actualValue := c.reduced; actualValue != "c" {
		t.Errorf("Got %v expected %v", actualValue, "c")
	}

	if actualValue := b.reduced; actualValue != "bc" {
		t.Errorf("Got %v expected %v", actualValue, "bc")
	}

	if actualValue := a.reduced; actualValue != "abc" {
		t.Errorf("Got %v expected %v", actualValue, "abc")
	}
}

func TestInsertNodeEqualPriorityKeepsRoot(t *testing.T) {
	tr := newConcatTree()

	a := buildNode(tr, "a", "", 7, nil, nil)
	b := &concatNode{priority: 7, key: "b"}

	root := tr.insertNode(a, b)

	if root != a {
		t.Errorf("Got %v expected the original root", root)
	}

	if a.right != b {
		t.Errorf("Got %v expected the new node as right child", a.right)
	}
}

func TestInsertNodeHigherPrioritySplits(t *testing.T) {
	tr := newConcatTree()

	z := buildNode(tr, "z", "", 1, nil, nil)
	a := buildNode(tr, "a", "", 2, nil, z)
	m := &concatNode{priority: 10, key: "m"}

	root := tr.insertNode(a, m)

	if root != m {
		t.Errorf("Got %v expected the new node as root", root)
	}

	if m.left != a || m.right != z {
		t.Errorf("split halves misattached: left=%v right=%v", m.left, m.right)
	}

	if a.right != nil {
		t.Errorf("Got %v expected nil", a.right)
	}

	if actualValue := m.reduced; actualValue != "amz" {
		t.Errorf("Got %v expected %v", actualValue, "amz")
	}
}

func TestMergeNodesHigherPriorityWins(t *testing.T) {
	tr := newConcatTree()

	a := buildNode(tr, "a", "", 3, nil, nil)
	b := buildNode(tr, "b", "", 9, nil, nil)

	root := tr.mergeNodes(a, b)

	if root != b {
		t.Errorf("Got %v expected the higher-priority node", root)
	}

	if b.left != a {
		t.Errorf("Got %v expected the lower tree as left child", b.left)
	}

	if actualValue := b.reduced; actualValue != "ab" {
		t.Errorf("Got %v expected %v", actualValue, "ab")
	}
}

func TestMergeNodesTiePrefersLeft(t *testing.T) {
	tr := newConcatTree()

	a := buildNode(tr, "a", "", 4, nil, nil)
	b := buildNode(tr, "b", "", 4, nil, nil)

	root := tr.mergeNodes(a, b)

	if root != a {
		t.Errorf("Got %v expected the left tree's root", root)
	}

	if a.right != b {
		t.Errorf("Got %v expected the right tree as right child", a.right)
	}
}

func TestMergeNodesNilSides(t *testing.T) {
	tr := newConcatTree()
	a := buildNode(tr, "a", "", 4, nil, nil)

	if root := tr.mergeNodes(nil, a); root != a {
		t.Errorf("Got %v expected %v", root, a)
	}

	if root := tr.mergeNodes(a, nil); root != a {
		t.Errorf("Got %v expected %v", root, a)
	}

	if root := tr.mergeNodes(nil, nil); root != nil {
		t.Errorf("Got %v expected nil", root)
	}
}

func TestValidateDetectsReductionMismatch(t *testing.T) {
	tr := newConcatTree()
	tr.Insert("a", "")
	tr.Insert("b", "")
	tr.Insert("c", "")

	tr.root.reduced = "zzz"

	err := tr.Validate()
	if !errors.Is(err, ErrReductionMismatch) {
		t.Errorf("Got %v expected %v", err, ErrReductionMismatch)
	}
}

func TestValidateDetectsHeapViolation(t *testing.T) {
	tr := newConcatTree()

	child := buildNode(tr, "b", "", 9, nil, nil)
	root := buildNode(tr, "a", "", 3, nil, child)
	tr.root, tr.len = root, 2

	err := tr.Validate()
	if !errors.Is(err, ErrHeapViolation) {
		t.Errorf("Got %v expected %v", err, ErrHeapViolation)
	}
}

func TestValidateToleratesEqualPriorities(t *testing.T) {
	tr := newConcatTree()

	child := buildNode(tr, "b", "", 5, nil, nil)
	root := buildNode(tr, "a", "", 5, nil, child)
	tr.root, tr.len = root, 2

	if err := tr.Validate(); err != nil {
		t.Errorf("Got error %v", err)
	}
}

func TestValidateDetectsOrderViolation(t *testing.T) {
	tr := newConcatTree()

	child := buildNode(tr, "z", "", 2, nil, nil)
	root := buildNode(tr, "m", "", 5, child, nil)
	tr.root, tr.len = root, 2

	err := tr.Validate()
	if !errors.Is(err, ErrOrderViolation) {
		t.Errorf("Got %v expected %v", err, ErrOrderViolation)
	}
}

func TestValidateDetectsLengthMismatch(t *testing.T) {
	tr := newConcatTree()
	tr.Insert("a", "")

	tr.len = 9

	err := tr.Validate()
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Got %v expected %v", err, ErrLengthMismatch)
	}
}

func TestDumpRendersStructure(t *testing.T) {
	tr := newConcatTree()

	b := buildNode(tr, "b", "y", 2, nil, nil)
	a := buildNode(tr, "a", "x", 3, nil, b)
	tr.root, tr.len = a, 2

	if actualValue, expectedValue := tr.Dump(), "(a x 3 ab _ (b y 2 b _ _))"; actualValue != expectedValue {
		t.Errorf("Got %v expected %v", actualValue, expectedValue)
	}
}

func TestPriorityStreamsAreIndependent(t *testing.T) {
	a := newConcatTree()
	b := newConcatTree()

	same := true
	for i := 0; i < 8; i++ {
		if a.rng.Uint64() != b.rng.Uint64() {
			same = false

			break
		}
	}

	if same {
		t.Errorf("two trees drew identical priority streams")
	}
}
