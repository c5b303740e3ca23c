package testing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/go-flint/flint/pkg/host"
	"github.com/go-flint/flint/pkg/memdom"
)

// snapshotNode is the serializable view of one host node.
type snapshotNode struct {
	Tag      string            `yaml:"tag,omitempty"`
	Text     string            `yaml:"text,omitempty"`
	Attrs    map[string]string `yaml:"attrs,omitempty"`
	Children []snapshotNode    `yaml:"children,omitempty"`
}

// Snapshot encodes a host tree as YAML for golden comparisons. Properties,
// listeners, and styles are omitted; snapshots capture structure, tags,
// attributes, and text.
func Snapshot(n host.Node) string {
	data, err := yaml.Marshal(capture(n))
	if err != nil {
		return "error: " + err.Error()
	}
	return string(data)
}

func capture(n host.Node) snapshotNode {
	out := snapshotNode{}
	switch v := n.(type) {
	case *memdom.Text:
		out.Text = v.Data
		return out
	case *memdom.Fragment:
		out.Tag = "fragment"
	case *memdom.Element:
		out.Tag = v.TagName
		names := v.AttributeNames()
		if len(names) > 0 {
			out.Attrs = make(map[string]string, len(names))
			for _, name := range names {
				value, _ := v.Attribute(name)
				out.Attrs[name] = value
			}
		}
	}
	for _, c := range n.ChildNodes() {
		out.Children = append(out.Children, capture(c))
	}
	return out
}

// RequireSnapshot compares the snapshot of n against want and fails the
// test with a diff on mismatch.
func RequireSnapshot(t *testing.T, n host.Node, want string) {
	t.Helper()
	got := Snapshot(n)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
}
