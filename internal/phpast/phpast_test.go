package phpast

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleSource = `<?php
namespace App;

class Greeter
{
    public function greet(string $name): string
    {
        return "hi " . $name;
    }
}
`

// findFirst returns the first descendant of n (n included) with the
// given node type, or a null Node if none is found.
func findFirst(n Node, typ string) Node {
	if n.IsNull() {
		return n
	}
	if n.Type() == typ {
		return n
	}
	for i := 0; i < n.NamedChildCount(); i++ {
		if found := findFirst(n.NamedChild(i), typ); !found.IsNull() {
			return found
		}
	}
	return Node{}
}

func TestParseAndRoot(t *testing.T) {
	tree, err := Parse(context.Background(), "file:///greeter.php", []byte(sampleSource))
	require.NoError(t, err)
	defer tree.Close()

	root := tree.Root()
	require.False(t, root.IsNull())
	require.Equal(t, "program", root.Type())
	require.True(t, root.IsPhrase())
}

func TestChildByFieldAndText(t *testing.T) {
	tree, err := Parse(context.Background(), "file:///greeter.php", []byte(sampleSource))
	require.NoError(t, err)
	defer tree.Close()

	classNode := findFirst(tree.Root(), "class_declaration")
	require.False(t, classNode.IsNull())
	name := classNode.ChildByField("name")
	require.Equal(t, "Greeter", name.Text())
}

func TestLocationReportsOneBasedLines(t *testing.T) {
	tree, err := Parse(context.Background(), "file:///greeter.php", []byte(sampleSource))
	require.NoError(t, err)
	defer tree.Close()

	classNode := findFirst(tree.Root(), "class_declaration")
	require.False(t, classNode.IsNull())

	loc := classNode.Location()
	require.Equal(t, 4, loc.StartLine)
	require.Equal(t, "file:///greeter.php", loc.URI)
}
