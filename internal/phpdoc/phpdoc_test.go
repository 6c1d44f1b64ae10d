package phpdoc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDescriptionAndParam(t *testing.T) {
	raw := `/**
	 * Formats a greeting for the given user.
	 *
	 * @param string $name
	 * @return string
	 */`

	doc := Parse(raw)
	require.Equal(t, "Formats a greeting for the given user.", doc.Description)
	require.Len(t, doc.Tags, 2)

	require.Equal(t, "param", doc.Tags[0].Name)
	require.Equal(t, "string", doc.Tags[0].Type)
	require.Equal(t, "$name", doc.Tags[0].Var)

	require.Equal(t, "return", doc.Tags[1].Name)
	require.Equal(t, "string", doc.Tags[1].Type)
}

func TestParseVarTag(t *testing.T) {
	doc := Parse("/** @var \\App\\Model\\User $user the current user */")
	require.Len(t, doc.Tags, 1)
	require.Equal(t, "var", doc.Tags[0].Name)
	require.Equal(t, `\App\Model\User`, doc.Tags[0].Type)
	require.Equal(t, "$user", doc.Tags[0].Var)
	require.Equal(t, "the current user", doc.Tags[0].Rest)
}

func TestParsePropertyTags(t *testing.T) {
	doc := Parse(`/**
	 * @property int $id
	 * @property-read string $name
	 * @property-write bool $active
	 */`)
	require.Len(t, doc.Tags, 3)
	require.Equal(t, "property", doc.Tags[0].Name)
	require.Equal(t, "property-read", doc.Tags[1].Name)
	require.Equal(t, "property-write", doc.Tags[2].Name)
}

func TestParseMethodTag(t *testing.T) {
	doc := Parse("/** @method static self create(string $name, int $age) */")
	require.Len(t, doc.Tags, 1)
	tag := doc.Tags[0]
	require.Equal(t, "method", tag.Name)
	require.Equal(t, "self", tag.Type)
	require.Equal(t, "create", tag.Var)
	require.Contains(t, tag.Rest, "string $name, int $age")
	require.True(t, tag.Rest[:len("static")] == "static")
}

func TestParseMalformedTagDropped(t *testing.T) {
	doc := Parse("/** @method broken( */")
	require.Empty(t, doc.Tags)
}

func TestSplitUnion(t *testing.T) {
	require.Equal(t, []string{"int", "string"}, SplitUnion("int|string"))
	require.Equal(t, []string{"int", "null"}, SplitUnion("?int"))
	require.Nil(t, SplitUnion(""))
}
