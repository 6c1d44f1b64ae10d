package transform

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shinyvision/phpindex/internal/phpast"
	"github.com/shinyvision/phpindex/internal/symbol"
)

func mustRun(t *testing.T, src string) (*symbol.Symbol, []symbol.Reference) {
	t.Helper()
	tree, err := phpast.Parse(context.Background(), "file:///t.php", []byte(src))
	require.NoError(t, err)
	defer tree.Close()

	file, refs, err := Run(context.Background(), "file:///t.php", tree)
	require.NoError(t, err)
	return file, refs
}

func findChild(sym *symbol.Symbol, kind symbol.Kind, name string) *symbol.Symbol {
	for _, c := range sym.Children {
		if c.Kind == kind && c.Name == name {
			return c
		}
	}
	return nil
}

func TestEndToEndNamespaceClassExtendsImplements(t *testing.T) {
	file, _ := mustRun(t, `<?php namespace A\B; class C extends D implements E, F { public function m($x): int {} }`)

	ns := findChild(file, symbol.KindNamespace, `A\B`)
	require.NotNil(t, ns)

	class := findChild(ns, symbol.KindClass, `A\B\C`)
	require.NotNil(t, class)
	require.Len(t, class.Associated, 3)

	names := map[string]bool{}
	for _, a := range class.Associated {
		names[a.Name] = true
	}
	require.True(t, names[`A\B\D`])
	require.True(t, names[`A\B\E`])
	require.True(t, names[`A\B\F`])

	method := findChild(class, symbol.KindMethod, "m")
	require.NotNil(t, method)
	require.True(t, method.Modifiers.Has(symbol.ModPublic))
	require.Equal(t, "int", method.Type)

	param := findChild(method, symbol.KindParameter, `$x`)
	require.NotNil(t, param)
}

func TestEndToEndUseAlias(t *testing.T) {
	file, refs := mustRun(t, `<?php use Foo\Bar as B; new B();`)

	use := findChild(file, symbol.KindUse, "B")
	require.NotNil(t, use)
	require.Len(t, use.Associated, 1)
	require.Equal(t, `Foo\Bar`, use.Associated[0].Name)

	require.Len(t, refs, 1)
	require.Equal(t, symbol.KindClass, refs[0].Kind)
	require.Equal(t, `Foo\Bar`, refs[0].Name)
}

func TestEndToEndDefine(t *testing.T) {
	file, refs := mustRun(t, `<?php define('MY_CONST', 42);`)

	c := findChild(file, symbol.KindConstant, "MY_CONST")
	require.NotNil(t, c)
	require.Equal(t, "42", c.Value)
	require.Equal(t, "int", c.Type)

	require.Len(t, refs, 1)
	require.Equal(t, symbol.KindConstant, refs[0].Kind)
}

func TestEndToEndUniqueVariables(t *testing.T) {
	file, _ := mustRun(t, `<?php function f() { $a = 1; $a = 2; $b = 3; }`)

	fn := findChild(file, symbol.KindFunction, "f")
	require.NotNil(t, fn)

	var vars []*symbol.Symbol
	for _, c := range fn.Children {
		if c.Kind == symbol.KindVariable {
			vars = append(vars, c)
		}
	}
	require.Len(t, vars, 2)
	require.Equal(t, `$a`, vars[0].Name)
	require.Equal(t, `$b`, vars[1].Name)
}

func TestEndToEndMagicProperty(t *testing.T) {
	file, _ := mustRun(t, "<?php /** @property int $x */ class K {}")

	class := findChild(file, symbol.KindClass, "K")
	require.NotNil(t, class)

	prop := findChild(class, symbol.KindProperty, `$x`)
	require.NotNil(t, prop)
	require.True(t, prop.Modifiers.Has(symbol.ModMagic))
	require.True(t, prop.Modifiers.Has(symbol.ModPublic))
	require.Equal(t, "int", prop.Type)
}

func TestEndToEndMemberReferences(t *testing.T) {
	_, refs := mustRun(t, `<?php $o->prop; $o->meth();`)

	require.Len(t, refs, 2)
	require.Equal(t, symbol.KindProperty, refs[0].Kind)
	require.Equal(t, `$prop`, refs[0].Name)
	require.Equal(t, symbol.KindMethod, refs[1].Kind)
	require.Equal(t, "meth", refs[1].Name)
}

func TestEndToEndCallArgumentNotMisreferencedAsClass(t *testing.T) {
	_, refs := mustRun(t, `<?php f($x);`)

	require.Len(t, refs, 1)
	require.Equal(t, symbol.KindFunction, refs[0].Kind)
	require.Equal(t, "f", refs[0].Name)
}

func TestEndToEndDocDoesNotLeakAcrossCloseBrace(t *testing.T) {
	file, _ := mustRun(t, "<?php\nclass K {\n\tpublic $x;\n\t/** stray */\n}\n\nfunction f() {}\n")

	fn := findChild(file, symbol.KindFunction, "f")
	require.NotNil(t, fn)
	require.Empty(t, fn.Doc.Description)
}
