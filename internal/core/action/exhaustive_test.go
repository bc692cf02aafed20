package action

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// declaredVariants returns the receiver type of every isAction method in the package.
func declaredVariants(t *testing.T) map[string]bool {
	t.Helper()
	entries, err := os.ReadDir(".")
	require.NoError(t, err)

	fset := token.NewFileSet()
	variants := make(map[string]bool)
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		file, err := parser.ParseFile(fset, name, nil, 0)
		require.NoError(t, err)
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv == nil || fn.Name.Name != "isAction" {
				continue
			}
			if ident, ok := fn.Recv.List[0].Type.(*ast.Ident); ok {
				variants[ident.Name] = true
			}
		}
	}
	return variants
}

func TestCatalogCoversEveryVariant(t *testing.T) {
	t.Parallel()

	declared := declaredVariants(t)
	require.NotEmpty(t, declared)

	catalogued := make(map[string]bool)
	for _, a := range Catalog() {
		name := reflect.TypeOf(a).Name()
		assert.False(t, catalogued[name], "%s listed twice", name)
		catalogued[name] = true
	}

	for name := range declared {
		assert.True(t, catalogued[name], "%s missing from Catalog", name)
	}
	assert.Len(t, catalogued, len(declared))
}
