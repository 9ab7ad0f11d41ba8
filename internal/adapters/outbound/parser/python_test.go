package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testforge/testforge/internal/adapters/outbound/parser"
	"github.com/testforge/testforge/internal/domain"
)

const sampleSource = `"""Order processing helpers."""

import os
import json as j
from decimal import Decimal
from typing import List, Optional

MAX_RETRIES = 3
_cache = {}

def calculate_total(items: list, tax_rate: float = 0.2) -> float:
    """Sum item prices and apply tax."""
    total = sum(items)
    return total * (1 + tax_rate)

def _normalize(value):
    return value

class OrderProcessor:
    """Processes orders end to end."""

    retries = MAX_RETRIES

    def __init__(self, repo):
        self.repo = repo

    def submit(self, order_id: int) -> bool:
        return self.repo.save(order_id)

    @staticmethod
    def describe():
        return "processor"
`

const sampleTests = `import pytest

def test_calculate_total_applies_tax():
    """Verify tax is applied to the order total."""
    result = calculate_total([10.0], tax_rate=0.1)
    assert result == 11.0
    assert result > 0

class TestOrderProcessor:
    def test_submit_persists_order(self):
        repo = FakeRepo()
        processor = OrderProcessor(repo)
        assert processor.submit(1)
`

func extract(t *testing.T, path, source string) *domain.SourceModule {
	t.Helper()
	module, err := parser.New().Extract(path, []byte(source))
	require.NoError(t, err)
	require.False(t, module.IsDegraded(), "parse error: %s", module.ParseError)
	return module
}

func TestExtract_ModuleShape(t *testing.T) {
	module := extract(t, "src/shop/orders.py", sampleSource)

	assert.Equal(t, "orders", module.Name)
	assert.Equal(t, "shop.orders", module.ImportPath)
	require.Len(t, module.Functions, 2)
	require.Len(t, module.Classes, 1)
}

func TestExtract_FunctionSignature(t *testing.T) {
	module := extract(t, "orders.py", sampleSource)

	fn := module.Functions[0]
	assert.Equal(t, "calculate_total", fn.Name)
	assert.Equal(t, "float", fn.ReturnType)
	assert.Equal(t, "Sum item prices and apply tax.", fn.Docstring)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, domain.Parameter{Name: "items", TypeLabel: "list"}, fn.Params[0])
	assert.Equal(t, "tax_rate", fn.Params[1].Name)
	assert.Equal(t, "float", fn.Params[1].TypeLabel)
	assert.Equal(t, "0.2", fn.Params[1].Default)
}

func TestExtract_ClassMembers(t *testing.T) {
	module := extract(t, "orders.py", sampleSource)

	cls := module.Classes[0]
	assert.Equal(t, "OrderProcessor", cls.Name)
	assert.Equal(t, "Processes orders end to end.", cls.Docstring)

	names := make([]string, len(cls.Methods))
	for i, m := range cls.Methods {
		names[i] = m.Name
	}
	assert.Equal(t, []string{"__init__", "submit", "describe"}, names)
	assert.True(t, cls.Methods[0].IsDunder)

	// self is dropped from method parameters.
	require.Len(t, cls.Methods[1].Params, 1)
	assert.Equal(t, "order_id", cls.Methods[1].Params[0].Name)
	assert.Equal(t, "int", cls.Methods[1].Params[0].TypeLabel)

	assert.Equal(t, []string{"staticmethod"}, cls.Methods[2].Decorators)

	require.Len(t, cls.Properties, 1)
	assert.Equal(t, "retries", cls.Properties[0].Name)
}

func TestExtract_ImportsAndConstants(t *testing.T) {
	module := extract(t, "orders.py", sampleSource)

	require.Len(t, module.Constants, 1)
	assert.Equal(t, "MAX_RETRIES", module.Constants[0].Name)
	assert.Equal(t, "3", module.Constants[0].Value)

	var kinds, modules, names []string
	for _, imp := range module.Imports {
		kinds = append(kinds, imp.Kind)
		modules = append(modules, imp.Module)
		names = append(names, imp.Name)
	}
	assert.Contains(t, modules, "os")
	assert.Contains(t, modules, "decimal")
	assert.Contains(t, names, "Decimal")
	assert.Contains(t, names, "Optional")
	assert.Contains(t, kinds, "import")
	assert.Contains(t, kinds, "from_import")

	for _, imp := range module.Imports {
		if imp.Module == "json" {
			assert.Equal(t, "j", imp.Alias)
		}
	}
}

func TestExtract_AssertionCounts(t *testing.T) {
	module := extract(t, "test_orders.py", sampleTests)

	require.Len(t, module.Functions, 1)
	assert.Equal(t, 2, module.Functions[0].Assertions)
	assert.Equal(t, "Verify tax is applied to the order total.", module.Functions[0].Docstring)

	require.Len(t, module.Classes, 1)
	require.Len(t, module.Classes[0].Methods, 1)
	assert.Equal(t, 1, module.Classes[0].Methods[0].Assertions)
}

func TestExtract_LineSpans(t *testing.T) {
	module := extract(t, "test_orders.py", sampleTests)

	fn := module.Functions[0]
	assert.Equal(t, 3, fn.StartLine)
	assert.Greater(t, fn.EndLine, fn.StartLine)
}

func TestExtract_SyntaxErrorDegrades(t *testing.T) {
	module, err := parser.New().Extract("broken.py", []byte("def broken(:\n    pass\n"))
	require.NoError(t, err)

	assert.True(t, module.IsDegraded())
	assert.Empty(t, module.Functions)
	assert.Empty(t, module.Classes)
	assert.Equal(t, "broken", module.Name)
}

func TestExtract_ImportPathRootStripping(t *testing.T) {
	cases := map[string]string{
		"src/shop/orders.py": "shop.orders",
		"lib/util.py":        "util",
		"shop/orders.py":     "shop.orders",
		"orders.py":          "orders",
		"src.py":             "src",
	}
	for path, want := range cases {
		module := extract(t, path, "x = 1\n")
		assert.Equal(t, want, module.ImportPath, "path %s", path)
	}
}

func TestExtract_EmptyFile(t *testing.T) {
	module := extract(t, "empty.py", "")
	assert.False(t, module.IsDegraded())
	assert.Empty(t, module.Functions)
}
