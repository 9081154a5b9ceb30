package pandoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromYAML(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		raw  any
		want Value
	}{
		"nil becomes null":       {raw: nil, want: Null()},
		"bool true":              {raw: true, want: Bool(true)},
		"bool false":             {raw: false, want: Bool(false)},
		"int":                    {raw: 3, want: Number(3)},
		"int64":                  {raw: int64(7), want: Number(7)},
		"float":                  {raw: 2.5, want: Number(2.5)},
		"string":                 {raw: "xelatex", want: String("xelatex")},
		"string with spaces":     {raw: "My Template.latex", want: String("My Template.latex")},
		"sequence of strings":    {raw: []any{"a.css", "b.css"}, want: List(String("a.css"), String("b.css"))},
		"mixed sequence":         {raw: []any{"a", 2}, want: List(String("a"), Number(2))},
		"sequence with nil":      {raw: []any{nil}, want: List(Null())},
		"empty sequence":         {raw: []any{}, want: Value{Kind: ValueList, List: []Value{}}},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := FromYAML(test.raw)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestFromYAMLRejectsMappings(t *testing.T) {
	t.Parallel()

	_, err := FromYAML(map[string]any{"a": 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported")
}

func TestValueFormat(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		v    Value
		want string
	}{
		"bool":           {v: Bool(true), want: "true"},
		"integer number": {v: Number(3), want: "3"},
		"decimal number": {v: Number(1.5), want: "1.5"},
		"string":         {v: String("eisvogel.latex"), want: "eisvogel.latex"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.want, test.v.Format())
		})
	}
}
