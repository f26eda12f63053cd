package lint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUpperCamelCase(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "camel case", in: "FooBar", want: true},
		{name: "single word capitalized", in: "Foo", want: true},
		{name: "all lowercase", in: "foobar", want: false},
		{name: "all uppercase", in: "FOOBAR", want: false},
		{name: "underscore", in: "Foo_Bar", want: false},
		{name: "leading lowercase", in: "fooBar", want: false},
		{name: "empty", in: "", want: false},
		{name: "filename with extension", in: "FooBar.cpp", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUpperCamelCase(tt.in))
		})
	}
}

func TestIsLongSnakeCase(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "short lowercase", in: "abc", want: true},
		{name: "short with underscore", in: "foo_bar", want: true},
		{name: "25 chars no underscore", in: strings.Repeat("a", 25), want: true},
		{name: "26 chars no underscore", in: strings.Repeat("a", 26), want: false},
		{name: "26 chars with underscore", in: strings.Repeat("a_", 13), want: true},
		{name: "uppercase", in: "FooBar", want: false},
		{name: "empty", in: "", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLongSnakeCase(tt.in))
		})
	}
}
