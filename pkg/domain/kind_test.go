package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindForPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want FileKind
	}{
		{name: "cpp source", path: "src/Engine.cpp", want: KindCSource},
		{name: "cxx source", path: "src/Engine.cxx", want: KindCSource},
		{name: "header", path: "include/Engine.hpp", want: KindCHeader},
		{name: "java", path: "app/Main.java", want: KindJava},
		{name: "kotlin", path: "app/Main.kt", want: KindKotlin},
		{name: "kotlin script", path: "build/Deploy.kts", want: KindKotlin},
		{name: "xml", path: "res/Layout.xml", want: KindXml},
		{name: "swift", path: "ios/View.swift", want: KindSwift},
		{name: "uppercase extension", path: "src/Engine.CPP", want: KindCSource},
		{name: "mixed case extension", path: "ios/View.Swift", want: KindSwift},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := KindForPath(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestKindForPathUnsupported(t *testing.T) {
	for _, path := range []string{"main.go", "README.md", "Makefile", "archive.tar.gz", ""} {
		t.Run(path, func(t *testing.T) {
			_, err := KindForPath(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnsupportedKind)
		})
	}
}

func TestKindSetHas(t *testing.T) {
	cOnly := NewKindSet(KindCSource, KindCHeader)

	assert.True(t, cOnly.Has(KindCSource))
	assert.True(t, cOnly.Has(KindCHeader))
	assert.False(t, cOnly.Has(KindKotlin))
	assert.False(t, cOnly.Has(KindXml))
}

func TestKindSetZeroValueIsUniversal(t *testing.T) {
	var all KindSet
	for _, k := range []FileKind{KindCSource, KindCHeader, KindJava, KindKotlin, KindXml, KindSwift} {
		assert.True(t, all.Has(k), "zero KindSet should contain %s", k)
	}
}
