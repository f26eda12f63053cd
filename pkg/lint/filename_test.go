package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/olypsys/stylecheck/pkg/domain"
)

func TestCheckFileName(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		kind      domain.FileKind
		wantRules []string
	}{
		{
			name: "camel case name passes",
			path: "src/AudioEngine.cpp",
			kind: domain.KindCSource,
		},
		{
			name: "entry point exempt from camel case",
			path: "src/main.cpp",
			kind: domain.KindCSource,
		},
		{
			name:      "lowercase name fails camel case",
			path:      "src/engine.cpp",
			kind:      domain.KindCSource,
			wantRules: []string{"FileName.NotCamelCase"},
		},
		{
			name:      "underscore triggers both rules",
			path:      "src/audio_engine.cpp",
			kind:      domain.KindCSource,
			wantRules: []string{"FileName.NotCamelCase", "FileName.ForbiddenCharacter"},
		},
		{
			name:      "hyphen in camel case name",
			path:      "app/My-View.kt",
			kind:      domain.KindKotlin,
			wantRules: []string{"FileName.ForbiddenCharacter"},
		},
		{
			name:      "space in name",
			path:      "app/My View.kt",
			kind:      domain.KindKotlin,
			wantRules: []string{"FileName.ForbiddenCharacter"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFile(tt.path, tt.kind, "")
			diags := checkFileName(f)

			var rules []string
			for _, d := range diags {
				rules = append(rules, d.Rule)
			}
			assert.Equal(t, tt.wantRules, rules)
		})
	}
}
