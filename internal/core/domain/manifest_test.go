package domain_test

import (
	"testing"

	"github.com/bytes00000111/nativelink/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestValidModuleName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "simple", input: "rules_toolchain", want: true},
		{name: "dotted", input: "hermetic.cc", want: true},
		{name: "hyphen", input: "bazel-toolchains", want: true},
		{name: "single letter", input: "a", want: true},
		{name: "empty", input: "", want: false},
		{name: "leading digit", input: "9rules", want: false},
		{name: "uppercase", input: "Rules", want: false},
		{name: "trailing dot", input: "rules.", want: false},
		{name: "slash", input: "rules/cc", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ValidModuleName(tt.input))
		})
	}
}

func TestPinManifest_Lookups(t *testing.T) {
	m := &domain.PinManifest{
		Name:    domain.NewInternedString("remote-config"),
		Version: "0.1.0",
		Deps: []domain.DepPin{
			{Name: domain.NewInternedString("rules_toolchain"), Version: "0.55.1"},
			{Name: domain.NewInternedString("hermetic_cc"), Version: "4.0.2", DevDependency: true},
		},
		Overrides: []domain.PathOverride{
			{Module: domain.NewInternedString("hermetic_cc"), Path: "../hermetic_cc"},
		},
	}

	dep := m.Dep("rules_toolchain")
	assert.NotNil(t, dep)
	assert.Equal(t, "0.55.1", dep.Version)
	assert.Nil(t, m.Dep("unknown"))

	ov := m.Override("hermetic_cc")
	assert.NotNil(t, ov)
	assert.Equal(t, "../hermetic_cc", ov.Path)
	assert.Nil(t, m.Override("rules_toolchain"))
}

func TestEvictionPolicy_Unbounded(t *testing.T) {
	assert.True(t, domain.EvictionPolicy{}.Unbounded())
	assert.True(t, domain.EvictionPolicy{EvictBytes: 100}.Unbounded())
	assert.False(t, domain.EvictionPolicy{MaxBytes: 1}.Unbounded())
	assert.False(t, domain.EvictionPolicy{MaxAgeSeconds: 1}.Unbounded())
	assert.False(t, domain.EvictionPolicy{MaxCount: 1}.Unbounded())
}
