package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// GenerationFlagsKey is the preference key the flags are persisted under.
const GenerationFlagsKey = "unity_project_generation_flag"

// GenerationFlags is a set of independently toggleable project generation policies.
type GenerationFlags uint32

const (
	FlagNone             GenerationFlags = 0
	FlagEmbedded         GenerationFlags = 1 << 0
	FlagLocal            GenerationFlags = 1 << 1
	FlagRegistry         GenerationFlags = 1 << 2
	FlagGit              GenerationFlags = 1 << 3
	FlagBuiltIn          GenerationFlags = 1 << 4
	FlagUnknown          GenerationFlags = 1 << 5
	FlagPlayerAssemblies GenerationFlags = 1 << 6
	FlagLocalTarball     GenerationFlags = 1 << 7
)

// DefaultGenerationFlags shows editor assemblies and embedded and local packages.
const DefaultGenerationFlags = FlagEmbedded | FlagLocal

var flagNames = []struct {
	flag GenerationFlags
	name string
}{
	{FlagEmbedded, "embedded"},
	{FlagLocal, "local"},
	{FlagRegistry, "registry"},
	{FlagGit, "git"},
	{FlagBuiltIn, "builtin"},
	{FlagUnknown, "unknown"},
	{FlagPlayerAssemblies, "player"},
	{FlagLocalTarball, "local-tarball"},
}

// Has reports whether every bit of f is set. Has(FlagNone) is always true.
func (g GenerationFlags) Has(f GenerationFlags) bool {
	return g&f == f
}

// Toggle clears f when all of its bits are set and sets it otherwise.
func (g GenerationFlags) Toggle(f GenerationFlags) GenerationFlags {
	if g.Has(f) {
		return g ^ f
	}
	return g | f
}

// String returns the set flag names joined by "|", or "none".
func (g GenerationFlags) String() string {
	if g == FlagNone {
		return "none"
	}
	var names []string
	for _, fn := range flagNames {
		if g.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, "|")
}

// FlagNames returns the names accepted by ParseGenerationFlag.
func FlagNames() []string {
	names := make([]string, 0, len(flagNames))
	for _, fn := range flagNames {
		names = append(names, fn.name)
	}
	return names
}

// ParseGenerationFlag maps a case-insensitive flag name to its bit.
func ParseGenerationFlag(name string) (GenerationFlags, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "none" {
		return FlagNone, nil
	}
	for _, fn := range flagNames {
		if fn.name == key {
			return fn.flag, nil
		}
	}
	return FlagNone, zerr.With(zerr.Wrap(ErrUnknownFlag, "parse generation flag"), "flag", name)
}
