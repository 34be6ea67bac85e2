// Package domain contains the core domain models for assembly discovery and project generation.
package domain

// TargetKind identifies the compilation context a build unit belongs to.
type TargetKind int

const (
	// TargetEditor is the tooling-side compilation context.
	TargetEditor TargetKind = iota
	// TargetPlayer is the deployment-side compilation context.
	TargetPlayer
)

// String returns the lowercase name of the target kind.
func (k TargetKind) String() string {
	switch k {
	case TargetEditor:
		return "editor"
	case TargetPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// AssemblyFlags describes properties of a build unit reported by the build-unit source.
type AssemblyFlags uint32

const (
	// AssemblyFlagNone marks a unit without special properties.
	AssemblyFlagNone AssemblyFlags = 0
	// AssemblyFlagEditorAssembly marks a unit that is only compiled for the editor.
	AssemblyFlagEditorAssembly AssemblyFlags = 1 << 0
	// AssemblyFlagCandidateForCompilingWithRoslyn marks a unit that may be compiled with Roslyn.
	AssemblyFlagCandidateForCompilingWithRoslyn AssemblyFlags = 1 << 1
	// AssemblyFlagUserAssembly marks a unit defined by the user rather than a package.
	AssemblyFlagUserAssembly AssemblyFlags = 1 << 2
	// AssemblyFlagExplicitlyReferenced marks a unit that must be referenced explicitly.
	AssemblyFlagExplicitlyReferenced AssemblyFlags = 1 << 3
)

// APICompatibilityLevel is the .NET profile a unit is compiled against.
type APICompatibilityLevel string

const (
	APICompatibilityNET20         APICompatibilityLevel = "net_2_0"
	APICompatibilityNET20Subset   APICompatibilityLevel = "net_2_0_subset"
	APICompatibilityNET46         APICompatibilityLevel = "net_4_6"
	APICompatibilityNETWeb        APICompatibilityLevel = "net_web"
	APICompatibilityNETMicro      APICompatibilityLevel = "net_micro"
	APICompatibilityNETStandard20 APICompatibilityLevel = "net_standard_2_0"
	APICompatibilityNETStandard   APICompatibilityLevel = "net_standard"
	APICompatibilityNETUnity48    APICompatibilityLevel = "net_unity_4_8"
)

// CompilerOptions holds the compiler settings of a build unit.
type CompilerOptions struct {
	ResponseFiles         []string
	AllowUnsafeCode       bool
	APICompatibilityLevel APICompatibilityLevel
}

// BuildUnit is a named set of source files compiled together into one assembly.
// It is produced by an external source and never mutated by the catalog.
type BuildUnit struct {
	Name                       string
	SourceFiles                []string
	Defines                    []string
	AssemblyReferences         []string
	CompiledAssemblyReferences []string
	Flags                      AssemblyFlags
	CompilerOptions            CompilerOptions

	// RootNamespace is empty for sources that predate root namespace support.
	RootNamespace string
}

// ResponseFileData is the parsed content of a compiler response file.
type ResponseFileData struct {
	Defines            []string
	FullPathReferences []string
	Unsafe             bool
	Errors             []string
	OtherArguments     []string
}
