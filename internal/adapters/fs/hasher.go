package fs

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/projsync/internal/core/domain"
	"go.trai.ch/projsync/internal/core/ports"
)

var _ ports.CatalogHasher = (*Hasher)(nil)

// Hasher fingerprints catalog entries with XXHash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeCatalogHash computes a single hash representing the entries, in order, and flags.
func (h *Hasher) ComputeCatalogHash(entries []domain.CatalogEntry, flags domain.GenerationFlags) string {
	hasher := xxhash.New()

	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[:4], uint32(flags))
	_, _ = hasher.Write(buf[:4])

	for i := range entries {
		h.hashEntry(&entries[i], hasher, buf[:])
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}

// hashEntry hashes every field of an entry that affects the generated project.
func (h *Hasher) hashEntry(e *domain.CatalogEntry, hasher *xxhash.Digest, buf []byte) {
	writeString(hasher, e.Name)
	writeString(hasher, e.OutputPath)
	writeString(hasher, e.RootNamespace)

	writeStrings(hasher, e.SourceFiles)
	writeStrings(hasher, e.Defines)
	writeStrings(hasher, e.AssemblyReferences)
	writeStrings(hasher, e.CompiledAssemblyReferences)
	writeStrings(hasher, e.CompilerOptions.ResponseFiles)

	binary.LittleEndian.PutUint32(buf[:4], uint32(e.Flags))
	_, _ = hasher.Write(buf[:4])

	unsafe := byte(0)
	if e.CompilerOptions.AllowUnsafeCode {
		unsafe = 1
	}
	_, _ = hasher.Write([]byte{unsafe})
	writeString(hasher, string(e.CompilerOptions.APICompatibilityLevel))

	_, _ = hasher.Write([]byte{0}) // Entry separator
}

func writeString(hasher *xxhash.Digest, s string) {
	_, _ = hasher.WriteString(s)
	_, _ = hasher.Write([]byte{0})
}

func writeStrings(hasher *xxhash.Digest, ss []string) {
	for _, s := range ss {
		writeString(hasher, s)
	}
	_, _ = hasher.Write([]byte{0}) // Section separator
}
