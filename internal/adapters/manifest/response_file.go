package manifest

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/projsync/internal/core/domain"
	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/shell"
)

// shellMeta are the characters the shell parser would treat as operators or
// expansions outside of quotes.
const shellMeta = ";&|<>()$`{}~\\"

// ParseResponseFile parses a compiler response file. Relative paths are resolved against
// projectDir, and references not found there are looked up in systemRefDirs.
func (s *Source) ParseResponseFile(
	path, projectDir string,
	systemRefDirs []string,
) (*domain.ResponseFileData, error) {
	full := filepath.FromSlash(path)
	if !filepath.IsAbs(full) {
		full = filepath.Join(projectDir, full)
	}

	//nolint:gosec // response files are listed by the build manifest
	data, err := os.ReadFile(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrResponseFileNotFound, "failed to parse response file"), "path", full)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read response file"), "path", full)
	}

	args, err := splitArguments(string(data))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to tokenize response file"), "path", full)
	}

	result := &domain.ResponseFileData{}
	for _, arg := range args {
		applyArgument(result, arg, projectDir, systemRefDirs)
	}
	return result, nil
}

// splitArguments tokenizes response file content with shell quoting rules.
// Every other character, backslashes included, is kept literally.
func splitArguments(content string) ([]string, error) {
	return shell.Fields(escapeShellMeta(content), func(string) string { return "" })
}

// escapeShellMeta backslash-escapes operator characters so that they stay literal.
func escapeShellMeta(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	var quote rune
	for _, r := range s {
		switch {
		case quote == '\'':
			if r == '\'' {
				quote = 0
			}
		case r == '\'' && quote == 0, r == '"' && quote == 0:
			quote = r
		case r == '"' && quote == '"':
			quote = 0
		case quote == '"' && (r == '$' || r == '`' || r == '\\'):
			b.WriteByte('\\')
		case quote == 0 && strings.ContainsRune(shellMeta, r):
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func applyArgument(result *domain.ResponseFileData, arg, projectDir string, systemRefDirs []string) {
	name, value, hasValue := strings.Cut(arg, ":")
	switch strings.ToLower(name) {
	case "-define", "-d", "/define", "/d":
		if hasValue {
			result.Defines = append(result.Defines, splitDefines(value)...)
			return
		}
	case "-reference", "-r", "/reference", "/r":
		if hasValue {
			for _, ref := range strings.Split(value, ",") {
				if ref = strings.TrimSpace(ref); ref == "" {
					continue
				}
				if resolved, ok := resolveReference(ref, projectDir, systemRefDirs); ok {
					result.FullPathReferences = append(result.FullPathReferences, resolved)
				} else {
					result.Errors = append(result.Errors, "reference not found: "+ref)
				}
			}
			return
		}
	case "-unsafe", "-unsafe+", "/unsafe", "/unsafe+":
		if !hasValue {
			result.Unsafe = true
			return
		}
	case "-unsafe-", "/unsafe-":
		if !hasValue {
			result.Unsafe = false
			return
		}
	}
	result.OtherArguments = append(result.OtherArguments, arg)
}

func splitDefines(value string) []string {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ';' || r == ','
	})
	defines := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			defines = append(defines, f)
		}
	}
	return defines
}

// resolveReference reads backslashes in ref as path separators.
func resolveReference(ref, projectDir string, systemRefDirs []string) (string, bool) {
	ref = filepath.FromSlash(strings.ReplaceAll(ref, `\`, "/"))
	if filepath.IsAbs(ref) {
		return ref, fileExists(ref)
	}

	candidates := make([]string, 0, len(systemRefDirs)+1)
	candidates = append(candidates, filepath.Join(projectDir, ref))
	for _, dir := range systemRefDirs {
		candidates = append(candidates, filepath.Join(dir, ref))
	}
	for _, candidate := range candidates {
		if fileExists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
