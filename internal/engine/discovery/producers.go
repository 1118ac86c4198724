package discovery

import (
	"strings"

	"go.trai.ch/ccscope/internal/core/domain"
	"go.trai.ch/ccscope/internal/core/ports"
)

// Producer discovers build targets from one launch.
type Producer interface {
	Produce(inv *domain.ProcessInvocation, parsed domain.ParsedArgs) []domain.BuildTarget
}

// ArchiveProducer records the archive an archiver launch creates or updates.
type ArchiveProducer struct{}

// arOperationLetters are the operation and modifier letters of ar's first argument.
const arOperationLetters = "dmpqrstxabcDfilMNoOPsSTuUvV"

// Produce returns the first .a operand when its base name carries the library prefix.
func (ArchiveProducer) Produce(inv *domain.ProcessInvocation, _ domain.ParsedArgs) []domain.BuildTarget {
	opSeen := false
	for _, arg := range inv.Arguments() {
		if strings.HasPrefix(arg, "-") {
			continue
		}
		if !opSeen && isArOperation(arg) {
			opSeen = true
			continue
		}
		if !strings.HasSuffix(arg, domain.StaticLibrarySuffix) {
			continue
		}
		if !domain.HasLibraryPrefix(arg) {
			return nil
		}
		if t, ok := domain.NewBuildTarget(arg); ok {
			return []domain.BuildTarget{t}
		}
		return nil
	}
	return nil
}

func isArOperation(arg string) bool {
	if arg == "" {
		return false
	}
	for _, r := range arg {
		if !strings.ContainsRune(arOperationLetters, r) {
			return false
		}
	}
	return true
}

// OutputProducer records the declared output of a link.
type OutputProducer struct{}

// Produce returns the target named by -o, if it is a binary.
func (OutputProducer) Produce(_ *domain.ProcessInvocation, parsed domain.ParsedArgs) []domain.BuildTarget {
	if parsed.Output == "" {
		return nil
	}
	if t, ok := domain.NewBuildTarget(parsed.Output); ok {
		return []domain.BuildTarget{t}
	}
	return nil
}

// StaticDependencyProducer records the project's own static libraries a link consumes.
type StaticDependencyProducer struct {
	Root     string
	Resolver ports.PathResolver
}

// Produce returns every lib*.a operand that resolves inside Root.
func (p StaticDependencyProducer) Produce(inv *domain.ProcessInvocation, parsed domain.ParsedArgs) []domain.BuildTarget {
	var targets []domain.BuildTarget
	for _, op := range parsed.Operands {
		if !strings.HasSuffix(op, domain.StaticLibrarySuffix) {
			continue
		}
		canonical, err := p.Resolver.Canonicalize(inv.Dir, op)
		if err != nil || !domain.IsStaticLibrary(canonical) || !p.Resolver.InScope(p.Root, canonical) {
			continue
		}
		if t, ok := domain.NewBuildTarget(canonical); ok {
			targets = append(targets, t)
		}
	}
	return targets
}
