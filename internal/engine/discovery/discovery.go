// Package discovery turns intercepted toolchain launches into recorded
// compile units, preprocessed artifacts and build targets.
package discovery

import (
	"context"
	"fmt"

	"go.trai.ch/ccscope/internal/core/domain"
	"go.trai.ch/ccscope/internal/core/ports"
)

// Observer records what one toolchain launch contributes to the build.
//
// Observe never fails: every problem is logged and dropped so the launch
// itself proceeds unchanged.
type Observer struct {
	settings domain.Settings
	resolver ports.PathResolver
	ledger   ports.Ledger
	targets  ports.TargetSet
	mirror   *Mirror
	logger   ports.Logger
}

// NewObserver creates an Observer recording into the workspace of settings.
func NewObserver(
	settings domain.Settings,
	resolver ports.PathResolver,
	ledger ports.Ledger,
	targets ports.TargetSet,
	preprocessor ports.Preprocessor,
	logger ports.Logger,
) *Observer {
	return &Observer{
		settings: settings,
		resolver: resolver,
		ledger:   ledger,
		targets:  targets,
		mirror:   NewMirror(settings, preprocessor, logger),
		logger:   logger,
	}
}

// Observe classifies inv and runs the discovery actions its role calls for.
// inv.Env is replaced with an environment that marks every action that ran,
// so nested launches of the same step skip it.
func (o *Observer) Observe(ctx context.Context, inv *domain.ProcessInvocation) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Warn(fmt.Sprintf("discovery of %s aborted: %v", inv.Program, r))
		}
	}()

	if !o.settings.Enabled() {
		return
	}

	role := o.settings.Classifier.Classify(inv.Program)
	if role == domain.RoleNone {
		return
	}

	skip := domain.MarkersFromEnv(inv.Env)
	parsed := domain.ParseArgs(inv.Arguments())

	var ran domain.Markers
	if role == domain.RoleCompiler && !skip.Compile {
		ran.Compile = o.discoverUnits(ctx, inv, parsed)
	}
	if linksOrArchives(role, parsed) && !skip.Link {
		o.discoverTargets(inv, role, parsed)
		ran.Link = true
	}

	if ran.Compile || ran.Link {
		inv.Env = ran.Apply(inv.Env)
	}
}

func linksOrArchives(role domain.Role, parsed domain.ParsedArgs) bool {
	switch role {
	case domain.RoleLinker, domain.RoleArchiver:
		return true
	case domain.RoleCompiler:
		return parsed.ActsAsLinker()
	default:
		return false
	}
}

// discoverUnits records the in-scope sources of a compiler launch and
// mirrors their preprocessed form. It reports whether any source qualified.
func (o *Observer) discoverUnits(ctx context.Context, inv *domain.ProcessInvocation, parsed domain.ParsedArgs) bool {
	var sources []string
	for _, src := range parsed.Sources {
		canonical, err := o.resolver.Canonicalize(inv.Dir, src)
		if err != nil {
			o.logger.Debug(fmt.Sprintf("skipping source %s: %v", src, err))
			continue
		}
		if !o.resolver.Readable(canonical) || !o.resolver.InScope(o.settings.ProjectRoot, canonical) {
			continue
		}
		sources = append(sources, canonical)
	}
	if len(sources) == 0 {
		return false
	}

	entry := domain.NewLedgerEntry(parsed.Flags, inv.Dir, sources)
	if err := o.ledger.Append(o.settings.LedgerPath(), entry); err != nil {
		o.logger.Debug(err.Error())
	}
	o.mirror.Run(ctx, entry.Units)
	return true
}

func (o *Observer) discoverTargets(inv *domain.ProcessInvocation, role domain.Role, parsed domain.ParsedArgs) {
	var names []string
	seen := make(map[string]bool)
	for _, p := range o.producersFor(role) {
		for _, t := range p.Produce(inv, parsed) {
			if seen[t.Name] {
				continue
			}
			seen[t.Name] = true
			names = append(names, t.Name)
		}
	}
	if len(names) == 0 {
		return
	}
	if err := o.targets.Merge(o.settings.TargetsPath(), names); err != nil {
		o.logger.Debug(err.Error())
	}
}

func (o *Observer) producersFor(role domain.Role) []Producer {
	if role == domain.RoleArchiver {
		return []Producer{ArchiveProducer{}}
	}
	return []Producer{
		OutputProducer{},
		StaticDependencyProducer{Root: o.settings.ProjectRoot, Resolver: o.resolver},
	}
}
