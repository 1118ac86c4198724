package discovery

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"go.trai.ch/ccscope/internal/core/domain"
	"go.trai.ch/ccscope/internal/core/ports"
)

// Mirror writes the preprocessed form of compile units into the mirrored tree.
type Mirror struct {
	settings     domain.Settings
	preprocessor ports.Preprocessor
	logger       ports.Logger
}

// NewMirror creates a Mirror below the mirror root of settings.
func NewMirror(settings domain.Settings, preprocessor ports.Preprocessor, logger ports.Logger) *Mirror {
	return &Mirror{settings: settings, preprocessor: preprocessor, logger: logger}
}

// Run preprocesses every unit. A failing unit does not stop the others;
// all failures are logged together.
func (m *Mirror) Run(ctx context.Context, units []domain.CompileUnit) {
	var result *multierror.Error
	for _, unit := range units {
		dst, err := m.settings.MirrorPath(unit.Source)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		if err := m.preprocessor.Preprocess(ctx, unit, dst); err != nil {
			result = multierror.Append(result, err)
			continue
		}
		m.logger.Debug(fmt.Sprintf("mirrored %s", unit.Source))
	}

	if err := result.ErrorOrNil(); err != nil {
		m.logger.Debug(err.Error())
	}
}
