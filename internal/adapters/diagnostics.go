package adapters

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/delexi/ensime/internal/ports"
)

// ZerologDiagnostics writes resolution progress and failures to the
// zerolog logger carried by the context.
type ZerologDiagnostics struct{}

func NewZerologDiagnostics() ZerologDiagnostics {
	return ZerologDiagnostics{}
}

func (ZerologDiagnostics) Info(ctx context.Context, msg string) {
	log.Ctx(ctx).Info().Msg(msg)
}

func (ZerologDiagnostics) Error(ctx context.Context, msg string, err error) {
	log.Ctx(ctx).Error().Err(err).Msg(msg)
}

var _ ports.DiagnosticsPort = ZerologDiagnostics{}
