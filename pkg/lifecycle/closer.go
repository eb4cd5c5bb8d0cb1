package lifecycle

import (
	"io"

	"github.com/rs/zerolog"
)

// Close is a destroy policy for io.Closer pointees. Destroy policies cannot
// fail, so close errors are logged and dropped.
type Close[P io.Closer] struct {
	Logger zerolog.Logger
}

// Destroy implements valueptr.Destroyer.
func (c Close[P]) Destroy(p P) {
	if err := p.Close(); err != nil {
		c.Logger.Error().Err(err).Str("event", "destroy").Type("type", p).Msg("close failed")
	}
}
