package lifecycle

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/5cript/simple-util/internal/logging"
	"github.com/5cript/simple-util/pkg/valueptr"
)

// DefaultLogger returns the runtime logger: info level with timestamps,
// writing to stderr. SIMPLEUTIL_LOG_LEVEL and SIMPLEUTIL_LOG_TIMESTAMP
// override it and are read on every call.
func DefaultLogger() zerolog.Logger {
	return defaultLogger(nil)
}

func defaultLogger(w io.Writer) zerolog.Logger {
	return logging.New(logging.ProfileRuntime, w)
}

// LoggedCloner wraps Inner and logs each clone. A zero Logger discards events.
type LoggedCloner[P any, C valueptr.Cloner[P]] struct {
	Inner  C
	Logger zerolog.Logger
}

// Clone implements valueptr.Cloner.
func (c LoggedCloner[P, C]) Clone(p P) (P, error) {
	cp, err := c.Inner.Clone(p)
	if err != nil {
		c.Logger.Warn().Err(err).Str("event", "clone").Type("type", p).Msg("clone failed")
		return cp, err
	}
	c.Logger.Debug().Str("event", "clone").Type("type", p).Msg("cloned pointee")
	return cp, nil
}

// LoggedDestroyer wraps Inner and logs each destroy.
type LoggedDestroyer[P any, D valueptr.Destroyer[P]] struct {
	Inner  D
	Logger zerolog.Logger
}

// Destroy implements valueptr.Destroyer.
func (d LoggedDestroyer[P, D]) Destroy(p P) {
	d.Logger.Debug().Str("event", "destroy").Type("type", p).Msg("destroying pointee")
	d.Inner.Destroy(p)
}

// NewLogged takes ownership of p with both policies wrapped for logging.
func NewLogged[P comparable, C valueptr.Cloner[P], D valueptr.Destroyer[P]](
	p P, c C, d D, logger zerolog.Logger,
) *valueptr.Ref[P, LoggedCloner[P, C], LoggedDestroyer[P, D]] {
	return valueptr.New(p,
		LoggedCloner[P, C]{Inner: c, Logger: logger},
		LoggedDestroyer[P, D]{Inner: d, Logger: logger},
	)
}

// NewLoggedDefault is NewLogged with DefaultLogger.
func NewLoggedDefault[P comparable, C valueptr.Cloner[P], D valueptr.Destroyer[P]](
	p P, c C, d D,
) *valueptr.Ref[P, LoggedCloner[P, C], LoggedDestroyer[P, D]] {
	return NewLogged(p, c, d, DefaultLogger())
}
