// Package lifecycle decorates valueptr policies with logging and accounting.
//
// LoggedCloner and LoggedDestroyer emit structured zerolog events for every
// clone and destroy; DefaultLogger honors SIMPLEUTIL_LOG_LEVEL and
// SIMPLEUTIL_LOG_TIMESTAMP. CountedCloner and CountedDestroyer report into a shared
// Counter, which tests use to prove that every pointee is destroyed exactly
// once; a Counter is also a prometheus.Collector. Close is a destroy policy for pointees that hold OS resources.
package lifecycle
