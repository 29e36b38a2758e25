package log

import (
	"context"
)

// Kv is a helper type for structured logging fields.
type Kv = map[string]interface{}

// Logger is the interface that the loggers used by the application will use.
type Logger interface {
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	WithValues(values map[string]interface{}) Logger
	WithCtxValues(ctx context.Context) Logger
	SetValuesOnCtx(parent context.Context, values map[string]interface{}) context.Context
}

// Noop logger doesn't log anything.
const Noop = noop(0)

type noop int

func (noop) Infof(format string, args ...interface{})    {}
func (noop) Warningf(format string, args ...interface{}) {}
func (noop) Errorf(format string, args ...interface{})   {}
func (noop) Debugf(format string, args ...interface{})   {}
func (n noop) WithValues(map[string]interface{}) Logger  { return n }
func (n noop) WithCtxValues(context.Context) Logger      { return n }
func (n noop) SetValuesOnCtx(parent context.Context, values map[string]interface{}) context.Context {
	return parent
}

type contextKey string

const contextLogValuesKey contextKey = "agentbox-log-values"

// CtxWithValues returns a copy of parent with the logger values merged on top
// of the ones already present.
func CtxWithValues(parent context.Context, kv Kv) context.Context {
	oldValues := ValuesFromCtx(parent)

	newValues := make(Kv, len(oldValues)+len(kv))
	for k, v := range oldValues {
		newValues[k] = v
	}
	for k, v := range kv {
		newValues[k] = v
	}

	return context.WithValue(parent, contextLogValuesKey, newValues)
}

// ValuesFromCtx gets the logger values from a context.
func ValuesFromCtx(ctx context.Context) Kv {
	values, ok := ctx.Value(contextLogValuesKey).(Kv)
	if !ok {
		return Kv{}
	}

	return values
}
