package logging

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/constraints"

	"github.com/Philanthropists/results/pkg/result"
)

func Duration[S ~string](s S, t time.Duration) Field {
	return zap.Duration(string(s), t)
}

func Int[S ~string, T constraints.Signed](s S, v T) Field {
	return zap.Int64(string(s), int64(v))
}

func Bool[S ~string](s S, v bool) Field {
	return zap.Bool(string(s), v)
}

func Error(err error) Field {
	return zap.Error(err)
}

func String[U, V ~string](s U, v V) Field {
	return zap.String(string(s), string(v))
}

// Result renders r as Ok(v) or Error(e) under key s.
func Result[S ~string, T, E any](s S, r result.Result[T, E]) Field {
	if r == nil {
		return zap.Skip()
	}
	return zap.Stringer(string(s), r)
}
