package logger

import (
	"time"

	"go.uber.org/zap"
)

// Field is a structured log field. Packages build fields through the
// constructors below and never import zap themselves.
type Field = zap.Field

func String(key, val string) Field { return zap.String(key, val) }

func Int(key string, val int) Field { return zap.Int(key, val) }

func Uint32(key string, val uint32) Field { return zap.Uint32(key, val) }

func Bool(key string, val bool) Field { return zap.Bool(key, val) }

func Duration(key string, val time.Duration) Field { return zap.Duration(key, val) }

func Any(key string, val interface{}) Field { return zap.Any(key, val) }

// Err attaches err under the "error" key
func Err(err error) Field { return zap.Error(err) }
