package logging

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// debugKeyField names the field that tags lines logged under a debug-mode context.
const debugKeyField = "debug_key"

type impl struct {
	name      string
	level     AtomicLevel
	inUTC     bool
	appenders []Appender
}

func (imp *impl) SetLevel(level Level) {
	imp.level.Set(level)
}

func (imp *impl) AddAppender(appender Appender) {
	imp.appenders = append(imp.appenders, appender)
}

func (imp *impl) CDebugf(ctx context.Context, template string, args ...interface{}) {
	if imp.level.Enabled(DEBUG) || IsDebugMode(ctx) {
		imp.write(ctx, DEBUG, fmt.Sprintf(template, args...), nil)
	}
}

func (imp *impl) CDebugw(ctx context.Context, msg string, keysAndValues ...interface{}) {
	if imp.level.Enabled(DEBUG) || IsDebugMode(ctx) {
		imp.write(ctx, DEBUG, msg, fieldsFromPairs(keysAndValues))
	}
}

func (imp *impl) Infof(template string, args ...interface{}) {
	if imp.level.Enabled(INFO) {
		imp.write(context.Background(), INFO, fmt.Sprintf(template, args...), nil)
	}
}

func (imp *impl) Infow(msg string, keysAndValues ...interface{}) {
	if imp.level.Enabled(INFO) {
		imp.write(context.Background(), INFO, msg, fieldsFromPairs(keysAndValues))
	}
}

// write must be called directly from a Logger method so the caller lookup lands on user code.
func (imp *impl) write(ctx context.Context, level Level, msg string, fields []zapcore.Field) {
	entry := zapcore.Entry{
		Level:      level.AsZap(),
		Time:       time.Now(),
		LoggerName: imp.name,
		Message:    msg,
		Caller:     callerAt(3),
	}
	if imp.inUTC {
		entry.Time = entry.Time.UTC()
	}
	if key := DebugKey(ctx); key != "" {
		fields = append(fields, zap.String(debugKeyField, key))
	}
	for _, appender := range imp.appenders {
		if err := appender.Write(entry, fields); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

// fieldsFromPairs reads alternating keys and values. Values that implement zapcore.ObjectMarshaler
// or zapcore.ArrayMarshaler are encoded through those methods.
func fieldsFromPairs(keysAndValues []interface{}) []zapcore.Field {
	fields := make([]zapcore.Field, 0, (len(keysAndValues)+1)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		if i+1 == len(keysAndValues) {
			fields = append(fields, zap.Error(errors.New("no value for log key "+key)))
			break
		}
		fields = append(fields, zap.Any(key, keysAndValues[i+1]))
	}
	return fields
}

func callerAt(skip int) zapcore.EntryCaller {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return zapcore.EntryCaller{}
	}
	caller := zapcore.EntryCaller{Defined: true, PC: pc, File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		caller.Function = fn.Name()
	}
	return caller
}
