package logquery

import (
	"context"
	"os"

	"github.com/roadrunner-server/endure/v2/dep"
	"github.com/roadrunner-server/errors"
	"github.com/roadrunner-server/logquery/invocation"
	"github.com/roadrunner-server/logquery/recorder"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const pluginName string = "logquery"

type Configurer interface {
	// UnmarshalKey takes a single key and unmarshal it into a Struct.
	UnmarshalKey(name string, out any) error
	// Has checks if config section exists.
	Has(name string) bool
}

// Logger is the interface plugins depend on to get their named zap logger.
type Logger interface {
	NamedLogger(string) *zap.Logger
}

type Plugin struct {
	cfg  *Config
	rec  *recorder.Recorder
	base *zap.Logger
}

func (p *Plugin) Init(cfg Configurer) error {
	const op = errors.Op("logquery_plugin_init")

	conf := &Config{}
	if cfg.Has(pluginName) {
		err := cfg.UnmarshalKey(pluginName, conf)
		if err != nil {
			return errors.E(op, err)
		}
	}

	level, err := conf.InitDefault()
	if err != nil {
		return errors.E(op, err)
	}

	p.cfg = conf
	p.rec = recorder.New()

	core := p.rec.Core(level)
	if conf.Console {
		core = zapcore.NewTee(core, newConsoleCore(conf.Encoding, level))
	}

	p.base = zap.New(core)

	return nil
}

func (p *Plugin) Serve() chan error {
	return make(chan error, 1)
}

func (p *Plugin) Stop(context.Context) error {
	// stdout sync fails on some terminals, nothing to flush in the recorder
	_ = p.base.Sync()
	return nil
}

func (p *Plugin) Provides() []*dep.Out {
	return []*dep.Out{
		dep.Bind((*Logger)(nil), p.ProvideLogger),
	}
}

// Weight puts the plugin ahead of the default logger.
func (p *Plugin) Weight() uint {
	return 100
}

func (p *Plugin) Name() string {
	return pluginName
}

func (p *Plugin) ProvideLogger() *Log {
	return NewLog(p.base)
}

// Recorder returns the store holding every call made through provided loggers.
func (p *Plugin) Recorder() *recorder.Recorder {
	return p.rec
}

type Log struct {
	base *zap.Logger
}

func NewLog(log *zap.Logger) *Log {
	return &Log{
		base: log,
	}
}

// NamedLogger returns a logger whose calls are recorded under name, so they can be
// verified through Recorder().Category(name).
func (l *Log) NamedLogger(name string) *zap.Logger {
	return l.base.Named(name)
}

func newConsoleCore(encoding string, level invocation.Level) zapcore.Core {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = invocation.EncodeLevel

	var enc zapcore.Encoder
	switch encoding {
	case jsonEncoding:
		enc = zapcore.NewJSONEncoder(encCfg)
	default:
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	return zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), level)
}
