package history

import "github.com/sgostarter/i/l"

type Options struct {
	logger l.Wrapper
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{}
	for _, o := range option {
		o(opts)
	}

	if opts.logger == nil {
		opts.logger = l.NewNopLoggerWrapper()
	}

	opts.logger = opts.logger.WithFields(l.StringField(l.ClsKey, "history"))

	return opts
}

func LoggerOption(logger l.Wrapper) Option {
	return func(o *Options) {
		o.logger = logger
	}
}
