package xconfig

import (
	"fmt"
)

type Options struct {
	files     []string
	envPrefix string
}

type Option func(*Options)

// WithFiles loads the named files in order. Missing files are skipped.
func WithFiles(filenames ...string) Option {
	return func(o *Options) {
		for _, name := range filenames {
			if name != "" {
				o.files = append(o.files, name)
			}
		}
	}
}

// WithEnv overrides loaded values from PREFIX_FIELD environment variables.
func WithEnv(prefix string) Option {
	return func(o *Options) {
		o.envPrefix = prefix
	}
}

// Load fills config in order: `default` tags, Default() methods, files, environment.
func Load(config interface{}, options ...Option) error {
	opts := &Options{}
	for _, option := range options {
		option(opts)
	}

	configElem, err := validateConfigPointer(config)
	if err != nil {
		return fmt.Errorf("failed to validate config: %w", err)
	}

	if err := applyDefaultTagsRecursive(configElem); err != nil {
		return fmt.Errorf("failed to apply default tags: %w", err)
	}

	callDefaultMethodsRecursive(configElem)

	for _, filename := range opts.files {
		if err := loadFromFile(config, filename); err != nil {
			return fmt.Errorf("failed to load file %s: %w", filename, err)
		}
	}

	if opts.envPrefix != "" {
		if err := loadFromEnv(configElem, opts.envPrefix); err != nil {
			return fmt.Errorf("failed to load from environment: %w", err)
		}
	}

	return nil
}
