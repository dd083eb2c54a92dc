// Package config holds ecmacst's parser configuration: the handful of
// knobs that change how source text is accepted (the target ECMAScript
// edition, whether a bare `return` outside a function is tolerated, how
// wide a tab stops for diagnostic column reporting).
//
// Grounded on krotik-ecal/config/config.go's DefaultConfig-map-plus-
// overlay pattern and Str/Int/Bool-style typed accessors, adapted from
// a loose map[string]interface{} to a typed Config struct (ecmacst has a
// small, fixed, statically-known set of options rather than ECAL's
// open-ended worker/runtime settings) loaded from TOML instead of being
// hardcoded, following boergens-gotypst/eval/fileops.go's use of
// BurntSushi/toml to read a project manifest.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/krotik/common/errorutil"
)

// ECMAVersion identifies the language edition a parse should target.
// ecmacst's grammar does not currently vary syntax acceptance by edition
// (see DESIGN.md), but the field is carried through from Parse time so
// a future edition-gated feature (e.g. a new keyword) has somewhere to
// read it from without a config-shape migration.
type ECMAVersion string

const (
	ES2020 ECMAVersion = "ES2020"
	ES2022 ECMAVersion = "ES2022"
	ESNext ECMAVersion = "ESNext"
)

// Config is ecmacst's parser configuration.
type Config struct {
	// ECMAVersion selects the target language edition.
	ECMAVersion ECMAVersion `toml:"ecma_version"`

	// AllowReturnOutsideFunction disables the "'return' outside of a
	// function" diagnostic, for embedders (e.g. a REPL that wraps each
	// input line implicitly) that want to parse top-level `return`.
	AllowReturnOutsideFunction bool `toml:"allow_return_outside_function"`

	// TabWidth is the column width a tab character advances, used only
	// by diagnostic rendering (LineIndex.Position counts grapheme
	// clusters, not tab stops, so a caller that wants tab-aware columns
	// applies TabWidth itself when formatting).
	TabWidth int `toml:"tab_width"`
}

// Default returns ecmacst's default configuration: the latest edition
// this parser understands, strict rejection of out-of-place `return`,
// and a conventional 4-column tab width.
func Default() Config {
	return Config{
		ECMAVersion: ESNext,
		TabWidth:    4,
	}
}

// Load reads a TOML configuration file and overlays it onto Default(),
// so an ecmacst.toml only needs to name the fields it wants to change.
// A missing file is not an error: Load returns Default() unchanged, the
// same "file absent means use defaults" behavior
// krotik-ecal/config.go's package-level Config map has by construction
// (it is always present, just possibly unmodified by a project file).
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}

// MustLoad is Load, panicking on a malformed configuration file —
// for callers (tests, a CLI's startup path) that would rather fail
// fast than thread a config-loading error through their own plumbing,
// mirroring krotik-ecal/config.go's errorutil.AssertTrue use for
// "this should never happen in a well-formed environment" conditions.
func MustLoad(path string) Config {
	cfg, err := Load(path)
	errorutil.AssertTrue(err == nil, "config: failed to load "+path+": "+errString(err))
	return cfg
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
