package config

import "github.com/rs/zerolog"

// ── Default values ───────────────────────────────────────────────────
//
// All tuneable defaults live here so they are easy to audit and reuse
// across environment loading and tests.

const (
	// DefaultComponent is the OpenKeychain broadcast receiver that
	// wakes the gpg proxy.
	DefaultComponent = "org.ddosolitary.okcagent/.GpgProxyReceiver"

	// DefaultPortExtra is the broadcast extra carrying the proxy port.
	DefaultPortExtra = "org.ddosolitary.okcagent.extra.PROXY_PORT"

	// DefaultArgsExtra is the broadcast extra carrying the encoded
	// gpg arguments.
	DefaultArgsExtra = "org.ddosolitary.okcagent.extra.GPG_ARGS"
)

// DefaultLogLevel keeps a transparent wrapper quiet on stderr while
// still surfacing the warnings the app reports.
const DefaultLogLevel = zerolog.WarnLevel

// ── Environment variables ────────────────────────────────────────────
//
// Every supported env var uses the OKGPG_ prefix.

const (
	// EnvLogLevel selects trace, debug, info, warn, error, or off.
	EnvLogLevel = "OKGPG_LOG_LEVEL"

	// EnvLogNoColor disables colour in terminal log output.
	EnvLogNoColor = "OKGPG_LOG_NOCOLOR"

	// EnvComponent overrides the broadcast receiver component.
	EnvComponent = "OKGPG_COMPONENT"

	// EnvLauncher replaces the broadcast with an arbitrary shell
	// command, for driving the proxy off-device (see cmd/okc-mock).
	EnvLauncher = "OKGPG_LAUNCHER"
)
