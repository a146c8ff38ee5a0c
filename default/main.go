// Package defaults provides embedded default assets (config and dictionary).
package defaults

import _ "embed"

//go:embed default_config.json
var DefaultConfigJSON []byte

//go:embed dictionary.toml
var DictionaryTOML string
