// Package config manages user-level settings stored at
// ~/.vue-feature/config.yaml. Values can also come from VUE_FEATURE_*
// environment variables; command-line flags bound by the cli package take
// precedence over both.
package config
