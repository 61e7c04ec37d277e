// SPDX-License-Identifier: MIT

package config

import "github.com/spf13/viper"

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	// Clustering
	v.SetDefault("algorithm", "antikt")
	v.SetDefault("r", 0.4)
	v.SetDefault("p", 1.0) // only read by genkt and ee_genkt
	v.SetDefault("recombination", "E_scheme")

	// Engine
	v.SetDefault("workers", 1)
	v.SetDefault("max_depth", -1) // unlimited

	// Logging
	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "info")
}
