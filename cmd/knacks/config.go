package main

import "github.com/redsepro/knacks/toml"

// Run executes the config command.
func (c *ConfigCmd) Run(deps *Dependencies) error {
	return toml.Encode(deps.Stdout, *deps.Config)
}
