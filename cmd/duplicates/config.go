package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML shape of the --config file. It supplies
// defaults; explicitly set flags always win.
//
//	prefix: "bundle_"
//	fixpoint: true
//	node_paths: false
//	extensions: [".js", ".jsx"]
type fileConfig struct {
	Prefix     string   `yaml:"prefix"`
	Fixpoint   bool     `yaml:"fixpoint"`
	NodePaths  bool     `yaml:"node_paths"`
	Extensions []string `yaml:"extensions"`
}

func (c *cli) applyConfigFile(cmd *cobra.Command) error {
	if c.configPath == "" {
		return nil
	}

	data, err := os.ReadFile(c.configPath)
	if err != nil {
		return err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", c.configPath, err)
	}

	flags := cmd.Root().PersistentFlags()
	if fc.Prefix != "" && !flags.Changed("prefix") {
		c.prefix = fc.Prefix
	}
	if fc.Fixpoint && !flags.Changed("fixpoint") {
		c.fixpoint = true
	}
	if fc.NodePaths && !flags.Changed("node-paths") {
		c.nodePaths = true
	}
	if len(fc.Extensions) > 0 && !flags.Changed("ext") {
		c.extensions = fc.Extensions
	}
	return nil
}
