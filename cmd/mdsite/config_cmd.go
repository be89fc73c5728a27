package main

import (
	"github.com/alnah/go-mdsite/internal/yamlutil"
)

// runConfigCmd prints the effective configuration as YAML, after config
// file, environment and defaults are applied.
func runConfigCmd(args []string, env *Environment) error {
	flags, err := parseConfigFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(*flags, nil, nil, env)
	if err != nil {
		return err
	}
	out, err := yamlutil.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = env.Stdout.Write(out)
	return err
}
