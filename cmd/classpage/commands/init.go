package commands

import (
	"fmt"

	"git.home.luguber.info/inful/classpage/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(root *CLI) error {
	fmt.Printf("Writing configuration to %s\n", root.Config)
	return config.Init(root.Config, i.Force)
}
