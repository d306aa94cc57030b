package commands

import (
	"fmt"

	"git.home.luguber.info/inful/classpage/internal/foundation/errors"
	"git.home.luguber.info/inful/classpage/internal/verify"
)

// VerifyCmd implements the 'verify' command.
type VerifyCmd struct {
	Dir          string `arg:"" optional:"" help:"Directory of generated pages (default: output.directory)"`
	RequireIndex bool   `name:"require-index" help:"Treat missing package index files as broken links"`
}

func (v *VerifyCmd) Run(global *Global) error {
	dir := v.Dir
	if dir == "" {
		dir = global.Config.Output.Directory
	}
	res, err := verify.Dir(dir, global.Config.RenderContext())
	if err != nil {
		return err
	}

	broken := res.Broken()
	if v.RequireIndex {
		broken = res.Problems
	}
	for _, p := range res.Problems {
		fmt.Printf("%s: %s -> %s\n", p.Kind, p.Source, p.Target)
	}
	fmt.Printf("%d pages, %d links, %d broken\n", res.Pages, res.Links, len(broken))
	if len(broken) > 0 {
		return errors.ValidationError("generated pages contain broken links").
			WithContext("path", dir).
			WithContext("broken", len(broken)).
			Build()
	}
	return nil
}
