package cmd

import (
	"flag"
	"fmt"
	"io"

	"github.com/go-drift/playerui/pkg/dom"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Print the composed control tree",
		Long: `Build the player with the configured children and print its element
as HTML.

The configuration is layered: built-in defaults, then the file given with
-config (YAML or TOML), then the flags set on the command line. With
-select only the first element matching the selector is printed.`,
		Usage: "playerui render [-config file] [-lang code] [-tooltips] [-select selector]",
		Run:   runRender,
	})
}

func runRender(args []string, stdout io.Writer) error {
	var selector string
	cfg, err := parseConfig("render", args, func(fs *flag.FlagSet) {
		fs.StringVar(&selector, "select", "", "print only the first element matching the selector")
	})
	if err != nil {
		return err
	}

	s := newSession(cfg)
	defer s.close()

	node := s.player.El()
	if selector != "" {
		if node, err = s.find(selector); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(stdout, dom.OuterHTML(node))
	return err
}
