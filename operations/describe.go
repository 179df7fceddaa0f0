package operations

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"apiresource/paypal"
	"apiresource/resource"
)

// Describe returns the 'describe' command.
func Describe() cli.Command {
	const flatFlagName = "flat"

	return cli.Command{
		Name:  "describe",
		Usage: "print the keys of registered models",
		Flags: addTypeFlag(
			cli.BoolFlag{
				Name:  flatFlagName,
				Usage: "do not expand nested resources",
			},
		),
		Action: func(c *cli.Context) error {
			return runDescribe(c.App.Writer, paypal.Registry, c.String(typeFlagName), !c.Bool(flatFlagName))
		},
	}
}

func runDescribe(w io.Writer, registry *resource.Registry, name string, expand bool) error {
	names := registry.Names()
	if name != "" {
		if _, ok := registry.Lookup(name); !ok {
			return errors.Errorf("no model is registered as '%s'", name)
		}
		names = []string{name}
	}

	for i, n := range names {
		entry, _ := registry.Lookup(n)

		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, okLabel(entry.Name()))

		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "  KEY\tKIND\tREQUIRED\t")
		writeFields(tw, "", entry.Describe(), expand)

		if err := tw.Flush(); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}

func writeFields(w io.Writer, prefix string, fields []resource.FieldInfo, expand bool) {
	for _, f := range fields {
		kind := f.Kind.Name()
		if f.Kind == resource.KindResource {
			kind += " " + f.Resource
		}

		required := "yes"
		if f.Optional {
			required = "no"
		}

		fmt.Fprintf(w, "  %s%s\t%s\t%s\t\n", prefix, f.Key, kind, required)

		if expand && len(f.Nested) > 0 {
			writeFields(w, prefix+f.Key+".", f.Nested, expand)
		}
	}
}
