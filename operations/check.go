package operations

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/mongodb/grip"
	"github.com/mongodb/grip/message"
	"github.com/pkg/errors"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/urfave/cli"

	"apiresource/codec"
	"apiresource/options"
	"apiresource/paypal"
	"apiresource/resource"
)

// CheckOptions configures decoding one document.
type CheckOptions struct {
	Path string
	// Type is the registered format name.
	Type string
	// Format names the codec, empty picks one from the file extension.
	Format   string
	Strict   bool
	MaxDepth int
	// Dump prints the decoded model.
	Dump bool
}

func (o CheckOptions) config() resource.Config {
	cfg := resource.DefaultConfig()
	if o.Strict {
		cfg.Options = options.DecodeAll
	}
	cfg.MaxDepth = o.MaxDepth

	return cfg
}

var dumper = spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true}

// Check returns the 'check' command.
func Check() cli.Command {
	return cli.Command{
		Name:      "check",
		Usage:     "decode a document into a model and show how it encodes back",
		ArgsUsage: "FILE",
		Flags: addTypeFlag(
			cli.StringFlag{
				Name:  joinFlagNames(formatFlagName, "f"),
				Usage: "document format: json, yaml, cbor or proto (defaults to the file extension)",
			},
			cli.BoolFlag{
				Name:  strictFlagName,
				Usage: "reject unknown keys and repeated set items",
			},
			cli.IntFlag{
				Name:  maxDepthFlagName,
				Usage: "maximum number of nested resource levels, 0 for unlimited",
			},
			cli.BoolFlag{
				Name:  dumpFlagName,
				Usage: "print the decoded Go value",
			},
		),
		Before: mergeBeforeFuncs(requireStringFlag(typeFlagName), requireArgs(1)),
		Action: func(c *cli.Context) error {
			return runCheck(c.App.Writer, CheckOptions{
				Path:     c.Args().First(),
				Type:     c.String(typeFlagName),
				Format:   c.String(formatFlagName),
				Strict:   c.Bool(strictFlagName),
				MaxDepth: c.Int(maxDepthFlagName),
				Dump:     c.Bool(dumpFlagName),
			})
		},
	}
}

func runCheck(w io.Writer, opts CheckOptions) error {
	entry, ok := paypal.Registry.Lookup(opts.Type)
	if !ok {
		return errors.Errorf("no model is registered as '%s'", opts.Type)
	}

	c, err := documentCodec(opts)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(opts.Path)
	if err != nil {
		return errors.Wrap(err, "reading document")
	}

	raw, err := c.Unmarshal(data)
	if err != nil {
		return errors.Wrapf(err, "parsing '%s' as %s", opts.Path, c.Name())
	}

	cfg := opts.config()
	grip.Debug(message.Fields{
		"op":        "check",
		"type":      entry.Name(),
		"codec":     c.Name(),
		"options":   cfg.Options.String(),
		"max_depth": cfg.MaxDepth,
	})

	model, err := entry.Decode(raw, cfg)
	if err != nil {
		printDecodeError(w, err)
		return errors.Wrapf(err, "decoding '%s' as %s", opts.Path, entry.Name())
	}

	if opts.Dump {
		dumper.Fdump(w, model)
	}

	encoded, err := entry.Encode(model)
	if err != nil {
		return errors.Wrap(err, "encoding model")
	}

	return printRoundTrip(w, raw, encoded)
}

func documentCodec(opts CheckOptions) (codec.Codec, error) {
	if opts.Format != "" {
		c, err := codec.ByName(opts.Format)
		return c, errors.WithStack(err)
	}

	c, err := codec.ForPath(opts.Path)
	if err != nil {
		return nil, errors.Wrap(err, "use --format to name the document format")
	}

	return c, nil
}

// printRoundTrip prints the re-encoded document as JSON, followed by a line
// diff against the input when the two differ. Keys that are not part of the
// format, and optional keys holding empty values, account for the difference.
func printRoundTrip(w io.Writer, raw, encoded resource.Dictionary) error {
	in, err := codec.JSON().Marshal(raw)
	if err != nil {
		return errors.Wrap(err, "rendering input")
	}

	out, err := codec.JSON().Marshal(encoded)
	if err != nil {
		return errors.Wrap(err, "rendering output")
	}

	fmt.Fprintf(w, "%s\n", out)

	if string(in) == string(out) {
		fmt.Fprintf(w, "%s round trip is lossless\n", okLabel("ok:"))
		return nil
	}

	fmt.Fprintf(w, "%s round trip differs from the input:\n", warningLabel("note:"))
	fmt.Fprint(w, lineDiff(string(in), string(out)))

	return nil
}

// lineDiff renders a unified-style line diff, "-" for input lines and "+"
// for output lines.
func lineDiff(from, to string) string {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out string
	for _, d := range diffs {
		var prefix string
		var paint func(...any) string

		switch d.Type {
		case diffpatch.DiffInsert:
			prefix, paint = "+", addedLine
		case diffpatch.DiffDelete:
			prefix, paint = "-", removedLine
		default:
			continue
		}

		for _, line := range splitLines(d.Text) {
			out += paint(prefix+" "+line) + "\n"
		}
	}

	return out
}
