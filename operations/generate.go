package operations

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/mongodb/grip"
	"github.com/mongodb/grip/message"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"apiresource/internal/analyze"
	"apiresource/internal/diagnostic"
	"apiresource/internal/gen"
	"apiresource/internal/mapping"
	"apiresource/internal/plan"
)

// GenerateOptions configures one run of the format generator.
type GenerateOptions struct {
	// MappingPath is the YAML declaration file.
	MappingPath string
	// OutputDir overrides the package directory as the destination.
	OutputDir string
	// Generator configures rendering.
	Generator gen.GeneratorConfig
}

// GenerateResult is everything a run produced, including partial results of a
// failed run so diagnostics can be reported.
type GenerateResult struct {
	Declaration *mapping.DeclarationFile
	Plan        *plan.Plan
	File        *gen.GeneratedFile
	OutputDir   string
	Diagnostics diagnostic.Diagnostics
}

// GenerateFormats loads the declaration file, analyzes the package it names,
// resolves the declarations and renders the format file. Nothing is written.
func GenerateFormats(opts GenerateOptions) (*GenerateResult, error) {
	res := &GenerateResult{}

	decl, err := mapping.LoadFile(opts.MappingPath)
	if err != nil {
		return res, errors.Wrapf(err, "loading declaration file '%s'", opts.MappingPath)
	}
	res.Declaration = decl

	analyzer := analyze.NewAnalyzer()
	analyzer.Dir = decl.Dir()

	graph, err := analyzer.LoadPackages(decl.Package)
	if err != nil {
		return res, errors.Wrapf(err, "analyzing package '%s'", decl.Package)
	}

	grip.Debug(message.Fields{
		"op":       "analyze",
		"package":  decl.Package,
		"dir":      analyzer.Dir,
		"packages": len(graph.Packages),
		"types":    len(graph.Types),
	})

	p, err := plan.Resolve(graph, decl)
	if p != nil {
		res.Plan = p
		res.Diagnostics = p.Diagnostics
	}
	if err != nil {
		return res, errors.Wrap(err, "resolving declarations")
	}

	res.OutputDir = opts.OutputDir
	if res.OutputDir == "" {
		res.OutputDir = p.Dir
	}

	genCfg := opts.Generator
	genCfg.OutputDir = res.OutputDir

	file, err := gen.NewGenerator(genCfg).Generate(p)
	res.File = file
	if err != nil {
		return res, errors.Wrap(err, "generating formats")
	}

	return res, nil
}

// Gen returns the 'gen' command.
func Gen() cli.Command {
	const (
		noCommentsFlagName = "no-comments"
		checkFlagName      = "check"
		pinFlagName        = "pin"
	)

	return cli.Command{
		Name:  "gen",
		Usage: "generate format declarations for the models named in a declaration file",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  joinFlagNames(mappingFlagName, "m"),
				Usage: "path to the YAML declaration file",
			},
			cli.StringFlag{
				Name:  joinFlagNames(outputFlagName, "o"),
				Usage: "directory to write to (defaults to the package directory)",
			},
			cli.BoolFlag{
				Name:  noCommentsFlagName,
				Usage: "omit the comment explaining how each key was bound",
			},
			cli.BoolFlag{
				Name:  checkFlagName,
				Usage: "fail if the generated file is out of date instead of writing it",
			},
			cli.BoolFlag{
				Name:  pinFlagName,
				Usage: "rewrite the declaration file so every key names its Go field",
			},
		},
		Before: requireStringFlag(mappingFlagName),
		Action: func(c *cli.Context) error {
			cfg := gen.DefaultGeneratorConfig()
			cfg.GenerateComments = !c.Bool(noCommentsFlagName)

			return runGen(c.App.Writer, GenerateOptions{
				MappingPath: c.String(mappingFlagName),
				OutputDir:   c.String(outputFlagName),
				Generator:   cfg,
			}, c.Bool(checkFlagName), c.Bool(pinFlagName))
		},
	}
}

func runGen(w io.Writer, opts GenerateOptions, check, pin bool) error {
	// check must not write anything, including the declaration file.
	if check && pin {
		return errors.New("--pin cannot be combined with --check")
	}

	res, err := GenerateFormats(opts)
	printDiagnostics(w, res.Diagnostics)
	if err != nil {
		if res.File != nil && res.OutputDir != "" {
			fmt.Fprintf(w, "%s unformatted output kept in %s\n", warningLabel("warning:"),
				filepath.Join(res.OutputDir, gen.DebugFilename(res.File.Filename)))
		}
		return err
	}

	target := filepath.Join(res.OutputDir, res.File.Filename)

	stale, err := gen.Stale(*res.File, res.OutputDir)
	if err != nil {
		return errors.WithStack(err)
	}

	switch {
	case check && stale:
		return errors.Errorf("%s is out of date, run 'apiresource gen --mapping %s'", target, opts.MappingPath)
	case check:
		fmt.Fprintf(w, "%s %s is up to date\n", okLabel("ok:"), target)
	case stale:
		if err := gen.WriteFiles([]gen.GeneratedFile{*res.File}, res.OutputDir); err != nil {
			return errors.Wrapf(err, "writing '%s'", target)
		}
		fmt.Fprintf(w, "%s wrote %s (%d formats)\n", okLabel("ok:"), target, len(res.Plan.Resources))
	default:
		fmt.Fprintf(w, "%s %s unchanged\n", okLabel("ok:"), target)
	}

	grip.Info(message.Fields{
		"op":        "gen",
		"mapping":   opts.MappingPath,
		"output":    target,
		"resources": len(res.Plan.Resources),
		"stale":     stale,
		"check":     check,
	})

	if !pin {
		return nil
	}

	pinned := plan.Export(res.Plan, res.Declaration.Package)
	if err := mapping.WriteFile(pinned, opts.MappingPath); err != nil {
		return errors.Wrapf(err, "writing '%s'", opts.MappingPath)
	}
	fmt.Fprintf(w, "%s pinned fields in %s\n", okLabel("ok:"), opts.MappingPath)

	return nil
}
