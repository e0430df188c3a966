// Package render implements program commands: building stylesheets from
// recipes and showing single selector chains.
package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"selb/archive"
	"selb/recipe"
	"selb/state"
)

// Build is "build" command action. It produces stylesheet for every recipe
// given on command line.
func Build(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("build")

	if cmd.Args().Len() == 0 {
		return errors.New("no recipes to process")
	}
	if env.Cfg == nil {
		return errors.New("configuration is not loaded")
	}

	dst, err := openDestination(cmd.String("out"), cmd.Bool("overwrite"), writer(cmd))
	if err != nil {
		return err
	}
	defer func() {
		if er := dst.Close(); er != nil {
			err = multierr.Append(err, er)
		}
	}()

	log.Info("Processing starting", zap.Int("recipes", cmd.Args().Len()), zap.String("destination", dst.String()))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, cmd.Args().Slice(), dst, env, log)
}

// process handles recipes independently of CLI framework. Path may point to
// recipe file or to zip archive with recipe files. Recipe which fails to load
// is skipped, rules which fail to build are left out. Everything that went
// wrong is returned together.
func process(ctx context.Context, paths []string, dst *destination, env *state.LocalEnv, log *zap.Logger) error {
	opts := optionsFromEnv(env)

	var errs error
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return multierr.Append(errs, err)
		}

		bundle, err := archive.IsArchive(path)
		if err != nil {
			log.Error("Unable to access recipe", zap.String("file", path), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("unable to access recipe: %w", err))
			continue
		}

		if !bundle {
			r, err := recipe.Load(path)
			if err != nil {
				log.Error("Unable to load recipe", zap.String("file", path), zap.Error(err))
				errs = multierr.Append(errs, err)
				continue
			}
			env.Rpt.Store("recipes/"+filepath.Base(path), path)
			if err := processRecipe(r, dst, opts, env, log); err != nil {
				errs = multierr.Append(errs, err)
			}
			continue
		}

		env.Rpt.Store("recipes/"+filepath.Base(path), path)
		err = archive.Walk(path, recipeExtensions, func(name string, data []byte) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := recipe.Parse(data)
			if err != nil {
				log.Error("Unable to load recipe", zap.String("archive", path), zap.String("file", name), zap.Error(err))
				errs = multierr.Append(errs, fmt.Errorf("%s/%s: %w", path, name, err))
				return nil
			}
			return processRecipe(r, dst, opts, env, log)
		})
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("unable to process archive: %w", err))
		}
	}
	return errs
}

var recipeExtensions = []string{".yaml", ".yml"}

// processRecipe builds and writes single stylesheet. Rule errors are
// returned, but stylesheet is written anyway.
func processRecipe(r *recipe.Recipe, dst *destination, opts recipe.Options, env *state.LocalEnv, log *zap.Logger) error {
	sheet, errs := r.Build(log, opts)
	if errs != nil {
		log.Warn("Some rules were skipped", zap.String("recipe", r.Name), zap.Int("errors", len(multierr.Errors(errs))))
	}

	name, err := dst.write(r.Name, sheet)
	if err != nil {
		return multierr.Append(errs, fmt.Errorf("unable to write stylesheet for recipe %q: %w", r.Name, err))
	}
	env.Rpt.StoreData("output/"+fileName(r.Name), []byte(sheet.String()))
	log.Debug("Stylesheet written", zap.String("recipe", r.Name), zap.String("file", name), zap.Int("rules", len(sheet.Rules)))
	return errs
}

func optionsFromEnv(env *state.LocalEnv) recipe.Options {
	opts := recipe.Options{
		Header:          env.Cfg.Output.Header,
		Indent:          env.Cfg.Output.Indent,
		SortRules:       env.Cfg.Output.SortRules,
		LintIdentifiers: env.Cfg.Output.LintIdentifiers,
	}
	if opts.Header != "" {
		opts.Header = fmt.Sprintf("%s, session %s", opts.Header, env.Session)
	}
	return opts
}

// Chain is "chain" command action. It prints selector built from tokens
// followed by its specificity.
func Chain(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("chain")

	ch, err := recipe.Compile(cmd.Args().Slice())
	if err != nil {
		return fmt.Errorf("unable to build selector: %w", err)
	}
	log.Debug("Selector built", zap.Strings("tokens", cmd.Args().Slice()), zap.Stringer("selector", ch.Selector))

	return writeChain(writer(cmd), ch)
}

func writeChain(w io.Writer, ch *recipe.Chain) error {
	if _, err := fmt.Fprintf(w, "%s\t%s\n", ch.Selector.Stringify(), ch.Specificity()); err != nil {
		return fmt.Errorf("unable to write selector: %w", err)
	}
	return nil
}

// Explain is "explain" command action. It prints every compound selector of
// the chain with its parts.
func Explain(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("explain")

	ch, err := recipe.Compile(cmd.Args().Slice())
	if err != nil {
		return fmt.Errorf("unable to build selector: %w", err)
	}
	log.Debug("Chain compiled", zap.Int("compounds", len(ch.Compounds)))

	out := explain(ch)
	env.Rpt.StoreData("explain.txt", []byte(out))

	if _, err := io.WriteString(writer(cmd), out); err != nil {
		return fmt.Errorf("unable to write explanation: %w", err)
	}
	return nil
}

// writer returns command output stream.
func writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
