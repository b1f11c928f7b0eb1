// SPDX-License-Identifier: MIT
//
// tensegra — grow a tensegrity from a tenscript program with the
// reference in-memory engine and export the resulting structure.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/solwyrm/tensegra/builder"
	"github.com/solwyrm/tensegra/fabric"
	"github.com/solwyrm/tensegra/instance"
	"github.com/solwyrm/tensegra/life"
	"github.com/solwyrm/tensegra/tenscript"
)

var (
	configPath   string
	verbose      bool
	programFile  string
	outPath      string
	maxSteps     int
	ticksPerStep int
	watch        bool
)

func main() {
	root := &cobra.Command{
		Use:           "tensegra",
		Short:         "procedural tensegrity topology builder",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML feature overrides")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	grow := &cobra.Command{
		Use:   "grow [program]",
		Short: "grow a structure from a tenscript program",
		Long: `Grow a structure from a tenscript program, drive it through the
shaping lifecycle with the reference in-memory engine, and write a JSON
snapshot of the result.

The program is taken from the argument, or from --file. With --watch the
file is re-grown every time it changes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runGrow,
	}
	grow.Flags().StringVarP(&programFile, "file", "f", "", "read the program from a file")
	grow.Flags().StringVarP(&outPath, "out", "o", "", "snapshot output path (default stdout)")
	grow.Flags().IntVar(&maxSteps, "steps", 10000, "maximum interpreter steps")
	grow.Flags().IntVar(&ticksPerStep, "ticks", 100, "engine ticks per interpreter step")
	grow.Flags().BoolVarP(&watch, "watch", "w", false, "re-grow when the program file changes")
	root.AddCommand(grow)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tensegra:", err)
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func runGrow(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	source, err := programSource(args)
	if err != nil {
		return err
	}
	features, err := loadFeatures()
	if err != nil {
		return err
	}

	if watch {
		if programFile == "" {
			return fmt.Errorf("--watch needs --file")
		}
		return watchAndGrow(log, features)
	}
	return growOnce(log, features, source)
}

func programSource(args []string) (string, error) {
	if programFile != "" {
		raw, err := os.ReadFile(programFile)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	if len(args) == 1 {
		return args[0], nil
	}
	return "", fmt.Errorf("need a program argument or --file")
}

func loadFeatures() (fabric.FeatureFn, error) {
	if configPath == "" {
		return fabric.DefaultFeatures(), nil
	}
	return fabric.LoadFeatures(configPath)
}

// growOnce runs a full grow-shape-pretense cycle and writes a snapshot.
func growOnce(log *zap.Logger, features fabric.FeatureFn, source string) error {
	program, err := tenscript.Parse(source)
	if err != nil {
		return err
	}
	engine := instance.NewMemory()
	fab, err := fabric.New(engine, fabric.WithFeatures(features), fabric.WithLogger(log))
	if err != nil {
		return err
	}
	bld := builder.New(fab, builder.WithLogger(log))
	runner, err := tenscript.NewRunner(program, fab, bld, tenscript.WithLogger(log))
	if err != nil {
		return err
	}

	if err = drive(runner, engine); err != nil {
		return err
	}
	runner.RequestStage(life.Transition{Stage: life.Slack, AdoptLengths: true})
	runner.RequestStage(life.Transition{Stage: life.Pretensing})
	runner.RequestStage(life.Transition{Stage: life.Pretenst})
	if err = drive(runner, engine); err != nil {
		return err
	}
	log.Info("structure complete",
		zap.Int("joints", len(fab.Joints())),
		zap.Int("intervals", len(fab.Intervals())),
		zap.Int("faces", len(fab.Faces())),
		zap.Stringer("stage", runner.Life().Stage()),
	)
	return writeSnapshot(fab.Snapshot())
}

// drive alternates interpreter steps with engine ticks until the
// runner settles or the step budget runs out.
func drive(runner *tenscript.Runner, engine *instance.Memory) error {
	for step := 0; step < maxSteps; step++ {
		done, err := runner.Iterate()
		if err != nil {
			return err
		}
		engine.Iterate(ticksPerStep)
		if done {
			return nil
		}
	}
	return fmt.Errorf("structure did not settle within %d steps", maxSteps)
}

func writeSnapshot(snapshot *fabric.Snapshot) error {
	encoded, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}
	encoded = append(encoded, '\n')
	if outPath == "" {
		_, err = os.Stdout.Write(encoded)
		return err
	}
	return os.WriteFile(outPath, encoded, 0o644)
}

// watchAndGrow re-runs the grow cycle whenever the program file is
// rewritten, until interrupted.
func watchAndGrow(log *zap.Logger, features fabric.FeatureFn) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()
	if err = watcher.Add(programFile); err != nil {
		return err
	}

	regrow := func() {
		raw, readErr := os.ReadFile(programFile)
		if readErr != nil {
			log.Warn("read failed", zap.Error(readErr))
			return
		}
		if growErr := growOnce(log, features, string(raw)); growErr != nil {
			log.Warn("grow failed", zap.Error(growErr))
		}
	}
	regrow()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				log.Info("program changed", zap.String("file", event.Name))
				regrow()
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", zap.Error(watchErr))
		case <-interrupt:
			return nil
		}
	}
}
