package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/gravassist/fuel"
	"github.com/katalvlaran/gravassist/input"
	"github.com/katalvlaran/gravassist/intcode"
	"github.com/katalvlaran/gravassist/passcode"
	"github.com/katalvlaran/gravassist/wire"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ErrWireCount indicates a wires input without exactly two lines.
var ErrWireCount = errors.New("gravassist: wires input must hold exactly two wires")

func newFuelCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fuel [file]",
		Short: "Total fuel for all modules, without and with fuel-for-fuel",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := inputPath(args, a.cfg.Inputs.Fuel)
			var masses []int
			err := withInput(path, func(f *os.File) error {
				var err error
				masses, err = input.Ints(f)
				return err
			})
			if err != nil {
				return err
			}
			a.logger.Debug("read modules", zap.String("path", path), zap.Int("modules", len(masses)))

			bare, err := fuel.Total(masses)
			if err != nil {
				return err
			}
			compound, err := fuel.CompoundTotal(masses)
			if err != nil {
				return err
			}
			a.logger.Info("fuel computed", zap.Int("bare", bare), zap.Int("compound", compound))
			fmt.Fprintln(cmd.OutOrStdout(), bare)
			fmt.Fprintln(cmd.OutOrStdout(), compound)
			return nil
		},
	}
}

func newIntcodeCmd(a *app) *cobra.Command {
	var noun, verb, target int
	cmd := &cobra.Command{
		Use:   "intcode [file]",
		Short: "Run the gravity-assist program and search for the target noun/verb",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.cfg.Intcode
			if cmd.Flags().Changed("noun") {
				p.Noun = noun
			}
			if cmd.Flags().Changed("verb") {
				p.Verb = verb
			}
			if cmd.Flags().Changed("target") {
				p.Target = target
			}

			path := inputPath(args, a.cfg.Inputs.Intcode)
			var program []int
			err := withInput(path, func(f *os.File) error {
				var err error
				program, err = input.Program(f)
				return err
			})
			if err != nil {
				return err
			}
			a.logger.Debug("read program", zap.String("path", path), zap.Int("length", len(program)))

			out, err := intcode.RunWith(program, p.Noun, p.Verb)
			if err != nil {
				return fmt.Errorf("run noun=%d verb=%d: %w", p.Noun, p.Verb, err)
			}
			n, v, err := intcode.Search(program, p.Target, p.MaxInput)
			if err != nil {
				return err
			}
			a.logger.Info("intcode solved",
				zap.Int("output", out), zap.Int("noun", n), zap.Int("verb", v))
			fmt.Fprintln(cmd.OutOrStdout(), out)
			fmt.Fprintln(cmd.OutOrStdout(), intcode.Answer(n, v))
			return nil
		},
	}
	cmd.Flags().IntVar(&noun, "noun", 0, "value for address 1 in part one")
	cmd.Flags().IntVar(&verb, "verb", 0, "value for address 2 in part one")
	cmd.Flags().IntVar(&target, "target", 0, "output searched for in part two")
	return cmd
}

func newWiresCmd(a *app) *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "wires [file]",
		Short: "Nearest crossing of two wires by distance and by combined steps",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := wire.ScanOptions{Workers: a.cfg.Wires.Workers}
			if cmd.Flags().Changed("workers") {
				opts.Workers = workers
			}

			path := inputPath(args, a.cfg.Inputs.Wires)
			var wires [][]string
			err := withInput(path, func(f *os.File) error {
				var err error
				wires, err = input.Wires(f)
				return err
			})
			if err != nil {
				return err
			}
			if len(wires) != 2 {
				return fmt.Errorf("%w: got %d", ErrWireCount, len(wires))
			}

			res, err := wire.Solve(wires[0], wires[1], &opts)
			if err != nil {
				return err
			}
			a.logger.Info("wires solved",
				zap.Int("crossings", len(res.Crossings)),
				zap.Int("distance", res.Distance),
				zap.Int("steps", res.Steps),
				zap.Int("workers", opts.Workers))
			fmt.Fprintln(cmd.OutOrStdout(), res.Distance)
			fmt.Fprintln(cmd.OutOrStdout(), res.Steps)
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 1, "goroutines sharing the crossing scan")
	return cmd
}

func newPasscodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "passcode [lo-hi]",
		Short: "Count passcodes in a range under both digit rules",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := passcode.ParseRange(inputPath(args, a.cfg.Passcode.Range))
			if err != nil {
				return err
			}
			loose := passcode.Count(r, passcode.Valid)
			strict := passcode.Count(r, passcode.ValidStrict)
			a.logger.Info("passcodes counted",
				zap.Int("lo", r.Lo), zap.Int("hi", r.Hi),
				zap.Int("valid", loose), zap.Int("strict", strict))
			fmt.Fprintln(cmd.OutOrStdout(), loose)
			fmt.Fprintln(cmd.OutOrStdout(), strict)
			return nil
		},
	}
}
