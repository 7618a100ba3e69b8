package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/g-m-twostay/bintree/Trees"
	"github.com/g-m-twostay/bintree/Trees/bst"
	"github.com/g-m-twostay/bintree/config"
)

// version is overridden at link time.
var version = "dev"

// app carries what every command needs once the root command has parsed
// its persistent flags.
type app struct {
	configPath string
	verbose    bool
	cfg        *config.Config
	log        *slog.Logger
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "treectl",
		Short: "Binary tree and binary search tree toolbox",
		Long: `treectl builds binary trees from integer arguments and runs the tree
engine's queries and transforms on them.

Values are decimal integers; put "--" before the first negative one.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ./treectl.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(
		newInspectCommand(a),
		newShowCommand(a),
		newAssembleCommand(a),
		newRangeCommand(a),
		newRankCommand(a),
		newRemapCommand(a),
		newConvertCommand(a),
		newListCommand(a),
		newAncestorsCommand(a),
		newLevelCommand(a),
		newFreqCommand(a),
		newVersionCommand(),
	)

	return rootCmd
}

func (a *app) setup(logOut io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	a.cfg = cfg
	color.NoColor = color.NoColor || !cfg.Output.Color

	a.log, err = newLogger(cfg.Logging, logOut, a.verbose)
	if err != nil {
		return err
	}

	a.log.Debug("configuration loaded", "build", cfg.Tree.Build, "remap_delta", cfg.Tree.RemapDelta)

	return nil
}

func parseInts(args []string) ([]int, error) {
	vs := make([]int, len(args))

	for i, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("value %q is not an integer", s)
		}

		vs[i] = v
	}

	return vs, nil
}

// buildTree turns values into a tree following tree.build: BST insertion in
// order, or a complete tree filled level by level.
func (a *app) buildTree(values []int) *Trees.Node[int] {
	if a.cfg.Tree.Build == config.BuildComplete {
		a.log.Debug("building complete tree", "values", len(values))

		return Trees.BuildComplete(values)
	}

	return buildBST(values)
}

func buildBST(values []int) *Trees.Node[int] {
	var root *Trees.Node[int]
	for _, v := range values {
		root = bst.Insert(root, v)
	}

	return root
}
