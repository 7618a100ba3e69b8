package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/g-m-twostay/bintree/Trees"
	"github.com/g-m-twostay/bintree/Trees/bst"
)

var errNoValues = errors.New("no values given")

func valuesArg(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, errNoValues
	}

	return parseInts(args)
}

func newInspectCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect VALUE...",
		Short: "Print metrics and traversals of a tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := valuesArg(args)
			if err != nil {
				return err
			}

			root := a.buildTree(values)
			out := cmd.OutOrStdout()
			maxV, _ := Trees.FindMax(root)

			metrics := newTable(out, a.cfg.Output, table.Row{"Metric", "Value"})
			metrics.AppendRows([]table.Row{
				{"nodes", Trees.Count(root)},
				{"height", Trees.Height(root)},
				{"breadth", Trees.Breadth(root)},
				{"leaves", Trees.LeafCount(root)},
				{"full nodes", Trees.FullCount(root)},
				{"half nodes", Trees.HalfCount(root)},
				{"max", maxV},
				{"sum", Trees.Sum(root)},
				{"bst", bst.IsBST(root)},
				{"height balanced", bst.IsHeightBalanced(root)},
			})
			metrics.Render()

			traversals := newTable(out, a.cfg.Output, table.Row{"Traversal", "Values"})
			traversals.AppendRows(traversalRows(root))
			traversals.Render()

			return nil
		},
	}
}

func newShowCommand(a *app) *cobra.Command {
	var mirror bool

	cmd := &cobra.Command{
		Use:   "show VALUE...",
		Short: "Draw a tree as a hierarchy",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := valuesArg(args)
			if err != nil {
				return err
			}

			root := a.buildTree(values)
			if mirror {
				root = Trees.MirrorOf(root)
			}

			renderTree(cmd.OutOrStdout(), a.cfg.Output, root)

			return nil
		},
	}

	cmd.Flags().BoolVar(&mirror, "mirror", false, "draw the mirror image")

	return cmd
}

func newAssembleCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "assemble ROOT [VALUE:PARENT:SIDE]...",
		Short: "Build a tree node by node and draw it",
		Long: `assemble places each value explicitly. The first argument is the root;
every following argument names the new value, its parent and the side
(L or R) it goes on, e.g. "30:50:L".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errNoValues
			}

			var root *Trees.Node[int]

			for i, arg := range args {
				v, parent, side, err := parsePlacement(arg, i == 0)
				if err != nil {
					return err
				}

				root, err = Trees.InsertManual(root, v, parent, side)
				if err != nil {
					return fmt.Errorf("place %q: %w", arg, err)
				}

				a.log.Debug("placed node", "value", v, "parent", parent, "side", side)
			}

			renderTree(cmd.OutOrStdout(), a.cfg.Output, root)

			return nil
		},
	}
}

func parsePlacement(arg string, first bool) (v, parent int, side Trees.Side, err error) {
	if first {
		vs, err := parseInts([]string{arg})
		if err != nil {
			return 0, 0, 0, err
		}

		return vs[0], 0, Trees.SideRoot, nil
	}

	parts := strings.Split(arg, ":")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("placement %q is not VALUE:PARENT:SIDE", arg)
	}

	vs, err := parseInts(parts[:2])
	if err != nil {
		return 0, 0, 0, err
	}

	side, err = Trees.ParseSide(parts[2])
	if err != nil {
		return 0, 0, 0, err
	}

	return vs[0], vs[1], side, nil
}

func newRangeCommand(a *app) *cobra.Command {
	var prune bool

	cmd := &cobra.Command{
		Use:   "range K1 K2 VALUE...",
		Short: "List or keep the BST keys within [K1, K2]",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInts(args)
			if err != nil {
				return err
			}

			k1, k2 := nums[0], nums[1]
			root := buildBST(nums[2:])
			out := cmd.OutOrStdout()

			if !prune {
				fmt.Fprintln(out, joinInts(bst.RangeValues(root, k1, k2)))
				return nil
			}

			root = bst.RemoveOutsideRange(root, k1, k2)
			a.log.Debug("pruned tree", "kept", Trees.Count(root))
			renderTree(out, a.cfg.Output, root)

			return nil
		},
	}

	cmd.Flags().BoolVar(&prune, "prune", false, "remove the keys outside the range and draw what is left")

	return cmd
}

func newRankCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rank M VALUE...",
		Short: "Print the M-th largest key of a BST",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInts(args)
			if err != nil {
				return err
			}

			v, err := bst.MthLargest(buildBST(nums[1:]), nums[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), v)

			return nil
		},
	}
}

func newRemapCommand(a *app) *cobra.Command {
	var delta int

	cmd := &cobra.Command{
		Use:   "remap M VALUE...",
		Short: "Raise the BST keys up to M by a delta and lower the rest",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInts(args)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("delta") {
				delta = a.cfg.Tree.RemapDelta
			}

			root := buildBST(nums[1:])
			bst.ModifyByThreshold(root, nums[0], delta)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, joinInts(Trees.Collect(Trees.PreOrder[int], root)))
			fmt.Fprintln(out, "bst:", bst.IsBST(root))

			return nil
		},
	}

	cmd.Flags().IntVar(&delta, "delta", 0, "shift amount (default from tree.remap_delta)")

	return cmd
}

func newConvertCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert VALUE...",
		Short: "Rebuild a complete tree as a balanced BST and a sum tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := valuesArg(args)
			if err != nil {
				return err
			}

			complete := Trees.BuildComplete(values)
			converted := bst.ConvertToBST(complete)
			summed := bst.SumTree(Trees.BuildComplete(values))

			t := newTable(cmd.OutOrStdout(), a.cfg.Output, table.Row{"Tree", "Level order"})
			t.AppendRows([]table.Row{
				{"input", joinInts(Trees.Collect(Trees.LevelOrder[int], complete))},
				{"bst", joinInts(Trees.Collect(Trees.LevelOrder[int], converted))},
				{"sum tree", joinInts(Trees.Collect(Trees.LevelOrder[int], summed))},
			})
			t.AppendFooter(table.Row{"same information", bst.SameInformation(complete, converted)})
			t.Render()

			return nil
		},
	}
}

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list VALUE...",
		Short: "Thread a BST into a sorted doubly linked list",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := valuesArg(args)
			if err != nil {
				return err
			}

			head := bst.ToSortedList(buildBST(values))

			t := newTable(cmd.OutOrStdout(), a.cfg.Output, table.Row{"Direction", "Values"})
			t.AppendRows([]table.Row{
				{"forward", joinInts(bst.ListValues(head))},
				{"backward", joinInts(bst.ListValuesBackward(head))},
			})
			t.Render()

			return nil
		},
	}
}

func newAncestorsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ancestors X VALUE...",
		Short: "Print the ancestors of X, nearest first",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInts(args)
			if err != nil {
				return err
			}

			as, err := Trees.Ancestors(a.buildTree(nums[1:]), nums[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), joinInts(as))

			return nil
		},
	}
}

func newLevelCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "level X VALUE...",
		Short: "Print the depth of X, the root being 0",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInts(args)
			if err != nil {
				return err
			}

			d, ok := Trees.LevelOf(a.buildTree(nums[1:]), nums[0])
			if !ok {
				return &Trees.NotFoundError[int]{Value: nums[0]}
			}

			fmt.Fprintln(cmd.OutOrStdout(), d)

			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the treectl version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "treectl", version)
			return nil
		},
	}
}
