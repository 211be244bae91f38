package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solatis/translit/internal/rules"
	"github.com/solatis/translit/internal/types"
)

var compileCmd = &cobra.Command{
	Use:   "compile <name>",
	Short: "Compile a stored transform and print its rule sets",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompile,
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile rules from a text file and print the rule sets",
	Args:  cobra.NoArgs,
	RunE:  runBuild,
}

func init() {
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringP("file", "f", "", "rule file, one rule per line (- for stdin)")
	buildCmd.Flags().Bool("bidirectional", false, "also derive the backward rule set")
	_ = buildCmd.MarkFlagRequired("file")
}

func runCompile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	store, release, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer release()

	loader := rules.NewLoader(store, rules.NewCache(), rules.DefaultParsers())
	if err := loader.Preload(ctx, cfg.Cache.Preload...); err != nil {
		return fmt.Errorf("failed to preload transforms: %w", err)
	}
	group, err := loader.Load(ctx, args[0])
	if err != nil {
		return err
	}
	return printGroup(cmd.OutOrStdout(), group)
}

func runBuild(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}
	path, _ := cmd.Flags().GetString("file")
	bidirectional, _ := cmd.Flags().GetBool("bidirectional")

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("failed to read rules: %w", err)
	}

	direction := types.Forward
	if bidirectional {
		direction = types.Bidirectional
	}
	group, err := rules.Build(strings.Split(string(data), "\n"), direction)
	if err != nil {
		return err
	}
	return printGroup(cmd.OutOrStdout(), group)
}

func printGroup(w io.Writer, g *rules.RuleGroup) error {
	fmt.Fprintf(w, "# group %s (%s)\n", g.ID(), g.Direction())
	forward, err := g.ForwardRuleSet()
	if err != nil {
		return err
	}
	printRuleSet(w, "forward", forward)

	backward, err := g.BackwardRuleSet()
	if errors.Is(err, types.ErrNotInvertible) {
		return nil
	}
	if err != nil {
		return err
	}
	printRuleSet(w, "backward", backward)
	return nil
}

func printRuleSet(w io.Writer, title string, set *rules.RuleSet) {
	fmt.Fprintf(w, "\n## %s\n", title)
	fmt.Fprintf(w, "pre:  %s\n", set.PreFilter)
	for _, r := range set.Content {
		fmt.Fprintf(w, "%4d  %s\n", r.Index(), r)
	}
	fmt.Fprintf(w, "post: %s\n", set.PostFilter)
	for _, r := range set.Ignored {
		fmt.Fprintf(w, "ignored %4d  %s\n", r.Index(), r)
	}
}
