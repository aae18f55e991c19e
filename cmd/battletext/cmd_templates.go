package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"battletext/internal/templates"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Inspect and validate the template store",
}

var templatesCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Load the template store and report redirect problems",
	Args:  cobra.NoArgs,
	RunE:  runTemplatesCheck,
}

var templatesResolveCmd = &cobra.Command{
	Use:   "resolve CATEGORY [NAMESPACE...]",
	Short: "Show the template chosen for a category",
	Long: `Resolves CATEGORY against the given namespaces in order, falling back to
the default namespace. OWN and NODEFAULT map to the special namespaces of the
same name.

Example:
  battletext templates resolve start confusion
  battletext templates resolve switchIn OWN`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTemplatesResolve,
}

var templatesListCmd = &cobra.Command{
	Use:   "list [NAMESPACE]",
	Short: "List namespaces, or the categories of one namespace",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTemplatesList,
}

func init() {
	templatesCmd.AddCommand(templatesCheckCmd)
	templatesCmd.AddCommand(templatesResolveCmd)
	templatesCmd.AddCommand(templatesListCmd)
}

func runTemplatesCheck(cmd *cobra.Command, args []string) error {
	store, err := templates.Load(cfg.Templates)
	if err != nil {
		logger.Error("template check failed", zap.Error(err))
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "templates ok: %d namespaces, %d entries\n",
		len(store.Namespaces()), store.Len())
	return nil
}

func runTemplatesResolve(cmd *cobra.Command, args []string) error {
	store, err := templates.Load(cfg.Templates)
	if err != nil {
		return err
	}

	category := args[0]
	namespaces := make([]templates.Namespace, 0, len(args)-1)
	for _, raw := range args[1:] {
		namespaces = append(namespaces, templates.ParseNamespace(raw))
	}

	text := store.Resolve(category, namespaces...)
	if text == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "(no text)")
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), text)
	return nil
}

func runTemplatesList(cmd *cobra.Command, args []string) error {
	store, err := templates.Load(cfg.Templates)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		fmt.Fprintln(out, strings.Join(store.Namespaces(), "\n"))
		return nil
	}

	ns := args[0]
	if !store.HasNamespace(ns) {
		return fmt.Errorf("unknown namespace: %s", ns)
	}
	for _, category := range store.Categories(ns) {
		entry, _ := store.Lookup(ns, category)
		fmt.Fprintf(out, "%s\t%s\t%q\n", category, entry.Kind, entry.Raw())
	}
	return nil
}
