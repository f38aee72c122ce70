package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"astrict/internal/pack"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <pack>",
	Short: "Show a summary of a pack file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

var (
	dumpHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dumpCountStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func runDump(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	p, err := pack.DecodePack(data)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	styled := isTerminal(os.Stdout)
	header := func(s string) string {
		if styled {
			return dumpHeaderStyle.Render(s)
		}
		return s
	}
	count := func(n uint32) string {
		s := fmt.Sprintf("(%d)", n)
		if styled {
			return dumpCountStyle.Render(s)
		}
		return s
	}

	fmt.Fprintf(out, "%s %s\n", header("types"), count(p.Types.Len()))
	for i, t := range p.Types.Slice() {
		name := t.Name
		if t.Precision != "" {
			name = t.Precision + " " + name
		}
		fmt.Fprintf(out, "  T%d: %s\n", i+1, name)
	}

	fmt.Fprintf(out, "%s %s\n", header("globals"), count(p.GlobalSymbols.Len()))
	for i, g := range p.GlobalSymbols.Slice() {
		fmt.Fprintf(out, "  G%d: %s\n", i+1, g.Name)
	}

	fmt.Fprintf(out, "%s %s\n", header("functions"), count(p.FunctionNames.Len()))
	for i, name := range p.FunctionNames.Slice() {
		id := pack.FunctionID(i + 1)
		status := "prototype only"
		if def, ok := p.Definitions[id]; ok {
			status = fmt.Sprintf("defined, %d params, %d locals", len(def.Parameters), def.LocalSymbols.Len())
		}
		fmt.Fprintf(out, "  F%d: %s [%s]\n", i+1, name, status)
	}

	fmt.Fprintf(out, "%s rvalues=%d blocks=%d\n", header("tables"), p.RValues.Len(), p.StatementBlocks.Len())
	fmt.Fprintf(out, "%s %s\n", header("prototype order"), formatOrder(p.Prototypes))
	fmt.Fprintf(out, "%s %s\n", header("definition order"), formatOrder(p.DefinitionOrder))
	return nil
}

func formatOrder(ids []pack.FunctionID) string {
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("F%d", id)
	}
	return strings.Join(parts, " ")
}
