package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/svgmotion/svgmotion/pkg/color"
	"github.com/svgmotion/svgmotion/pkg/model"
)

// suggestTypes returns a hint listing the animation types closest to query.
func suggestTypes(query string) string {
	query = strings.ToLower(strings.TrimSpace(query))
	types := model.Types()

	var matches []string
	if query != "" {
		for _, t := range types {
			if strings.HasPrefix(t.String(), query) {
				matches = append(matches, color.Type(t.String()))
			}
		}
		// If no prefix matches, try substring
		if len(matches) == 0 {
			for _, t := range types {
				if strings.Contains(t.String(), query) || strings.Contains(query, t.String()) {
					matches = append(matches, color.Type(t.String()))
				}
			}
		}
	}

	if len(matches) > 0 {
		hint := "Did you mean"
		if len(matches) > 1 {
			hint += " one of"
		}
		return fmt.Sprintf("%s: %s?", hint, strings.Join(matches, ", "))
	}

	names := make([]string, len(types))
	for i, t := range types {
		names[i] = color.Type(t.String())
	}
	return fmt.Sprintf("Available types: %s", strings.Join(names, ", "))
}

// formatUnknownTypeError wraps err with a suggestion line.
func formatUnknownTypeError(query string, err error) error {
	return fmt.Errorf("%w\n%s", err, color.Dim("  "+suggestTypes(query)))
}

// completeTypes completes the --type flag.
func completeTypes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, t := range model.Types() {
		if strings.HasPrefix(t.String(), toComplete) {
			out = append(out, t.String()+"\t"+t.Family())
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
