package cmd

import (
	"maps"
	"runtime"
	"slices"
	"strings"

	"github.com/huangsam/repulse/schema"
	"github.com/spf13/cobra"
)

// versionCmd shows the verbose version for diagnostic purposes.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of repulse.",
	Long: `Display version information including build details.

Shows:
- Release version
- Git commit hash
- Build timestamp
- Go runtime version
- Chart renderers, image formats, report modes and databases built in

Useful for:
- Debugging compatibility issues
- Verifying correct binary installation
- Reporting bugs with version details`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("repulse CLI\n")
		cmd.Printf("  Version:   %s\n", version)
		cmd.Printf("  Commit:    %s\n", commit)
		cmd.Printf("  Built:     %s\n", date)
		cmd.Printf("  Runtime:   %s\n", runtime.Version())
		cmd.Printf("  Renderers: %s\n", joinSorted(schema.ValidRenderBackends))
		cmd.Printf("  Formats:   %s\n", joinSorted(schema.ValidOutputFormats))
		cmd.Printf("  Reports:   %s\n", joinSorted(schema.ValidReportModes))
		cmd.Printf("  Databases: %s\n", joinSorted(schema.ValidDatabaseBackends))
	},
}

// joinSorted lists the keys of a set in lexical order.
func joinSorted[K ~string](set map[K]struct{}) string {
	var names []string
	for _, k := range slices.Sorted(maps.Keys(set)) {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}
