package cli

import (
	"github.com/spf13/cobra"

	foundryctx "github.com/example/foundry/internal/context"
	"github.com/example/foundry/internal/ports/primary"
	"github.com/example/foundry/internal/wire"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Snapshot, compare and tag part versions",
}

var versionSnapshotCmd = &cobra.Command{
	Use:   "snapshot [part-id]",
	Short: "Freeze the current state of a part as a new version",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		tag, _ := cmd.Flags().GetString("tag")
		fixes, _ := cmd.Flags().GetString("fixes")

		_, err := wire.VersionAdapter().Snapshot(foundryctx.CommandContext(), primary.CreateSnapshotRequest{
			PartID:  args[0],
			Version: name,
			Tag:     tag,
			Fixes:   splitList(fixes),
		})
		return err
	},
}

var versionCompareCmd = &cobra.Command{
	Use:   "compare [part-id] [version-a] [version-b]",
	Short: "Compare two versions of a part",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.VersionAdapter().Compare(foundryctx.CommandContext(), args[0], args[1], args[2])
		return err
	},
}

var versionTimelineCmd = &cobra.Command{
	Use:   "timeline [part-id]",
	Short: "List the versions of a part",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.VersionAdapter().Timeline(foundryctx.CommandContext(), args[0])
		return err
	},
}

var versionTagCmd = &cobra.Command{
	Use:   "tag [part-id] [version] [tag]",
	Short: "Label a version (e.g. EVT, DVT, PVT)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.VersionAdapter().Tag(foundryctx.CommandContext(), args[0], args[1], args[2])
	},
}

var versionSuggestTagCmd = &cobra.Command{
	Use:   "suggest-tag [part-id]",
	Short: "Suggest a milestone tag from the part's score and quantity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.VersionAdapter().SuggestTag(foundryctx.CommandContext(), args[0])
		return err
	},
}

func init() {
	versionSnapshotCmd.Flags().String("name", "", "Version name (default: next vN)")
	versionSnapshotCmd.Flags().StringP("tag", "t", "", "Milestone tag")
	versionSnapshotCmd.Flags().String("fixes", "", "Comma-separated fixes applied since the last version")

	versionCmd.AddCommand(versionSnapshotCmd)
	versionCmd.AddCommand(versionCompareCmd)
	versionCmd.AddCommand(versionTimelineCmd)
	versionCmd.AddCommand(versionTagCmd)
	versionCmd.AddCommand(versionSuggestTagCmd)
}

// VersionCmd returns the version command
func VersionCmd() *cobra.Command {
	return versionCmd
}
