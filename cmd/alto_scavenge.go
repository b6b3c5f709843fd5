package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var altoScavengeCmd = &cobra.Command{
	Use:                   "scavenge FILE NAME",
	Short:                 "Recover a file by name, ignoring directory structure",
	Long: `Scans every leader page on the disk for one whose filename matches NAME,
bypassing the directory hierarchy entirely. Useful when a directory file
itself is damaged. Fails if no leader matches, or if more than one does.`,
	Args:                  cobra.ExactArgs(2),
	DisableFlagsInUseLine: true,
	Run: func(cmd *cobra.Command, args []string) {
		fs, err := openImage(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		fe, err := fs.ScavengeFile(args[1])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		fmt.Printf("leader_vda=%d version=%d file_type=0x%04x file_id=0x%04x\n",
			fe.LeaderVDA, fe.Version, fe.SN.FileType, fe.SN.FileID)
	},
}

func init() {
	rootCmd.AddCommand(altoScavengeCmd)
}
