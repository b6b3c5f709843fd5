package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"altofs/alto"
)

var altoSummaryCmd = &cobra.Command{
	Use:                   "summary FILE",
	Short:                 "List every file on the disk and the root directory contents",
	Long:                  `Loads an Alto disk image and prints every file found by a full volume scan, followed by a listing of the root directory.`,
	Args:                  cobra.ExactArgs(1),
	DisableFlagsInUseLine: true,
	Run: func(cmd *cobra.Command, args []string) {
		fs, err := openImage(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		fmt.Println("Files:")
		err = fs.ScanFiles(func(fe alto.FileEntry) error {
			info, err := fs.FileInfo(fe)
			if err != nil {
				return err
			}
			fmt.Printf("  leader_vda=%-6d version=%-5d %s\n", fe.LeaderVDA, fe.Version, info.Filename)
			return nil
		})
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		root, err := fs.FindFile("")
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		fmt.Println("\nRoot directory:")
		err = fs.ScanDirectory(root, func(de alto.DirectoryEntry) error {
			fmt.Printf("  %-40s leader_vda=%d version=%d\n", de.Filename, de.FE.LeaderVDA, de.FE.Version)
			return nil
		})
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(altoSummaryCmd)
}
