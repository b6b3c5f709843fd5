package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var altoCheckCmd = &cobra.Command{
	Use:                   "check FILE",
	Short:                 "Verify the integrity of a disk image",
	Long:                  `Loads an Alto disk image and checks every page's header, label, and chain linkage, reporting each violation found.`,
	Args:                  cobra.ExactArgs(1),
	DisableFlagsInUseLine: true,
	Run: func(cmd *cobra.Command, args []string) {
		fs, err := openImage(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		ok, err := fs.CheckIntegrity()
		if err != nil {
			fmt.Println(err)
		}
		if !ok {
			os.Exit(1)
		}
		fmt.Println("OK")
	},
}

func init() {
	rootCmd.AddCommand(altoCheckCmd)
}
