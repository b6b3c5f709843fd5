package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var altoExtractOutput string

var altoExtractCmd = &cobra.Command{
	Use:                   "extract IMAGE PATH",
	Short:                 "Extract a file's contents from a disk image",
	Long:                  `Resolves PATH ("dir>subdir>name") against the directory hierarchy and writes the named file's body to stdout or --output.`,
	Args:                  cobra.ExactArgs(2),
	DisableFlagsInUseLine: true,
	Run: func(cmd *cobra.Command, args []string) {
		fs, err := openImage(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		fe, err := fs.FindFile(args[1])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		data, err := fs.ExtractFile(fe)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		out := os.Stdout
		if altoExtractOutput != "" {
			f, err := os.Create(altoExtractOutput)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			defer f.Close()
			out = f
		}

		if _, err := out.Write(data); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	altoExtractCmd.Flags().StringVarP(&altoExtractOutput, "output", "o", "", "write to this file instead of stdout")
	rootCmd.AddCommand(altoExtractCmd)
}
