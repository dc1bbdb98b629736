// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command variantgen writes the arity-specific variant types.
//
// For every arity N in [--min, --max] it writes variantN.go into --out,
// declaring storageN, VariantN and MatchN. All lifetime and dispatch logic
// stays in the hand-written files of the package; the generated code only
// spells out the slots and the typed accessors of each arity.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	minArity int
	maxArity int
	outDir   string
	pkgName  string
)

var rootCmd = &cobra.Command{
	Use:   "variantgen",
	Short: "Generate Variant1 through VariantN",
	Args:  cobra.NoArgs,
	RunE:  generate,
}

func init() {
	rootCmd.Flags().IntVar(&minArity, "min", 1, "smallest arity to generate")
	rootCmd.Flags().IntVar(&maxArity, "max", 8, "largest arity to generate")
	rootCmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	rootCmd.Flags().StringVar(&pkgName, "package", "variant", "package clause of the generated files")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("variantgen: %v", err)
	}
}

func generate(cmd *cobra.Command, args []string) error {
	if minArity < 1 || maxArity < minArity {
		return fmt.Errorf("invalid arity range [%d, %d]", minArity, maxArity)
	}
	for n := minArity; n <= maxArity; n++ {
		src, err := render(pkgName, n)
		if err != nil {
			return err
		}
		name := filepath.Join(outDir, fmt.Sprintf("variant%d.go", n))
		if err := os.WriteFile(name, src, 0o644); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
