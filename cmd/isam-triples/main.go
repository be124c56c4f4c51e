// Command isam-triples drives the incremental sparse QR core from the
// command line: load a matrix in triples text format, triangulate it,
// inspect its sparsity pattern, or multiply it against a dense vector.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/An-Pan/isam"
)

var (
	verbose  bool
	jsonLog  bool
	logLevel = slog.LevelInfo
)

var rootCmd = &cobra.Command{
	Use:   "isam-triples",
	Short: "Inspect and triangulate sparse matrices in triples text format",
}

func activeLogger() *logger {
	if verbose {
		logLevel = slog.LevelDebug
	}
	return newLogger(logLevel, jsonLog)
}

func loadMatrix(path string) (*isam.SparseMatrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("isam-triples: %w", err)
	}
	defer f.Close()
	return isam.ReadTriples(f)
}

var triangulateCmd = &cobra.Command{
	Use:   "triangulate <input.triples>",
	Short: "Triangulate a matrix and write its R factor in triples format",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lg := activeLogger()
		path := args[0]
		m, err := loadMatrix(path)
		if err != nil {
			lg.logLoad(path, 0, 0, 0, err)
			return err
		}
		rows, cols, nnz := m.Stats()
		lg.logLoad(path, rows, cols, nnz, nil)

		tr := isam.NewTriangulator(m.NumCols())
		for r := 0; r < m.NumRows(); r++ {
			tr.AppendRow(m.GetRow(r))
		}
		rotations := tr.Triangulate()
		lg.logTriangulate(path, rotations, nil)

		outPath, _ := cmd.Flags().GetString("output")
		if outPath == "" {
			return isam.WriteTriples(os.Stdout, tr.R())
		}
		out, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("isam-triples: %w", err)
		}
		defer out.Close()
		return isam.WriteTriples(out, tr.R())
	},
}

var patternCmd = &cobra.Command{
	Use:   "pattern <input.triples>",
	Short: "Print the matrix's sparsity pattern as an ASCII grid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadMatrix(args[0])
		if err != nil {
			return err
		}
		return isam.PrintPattern(os.Stdout, m)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats <input.triples>",
	Short: "Print row/column/nonzero counts for a matrix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadMatrix(args[0])
		if err != nil {
			return err
		}
		rows, cols, nnz := m.Stats()
		density := 0.0
		if rows > 0 && cols > 0 {
			density = float64(nnz) / float64(rows*cols) * 100
		}
		fmt.Printf("%s x %s matrix, %s nonzeros (%.4f%% dense)\n",
			humanize.Comma(int64(rows)), humanize.Comma(int64(cols)), humanize.Comma(int64(nnz)), density)
		return nil
	},
}

var mulCmd = &cobra.Command{
	Use:   "mul <input.triples> <x1,x2,...>",
	Short: "Multiply a matrix by a dense vector given as comma-separated values",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadMatrix(args[0])
		if err != nil {
			return err
		}
		transpose, _ := cmd.Flags().GetBool("transpose")

		fields := strings.Split(args[1], ",")
		x := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return fmt.Errorf("isam-triples: bad vector component %q: %w", f, err)
			}
			x[i] = v
		}

		var result []float64
		if transpose {
			result = isam.MulTransposeVector(m, x)
		} else {
			result = isam.MulVector(m, x)
		}
		parts := make([]string, len(result))
		for i, v := range result {
			parts[i] = strconv.FormatFloat(v, 'g', 12, 64)
		}
		fmt.Println(strings.Join(parts, ","))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug-level logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLog, "json-log", false, "Emit structured JSON logs instead of text")

	triangulateCmd.Flags().String("output", "", "Write the R factor to this file instead of stdout")
	mulCmd.Flags().Bool("transpose", false, "Multiply by the transpose instead")

	rootCmd.AddCommand(triangulateCmd, patternCmd, statsCmd, mulCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
