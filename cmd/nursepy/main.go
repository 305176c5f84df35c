package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/evhend/nursepy"
	"github.com/evhend/nursepy/config"
	"github.com/evhend/nursepy/plot"
)

func fatal(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	os.Exit(1)
}

func main() {
	var (
		auto              bool
		oneHot            []string
		standardScale     []string
		robustScale       []string
		numericImpute     []string
		categoricalImpute []string
		labelEncode       []string
		outDir            string
		summary           bool
		report            bool
		plotColumns       []string
		sqlSink           bool
	)

	root := &cobra.Command{
		Use:   "nursepy train.csv [test.csv]",
		Short: "Preprocess tabular data: impute, encode and scale consistently across train and test",
		Args:  cobra.RangeArgs(1, 2),
		Run: func(cmd *cobra.Command, args []string) {
			train, err := nursepy.ReadCSV(args[0])
			if err != nil {
				fatal("read train: %v", err)
			}
			var test *nursepy.Frame
			if len(args) == 2 {
				test, err = nursepy.ReadCSV(args[1])
				if err != nil {
					fatal("read test: %v", err)
				}
			}

			opts := nursepy.Options{
				Auto:              auto,
				OneHot:            oneHot,
				StandardScale:     standardScale,
				RobustScale:       robustScale,
				NumericImpute:     numericImpute,
				CategoricalImpute: categoricalImpute,
				LabelEncode:       parseLabelEncode(labelEncode),
			}
			outTrain, outTest, err := nursepy.Preproc(train, test, opts)
			if err != nil {
				fatal("%v", err)
			}

			if outDir == "" {
				outDir = config.GetConfig().OutDir
			}
			trainPath := filepath.Join(outDir, processedName(args[0]))
			if err := nursepy.WriteCSV(outTrain, trainPath); err != nil {
				fatal("write train: %v", err)
			}
			fmt.Println("wrote", trainPath)
			if outTest != nil {
				testPath := filepath.Join(outDir, processedName(args[1]))
				if err := nursepy.WriteCSV(outTest, testPath); err != nil {
					fatal("write test: %v", err)
				}
				fmt.Println("wrote", testPath)
			}

			if summary {
				fmt.Println(nursepy.SummaryTable(nursepy.Describe(outTrain)))
			}
			if report {
				reportPath := filepath.Join(outDir, "report.html")
				if err := nursepy.WriteReport(outTrain, reportPath); err != nil {
					fatal("write report: %v", err)
				}
				fmt.Println("wrote", reportPath)
			}
			for _, name := range plotColumns {
				col := outTrain.Column(name)
				if col == nil || !col.IsNumeric() {
					fatal("cannot plot column %q: not a numeric output column", name)
				}
				png, err := plot.DrawHistogram(col.Floats, 20, name)
				if err != nil {
					fatal("plot %s: %v", name, err)
				}
				plotPath := filepath.Join(outDir, name+".png")
				if err := os.WriteFile(plotPath, png, 0o644); err != nil {
					fatal("write plot: %v", err)
				}
				fmt.Println("wrote", plotPath)
			}
			if sqlSink {
				dsn := config.GetConfig().DbDsn
				if dsn == "" {
					fatal("DB_DSN is not configured")
				}
				db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
				if err != nil {
					fatal("cannot connect to database: %v", err)
				}
				tableName, err := nursepy.SaveSQLTable(db, outTrain, baseSansExt(args[0]))
				if err != nil {
					fatal("save table: %v", err)
				}
				fmt.Println("saved table", tableName)
			}
		},
	}

	root.Flags().BoolVar(&auto, "auto", false, "derive the plan from column dtypes; excludes every manual flag")
	root.Flags().StringSliceVar(&oneHot, "one-hot", nil, "columns to one-hot encode")
	root.Flags().StringSliceVar(&standardScale, "standard-scale", nil, "columns to standard scale")
	root.Flags().StringSliceVar(&robustScale, "robust-scale", nil, "columns to robust scale")
	root.Flags().StringSliceVar(&numericImpute, "numeric-impute", nil, "columns to median-impute")
	root.Flags().StringSliceVar(&categoricalImpute, "categorical-impute", nil, "columns to fill with 'missing'")
	root.Flags().StringArrayVar(&labelEncode, "label-encode", nil, "ordinal encoding spec, col=v1,v2,... (repeatable)")
	root.Flags().StringVar(&outDir, "out-dir", "", "output directory (default OUT_DIR or .)")
	root.Flags().BoolVar(&summary, "summary", false, "print a summary table of the processed train set")
	root.Flags().BoolVar(&report, "report", false, "write an HTML report of the processed train set")
	root.Flags().StringSliceVar(&plotColumns, "plot", nil, "numeric output columns to render as histogram PNGs")
	root.Flags().BoolVar(&sqlSink, "sql-sink", false, "also save the processed train set into the configured database")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// parseLabelEncode turns repeated "col=v1,v2,..." specs into the Options map.
func parseLabelEncode(specs []string) map[string][]string {
	if len(specs) == 0 {
		return nil
	}
	out := map[string][]string{}
	for _, spec := range specs {
		parts := strings.SplitN(spec, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			fatal("invalid label-encode spec %q, want col=v1,v2,...", spec)
		}
		out[parts[0]] = strings.Split(parts[1], ",")
	}
	return out
}

func processedName(inputPath string) string {
	return baseSansExt(inputPath) + "_processed.csv"
}

func baseSansExt(fname string) string {
	base := filepath.Base(fname)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
