package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/davidwu111/extract-livp/internal/config"
	"github.com/davidwu111/extract-livp/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	appVersion = "0.1.0"
	cfgFile    string
	source     string
	outputDir  string
	logFile    string
	logJSON    bool
	dryRun     bool
	crcVerify  bool
	assumeYes  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "extract-livp",
	Short: "Extract still images and videos from .livp live photo archives",
	Long: `extract-livp scans a folder for .livp live photo archives, pulls the
embedded still image (.heic/.jpg/.jpeg) and video (.mov) out of each one,
and writes them to a "converted" folder with collision-safe names.`,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the extraction pipeline",
	RunE:  runPipeline,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(appVersion)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)

	runCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	runCmd.Flags().StringVarP(&source, "source", "s", "", "folder containing .livp files (prompted if omitted)")
	runCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "output folder (default: <source>/converted)")
	runCmd.Flags().StringVar(&logFile, "log-file", "", "log file path")
	runCmd.Flags().BoolVar(&logJSON, "log-json", false, "output JSON logs")
	runCmd.Flags().BoolVar(&dryRun, "dry-run", false, "simulate without writing files")
	runCmd.Flags().BoolVar(&crcVerify, "crc-verify", false, "verify extracted files against archive checksums")
	runCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip the confirmation prompt")
}

func runPipeline(cmd *cobra.Command, args []string) error {
	var cfg *config.Config
	var err error

	if cfgFile != "" {
		cfg, err = config.LoadFromFile(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	} else {
		cfg = config.DefaultConfig()
	}

	if source != "" {
		cfg.Source = source
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}
	if logJSON {
		cfg.LogJSON = true
	}
	if dryRun {
		cfg.DryRun = true
	}
	if crcVerify {
		cfg.CRCVerify = true
	}
	if assumeYes {
		cfg.AssumeYes = true
	}

	if cfg.Source == "" {
		cfg.Source = promptSource()
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer p.Close()

	if !cfg.AssumeYes {
		p.SetConfirm(promptConfirm)
	}

	_, err = p.Run()
	if errors.Is(err, pipeline.ErrCancelled) {
		fmt.Println("Extraction cancelled by user.")
		return nil
	}
	return err
}

// promptSource asks for the input folder interactively. Paths dragged into
// a terminal arrive wrapped in quotes, so those are stripped.
func promptSource() string {
	fmt.Print("Please enter the path to the folder containing .livp files: ")
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	line = strings.ReplaceAll(line, `"`, "")
	line = strings.ReplaceAll(line, "'", "")
	return line
}

func promptConfirm(count int) bool {
	fmt.Printf("Found %d .livp file(s).\n", count)
	fmt.Print("Do you want to proceed with extraction? (yes/no): ")
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "yes" || answer == "y"
}
