package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/envchk/envchk/internal/checker"
	"github.com/envchk/envchk/internal/config"
	"github.com/envchk/envchk/internal/envfile"
	"github.com/envchk/envchk/internal/output"
	"github.com/envchk/envchk/internal/watcher"
)

// Version is set at build time via -ldflags
var Version = "dev"

var (
	rootCmd = &cobra.Command{
		Use:     "envchk",
		Short:   "Check .env files against their example templates",
		Long:    "A CLI tool that validates .env files against the variables declared in .env.example templates.",
		Version: Version,
	}

	checkCmd = &cobra.Command{
		Use:   "check [directory]",
		Short: "Check a directory's .env against its example file",
		Long:  "Compares the .env file with the example template and reports missing, empty and extra variables.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCheck,
	}

	watchCmd = &cobra.Command{
		Use:   "watch [directory]",
		Short: "Re-run the check whenever the env files change",
		Long:  "Runs the check, then keeps watching the .env and example files and re-checks on every change.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runWatch,
	}

	initConfigCmd = &cobra.Command{
		Use:   "init-config",
		Short: "Create a .envchk.config file in the current directory",
		Long:  "Creates a .envchk.config file with default configuration in the current directory.",
		RunE:  runInitConfig,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Long:  "Print the version number of envchk",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(Version)
		},
	}

	// Flags
	envPath        string
	examplePath    string
	includeExtra   bool
	noEmptyWarning bool
	jsonOutput     bool
	silent         bool
	noColor        bool
	noHeader       bool
	debug          bool
)

func init() {
	for _, cmd := range []*cobra.Command{checkCmd, watchCmd} {
		cmd.Flags().StringVarP(&envPath, "env", "e", "", "Path to the .env file (default: discover in the directory)")
		cmd.Flags().StringVarP(&examplePath, "example", "x", "", "Path to the example file (default: discover in the directory)")
		cmd.Flags().BoolVar(&includeExtra, "extra", false, "Report variables present in .env but absent from the example")
		cmd.Flags().BoolVar(&noEmptyWarning, "no-empty-warning", false, "Do not warn about variables that are set but blank")
		cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output results in JSON format")
		cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
		cmd.Flags().BoolVar(&noHeader, "no-header", false, "Skip printing the table header")
		cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	}
	checkCmd.Flags().BoolVar(&silent, "silent", false, "Silent mode (exit code only)")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(initConfigCmd)
	rootCmd.AddCommand(versionCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if noColor {
		output.DisableColor()
	}

	dir, err := targetDir(args)
	if err != nil {
		return err
	}

	envFile, exampleFile, err := resolvePaths(dir)
	if err != nil {
		return err
	}

	report, err := runOnce(dir, envFile, exampleFile)
	if err != nil {
		return err
	}

	if output.HasIssues(report) {
		os.Exit(1)
	}

	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	if noColor {
		output.DisableColor()
	}

	dir, err := targetDir(args)
	if err != nil {
		return err
	}

	// Unlike check, watch tolerates a missing .env: the file shows up
	// as all-missing until it is created, then the report updates.
	envFile := envPath
	if envFile == "" {
		if found, ok := envfile.FindEnv(dir); ok {
			envFile = found
		} else {
			envFile = filepath.Join(dir, ".env")
		}
	}

	exampleFile := examplePath
	if exampleFile == "" {
		found, ok := envfile.FindExample(dir)
		if !ok {
			return fmt.Errorf("no example file found in %s (tried %s)", dir, strings.Join(envfile.ExampleCandidates, ", "))
		}
		exampleFile = found
	} else if _, err := os.Stat(exampleFile); err != nil {
		return fmt.Errorf("example file not found: %s", exampleFile)
	}

	w, err := watcher.New(watcher.DefaultLull, envFile, exampleFile, filepath.Join(dir, config.FileName))
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer w.Close()

	if _, err := runOnce(dir, envFile, exampleFile); err != nil {
		return err
	}

	// Stop cleanly on Ctrl-C.
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigc
		w.Close()
	}()

	fmt.Fprintf(os.Stderr, "Watching %s and %s for changes...\n", envFile, exampleFile)

	return w.Run(func() {
		fmt.Fprintf(os.Stderr, "\nChange detected at %s, re-checking...\n", time.Now().Format("15:04:05"))
		if _, err := runOnce(dir, envFile, exampleFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	})
}

// targetDir picks the directory to check from the positional args.
func targetDir(args []string) (string, error) {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("directory does not exist: %s", dir)
	}
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %s", dir)
	}
	return dir, nil
}

// resolvePaths locates the two input files, honoring explicit flags.
func resolvePaths(dir string) (string, string, error) {
	envFile := envPath
	if envFile == "" {
		found, ok := envfile.FindEnv(dir)
		if !ok {
			return "", "", fmt.Errorf("no .env file found in %s (specify one with --env)", dir)
		}
		envFile = found
	} else if _, err := os.Stat(envFile); err != nil {
		return "", "", fmt.Errorf("env file not found: %s", envFile)
	}

	exampleFile := examplePath
	if exampleFile == "" {
		found, ok := envfile.FindExample(dir)
		if !ok {
			return "", "", fmt.Errorf("no example file found in %s (tried %s)", dir, strings.Join(envfile.ExampleCandidates, ", "))
		}
		exampleFile = found
	} else if _, err := os.Stat(exampleFile); err != nil {
		return "", "", fmt.Errorf("example file not found: %s", exampleFile)
	}

	return envFile, exampleFile, nil
}

// runOnce executes one read-parse-compare-render cycle.
func runOnce(dir, envFile, exampleFile string) (checker.Report, error) {
	example, err := envfile.ParseFile(exampleFile)
	if err != nil {
		return checker.Report{}, err
	}
	actual, err := envfile.ParseFile(envFile)
	if err != nil {
		return checker.Report{}, err
	}

	if debug {
		fmt.Fprintf(os.Stderr, "[DEBUG] parsed %d declarations from %s\n", example.Len(), exampleFile)
		fmt.Fprintf(os.Stderr, "[DEBUG] parsed %d variables from %s\n", actual.Len(), envFile)
	}

	cfg, err := config.LoadConfig(dir)
	if err != nil {
		if !silent {
			fmt.Fprintf(os.Stderr, "Warning: failed to load %s: %v\n", config.FileName, err)
		}
		// Continue with default config
		cfg = &config.Config{}
	}

	opts := checker.Options{
		IncludeExtra: includeExtra,
		WarnOnEmpty:  !noEmptyWarning,
		Config:       cfg,
	}

	report := checker.Compare(example, actual, opts)
	report.EnvPath = envFile
	report.ExamplePath = exampleFile

	if err := output.Format(os.Stdout, report, jsonOutput, silent, opts.WarnOnEmpty, noHeader); err != nil {
		return checker.Report{}, fmt.Errorf("failed to format output: %w", err)
	}

	return report, nil
}

func runInitConfig(cmd *cobra.Command, args []string) error {
	configPath := config.FileName

	// Refuse to clobber an existing config
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists in the current directory", config.FileName)
	}

	configContent := `# .envchk.config
# Configuration file for envchk

ignores:
  # Variables declared in the example that the platform provides at
  # runtime. These will not be reported as missing.
  missing:
    # - CUSTOM_API_KEY
    # - AWS_*
    # Add more variable names or glob patterns here as needed

  # Variables that are deliberately local-only. These will not be
  # reported as extra.
  extra:
    # - VITE_*
    # Add more variable names or glob patterns here as needed
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		return fmt.Errorf("failed to create %s: %w", config.FileName, err)
	}

	fmt.Printf("Created %s in the current directory\n", config.FileName)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
