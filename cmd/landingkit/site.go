// cmd/landingkit/site.go
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"landingkit/internal/builder"
	"landingkit/internal/bundle"
	"landingkit/internal/scaffold"
	"landingkit/internal/server"
	"landingkit/internal/validate"
)

var (
	newTitle     string
	exportFormat string
	exportOut    string
	servePort    int
)

var newCmd = &cobra.Command{
	Use:   "new <dir>",
	Short: "Create a new landing-page project",
	Args:  cobra.ExactArgs(1),
	RunE:  runNew,
}

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a document and list every problem",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runValidate,
}

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Build the site into the output directory",
	Args:  cobra.NoArgs,
	RunE:  runGen,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the page as html, zip, folder or json",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Estimate the size of the single-file export",
	Args:  cobra.NoArgs,
	RunE:  runSize,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a local preview server with auto-rebuild",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	newCmd.Flags().StringVar(&newTitle, "title", "", "Project title written to landing.yaml.")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", string(builder.FormatHTML), "Export format: html, zip, folder or json.")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file. Defaults to the format's file name in the current directory.")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port for the preview server. Defaults to the config value.")
	rootCmd.AddCommand(newCmd, validateCmd, genCmd, exportCmd, sizeCmd, serveCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	dir := args[0]
	fmt.Println("Scaffolding new project in:", dir)
	if err := scaffold.CreateNewProject(afero.NewOsFs(), dir, newTitle); err != nil {
		return err
	}
	fmt.Println("Project scaffolded. You can now:")
	fmt.Println("  cd", dir)
	fmt.Println("  landingkit serve")
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	p, err := loadProject()
	if err != nil {
		return err
	}
	path := p.cfg.Path(p.cfg.Document)
	if len(args) == 1 {
		path = args[0]
	}
	raw, err := afero.ReadFile(p.fs, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if _, err := validate.Validate(raw); err != nil {
		var verr *validate.Error
		if !errors.As(err, &verr) {
			return err
		}
		for _, f := range verr.Fields {
			fmt.Println(f.String())
		}
		return fmt.Errorf("%s has %d problem(s)", path, len(verr.Fields))
	}
	fmt.Printf("✅ %s is valid.\n", path)
	return nil
}

func runGen(cmd *cobra.Command, args []string) error {
	p, err := loadProject()
	if err != nil {
		return err
	}
	doc, err := p.document()
	if err != nil {
		return err
	}
	fmt.Println("--- Building site ---")
	out := p.cfg.Path(p.cfg.Output)
	n, err := p.builder.BuildSite(cmd.Context(), doc, p.fs, out, builder.BuildOptions{CleanDestination: true})
	if err != nil {
		return fmt.Errorf("site generation failed: %w", err)
	}
	fmt.Printf("✅ Success! Wrote %d files to %s.\n", n, out)
	return nil
}

// reportSize prints the single-file size and, above the warning threshold,
// suggests the folder export.
func reportSize(rep builder.SizeReport, threshold int) {
	fmt.Printf("📦 Estimated single-file size: %s\n", rep)
	if threshold <= 0 {
		threshold = builder.DefaultSizeWarning
	}
	if rep.Oversized {
		fmt.Printf("⚠️  This is above %s and may load slowly or fail to upload. Try 'landingkit export --format folder'.\n",
			bundle.FormatSize(threshold))
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := builder.ParseFormat(exportFormat)
	if err != nil {
		return err
	}
	p, err := loadProject()
	if err != nil {
		return err
	}
	doc, err := p.document()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if format == builder.FormatHTML || format == builder.FormatZip {
		rep, err := p.builder.EstimateSingleFileSize(ctx, doc)
		if err != nil {
			return err
		}
		reportSize(rep, p.cfg.Export.SizeWarning)
	}

	art, err := p.builder.Export(ctx, doc, format)
	if err != nil {
		return err
	}
	out := exportOut
	if out == "" {
		out = art.Filename
	}
	if err := writeFileAtomic(p.fs, out, art.Data); err != nil {
		return err
	}
	abs, _ := filepath.Abs(out)
	fmt.Printf("✅ Exported %s (%s).\n", abs, bundle.FormatSize(len(art.Data)))
	return nil
}

func runSize(cmd *cobra.Command, args []string) error {
	p, err := loadProject()
	if err != nil {
		return err
	}
	doc, err := p.document()
	if err != nil {
		return err
	}
	rep, err := p.builder.EstimateSingleFileSize(cmd.Context(), doc)
	if err != nil {
		return err
	}
	reportSize(rep, p.cfg.Export.SizeWarning)
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	p, err := loadProject()
	if err != nil {
		return err
	}
	port := p.cfg.Port
	if servePort != 0 {
		port = servePort
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, server.Options{
		Port:      port,
		Fs:        p.fs,
		OutputDir: p.cfg.Path(p.cfg.Output),
		WatchPaths: []string{
			p.cfg.Path(p.cfg.Document),
			configPath,
			p.cfg.Path(p.cfg.Static),
		},
		Builder:      p.builder,
		Store:        p.store,
		HistoryDepth: p.cfg.History.Depth,
		Logger:       p.log,
	})
}
