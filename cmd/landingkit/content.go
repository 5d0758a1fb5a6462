// cmd/landingkit/content.go
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"landingkit/internal/assets"
	"landingkit/internal/bundle"
	"landingkit/internal/config"
	"landingkit/internal/document"
	"landingkit/internal/imaging"
	"landingkit/internal/presets"
	"landingkit/internal/sanitize"
	"landingkit/internal/teamcsv"
)

var (
	csvReplace    bool
	csvOut        string
	richtextField string
)

var importCSVCmd = &cobra.Command{
	Use:   "import-csv <file>",
	Short: "Add team members from a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE:  runImportCSV,
}

var exportCSVCmd = &cobra.Command{
	Use:   "export-csv",
	Short: "Write the team as CSV",
	Args:  cobra.NoArgs,
	RunE:  runExportCSV,
}

var richtextCmd = &cobra.Command{
	Use:   "richtext [markdown-file]",
	Short: "Set the hero or pitch rich text from Markdown (stdin when no file is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRichtext,
}

var embedCmd = &cobra.Command{
	Use:   "embed [html-file]",
	Short: "Set the pitch embed from an HTML snippet (stdin when no file is given); an empty snippet clears it",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEmbed,
}

var imageCmd = &cobra.Command{
	Use:   "image <slot> <file>",
	Short: "Embed a file into an asset slot such as logo, heroBackground or teamMember_0",
	Args:  cobra.ExactArgs(2),
	RunE:  runImage,
}

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List saved versions of the document",
	Args:  cobra.NoArgs,
	RunE:  runVersions,
}

var restoreCmd = &cobra.Command{
	Use:   "restore <version>",
	Short: "Restore a saved version; the current document becomes a version itself",
	Args:  cobra.ExactArgs(1),
	RunE:  runRestore,
}

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Apply preset FAQ sets and team bios",
}

var presetFAQCmd = &cobra.Command{
	Use:   "faq [id]",
	Short: "Replace the FAQ with a preset, or list presets when no id is given",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPresetFAQ,
}

var presetBioCmd = &cobra.Command{
	Use:   "bio [search]",
	Short: "Add matching team bios, or list them all when no search is given",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPresetBio,
}

func init() {
	importCSVCmd.Flags().BoolVar(&csvReplace, "replace", false, "Replace the team instead of appending to it.")
	exportCSVCmd.Flags().StringVarP(&csvOut, "out", "o", "", "Output file. Defaults to stdout.")
	richtextCmd.Flags().StringVar(&richtextField, "field", "hero", "Which rich text to set: hero or pitch.")
	presetCmd.AddCommand(presetFAQCmd, presetBioCmd)
	rootCmd.AddCommand(importCSVCmd, exportCSVCmd, richtextCmd, embedCmd, imageCmd, versionsCmd, restoreCmd, presetCmd)
}

func runImportCSV(cmd *cobra.Command, args []string) error {
	p, err := loadProject()
	if err != nil {
		return err
	}
	doc, err := p.document()
	if err != nil {
		return err
	}
	f, err := p.fs.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	members, err := teamcsv.Parse(f)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", args[0], err)
	}
	if csvReplace {
		doc.Team.Members = members
	} else {
		doc.Team.Members = append(doc.Team.Members, members...)
	}
	if err := p.store.Save(doc); err != nil {
		return err
	}
	fmt.Printf("✅ Imported %d team member(s); the team now has %d.\n", len(members), len(doc.Team.Members))
	return nil
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	p, err := loadProject()
	if err != nil {
		return err
	}
	doc, err := p.document()
	if err != nil {
		return err
	}
	if csvOut == "" {
		return teamcsv.Write(os.Stdout, doc.Team.Members)
	}
	var b strings.Builder
	if err := teamcsv.Write(&b, doc.Team.Members); err != nil {
		return err
	}
	return writeFileAtomic(p.fs, csvOut, []byte(b.String()))
}

func runRichtext(cmd *cobra.Command, args []string) error {
	p, err := loadProject()
	if err != nil {
		return err
	}
	doc, err := p.document()
	if err != nil {
		return err
	}

	var src []byte
	if len(args) == 1 {
		src, err = afero.ReadFile(p.fs, args[0])
	} else {
		src, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return err
	}
	html, err := sanitize.Markdown(string(src))
	if err != nil {
		return err
	}

	switch richtextField {
	case "hero":
		doc.Hero.RichTextContent = html
		doc.Hero.UseRichText = true
	case "pitch":
		doc.Pitch.RichTextContent = html
		doc.Pitch.UseRichText = true
	default:
		return fmt.Errorf("unknown rich text field %q: use hero or pitch", richtextField)
	}
	if err := p.store.Save(doc); err != nil {
		return err
	}
	fmt.Printf("✅ Updated %s rich text (%s).\n", richtextField, bundle.FormatSize(len(html)))
	return nil
}

// setPitchEmbed stores the cleaned snippet; the embed then takes the place
// of the pitch document when the page renders.
func setPitchEmbed(doc *document.Document, raw string) {
	doc.Pitch.HTMLEmbed = strings.TrimSpace(sanitize.Embed(raw))
}

func runEmbed(cmd *cobra.Command, args []string) error {
	p, err := loadProject()
	if err != nil {
		return err
	}
	doc, err := p.document()
	if err != nil {
		return err
	}

	var src []byte
	if len(args) == 1 {
		src, err = afero.ReadFile(p.fs, args[0])
	} else {
		src, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return err
	}
	setPitchEmbed(&doc, string(src))
	if err := p.store.Save(doc); err != nil {
		return err
	}
	if doc.Pitch.HTMLEmbed == "" {
		fmt.Println("✅ Cleared the pitch embed.")
		return nil
	}
	fmt.Printf("✅ Updated the pitch embed (%s).\n", bundle.FormatSize(len(doc.Pitch.HTMLEmbed)))
	return nil
}

func runImage(cmd *cobra.Command, args []string) error {
	p, err := loadProject()
	if err != nil {
		return err
	}
	doc, err := p.document()
	if err != nil {
		return err
	}
	slot, ok := assets.SlotByName(&doc, args[0])
	if !ok {
		var names []string
		for _, s := range assets.Slots(&doc) {
			names = append(names, s.Name)
		}
		return fmt.Errorf("unknown slot %q; available: %s", args[0], strings.Join(names, ", "))
	}

	data, err := afero.ReadFile(p.fs, args[1])
	if err != nil {
		return err
	}
	timeout := p.cfg.Images.Timeout
	if timeout <= 0 {
		timeout = config.Default().Images.Timeout
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()
	uri, err := imaging.Prepare(ctx, data, filepath.Base(args[1]), p.imageOptions())
	if err != nil {
		return fmt.Errorf("failed to prepare %s: %w", args[1], err)
	}

	slot.Set(&doc, uri)
	if err := p.store.Save(doc); err != nil {
		return err
	}
	fmt.Printf("✅ Set %s from %s (%s → %s).\n", slot.Name, args[1],
		bundle.FormatSize(len(data)), bundle.FormatSize(len(uri)))
	return nil
}

func runVersions(cmd *cobra.Command, args []string) error {
	p, err := loadProject()
	if err != nil {
		return err
	}
	versions, err := p.store.Versions()
	if err != nil {
		return err
	}
	if len(versions) == 0 {
		fmt.Println("No saved versions.")
		return nil
	}
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSAVED\tSIZE")
	for _, v := range versions {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", v.ID, v.SavedAt.Local().Format("2006-01-02 15:04:05"), bundle.FormatSize(v.Size))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if u, err := p.store.Usage(); err == nil {
		fmt.Printf("Storage: %s of %s (%.0f%%)\n", bundle.FormatSize(u.Used), bundle.FormatSize(u.Max), u.Percent)
	}
	return nil
}

func runRestore(cmd *cobra.Command, args []string) error {
	p, err := loadProject()
	if err != nil {
		return err
	}
	if _, err := p.store.Restore(args[0]); err != nil {
		return err
	}
	fmt.Printf("✅ Restored version %s.\n", args[0])
	return nil
}

func runPresetFAQ(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		list, err := presets.FAQPresets()
		if err != nil {
			return err
		}
		for _, fp := range list {
			fmt.Printf("%-16s %s (%d questions)\n", fp.ID, fp.Name, len(fp.Questions))
		}
		return nil
	}

	preset, ok, err := presets.FindFAQPreset(args[0])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("unknown FAQ preset %q", args[0])
	}
	p, err := loadProject()
	if err != nil {
		return err
	}
	doc, err := p.document()
	if err != nil {
		return err
	}
	doc.FAQ.Items = preset.Items()
	if err := p.store.Save(doc); err != nil {
		return err
	}
	fmt.Printf("✅ FAQ replaced with %q (%d questions).\n", preset.Name, len(doc.FAQ.Items))
	return nil
}

func runPresetBio(cmd *cobra.Command, args []string) error {
	term := ""
	if len(args) == 1 {
		term = args[0]
	}
	bios, err := presets.SearchTeamBios(term)
	if err != nil {
		return err
	}
	if term == "" {
		for _, b := range bios {
			fmt.Printf("%-20s %s\n", b.Name, b.Title)
		}
		return nil
	}
	if len(bios) == 0 {
		return fmt.Errorf("no team bio matches %q", term)
	}

	p, err := loadProject()
	if err != nil {
		return err
	}
	doc, err := p.document()
	if err != nil {
		return err
	}
	for _, b := range bios {
		doc.Team.Members = append(doc.Team.Members, b.Member())
		fmt.Printf("Added %s\n", b.Name)
	}
	return p.store.Save(doc)
}
