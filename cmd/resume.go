package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/resume"
)

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "View and improve your resume",
}

var resumeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resume as Markdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := buildServices(cmd, true)
		if err != nil {
			return err
		}
		defer s.Close()

		r, err := s.resumes.Get(cmd.Context())
		if err != nil {
			return err
		}
		md := r.Markdown()
		if strings.TrimSpace(md) == "" {
			fmt.Println("No resume saved yet.")
			return nil
		}
		fmt.Print(md)
		return nil
	},
}

var resumeImproveCmd = &cobra.Command{
	Use:   "improve <section>",
	Short: "Rewrite a section description with AI (reads text from stdin)",
	Long:  "Rewrites resume content for impact. Section is one of: summary, experience, education, project. The current text is read from stdin.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		section := resume.SectionType(args[0])
		switch section {
		case resume.SectionSummary, resume.SectionExperience,
			resume.SectionEducation, resume.SectionProject:
		default:
			return fmt.Errorf("unknown section %q", args[0])
		}

		current, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}

		s, err := buildServices(cmd, false)
		if err != nil {
			return err
		}
		defer s.Close()

		if !s.aiReady {
			return fmt.Errorf("no LLM provider configured")
		}

		improved, err := s.resumes.ImproveWithAI(cmd.Context(), section, string(current))
		if err != nil {
			return err
		}
		fmt.Println(improved)
		return nil
	},
}

var resumeImportCmd = &cobra.Command{
	Use:   "import <file.pdf>",
	Short: "Extract plain text from a PDF resume",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := resume.ImportPDF(args[0])
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			fmt.Println(text)
			return nil
		}
		if err := os.WriteFile(out, []byte(text+"\n"), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		fmt.Printf("Wrote %d bytes to %s\n", len(text)+1, out)
		return nil
	},
}

func init() {
	resumeImportCmd.Flags().StringP("out", "o", "", "Write extracted text to a file instead of stdout")

	resumeCmd.AddCommand(resumeShowCmd)
	resumeCmd.AddCommand(resumeImproveCmd)
	resumeCmd.AddCommand(resumeImportCmd)
}
