package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"commentlint/internal/comment"
	"commentlint/internal/diagfmt"
	"commentlint/internal/extract"
	"commentlint/internal/source"
)

var commentsCmd = &cobra.Command{
	Use:   "comments [flags] file",
	Short: "Dump the comments of a file",
	Long: `Comments prints the comments found in a file ("-" reads stdin). By default the
parsed logical comments are shown; --raw prints the comments as extracted.`,
	Args: cobra.ExactArgs(1),
	RunE: runComments,
}

func init() {
	commentsCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	commentsCmd.Flags().Bool("raw", false, "print extracted comments without parsing")
	commentsCmd.Flags().Bool("no-squash", false, "do not merge adjacent // comments")
}

func readSource(cmd *cobra.Command, path string) ([]byte, error) {
	var content []byte
	var err error
	if path == "-" {
		content, err = io.ReadAll(cmd.InOrStdin())
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	normalized, _, err := source.Normalize(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return normalized, nil
}

func runComments(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	raw, _ := cmd.Flags().GetBool("raw")
	noSquash, _ := cmd.Flags().GetBool("no-squash")

	content, err := readSource(cmd, args[0])
	if err != nil {
		return err
	}
	raws, err := extract.Comments(content)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	out := cmd.OutOrStdout()

	if raw {
		if format == "json" {
			return diagfmt.FormatRawJSON(out, raws)
		}
		return diagfmt.FormatRawPretty(out, raws)
	}

	// Диагностики формата здесь не нужны, только результат разбора.
	comments := comment.ParseAll(raws, nil)
	if !noSquash {
		comments = comment.Squash(comments)
	}
	if format == "json" {
		return diagfmt.FormatCommentsJSON(out, comments)
	}
	return diagfmt.FormatCommentsPretty(out, comments)
}
