package commands

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/apidoc2oas"
	"github.com/erraggy/apidoc2oas/apidoc"
	"github.com/erraggy/apidoc2oas/generator"
	"github.com/erraggy/apidoc2oas/internal/cliutil"
	"github.com/erraggy/apidoc2oas/merger"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	Project    string
	Template   string
	Output     string
	Format     string
	Strict     bool
	NoWarnings bool
	Quiet      bool
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
// Returns the FlagSet and a GenerateFlags struct with bound flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &GenerateFlags{}

	fs.StringVar(&flags.Project, "p", "", "project metadata artifact (api_project.json)")
	fs.StringVar(&flags.Project, "project", "", "project metadata artifact (api_project.json)")
	fs.StringVar(&flags.Template, "t", "", "base document to merge the generated members onto")
	fs.StringVar(&flags.Template, "template", "", "base document to merge the generated members onto")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Format, "format", FormatYAML, "output encoding (yaml or json)")
	fs.BoolVar(&flags.Strict, "strict", false, "fail on any generation issues (even warnings)")
	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress warning and info messages")
	fs.BoolVar(&flags.Quiet, "q", false, "suppress the summary, print only the document")
	fs.BoolVar(&flags.Quiet, "quiet", false, "suppress the summary, print only the document")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: apidoc2oas generate [flags] <api_data.json|->\n\n")
		cliutil.Writef(fs.Output(), "Generate an OpenAPI document from apidoc documentation artifacts.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  apidoc2oas generate doc/api_data.json\n")
		cliutil.Writef(fs.Output(), "  apidoc2oas generate -p doc/api_project.json -o openapi.yaml doc/api_data.json\n")
		cliutil.Writef(fs.Output(), "  apidoc2oas generate -t base.yaml -o openapi.yaml doc/api_data.json\n")
		cliutil.Writef(fs.Output(), "  apidoc2oas generate --strict --format json doc/api_data.json\n")
		cliutil.Writef(fs.Output(), "  cat doc/api_data.json | apidoc2oas generate -\n")
		cliutil.Writef(fs.Output(), "\nPipelining:\n")
		cliutil.Writef(fs.Output(), "  Use '-' as the file path to read the endpoint records from stdin.\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Warnings indicate best-effort output that should be reviewed\n")
		cliutil.Writef(fs.Output(), "  - Errors indicate records that were rejected and left out of the document\n")
		cliutil.Writef(fs.Output(), "  - Template members lose to generated members on collision\n")
	}

	return fs, flags
}

// HandleGenerate executes the generate command
func HandleGenerate(args []string) error {
	fs, flags := SetupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("generate command requires exactly one file path or '-' for stdin")
	}

	dataPath := fs.Arg(0)

	if flags.Format == FormatText {
		return fmt.Errorf("invalid format 'text' for generate. Valid formats: %s, %s", FormatYAML, FormatJSON)
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	p := apidoc.NewParser()
	endpoints, err := readEndpoints(p, dataPath)
	if err != nil {
		return err
	}

	var project apidoc.Project
	if flags.Project != "" {
		proj, err := p.ParseProject(flags.Project)
		if err != nil {
			return fmt.Errorf("parsing project metadata: %w", err)
		}
		project = *proj
	}

	g := generator.New()
	g.StrictMode = flags.Strict
	g.IncludeInfo = !flags.NoWarnings

	startTime := time.Now()
	result, err := g.Generate(endpoints, project)
	totalTime := time.Since(startTime)
	if err != nil {
		if result != nil {
			printIssues(result.Issues)
		}
		return fmt.Errorf("generating document: %w", err)
	}

	if !flags.Quiet {
		fmt.Printf("OpenAPI Document Generator\n")
		fmt.Printf("==========================\n\n")
		fmt.Printf("apidoc2oas version: %s\n", apidoc2oas.Version())
		if dataPath == StdinFilePath {
			fmt.Printf("Records: <stdin>\n")
		} else {
			fmt.Printf("Records: %s\n", dataPath)
		}
		fmt.Printf("Endpoints: %d\n", result.EndpointCount)
		fmt.Printf("Skipped: %d\n", result.SkippedCount)
		fmt.Printf("Paths: %d\n", len(result.Document.Paths))
		fmt.Printf("Total Time: %v\n\n", totalTime)

		printIssues(result.Issues)

		if result.Success {
			fmt.Printf("✓ Generation successful")
			if result.InfoCount > 0 || result.WarningCount > 0 {
				fmt.Printf(" (%d info, %d warnings)", result.InfoCount, result.WarningCount)
			}
			fmt.Println()
		} else {
			fmt.Printf("✗ Generation completed with %d rejected record(s)", result.SkippedCount)
			if result.WarningCount > 0 {
				fmt.Printf(", %d warning(s)", result.WarningCount)
			}
			fmt.Println()
		}
		fmt.Println()
	}

	var document any = result.Document
	if flags.Template != "" {
		template, err := merger.LoadTemplate(flags.Template)
		if err != nil {
			return fmt.Errorf("loading template: %w", err)
		}
		merged, err := merger.MergeDocument(template, result.Document)
		if err != nil {
			return fmt.Errorf("merging template: %w", err)
		}
		document = merged
	}

	data, err := marshalDocument(document, flags.Format)
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}

	if flags.Output != "" {
		if err := os.WriteFile(flags.Output, data, 0o600); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		if !flags.Quiet {
			fmt.Printf("Output written to: %s\n", flags.Output)
		}
	} else {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing document to stdout: %w", err)
		}
	}

	if !result.Success {
		os.Exit(1)
	}

	return nil
}

func printIssues(issues []generator.Issue) {
	if len(issues) == 0 {
		return
	}
	fmt.Printf("Generation Issues (%d):\n", len(issues))
	for _, issue := range issues {
		fmt.Printf("  %s\n", issue.String())
	}
	fmt.Println()
}

// marshalDocument marshals a document to bytes in the specified format
func marshalDocument(doc any, format string) ([]byte, error) {
	if format == FormatJSON {
		return json.MarshalIndent(doc, "", "  ")
	}
	return yaml.Marshal(doc)
}
