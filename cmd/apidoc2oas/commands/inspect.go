package commands

import (
	"errors"
	"flag"
	"fmt"
	"sort"
	"time"

	"github.com/erraggy/apidoc2oas"
	"github.com/erraggy/apidoc2oas/apidoc"
	"github.com/erraggy/apidoc2oas/generator"
	"github.com/erraggy/apidoc2oas/internal/cliutil"
)

// InspectFlags contains flags for the inspect command
type InspectFlags struct {
	Project string
	Format  string
}

// SetupInspectFlags creates and configures a FlagSet for the inspect command.
// Returns the FlagSet and an InspectFlags struct with bound flag variables.
func SetupInspectFlags() (*flag.FlagSet, *InspectFlags) {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	flags := &InspectFlags{}

	fs.StringVar(&flags.Project, "p", "", "project metadata artifact (api_project.json)")
	fs.StringVar(&flags.Project, "project", "", "project metadata artifact (api_project.json)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format (text, json, or yaml)")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: apidoc2oas inspect [flags] <api_data.json|->\n\n")
		cliutil.Writef(fs.Output(), "Summarize apidoc documentation artifacts without generating a document.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  apidoc2oas inspect doc/api_data.json\n")
		cliutil.Writef(fs.Output(), "  apidoc2oas inspect -p doc/api_project.json doc/api_data.json\n")
		cliutil.Writef(fs.Output(), "  apidoc2oas inspect --format json doc/api_data.json\n")
		cliutil.Writef(fs.Output(), "  cat doc/api_data.json | apidoc2oas inspect -\n")
	}

	return fs, flags
}

// inspectSummary is the structured output of the inspect command.
type inspectSummary struct {
	ProjectTitle    string         `json:"project_title,omitempty" yaml:"project_title,omitempty"`
	ProjectVersion  string         `json:"project_version,omitempty" yaml:"project_version,omitempty"`
	EndpointCount   int            `json:"endpoint_count" yaml:"endpoint_count"`
	DeprecatedCount int            `json:"deprecated_count" yaml:"deprecated_count"`
	Groups          map[string]int `json:"groups,omitempty" yaml:"groups,omitempty"`
	Methods         map[string]int `json:"methods,omitempty" yaml:"methods,omitempty"`
	Problems        []string       `json:"problems,omitempty" yaml:"problems,omitempty"`
}

// HandleInspect executes the inspect command
func HandleInspect(args []string) error {
	fs, flags := SetupInspectFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("inspect command requires exactly one file path or '-' for stdin")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	dataPath := fs.Arg(0)

	p := apidoc.NewParser()
	endpoints, err := readEndpoints(p, dataPath)
	if err != nil {
		return err
	}

	summary := inspectSummary{
		EndpointCount: len(endpoints),
		Groups:        make(map[string]int),
		Methods:       make(map[string]int),
	}

	var project apidoc.Project
	if flags.Project != "" {
		proj, err := p.ParseProject(flags.Project)
		if err != nil {
			return fmt.Errorf("parsing project metadata: %w", err)
		}
		project = *proj
		summary.ProjectTitle = project.Title
		summary.ProjectVersion = project.Version
	}

	for _, ep := range endpoints {
		summary.Groups[ep.Group]++
		summary.Methods[ep.Type]++
		if ep.Deprecated != nil {
			summary.DeprecatedCount++
		}
	}

	// A dry-run generation surfaces the structural problems the records
	// carry without writing a document anywhere.
	g := generator.New()
	g.IncludeInfo = false
	startTime := time.Now()
	result, err := g.Generate(endpoints, project)
	totalTime := time.Since(startTime)
	if err != nil {
		return fmt.Errorf("inspecting records: %w", err)
	}
	for _, issue := range result.Issues {
		summary.Problems = append(summary.Problems, issue.String())
	}

	if flags.Format != FormatText {
		return OutputStructured(summary, flags.Format)
	}

	fmt.Printf("Documentation Artifact Inspector\n")
	fmt.Printf("================================\n\n")
	fmt.Printf("apidoc2oas version: %s\n", apidoc2oas.Version())
	if dataPath == StdinFilePath {
		fmt.Printf("Records: <stdin>\n")
	} else {
		fmt.Printf("Records: %s\n", dataPath)
	}
	if summary.ProjectTitle != "" {
		fmt.Printf("Project: %s (%s)\n", summary.ProjectTitle, summary.ProjectVersion)
	}
	fmt.Printf("Endpoints: %d\n", summary.EndpointCount)
	fmt.Printf("Deprecated: %d\n", summary.DeprecatedCount)
	fmt.Printf("Total Time: %v\n\n", totalTime)

	printCounts("Groups", summary.Groups)
	printCounts("Methods", summary.Methods)

	if len(summary.Problems) > 0 {
		fmt.Printf("Problems (%d):\n", len(summary.Problems))
		for _, problem := range summary.Problems {
			fmt.Printf("  %s\n", problem)
		}
		fmt.Println()
		fmt.Printf("✗ Records carry %d problem(s)\n", len(summary.Problems))
		return nil
	}

	fmt.Printf("✓ Records look structurally sound\n")
	return nil
}

// printCounts prints a count map sorted by count descending, ties broken
// alphabetically.
func printCounts(title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	fmt.Printf("%s (%d):\n", title, len(names))
	for _, name := range names {
		fmt.Printf("  %-20s %d\n", name, counts[name])
	}
	fmt.Println()
}
