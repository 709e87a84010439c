package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/banglastudy/dataqc/internal/profile"
)

func newInitCommand() *cobra.Command {
	var (
		baseName    string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "init [profile.yaml]",
		Short: "Scaffold a profile file",
		Long: `Init writes a profile YAML file you can tune and pass to analyze --profile.

The file starts as a copy of a builtin profile (production by default).
Use --interactive to run a guided form that collects the profile name, the
builtin to start from, and the overall score floor.

If no path is given, dataqc-profile.yaml is written to the current directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "dataqc-profile.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			return initCommandE(cmd, path, baseName, interactive)
		},
	}

	cmd.Flags().StringVar(&baseName, "base", profile.DefaultName, "Builtin profile to start from")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Run the guided profile form")

	return cmd
}

func initCommandE(cmd *cobra.Command, path, baseName string, interactive bool) error {
	p, err := profile.Builtin(baseName)
	if err != nil {
		return err
	}

	if interactive {
		p, err = runProfileForm(cmd.InOrStdin(), cmd.OutOrStdout(), p)
		if err != nil {
			return err
		}
	}

	if err := p.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Profile written to %s\n", path) //nolint:errcheck
	return nil
}

// runProfileForm collects profile settings through an interactive huh form,
// starting from the given base profile.
func runProfileForm(in io.Reader, out io.Writer, base *profile.Profile) (*profile.Profile, error) {
	var (
		name       = base.Name + "-custom"
		baseName   = base.Name
		minOverall = fmt.Sprintf("%.2f", base.MinOverall)
		seed       = "0"
	)

	baseOptions := make([]huh.Option[string], 0, len(profile.Names()))
	for _, n := range profile.Names() {
		baseOptions = append(baseOptions, huh.NewOption(n, n))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Profile name").
				Description("Identifies this profile in reports").
				Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Base profile").
				Description("Builtin weights and thresholds to start from").
				Options(baseOptions...).
				Value(&baseName),
			huh.NewInput().
				Title("Minimum overall score").
				Description("Records scoring below this get a warning issue (0 disables)").
				Value(&minOverall).
				Validate(validateUnitFloat),
			huh.NewInput().
				Title("Uniqueness jitter seed").
				Description("0 keeps scoring fully deterministic").
				Value(&seed).
				Validate(func(s string) error {
					_, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
					return err
				}),
		),
	).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("profile form failed: %w", err)
	}

	p, err := profile.Builtin(baseName)
	if err != nil {
		return nil, err
	}
	p.Name = strings.TrimSpace(name)
	p.MinOverall, _ = strconv.ParseFloat(strings.TrimSpace(minOverall), 64)
	p.Seed, _ = strconv.ParseInt(strings.TrimSpace(seed), 10, 64)
	return p, nil
}

func validateUnitFloat(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("not a number")
	}
	if v < 0 || v > 1 {
		return fmt.Errorf("must be between 0 and 1")
	}
	return nil
}
