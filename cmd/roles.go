package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/careerfit/internal/profile"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the roles in the catalog",
	Run: func(cmd *cobra.Command, _ []string) {
		r := newRuntime()
		out := cmd.OutOrStdout()

		pick, _ := cmd.Flags().GetBool("pick")
		if !pick {
			for _, name := range r.catalog.Names() {
				fmt.Fprintln(out, name)
			}
			return
		}

		role, err := pickRole(r.catalog)
		if err != nil {
			r.logger.Fatal("picking a role", zap.Error(err))
		}
		printRole(out, r.catalog.Lookup(role))
	},
}

func init() {
	rootCmd.AddCommand(rolesCmd)

	rolesCmd.Flags().BoolP("pick", "p", false, "choose a role interactively and show its profile")
}

func printRole(w io.Writer, p profile.RoleProfile) {
	fmt.Fprintf(w, "%s\n", p.Name)
	fmt.Fprintf(w, "  required:   %s\n", strings.Join(p.RequiredSkills, ", "))
	fmt.Fprintf(w, "  preferred:  %s\n", strings.Join(p.PreferredSkills, ", "))
	fmt.Fprintf(w, "  areas:      %s\n", strings.Join(p.ExperienceAreas, ", "))
	for _, b := range p.Bands() {
		fmt.Fprintf(w, "  %-11s %d-%d years\n", b.Name+":", b.MinYears, b.MaxYears)
	}
}
