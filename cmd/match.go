package cmd

import (
	"github.com/spf13/cobra"

	"github.com/spigell/careerfit/internal/pipeline"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score how well a resume matches a target role",
	Run: func(cmd *cobra.Command, _ []string) {
		r := newRuntime()
		s := r.session(cmd, r.role(cmd, true))
		r.execute(s, questionCount(cmd, r.config), pipeline.StageMatch, pipeline.StageCoach)
	},
}

var atsCmd = &cobra.Command{
	Use:   "ats",
	Short: "Estimate how well a resume passes applicant tracking systems",
	Run: func(cmd *cobra.Command, _ []string) {
		r := newRuntime()
		s := r.session(cmd, r.role(cmd, true))
		r.execute(s, 0, pipeline.StageATS)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(atsCmd)

	matchCmd.Flags().String("resume", "", "resume text file")
	matchCmd.Flags().String("role", "", "target role name (see the roles command)")
	matchCmd.Flags().Int("questions", 0, "number of practice interview questions to generate")
	matchCmd.MarkFlagRequired("resume")

	atsCmd.Flags().String("resume", "", "resume text file")
	atsCmd.Flags().String("role", "", "target role name (see the roles command)")
	atsCmd.MarkFlagRequired("resume")
}
