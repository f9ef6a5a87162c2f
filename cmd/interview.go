package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/careerfit/internal/pipeline"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Score interview answers for clarity, technical depth and communication",
	Run: func(cmd *cobra.Command, _ []string) {
		r := newRuntime()

		// The role only matters when a resume is scored alongside the answers.
		role := r.role(cmd, flagString(cmd, "resume") != "")
		s := r.session(cmd, role)

		if flag := cmd.Flag("match"); flag != nil && flag.Changed {
			match, err := cmd.Flags().GetInt("match")
			if err != nil || match < 0 || match > 100 {
				r.logger.Fatal("match percentage must be between 0 and 100", zap.String("match", flag.Value.String()))
			}
			s.MatchOverride = &match
		}

		r.execute(s, questionCount(cmd, r.config), pipeline.StageMatch, pipeline.StageInterview)
	},
}

func init() {
	rootCmd.AddCommand(interviewCmd)

	interviewCmd.Flags().String("answers", "", "interview answers file (yaml, json or blank-line separated text)")
	interviewCmd.Flags().String("resume", "", "optional resume text file; its match score feeds the answer scores")
	interviewCmd.Flags().String("role", "", "target role name, used with --resume")
	interviewCmd.Flags().Int("match", 0, "resume match percentage to reward answers with when no resume is given")
	interviewCmd.Flags().Int("questions", 0, "number of practice interview questions to generate from the resume")

	interviewCmd.MarkFlagRequired("answers")
}
