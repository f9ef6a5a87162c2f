package cmd

import (
	"github.com/spf13/cobra"
)

const defaultQuestions = 5

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run every scorer over a resume and, optionally, interview answers",
	Run: func(cmd *cobra.Command, _ []string) {
		r := newRuntime()
		s := r.session(cmd, r.role(cmd, true))
		r.execute(s, questionCount(cmd, r.config))
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().String("resume", "", "resume text file")
	analyzeCmd.Flags().String("answers", "", "interview answers file (yaml, json or blank-line separated text)")
	analyzeCmd.Flags().String("role", "", "target role name (see the roles command)")
	analyzeCmd.Flags().Int("questions", defaultQuestions, "number of practice interview questions to generate")

	analyzeCmd.MarkFlagRequired("resume")
}

// questionCount prefers an explicit --questions flag over the config value.
func questionCount(cmd *cobra.Command, config *Config) int {
	flag := cmd.Flag("questions")
	if flag == nil {
		return 0
	}
	if !flag.Changed && config.Questions > 0 {
		return config.Questions
	}
	n, err := cmd.Flags().GetInt("questions")
	if err != nil {
		return 0
	}
	return n
}
