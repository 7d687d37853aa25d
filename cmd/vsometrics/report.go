package main

import (
	"context"

	"github.com/m-zajac/vsometrics/internal/report"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Runs once and writes ProjectBuilds.csv and MemberCommits.csv",
	RunE: func(cmd *cobra.Command, args []string) error {
		l := newLogger(cmd)

		d, err := setup(cmd, l)
		if err != nil {
			l.Error(err)
			return err
		}
		defer d.close()

		outDir := d.conf.OutputDir
		if cmd.Flags().Changed("out") {
			outDir, _ = cmd.Flags().GetString("out")
		}

		l.Info("Connecting to VSO")
		reports, err := d.service.Reports(context.Background())
		if err != nil {
			l.Error(err)
			return err
		}

		paths, err := report.WriteFiles(outDir, reports)
		if err != nil {
			l.Error(err)
			return err
		}
		for _, p := range paths {
			l.Infof("Written %s", p)
		}

		summaries, err := report.Summarize(reports.Commits)
		if err != nil {
			l.Error(err)
			return err
		}
		for _, s := range summaries {
			l.WithFields(logrus.Fields{
				"members": s.Members,
				"commits": s.TotalCommits,
				"mean":    s.MeanCommits,
				"median":  s.MedianCommits,
			}).Infof("Project %s", s.Project)
		}

		if n, err := d.collector.RequestCount(); err == nil {
			l.Infof("Made %.0f api requests", n)
		}

		return nil
	},
}

func init() {
	reportCmd.Flags().StringP("out", "o", "", "Output directory, overrides OUTPUT_DIR")
}
