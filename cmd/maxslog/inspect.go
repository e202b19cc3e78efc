package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/maxslog"
	"github.com/reoring/maxslog/query"
)

type inspectOptions struct {
	routine    string
	comp       int
	severities []string
	debug      bool
	contains   string
	attribute  string
}

func newInspectCmd() *cobra.Command {
	o := &inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print the notifications of a log file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := loadLog(args[0])
			if err != nil {
				return err
			}
			p, err := o.predicate(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if id := log.AppID(); id != "" {
				fmt.Fprintf(out, "application %s %s\n", id, log.AppVersion())
			}
			all := log.Notifications()
			var shown []maxslog.Notification
			for i, n := range all {
				if p(n) {
					printNotification(out, i, n)
					shown = append(shown, n)
				}
			}
			printSummary(out, shown, len(all))
			return nil
		},
	}

	cmd.Flags().StringVar(&o.routine, "routine", "", "only notifications of this routine id")
	cmd.Flags().IntVar(&o.comp, "comp", 0, "only notifications about this component id")
	cmd.Flags().StringSliceVar(&o.severities, "severity", nil, "only these severities (comma separated)")
	cmd.Flags().BoolVar(&o.debug, "debug", false, "only DEBUG_* notifications")
	cmd.Flags().StringVar(&o.contains, "contains", "", "only messages containing this text")
	cmd.Flags().StringVar(&o.attribute, "attribute", "", "only notifications with a data item for this attribute")
	return cmd
}

func (o *inspectOptions) predicate(cmd *cobra.Command) (maxslog.Predicate, error) {
	var ps []maxslog.Predicate
	if cmd.Flags().Changed("routine") {
		ps = append(ps, query.RoutineID(o.routine))
	}
	if cmd.Flags().Changed("comp") {
		ps = append(ps, query.Component(o.comp))
	}
	if len(o.severities) > 0 {
		p, err := query.SeverityNames(o.severities...)
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	if o.debug {
		ps = append(ps, query.Debug())
	}
	if o.contains != "" {
		ps = append(ps, query.MessageContains(o.contains))
	}
	if o.attribute != "" {
		ps = append(ps, query.Attribute(o.attribute))
	}
	return query.All(ps...), nil
}
