package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/reoring/maxslog"
	"github.com/reoring/maxslog/config"
	"github.com/reoring/maxslog/document"
	"github.com/reoring/maxslog/routine"
)

type emitOptions struct {
	config   string
	target   string
	routine  string
	comp     int
	severity string
	message  string
}

func newEmitCmd() *cobra.Command {
	o := &emitOptions{}
	cmd := &cobra.Command{
		Use:   "emit",
		Short: "Append one notification to a log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := o.run()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d notifications\n", n)
			return nil
		},
	}
	cmd.Flags().StringVar(&o.config, "config", "", "YAML or TOML configuration file")
	cmd.Flags().StringVar(&o.target, "target", "", "log file (overrides the configured target)")
	cmd.Flags().StringVar(&o.routine, "routine", "", "routine id, e.g. iso6336_2019")
	cmd.Flags().IntVar(&o.comp, "comp", 0, "component id")
	cmd.Flags().StringVar(&o.severity, "severity", "INFO", "notification severity")
	cmd.Flags().StringVar(&o.message, "message", "", "notification text")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}

func (o *emitOptions) run() (int, error) {
	cfg := &config.Config{}
	if o.config != "" {
		var err error
		if cfg, err = config.Load(o.config); err != nil {
			return 0, err
		}
	}
	if o.target != "" {
		cfg.Target = o.target
	}
	if cfg.Target == "" {
		return 0, errors.New("no target: pass --target or set target in the configuration")
	}
	if err := cfg.Validate(); err != nil {
		return 0, err
	}

	sev, err := maxslog.ParseSeverity(o.severity)
	if err != nil {
		return 0, err
	}
	var r maxslog.Routine
	if o.routine != "" {
		reg := routine.NewRegistry()
		std := routine.Standard(o.routine)
		if !reg.Has(o.routine) {
			if std, err = reg.Register(o.routine); err != nil {
				return 0, err
			}
		}
		r = std
	}

	log := maxslog.New(cfg.Options()...)
	doc, err := document.ReadFile(cfg.Target)
	switch {
	case err == nil:
		if err := log.Load(doc); err != nil {
			return 0, err
		}
	case !errors.Is(err, fs.ErrNotExist):
		return 0, err
	}
	if cfg.AppID != "" || cfg.AppVersion != "" {
		log.SetAppInfo(cfg.AppID, cfg.AppVersion)
	}

	if err := cfg.Apply(log); err != nil {
		return 0, err
	}
	defer log.Close()
	log.Log(r, o.comp, o.message, sev)
	return log.Len(), nil
}
