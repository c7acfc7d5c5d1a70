package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"skill-manager/internal/app"
	"skill-manager/internal/config"
	"skill-manager/internal/pkg/logger"
	"skill-manager/internal/snapshot"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Version is set at build time.
var Version = "0.1.0"

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	// LoadConfig defaults to config.LoadFile.
	LoadConfig func(path string) (config.Config, error)
	// Open builds the stores for one command. It defaults to a container
	// with the command checkpoint policy.
	Open func(ctx context.Context, cfg config.Config, logger *zap.Logger) (*app.Container, error)
}

func (o *Options) defaults() {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.LoadConfig == nil {
		o.LoadConfig = config.LoadFile
	}
	if o.Open == nil {
		o.Open = func(ctx context.Context, cfg config.Config, logger *zap.Logger) (*app.Container, error) {
			return app.NewContainer(ctx, cfg, logger, snapshot.PolicyCommand)
		}
	}
}

// session is the state of one invocation. Stores are opened on first use
// and saved once after the command succeeded.
type session struct {
	opts       Options
	configPath string
	output     string

	cfg       config.Config
	logger    *zap.Logger
	container *app.Container
}

func (s *session) setup() error {
	switch s.output {
	case outputJSON, outputYAML:
	default:
		return fmt.Errorf("unknown output format %q", s.output)
	}

	cfg, err := s.opts.LoadConfig(s.configPath)
	if err != nil {
		return err
	}
	lg, err := logger.NewCLI(cfg.Log.Level)
	if err != nil {
		return err
	}
	s.cfg = cfg
	s.logger = lg
	return nil
}

func (s *session) stores(ctx context.Context) (*app.Container, error) {
	if s.container != nil {
		return s.container, nil
	}
	c, err := s.opts.Open(ctx, s.cfg, s.logger)
	if err != nil {
		return nil, err
	}
	s.container = c
	return c, nil
}

func (s *session) flush(ctx context.Context) error {
	if s.container == nil {
		return nil
	}
	return s.container.Flush(ctx)
}

func (s *session) close() error {
	if s.logger != nil {
		_ = s.logger.Sync()
	}
	if s.container == nil {
		return nil
	}
	err := s.container.Close()
	s.container = nil
	return err
}

func (s *session) print(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if s.output == outputYAML {
		b, err = jsonToYAML(b)
		if err != nil {
			return err
		}
		_, err = s.opts.Stdout.Write(b)
		return err
	}
	_, err = s.opts.Stdout.Write(pretty.Pretty(b))
	return err
}

// jsonToYAML re-renders a JSON document as block YAML, keeping key order
// and the JSON field names.
func jsonToYAML(b []byte) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(b, &node); err != nil {
		return nil, err
	}
	blockStyle(&node)
	return yaml.Marshal(&node)
}

func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

func newRootCommand(s *session) *cobra.Command {
	root := &cobra.Command{
		Use:   "skillctl",
		Short: "Manage skills, projects and employees",
		Long: `skillctl keeps a small skill inventory: skills, projects and the
employees who worked on them.

Examples:
  skillctl skill add Go
  skillctl project add -l Apollo -d "moon landing"
  skillctl employee add -f Ada -l Lovelace
  skillctl employee assign-skill -e <employee-id> -s <skill-id> -l 4`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return s.flush(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&s.configPath, "config", "", "Path to a YAML config file")
	root.PersistentFlags().StringVarP(&s.output, "output", "o", outputJSON, "Output format: json or yaml")

	root.AddCommand(
		newSkillCommand(s),
		newProjectCommand(s),
		newEmployeeCommand(s),
		newSeedCommand(s),
		newTokenCommand(s),
	)
	return root
}

// Execute runs one command line and returns the process exit code.
func Execute(ctx context.Context, args []string, opts Options) int {
	opts.defaults()
	s := &session{opts: opts, output: outputJSON}

	root := newRootCommand(s)
	root.SetArgs(args)
	root.SetOut(opts.Stdout)
	root.SetErr(opts.Stderr)

	err := root.ExecuteContext(ctx)
	if cerr := s.close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(opts.Stderr, "Error: %s\n", oneLine(err))
		return 1
	}
	return 0
}

func oneLine(err error) string {
	return strings.Join(strings.Fields(err.Error()), " ")
}
