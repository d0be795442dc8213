package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/heatgrid/pkg/observability"
)

func TestRootCommand(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()

	if root.Use != appName {
		t.Errorf("Use = %q, want %q", root.Use, appName)
	}
	for _, name := range []string{"render", "gradients", "cache", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestGradientsCommand(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"gradients"})
	if err := root.Execute(); err != nil {
		t.Fatalf("gradients: %v", err)
	}
	for _, want := range []string{"Name", "basic", "default"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("gradients output missing %q", want)
		}
	}
}

func TestCompletionCommand(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"completion", "bash"})
	if err := root.Execute(); err != nil {
		t.Fatalf("completion: %v", err)
	}
	if !strings.Contains(out.String(), appName) {
		t.Error("bash completion does not mention the command name")
	}
}

func TestSetLogLevelRoutesHooks(t *testing.T) {
	observability.Reset()
	t.Cleanup(observability.Reset)

	c := New(&bytes.Buffer{}, LogInfo)
	c.SetLogLevel(LogInfo)
	if _, ok := observability.Pipeline().(*observability.LogHooks); ok {
		t.Error("info level should keep the no-op hooks")
	}

	c.SetLogLevel(LogDebug)
	if c.Logger.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, want debug", c.Logger.GetLevel())
	}
	if _, ok := observability.Pipeline().(*observability.LogHooks); !ok {
		t.Errorf("Pipeline() = %T, want *LogHooks", observability.Pipeline())
	}
	if _, ok := observability.Cache().(*observability.LogHooks); !ok {
		t.Errorf("Cache() = %T, want *LogHooks", observability.Cache())
	}
}

func TestVerboseFlag(t *testing.T) {
	observability.Reset()
	t.Cleanup(observability.Reset)

	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"gradients", "-v"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if c.Logger.GetLevel() != LogDebug {
		t.Errorf("level = %v, want debug", c.Logger.GetLevel())
	}
	if _, ok := observability.Cache().(*observability.LogHooks); !ok {
		t.Error("-v should install log hooks")
	}
}
