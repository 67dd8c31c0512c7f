package config

import (
	"fmt"
	"path"
	"time"

	"github.com/google/shlex"
	"gopkg.in/yaml.v3"
)

// ConfFile is the name of the box configuration file at the repository root.
const ConfFile = ".devbox.conf"

// DefaultHookTimeout bounds a single pre-commit check when the configuration
// does not set hook_timeout.
const DefaultHookTimeout = 2 * time.Minute

// Command is one executable command template in argv form. In the
// configuration file it may be written either as a list of arguments or as a
// single string, which is split with shell lexing rules at load time.
type Command []string

// UnmarshalYAML decodes a command from either form.
func (c *Command) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidShape, err)
		}
		parts, err := shlex.Split(s)
		if err != nil {
			return fmt.Errorf("%w: cannot split command %q: %v", ErrInvalidShape, s, err)
		}
		*c = parts
		return nil
	case yaml.SequenceNode:
		var parts []string
		if err := node.Decode(&parts); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidShape, err)
		}
		*c = parts
		return nil
	default:
		return fmt.Errorf("%w: command must be a string or a list of arguments", ErrInvalidShape)
	}
}

// PatternHooks pairs a glob pattern with the commands to run on files
// matching it.
type PatternHooks struct {
	Pattern  string
	Commands []Command
}

// HookConfig is the hook-relevant projection of a Config, consumed by the
// pre-commit engine.
type HookConfig struct {
	// All lists commands run unconditionally on every pre-commit attempt.
	All []Command

	// Modified lists pattern/commands pairs in configured order.
	Modified []PatternHooks

	// Timeout bounds each individual check invocation.
	Timeout time.Duration
}

// Env describes the virtualenv settings of a box.
type Env struct {
	Path string   `yaml:"path"`
	Args []string `yaml:"args,omitempty"`
}

// Config is the parsed representation of a .devbox.conf file.
type Config struct {
	// Dependencies lists repositories unboxed alongside this one.
	Dependencies []string

	// PreSetup lists commands run before environment setup.
	PreSetup []Command

	// PostSetup lists commands run after environment setup.
	PostSetup []Command

	// HooksAll lists pre-commit commands run unconditionally.
	HooksAll []Command

	// HooksModified maps glob patterns to pre-commit commands, in
	// configured order.
	HooksModified []PatternHooks

	// Env holds the virtualenv settings, if any.
	Env *Env

	// Parent names a peer repository whose virtualenv should be shared.
	Parent string

	// Autoenv indicates whether an autoenv file should be generated.
	Autoenv bool

	// HookTimeout bounds each pre-commit check. Zero means DefaultHookTimeout.
	HookTimeout time.Duration
}

// Hooks projects the hook-relevant subset of the configuration.
func (c *Config) Hooks() HookConfig {
	timeout := c.HookTimeout
	if timeout == 0 {
		timeout = DefaultHookTimeout
	}
	return HookConfig{
		All:      c.HooksAll,
		Modified: c.HooksModified,
		Timeout:  timeout,
	}
}

// UnmarshalYAML decodes the configuration, preserving hooks_modified order
// and rejecting unknown keys.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: configuration must be a mapping", ErrInvalidShape)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		value := node.Content[i+1]

		var err error
		switch key.Value {
		case "dependencies":
			err = value.Decode(&c.Dependencies)
		case "pre_setup":
			c.PreSetup, err = decodeCommands(value)
		case "post_setup":
			c.PostSetup, err = decodeCommands(value)
		case "hooks_all":
			c.HooksAll, err = decodeCommands(value)
		case "hooks_modified":
			c.HooksModified, err = decodePatternHooks(value)
		case "env":
			err = value.Decode(&c.Env)
		case "parent":
			err = value.Decode(&c.Parent)
		case "autoenv":
			err = value.Decode(&c.Autoenv)
		case "hook_timeout":
			c.HookTimeout, err = decodeDuration(value)
		default:
			return fmt.Errorf("%w: %q", ErrUnknownKey, key.Value)
		}
		if err != nil {
			return fmt.Errorf("%w: key %q: %w", ErrInvalidShape, key.Value, err)
		}
	}

	return nil
}

// decodeCommands decodes a command list value. A single command written as a
// bare string is accepted as shorthand for a one-element list.
func decodeCommands(node *yaml.Node) ([]Command, error) {
	if node.Kind == yaml.ScalarNode {
		var cmd Command
		if err := node.Decode(&cmd); err != nil {
			return nil, err
		}
		return []Command{cmd}, nil
	}

	var commands []Command
	if err := node.Decode(&commands); err != nil {
		return nil, err
	}
	return commands, nil
}

// decodePatternHooks decodes the hooks_modified mapping, keeping the
// patterns in file order and validating their glob syntax.
func decodePatternHooks(node *yaml.Node) ([]PatternHooks, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: hooks_modified must be a mapping of pattern to commands", ErrInvalidShape)
	}

	var hooks []PatternHooks
	for i := 0; i+1 < len(node.Content); i += 2 {
		pattern := node.Content[i].Value

		if _, err := path.Match(pattern, "x"); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadPattern, pattern)
		}

		commands, err := decodeCommands(node.Content[i+1])
		if err != nil {
			return nil, err
		}

		hooks = append(hooks, PatternHooks{Pattern: pattern, Commands: commands})
	}
	return hooks, nil
}

// decodeDuration decodes a duration value such as "2m" or "90s".
func decodeDuration(node *yaml.Node) (time.Duration, error) {
	var s string
	if err := node.Decode(&s); err != nil {
		return 0, err
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	return d, nil
}

// MarshalYAML encodes the configuration, keeping hooks_modified order.
func (c *Config) MarshalYAML() (interface{}, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}

	appendKV := func(key string, value interface{}) error {
		valNode := &yaml.Node{}
		if err := valNode.Encode(value); err != nil {
			return err
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key}, valNode)
		return nil
	}

	if len(c.Dependencies) > 0 {
		if err := appendKV("dependencies", c.Dependencies); err != nil {
			return nil, err
		}
	}
	if len(c.PreSetup) > 0 {
		if err := appendKV("pre_setup", c.PreSetup); err != nil {
			return nil, err
		}
	}
	if len(c.PostSetup) > 0 {
		if err := appendKV("post_setup", c.PostSetup); err != nil {
			return nil, err
		}
	}
	if len(c.HooksAll) > 0 {
		if err := appendKV("hooks_all", c.HooksAll); err != nil {
			return nil, err
		}
	}
	if len(c.HooksModified) > 0 {
		modified := &yaml.Node{Kind: yaml.MappingNode}
		for _, ph := range c.HooksModified {
			cmdNode := &yaml.Node{}
			if err := cmdNode.Encode(ph.Commands); err != nil {
				return nil, err
			}
			modified.Content = append(modified.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: ph.Pattern}, cmdNode)
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: "hooks_modified"}, modified)
	}
	if c.Env != nil {
		if err := appendKV("env", c.Env); err != nil {
			return nil, err
		}
	}
	if c.Parent != "" {
		if err := appendKV("parent", c.Parent); err != nil {
			return nil, err
		}
	}
	if c.Autoenv {
		if err := appendKV("autoenv", c.Autoenv); err != nil {
			return nil, err
		}
	}
	if c.HookTimeout != 0 {
		if err := appendKV("hook_timeout", c.HookTimeout.String()); err != nil {
			return nil, err
		}
	}

	return root, nil
}
