package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// supportedShells lists shells in the order shown to users.
var supportedShells = []Shell{ShellBash, ShellZsh, ShellFish}

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name      string
	Desc      string
	Flags     []flagDef
	TakesDirs bool // accepts a directory argument
	Args      []string
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	FileGlob string // file glob pattern
	IsDir    bool   // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"config":     {FileGlob: "*.yaml,*.yml"},
	"style":      {FileGlob: "*.css"},
	"template":   {FileGlob: "*.html"},
	"output":     {IsDir: true},
	"static":     {IsDir: true},
	"asset-path": {IsDir: true},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}
		if f.Value.Type() == "bool" {
			fd.Type = flagBool
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case meta.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSet - single source of truth.
func getCommands() []commandDef {
	shells := make([]string, len(supportedShells))
	for i, s := range supportedShells {
		shells[i] = string(s)
	}

	return []commandDef{
		{
			Name:      "build",
			Desc:      "Convert a content directory into a static site",
			Flags:     extractFlagsFromFlagSet(newBuildFlagSet(&buildFlags{})),
			TakesDirs: true,
		},
		{
			Name:      "serve",
			Desc:      "Preview the generated site over HTTP",
			Flags:     extractFlagsFromFlagSet(newServeFlagSet(&serveFlags{})),
			TakesDirs: true,
		},
		{
			Name:      "lint",
			Desc:      "Report unsupported markdown",
			Flags:     extractFlagsFromFlagSet(newLintFlagSet(&lintFlags{})),
			TakesDirs: true,
		},
		{
			Name:  "config",
			Desc:  "Print the effective configuration",
			Flags: extractFlagsFromFlagSet(newConfigFlagSet(&commonFlags{})),
		},
		{
			Name: "completion",
			Desc: "Generate shell completion script",
			Args: shells,
		},
		{
			Name: "version",
			Desc: "Show version information",
		},
		{
			Name: "help",
			Desc: "Show help for a command",
			Args: []string{"build", "serve", "lint", "config", "completion", "version"},
		},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var script string
	switch shell {
	case ShellBash:
		script = generateBash(getCommands())
	case ShellZsh:
		script = generateZsh(getCommands())
	case ShellFish:
		script = generateFish(getCommands())
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
	_, err := io.WriteString(w, script)
	return err
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(mdsite completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(mdsite completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    mdsite completion fish > ~/.config/fish/completions/mdsite.fish")
}

func commandNames(cmds []commandDef) string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return strings.Join(names, " ")
}

// flagWords returns every spelling of the command's flags.
func flagWords(c commandDef) string {
	var words []string
	for _, f := range c.Flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return strings.Join(words, " ")
}

// flagPattern returns a bash case pattern matching the flag's spellings.
func flagPattern(f flagDef) string {
	if f.Short != "" {
		return "--" + f.Long + "|-" + f.Short
	}
	return "--" + f.Long
}

func generateBash(cmds []commandDef) string {
	var b strings.Builder

	b.WriteString("# bash completion for mdsite\n")
	b.WriteString("_mdsite_completions() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", commandNames(cmds))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	// Flag values, deduplicated across commands.
	seen := map[string]bool{}
	b.WriteString("    case \"${prev}\" in\n")
	for _, c := range cmds {
		for _, f := range c.Flags {
			if seen[f.Long] || (f.Type != flagDir && f.Type != flagFile) {
				continue
			}
			seen[f.Long] = true
			action := "compgen -d"
			if f.Type == flagFile {
				action = "compgen -f"
			}
			fmt.Fprintf(&b, "        %s)\n            COMPREPLY=( $(%s -- \"${cur}\") )\n            return\n            ;;\n", flagPattern(f), action)
		}
	}
	b.WriteString("    esac\n\n")

	b.WriteString("    case \"${cmd}\" in\n")
	for _, c := range cmds {
		switch {
		case len(c.Flags) > 0:
			fmt.Fprintf(&b, "        %s)\n", c.Name)
			b.WriteString("            if [[ \"${cur}\" == -* ]]; then\n")
			fmt.Fprintf(&b, "                COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", flagWords(c))
			if c.TakesDirs {
				b.WriteString("            else\n")
				b.WriteString("                COMPREPLY=( $(compgen -d -- \"${cur}\") )\n")
			}
			b.WriteString("            fi\n            ;;\n")
		case len(c.Args) > 0:
			fmt.Fprintf(&b, "        %s)\n", c.Name)
			fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n            ;;\n", strings.Join(c.Args, " "))
		}
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n")
	b.WriteString("complete -F _mdsite_completions mdsite\n")

	return b.String()
}

// zshGlob turns "*.yaml,*.yml" into "*.(yaml|yml)".
func zshGlob(glob string) string {
	parts := strings.Split(glob, ",")
	if len(parts) == 1 {
		return glob
	}
	exts := make([]string, len(parts))
	for i, p := range parts {
		exts[i] = strings.TrimPrefix(p, "*.")
	}
	return "*.(" + strings.Join(exts, "|") + ")"
}

func zshFlagSpec(f flagDef) string {
	desc := strings.NewReplacer("'", "", "[", "(", "]", ")").Replace(f.Desc)

	var action string
	switch f.Type {
	case flagDir:
		action = ":dir:_directories"
	case flagFile:
		action = fmt.Sprintf(":file:_files -g \"%s\"", zshGlob(f.FileGlob))
	case flagString:
		action = ":value: "
	}

	if f.Short != "" {
		return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, desc, action)
	}
	return fmt.Sprintf("'--%s[%s]%s'", f.Long, desc, action)
}

func generateZsh(cmds []commandDef) string {
	var b strings.Builder

	b.WriteString("#compdef mdsite\n\n")
	b.WriteString("_mdsite() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, c.Desc)
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"${words[2]}\" in\n")
	for _, c := range cmds {
		switch {
		case len(c.Flags) > 0:
			fmt.Fprintf(&b, "        %s)\n", c.Name)
			b.WriteString("            _arguments")
			for _, f := range c.Flags {
				fmt.Fprintf(&b, " \\\n                %s", zshFlagSpec(f))
			}
			if c.TakesDirs {
				b.WriteString(" \\\n                '*:directory:_directories'")
			}
			b.WriteString("\n            ;;\n")
		case len(c.Args) > 0:
			fmt.Fprintf(&b, "        %s)\n", c.Name)
			fmt.Fprintf(&b, "            _values '%s' %s\n            ;;\n", c.Name, strings.Join(c.Args, " "))
		}
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("_mdsite \"$@\"\n")

	return b.String()
}

func fishQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

func generateFish(cmds []commandDef) string {
	var b strings.Builder

	b.WriteString("# fish completion for mdsite\n")
	b.WriteString("function __fish_mdsite_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_mdsite_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c mdsite -f\n")

	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c mdsite -n __fish_mdsite_needs_command -a %s -d %s\n", c.Name, fishQuote(c.Desc))
	}
	for _, c := range cmds {
		cond := fishQuote("__fish_mdsite_using_command " + c.Name)
		for _, f := range c.Flags {
			fmt.Fprintf(&b, "complete -c mdsite -n %s", cond)
			if f.Short != "" {
				fmt.Fprintf(&b, " -s %s", f.Short)
			}
			fmt.Fprintf(&b, " -l %s", f.Long)
			switch f.Type {
			case flagDir:
				b.WriteString(" -r -a '(__fish_complete_directories)'")
			case flagFile:
				b.WriteString(" -r -F")
			case flagString:
				b.WriteString(" -r")
			}
			fmt.Fprintf(&b, " -d %s\n", fishQuote(f.Desc))
		}
		if c.TakesDirs {
			fmt.Fprintf(&b, "complete -c mdsite -n %s -a '(__fish_complete_directories)'\n", cond)
		}
		if len(c.Args) > 0 {
			fmt.Fprintf(&b, "complete -c mdsite -n %s -a %s\n", cond, fishQuote(strings.Join(c.Args, " ")))
		}
	}

	return b.String()
}
