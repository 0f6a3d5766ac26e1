package config

import (
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Global flags.
var Verbose = GBool("verbose", "V", false, "Enable verbose logging")
var Dumb = GBool("dumb", "D", IsTermDumb(), "Disable colored output")
var HostsPath = GString("file", "f", DefaultHostsPath(), "Path of the hosts file to modify")
var PolicyPath = GString("config", "c", DefaultPolicyPath(), "Path of the policy configuration")

// DefaultHostsPath returns the platform's standard hosts file location.
func DefaultHostsPath() string {
	if runtime.GOOS == "windows" {
		return os.ExpandEnv("${SystemRoot}\\System32\\drivers\\etc\\hosts")
	}
	return "/etc/hosts"
}

func DefaultPolicyPath() string {
	if runtime.GOOS == "windows" {
		return os.ExpandEnv("${ProgramData}\\hostsmith\\hostsmith.yaml")
	}
	return "/etc/hostsmith.yaml"
}

// Global from either environment or command line.
var RootCommand = &cobra.Command{
	Use:   "hostsmith",
	Short: "hostsmith safely modifies the system hosts file on behalf of unprivileged users.",
}

func getenv(name string) (string, bool) {
	name = strings.ToUpper(name)
	name = strings.ReplaceAll(name, "-", "_")
	return os.LookupEnv("HOSTSMITH_" + name)
}
func GString(name, shorthand string, value string, usage string) *string {
	flags := RootCommand.PersistentFlags()
	if env, ok := getenv(name); ok {
		value = env
	}
	flags.StringVarP(&value, name, shorthand, value, usage)
	return &value
}
func GBool(name, shorthand string, value bool, usage string) *bool {
	flags := RootCommand.PersistentFlags()
	if env, ok := getenv(name); ok {
		if v, e := strconv.ParseBool(env); e == nil {
			value = v
		}
	}
	flags.BoolVarP(&value, name, shorthand, value, usage)
	return &value
}

// Utils.
func IsTermDumb() bool {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return true
	}
	if os.Getenv("TERM") == "dumb" {
		return true
	}

	isTrue := map[string]bool{
		"1": true, "t": true, "y": true,
		"true": true, "yes": true, "on": true,
		"0": false, "f": false, "n": false,
		"false": false, "no": false, "off": false,
	}
	envs := []string{"HOSTSMITH_NON_INTERACTIVE", "CI", "DEBIAN_FRONTEND", "NON_INTERACTIVE"}
	for _, env := range envs {
		if v, ok := os.LookupEnv(env); ok {
			if b, ok := isTrue[strings.ToLower(v)]; ok {
				return b
			}
		}
	}
	return false
}
