// Package cli parses the command lines shared by the bangfe commands.
package cli

import (
	"fmt"
	"strings"

	"bangfe/internal/config"
	"bangfe/internal/layout"
)

type Options struct {
	ShowHelp         bool
	ListLayouts      bool
	ListProfiles     bool
	NoWatch          bool
	ConfigPath       string
	LayoutName       string
	ProfileName      string
	ProfilesPath     string
	ToggleConfigPath string
	DatabaseDir      string
	UserDir          string
	TraceLevel       string
	BusName          string
	InputPath        string
	OutputPath       string
}

func Parse(args []string) (Options, error) {
	opts := Options{TraceLevel: "Error"}
	for i := 1; i < len(args); i++ {
		arg := args[i]
		var target *string
		switch {
		case arg == "--help" || arg == "-h":
			opts.ShowHelp = true
			continue
		case arg == "--list-layouts":
			opts.ListLayouts = true
			continue
		case arg == "--list-profiles":
			opts.ListProfiles = true
			continue
		case arg == "--no-watch":
			opts.NoWatch = true
			continue
		case hasOption(arg, "--config"):
			target = &opts.ConfigPath
		case hasOption(arg, "--layout"):
			target = &opts.LayoutName
		case hasOption(arg, "--profiles"):
			target = &opts.ProfilesPath
		case hasOption(arg, "--profile"):
			target = &opts.ProfileName
		case hasOption(arg, "--toggle-config"):
			target = &opts.ToggleConfigPath
		case hasOption(arg, "--database"):
			target = &opts.DatabaseDir
		case hasOption(arg, "--user-dir"):
			target = &opts.UserDir
		case hasOption(arg, "--trace"):
			target = &opts.TraceLevel
		case hasOption(arg, "--bus-name"):
			target = &opts.BusName
		case hasOption(arg, "--input"):
			target = &opts.InputPath
		case hasOption(arg, "--output"):
			target = &opts.OutputPath
		default:
			return Options{}, fmt.Errorf("unknown option: %s", arg)
		}
		value, next, err := extractValue(arg, i, args)
		if err != nil {
			return Options{}, err
		}
		*target = value
		i = next
	}
	return opts, nil
}

func hasOption(arg, name string) bool {
	return arg == name || strings.HasPrefix(arg, name+"=")
}

func extractValue(current string, index int, args []string) (string, int, error) {
	if eq := strings.IndexRune(current, '='); eq >= 0 {
		return current[eq+1:], index, nil
	}
	if index+1 >= len(args) {
		return "", index, fmt.Errorf("option %s requires a value", current)
	}
	return args[index+1], index + 1, nil
}

// Profiles decides which profiles a frontend cycles through and which one
// it starts with. --config and --layout each give a single profile;
// otherwise the profiles file is used and --profile or the toggle default
// picks the start.
func (o Options) Profiles(defaultProfile string) (config.ProfilesConfig, int, error) {
	switch {
	case o.ConfigPath != "":
		return single(config.ProfileSpec{Name: "config", ConfigFile: o.ConfigPath})
	case o.LayoutName != "":
		method := "fixed"
		if isPhoneticLayout(o.LayoutName) {
			method = "phonetic"
		}
		return single(config.ProfileSpec{Name: o.LayoutName, Method: method, Layout: o.LayoutName})
	}
	profiles, err := config.ResolveProfilesConfig(o.ProfilesPath)
	if err != nil {
		return config.ProfilesConfig{}, 0, err
	}
	name := o.ProfileName
	if name == "" {
		name = defaultProfile
	}
	if name == "" {
		return profiles, 0, nil
	}
	index := profiles.Index(name)
	if index < 0 {
		return config.ProfilesConfig{}, 0, fmt.Errorf("unknown profile: %s", name)
	}
	return profiles, index, nil
}

func single(p config.ProfileSpec) (config.ProfilesConfig, int, error) {
	return config.ProfilesConfig{Profiles: []config.ProfileSpec{p}}, 0, nil
}

func isPhoneticLayout(name string) bool {
	switch strings.ToLower(name) {
	case "avro", "phonetic", layout.PhoneticName:
		return true
	}
	return false
}

func Usage(program string) string {
	return program + ` - Bengali input method
Usage: ` + program + ` [options]

Options:
  --config PATH           Engine config file (.ini, .toml, .yaml)
  --layout NAME           Layout name or file; avro_phonetic selects the phonetic method
  --profiles PATH         Path to profiles.ini (default: ./profiles.ini if present)
  --profile NAME          Profile to start with
  --toggle-config PATH    Path to toggle.ini (default: ./toggle.ini if present)
  --database DIR          Dictionary data directory
  --user-dir DIR          Directory for the user's autocorrect and selections
  --trace LEVEL           Trace level [Debug|Info|Error] (default: Error)
  --no-watch              Do not reload when data files change
  --bus-name NAME         D-Bus name to own (bangfe-ibus)
  --input PATH            Word list to import (bangfe-dict)
  --output PATH           SQLite dictionary to write (bangfe-dict)
  --list-layouts          List built-in layouts
  --list-profiles         List configured profiles
  -h, --help              Show this help message`
}
