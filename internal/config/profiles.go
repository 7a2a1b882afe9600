package config

import (
	"fmt"
	"strings"

	ini "github.com/go-ini/ini"

	engineconfig "bangfe/pkg/config"
)

// ProfileSpec is one selectable input setup. A profile either points at an
// engine config file or names the method and layout directly.
type ProfileSpec struct {
	Name       string
	Method     string
	Layout     string
	Overrides  string
	ConfigFile string
}

// Build turns the profile into an engine config. Non-empty databaseDir and
// userDir replace what a config file says.
func (p ProfileSpec) Build(databaseDir, userDir string) (engineconfig.Config, error) {
	b := engineconfig.NewBuilder()
	if p.ConfigFile != "" {
		loaded, err := engineconfig.Load(p.ConfigFile)
		if err != nil {
			return engineconfig.Config{}, fmt.Errorf("profile %s: %w", p.Name, err)
		}
		b = loaded
	}
	switch p.Method {
	case "phonetic":
		b.SetPhoneticSuggestion(true)
	case "fixed":
		b.SetFixedSuggestion(true)
	}
	if p.Layout != "" {
		b.SetLayoutFile(p.Layout)
	}
	if p.Overrides != "" {
		b.SetLayoutOverrides(p.Overrides)
	}
	if databaseDir != "" {
		b.SetDatabaseDir(databaseDir)
	}
	if userDir != "" {
		b.SetUserDir(userDir)
	}
	cfg, err := b.Build()
	if err != nil {
		return engineconfig.Config{}, fmt.Errorf("profile %s: %w", p.Name, err)
	}
	return cfg, nil
}

type ProfilesConfig struct {
	Profiles []ProfileSpec
}

func DefaultProfilesConfig() ProfilesConfig {
	return ProfilesConfig{Profiles: []ProfileSpec{
		{Name: "phonetic", Method: "phonetic", Layout: engineconfig.DefaultPhoneticLayout},
		{Name: "probhat", Method: "fixed", Layout: "probhat"},
	}}
}

// Index finds a profile by name, ignoring case. It returns -1 when absent.
func (c ProfilesConfig) Index(name string) int {
	for i, p := range c.Profiles {
		if strings.EqualFold(p.Name, name) {
			return i
		}
	}
	return -1
}

// Next is the profile after i, wrapping around.
func (c ProfilesConfig) Next(i int) int {
	if len(c.Profiles) == 0 {
		return 0
	}
	return (i + 1) % len(c.Profiles)
}

func ResolveProfilesConfig(cliPath string) (ProfilesConfig, error) {
	if cliPath != "" {
		return LoadProfilesConfig(cliPath)
	}
	path, ok := inWorkingDir("profiles.ini")
	if !ok {
		return DefaultProfilesConfig(), nil
	}
	return LoadProfilesConfig(path)
}

func LoadProfilesConfig(path string) (ProfilesConfig, error) {
	file, err := ini.Load(path)
	if err != nil {
		return ProfilesConfig{}, ConfigError{msg: fmt.Sprintf("failed to load profiles config: %v", err)}
	}

	var order, defined []string
	specs := make(map[string]*ProfileSpec)
	for _, section := range file.Sections() {
		name := section.Name()
		switch {
		case strings.EqualFold(name, "profiles"):
			order = section.Key("order").Strings(",")
			continue
		case !strings.HasPrefix(strings.ToLower(name), "profile "):
			continue
		}
		spec := &ProfileSpec{Name: strings.TrimSpace(name[len("profile "):])}
		for _, key := range section.Keys() {
			value := strings.TrimSpace(key.String())
			switch strings.ToLower(key.Name()) {
			case "method":
				spec.Method = strings.ToLower(value)
				if spec.Method != "phonetic" && spec.Method != "fixed" {
					return ProfilesConfig{}, ConfigError{msg: fmt.Sprintf("unknown method '%s' in profile %s", value, spec.Name)}
				}
			case "layout":
				spec.Layout = value
			case "overrides":
				spec.Overrides = value
			case "config":
				spec.ConfigFile = value
			default:
				return ProfilesConfig{}, ConfigError{msg: fmt.Sprintf("unknown key '%s' in profile %s", key.Name(), spec.Name)}
			}
		}
		if spec.Method == "" && spec.ConfigFile == "" {
			return ProfilesConfig{}, ConfigError{msg: fmt.Sprintf("profile %s needs a method or a config file", spec.Name)}
		}
		key := strings.ToLower(spec.Name)
		if _, dup := specs[key]; !dup {
			defined = append(defined, spec.Name)
		}
		specs[key] = spec
	}
	if len(order) == 0 {
		order = defined
	}

	profs := make([]ProfileSpec, 0, len(order))
	for _, name := range order {
		spec, ok := specs[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return ProfilesConfig{}, ConfigError{msg: fmt.Sprintf("profile '%s' referenced in order but not defined", name)}
		}
		profs = append(profs, *spec)
	}
	if len(profs) == 0 {
		return ProfilesConfig{}, ConfigError{msg: fmt.Sprintf("no profiles defined in %s", path)}
	}
	return ProfilesConfig{Profiles: profs}, nil
}
