package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/showroom/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads settings from a .yaml, .yml or .toml file. Keys the file leaves out keep
// their Default values. The result is validated before it is returned.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, apperrors.NewParseError(path, "", 0, err)
	}

	settings, err := Parse(path, data)
	if err != nil {
		return Settings{}, err
	}
	if err := Validate(settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Parse decodes data in the format implied by path's extension over Default.
func Parse(path string, data []byte) (Settings, error) {
	settings := Default()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&settings); err != nil && !errors.Is(err, io.EOF) {
			return Settings{}, apperrors.NewParseError(path, "yaml", yamlLine(err), err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), &settings)
		if err != nil {
			return Settings{}, apperrors.NewParseError(path, "toml", tomlLine(err), err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Settings{}, apperrors.NewParseError(path, "toml", 0, fmt.Errorf("unknown key %q", undecoded[0].String()))
		}
	default:
		return Settings{}, apperrors.NewParseError(path, "", 0, fmt.Errorf("unsupported config format %q", ext))
	}

	return settings, nil
}

func yamlLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}

func tomlLine(err error) int {
	var perr toml.ParseError
	if errors.As(err, &perr) {
		return perr.Position.Line
	}
	return 0
}
