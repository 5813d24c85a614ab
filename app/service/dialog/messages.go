package dialog

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"rungoal/app/util/isodur"

	_ "embed"

	"github.com/elliotchance/pie/v2"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed messages.yaml
var defaultMessages []byte

// Catalog holds every user-facing utterance of the skill. It is
// injected into the state machine so the transition logic stays free
// of presentation concerns; a custom catalog file can replace the
// embedded one.
type Catalog struct {
	StartLaunch     string `yaml:"start_launch" validate:"required"`
	StartHelp       string `yaml:"start_help" validate:"required"`
	HelpDistance    string `yaml:"help_distance" validate:"required"`
	UnknownDistance string `yaml:"unknown_distance" validate:"required"`
	TooBigDistance  string `yaml:"too_big_distance" validate:"required"`
	ConfirmDistance string `yaml:"confirm_distance" validate:"required"`
	HelpTime        string `yaml:"help_time" validate:"required"`
	UnknownTime     string `yaml:"unknown_time" validate:"required"`
	TooLongTime     string `yaml:"too_long_time" validate:"required"`
	ConfirmGoal     string `yaml:"confirm_goal" validate:"required"`
	ResumeGoal      string `yaml:"resume_goal" validate:"required"`
	Praise          string `yaml:"praise" validate:"required"`
	Comfort         string `yaml:"comfort" validate:"required"`
	NoAction        string `yaml:"no_action" validate:"required"`
	Stop            string `yaml:"stop" validate:"required"`
	End             string `yaml:"end" validate:"required"`
	HoursUnit       string `yaml:"hours_unit" validate:"required"`
	MinutesUnit     string `yaml:"minutes_unit" validate:"required"`
	SecondsUnit     string `yaml:"seconds_unit" validate:"required"`
}

// LoadCatalog parses and validates catalog yaml from path, or the
// embedded default when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	data := defaultMessages

	if path != "" {
		custom, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read message catalog: %w", err)
		}
		data = custom
	}

	var result Catalog
	if err := yaml.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse message catalog: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(result); err != nil {
		return nil, fmt.Errorf("failed to validate message catalog: %w", err)
	}

	return &result, nil
}

func render(template string, values map[string]any) string {
	result := template
	for key, value := range values {
		result = strings.ReplaceAll(result, "{"+key+"}", fmt.Sprint(value))
	}

	return result
}

// DurationPhrase renders "1時間30分"-style phrases: present components
// only, fixed H-M-S order, no separators.
func (c *Catalog) DurationPhrase(d isodur.Components) string {
	segments := []string{"", "", ""}

	if d.HasHours {
		segments[0] = strconv.Itoa(d.Hours) + c.HoursUnit
	}
	if d.HasMinutes {
		segments[1] = strconv.Itoa(d.Minutes) + c.MinutesUnit
	}
	if d.HasSeconds {
		segments[2] = strconv.Itoa(d.Seconds) + c.SecondsUnit
	}

	return strings.Join(pie.Filter(segments, func(s string) bool {
		return s != ""
	}), "")
}

// goalPhrase renders the stored duration for confirmation and resume
// messages. A record that predates the current bounds may hold a
// string that no longer parses; fall back to the raw value instead of
// refusing to answer.
func (c *Catalog) goalPhrase(rawDuration string) string {
	d, err := isodur.Parse(rawDuration)
	if err != nil {
		return rawDuration
	}

	return c.DurationPhrase(d)
}
