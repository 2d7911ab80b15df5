package currency

import (
	"errors"
	"fmt"
	"strings"
)

type Source string

const (
	CBRSource   Source = "cbr"
	ECBSource   Source = "ecb"
	EmptySource Source = ""
)

var ErrUnknownSource = errors.New("not a valid Source")

func ConvertToSourcesFromStringSlice(strings []string) ([]Source, error) {
	sources := make([]Source, 0, len(strings))

	for _, str := range strings {
		source, err := ConvertToSourceFromString(str)
		if err != nil {
			return nil, err
		}

		sources = append(sources, source)
	}

	return sources, nil
}

func ConvertToSourceFromString(str string) (Source, error) {
	switch strings.ToLower(str) {
	case "cbr":
		return CBRSource, nil
	case "ecb":
		return ECBSource, nil
	}

	return "", fmt.Errorf("value %s is %w", str, ErrUnknownSource)
}

func (s *Source) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var str string
	if err := unmarshal(&str); err != nil {
		return err
	}

	source, err := ConvertToSourceFromString(str)

	if err != nil {
		return err
	}

	*s = source

	return nil
}

func (s Source) MarshalYAML() (interface{}, error) {
	return string(s), nil
}
