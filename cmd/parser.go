package cmd

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Flag one command line parameter, written as --name value
type Flag struct {
	Name     string
	Aliases  []string
	Usage    string
	Required bool

	FlagValue Value
}

func (flag Flag) String() string {
	return fmt.Sprintf("--%s:%s", flag.Name, flag.FlagValue.String())
}

// fit whether oneName is the flag's name or one of its aliases
func (flag *Flag) fit(oneName string) bool {
	if (*flag).Name == oneName {
		return true
	}
	for _, name := range (*flag).Aliases {
		if name == oneName {
			return true
		}
	}
	return false
}

type FlagContainer struct {
	flags              []*Flag
	flagsPrintPriority map[string]int
}

func NewFlagContainer() *FlagContainer {
	return &FlagContainer{}
}

func (container *FlagContainer) GetFlags() []*Flag {
	return container.flags
}

func (container *FlagContainer) SetPrintPriority(flagsPrintPriority map[string]int) {
	container.flagsPrintPriority = flagsPrintPriority
}

func (container *FlagContainer) GetPrintPriority() map[string]int {
	return container.flagsPrintPriority
}

func (container FlagContainer) String() string {
	sortedFlags := make([]*Flag, len(container.flags))
	copy(sortedFlags, container.flags)
	sort.Slice(sortedFlags, func(i, j int) bool {
		return sortedFlags[i].Name < sortedFlags[j].Name
	})

	builder := strings.Builder{}
	for _, flag := range sortedFlags {
		builder.WriteString((*flag).String())
		builder.WriteString("\n")
	}
	return builder.String()
}

// AddFlags registers flags, names and aliases must be unique across the container
func (container *FlagContainer) AddFlags(flags ...*Flag) error {
	for _, flagToBeAdded := range flags {
		for _, flagToCheck := range (*container).flags {
			if flagToCheck.fit((*flagToBeAdded).Name) {
				return fmt.Errorf("already existed flag with name or alias:%s", (*flagToBeAdded).Name)
			}
			for _, alias := range (*flagToBeAdded).Aliases {
				if flagToCheck.fit(alias) {
					return fmt.Errorf("already existed flag with name or alias:%s", alias)
				}
			}
		}
		(*container).flags = append((*container).flags, flagToBeAdded)
	}
	return nil
}

// only --name, a single dash is left to negative numbers
var argPattern = regexp.MustCompile(`^-{2}([^-].*)`)

// Parse sets flag values from args. Every --name consumes the following non-flag args as its values.
// Each flag may appear once; a required flag that is never set is an error.
func (container *FlagContainer) Parse(args []string) error {
	remaining := make([]*Flag, len((*container).flags))
	copy(remaining, (*container).flags)
	parsed := make([]*Flag, 0, len(remaining))

	argIndex := 0
	for argIndex < len(args) {
		argName := argPattern.FindStringSubmatch(args[argIndex])
		if len(argName) != 2 {
			return fmt.Errorf("arg doesn't start with '--<arg name>':'%s'", args[argIndex])
		}
		argIndex++
		var argValue []string
		for argIndex < len(args) && !argPattern.MatchString(args[argIndex]) {
			argValue = append(argValue, args[argIndex])
			argIndex++
		}

		matched := -1
		for i, flag := range remaining {
			if flag.fit(argName[1]) {
				matched = i
				break
			}
		}
		if matched == -1 {
			for _, flag := range parsed {
				if flag.fit(argName[1]) {
					return fmt.Errorf("duplicated arg:'%s'", argName[1])
				}
			}
			return fmt.Errorf("unexpected arg:'%s'", argName[1])
		}
		flag := remaining[matched]
		if err := flag.FlagValue.Set(argValue); err != nil {
			return fmt.Errorf("error in set value for arg:'%s', <%s>", argName[1], err.Error())
		}
		parsed = append(parsed, flag)
		remaining = append(remaining[:matched], remaining[matched+1:]...)
	}

	var missing []string
	for _, flag := range remaining {
		if flag.Required {
			missing = append(missing, fmt.Sprintf("flag is required but not set: '%s'", flag.Usage))
		}
	}
	if len(missing) > 0 {
		return errors.New(strings.Join(missing, "\n"))
	}
	return nil
}

type Value interface {
	Set(rawValue []string) error // Set converts the raw args following the flag name
	Get() map[string]string      // Get printable values, keyed for the parameter table
	String() string
}

const firstParaValue = "firstParaValue"

func single(rawValue []string) (string, error) {
	if len(rawValue) == 0 {
		return "", errors.New("too few values for this arg, forget to set?")
	}
	if len(rawValue) > 1 {
		return "", errors.New("too many values for this arg")
	}
	return rawValue[0], nil
}

// NoArgBoolValue set to true by the mere presence of the flag
type NoArgBoolValue struct {
	destination *bool
}

func NewNoArgBoolValue(destination *bool) *NoArgBoolValue {
	return &NoArgBoolValue{destination: destination}
}

func (value *NoArgBoolValue) Set(rawValue []string) error {
	if len(rawValue) > 0 {
		return errors.New("too many values for this arg")
	}
	*(*value).destination = true
	return nil
}

func (value *NoArgBoolValue) String() string {
	return strconv.FormatBool(*(*value).destination)
}

func (value *NoArgBoolValue) Get() map[string]string {
	return map[string]string{firstParaValue: value.String()}
}

type StringValue struct {
	destination *string
	validate    func(valueToCheck string) error
}

func NewStringValue(destination *string, validateFunc func(valueToCheck string) error) *StringValue {
	return &StringValue{destination: destination, validate: validateFunc}
}

func (value *StringValue) Set(rawValue []string) error {
	raw, err := single(rawValue)
	if err != nil {
		return err
	}
	if (*value).validate != nil {
		if err := (*value).validate(raw); err != nil {
			return fmt.Errorf("validate failed!===>%s", err.Error())
		}
	}
	*(*value).destination = raw
	return nil
}

func (value *StringValue) String() string {
	return *(*value).destination
}

func (value *StringValue) Get() map[string]string {
	return map[string]string{firstParaValue: value.String()}
}

type IntValue struct {
	destination *int
	validate    func(valueToCheck int) error
}

func NewIntValue(destination *int, validateFunc func(valueToCheck int) error) *IntValue {
	return &IntValue{destination: destination, validate: validateFunc}
}

func (value *IntValue) Set(rawValue []string) error {
	raw, err := single(rawValue)
	if err != nil {
		return err
	}
	intValue, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("can't use '%s' as integer values", raw)
	}
	if (*value).validate != nil {
		if err := (*value).validate(intValue); err != nil {
			return fmt.Errorf("validate failed!===>%s", err.Error())
		}
	}
	*(*value).destination = intValue
	return nil
}

func (value *IntValue) String() string {
	return strconv.Itoa(*(*value).destination)
}

func (value *IntValue) Get() map[string]string {
	return map[string]string{firstParaValue: value.String()}
}

type Float64Value struct {
	destination *float64
	validate    func(valueToCheck float64) error
}

func NewFloat64Value(destination *float64, validateFunc func(valueToCheck float64) error) *Float64Value {
	return &Float64Value{destination: destination, validate: validateFunc}
}

func (value *Float64Value) Set(rawValue []string) error {
	raw, err := single(rawValue)
	if err != nil {
		return err
	}
	float64Value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("can't use '%s' as float64 value", raw)
	}
	if (*value).validate != nil {
		if err := (*value).validate(float64Value); err != nil {
			return fmt.Errorf("validate failed!===>%s", err.Error())
		}
	}
	*(*value).destination = float64Value
	return nil
}

func (value *Float64Value) String() string {
	return fmt.Sprintf("%g", *(*value).destination)
}

func (value *Float64Value) Get() map[string]string {
	return map[string]string{firstParaValue: value.String()}
}
