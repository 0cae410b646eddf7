/*
 * Copyright (c) 2024, NVIDIA CORPORATION.  All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package v1

import (
	"fmt"
	"io"
	"os"
	"time"

	cli "github.com/urfave/cli/v2"
	altsrc "github.com/urfave/cli/v2/altsrc"

	"sigs.k8s.io/yaml"
)

// Version indicates the version of the 'Config' struct used to hold configuration information.
const Version = "v1"

// Config is a versioned struct used to hold configuration information.
type Config struct {
	Version string `json:"version"         yaml:"version"`
	Flags   Flags  `json:"flags,omitempty" yaml:"flags"`
	// DefaultLaunch optionally carries a launch configuration to validate
	// discovered devices against and echo into the discovery output.
	DefaultLaunch *LaunchConfiguration `json:"defaultLaunch,omitempty" yaml:"defaultLaunch,omitempty"`
}

// CommandLineFlags holds the list of command line flags used to configure discovery.
type CommandLineFlags struct {
	Oneshot                 bool        `json:"oneshot"                 yaml:"oneshot"`
	FailOnInitError         bool        `json:"failOnInitError"         yaml:"failOnInitError"`
	SleepInterval           Duration    `json:"sleepInterval"           yaml:"sleepInterval"`
	OutputFile              string      `json:"outputFile"              yaml:"outputFile"`
	DeviceDiscoveryStrategy string      `json:"deviceDiscoveryStrategy" yaml:"deviceDiscoveryStrategy"`
	Devices                 []DeviceRef `json:"devices,omitempty"       yaml:"devices,omitempty"`
}

// Flags holds the full list of flags used to configure discovery.
type Flags struct {
	CommandLineFlags
}

// parseConfig parses a config file as either YAML or JSON and unmarshals it into a Config struct.
func parseConfig(configFile string) (*Config, error) {
	reader, err := os.Open(configFile)
	if err != nil {
		return nil, fmt.Errorf("error opening config file: %v", err)
	}
	defer reader.Close()

	config, err := parseConfigFrom(reader)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %v", err)
	}

	return config, nil
}

func parseConfigFrom(reader io.Reader) (*Config, error) {
	var err error
	var configYaml []byte

	configYaml, err = io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read error: %v", err)
	}

	var config Config
	err = yaml.Unmarshal(configYaml, &config)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %v", err)
	}

	if config.Version == "" {
		return nil, fmt.Errorf("missing version field")
	}

	if config.Version != Version {
		return nil, fmt.Errorf("unknown version: %v", config.Version)
	}

	return &config, nil
}

// NewCommandLineFlags builds out a CommandLineFlags struct from the flags in cli.Context.
func NewCommandLineFlags(c *cli.Context) CommandLineFlags {
	devices := make([]DeviceRef, 0, len(c.StringSlice(FlagDevices)))
	for _, d := range c.StringSlice(FlagDevices) {
		devices = append(devices, DeviceRef(d))
	}
	return CommandLineFlags{
		Oneshot:                 c.Bool(FlagOneshot),
		FailOnInitError:         c.Bool(FlagFailOnInitError),
		SleepInterval:           Duration(c.Duration(FlagSleepInterval)),
		OutputFile:              c.String(FlagOutputFile),
		DeviceDiscoveryStrategy: c.String(FlagDeviceDiscoveryStrategy),
		Devices:                 devices,
	}
}

// NewConfig builds out a Config struct from a config file (or command line flags).
// The data stored in the config will be populated in order of precedence from
// (1) command line, (2) environment variable, (3) config file.
func NewConfig(c *cli.Context, flags []cli.Flag) (*Config, error) {
	config := &Config{
		Version: Version,
		Flags:   Flags{NewCommandLineFlags(c)},
	}

	configFile := c.String(FlagConfigFile)
	if configFile == "" {
		return config, nil
	}

	config, err := parseConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("unable to parse config file: %v", err)
	}

	devices := make([]interface{}, 0, len(config.Flags.Devices))
	for _, d := range config.Flags.Devices {
		devices = append(devices, string(d))
	}
	commandLineFlagsFromConfig := map[interface{}]interface{}{
		FlagOneshot:                 config.Flags.Oneshot,
		FlagFailOnInitError:         config.Flags.FailOnInitError,
		FlagSleepInterval:           time.Duration(config.Flags.SleepInterval),
		FlagOutputFile:              config.Flags.OutputFile,
		FlagDeviceDiscoveryStrategy: config.Flags.DeviceDiscoveryStrategy,
		FlagDevices:                 devices,
	}
	commandLineFlagsInputSource := altsrc.NewMapInputSource(configFile, commandLineFlagsFromConfig)

	err = altsrc.ApplyInputSourceValues(c, commandLineFlagsInputSource, flags)
	if err != nil {
		return nil, fmt.Errorf("unable to load command line flags from config: %v", err)
	}

	defaultLaunch := config.DefaultLaunch
	config = &Config{
		Version:       Version,
		Flags:         Flags{NewCommandLineFlags(c)},
		DefaultLaunch: defaultLaunch,
	}

	return config, nil
}

// AssertValid checks the semantic constraints the flag parser cannot.
func (c *Config) AssertValid() error {
	switch c.Flags.DeviceDiscoveryStrategy {
	case DeviceDiscoveryStrategyCUDA:
	case DeviceDiscoveryStrategyNVML:
	default:
		return fmt.Errorf("invalid device discovery strategy: %v", c.Flags.DeviceDiscoveryStrategy)
	}

	if err := AssertDeviceRefsValid(c.Flags.Devices); err != nil {
		return err
	}

	if c.DefaultLaunch != nil {
		if err := c.DefaultLaunch.AssertValid(); err != nil {
			return err
		}
	}

	return nil
}
