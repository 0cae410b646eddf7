/**
# Copyright (c) 2024, NVIDIA CORPORATION.  All rights reserved.
#
# Licensed under the Apache License, Version 2.0 (the "License");
# you may not use this file except in compliance with the License.
# You may obtain a copy of the License at
#
#     http://www.apache.org/licenses/LICENSE-2.0
#
# Unless required by applicable law or agreed to in writing, software
# distributed under the License is distributed on an "AS IS" BASIS,
# WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
# See the License for the specific language governing permissions and
# limitations under the License.
**/

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	cli "github.com/urfave/cli/v2"
	altsrc "github.com/urfave/cli/v2/altsrc"
	"k8s.io/klog/v2"

	spec "github.com/NVIDIA/go-cuda/api/cuda/v1"
	"github.com/NVIDIA/go-cuda/internal/info"
	"github.com/NVIDIA/go-cuda/internal/watch"
)

// Config represents a collection of config options for discovery.
type Config struct {
	configFile string

	// flags stores the CLI flags for later processing.
	flags []cli.Flag
}

func main() {
	config := &Config{}

	c := cli.NewApp()
	c.Name = "CUDA Capability Discovery"
	c.Usage = "enumerate CUDA devices and publish their compute capabilities"
	c.Version = info.GetVersionString()
	c.Action = func(ctx *cli.Context) error {
		klog.InfoS("Starting "+ctx.App.Name, "version", ctx.App.Version)
		return start(ctx, config)
	}

	config.flags = []cli.Flag{
		altsrc.NewBoolFlag(
			&cli.BoolFlag{
				Name:    spec.FlagOneshot,
				Value:   false,
				Usage:   "discover once and exit",
				EnvVars: []string{"CCD_ONESHOT"},
			},
		),
		altsrc.NewBoolFlag(
			&cli.BoolFlag{
				Name:    spec.FlagFailOnInitError,
				Value:   true,
				Usage:   "fail if an error is encountered during driver initialization, otherwise retry on the next pass",
				EnvVars: []string{"CCD_FAIL_ON_INIT_ERROR", "FAIL_ON_INIT_ERROR"},
			},
		),
		altsrc.NewDurationFlag(
			&cli.DurationFlag{
				Name:    spec.FlagSleepInterval,
				Value:   60 * time.Second,
				Usage:   "time to sleep between discovery passes",
				EnvVars: []string{"CCD_SLEEP_INTERVAL"},
			},
		),
		altsrc.NewStringFlag(
			&cli.StringFlag{
				Name:    spec.FlagOutputFile,
				Aliases: []string{"output", "o"},
				Usage:   "the path of the discovery snapshot to write; writes to standard output when empty",
				EnvVars: []string{"CCD_OUTPUT_FILE"},
			},
		),
		altsrc.NewStringFlag(
			&cli.StringFlag{
				Name:    spec.FlagDeviceDiscoveryStrategy,
				Value:   spec.DeviceDiscoveryStrategyCUDA,
				Usage:   "the strategy to use to discover devices:\n\t\t[cuda | nvml]",
				EnvVars: []string{"CCD_DEVICE_DISCOVERY_STRATEGY", "DEVICE_DISCOVERY_STRATEGY"},
			},
		),
		altsrc.NewStringSliceFlag(
			&cli.StringSliceFlag{
				Name:    spec.FlagDevices,
				Usage:   "restrict discovery to the listed devices, each given as an index or a GPU UUID; UUIDs only match with the nvml strategy",
				EnvVars: []string{"CCD_DEVICES"},
			},
		),
		&cli.StringFlag{
			Name:        spec.FlagConfigFile,
			Usage:       "the path to a config file as an alternative to command line options or environment variables",
			Destination: &config.configFile,
			EnvVars:     []string{"CCD_CONFIG_FILE", "CONFIG_FILE"},
		},
	}
	c.Flags = config.flags

	if err := c.Run(os.Args); err != nil {
		klog.Error(err)
		os.Exit(1)
	}
}

// loadConfig loads the config from the spec file.
func (cfg *Config) loadConfig(c *cli.Context) (*spec.Config, error) {
	config, err := spec.NewConfig(c, cfg.flags)
	if err != nil {
		return nil, fmt.Errorf("unable to finalize config: %w", err)
	}
	if err := config.AssertValid(); err != nil {
		return nil, fmt.Errorf("unable to validate config: %w", err)
	}
	return config, nil
}

func start(c *cli.Context, cfg *Config) error {
	defer func() {
		klog.Info("Exiting")
	}()

	klog.Info("Starting OS watcher.")
	sigs := watch.Signals(syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	var configEvents chan fsnotify.Event
	var configErrors chan error
	if cfg.configFile != "" {
		klog.Infof("Starting FS watcher on %v", cfg.configFile)
		watcher, err := watch.Files(cfg.configFile)
		if err != nil {
			return fmt.Errorf("failed to create FS watcher for %v: %w", cfg.configFile, err)
		}
		defer watcher.Close()
		configEvents = watcher.Events
		configErrors = watcher.Errors
	}

	for {
		klog.Info("Loading configuration.")
		config, err := cfg.loadConfig(c)
		if err != nil {
			return fmt.Errorf("unable to load config: %w", err)
		}

		configJSON, err := json.MarshalIndent(config, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal config to JSON: %v", err)
		}
		klog.Infof("\nRunning with config:\n%v", string(configJSON))

		snapshot, err := discover(config)
		if err != nil {
			if config.Flags.FailOnInitError {
				return fmt.Errorf("device discovery failed: %w", err)
			}
			klog.Errorf("Device discovery failed: %v; retrying on the next pass", err)
		} else {
			if err := writeSnapshot(config.Flags.OutputFile, snapshot); err != nil {
				return fmt.Errorf("failed to write discovery snapshot: %w", err)
			}
			klog.Infof("Published %d devices", len(snapshot.Devices))
		}

		if config.Flags.Oneshot {
			return nil
		}

	events:
		for {
			select {
			case <-time.After(time.Duration(config.Flags.SleepInterval)):
				break events

			case event := <-configEvents:
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					klog.Infof("inotify: %s modified, rediscovering.", event.Name)
					break events
				}

			case err := <-configErrors:
				klog.Errorf("inotify: %s", err)

			case s := <-sigs:
				switch s {
				case syscall.SIGHUP:
					klog.Info("Received SIGHUP, rediscovering.")
					break events
				default:
					klog.Infof("Received signal %q, shutting down.", s)
					return nil
				}
			}
		}
	}
}
